package results

import "fmt"

// DataError reports a field that is missing, non-numeric or unknown
type DataError struct {
	Row   int // Zero-based row index, -1 when not tied to a row
	Field string
	msg   string
}

func (e *DataError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("field %q: %s", e.Field, e.msg)
	}
	return fmt.Sprintf("row %d, field %q: %s", e.Row+1, e.Field, e.msg)
}

// NewDataError creates a DataError for the given row and field
func NewDataError(row int, field, msg string) *DataError {
	return &DataError{Row: row, Field: field, msg: msg}
}
