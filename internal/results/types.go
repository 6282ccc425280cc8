package results

import (
	"fmt"
	"strconv"
)

// Names of the key fields. They may be used as group fields.
const (
	FieldJoint    = "Joint"
	FieldLoadCase = "LoadCase"
	FieldStepType = "StepType"
	FieldStepNum  = "StepNum"
)

// Names of the coordinate fields
const (
	FieldX = "X"
	FieldY = "Y"
	FieldZ = "Z"
)

// DefaultGroupBy groups rows by every key field
var DefaultGroupBy = []string{FieldJoint, FieldLoadCase, FieldStepType, FieldStepNum}

// Key identifies one point under one loading condition
type Key struct {
	Joint    int     // Joint (point element) id
	LoadCase string  // Load case or combination name
	StepType string  // e.g. "Max", "Min", "Step" or empty
	StepNum  float64 // Step number within the case
}

func (k Key) String() string {
	s := fmt.Sprintf("joint %d, %s", k.Joint, k.LoadCase)
	if k.StepType != "" {
		s += " " + k.StepType
	}
	if k.StepNum != 0 {
		s += " " + strconv.FormatFloat(k.StepNum, 'g', -1, 64)
	}
	return s
}

// Coord is the global position of a joint
type Coord struct {
	X float64
	Y float64
	Z float64
}

// Row is a single result record at one joint.
// Several rows may share a key when the joint is connected to more than one
// element; each of them then holds that element's view of the joint.
type Row struct {
	Key
	Coord  *Coord             // nil when the table carries no coordinates
	Values map[string]float64 // Numeric fields (forces, moments, ...)
	Text   map[string]string  // Descriptive fields (element name, ...)
}

// Value returns the named numeric field
func (r Row) Value(field string) (float64, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Clone returns a copy of the row that shares no maps with the original
func (r Row) Clone() Row {
	c := Row{Key: r.Key}
	if r.Coord != nil {
		coord := *r.Coord
		c.Coord = &coord
	}
	if r.Values != nil {
		c.Values = make(map[string]float64, len(r.Values))
		for k, v := range r.Values {
			c.Values[k] = v
		}
	}
	if r.Text != nil {
		c.Text = make(map[string]string, len(r.Text))
		for k, v := range r.Text {
			c.Text[k] = v
		}
	}
	return c
}

// Table is an ordered set of rows with the column order of its source
type Table struct {
	Fields     []string // Numeric fields, in column order
	TextFields []string // Text fields, in column order
	Rows       []Row
}

// HasCoords reports whether any row carries coordinates
func (t *Table) HasCoords() bool {
	for _, r := range t.Rows {
		if r.Coord != nil {
			return true
		}
	}
	return false
}

// HasField reports whether name is one of the numeric fields
func (t *Table) HasField(name string) bool {
	for _, f := range t.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// AddField appends a numeric field name if it is not present yet
func (t *Table) AddField(name string) {
	if !t.HasField(name) {
		t.Fields = append(t.Fields, name)
	}
}

// IsKeyField reports whether name is a key or coordinate field
func IsKeyField(name string) bool {
	switch name {
	case FieldJoint, FieldLoadCase, FieldStepType, FieldStepNum, FieldX, FieldY, FieldZ:
		return true
	}
	return false
}

// SelectCases returns the rows whose load case is one of cases.
// An empty list selects every row.
func SelectCases(rows []Row, cases []string) []Row {
	if len(cases) == 0 {
		return rows
	}
	want := make(map[string]bool, len(cases))
	for _, c := range cases {
		want[c] = true
	}
	var out []Row
	for _, r := range rows {
		if want[r.LoadCase] {
			out = append(out, r)
		}
	}
	return out
}
