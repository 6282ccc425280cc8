package tableio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// SheetName is the worksheet XLSX tables are written to
const SheetName = "Results"

// WriteFile saves a table, picking the format from the extension
func WriteFile(path string, t *results.Table) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	// Create directory if needed
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, format, t); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write saves a table in the given format. Key columns come first, then
// coordinates, text fields and numeric fields in table order.
func Write(w io.Writer, format Format, t *results.Table) error {
	cols := header(t)

	switch format {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(cols); err != nil {
			return err
		}
		record := make([]string, len(cols))
		for _, r := range t.Rows {
			for i, c := range cols {
				record[i] = formatCell(r, c)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case XLSX:
		f := excelize.NewFile()
		defer f.Close()

		if err := f.SetSheetName("Sheet1", SheetName); err != nil {
			return err
		}
		head := make([]any, len(cols))
		for i, c := range cols {
			head[i] = c
		}
		if err := f.SetSheetRow(SheetName, "A1", &head); err != nil {
			return err
		}
		for ri, r := range t.Rows {
			line := make([]any, len(cols))
			for i, c := range cols {
				if v, ok := cellValue(r, c); ok {
					line[i] = v
				}
			}
			cell, err := excelize.CoordinatesToCellName(1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
				return err
			}
		}
		_, err := f.WriteTo(w)
		return err

	case JSON, YAML:
		objects := make([]map[string]any, 0, len(t.Rows))
		for _, r := range t.Rows {
			obj := make(map[string]any, len(cols))
			for _, c := range cols {
				if v, ok := cellValue(r, c); ok {
					obj[c] = v
				}
			}
			objects = append(objects, obj)
		}
		if format == JSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(objects)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(objects); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported table format %q", format)
}

func formatCell(r results.Row, col string) string {
	v, ok := cellValue(r, col)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}
