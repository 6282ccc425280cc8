package tableio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ReadFile loads a result table, picking the format from the extension
func ReadFile(path string) (*results.Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read loads a result table in the given format.
//
// CSV and XLSX tables carry a header row. JSON and YAML tables are a list of
// objects, one per row.
func Read(r io.Reader, format Format) (*results.Table, error) {
	switch format {
	case CSV:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		records, err := cr.ReadAll()
		if err != nil {
			return nil, err
		}
		return fromRecords(records)

	case XLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sheet := f.GetSheetName(0)
		records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		return fromRecords(records)

	case JSON:
		var objects []map[string]any
		if err := json.NewDecoder(r).Decode(&objects); err != nil {
			return nil, err
		}
		return fromMaps(objects)

	case YAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var objects []map[string]any
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&objects); err != nil {
			if errors.Is(err, io.EOF) {
				return &results.Table{}, nil
			}
			return nil, err
		}
		return fromMaps(objects)
	}
	return nil, fmt.Errorf("unsupported table format %q", format)
}
