package tableio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a table file format
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
	XLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("unsupported table format %q (use .csv, .json, .yaml or .xlsx)", filepath.Ext(path))
}
