package tableio

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosap/internal/results"
)

const shellCSV = `NumberResults,Obj,Elm,PointElm,LoadCase,StepType,StepNum,F11,M11,M22,M12,Xcoord,Ycoord,Zcoord
4,A1,1,10,DEAD,,0,1.5,10,20,2,0,0,0
4,A1,2,10,DEAD,,0,2.5,30,40,4,0,0,0
4,A2,3,11,DEAD,,0,3,5,6,,1.25,0,0
4,A2,4,11,LIVE,Max,1,4,7,8,1,1.25,0,0
`

func TestReadCSV(t *testing.T) {
	tbl, err := Read(strings.NewReader(shellCSV), CSV)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	// Elm holds integers only but is an element label
	if !reflect.DeepEqual(tbl.Fields, []string{"F11", "M11", "M22", "M12"}) {
		t.Errorf("Fields = %v", tbl.Fields)
	}
	if !reflect.DeepEqual(tbl.TextFields, []string{"Obj", "Elm"}) {
		t.Errorf("TextFields = %v", tbl.TextFields)
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(tbl.Rows))
	}

	r := tbl.Rows[3]
	want := results.Key{Joint: 11, LoadCase: "LIVE", StepType: "Max", StepNum: 1}
	if r.Key != want {
		t.Errorf("Key = %+v, want %+v", r.Key, want)
	}
	if r.Coord == nil || r.Coord.X != 1.25 {
		t.Errorf("Coord = %+v", r.Coord)
	}
	if r.Text["Obj"] != "A2" {
		t.Errorf("Obj = %q", r.Text["Obj"])
	}
	if _, ok := tbl.Rows[2].Values["M12"]; ok {
		t.Error("empty cell should be a missing value")
	}
	if tbl.Rows[1].Text["Elm"] != "2" {
		t.Errorf("Elm = %q, want 2", tbl.Rows[1].Text["Elm"])
	}

	// Blank StepNum on linear cases reads as step 0
	if tbl.Rows[0].StepNum != 0 {
		t.Errorf("StepNum = %g, want 0", tbl.Rows[0].StepNum)
	}
}

func TestReadElementLabelsAveraged(t *testing.T) {
	tbl, err := Read(strings.NewReader(shellCSV), CSV)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	avg, err := (&results.Averager{Fields: []string{"M11", "M22"}}).AverageTable(tbl)
	if err != nil {
		t.Fatalf("AverageTable() error = %v", err)
	}
	if len(avg.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(avg.Rows))
	}
	if got := avg.Rows[0].Text["Elm"]; got != "1" {
		t.Errorf("Elm = %q, want first observed 1", got)
	}
	if got := avg.Rows[0].Text["Obj"]; got != "A1" {
		t.Errorf("Obj = %q, want A1", got)
	}
}

func TestReadCSVMissingKey(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		in     string
		row    int
		field  string
	}{
		{
			name:   "blank load case",
			format: CSV,
			in:     "Joint,LoadCase,StepType,StepNum,M11\n1,DL,,0,4\n1,,,,5\n",
			row:    1,
			field:  results.FieldLoadCase,
		},
		{
			name:   "null load case",
			format: JSON,
			in:     `[{"Joint": 1, "LoadCase": "DL", "M11": 4}, {"Joint": 1, "LoadCase": null, "M11": 5}]`,
			row:    1,
			field:  results.FieldLoadCase,
		},
		{
			name:   "absent load case",
			format: YAML,
			in:     "- {Joint: 1, LoadCase: DL, M11: 4}\n- {Joint: 2, M11: 5}\n",
			row:    1,
			field:  results.FieldLoadCase,
		},
		{
			name:   "partial coordinates",
			format: CSV,
			in:     "Joint,LoadCase,X,Y,Z,M11\n1,DL,5,,,4\n",
			row:    0,
			field:  results.FieldY,
		},
		{
			name:   "partial coordinates json",
			format: JSON,
			in:     `[{"Joint": 1, "LoadCase": "DL", "X": 1, "Y": 2, "M11": 4}]`,
			row:    0,
			field:  results.FieldZ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.format)
			var de *results.DataError
			if !errors.As(err, &de) {
				t.Fatalf("Read() error = %v, want DataError", err)
			}
			if de.Row != tt.row || de.Field != tt.field {
				t.Errorf("DataError = %+v, want row %d field %s", de, tt.row, tt.field)
			}
		})
	}
}

func TestReadCSVBadJoint(t *testing.T) {
	in := "Joint,LoadCase,F1\n1,DL,2\n2.5,DL,3\n"
	_, err := Read(strings.NewReader(in), CSV)
	var de *results.DataError
	if !errors.As(err, &de) {
		t.Fatalf("Read() error = %v, want DataError", err)
	}
	if de.Row != 1 || de.Field != results.FieldJoint {
		t.Errorf("DataError = %+v", de)
	}
}

func TestReadCSVDuplicateColumn(t *testing.T) {
	in := "Joint,PointElm,F1\n1,1,2\n"
	if _, err := Read(strings.NewReader(in), CSV); err == nil {
		t.Error("expected error for duplicate joint columns")
	}
}

func sampleTable() *results.Table {
	return &results.Table{
		Fields:     []string{"M11", "M22"},
		TextFields: []string{"Elm"},
		Rows: []results.Row{
			{
				Key:    results.Key{Joint: 1, LoadCase: "DL", StepNum: 0},
				Coord:  &results.Coord{X: 0.5, Y: 1, Z: -2},
				Values: map[string]float64{"M11": 12.5, "M22": -3.25},
				Text:   map[string]string{"Elm": "S1"},
			},
			{
				Key:    results.Key{Joint: 2, LoadCase: "LL", StepType: "Max", StepNum: 3},
				Coord:  &results.Coord{X: 4, Y: 0, Z: 0},
				Values: map[string]float64{"M11": 0.125, "M22": 7},
				Text:   map[string]string{"Elm": "S2"},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{CSV, JSON, YAML, XLSX} {
		t.Run(string(format), func(t *testing.T) {
			in := sampleTable()
			var buf bytes.Buffer
			if err := Write(&buf, format, in); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			out, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(out.Fields, in.Fields) {
				t.Errorf("Fields = %v, want %v", out.Fields, in.Fields)
			}
			if !reflect.DeepEqual(out.TextFields, in.TextFields) {
				t.Errorf("TextFields = %v, want %v", out.TextFields, in.TextFields)
			}
			if !reflect.DeepEqual(out.Rows, in.Rows) {
				t.Errorf("Rows = %+v, want %+v", out.Rows, in.Rows)
			}
		})
	}
}

func TestReadJSONTextField(t *testing.T) {
	in := `[{"Joint": 3, "LoadCase": "DL", "F1": 1, "Elm": "A"}, {"Joint": 3, "LoadCase": "DL", "F1": 2, "Elm": 7}]`
	tbl, err := Read(strings.NewReader(in), JSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(tbl.TextFields, []string{"Elm"}) {
		t.Errorf("TextFields = %v", tbl.TextFields)
	}
	if tbl.Rows[1].Text["Elm"] != "7" {
		t.Errorf("Elm = %q, want 7", tbl.Rows[1].Text["Elm"])
	}

	_, err = results.Average(tbl.Rows, nil, []string{"Elm"})
	var de *results.DataError
	if !errors.As(err, &de) {
		t.Errorf("Average over a text field error = %v, want DataError", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "table.xlsx")
	if err := WriteFile(path, sampleTable()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(tbl.Rows))
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.csv":     CSV,
		"b.JSON":    JSON,
		"dir/c.yml": YAML,
		"d.yaml":    YAML,
		"e.xlsx":    XLSX,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatFromPath("f.txt"); err == nil {
		t.Error("expected error for .txt")
	}
}
