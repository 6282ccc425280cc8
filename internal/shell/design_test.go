package shell

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gosap/internal/plate"
	"github.com/alexiusacademia/gosap/internal/results"
	"gonum.org/v1/gonum/floats/scalar"
)

func shellTable() *results.Table {
	return &results.Table{
		Fields: []string{"M11", "M22", "M12"},
		Rows: []results.Row{
			{Key: results.Key{Joint: 1, LoadCase: "DL"}, Values: map[string]float64{"M11": 100, "M22": 50, "M12": 20}},
			{Key: results.Key{Joint: 2, LoadCase: "DL"}, Values: map[string]float64{"M11": -80, "M22": -40, "M12": 15}},
		},
	}
}

func TestDesignerWoodArmer(t *testing.T) {
	in := shellTable()
	out, err := NewDesigner().Apply(in)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	wantFields := []string{"M11", "M22", "M12", "MxPos", "MaPos", "MxNeg", "MaNeg"}
	if len(out.Fields) != len(wantFields) {
		t.Fatalf("Fields = %v, want %v", out.Fields, wantFields)
	}
	for i, f := range wantFields {
		if out.Fields[i] != f {
			t.Errorf("Fields[%d] = %q, want %q", i, out.Fields[i], f)
		}
	}

	checks := []struct {
		row   int
		field string
		want  float64
	}{
		{0, "MxPos", 120},
		{0, "MaPos", 70},
		{0, "MxNeg", 0},
		{1, "MxNeg", -95},
		{1, "MaNeg", -55},
		{1, "MxPos", 0},
	}
	for _, c := range checks {
		got := out.Rows[c.row].Values[c.field]
		if !scalar.EqualWithinAbs(got, c.want, 1e-9) {
			t.Errorf("row %d %s = %g, want %g", c.row, c.field, got, c.want)
		}
	}

	if _, ok := in.Rows[0].Values["MxPos"]; ok {
		t.Error("Apply() modified its input")
	}
	if len(in.Fields) != 3 {
		t.Error("Apply() modified the input field list")
	}
}

func TestDesignerSimple(t *testing.T) {
	d := &Designer{Alpha: 90, Method: Simple}
	out, err := d.Apply(shellTable())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Rows[0].Values["M11Pos"]; got != 120 {
		t.Errorf("M11Pos = %g, want 120", got)
	}
	if got := out.Rows[1].Values["M22Neg"]; got != -55 {
		t.Errorf("M22Neg = %g, want -55", got)
	}
}

func TestDesignerCustomFieldNames(t *testing.T) {
	tbl := &results.Table{
		Fields: []string{"Mx", "My", "Mxy"},
		Rows: []results.Row{
			{Key: results.Key{Joint: 4}, Values: map[string]float64{"Mx": 10, "My": 5, "Mxy": 30}},
		},
	}
	d := &Designer{Alpha: 90, Method: WoodArmer, M11: "Mx", M22: "My", M12: "Mxy"}
	out, err := d.Apply(tbl)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Rows[0].Values["MxPos"]; !scalar.EqualWithinAbs(got, 40, 1e-9) {
		t.Errorf("MxPos = %g, want 40", got)
	}
}

func TestDesignerErrors(t *testing.T) {
	tbl := shellTable()
	delete(tbl.Rows[1].Values, "M12")

	_, err := NewDesigner().Apply(tbl)
	var de *results.DataError
	if !errors.As(err, &de) || de.Row != 1 || de.Field != "M12" {
		t.Errorf("Apply() error = %v, want DataError on row 1 M12", err)
	}

	d := &Designer{Alpha: 180, Method: WoodArmer}
	_, err = d.Apply(shellTable())
	var dom *plate.DomainError
	if !errors.As(err, &dom) {
		t.Errorf("Apply(alpha=180) error = %v, want DomainError", err)
	}

	d = &Designer{Alpha: 90, Method: "rankine"}
	if _, err := d.Apply(shellTable()); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestEnvelope(t *testing.T) {
	out, err := NewDesigner().Apply(shellTable())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	gov := Envelope(out, WoodArmerFields)
	if gov["MxPos"].Joint != 1 {
		t.Errorf("MxPos governed by joint %d, want 1", gov["MxPos"].Joint)
	}
	if gov["MxNeg"].Joint != 2 {
		t.Errorf("MxNeg governed by joint %d, want 2", gov["MxNeg"].Joint)
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod("simple"); err != nil || m != Simple {
		t.Errorf("ParseMethod(simple) = %q, %v", m, err)
	}
	if _, err := ParseMethod("WoodArmer"); err == nil {
		t.Error("expected error")
	}
}
