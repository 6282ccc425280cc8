package shell

import (
	"fmt"

	"github.com/alexiusacademia/gosap/internal/plate"
	"github.com/alexiusacademia/gosap/internal/results"
)

// Method selects how plate moments are turned into design moments
type Method string

const (
	WoodArmer Method = "wood-armer"
	Simple    Method = "simple"
)

// Fields added to each row by the design methods
var (
	WoodArmerFields = []string{"MxPos", "MaPos", "MxNeg", "MaNeg"}
	SimpleFields    = []string{"M11Pos", "M11Neg", "M22Pos", "M22Neg"}
)

// ParseMethod validates a method name
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case WoodArmer, Simple:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown design method %q (use %q or %q)", s, WoodArmer, Simple)
}

// Designer computes slab design moments for every row of a shell force table
type Designer struct {
	Alpha  float64 // Secondary reinforcement angle (degrees)
	Method Method

	// Names of the moment fields, M11/M22/M12 when empty
	M11 string
	M22 string
	M12 string
}

// NewDesigner returns a Wood-Armer designer for orthogonal reinforcement
func NewDesigner() *Designer {
	return &Designer{Alpha: plate.DefaultAlpha, Method: WoodArmer}
}

// Fields returns the fields d adds to a table
func (d *Designer) Fields() []string {
	if d.Method == Simple {
		return SimpleFields
	}
	return WoodArmerFields
}

func (d *Designer) names() (string, string, string) {
	m11, m22, m12 := d.M11, d.M22, d.M12
	if m11 == "" {
		m11 = "M11"
	}
	if m22 == "" {
		m22 = "M22"
	}
	if m12 == "" {
		m12 = "M12"
	}
	return m11, m22, m12
}

// Apply returns a copy of t with the design moment fields appended.
// The input table is left untouched.
func (d *Designer) Apply(t *results.Table) (*results.Table, error) {
	if _, err := ParseMethod(string(d.Method)); err != nil {
		return nil, err
	}
	f11, f22, f12 := d.names()

	out := &results.Table{
		Fields:     append([]string(nil), t.Fields...),
		TextFields: append([]string(nil), t.TextFields...),
		Rows:       make([]results.Row, 0, len(t.Rows)),
	}
	for _, f := range d.Fields() {
		out.AddField(f)
	}

	for i, r := range t.Rows {
		m := plate.MomentSet{Alpha: d.Alpha}
		for _, field := range []struct {
			name string
			dst  *float64
		}{{f11, &m.M11}, {f22, &m.M22}, {f12, &m.M12}} {
			v, ok := r.Value(field.name)
			if !ok {
				return nil, results.NewDataError(i, field.name, "missing value")
			}
			*field.dst = v
		}

		row := r.Clone()
		if row.Values == nil {
			row.Values = make(map[string]float64, 4)
		}

		switch d.Method {
		case Simple:
			s := plate.Simple(m)
			row.Values["M11Pos"] = s.M11Pos
			row.Values["M11Neg"] = s.M11Neg
			row.Values["M22Pos"] = s.M22Pos
			row.Values["M22Neg"] = s.M22Neg
		default:
			dm, err := m.Combine()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", r.Key, err)
			}
			row.Values["MxPos"] = dm.MxPos
			row.Values["MaPos"] = dm.MaPos
			row.Values["MxNeg"] = dm.MxNeg
			row.Values["MaNeg"] = dm.MaNeg
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// Envelope returns, for each design field, the row holding the governing
// value: the largest positive or the most negative moment.
func Envelope(t *results.Table, fields []string) map[string]results.Row {
	gov := make(map[string]results.Row, len(fields))
	for _, f := range fields {
		var best results.Row
		var bestAbs float64
		found := false
		for _, r := range t.Rows {
			v, ok := r.Value(f)
			if !ok {
				continue
			}
			if v < 0 {
				v = -v
			}
			if !found || v > bestAbs {
				best, bestAbs, found = r, v, true
			}
		}
		if found {
			gov[f] = best
		}
	}
	return gov
}
