package tableio

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosap/internal/results"
)

// Header names used by the analysis program and its table exports
var aliases = map[string]string{
	"joint":      results.FieldJoint,
	"pointelm":   results.FieldJoint,
	"point":      results.FieldJoint,
	"loadcase":   results.FieldLoadCase,
	"outputcase": results.FieldLoadCase,
	"case":       results.FieldLoadCase,
	"steptype":   results.FieldStepType,
	"stepnum":    results.FieldStepNum,
	"x":          results.FieldX,
	"xcoord":     results.FieldX,
	"globalx":    results.FieldX,
	"y":          results.FieldY,
	"ycoord":     results.FieldY,
	"globaly":    results.FieldY,
	"z":          results.FieldZ,
	"zcoord":     results.FieldZ,
	"globalz":    results.FieldZ,
}

// Bookkeeping columns of the raw result arrays
var dropped = map[string]bool{
	"numberresults": true,
	"ret":           true,
}

// Element and object labels. They are ids, so they stay text even when the
// export numbers them.
var descriptive = map[string]bool{
	"obj":       true,
	"elm":       true,
	"objsta":    true,
	"elmsta":    true,
	"area":      true,
	"areaelem":  true,
	"frame":     true,
	"frameelem": true,
}

func isDescriptive(name string) bool {
	return descriptive[strings.ToLower(name)]
}

func canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	key := strings.ToLower(name)
	if dropped[key] {
		return "", false
	}
	if c, ok := aliases[key]; ok {
		return c, true
	}
	return name, true
}

// fromRecords builds a table from a header row and string cells
func fromRecords(records [][]string) (*results.Table, error) {
	if len(records) == 0 {
		return &results.Table{}, nil
	}

	header := records[0]
	body := records[1:]
	names := make([]string, len(header))
	keep := make([]bool, len(header))
	seen := make(map[string]bool)
	for i, h := range header {
		name, ok := canonical(h)
		if !ok || name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		names[i] = name
		keep[i] = true
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	// A column is numeric when every non-empty cell parses
	numeric := make([]bool, len(header))
	t := &results.Table{}
	for i := range header {
		if !keep[i] || results.IsKeyField(names[i]) {
			continue
		}
		numeric[i] = !isDescriptive(names[i])
		for _, row := range body {
			if !numeric[i] {
				break
			}
			s := cell(row, i)
			if s == "" {
				continue
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				numeric[i] = false
				break
			}
		}
		if numeric[i] {
			t.Fields = append(t.Fields, names[i])
		} else {
			t.TextFields = append(t.TextFields, names[i])
		}
	}

	t.Rows = make([]results.Row, 0, len(body))
	for ri, row := range body {
		r := results.Row{Values: make(map[string]float64)}
		var coord results.Coord
		var axes []string

		for i := range header {
			if !keep[i] {
				continue
			}
			s := cell(row, i)
			name := names[i]
			switch name {
			case results.FieldJoint:
				j, err := parseJoint(s)
				if err != nil {
					return nil, results.NewDataError(ri, name, err.Error())
				}
				r.Joint = j
			case results.FieldLoadCase:
				if s == "" {
					return nil, results.NewDataError(ri, name, "missing value")
				}
				r.LoadCase = s
			case results.FieldStepType:
				r.StepType = s
			case results.FieldStepNum:
				v, err := parseOptional(s)
				if err != nil {
					return nil, results.NewDataError(ri, name, "not numeric")
				}
				r.StepNum = v
			case results.FieldX, results.FieldY, results.FieldZ:
				if s == "" {
					continue
				}
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, results.NewDataError(ri, name, "not numeric")
				}
				setCoord(&coord, name, v)
				axes = append(axes, name)
			default:
				if s == "" {
					continue
				}
				if numeric[i] {
					v, _ := strconv.ParseFloat(s, 64)
					r.Values[name] = v
				} else {
					if r.Text == nil {
						r.Text = make(map[string]string)
					}
					r.Text[name] = s
				}
			}
		}
		if err := checkCoord(ri, axes); err != nil {
			return nil, err
		}
		if len(axes) > 0 {
			r.Coord = &coord
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

// checkCoord accepts a row with all three coordinates or none of them
func checkCoord(row int, axes []string) error {
	if len(axes) == 0 || len(axes) == 3 {
		return nil
	}
	for _, axis := range []string{results.FieldX, results.FieldY, results.FieldZ} {
		found := false
		for _, a := range axes {
			found = found || a == axis
		}
		if !found {
			return results.NewDataError(row, axis, "missing coordinate")
		}
	}
	return nil
}

// fromMaps builds a table from decoded JSON or YAML objects.
// Field order is alphabetical since objects carry none.
func fromMaps(objects []map[string]any) (*results.Table, error) {
	type column struct {
		name    string
		numeric bool
	}
	columns := make(map[string]*column)
	hasCase := false
	for _, obj := range objects {
		for raw, v := range obj {
			name, ok := canonical(raw)
			if ok && name == results.FieldLoadCase {
				hasCase = true
			}
			if !ok || results.IsKeyField(name) {
				continue
			}
			c, exists := columns[name]
			if !exists {
				c = &column{name: name, numeric: !isDescriptive(name)}
				columns[name] = c
			}
			if v == nil {
				continue
			}
			if _, isNum := toFloat(v); !isNum {
				c.numeric = false
			}
		}
	}

	t := &results.Table{}
	for name, c := range columns {
		if c.numeric {
			t.Fields = append(t.Fields, name)
		} else {
			t.TextFields = append(t.TextFields, name)
		}
	}
	sort.Strings(t.Fields)
	sort.Strings(t.TextFields)

	t.Rows = make([]results.Row, 0, len(objects))
	for ri, obj := range objects {
		r := results.Row{Values: make(map[string]float64)}
		var coord results.Coord
		var axes []string

		for raw, v := range obj {
			name, ok := canonical(raw)
			if !ok || v == nil {
				continue
			}
			switch name {
			case results.FieldJoint:
				j, err := jointFromAny(v)
				if err != nil {
					return nil, results.NewDataError(ri, name, err.Error())
				}
				r.Joint = j
			case results.FieldLoadCase:
				r.LoadCase = fmt.Sprint(v)
			case results.FieldStepType:
				r.StepType = fmt.Sprint(v)
			case results.FieldStepNum:
				f, ok := toFloat(v)
				if !ok {
					return nil, results.NewDataError(ri, name, "not numeric")
				}
				r.StepNum = f
			case results.FieldX, results.FieldY, results.FieldZ:
				f, ok := toFloat(v)
				if !ok {
					return nil, results.NewDataError(ri, name, "not numeric")
				}
				setCoord(&coord, name, f)
				axes = append(axes, name)
			default:
				if columns[name].numeric {
					f, _ := toFloat(v)
					r.Values[name] = f
				} else {
					if r.Text == nil {
						r.Text = make(map[string]string)
					}
					r.Text[name] = fmt.Sprint(v)
				}
			}
		}
		if hasCase && r.LoadCase == "" {
			return nil, results.NewDataError(ri, results.FieldLoadCase, "missing value")
		}
		if err := checkCoord(ri, axes); err != nil {
			return nil, err
		}
		if len(axes) > 0 {
			r.Coord = &coord
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

// header returns the output column order of t
func header(t *results.Table) []string {
	cols := append([]string(nil), results.DefaultGroupBy...)
	if t.HasCoords() {
		cols = append(cols, results.FieldX, results.FieldY, results.FieldZ)
	}
	cols = append(cols, t.TextFields...)
	return append(cols, t.Fields...)
}

// cellValue returns the value of column col for r; ok is false when the row
// has no value for it.
func cellValue(r results.Row, col string) (v any, ok bool) {
	switch col {
	case results.FieldJoint:
		return r.Joint, true
	case results.FieldLoadCase:
		return r.LoadCase, true
	case results.FieldStepType:
		return r.StepType, true
	case results.FieldStepNum:
		return r.StepNum, true
	case results.FieldX, results.FieldY, results.FieldZ:
		if r.Coord == nil {
			return nil, false
		}
		switch col {
		case results.FieldX:
			return r.Coord.X, true
		case results.FieldY:
			return r.Coord.Y, true
		}
		return r.Coord.Z, true
	}
	if s, ok := r.Text[col]; ok {
		return s, true
	}
	if f, ok := r.Values[col]; ok {
		return f, true
	}
	return nil, false
}

func setCoord(c *results.Coord, axis string, v float64) {
	switch axis {
	case results.FieldX:
		c.X = v
	case results.FieldY:
		c.Y = v
	case results.FieldZ:
		c.Z = v
	}
}

func parseOptional(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseJoint(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing joint id")
	}
	if j, err := strconv.Atoi(s); err == nil {
		return j, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("joint id %q is not an integer", s)
	}
	return int(f), nil
}

func jointFromAny(v any) (int, error) {
	if s, ok := v.(string); ok {
		return parseJoint(strings.TrimSpace(s))
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("joint id %v is not an integer", v)
	}
	return int(f), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
