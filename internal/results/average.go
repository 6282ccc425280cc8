package results

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ProgressFunc is called while groups are reduced
type ProgressFunc func(done, total int)

// Averager merges rows that describe the same joint under the same loading
// condition, as seen from each element connected to the joint.
type Averager struct {
	// GroupBy lists the key fields that identify a group.
	// Empty means DefaultGroupBy.
	GroupBy []string

	// Fields lists the numeric fields to average. Other numeric fields are
	// dropped from the output.
	Fields []string

	// Progress, when set, is called every ProgressEvery groups and after
	// the last group.
	Progress      ProgressFunc
	ProgressEvery int
}

// Average is shorthand for an Averager without a progress hook
func Average(rows []Row, groupBy, fields []string) ([]Row, error) {
	a := Averager{GroupBy: groupBy, Fields: fields}
	return a.Average(rows)
}

// groupKey is a Key with the components that are not grouped on zeroed
type groupKey Key

type mask struct {
	joint, loadCase, stepType, stepNum bool
}

func (m mask) apply(k Key) groupKey {
	var g groupKey
	if m.joint {
		g.Joint = k.Joint
	}
	if m.loadCase {
		g.LoadCase = k.LoadCase
	}
	if m.stepType {
		g.StepType = k.StepType
	}
	if m.stepNum {
		g.StepNum = k.StepNum
	}
	return g
}

func newMask(groupBy []string) (mask, error) {
	if len(groupBy) == 0 {
		groupBy = DefaultGroupBy
	}
	var m mask
	for _, f := range groupBy {
		switch f {
		case FieldJoint:
			m.joint = true
		case FieldLoadCase:
			m.loadCase = true
		case FieldStepType:
			m.stepType = true
		case FieldStepNum:
			m.stepNum = true
		default:
			return mask{}, NewDataError(-1, f, "not a key field, cannot group on it")
		}
	}
	return m, nil
}

// Average returns one row per unique key, in order of first appearance.
//
// The key, coordinates and text fields of each output row are those of the
// first row seen for the key; they are not checked against the other members.
// Every field in a.Fields is replaced by the mean over the group. A missing,
// NaN or infinite value, or a field that is not numeric, fails the whole call.
func (a *Averager) Average(rows []Row) ([]Row, error) {
	m, err := newMask(a.GroupBy)
	if err != nil {
		return nil, err
	}
	for _, f := range a.Fields {
		if IsKeyField(f) {
			return nil, NewDataError(-1, f, "key and coordinate fields cannot be averaged")
		}
	}

	index := make(map[groupKey]int)
	var groups [][]int

	for i, r := range rows {
		for _, f := range a.Fields {
			if _, isText := r.Text[f]; isText {
				return nil, NewDataError(i, f, "not numeric")
			}
			v, ok := r.Values[f]
			if !ok || math.IsNaN(v) {
				return nil, NewDataError(i, f, "missing value")
			}
			if math.IsInf(v, 0) {
				return nil, NewDataError(i, f, "not finite")
			}
		}
		if math.IsNaN(r.StepNum) {
			return nil, NewDataError(i, FieldStepNum, "missing value")
		}

		k := m.apply(r.Key)
		g, seen := index[k]
		if !seen {
			g = len(groups)
			index[k] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}

	out := make([]Row, 0, len(groups))
	samples := make([]float64, 0, 8)

	for gi, members := range groups {
		first := rows[members[0]]
		avg := Row{Key: first.Key, Values: make(map[string]float64, len(a.Fields))}
		if first.Coord != nil {
			c := *first.Coord
			avg.Coord = &c
		}
		if first.Text != nil {
			avg.Text = make(map[string]string, len(first.Text))
			for k, v := range first.Text {
				avg.Text[k] = v
			}
		}

		for _, f := range a.Fields {
			samples = samples[:0]
			for _, i := range members {
				samples = append(samples, rows[i].Values[f])
			}
			avg.Values[f] = stat.Mean(samples, nil)
		}
		out = append(out, avg)

		if a.Progress != nil {
			done := gi + 1
			if done == len(groups) || (a.ProgressEvery > 0 && done%a.ProgressEvery == 0) {
				a.Progress(done, len(groups))
			}
		}
	}

	return out, nil
}

// AverageTable averages a whole table. When a.Fields is empty every numeric
// field of the table is averaged.
func (a *Averager) AverageTable(t *Table) (*Table, error) {
	fields := a.Fields
	if len(fields) == 0 {
		fields = t.Fields
	}
	run := *a
	run.Fields = fields

	rows, err := run.Average(t.Rows)
	if err != nil {
		return nil, err
	}
	return &Table{
		Fields:     append([]string(nil), fields...),
		TextFields: append([]string(nil), t.TextFields...),
		Rows:       rows,
	}, nil
}
