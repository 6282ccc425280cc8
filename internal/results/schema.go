package results

// Numeric fields of the analysis program's result tables, in table order.
// Key and element name columns are not listed.
var (
	// AreaForceShell: shell resultants at each element joint
	ShellForceFields = []string{
		"F11", "F22", "F12", "FMax", "FMin", "FAngle", "FVM",
		"M11", "M22", "M12", "MMax", "MMin", "MAngle",
		"V13", "V23", "VMax", "VAngle",
	}

	// FrameJointForce: frame end forces at each element joint
	FrameJointForceFields = []string{"F1", "F2", "F3", "M1", "M2", "M3"}

	// JointReact: support reactions
	JointReactionFields = []string{"F1", "F2", "F3", "M1", "M2", "M3"}

	// BaseReact: global base reactions about gx, gy, gz
	BaseReactionFields = []string{"Fx", "Fy", "Fz", "Mx", "My", "Mz", "gx", "gy", "gz"}
)

// ShellAverageFields are the shell resultants averaged over shared joints.
// Principal values and angles are left out since their mean has no meaning.
var ShellAverageFields = []string{"F11", "F22", "F12", "V13", "V23", "M11", "M22", "M12"}

// DefaultFields picks the fields to average from a table: the shell
// resultants when the table has all of them, otherwise every numeric field.
func DefaultFields(t *Table) []string {
	for _, f := range ShellAverageFields {
		if !t.HasField(f) {
			return append([]string(nil), t.Fields...)
		}
	}
	return append([]string(nil), ShellAverageFields...)
}

// Schemas maps a table name to its numeric fields
var Schemas = map[string][]string{
	"shell": ShellForceFields,
	"frame": FrameJointForceFields,
	"joint": JointReactionFields,
	"base":  BaseReactionFields,
}

// SchemaFields returns the fields of the named schema that t carries
func SchemaFields(name string, t *Table) ([]string, error) {
	fields, ok := Schemas[name]
	if !ok {
		return nil, NewDataError(-1, name, "unknown table schema")
	}
	var out []string
	for _, f := range fields {
		if t.HasField(f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, NewDataError(-1, name, "table has none of the schema fields")
	}
	return out, nil
}
