package setup

import (
	"fmt"
	"strconv"
	"strings"
)

// StepMode selects how nonlinear and multi-step static results are reported
type StepMode int

const (
	Envelope   StepMode = 1 // Worst-case bound over all steps
	StepByStep StepMode = 2 // Every step
	LastStep   StepMode = 3 // Final step only
)

var stepModeNames = map[StepMode]string{
	Envelope:   "envelope",
	StepByStep: "step-by-step",
	LastStep:   "last-step",
}

func (m StepMode) String() string {
	if name, ok := stepModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("StepMode(%d)", int(m))
}

// ComboMode selects how multi-valued load combinations are reported
type ComboMode int

const (
	ComboEnvelope  ComboMode = 1
	Correspondence ComboMode = 2
	MultipleValues ComboMode = 3 // Multiple values, if possible
)

var comboModeNames = map[ComboMode]string{
	ComboEnvelope:  "envelope",
	Correspondence: "correspondence",
	MultipleValues: "multiple-values",
}

func (m ComboMode) String() string {
	if name, ok := comboModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ComboMode(%d)", int(m))
}

// StepModes returns the step modes in code order
func StepModes() []StepMode { return []StepMode{Envelope, StepByStep, LastStep} }

// ComboModes returns the combination modes in code order
func ComboModes() []ComboMode { return []ComboMode{ComboEnvelope, Correspondence, MultipleValues} }

// ParseStepMode accepts a code (1-3) or a name such as "last-step"
func ParseStepMode(setting, s string) (StepMode, error) {
	code, err := parseSelector(s, func(name string) (int, bool) {
		for m, n := range stepModeNames {
			if n == name {
				return int(m), true
			}
		}
		return 0, false
	})
	if err != nil || stepModeNames[StepMode(code)] == "" {
		return 0, &ConfigurationError{Setting: setting, Value: s, msg: "expected 1 (envelope), 2 (step-by-step) or 3 (last-step)"}
	}
	return StepMode(code), nil
}

// ParseComboMode accepts a code (1-3) or a name such as "correspondence"
func ParseComboMode(setting, s string) (ComboMode, error) {
	code, err := parseSelector(s, func(name string) (int, bool) {
		for m, n := range comboModeNames {
			if n == name {
				return int(m), true
			}
		}
		return 0, false
	})
	if err != nil || comboModeNames[ComboMode(code)] == "" {
		return 0, &ConfigurationError{Setting: setting, Value: s, msg: "expected 1 (envelope), 2 (correspondence) or 3 (multiple-values)"}
	}
	return ComboMode(code), nil
}

func parseSelector(s string, byName func(string) (int, bool)) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	if n, ok := byName(s); ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown selector %q", s)
}

// Options are the result settings a table was extracted with
type Options struct {
	Units     Unit
	NLStatic  StepMode  // Nonlinear static results
	MSStatic  StepMode  // Multi-step static results
	MVCombo   ComboMode // Multi-valued combinations
	LoadCases []string  // Cases and combinations selected for output
	Groups    []string  // Selection groups
}

// DefaultOptions returns kip-ft units with enveloped results
func DefaultOptions() Options {
	return Options{
		Units:    DefaultUnit,
		NLStatic: Envelope,
		MSStatic: Envelope,
		MVCombo:  ComboEnvelope,
	}
}

// Validate checks every selector of the options
func (o Options) Validate() error {
	if !o.Units.Valid() {
		return &ConfigurationError{Setting: "units", Value: strconv.Itoa(int(o.Units)), msg: "unit code must be between 1 and 16"}
	}
	if stepModeNames[o.NLStatic] == "" {
		return &ConfigurationError{Setting: "nl_static", Value: strconv.Itoa(int(o.NLStatic)), msg: "expected 1, 2 or 3"}
	}
	if stepModeNames[o.MSStatic] == "" {
		return &ConfigurationError{Setting: "ms_static", Value: strconv.Itoa(int(o.MSStatic)), msg: "expected 1, 2 or 3"}
	}
	if comboModeNames[o.MVCombo] == "" {
		return &ConfigurationError{Setting: "mv_combo", Value: strconv.Itoa(int(o.MVCombo)), msg: "expected 1, 2 or 3"}
	}
	return nil
}
