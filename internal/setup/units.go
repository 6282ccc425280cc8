package setup

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a unit system code of the analysis program (1-16)
type Unit int

// Unit system codes
const (
	LbInF Unit = iota + 1
	LbFtF
	KipInF
	KipFtF
	KNMmC
	KNMC
	KgfMmC
	KgfMC
	NMmC
	NMC
	TonMmC
	TonMC
	KNCmC
	KgfCmC
	NCmC
	TonCmC
)

// DefaultUnit is the unit system results are reported in unless told otherwise
const DefaultUnit = KipFtF

type unitInfo struct {
	name        string
	force       string
	length      string
	temperature string
}

var unitTable = map[Unit]unitInfo{
	LbInF:  {"lb_in_F", "lb", "in", "F"},
	LbFtF:  {"lb_ft_F", "lb", "ft", "F"},
	KipInF: {"kip_in_F", "kip", "in", "F"},
	KipFtF: {"kip_ft_F", "kip", "ft", "F"},
	KNMmC:  {"kN_mm_C", "kN", "mm", "C"},
	KNMC:   {"kN_m_C", "kN", "m", "C"},
	KgfMmC: {"kgf_mm_C", "kgf", "mm", "C"},
	KgfMC:  {"kgf_m_C", "kgf", "m", "C"},
	NMmC:   {"N_mm_C", "N", "mm", "C"},
	NMC:    {"N_m_C", "N", "m", "C"},
	TonMmC: {"Ton_mm_C", "Ton", "mm", "C"},
	TonMC:  {"Ton_m_C", "Ton", "m", "C"},
	KNCmC:  {"kN_cm_C", "kN", "cm", "C"},
	KgfCmC: {"kgf_cm_C", "kgf", "cm", "C"},
	NCmC:   {"N_cm_C", "N", "cm", "C"},
	TonCmC: {"Ton_cm_C", "Ton", "cm", "C"},
}

// Units returns every unit system in code order
func Units() []Unit {
	out := make([]Unit, 0, len(unitTable))
	for u := LbInF; u <= TonCmC; u++ {
		out = append(out, u)
	}
	return out
}

// Valid reports whether u is a known unit code
func (u Unit) Valid() bool {
	_, ok := unitTable[u]
	return ok
}

func (u Unit) String() string {
	if info, ok := unitTable[u]; ok {
		return info.name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Force returns the force unit, e.g. "kip"
func (u Unit) Force() string { return unitTable[u].force }

// Length returns the length unit, e.g. "ft"
func (u Unit) Length() string { return unitTable[u].length }

// Temperature returns the temperature unit, "F" or "C"
func (u Unit) Temperature() string { return unitTable[u].temperature }

// MomentLabel returns the moment unit, e.g. "kip-ft"
func (u Unit) MomentLabel() string {
	return u.Force() + "-" + u.Length()
}

// ParseUnit resolves a unit name such as "kN_m_C" (case-insensitive) or a
// numeric code such as "6".
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return UnitFromCode(n)
	}
	for u, info := range unitTable {
		if strings.EqualFold(info.name, s) {
			return u, nil
		}
	}
	return 0, &ConfigurationError{Setting: "units", Value: s, msg: "not a unit name or code (see 'gosap units')"}
}

// UnitFromCode validates a numeric unit code
func UnitFromCode(n int) (Unit, error) {
	u := Unit(n)
	if !u.Valid() {
		return 0, &ConfigurationError{Setting: "units", Value: strconv.Itoa(n), msg: "unit code must be between 1 and 16"}
	}
	return u, nil
}

// ConfigurationError reports an invalid result setup value
type ConfigurationError struct {
	Setting string
	Value   string
	msg     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Setting, e.Value, e.msg)
}
