package plate

import (
	"fmt"
	"math"
)

// DefaultAlpha is the reinforcement angle used when none is given (degrees).
// At 90° the two reinforcement directions coincide with the local 1 and 2 axes.
const DefaultAlpha = 90.0

// singularSin is the |sin α| below which the skew terms are undefined.
const singularSin = 1e-12

// MomentSet holds the plate moments at one evaluation point together with
// the direction of the secondary reinforcement.
type MomentSet struct {
	M11   float64 // Moment about the local 1-axis
	M22   float64 // Moment about the local 2-axis
	M12   float64 // Twisting moment
	Alpha float64 // Angle of the secondary reinforcement, CW from x (degrees)
}

// NewMomentSet creates a moment set with orthogonal reinforcement
func NewMomentSet(m11, m22, m12 float64) MomentSet {
	return MomentSet{M11: m11, M22: m22, M12: m12, Alpha: DefaultAlpha}
}

// DesignMoments holds the Wood-Armer design moments
type DesignMoments struct {
	MxPos float64 // Positive (bottom) design moment in the x-direction
	MaPos float64 // Positive (bottom) design moment in the α-direction
	MxNeg float64 // Negative (top) design moment in the x-direction
	MaNeg float64 // Negative (top) design moment in the α-direction
}

// WoodArmer evaluates the Wood-Armer equations for a skew reinforcement mesh.
//
// The fallback branches for a negative demand are kept as published, so the
// result is discontinuous where a trial moment changes sign, and the
// corrections can blow up when M22 or the x-direction term approaches zero.
// Nothing is validated: a singular alpha or non-finite input gives NaN or
// ±Inf in the result. Use Combine for the checked variant.
func WoodArmer(m MomentSet) DesignMoments {
	alpha := m.Alpha * math.Pi / 180

	cot := 1 / math.Tan(alpha)
	csc := 1 / math.Sin(alpha)

	// Moment transformed into the x-direction and the skew twist term
	mx := m.M11 + 2*m.M12*cot + m.M22*cot*cot
	twist := math.Abs((m.M12 + m.M22*cot) * csc)

	// Positive (bottom) reinforcement
	mxPos := mx + twist
	maPos := m.M22*csc*csc + twist

	if mxPos < 0 {
		mxPos = 0
		maPos = (m.M22 + math.Abs((m.M12+m.M22*cot*cot)/mx)) * csc * csc
	} else if maPos < 0 {
		maPos = 0
		mxPos = mx + math.Abs(math.Pow(m.M12+m.M22*cot, 2)/m.M22)
	}

	if mxPos <= 0 && maPos <= 0 {
		mxPos, maPos = 0, 0
	}

	// Negative (top) reinforcement
	mxNeg := mx - twist
	maNeg := m.M22*csc*csc - twist

	if mxNeg > 0 {
		mxNeg = 0
		maNeg = (m.M22 - math.Abs((m.M12+m.M22*cot*cot)/mx)) * csc * csc
	} else if maNeg > 0 {
		maNeg = 0
		mxNeg = mx - math.Abs(math.Pow(m.M12+m.M22*cot, 2)/m.M22)
	}

	if mxNeg >= 0 && maNeg >= 0 {
		mxNeg, maNeg = 0, 0
	}

	return DesignMoments{
		MxPos: mxPos,
		MaPos: maPos,
		MxNeg: mxNeg,
		MaNeg: maNeg,
	}
}

// Combine evaluates the Wood-Armer equations and rejects degenerate input.
// A DomainError is returned when alpha is a multiple of 180°, when a moment
// is not finite, or when the equations themselves produce a non-finite value.
func (m MomentSet) Combine() (DesignMoments, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{{"M11", m.M11}, {"M22", m.M22}, {"M12", m.M12}, {"alpha", m.Alpha}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return DesignMoments{}, &DomainError{Moments: m, msg: fmt.Sprintf("%s is not finite", v.name)}
		}
	}

	if math.Abs(math.Sin(m.Alpha*math.Pi/180)) < singularSin {
		return DesignMoments{}, &DomainError{Moments: m, msg: fmt.Sprintf("alpha=%g° is a multiple of 180°", m.Alpha)}
	}

	d := WoodArmer(m)
	if !d.finite() {
		return DesignMoments{}, &DomainError{Moments: m, msg: "degenerate demand gives a non-finite design moment"}
	}
	return d, nil
}

// Combine is shorthand for MomentSet{m11, m22, m12, alpha}.Combine().
func Combine(m11, m22, m12, alpha float64) (DesignMoments, error) {
	return MomentSet{M11: m11, M22: m22, M12: m12, Alpha: alpha}.Combine()
}

func (d DesignMoments) finite() bool {
	for _, v := range []float64{d.MxPos, d.MaPos, d.MxNeg, d.MaNeg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DomainError reports moments the Wood-Armer equations cannot be applied to
type DomainError struct {
	Moments MomentSet
	msg     string
}

func (e *DomainError) Error() string {
	return "wood-armer: " + e.msg
}
