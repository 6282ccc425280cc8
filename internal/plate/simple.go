package plate

import "math"

// SimpleMoments holds design moments obtained by adding the magnitude of the
// twisting moment to each orthogonal moment.
type SimpleMoments struct {
	M11Pos float64
	M11Neg float64
	M22Pos float64
	M22Neg float64
}

// Simple combines the moments without regard to alpha: Mii ± |M12|, with the
// sign of Mii deciding whether the positive or the negative face governs.
// A zero moment is treated as negative.
func Simple(m MomentSet) SimpleMoments {
	var s SimpleMoments
	twist := math.Abs(m.M12)

	if m.M11 > 0 {
		s.M11Pos = m.M11 + twist
	} else {
		s.M11Neg = m.M11 - twist
	}

	if m.M22 > 0 {
		s.M22Pos = m.M22 + twist
	} else {
		s.M22Neg = m.M22 - twist
	}

	return s
}
