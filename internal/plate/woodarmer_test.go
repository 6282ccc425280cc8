package plate

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func checkMoments(t *testing.T, name string, got, want DesignMoments) {
	t.Helper()
	pairs := []struct {
		label     string
		got, want float64
	}{
		{"MxPos", got.MxPos, want.MxPos},
		{"MaPos", got.MaPos, want.MaPos},
		{"MxNeg", got.MxNeg, want.MxNeg},
		{"MaNeg", got.MaNeg, want.MaNeg},
	}
	for _, p := range pairs {
		if !scalar.EqualWithinAbs(p.got, p.want, tol) {
			t.Errorf("%s: %s = %.12g, want %.12g", name, p.label, p.got, p.want)
		}
	}
}

func TestCombineReference(t *testing.T) {
	tests := []struct {
		name string
		m    MomentSet
		want DesignMoments
	}{
		{
			name: "orthogonal sagging",
			m:    MomentSet{M11: 100, M22: 50, M12: 20, Alpha: 90},
			want: DesignMoments{MxPos: 120, MaPos: 70},
		},
		{
			name: "skew sagging",
			m:    MomentSet{M11: 100, M22: 50, M12: 20, Alpha: 60},
			want: DesignMoments{MxPos: 196.18802153517, MaPos: 123.094010767585},
		},
		{
			name: "orthogonal hogging",
			m:    MomentSet{M11: -80, M22: -40, M12: 15, Alpha: 90},
			want: DesignMoments{MxNeg: -95, MaNeg: -55},
		},
		{
			name: "skew mixed",
			m:    MomentSet{M11: -80, M22: 30, M12: 25, Alpha: 75},
			want: DesignMoments{MaPos: 32.6054792125713, MxNeg: -98.652584291483, MaNeg: -2.05004391303913},
		},
		{
			name: "negative M22 fallback",
			m:    MomentSet{M11: 40, M22: -60, M12: 10, Alpha: 90},
			want: DesignMoments{MxPos: 41.6666666666667, MaNeg: -60.25},
		},
		{
			name: "twist dominated",
			m:    MomentSet{M11: 10, M22: 5, M12: 30, Alpha: 90},
			want: DesignMoments{MxPos: 40, MaPos: 35, MxNeg: -20, MaNeg: -25},
		},
		{
			name: "twist dominated hogging",
			m:    MomentSet{M11: -10, M22: -5, M12: 30, Alpha: 90},
			want: DesignMoments{MxPos: 20, MaPos: 25, MxNeg: -40, MaNeg: -35},
		},
		{
			name: "45 degree mesh",
			m:    MomentSet{M11: 120, M22: -10, M12: 5, Alpha: 45},
			want: DesignMoments{MxPos: 122.5, MaNeg: -20.0833333333333},
		},
		{
			name: "obtuse mesh",
			m:    MomentSet{M11: -5, M22: -2, M12: 30, Alpha: 120},
			want: DesignMoments{MxNeg: -76.2820323027551, MaNeg: -38.6410161513775},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.m.Combine()
			if err != nil {
				t.Fatalf("Combine() error = %v", err)
			}
			checkMoments(t, tt.name, got, tt.want)
		})
	}
}

func TestCombineWithoutTwistClamps(t *testing.T) {
	values := []float64{-250, -37.5, -1, 0, 0.5, 12, 400}
	for _, m11 := range values {
		for _, m22 := range values {
			got, err := Combine(m11, m22, 0, 90)
			if err != nil {
				t.Fatalf("Combine(%g, %g, 0, 90) error = %v", m11, m22, err)
			}
			want := DesignMoments{
				MxPos: math.Max(m11, 0),
				MaPos: math.Max(m22, 0),
				MxNeg: math.Min(m11, 0),
				MaNeg: math.Min(m22, 0),
			}
			checkMoments(t, fmt.Sprintf("M11=%g M22=%g", m11, m22), got, want)
		}
	}
}

func TestCombineSignInvariants(t *testing.T) {
	moments := []float64{-300, -45, -2.5, 0, 3, 60, 275}
	alphas := []float64{30, 45, 60, 75, 90, 105, 135, 150}
	for _, alpha := range alphas {
		for _, m11 := range moments {
			for _, m22 := range moments {
				for _, m12 := range moments {
					d, err := Combine(m11, m22, m12, alpha)
					if err != nil {
						t.Fatalf("Combine(%g, %g, %g, %g) error = %v", m11, m22, m12, alpha, err)
					}
					if d.MxPos < 0 || d.MaPos < 0 || d.MxNeg > 0 || d.MaNeg > 0 {
						t.Errorf("Combine(%g, %g, %g, %g) = %+v violates sign convention", m11, m22, m12, alpha, d)
					}
				}
			}
		}
	}
}

func TestCombineSingularAlpha(t *testing.T) {
	for _, alpha := range []float64{0, 180, -180, 360, 540} {
		_, err := Combine(10, 5, 2, alpha)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("Combine(alpha=%g) error = %v, want DomainError", alpha, err)
			continue
		}
		if de.Moments.Alpha != alpha {
			t.Errorf("DomainError.Moments.Alpha = %g, want %g", de.Moments.Alpha, alpha)
		}
	}
}

func TestCombineNonFiniteInput(t *testing.T) {
	inputs := []MomentSet{
		{M11: math.NaN(), M22: 1, M12: 1, Alpha: 90},
		{M11: 1, M22: math.Inf(1), M12: 1, Alpha: 90},
		{M11: 1, M22: 1, M12: math.Inf(-1), Alpha: 90},
		{M11: 1, M22: 1, M12: 1, Alpha: math.NaN()},
	}
	for _, m := range inputs {
		if _, err := m.Combine(); err == nil {
			t.Errorf("Combine(%+v) expected error", m)
		}
	}
}

func TestWoodArmerSingularAlphaIsNotFinite(t *testing.T) {
	d := WoodArmer(MomentSet{M11: 10, M22: 5, M12: 2, Alpha: 0})
	if d.finite() {
		t.Errorf("WoodArmer(alpha=0) = %+v, want non-finite values", d)
	}
}

func TestNewMomentSetDefaultsAlpha(t *testing.T) {
	m := NewMomentSet(1, 2, 3)
	if m.Alpha != DefaultAlpha {
		t.Errorf("Alpha = %g, want %g", m.Alpha, DefaultAlpha)
	}
}

func ExampleCombine() {
	d, err := Combine(100, 50, 20, 90)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Mx+ = %.2f  Ma+ = %.2f\n", d.MxPos, d.MaPos)
	fmt.Printf("Mx- = %.2f  Ma- = %.2f\n", d.MxNeg, d.MaNeg)
	// Output:
	// Mx+ = 120.00  Ma+ = 70.00
	// Mx- = 0.00  Ma- = 0.00
}
