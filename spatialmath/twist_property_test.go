package spatialmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"pgregory.net/rapid"

	"go.viam.com/kinmath/utils"
)

// drawTwist draws an SE2 or SE3 twist whose rotation magnitude stays below pi, where the logarithm is
// the exact inverse of the exponential.
func drawTwist(t *rapid.T, label string) *Twist {
	n := rapid.SampledFrom([]int{3, 6}).Draw(t, label+"-dim")
	return drawTwistOfLength(t, label, n)
}

func drawTwistOfLength(t *rapid.T, label string, n int) *Twist {
	coords := rapid.SliceOfN(rapid.Float64Range(-5, 5), n, n).Draw(t, label+"-moment")
	// w has 1 element in SE2 and 3 in SE3
	na := n / 2
	angular := rapid.SliceOfN(rapid.Float64Range(-1.5, 1.5), na, na).Draw(t, label+"-angular")
	copy(coords[n-na:], angular)
	tw, err := FromCoordinates(coords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tw
}

func TestPropertyCoordinateRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tw := drawTwist(t, "twist")
		back, err := FromCoordinates(tw.Coordinates())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !back.Equal(tw) {
			t.Fatalf("%v != %v", back, tw)
		}
	})
}

func TestPropertyTransformRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tw := drawTwist(t, "twist")
		m := tw.Exp()
		back, err := FromTransform(m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mat.EqualApprox(back.Exp(), m, 1e-8) {
			t.Fatalf("exp(log(M)) != M for %v", tw)
		}
		if !back.AlmostEqual(tw, 1e-8) {
			t.Fatalf("log(exp(%v)) = %v", tw, back)
		}
	})
}

func TestPropertyAdditivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.SampledFrom([]int{3, 6}).Draw(t, "dim")
		a := drawTwistOfLength(t, "a", n)
		b := drawTwistOfLength(t, "b", n)
		sum, err := Add(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sa, sb, ss := a.Coordinates(), b.Coordinates(), sum.Coordinates()
		for i := range ss {
			if ss[i] != sa[i]+sb[i] {
				t.Fatalf("coordinate %d: %v != %v + %v", i, ss[i], sa[i], sb[i])
			}
		}
	})
}

func TestPropertyScalingLinearity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tw := drawTwist(t, "twist")
		k := rapid.Float64Range(-10, 10).Draw(t, "k")
		scaled, err := Mul(k, tw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s, ks := tw.Coordinates(), scaled.Coordinates()
		for i := range ks {
			if ks[i] != k*s[i] {
				t.Fatalf("coordinate %d: %v != %v * %v", i, ks[i], k, s[i])
			}
		}
	})
}

func TestPropertyTheta(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tw := drawTwist(t, "twist")
		theta := tw.Theta()
		if theta < 0 {
			t.Fatalf("negative theta %v", theta)
		}
		pureTranslation := true
		for _, w := range tw.W() {
			if w != 0 {
				pureTranslation = false
			}
		}
		if (theta == 0) != pureTranslation {
			t.Fatalf("theta %v for %v", theta, tw)
		}
		_, err := tw.Point()
		if (err != nil) != pureTranslation {
			t.Fatalf("point error %v for %v", err, tw)
		}
	})
}

func TestPropertyAxisPointIsFixed(t *testing.T) {
	// a point on the axis of a pure rotation does not move
	rapid.Check(t, func(t *rapid.T) {
		tw := drawTwist(t, "twist")
		if tw.Theta() < 1e-3 {
			t.Skip("axis too far away")
		}
		unit, _ := tw.Unit()
		p, err := unit.Point()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")
		m := unit.ExpTheta(angle)
		n := len(p)
		for i := 0; i < n; i++ {
			moved := m.At(i, n)
			for j := 0; j < n; j++ {
				moved += m.At(i, j) * p[j]
			}
			// helical twists also advance along the axis by pitch*angle
			expected := p[i]
			if n == 3 {
				expected += unit.Pitch() * angle * unit.W()[i]
			}
			if !utils.Float64AlmostEqual(moved, expected, 1e-8) {
				t.Fatalf("axis point %v moved to coordinate %d = %v, want %v", p, i, moved, expected)
			}
		}
	})
}
