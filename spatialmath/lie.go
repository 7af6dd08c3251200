package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinmath/utils"
)

// Closed-form exponential and logarithm maps for SE(2) and SE(3). Lie algebra elements are
// augmented matrices with a skew-symmetric block, a moment column and a zero bottom row.
// Group elements are homogeneous transforms.

// ExpSE3 maps a 4x4 Lie algebra element to the homogeneous transform it generates at unit
// parameter. The rotation magnitude is the norm of the angular part.
func ExpSE3(s mat.Matrix) *mat.Dense {
	w, v := splitSE3(s)
	theta := w.Norm()
	if utils.NearZero(theta) {
		return se3Transform(mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), v)
	}
	return expSE3(w.Mul(1/theta), v.Mul(1/theta), theta)
}

// ExpSE3Theta maps a 4x4 Lie algebra element to the transform produced by rotating through theta
// about its axis. The angular part must already be unit norm, or zero for a pure translation in
// which case the moment must be unit norm. Neither is renormalized.
func ExpSE3Theta(s mat.Matrix, theta float64) *mat.Dense {
	w, v := splitSE3(s)
	if utils.NearZero(w.Norm()) {
		return se3Transform(mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), v.Mul(theta))
	}
	return expSE3(w, v, theta)
}

// ExpSE2 is the planar counterpart of ExpSE3 and maps a 3x3 Lie algebra element to a 3x3
// homogeneous transform.
func ExpSE2(s mat.Matrix) *mat.Dense {
	w, v := splitSE2(s)
	return expSE2(w, v)
}

// ExpSE2Theta is the planar counterpart of ExpSE3Theta.
func ExpSE2Theta(s mat.Matrix, theta float64) *mat.Dense {
	w, v := splitSE2(s)
	return expSE2(w*theta, v.Mul(theta))
}

// LogSE3 is the closed-form logarithm of a 4x4 homogeneous transform. The rotation angle of the
// result lies in [0, pi].
func LogSE3(t mat.Matrix) *mat.Dense {
	rot, trans := DecomposeTransform(t)
	p := r3.Vector{X: trans[0], Y: trans[1], Z: trans[2]}

	w := QuatToR4AA(RotationMatrixToQuat(rot)).ToR3()
	theta := w.Norm()
	if utils.NearZero(theta) {
		return ComposeTransform(Skew(r3.Vector{}), trans, 0)
	}

	// v = theta * G(theta)^-1 * p, with G the left Jacobian applied to the unit moment.
	u := w.Mul(1 / theta)
	half := theta / 2
	uxp := u.Cross(p)
	uxuxp := u.Cross(uxp)
	v := p.Sub(uxp.Mul(half)).Add(uxuxp.Mul(1 - half/math.Tan(half)))
	return ComposeTransform(Skew(w), []float64{v.X, v.Y, v.Z}, 0)
}

// LogSE2 is the closed-form logarithm of a 3x3 homogeneous transform. The rotation of the result
// lies in (-pi, pi].
func LogSE2(t mat.Matrix) *mat.Dense {
	rot, trans := DecomposeTransform(t)
	p := r2.Point{X: trans[0], Y: trans[1]}

	w := math.Atan2(rot.At(1, 0), rot.At(0, 0))

	// v = V(w)^-1 p with V = (sin w / w) I + ((1 - cos w) / w) J. In half angles the inverse is
	// (w/2) cot(w/2) I - (w/2) J, which stays accurate for small w.
	c := 1.0
	if w != 0 {
		c = (w / 2) / math.Tan(w/2)
	}
	v := p.Mul(c).Sub(p.Ortho().Mul(w / 2))
	return ComposeTransform(Skew2(w), []float64{v.X, v.Y}, 0)
}

// expSE3 returns the rotation of theta about the unit axis w, taken through its quaternion, and
// the matching translation G(theta) v, where G = I theta + (1 - cos) [w] + (theta - sin) [w]^2.
func expSE3(w, v r3.Vector, theta float64) *mat.Dense {
	rot := QuatToRotationMatrix(R3ToR4(w.Mul(theta)).ToQuat())

	wxv := w.Cross(v)
	wxwxv := w.Cross(wxv)
	p := v.Mul(theta).Add(wxv.Mul(1 - math.Cos(theta))).Add(wxwxv.Mul(theta - math.Sin(theta)))
	return se3Transform(rot, p)
}

// expSE2 maps a planar twist with signed rotation w and moment v to R(w) and V(w) v, where
// V = (sin w / w) I + ((1 - cos w) / w) J. 1 - cos w is evaluated as 2 sin^2(w/2).
func expSE2(w float64, v r2.Point) *mat.Dense {
	a, b := 1.0, 0.0
	if w != 0 {
		half := math.Sin(w / 2)
		a = math.Sin(w) / w
		b = 2 * half * half / w
	}
	p := v.Mul(a).Add(v.Ortho().Mul(b))

	c, s := math.Cos(w), math.Sin(w)
	return mat.NewDense(3, 3, []float64{
		c, -s, p.X,
		s, c, p.Y,
		0, 0, 1,
	})
}

func se3Transform(rot mat.Matrix, p r3.Vector) *mat.Dense {
	return ComposeTransform(rot, []float64{p.X, p.Y, p.Z}, 1)
}

func splitSE3(s mat.Matrix) (r3.Vector, r3.Vector) {
	block, col := DecomposeTransform(s)
	return Vee(block), r3.Vector{X: col[0], Y: col[1], Z: col[2]}
}

func splitSE2(s mat.Matrix) (float64, r2.Point) {
	block, col := DecomposeTransform(s)
	return Vee2(block), r2.Point{X: col[0], Y: col[1]}
}
