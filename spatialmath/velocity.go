package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// VelocityBetween returns the constant body frame twist that carries the pose from onto the pose to
// in dt, log(from⁻¹ to) / dt. Both poses must be rigid homogeneous transforms of the same size.
func VelocityBetween(from, to mat.Matrix, dt float64) (*Twist, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, newInvalidArgumentError("time step must be positive and finite, got %v", dt)
	}
	n, err := checkAugmented(from)
	if err != nil {
		return nil, err
	}
	m, err := checkAugmented(to)
	if err != nil {
		return nil, err
	}
	if n != m {
		return nil, newInvalidArgumentError("poses must have the same size, got %dx%d and %dx%d", n, n, m, m)
	}
	if !isHomogeneous(from) {
		return nil, newInvalidArgumentError("transform must have a bottom-right element of 1, got %v", from.At(n-1, n-1))
	}

	var rel mat.Dense
	rel.Mul(rigidInverse(from), to)
	t, err := FromTransform(&rel)
	if err != nil {
		return nil, err
	}
	return t.Scale(1 / dt), nil
}

// QuatToAngularVelocity returns the angular velocity in rad/s of turning by the rotation diff over dt.
func QuatToAngularVelocity(diff quat.Number, dt float64) r3.Vector {
	aa := QuatToR4AA(diff)
	return aa.Axis().Mul(aa.Theta / dt)
}

// rigidInverse inverts a rigid transform as [Rᵀ | -Rᵀp].
func rigidInverse(m mat.Matrix) *mat.Dense {
	rot, p := DecomposeTransform(m)
	n := len(p)
	var p2 mat.VecDense
	p2.MulVec(rot.T(), mat.NewVecDense(n, p))
	p2.ScaleVec(-1, &p2)
	return ComposeTransform(rot.T(), p2.RawVector().Data, 1)
}
