// Package spatialmath defines spatial mathematical operations: twists over SE(2) and SE(3), their
// exponential and logarithm maps, screw axes as Plücker lines, and interop with axis-angle and dual
// quaternion pose representations.
package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion defines functions to perform rigid transformations in 3D.
type DualQuaternion struct {
	Quat dualquat.Number
}

// NewDualQuaternion returns a pointer to a new DualQuaternion object whose Quaternion is an identity Quaternion.
// Since the real part of a dual quaternion should be a unit quaternion, not all zeroes, this should be used
// instead of &DualQuaternion{}.
func NewDualQuaternion() *DualQuaternion {
	return &DualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewDualQuaternionFromTransform returns the dual quaternion of a 4x4 homogeneous transform.
func NewDualQuaternionFromTransform(m mat.Matrix) *DualQuaternion {
	rot, trans := DecomposeTransform(m)
	q := &DualQuaternion{dualquat.Number{Real: RotationMatrixToQuat(rot)}}
	q.SetTranslation(r3.Vector{X: trans[0], Y: trans[1], Z: trans[2]})
	return q
}

// Rotation returns the rotation quaternion.
func (q *DualQuaternion) Rotation() quat.Number {
	return q.Quat.Real
}

// Translation returns the translation encoded in the dual part, 2 * dual * conj(real).
func (q *DualQuaternion) Translation() r3.Vector {
	t := quat.Scale(2, quat.Mul(q.Quat.Dual, quat.Conj(q.Quat.Real)))
	return r3.Vector{X: t.Imag, Y: t.Jmag, Z: t.Kmag}
}

// SetTranslation correctly sets the translation quaternion against the rotation.
func (q *DualQuaternion) SetTranslation(t r3.Vector) {
	q.Quat.Dual = quat.Mul(quat.Number{Imag: t.X / 2, Jmag: t.Y / 2, Kmag: t.Z / 2}, q.Quat.Real)
}

// Transformation multiplies the dual quat contained in this DualQuaternion by another dual quat.
func (q *DualQuaternion) Transformation(by dualquat.Number) dualquat.Number {
	// Ensure we are multiplying by a unit dual quaternion
	if vecLen := quat.Abs(by.Real); vecLen != 1 {
		by.Real = quat.Scale(1/vecLen, by.Real)
		by.Dual = quat.Scale(1/vecLen, by.Dual)
	}

	return dualquat.Mul(q.Quat, by)
}

// ToTransform returns the 4x4 homogeneous transform of the pose.
func (q *DualQuaternion) ToTransform() *mat.Dense {
	t := q.Translation()
	return se3Transform(QuatToRotationMatrix(q.Quat.Real), t)
}
