package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinmath/utils"
)

// Dimension identifies the group a twist belongs to.
type Dimension int

// The two supported groups. The values are the number of elements of the moment part.
const (
	SE2 Dimension = 2
	SE3 Dimension = 3
)

// String returns the group name.
func (d Dimension) String() string {
	switch d {
	case SE2:
		return "SE2"
	case SE3:
		return "SE3"
	default:
		return "unknown"
	}
}

// Twist is the exponential coordinate encoding of a rigid body displacement: a moment part v and an
// angular part w. In SE2, v has two elements and w is a single signed rate about the out of plane
// axis. In SE3 both have three elements.
//
// A Twist is immutable; every operation returns a new value, so twists may be shared freely
// between goroutines.
type Twist struct {
	dim Dimension
	// In SE2 only v.X, v.Y and w.Z are used; the rest stay zero.
	v r3.Vector
	w r3.Vector
}

func newTwist2(v r2.Point, w float64) *Twist {
	return &Twist{dim: SE2, v: r3.Vector{X: v.X, Y: v.Y}, w: r3.Vector{Z: w}}
}

func newTwist3(v, w r3.Vector) *Twist {
	return &Twist{dim: SE3, v: v, w: w}
}

// FromCoordinates creates a twist from its flat coordinate vector, v followed by w. A vector of
// length 3 produces an SE2 twist and one of length 6 an SE3 twist.
func FromCoordinates(s []float64) (*Twist, error) {
	switch len(s) {
	case 3:
		return newTwist2(r2.Point{X: s[0], Y: s[1]}, s[2]), nil
	case 6:
		return newTwist3(r3.Vector{X: s[0], Y: s[1], Z: s[2]}, r3.Vector{X: s[3], Y: s[4], Z: s[5]}), nil
	default:
		return nil, errors.Wrap(ErrInvalidArgument, utils.NewLengthError("twist coordinates", len(s), 3, 6).Error())
	}
}

// FromTransform creates the twist whose exponential is the homogeneous transform m. m must be 3x3
// (SE2) or 4x4 (SE3) with a bottom-right element of 1. The matrix is not checked to be a valid
// rigid transform.
func FromTransform(m mat.Matrix) (*Twist, error) {
	n, err := checkAugmented(m)
	if err != nil {
		return nil, err
	}
	if !isHomogeneous(m) {
		return nil, newInvalidArgumentError("transform must have a bottom-right element of 1, got %v", m.At(n-1, n-1))
	}
	if n == 4 {
		return fromAlgebra(LogSE3(m)), nil
	}
	return fromAlgebra(LogSE2(m)), nil
}

// FromLieAlgebra creates a twist directly from its augmented skew-symmetric matrix, the inverse of
// LieAlgebra. The bottom-right element must not be 1, otherwise m is a group element and
// FromTransform should be used instead.
func FromLieAlgebra(m mat.Matrix) (*Twist, error) {
	if _, err := checkAugmented(m); err != nil {
		return nil, err
	}
	if isHomogeneous(m) {
		return nil, newInvalidArgumentError("Lie algebra element must not have a bottom-right element of 1")
	}
	return fromAlgebra(m), nil
}

// FromMatrix creates a twist from either a homogeneous transform or a Lie algebra element,
// depending on whether the bottom-right element is 1.
func FromMatrix(m mat.Matrix) (*Twist, error) {
	if _, err := checkAugmented(m); err != nil {
		return nil, err
	}
	if isHomogeneous(m) {
		return FromTransform(m)
	}
	return FromLieAlgebra(m)
}

// FromMat4 creates an SE3 twist from a mathgl homogeneous transform.
func FromMat4(m mgl64.Mat4) (*Twist, error) {
	dense := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			dense.Set(i, j, m.At(i, j))
		}
	}
	return FromTransform(dense)
}

func fromAlgebra(m mat.Matrix) *Twist {
	block, col := DecomposeTransform(m)
	if len(col) == 2 {
		return newTwist2(r2.Point{X: col[0], Y: col[1]}, Vee2(block))
	}
	return newTwist3(r3.Vector{X: col[0], Y: col[1], Z: col[2]}, Vee(block))
}

// NewRevolute2D creates the SE2 twist of a unit rate rotation about the point q.
func NewRevolute2D(q r2.Point) *Twist {
	v := r3.Vector{Z: 1}.Cross(r3.Vector{X: q.X, Y: q.Y}).Mul(-1)
	return newTwist2(r2.Point{X: v.X, Y: v.Y}, 1)
}

// NewRevolute creates the SE3 twist of a unit rate rotation about the axis with direction a passing
// through q. a is normalized.
func NewRevolute(a, q r3.Vector) (*Twist, error) {
	if a.Norm2() == 0 {
		return nil, newInvalidArgumentError("rotation axis direction must be non-zero")
	}
	w := a.Normalize()
	return newTwist3(w.Cross(q).Mul(-1), w), nil
}

// NewHelical creates the SE3 twist of a screw motion about the axis with direction a through q,
// translating pitch units along the axis per radian of rotation.
func NewHelical(a, q r3.Vector, pitch float64) (*Twist, error) {
	t, err := NewRevolute(a, q)
	if err != nil {
		return nil, err
	}
	return newTwist3(t.v.Add(t.w.Mul(pitch)), t.w), nil
}

// NewPrismatic2D creates the SE2 twist of a unit rate translation along a. a is normalized.
func NewPrismatic2D(a r2.Point) (*Twist, error) {
	if a.Norm() == 0 {
		return nil, newInvalidArgumentError("translation direction must be non-zero")
	}
	return newTwist2(a.Normalize(), 0), nil
}

// NewPrismatic creates the SE3 twist of a unit rate translation along a. a is normalized.
func NewPrismatic(a r3.Vector) (*Twist, error) {
	if a.Norm2() == 0 {
		return nil, newInvalidArgumentError("translation direction must be non-zero")
	}
	return newTwist3(a.Normalize(), r3.Vector{}), nil
}

// Dimension returns whether the twist belongs to SE2 or SE3.
func (t *Twist) Dimension() Dimension {
	return t.dim
}

// V returns the moment part, of length 2 or 3.
func (t *Twist) V() []float64 {
	if t.dim == SE2 {
		return []float64{t.v.X, t.v.Y}
	}
	return []float64{t.v.X, t.v.Y, t.v.Z}
}

// W returns the angular part, of length 1 or 3.
func (t *Twist) W() []float64 {
	if t.dim == SE2 {
		return []float64{t.w.Z}
	}
	return []float64{t.w.X, t.w.Y, t.w.Z}
}

// Coordinates returns the flat coordinate vector, v followed by w.
func (t *Twist) Coordinates() []float64 {
	return append(t.V(), t.W()...)
}

// LieAlgebra returns the augmented skew-symmetric matrix of the twist: the skew-symmetric matrix of
// w in the top-left block, v as the last column and a zero bottom row.
func (t *Twist) LieAlgebra() *mat.Dense {
	if t.dim == SE2 {
		return ComposeTransform(Skew2(t.w.Z), t.V(), 0)
	}
	return ComposeTransform(Skew(t.w), t.V(), 0)
}

// Equal reports whether both twists have the same dimension and identical coordinates.
func (t *Twist) Equal(other *Twist) bool {
	if other == nil {
		return false
	}
	return t.dim == other.dim && t.v == other.v && t.w == other.w
}

// AlmostEqual reports whether both twists have the same dimension and coordinates within tol.
func (t *Twist) AlmostEqual(other *Twist, tol float64) bool {
	if other == nil || t.dim != other.dim {
		return false
	}
	return utils.SlicesAlmostEqual(t.Coordinates(), other.Coordinates(), tol)
}

// Add returns the coordinate-wise sum of two twists. This is addition in the Lie algebra, not
// composition of the displacements: (a+b).Exp() is in general not a.Exp()*b.Exp(). The sum only has a
// direct rigid motion interpretation when both twists are expressed in a common frame, e.g. when
// summing velocities.
func Add(a, b *Twist) (*Twist, error) {
	if a == nil || b == nil {
		return nil, newInvalidOperandError(utils.NewUnexpectedTypeError(&Twist{}, nil))
	}
	if a.dim != b.dim {
		return nil, newInvalidOperandError(errors.Errorf("cannot add %v twist to %v twist", b.dim, a.dim))
	}
	return &Twist{dim: a.dim, v: a.v.Add(b.v), w: a.w.Add(b.w)}, nil
}

// Add is shorthand for Add(t, other).
func (t *Twist) Add(other *Twist) (*Twist, error) {
	return Add(t, other)
}

// Scale returns the twist with every coordinate multiplied by k.
func (t *Twist) Scale(k float64) *Twist {
	return &Twist{dim: t.dim, v: t.v.Mul(k), w: t.w.Mul(k)}
}

// Neg returns the twist with every coordinate negated.
func (t *Twist) Neg() *Twist {
	return t.Scale(-1)
}

// Mul multiplies a twist by a real scalar, with the operands in either order. Exactly one operand
// must be a *Twist and the other any Go integer or floating point type. Complex numbers, strings
// and untyped values such as nil return ErrInvalidOperand.
func Mul(a, b interface{}) (*Twist, error) {
	if t, ok := a.(*Twist); ok && t != nil {
		k, err := scalar(b)
		if err != nil {
			return nil, err
		}
		return t.Scale(k), nil
	}
	if t, ok := b.(*Twist); ok && t != nil {
		k, err := scalar(a)
		if err != nil {
			return nil, err
		}
		return t.Scale(k), nil
	}
	return nil, newInvalidOperandError(utils.NewUnexpectedTypeError(&Twist{}, a))
}

func scalar(x interface{}) (float64, error) {
	switch k := x.(type) {
	case float64:
		return k, nil
	case float32:
		return float64(k), nil
	case int:
		return float64(k), nil
	case int8:
		return float64(k), nil
	case int16:
		return float64(k), nil
	case int32:
		return float64(k), nil
	case int64:
		return float64(k), nil
	case uint:
		return float64(k), nil
	case uint8:
		return float64(k), nil
	case uint16:
		return float64(k), nil
	case uint32:
		return float64(k), nil
	case uint64:
		return float64(k), nil
	default:
		return 0, newInvalidOperandError(utils.NewUnexpectedTypeError(float64(0), x))
	}
}

// Exp returns the homogeneous transform generated by the twist at unit parameter: a 3x3 matrix for
// SE2 and 4x4 for SE3.
func (t *Twist) Exp() *mat.Dense {
	if t.dim == SE2 {
		return ExpSE2(t.LieAlgebra())
	}
	return ExpSE3(t.LieAlgebra())
}

// ExpTheta returns the transform produced by rotating through theta about the twist axis, or by
// translating theta along v for a pure translation. w (or v when w is zero) must already be unit
// norm; it is not renormalized.
func (t *Twist) ExpTheta(theta float64) *mat.Dense {
	if t.dim == SE2 {
		return ExpSE2Theta(t.LieAlgebra(), theta)
	}
	return ExpSE3Theta(t.LieAlgebra(), theta)
}

// Transform is a synonym for Exp.
func (t *Twist) Transform() *mat.Dense {
	return t.Exp()
}

// Theta returns the rotation magnitude, the norm of w. It is zero exactly for pure translations.
func (t *Twist) Theta() float64 {
	if t.dim == SE2 {
		return math.Abs(t.w.Z)
	}
	// hypot does not underflow to zero for tiny non-zero rotations
	return math.Hypot(math.Hypot(t.w.X, t.w.Y), t.w.Z)
}

// Pitch returns w·v, the translation along the screw axis per unit rotation. It is always zero for
// SE2 twists.
func (t *Twist) Pitch() float64 {
	if t.dim == SE2 {
		return 0
	}
	return t.w.Dot(t.v)
}

// Point returns a point on the screw axis, (w × v) / theta. For SE2 the result has two elements.
// The axis of a pure translation lies at infinity and ErrDegenerateAxis is returned.
func (t *Twist) Point() ([]float64, error) {
	theta := t.Theta()
	if theta == 0 {
		return nil, newDegenerateAxisError("axis point")
	}
	// the SE2 fields are already embedded in 3D with a zero z moment.
	p := t.w.Cross(t.v).Mul(1 / theta)
	if t.dim == SE2 {
		return []float64{p.X, p.Y}, nil
	}
	return []float64{p.X, p.Y, p.Z}, nil
}

// Line returns the screw axis as a Plücker line with direction w. Its moment is the component of -v
// perpendicular to w, -v + pitch·w for a unit w, so the line passes through Point. For helical
// twists this differs from -v - pitch·w, which is not perpendicular to w; the two agree when the
// pitch is zero. Only SE3 twists with a non-zero rotation have an axis line.
func (t *Twist) Line() (*PluckerLine, error) {
	if t.dim != SE3 {
		return nil, newInvalidArgumentError("screw axis line is only defined for SE3 twists")
	}
	theta := t.Theta()
	if theta == 0 {
		return nil, newDegenerateAxisError("axis line")
	}
	return NewPluckerLine(t.w, t.w.Mul(t.Pitch()/utils.Square(theta)).Sub(t.v))
}

// DualQuaternion returns the pose generated by an SE3 twist at unit parameter.
func (t *Twist) DualQuaternion() (*DualQuaternion, error) {
	if t.dim != SE3 {
		return nil, newInvalidArgumentError("dual quaternion poses are only defined for SE3 twists")
	}
	return NewDualQuaternionFromTransform(t.Exp()), nil
}

// FromDualQuaternion returns the SE3 twist that generates the pose q.
func FromDualQuaternion(q *DualQuaternion) (*Twist, error) {
	if q == nil {
		return nil, newInvalidArgumentError("dual quaternion is nil")
	}
	return FromTransform(q.ToTransform())
}

// Compose returns the twist generating the displacement twists[0].Exp() * twists[1].Exp() * ...,
// applied right to left. SE3 poses are chained as unit dual quaternions. The result is the principal
// logarithm, so chains that rotate by more than pi come back wrapped.
func Compose(twists ...*Twist) (*Twist, error) {
	if len(twists) == 0 {
		return nil, newInvalidArgumentError("no twists to compose")
	}
	for i, t := range twists {
		if t == nil {
			return nil, newInvalidOperandError(errors.Errorf("twist %d is nil", i))
		}
		if t.dim != twists[0].dim {
			return nil, newInvalidOperandError(errors.Errorf("cannot compose %v twist with %v twist", t.dim, twists[0].dim))
		}
	}

	if twists[0].dim == SE2 {
		pose := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		for _, t := range twists {
			var next mat.Dense
			next.Mul(pose, t.Exp())
			pose = &next
		}
		return FromTransform(pose)
	}

	pose := NewDualQuaternion()
	for _, t := range twists {
		q, err := t.DualQuaternion()
		if err != nil {
			return nil, err
		}
		pose.Quat = pose.Transformation(q.Quat)
	}
	return FromDualQuaternion(pose)
}

// Unit returns the twist scaled so its rotation magnitude is 1, or its translation magnitude is 1 for
// a pure translation, together with the removed magnitude. The zero twist is returned unchanged with
// a magnitude of 0.
func (t *Twist) Unit() (*Twist, float64) {
	m := t.Theta()
	if m == 0 {
		m = t.v.Norm()
	}
	if m == 0 {
		return t, 0
	}
	return t.Scale(1 / m), m
}
