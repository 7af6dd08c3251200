package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func TestDualQuaternionTransform(t *testing.T) {
	identity := NewDualQuaternion()
	test.That(t, identity.Rotation(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, identity.Translation(), test.ShouldResemble, r3.Vector{})

	q := NewDualQuaternion()
	q.Quat.Real = (&R4AA{Theta: math.Pi / 2, RZ: 1}).ToQuat()
	q.SetTranslation(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, cmp.Diff(r3.Vector{X: 1, Y: 2, Z: 3}, q.Translation(), approx), test.ShouldBeEmpty)

	expected := mat.NewDense(4, 4, []float64{
		0, -1, 0, 1,
		1, 0, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	})
	test.That(t, mat.EqualApprox(q.ToTransform(), expected, 1e-9), test.ShouldBeTrue)

	back := NewDualQuaternionFromTransform(expected)
	test.That(t, mat.EqualApprox(back.ToTransform(), expected, 1e-9), test.ShouldBeTrue)

	moved := *q
	moved.SetTranslation(r3.Vector{})
	test.That(t, cmp.Diff(r3.Vector{X: 1, Y: 2, Z: 3}, q.Translation(), approx), test.ShouldBeEmpty)
	test.That(t, cmp.Diff(r3.Vector{}, moved.Translation(), approx), test.ShouldBeEmpty)
}

func TestDualQuaternionComposition(t *testing.T) {
	a, err := FromCoordinates([]float64{1, 0, 0.5, 0, 0.3, 0.2})
	test.That(t, err, test.ShouldBeNil)
	b, err := FromCoordinates([]float64{-0.2, 1, 0, 0.7, 0, -0.1})
	test.That(t, err, test.ShouldBeNil)

	qa, err := a.DualQuaternion()
	test.That(t, err, test.ShouldBeNil)
	qb, err := b.DualQuaternion()
	test.That(t, err, test.ShouldBeNil)

	composed := &DualQuaternion{qa.Transformation(qb.Quat)}

	var want mat.Dense
	want.Mul(a.Exp(), b.Exp())
	test.That(t, mat.EqualApprox(composed.ToTransform(), &want, 1e-9), test.ShouldBeTrue)
}
