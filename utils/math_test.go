package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestAlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-8), test.ShouldBeFalse)
	test.That(t, NearZero(1e-10), test.ShouldBeTrue)
	test.That(t, NearZero(-1e-6), test.ShouldBeFalse)

	test.That(t, SlicesAlmostEqual([]float64{1, 2}, []float64{1, 2 + 1e-9}, 1e-8), test.ShouldBeTrue)
	test.That(t, SlicesAlmostEqual([]float64{1, 2}, []float64{1, 2, 3}, 1e-8), test.ShouldBeFalse)
	test.That(t, SlicesAlmostEqual([]float64{1, 2}, []float64{1, 3}, 1e-8), test.ShouldBeFalse)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9.)
	test.That(t, Square(-1.5), test.ShouldEqual, 2.25)
}
