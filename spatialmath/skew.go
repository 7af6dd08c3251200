package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Skew returns the 3x3 skew-symmetric matrix [w] such that [w]x == w.Cross(x).
func Skew(w r3.Vector) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -w.Z, w.Y,
		w.Z, 0, -w.X,
		-w.Y, w.X, 0,
	})
}

// Skew2 returns the 2x2 skew-symmetric matrix of a planar rotation rate.
func Skew2(w float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		0, -w,
		w, 0,
	})
}

// Vee is the inverse of Skew. The matrix is not checked for skew symmetry; the
// antisymmetric part is used so small asymmetries from numerical noise average out.
func Vee(m mat.Matrix) r3.Vector {
	return r3.Vector{
		X: (m.At(2, 1) - m.At(1, 2)) / 2,
		Y: (m.At(0, 2) - m.At(2, 0)) / 2,
		Z: (m.At(1, 0) - m.At(0, 1)) / 2,
	}
}

// Vee2 is the inverse of Skew2.
func Vee2(m mat.Matrix) float64 {
	return (m.At(1, 0) - m.At(0, 1)) / 2
}
