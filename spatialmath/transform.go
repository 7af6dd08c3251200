package spatialmath

import (
	"gonum.org/v1/gonum/mat"
)

// DecomposeTransform splits an augmented (n+1)x(n+1) matrix into its top-left nxn block and its
// last column above the bottom row. It works equally on homogeneous transforms (rotation block and
// translation) and on Lie algebra elements (skew block and moment).
func DecomposeTransform(m mat.Matrix) (*mat.Dense, []float64) {
	r, _ := m.Dims()
	n := r - 1
	block := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			block.Set(i, j, m.At(i, j))
		}
		col[i] = m.At(i, n)
	}
	return block, col
}

// ComposeTransform is the inverse of DecomposeTransform: it places block in the top-left corner,
// col in the last column and sets the bottom-right element to corner. Use corner 1 for a
// homogeneous transform and 0 for a Lie algebra element.
func ComposeTransform(block mat.Matrix, col []float64, corner float64) *mat.Dense {
	n := len(col)
	m := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, block.At(i, j))
		}
		m.Set(i, n, col[i])
	}
	m.Set(n, n, corner)
	return m
}

// checkAugmented validates that m is a square 3x3 or 4x4 matrix and returns its size.
func checkAugmented(m mat.Matrix) (int, error) {
	if m == nil {
		return 0, newInvalidArgumentError("matrix is nil")
	}
	r, c := m.Dims()
	if r != c {
		return 0, newInvalidArgumentError("matrix must be square, got %dx%d", r, c)
	}
	if r != 3 && r != 4 {
		return 0, newInvalidArgumentError("matrix must be 3x3 (SE2) or 4x4 (SE3), got %dx%d", r, c)
	}
	return r, nil
}

// isHomogeneous reports whether the bottom-right element of an augmented matrix is 1, which
// distinguishes a group element from a Lie algebra element.
func isHomogeneous(m mat.Matrix) bool {
	r, c := m.Dims()
	return m.At(r-1, c-1) == 1
}
