package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Determinant computes det(A). A must be square.
func Determinant(a mat.Matrix) (float64, error) {
	r, c := a.Dims()
	if r != c {
		return 0, ErrNotSquare
	}
	return mat.Det(a), nil
}

// Inverse computes A^-1. A must be square. A near-singular matrix
// still yields the computed inverse together with the mat.Condition
// warning.
func Inverse(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNotSquare
	}

	var inv mat.Dense
	err := inv.Inverse(a)
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("matrix inversion failed: %v", err)
		}
		return &inv, err
	}
	return &inv, nil
}

// EigenDecomposition returns the real parts of the eigenvalues and
// right eigenvectors of a square matrix. Discarding the imaginary
// parts is deliberate; callers needing complex spectra must use
// gonum's mat.Eigen directly.
func EigenDecomposition(a mat.Matrix) ([]float64, *mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, nil, ErrNotSquare
	}

	var eig mat.Eigen
	ok := eig.Factorize(a, mat.EigenRight)
	if !ok {
		return nil, nil, errors.New("solver: eigendecomposition failed to converge")
	}

	cvalues := eig.Values(nil)
	values := make([]float64, len(cvalues))
	for i, v := range cvalues {
		values[i] = real(v)
	}

	var cvectors mat.CDense
	eig.VectorsTo(&cvectors)
	vectors := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vectors.Set(i, j, real(cvectors.At(i, j)))
		}
	}

	return values, vectors, nil
}
