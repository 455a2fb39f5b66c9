package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LU solves square nonsingular systems by LU factorization with
// partial pivoting. A near-singular factorization still yields the
// computed solution, but Solve additionally returns the
// mat.Condition warning so the caller is not handed garbage silently.
type LU struct{}

func NewLU() *LU { return &LU{} }

func (*LU) Name() string { return "lu" }

func (*LU) Solve(a mat.Matrix, b *mat.VecDense) (*Result, error) {
	r, c := a.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	if b.Len() != r {
		return nil, ErrDimensionMismatch
	}

	var lu mat.LU
	lu.Factorize(a)

	x := mat.NewVecDense(c, nil)
	err := lu.SolveVecTo(x, false, b)
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("lu solve failed: %v", err)
		}
		// Ill-conditioned: keep the result, surface the warning.
		return &Result{X: x, Residual: residualNorm(a, x, b), Converged: true}, err
	}

	return &Result{X: x, Residual: residualNorm(a, x, b), Converged: true}, nil
}

// QR solves by QR factorization, minimizing ||A*x - b|| for
// overdetermined systems (rows >= columns).
type QR struct{}

func NewQR() *QR { return &QR{} }

func (*QR) Name() string { return "qr" }

func (*QR) Solve(a mat.Matrix, b *mat.VecDense) (*Result, error) {
	r, c := a.Dims()
	if r < c {
		return nil, ErrUnderdetermined
	}
	if b.Len() != r {
		return nil, ErrDimensionMismatch
	}

	var qr mat.QR
	qr.Factorize(a)

	x := mat.NewVecDense(c, nil)
	err := qr.SolveVecTo(x, false, b)
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("qr solve failed: %v", err)
		}
		return &Result{X: x, Residual: residualNorm(a, x, b), Converged: true}, err
	}

	return &Result{X: x, Residual: residualNorm(a, x, b), Converged: true}, nil
}
