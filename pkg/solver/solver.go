// Package solver provides interchangeable strategies for solving the
// assembled linear system A*x = b: direct factorizations (LU, QR) and
// Krylov iterations (CG, BiCGSTAB). The caller picks the variant by
// matrix property.
package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

const DefaultTolerance = 1e-10

var (
	// ErrNotSquare indicates an operation that requires a square matrix.
	ErrNotSquare = errors.New("solver: matrix must be square")
	// ErrDimensionMismatch indicates b does not match the row count of A.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch between matrix and vector")
	// ErrUnderdetermined indicates a least-squares solve with fewer rows than columns.
	ErrUnderdetermined = errors.New("solver: least-squares solve requires rows >= columns")
)

// Options tunes the iterative variants. Zero values pick the
// defaults: Tolerance 1e-10, MaxIterations equal to the unknown
// count. Restart is advisory and ignored by solvers without a
// restart scheme.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Restart       int
}

// Result is the outcome of a solve. Direct variants report zero
// iterations and Converged true. Iterative variants always return
// their best-effort X; the caller checks Converged and Residual to
// decide whether to retune or fall back to a direct solve.
type Result struct {
	X          *mat.VecDense
	Iterations int
	Residual   float64
	Converged  bool
}

// Solver solves A*x = b for x.
type Solver interface {
	Name() string
	Solve(a mat.Matrix, b *mat.VecDense) (*Result, error)
}

// residualNorm is the 2-norm of b - A*x.
func residualNorm(a mat.Matrix, x, b *mat.VecDense) float64 {
	r := mat.NewVecDense(b.Len(), nil)
	r.MulVec(a, x)
	r.SubVec(b, r)
	return math.Sqrt(mat.Dot(r, r))
}

func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return DefaultTolerance
}

func (o Options) maxIterations(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return n
}
