package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CG is the conjugate gradient method. It is only reliable for
// symmetric positive-definite matrices; supplying anything else is
// the caller's mistake and is not guarded here.
type CG struct {
	opts Options
}

func NewCG(opts Options) *CG { return &CG{opts: opts} }

func (*CG) Name() string { return "cg" }

func (s *CG) Solve(a mat.Matrix, b *mat.VecDense) (*Result, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, ErrNotSquare
	}
	if b.Len() != rows {
		return nil, ErrDimensionMismatch
	}

	n := b.Len()
	tol := s.opts.tolerance()
	maxIter := s.opts.maxIterations(n)

	x := mat.NewVecDense(n, nil)
	r := mat.NewVecDense(n, nil)
	r.CopyVec(b) // x0 = 0, so r0 = b
	p := mat.NewVecDense(n, nil)
	p.CopyVec(r)
	ap := mat.NewVecDense(n, nil)

	rr := mat.Dot(r, r)

	var iter int
	for iter = 0; iter < maxIter; iter++ {
		if math.Sqrt(rr) <= tol {
			break
		}

		ap.MulVec(a, p)
		pap := mat.Dot(p, ap)
		if pap == 0 {
			break
		}
		alpha := rr / pap

		x.AddScaledVec(x, alpha, p)
		r.AddScaledVec(r, -alpha, ap)

		rrNew := mat.Dot(r, r)
		p.AddScaledVec(r, rrNew/rr, p)
		rr = rrNew
	}

	residual := math.Sqrt(rr)
	return &Result{
		X:          x,
		Iterations: iter,
		Residual:   residual,
		Converged:  residual <= tol,
	}, nil
}

// BiCGSTAB is the stabilized bi-conjugate gradient method for
// general square systems, including non-symmetric and indefinite
// ones. Options.Restart is accepted for API compatibility and
// ignored: this implementation uses no restart scheme.
type BiCGSTAB struct {
	opts Options
}

func NewBiCGSTAB(opts Options) *BiCGSTAB { return &BiCGSTAB{opts: opts} }

func (*BiCGSTAB) Name() string { return "bicgstab" }

func (s *BiCGSTAB) Solve(a mat.Matrix, b *mat.VecDense) (*Result, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, ErrNotSquare
	}
	if b.Len() != rows {
		return nil, ErrDimensionMismatch
	}

	n := b.Len()
	tol := s.opts.tolerance()
	maxIter := s.opts.maxIterations(n)

	x := mat.NewVecDense(n, nil)
	r := mat.NewVecDense(n, nil)
	r.CopyVec(b) // x0 = 0
	rTilde := mat.NewVecDense(n, nil)
	rTilde.CopyVec(r)

	p := mat.NewVecDense(n, nil)
	v := mat.NewVecDense(n, nil)
	sv := mat.NewVecDense(n, nil)
	t := mat.NewVecDense(n, nil)

	var rho, alpha, omega float64 = 1, 1, 1

	resid := math.Sqrt(mat.Dot(r, r))

	var iter int
	for iter = 0; iter < maxIter; iter++ {
		if resid <= tol {
			break
		}

		rhoNew := mat.Dot(rTilde, r)
		if rhoNew == 0 {
			break // breakdown, report whatever we have
		}

		if iter == 0 {
			p.CopyVec(r)
		} else {
			beta := (rhoNew / rho) * (alpha / omega)
			// p = r + beta*(p - omega*v)
			p.AddScaledVec(p, -omega, v)
			p.AddScaledVec(r, beta, p)
		}
		rho = rhoNew

		v.MulVec(a, p)
		rtv := mat.Dot(rTilde, v)
		if rtv == 0 {
			break
		}
		alpha = rho / rtv

		// s = r - alpha*v
		sv.AddScaledVec(r, -alpha, v)

		if sn := math.Sqrt(mat.Dot(sv, sv)); sn <= tol {
			x.AddScaledVec(x, alpha, p)
			r.CopyVec(sv)
			resid = sn
			iter++
			break
		}

		t.MulVec(a, sv)
		tt := mat.Dot(t, t)
		if tt == 0 {
			break
		}
		omega = mat.Dot(t, sv) / tt

		x.AddScaledVec(x, alpha, p)
		x.AddScaledVec(x, omega, sv)

		// r = s - omega*t
		r.AddScaledVec(sv, -omega, t)
		resid = math.Sqrt(mat.Dot(r, r))
	}

	return &Result{
		X:          x,
		Iterations: iter,
		Residual:   resid,
		Converged:  resid <= tol,
	}, nil
}
