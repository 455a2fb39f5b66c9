// Package fdm assembles the finite-difference linear system for
// Poisson's equation on a 2D grid with Dirichlet boundary conditions.
package fdm

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/edp1096/toy-poisson/pkg/grid"
)

// ErrSourceSize indicates the charge density slice does not cover the
// interior grid points exactly.
var ErrSourceSize = errors.New("fdm: charge density length must equal interior point count")

// SystemMatrix is the stamping target for assembly. Dense and sparse
// storage both implement it, so the stencil is written once.
type SystemMatrix interface {
	AddElement(i, j int, value float64)
	AddRHS(i int, value float64)
}

type denseSystem struct {
	a *mat.Dense
	b *mat.VecDense
}

func (m *denseSystem) AddElement(i, j int, value float64) {
	m.a.Set(i, j, m.a.At(i, j)+value)
}

func (m *denseSystem) AddRHS(i int, value float64) {
	m.b.SetVec(i, m.b.AtVec(i)+value)
}

// StampPoint writes the matrix row for grid point (i, j): a Dirichlet
// identity row on the boundary, the 5-point Laplacian stencil with
// rhs -rho/epsilon in the interior. Rows are independent of each
// other, so callers may stamp them concurrently.
func StampPoint(m SystemMatrix, g *grid.Grid, i, j int, rho []float64, epsilon float64, boundary map[int]float64) {
	idx := g.Index(i, j)

	if g.IsBoundary(i, j) {
		m.AddElement(idx, idx, 1.0)
		if v, ok := boundary[idx]; ok {
			m.AddRHS(idx, v)
		}
		return
	}

	cx := 1.0 / (g.Dx * g.Dx)
	cy := 1.0 / (g.Dy * g.Dy)

	m.AddElement(idx, idx, -2.0*(cx+cy))
	m.AddElement(idx, g.Index(i-1, j), cx)
	m.AddElement(idx, g.Index(i+1, j), cx)
	m.AddElement(idx, g.Index(i, j-1), cy)
	m.AddElement(idx, g.Index(i, j+1), cy)
	m.AddRHS(idx, -rho[g.InteriorIndex(i, j)]/epsilon)
}

// Assemble builds the dense system A*phi = b for the discretized
// Poisson equation. Dense storage of a banded system is a deliberate
// simplicity trade-off; large grids should go through NewSparseSystem
// instead. Absent boundary indices default to 0 V.
func Assemble(g *grid.Grid, rho []float64, epsilon float64, boundary map[int]float64) (*mat.Dense, *mat.VecDense, error) {
	if len(rho) != g.NumInterior() {
		return nil, nil, ErrSourceSize
	}

	n := g.NumPoints()
	sys := &denseSystem{
		a: mat.NewDense(n, n, nil),
		b: mat.NewVecDense(n, nil),
	}

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			StampPoint(sys, g, i, j, rho, epsilon, boundary)
		}
	}

	return sys.a, sys.b, nil
}
