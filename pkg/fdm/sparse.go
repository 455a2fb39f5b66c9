package fdm

import (
	"fmt"

	"github.com/edp1096/sparse"

	"github.com/edp1096/toy-poisson/pkg/grid"
)

// SparseSystem holds the discretized Poisson system in sparse storage
// with a direct LU solve. The system matrix is banded with at most 5
// entries per row, so this is the path for grids where the dense
// n*n allocation stops being acceptable.
type SparseSystem struct {
	Size   int
	matrix *sparse.Matrix
	rhs    []float64
	config *sparse.Configuration
}

// NewSparseSystem assembles the same system as Assemble into sparse
// storage. The caller owns the returned system and must Destroy it.
func NewSparseSystem(g *grid.Grid, rho []float64, epsilon float64, boundary map[int]float64) (*SparseSystem, error) {
	if len(rho) != g.NumInterior() {
		return nil, ErrSourceSize
	}

	n := g.NumPoints()
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      false,
		ModifiedNodal:  false,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}

	m, err := sparse.Create(int64(n), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	sys := &SparseSystem{
		Size:   n,
		matrix: m,
		rhs:    make([]float64, n+1), // 1-based indexing
		config: config,
	}

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			StampPoint(sys, g, i, j, rho, epsilon, boundary)
		}
	}

	return sys, nil
}

// AddElement accumulates into entry (i, j), 0-based. The underlying
// sparse storage is 1-based.
func (s *SparseSystem) AddElement(i, j int, value float64) {
	s.matrix.GetElement(int64(i+1), int64(j+1)).Real += value
}

func (s *SparseSystem) AddRHS(i int, value float64) {
	s.rhs[i+1] += value
}

// Solve factors the matrix and returns the potential vector, 0-based.
func (s *SparseSystem) Solve() ([]float64, error) {
	err := s.matrix.Factor()
	if err != nil {
		return nil, fmt.Errorf("matrix factorization failed: %v", err)
	}

	solution, err := s.matrix.Solve(s.rhs)
	if err != nil {
		return nil, fmt.Errorf("matrix solve failed: %v", err)
	}

	x := make([]float64, s.Size)
	copy(x, solution[1:s.Size+1])
	return x, nil
}

func (s *SparseSystem) RHS() []float64 {
	return s.rhs
}

func (s *SparseSystem) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
	}
}
