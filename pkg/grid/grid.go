// Package grid owns every indexing convention of the rectangular
// solver domain: the full-grid linear index, the interior-only index
// used for charge density, and the boundary classification. Other
// packages go through this one instead of recomputing index
// arithmetic locally.
package grid

import "errors"

var (
	// ErrGridTooSmall indicates fewer than 3 points along an axis,
	// leaving no interior row or column.
	ErrGridTooSmall = errors.New("grid: nx and ny must be at least 3")
	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("grid: dx and dy must be positive")
)

// Grid is a uniform rectangular lattice of nx*ny potential unknowns.
type Grid struct {
	Nx, Ny int
	Dx, Dy float64
}

func New(nx, ny int, dx, dy float64) (*Grid, error) {
	if nx < 3 || ny < 3 {
		return nil, ErrGridTooSmall
	}
	if dx <= 0 || dy <= 0 {
		return nil, ErrBadSpacing
	}
	return &Grid{Nx: nx, Ny: ny, Dx: dx, Dy: dy}, nil
}

// NumPoints is the total unknown count nx*ny.
func (g *Grid) NumPoints() int {
	return g.Nx * g.Ny
}

// NumInterior is the count of non-boundary points, (nx-2)*(ny-2).
func (g *Grid) NumInterior() int {
	return (g.Nx - 2) * (g.Ny - 2)
}

// Index maps grid coordinate (i, j) to the linear index j*nx + i.
// Every consumer of a solution vector relies on this convention.
func (g *Grid) Index(i, j int) int {
	return j*g.Nx + i
}

// Coord is the inverse of Index.
func (g *Grid) Coord(idx int) (i, j int) {
	return idx % g.Nx, idx / g.Nx
}

// InteriorIndex maps an interior coordinate to its position in the
// charge density slice, row-major over the interior sub-grid.
func (g *Grid) InteriorIndex(i, j int) int {
	return (i - 1) + (j-1)*(g.Nx-2)
}

// IsBoundary reports whether (i, j) lies on the domain edge.
func (g *Grid) IsBoundary(i, j int) bool {
	return i == 0 || i == g.Nx-1 || j == 0 || j == g.Ny-1
}

// Coordinates returns the physical axis positions of the grid points.
func (g *Grid) Coordinates() (xs, ys []float64) {
	xs = make([]float64, g.Nx)
	for i := range xs {
		xs[i] = float64(i) * g.Dx
	}
	ys = make([]float64, g.Ny)
	for j := range ys {
		ys[j] = float64(j) * g.Dy
	}
	return xs, ys
}
