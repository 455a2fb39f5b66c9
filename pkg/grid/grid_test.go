package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-poisson/pkg/grid"
)

func TestNewValidation(t *testing.T) {
	_, err := grid.New(2, 5, 1, 1)
	assert.ErrorIs(t, err, grid.ErrGridTooSmall)

	_, err = grid.New(5, 2, 1, 1)
	assert.ErrorIs(t, err, grid.ErrGridTooSmall)

	_, err = grid.New(5, 5, 0, 1)
	assert.ErrorIs(t, err, grid.ErrBadSpacing)

	_, err = grid.New(5, 5, 1, -0.5)
	assert.ErrorIs(t, err, grid.ErrBadSpacing)

	g, err := grid.New(3, 3, 0.1, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 9, g.NumPoints())
	assert.Equal(t, 1, g.NumInterior())
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New(5, 4, 1, 1)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			idx := g.Index(i, j)
			assert.Equal(t, j*g.Nx+i, idx)
			assert.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true

			ri, rj := g.Coord(idx)
			assert.Equal(t, i, ri)
			assert.Equal(t, j, rj)
		}
	}
	assert.Len(t, seen, g.NumPoints())
}

func TestBoundaryClassification(t *testing.T) {
	g, err := grid.New(6, 5, 1, 1)
	require.NoError(t, err)

	interior := 0
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			onEdge := i == 0 || i == g.Nx-1 || j == 0 || j == g.Ny-1
			assert.Equal(t, onEdge, g.IsBoundary(i, j))
			if !onEdge {
				interior++
			}
		}
	}
	assert.Equal(t, g.NumInterior(), interior)
}

func TestInteriorIndexOrdering(t *testing.T) {
	g, err := grid.New(5, 5, 1, 1)
	require.NoError(t, err)

	// Row-major over the 3x3 interior sub-grid.
	want := 0
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			assert.Equal(t, want, g.InteriorIndex(i, j))
			want++
		}
	}
	assert.Equal(t, g.NumInterior(), want)
}

func TestCoordinates(t *testing.T) {
	g, err := grid.New(4, 3, 0.5, 2.0)
	require.NoError(t, err)

	xs, ys := g.Coordinates()
	assert.Equal(t, []float64{0, 0.5, 1.0, 1.5}, xs)
	assert.Equal(t, []float64{0, 2.0, 4.0}, ys)
}
