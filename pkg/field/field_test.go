package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/edp1096/toy-poisson/pkg/field"
	"github.com/edp1096/toy-poisson/pkg/grid"
)

func TestReshapeConvention(t *testing.T) {
	g, err := grid.New(4, 3, 1, 1)
	require.NoError(t, err)

	// phi[idx] = idx makes the transpose visible.
	phi := mat.NewVecDense(g.NumPoints(), nil)
	for idx := 0; idx < g.NumPoints(); idx++ {
		phi.SetVec(idx, float64(idx))
	}

	out := field.Reshape(phi, g)
	ny, nx := out.Dims()
	assert.Equal(t, g.Ny, ny)
	assert.Equal(t, g.Nx, nx)

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			assert.Equal(t, float64(j*g.Nx+i), out.At(j, i))
		}
	}
}

func TestReshapeSliceMatchesReshape(t *testing.T) {
	g, err := grid.New(5, 4, 1, 1)
	require.NoError(t, err)

	raw := make([]float64, g.NumPoints())
	for idx := range raw {
		raw[idx] = float64(idx) * 0.25
	}
	vec := mat.NewVecDense(len(raw), raw)

	assert.True(t, mat.Equal(field.Reshape(vec, g), field.ReshapeSlice(raw, g)))
}

func TestElectricFieldLinearPotential(t *testing.T) {
	// phi = 2x gives Ex = -2, Ey = 0 in the interior.
	nx, ny, dx, dy := 6, 5, 0.5, 1.0
	phiField := mat.NewDense(ny, nx, nil)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			phiField.Set(j, i, 2.0*float64(i)*dx)
		}
	}

	ex, ey := field.ElectricField(phiField, dx, dy)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			if j == 0 || j == ny-1 || i == 0 || i == nx-1 {
				assert.Zero(t, ex.At(j, i))
				assert.Zero(t, ey.At(j, i))
				continue
			}
			assert.InDelta(t, -2.0, ex.At(j, i), 1e-12)
			assert.InDelta(t, 0.0, ey.At(j, i), 1e-12)
		}
	}
}

func TestMagnitudeProperties(t *testing.T) {
	ex := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, 3, 0,
		0, 0, 0,
	})
	ey := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0, -4, 0,
		0, 0, 0,
	})

	m := field.Magnitude(ex, ey)
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, m.At(j, i), 0.0)
			if ex.At(j, i) == 0 && ey.At(j, i) == 0 {
				assert.Zero(t, m.At(j, i))
			}
		}
	}
	assert.InDelta(t, 5.0, m.At(1, 1), 1e-12)
}

func TestEnergyDensityScalesWithEpsilon(t *testing.T) {
	ex := mat.NewDense(3, 3, []float64{0, 1, 0, 2, 0, -1, 0, 3, 0})
	ey := mat.NewDense(3, 3, []float64{1, 0, 2, 0, -3, 0, 1, 0, 0})

	u1 := field.EnergyDensity(ex, ey, 1.0)
	u2 := field.EnergyDensity(ex, ey, 2.0)

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, u1.At(j, i), 0.0)
			assert.InDelta(t, 2.0*u1.At(j, i), u2.At(j, i), 1e-12)

			e2 := ex.At(j, i)*ex.At(j, i) + ey.At(j, i)*ey.At(j, i)
			assert.InDelta(t, 0.5*e2, u1.At(j, i), 1e-12)
		}
	}
}

func TestMismatchedShapesPanic(t *testing.T) {
	ex := mat.NewDense(3, 3, nil)
	ey := mat.NewDense(3, 4, nil)

	assert.Panics(t, func() { field.Magnitude(ex, ey) })
	assert.Panics(t, func() { field.EnergyDensity(ex, ey, 1.0) })
}
