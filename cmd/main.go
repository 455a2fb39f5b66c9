package main // import "poisson"

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/edp1096/toy-poisson/internal/consts"
	"github.com/edp1096/toy-poisson/pkg/fdm"
	"github.com/edp1096/toy-poisson/pkg/field"
	"github.com/edp1096/toy-poisson/pkg/grid"
	"github.com/edp1096/toy-poisson/pkg/solver"
	"github.com/edp1096/toy-poisson/pkg/util"
)

var (
	nx       = flag.Int("nx", 25, "grid points in x")
	ny       = flag.Int("ny", 25, "grid points in y")
	dx       = flag.Float64("dx", 0.1, "grid spacing in x (m)")
	dy       = flag.Float64("dy", 0.1, "grid spacing in y (m)")
	plateV   = flag.Float64("v", 100.0, "left plate potential (V)")
	method   = flag.String("solver", "lu", "solver: lu, qr, bicgstab, sparse")
	parallel = flag.Bool("parallel", false, "assemble grid rows concurrently")
	export   = flag.Bool("csv", false, "export potential/field/energy CSV files")
)

func solveDense(a *mat.Dense, b *mat.VecDense) (*solver.Result, error) {
	var s solver.Solver
	switch *method {
	case "lu":
		s = solver.NewLU()
	case "qr":
		s = solver.NewQR()
	case "bicgstab":
		s = solver.NewBiCGSTAB(solver.Options{Tolerance: 1e-10, MaxIterations: 10 * b.Len()})
	default:
		return nil, fmt.Errorf("unsupported solver: %s", *method)
	}
	return s.Solve(a, b)
}

func main() {
	flag.Parse()

	// 1. Grid setup
	g, err := grid.New(*nx, *ny, *dx, *dy)
	if err != nil {
		log.Fatalf("Grid setup failed: %v", err)
	}
	fmt.Println("Parallel Plate Capacitor (FDM)")
	fmt.Printf("Grid: %d x %d points, domain %.2f x %.2f m\n",
		g.Nx, g.Ny, float64(g.Nx-1)*g.Dx, float64(g.Ny-1)*g.Dy)

	// 2. Boundary conditions: left plate at V, right plate grounded
	boundary := make(map[int]float64)
	for j := 0; j < g.Ny; j++ {
		boundary[g.Index(0, j)] = *plateV
		boundary[g.Index(g.Nx-1, j)] = 0.0
	}
	fmt.Printf("Left plate: %s, right plate: 0 V\n",
		util.FormatValueFactor(*plateV, "V"))

	// 3. Free space, no charge
	rho := make([]float64, g.NumInterior())
	epsilon := consts.EPSILON0

	// 4. Assemble and solve
	var phiField *mat.Dense
	if *method == "sparse" {
		sys, err := fdm.NewSparseSystem(g, rho, epsilon, boundary)
		if err != nil {
			log.Fatalf("Sparse assembly failed: %v", err)
		}
		defer sys.Destroy()

		phi, err := sys.Solve()
		if err != nil {
			log.Fatalf("Sparse solve failed: %v", err)
		}
		phiField = field.ReshapeSlice(phi, g)
	} else {
		assemble := fdm.Assemble
		if *parallel {
			assemble = fdm.AssembleParallel
		}
		a, b, err := assemble(g, rho, epsilon, boundary)
		if err != nil {
			log.Fatalf("Assembly failed: %v", err)
		}

		res, err := solveDense(a, b)
		if err != nil {
			log.Fatalf("Solve failed: %v", err)
		}
		if res.Iterations > 0 {
			fmt.Printf("Solver %s: %d iterations, residual %.3e, converged=%v\n",
				*method, res.Iterations, res.Residual, res.Converged)
		}
		phiField = field.Reshape(res.X, g)
	}

	// 5. Derived fields
	ex, ey := field.ElectricField(phiField, g.Dx, g.Dy)
	eMag := field.Magnitude(ex, ey)
	u := field.EnergyDensity(ex, ey, epsilon)

	fmt.Printf("\nPotential along middle row (j=%d):\n", g.Ny/2)
	for i := 0; i < g.Nx; i++ {
		fmt.Printf("  x=%.2f m  phi=%s\n",
			float64(i)*g.Dx, util.FormatValueFactor(phiField.At(g.Ny/2, i), "V"))
	}

	fmt.Printf("\nMax |E| = %s\n",
		util.FormatValueFactor(floats.Max(eMag.RawMatrix().Data), "V/m"))
	fmt.Printf("Total field energy = %s (per unit depth)\n",
		util.FormatValueFactor(floats.Sum(u.RawMatrix().Data)*g.Dx*g.Dy, "J/m"))

	// 6. Export
	if *export {
		for name, m := range map[string]*mat.Dense{
			"potential.csv":       phiField,
			"field_magnitude.csv": eMag,
			"energy_density.csv":  u,
		} {
			if err := util.ExportCSV(name, m, ','); err != nil {
				log.Fatalf("CSV export failed: %v", err)
			}
			fmt.Printf("Exported %s\n", name)
		}
	}
}
