package fdm

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/edp1096/toy-poisson/pkg/grid"
)

// parallelRange executes fn for each row j in [start,end), split
// among available CPUs.
func parallelRange(start, end int, fn func(j int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for j := ss; j < ee; j++ {
				fn(j)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}

// AssembleParallel is Assemble with grid rows stamped concurrently.
// Each row writes only its own matrix rows and rhs entries, so no
// synchronization beyond the final gather is needed.
func AssembleParallel(g *grid.Grid, rho []float64, epsilon float64, boundary map[int]float64) (*mat.Dense, *mat.VecDense, error) {
	if len(rho) != g.NumInterior() {
		return nil, nil, ErrSourceSize
	}

	n := g.NumPoints()
	sys := &denseSystem{
		a: mat.NewDense(n, n, nil),
		b: mat.NewVecDense(n, nil),
	}

	parallelRange(0, g.Ny, func(j int) {
		for i := 0; i < g.Nx; i++ {
			StampPoint(sys, g, i, j, rho, epsilon, boundary)
		}
	})

	return sys.a, sys.b, nil
}
