package rayleigh

import (
	"context"
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-opacity/opacity/partition"
	"github.com/cwbudde/algo-opacity/phys"
)

// Breakdown holds natural-log opacity grids indexed [wavelength][depth].
// H1 and He1 are -Inf where a species contributes nothing.
type Breakdown struct {
	H1    [][]float64
	He1   [][]float64
	Total [][]float64
}

// TotalOpacity returns ln(σ_HI + σ_HeI) for every wavelength in
// lambdaScale (cm) and every depth, as a [numLams][numDeps] grid.
//
// Ground-state populations are derived once and shared by all
// wavelengths. molPops is reserved for the molecular hydrogen term and is
// not read.
func TotalOpacity(
	numDeps, numLams int,
	temp [][]float64,
	lambdaScale []float64,
	stagePops [][][]float64,
	molPops [][]float64,
	opts ...Option,
) ([][]float64, error) {
	b, err := evaluate(numDeps, numLams, temp, lambdaScale, stagePops, applyOptions(opts), false)
	if err != nil {
		return nil, err
	}
	return b.Total, nil
}

// Contributions is TotalOpacity with the per-species grids kept.
func Contributions(
	numDeps, numLams int,
	temp [][]float64,
	lambdaScale []float64,
	stagePops [][][]float64,
	molPops [][]float64,
	opts ...Option,
) (Breakdown, error) {
	return evaluate(numDeps, numLams, temp, lambdaScale, stagePops, applyOptions(opts), true)
}

func groundPopulations(numDeps int, temp [][]float64, stagePops [][][]float64, cfg config) (h1, he1 []float64, err error) {
	if cfg.model != nil {
		return GroundStateLogPopulationsModel(numDeps, temp, stagePops, cfg.model)
	}
	uH, err := cfg.source.TwoPoint(partition.HydrogenI)
	if err != nil {
		return nil, nil, err
	}
	uHe, err := cfg.source.TwoPoint(partition.HeliumI)
	if err != nil {
		return nil, nil, err
	}
	return GroundStateLogPopulations(numDeps, temp, stagePops, uH, uHe)
}

func evaluate(
	numDeps, numLams int,
	temp [][]float64,
	lambdaScale []float64,
	stagePops [][][]float64,
	cfg config,
	keepSpecies bool,
) (Breakdown, error) {
	if err := validateCount("numLams", numLams); err != nil {
		return Breakdown{}, err
	}
	if err := validateLen("lambdaScale", len(lambdaScale), numLams); err != nil {
		return Breakdown{}, err
	}

	logH1, logHe1, err := groundPopulations(numDeps, temp, stagePops, cfg)
	if err != nil {
		return Breakdown{}, err
	}
	// Shared read-only by all rows.
	nH1 := expBlock(logH1)
	nHe1 := expBlock(logHe1)

	out := Breakdown{Total: make([][]float64, numLams)}
	if keepSpecies {
		out.H1 = make([][]float64, numLams)
		out.He1 = make([][]float64, numLams)
	}

	row := func(iL int) error {
		lambda := lambdaScale[iL]
		if err := validateWavelength(lambda); err != nil {
			return err
		}
		freq := phys.SpeedOfLight / lambda
		sigHe, err := HeliumSigma(freq)
		if err != nil {
			var de *DomainError
			if errors.As(err, &de) {
				de.Lambda = lambda
			}
			return err
		}

		sH := make([]float64, numDeps)
		sHe := make([]float64, numDeps)
		total := make([]float64, numDeps)
		vecmath.ScaleBlock(sH, nH1, HydrogenSigma(freq)*hydrogenGroundWeight)
		vecmath.ScaleBlock(sHe, nHe1, sigHe)
		vecmath.AddBlock(total, sH, sHe)

		for iD, v := range total {
			if !isPositiveFinite(v) {
				return &DomainError{Op: "log opacity", Lambda: lambda, Depth: iD, Value: v}
			}
			total[iD] = math.Log(v)
		}
		out.Total[iL] = total

		if keepSpecies {
			logInPlace(sH)
			logInPlace(sHe)
			out.H1[iL] = sH
			out.He1[iL] = sHe
		}
		return nil
	}

	if err := forEachRow(numLams, cfg.workers, row); err != nil {
		return Breakdown{}, err
	}
	return out, nil
}

// forEachRow calls row for 0..n-1, on up to workers goroutines. Rows not
// yet started are skipped once any row fails.
func forEachRow(n, workers int, row func(int) error) error {
	if workers <= 1 || n < 2 {
		for i := range n {
			if err := row(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return row(i)
		})
	}
	return g.Wait()
}

func logInPlace(x []float64) {
	for i, v := range x {
		x[i] = math.Log(v)
	}
}
