package testutil

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-opacity/phys"
)

// Atmosphere is a deterministic toy model atmosphere laid out the way the
// opacity kernels expect it.
type Atmosphere struct {
	NumDeps   int
	NumLams   int
	Temp      [][]float64   // [2][depth], row 0 in K
	StagePops [][][]float64 // [species][stage][depth], natural log cm^-3
	Lambdas   []float64     // cm
}

// Model abundances by number.
const (
	hydrogenFraction = 0.92
	heliumFraction   = 0.08
)

// ModelAtmosphere builds numDeps layers from 4000 K to 12000 K with gas
// pressure rising from 1e2 to 1e5 dyn/cm², all of it neutral H and He,
// and numLams wavelengths log-spaced from 100 nm to 2 µm.
func ModelAtmosphere(numDeps, numLams int) Atmosphere {
	temps := span(numDeps, 4000, 12000, false)
	pressures := span(numDeps, 1e2, 1e5, true)

	logNH := make([]float64, numDeps)
	logNHe := make([]float64, numDeps)
	for i := range numDeps {
		n := pressures[i] / (phys.Boltzmann * temps[i])
		logNH[i] = math.Log(hydrogenFraction * n)
		logNHe[i] = math.Log(heliumFraction * n)
	}

	return Atmosphere{
		NumDeps: numDeps,
		NumLams: numLams,
		Temp:    [][]float64{temps, make([]float64, numDeps)},
		StagePops: [][][]float64{
			{logNH, Fill(math.Inf(-1), numDeps)},
			{logNHe, Fill(math.Inf(-1), numDeps)},
		},
		Lambdas: span(numLams, 1.0e-5, 2.0e-4, true),
	}
}

// Fill returns a slice of length n filled with value.
func Fill(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// span returns n points from lo to hi, linear or logarithmic. A single
// point sits at lo.
func span(n int, lo, hi float64, logSpaced bool) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	case logSpaced:
		return floats.LogSpan(make([]float64, n), lo, hi)
	default:
		return floats.Span(make([]float64, n), lo, hi)
	}
}
