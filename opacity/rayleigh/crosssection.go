package rayleigh

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-opacity/opacity/partition"
	"github.com/cwbudde/algo-opacity/phys"
)

// Ionization-threshold frequencies (Hz). Above them the ATLAS9 fits are
// evaluated at the threshold.
const (
	HydrogenThreshold = 2.463e15
	HeliumThreshold   = 5.15e15
)

const (
	// lightSpeedAngstrom is c in Å/s as used by the ATLAS9 fits.
	lightSpeedAngstrom = 2.997925e18
	// heliumPole is the λ² (Å²) where the He I fit is singular.
	heliumPole = 2.90e5
	// hydrogenGroundWeight is g of the H I 1s level.
	hydrogenGroundWeight = 2.0
)

// squaredWavelength returns λ² in Å² for a frequency in Hz.
func squaredWavelength(freq float64) float64 {
	w := lightSpeedAngstrom / freq
	return w * w
}

// HydrogenSigma returns the H I Rayleigh cross-section (cm²) per atom at
// freq (Hz). Frequencies above [HydrogenThreshold] are clamped to it.
func HydrogenSigma(freq float64) float64 {
	ww := squaredWavelength(math.Min(freq, HydrogenThreshold))
	return (5.799e-13 + 1.422e-6/ww + 2.784/(ww*ww)) / (ww * ww)
}

// HeliumSigma returns the He I Rayleigh cross-section (cm²) per atom at
// freq (Hz). Frequencies above [HeliumThreshold] are clamped to it.
func HeliumSigma(freq float64) (float64, error) {
	return heliumFit(squaredWavelength(math.Min(freq, HeliumThreshold)))
}

func heliumFit(ww float64) (float64, error) {
	d := ww - heliumPole
	if d == 0 {
		return 0, &DomainError{Op: "helium cross-section", Depth: -1, Value: ww}
	}
	f := 1.0 + (2.44e5+5.94e10/d)/ww
	return (5.484e-14 / ww / ww) * f * f, nil
}

// expBlock returns exp(x[i]) for each element.
func expBlock(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(v)
	}
	return out
}

// HydrogenCrossSection returns the H I scattering opacity at every depth
// for one wavelength lambda (cm), given natural-log ground-state
// populations.
func HydrogenCrossSection(numDeps int, lambda float64, logGroundPopsH1 []float64) ([]float64, error) {
	if err := validateCount("numDeps", numDeps); err != nil {
		return nil, err
	}
	if err := validateLen("H I ground populations", len(logGroundPopsH1), numDeps); err != nil {
		return nil, err
	}
	if err := validateWavelength(lambda); err != nil {
		return nil, err
	}

	sig := HydrogenSigma(phys.SpeedOfLight / lambda)
	out := make([]float64, numDeps)
	vecmath.ScaleBlock(out, expBlock(logGroundPopsH1), sig*hydrogenGroundWeight)
	return out, nil
}

// HeliumCrossSection returns the He I scattering opacity at every depth
// for one wavelength lambda (cm), given natural-log ground-state
// populations.
func HeliumCrossSection(numDeps int, lambda float64, logGroundPopsHe1 []float64) ([]float64, error) {
	if err := validateCount("numDeps", numDeps); err != nil {
		return nil, err
	}
	if err := validateLen("He I ground populations", len(logGroundPopsHe1), numDeps); err != nil {
		return nil, err
	}
	if err := validateWavelength(lambda); err != nil {
		return nil, err
	}

	sig, err := HeliumSigma(phys.SpeedOfLight / lambda)
	if err != nil {
		var de *DomainError
		if errors.As(err, &de) {
			de.Lambda = lambda
		}
		return nil, err
	}
	out := make([]float64, numDeps)
	vecmath.ScaleBlock(out, expBlock(logGroundPopsHe1), sig)
	return out, nil
}

// CrossSection dispatches to the scattering term of species s.
//
// [partition.MolecularHydrogen] is accepted and contributes zero at every
// depth: the H2 term needs molecular number densities, which callers do
// not supply yet. logPops is ignored for it.
func CrossSection(s partition.Species, numDeps int, lambda float64, logPops []float64) ([]float64, error) {
	switch s {
	case partition.HydrogenI:
		return HydrogenCrossSection(numDeps, lambda, logPops)
	case partition.HeliumI:
		return HeliumCrossSection(numDeps, lambda, logPops)
	case partition.MolecularHydrogen:
		if err := validateCount("numDeps", numDeps); err != nil {
			return nil, err
		}
		if err := validateWavelength(lambda); err != nil {
			return nil, err
		}
		return make([]float64, numDeps), nil
	default:
		return nil, fmt.Errorf("%w: no Rayleigh term for %s", partition.ErrUnknownSpecies, s)
	}
}
