package rayleigh

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch reports input arrays that disagree with numDeps
	// or numLams.
	ErrDimensionMismatch = errors.New("rayleigh: dimension mismatch")
	// ErrDomain reports an input or intermediate value outside the range
	// where the scattering formulas are defined.
	ErrDomain = errors.New("rayleigh: value outside formula domain")
)

// DomainError locates a numeric hazard. It unwraps to [ErrDomain].
type DomainError struct {
	Op     string
	Lambda float64 // wavelength in cm, 0 if not wavelength specific
	Depth  int     // depth index, -1 if not depth specific
	Value  float64 // offending value
}

func (e *DomainError) Error() string {
	switch {
	case e.Depth >= 0 && e.Lambda != 0:
		return fmt.Sprintf("rayleigh: %s: invalid value %g at depth %d, lambda %g cm", e.Op, e.Value, e.Depth, e.Lambda)
	case e.Depth >= 0:
		return fmt.Sprintf("rayleigh: %s: invalid value %g at depth %d", e.Op, e.Value, e.Depth)
	default:
		return fmt.Sprintf("rayleigh: %s: invalid value %g", e.Op, e.Value)
	}
}

// Unwrap returns [ErrDomain].
func (e *DomainError) Unwrap() error { return ErrDomain }

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func validateWavelength(lambda float64) error {
	if !isPositiveFinite(lambda) {
		return &DomainError{Op: "wavelength", Depth: -1, Value: lambda}
	}
	return nil
}

func validateCount(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must be >= 0: %d", ErrDimensionMismatch, name, n)
	}
	return nil
}

func validateLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has length %d, want %d", ErrDimensionMismatch, name, got, want)
	}
	return nil
}

// validateAtmosphere checks the temperature row and the neutral-stage
// populations of H and He against numDeps.
func validateAtmosphere(numDeps int, temp [][]float64, stagePops [][][]float64) error {
	if err := validateCount("numDeps", numDeps); err != nil {
		return err
	}
	if len(temp) == 0 {
		return fmt.Errorf("%w: temperature field has no rows", ErrDimensionMismatch)
	}
	if err := validateLen("temp[0]", len(temp[0]), numDeps); err != nil {
		return err
	}
	if len(stagePops) < 2 {
		return fmt.Errorf("%w: stage populations need H and He, got %d species", ErrDimensionMismatch, len(stagePops))
	}
	for iZ, name := range [...]string{"stagePops[0][0]", "stagePops[1][0]"} {
		if len(stagePops[iZ]) == 0 {
			return fmt.Errorf("%w: stagePops[%d] has no stages", ErrDimensionMismatch, iZ)
		}
		if err := validateLen(name, len(stagePops[iZ][0]), numDeps); err != nil {
			return err
		}
	}
	return nil
}
