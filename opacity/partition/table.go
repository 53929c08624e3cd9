package partition

import "fmt"

// ThetaScale converts temperature to reduced inverse temperature:
// θ = ThetaScale / T.
const ThetaScale = 5040.0

// Theta returns 5040/T.
func Theta(temp float64) float64 {
	return ThetaScale / temp
}

// TwoPoint holds log10 partition function values at θ = 1.0 (index 0)
// and θ = 0.5 (index 1).
type TwoPoint [2]float64

// AtTheta interpolates linearly in θ between the two reference values and
// holds the end values outside [0.5, 1.0]. Inside the interval a flat
// table (u[0] == u[1]) reproduces its value only to rounding.
func (u TwoPoint) AtTheta(theta float64) float64 {
	switch {
	case theta <= 0.5:
		return u[1]
	case theta < 1.0:
		// (θ-0.5)/0.5 and (1-θ)/0.5 weights.
		return 2.0 * ((theta-0.5)*u[0] + (1.0-theta)*u[1])
	default:
		return u[0]
	}
}

// Source supplies two-point partition values per species.
type Source interface {
	TwoPoint(s Species) (TwoPoint, error)
}

// Table is a caller-defined Source.
type Table map[Species]TwoPoint

// TwoPoint returns the entry for s or an error wrapping [ErrUnknownSpecies].
func (t Table) TwoPoint(s Species) (TwoPoint, error) {
	u, ok := t[s]
	if !ok {
		return TwoPoint{}, fmt.Errorf("%w: no partition entry for %s", ErrUnknownSpecies, s)
	}
	return u, nil
}

// Allen is the built-in table for the hydrogen and helium stages.
// Stages with no bound levels carry 0.
var Allen Source = allenSource{}

var allenValues = [...]struct {
	species Species
	logU    TwoPoint
}{
	{HydrogenI, TwoPoint{0.30, 0.30}},
	{HydrogenII, TwoPoint{0.0, 0.0}},
	{HeliumI, TwoPoint{0.0, 0.0}},
	{HeliumII, TwoPoint{0.30, 0.30}},
}

type allenSource struct{}

func (allenSource) TwoPoint(s Species) (TwoPoint, error) {
	for _, v := range allenValues {
		if v.species == s {
			return v.logU, nil
		}
	}
	return TwoPoint{}, fmt.Errorf("%w: no partition entry for %s", ErrUnknownSpecies, s)
}

// Lookup returns the built-in two-point values for a spectroscopic
// identifier such as "HI" or "HeI".
func Lookup(id string) (TwoPoint, error) {
	s, err := ParseSpecies(id)
	if err != nil {
		return TwoPoint{}, err
	}
	return Allen.TwoPoint(s)
}
