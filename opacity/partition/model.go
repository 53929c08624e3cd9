package partition

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var errNaNTemperature = errors.New("partition: temperature is NaN")

// Model returns the log10 statistical weight of a species at a kinetic
// temperature in Kelvin.
type Model interface {
	LogWeight(s Species, temp float64) (float64, error)
}

// ThetaModel evaluates [TwoPoint.AtTheta] at θ = 5040/T.
// A nil Source uses [Allen].
type ThetaModel struct {
	Source Source
}

// LogWeight implements [Model]. A NaN temperature is an error.
func (m ThetaModel) LogWeight(s Species, temp float64) (float64, error) {
	if math.IsNaN(temp) {
		return 0, errNaNTemperature
	}
	src := m.Source
	if src == nil {
		src = Allen
	}
	u, err := src.TwoPoint(s)
	if err != nil {
		return 0, err
	}
	return u.AtTheta(Theta(temp)), nil
}

// DefaultKnotTemperatures returns the temperature knots (K) of the
// five-point partition tables used by later model revisions.
func DefaultKnotTemperatures() []float64 {
	return []float64{130, 500, 3000, 8000, 10000}
}

// KnotModel interpolates log10 partition values linearly in temperature.
// Below the first knot and above the last the end values are held.
type KnotModel struct {
	temps []float64
	logU  map[Species][]float64
}

// NewKnotModel validates and copies a knot table. temps must be strictly
// increasing and every species row must have one value per knot.
func NewKnotModel(temps []float64, logU map[Species][]float64) (*KnotModel, error) {
	if len(temps) == 0 {
		return nil, fmt.Errorf("knot model requires at least one temperature")
	}
	for i, t := range temps {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("knot temperature %d is not finite: %v", i, t)
		}
		if i > 0 && t <= temps[i-1] {
			return nil, fmt.Errorf("knot temperatures must be strictly increasing: %v <= %v", t, temps[i-1])
		}
	}

	m := &KnotModel{
		temps: append([]float64(nil), temps...),
		logU:  make(map[Species][]float64, len(logU)),
	}
	for s, row := range logU {
		if len(row) != len(temps) {
			return nil, fmt.Errorf("knot row for %s has %d values, want %d", s, len(row), len(temps))
		}
		m.logU[s] = append([]float64(nil), row...)
	}
	return m, nil
}

// LogWeight implements [Model]. A NaN temperature is an error.
func (m *KnotModel) LogWeight(s Species, temp float64) (float64, error) {
	if math.IsNaN(temp) {
		return 0, errNaNTemperature
	}
	row, ok := m.logU[s]
	if !ok {
		return 0, fmt.Errorf("%w: no knot row for %s", ErrUnknownSpecies, s)
	}

	last := len(m.temps) - 1
	if temp <= m.temps[0] {
		return row[0], nil
	}
	if temp >= m.temps[last] {
		return row[last], nil
	}

	// temps[hi-1] < temp <= temps[hi]
	hi := sort.SearchFloat64s(m.temps, temp)
	lo := hi - 1
	span := m.temps[hi] - m.temps[lo]
	return row[hi]*(temp-m.temps[lo])/span + row[lo]*(m.temps[hi]-temp)/span, nil
}
