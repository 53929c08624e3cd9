package rayleigh

import (
	"github.com/cwbudde/algo-opacity/opacity/partition"
)

// Species indices into stagePops and the neutral stage index.
const (
	speciesH  = 0
	speciesHe = 1
	stageI    = 0
)

// GroundStateLogPopulations derives natural-log ground-state number
// densities of H I and He I for every depth.
//
// temp[0] holds the kinetic temperature in K, stagePops[0][0] and
// stagePops[1][0] the natural-log total neutral populations of H and He.
// logUH1 and logUHe1 are log10 partition values at θ = 1.0 and θ = 0.5,
// interpolated with [partition.TwoPoint.AtTheta].
//
// The statistical weight is subtracted from the total neutral population
// as is; the ground level is taken to have weight 1.
func GroundStateLogPopulations(
	numDeps int,
	temp [][]float64,
	stagePops [][][]float64,
	logUH1, logUHe1 partition.TwoPoint,
) (h1, he1 []float64, err error) {
	if err := validateAtmosphere(numDeps, temp, stagePops); err != nil {
		return nil, nil, err
	}

	h1 = make([]float64, numDeps)
	he1 = make([]float64, numDeps)
	for iD := range numDeps {
		t := temp[0][iD]
		if !isPositiveFinite(t) {
			return nil, nil, &DomainError{Op: "ground-state populations", Depth: iD, Value: t}
		}
		theta := partition.Theta(t)
		h1[iD] = stagePops[speciesH][stageI][iD] - logUH1.AtTheta(theta)
		he1[iD] = stagePops[speciesHe][stageI][iD] - logUHe1.AtTheta(theta)
	}
	return h1, he1, nil
}

// GroundStateLogPopulationsModel is GroundStateLogPopulations with the
// statistical weight taken from an arbitrary [partition.Model].
func GroundStateLogPopulationsModel(
	numDeps int,
	temp [][]float64,
	stagePops [][][]float64,
	model partition.Model,
) (h1, he1 []float64, err error) {
	if err := validateAtmosphere(numDeps, temp, stagePops); err != nil {
		return nil, nil, err
	}

	h1 = make([]float64, numDeps)
	he1 = make([]float64, numDeps)
	for iD := range numDeps {
		t := temp[0][iD]
		if !isPositiveFinite(t) {
			return nil, nil, &DomainError{Op: "ground-state populations", Depth: iD, Value: t}
		}
		wH, err := model.LogWeight(partition.HydrogenI, t)
		if err != nil {
			return nil, nil, err
		}
		wHe, err := model.LogWeight(partition.HeliumI, t)
		if err != nil {
			return nil, nil, err
		}
		h1[iD] = stagePops[speciesH][stageI][iD] - wH
		he1[iD] = stagePops[speciesHe][stageI][iD] - wHe
	}
	return h1, he1, nil
}
