package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-opacity/opacity/partition"
)

// modelFile is the YAML layout read by raylinfo.
type modelFile struct {
	Depths      []depthLayer          `yaml:"depths"`
	Wavelengths wavelengthGrid        `yaml:"wavelengths"`
	Partition   map[string][2]float64 `yaml:"partition"`
}

type depthLayer struct {
	Temp   float64 `yaml:"temp"`   // K
	LogNH  float64 `yaml:"logNH"`  // ln of neutral H number density
	LogNHe float64 `yaml:"logNHe"` // ln of neutral He number density
}

type wavelengthGrid struct {
	List  []float64 `yaml:"list"` // cm
	Min   float64   `yaml:"min"`
	Max   float64   `yaml:"max"`
	Count int       `yaml:"count"`
	Log   bool      `yaml:"log"`
}

// atmosphere is a decoded model in kernel layout.
type atmosphere struct {
	numDeps   int
	temp      [][]float64
	stagePops [][][]float64
	lambdas   []float64
	partition partition.Table
}

func decodeModel(r io.Reader) (*modelFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m modelFile
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid model: empty document")
		}
		return nil, fmt.Errorf("invalid model: %w", err)
	}
	return &m, nil
}

func (g wavelengthGrid) values() ([]float64, error) {
	if len(g.List) > 0 {
		if g.Count != 0 || g.Min != 0 || g.Max != 0 {
			return nil, fmt.Errorf("wavelengths: use either list or min/max/count")
		}
		return append([]float64(nil), g.List...), nil
	}

	switch {
	case g.Count <= 0:
		return nil, fmt.Errorf("wavelengths: count must be > 0: %d", g.Count)
	case !(g.Min > 0) || math.IsInf(g.Min, 0):
		return nil, fmt.Errorf("wavelengths: min must be > 0: %g", g.Min)
	case g.Count == 1:
		return []float64{g.Min}, nil
	case !(g.Max > g.Min) || math.IsInf(g.Max, 0):
		return nil, fmt.Errorf("wavelengths: max must be > min: %g <= %g", g.Max, g.Min)
	}

	out := make([]float64, g.Count)
	if g.Log {
		return floats.LogSpan(out, g.Min, g.Max), nil
	}
	return floats.Span(out, g.Min, g.Max), nil
}

func (m *modelFile) atmosphere() (*atmosphere, error) {
	if len(m.Depths) == 0 {
		return nil, fmt.Errorf("model has no depths")
	}

	lambdas, err := m.Wavelengths.values()
	if err != nil {
		return nil, err
	}

	n := len(m.Depths)
	temps := make([]float64, n)
	logNH := make([]float64, n)
	logNHe := make([]float64, n)
	for i, d := range m.Depths {
		temps[i] = d.Temp
		logNH[i] = d.LogNH
		logNHe[i] = d.LogNHe
	}

	var tbl partition.Table
	if len(m.Partition) > 0 {
		tbl = make(partition.Table, len(m.Partition))
		for id, u := range m.Partition {
			s, err := partition.ParseSpecies(id)
			if err != nil {
				return nil, fmt.Errorf("partition override: %w", err)
			}
			tbl[s] = partition.TwoPoint(u)
		}
		// Fill the species the model does not override.
		for _, s := range []partition.Species{partition.HydrogenI, partition.HeliumI} {
			if _, ok := tbl[s]; ok {
				continue
			}
			u, err := partition.Allen.TwoPoint(s)
			if err != nil {
				return nil, err
			}
			tbl[s] = u
		}
	}

	return &atmosphere{
		numDeps:   n,
		temp:      [][]float64{temps},
		stagePops: [][][]float64{{logNH}, {logNHe}},
		lambdas:   lambdas,
		partition: tbl,
	}, nil
}
