package partition

import (
	"errors"
	"math"
	"testing"
)

func TestThetaModelMatchesAtTheta(t *testing.T) {
	src := Table{HydrogenI: {0.2, 0.5}}
	m := ThetaModel{Source: src}

	for _, temp := range []float64{3000, 5040, 6000, 7777, 10080, 20000} {
		got, err := m.LogWeight(HydrogenI, temp)
		if err != nil {
			t.Fatalf("LogWeight(%v): %v", temp, err)
		}
		want := src[HydrogenI].AtTheta(5040 / temp)
		if got != want {
			t.Fatalf("LogWeight(%v)=%v, want %v", temp, got, want)
		}
	}
}

func TestThetaModelDefaultsToAllen(t *testing.T) {
	got, err := ThetaModel{}.LogWeight(HydrogenI, 6000)
	if err != nil {
		t.Fatalf("LogWeight: %v", err)
	}
	if math.Abs(got-0.30) > 1e-15 {
		t.Fatalf("LogWeight=%v, want 0.30", got)
	}

	if _, err := (ThetaModel{}).LogWeight(MolecularHydrogen, 6000); !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("err=%v, want ErrUnknownSpecies", err)
	}
}

func TestKnotModelInterpolation(t *testing.T) {
	m, err := NewKnotModel(DefaultKnotTemperatures(), map[Species][]float64{
		HydrogenI: {0.0, 0.1, 0.2, 0.3, 0.5},
	})
	if err != nil {
		t.Fatalf("NewKnotModel: %v", err)
	}

	tests := []struct {
		temp float64
		want float64
	}{
		{50, 0.0},
		{130, 0.0},
		{315, 0.05},
		{500, 0.1},
		{1750, 0.15},
		{3000, 0.2},
		{5500, 0.25},
		{9000, 0.4},
		{10000, 0.5},
		{40000, 0.5},
	}

	for _, tc := range tests {
		got, err := m.LogWeight(HydrogenI, tc.temp)
		if err != nil {
			t.Fatalf("LogWeight(%v): %v", tc.temp, err)
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("LogWeight(%v)=%v, want %v", tc.temp, got, tc.want)
		}
	}
}

func TestKnotModelCopiesInput(t *testing.T) {
	temps := []float64{1000, 2000}
	row := []float64{0.1, 0.3}
	m, err := NewKnotModel(temps, map[Species][]float64{HeliumI: row})
	if err != nil {
		t.Fatalf("NewKnotModel: %v", err)
	}

	temps[0] = 1500
	row[0] = 9

	got, err := m.LogWeight(HeliumI, 1000)
	if err != nil {
		t.Fatalf("LogWeight: %v", err)
	}
	if got != 0.1 {
		t.Fatalf("LogWeight=%v, want 0.1 (model must not alias input)", got)
	}
}

func TestNewKnotModelValidation(t *testing.T) {
	tests := []struct {
		name  string
		temps []float64
		rows  map[Species][]float64
	}{
		{"empty", nil, nil},
		{"not-increasing", []float64{100, 100}, nil},
		{"decreasing", []float64{200, 100}, nil},
		{"nan", []float64{100, math.NaN()}, nil},
		{"row-length", []float64{100, 200}, map[Species][]float64{HydrogenI: {1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewKnotModel(tc.temps, tc.rows); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestKnotModelUnknownSpecies(t *testing.T) {
	m, err := NewKnotModel([]float64{100}, map[Species][]float64{HydrogenI: {0.3}})
	if err != nil {
		t.Fatalf("NewKnotModel: %v", err)
	}
	if _, err := m.LogWeight(HeliumI, 100); !errors.Is(err, ErrUnknownSpecies) {
		t.Fatalf("err=%v, want ErrUnknownSpecies", err)
	}
	got, err := m.LogWeight(HydrogenI, 5)
	if err != nil || got != 0.3 {
		t.Fatalf("single knot: got %v, %v", got, err)
	}
}

func TestLogWeightRejectsNaN(t *testing.T) {
	knots, err := NewKnotModel(DefaultKnotTemperatures(), map[Species][]float64{
		HydrogenI: {0.0, 0.1, 0.2, 0.3, 0.5},
	})
	if err != nil {
		t.Fatalf("NewKnotModel: %v", err)
	}

	tests := []struct {
		name  string
		model Model
	}{
		{"knot", knots},
		{"theta", ThetaModel{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.model.LogWeight(HydrogenI, math.NaN()); err == nil {
				t.Fatal("expected error for NaN temperature")
			}
		})
	}
}
