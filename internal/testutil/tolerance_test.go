package testutil

import (
	"math"
	"testing"
)

func TestMaxRelDiff(t *testing.T) {
	a := []float64{1.0, 200.0, 0}
	b := []float64{1.0, 202.0, 0}

	d, err := MaxRelDiff(a, b)
	if err != nil {
		t.Fatalf("MaxRelDiff error: %v", err)
	}

	if math.Abs(d-2.0/202.0) > 1e-15 {
		t.Fatalf("MaxRelDiff = %v, want %v", d, 2.0/202.0)
	}
}

func TestMaxRelDiffLengthMismatch(t *testing.T) {
	_, err := MaxRelDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxRelDiffIdentical(t *testing.T) {
	a := []float64{1e-30, 2, 3e30}

	d, err := MaxRelDiff(a, a)
	if err != nil {
		t.Fatalf("MaxRelDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxRelDiff = %v, want 0 for identical slices", d)
	}
}

func TestRequireGridHelpersAccept(t *testing.T) {
	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	RequireGridShape(t, grid, 2, 3)
	RequireGridFinite(t, grid)
	RequireSliceNearlyEqual(t, grid[0], []float64{1, 2, 3 + 1e-13}, 1e-12)
}
