package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireGridShape fails t unless grid is rows × cols.
func RequireGridShape(t *testing.T, grid [][]float64, rows, cols int) {
	t.Helper()
	if len(grid) != rows {
		t.Fatalf("grid has %d rows, want %d", len(grid), rows)
	}
	for i, row := range grid {
		if len(row) != cols {
			t.Fatalf("grid row %d has %d columns, want %d", i, len(row), cols)
		}
	}
}

// RequireGridFinite fails t if any grid element is NaN or Inf.
func RequireGridFinite(t *testing.T, grid [][]float64) {
	t.Helper()
	for i, row := range grid {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("[%d][%d]: non-finite value %v", i, j, v)
			}
		}
	}
}

// MaxRelDiff returns the largest |a-b|/max(|a|,|b|) over two slices.
// Pairs that are both zero count as equal.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		scale := math.Max(math.Abs(a[i]), math.Abs(b[i]))
		if scale == 0 {
			continue
		}
		if d := math.Abs(a[i]-b[i]) / scale; d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
