package rayleigh

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestForEachRowVisitsEveryRow(t *testing.T) {
	for _, workers := range []int{1, 3} {
		seen := make([]int32, 40)
		err := forEachRow(len(seen), workers, func(i int) error {
			atomic.AddInt32(&seen[i], 1)
			return nil
		})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i, n := range seen {
			if n != 1 {
				t.Fatalf("workers=%d: row %d visited %d times", workers, i, n)
			}
		}
	}
}

func TestForEachRowStopsAfterFailure(t *testing.T) {
	const rows = 1000
	errRow := errors.New("row failed")

	for _, workers := range []int{1, 2, 4} {
		var calls atomic.Int32
		err := forEachRow(rows, workers, func(i int) error {
			calls.Add(1)
			if i == 0 {
				return errRow
			}
			time.Sleep(time.Millisecond)
			return nil
		})
		if !errors.Is(err, errRow) {
			t.Fatalf("workers=%d: err=%v, want row error", workers, err)
		}
		if got := calls.Load(); got >= rows/2 {
			t.Fatalf("workers=%d: %d rows evaluated after the first failure", workers, got)
		}
	}
}
