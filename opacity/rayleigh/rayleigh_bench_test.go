package rayleigh

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-opacity/internal/testutil"
)

func BenchmarkTotalOpacity(b *testing.B) {
	sizes := []struct {
		deps, lams int
	}{
		{48, 100},
		{72, 1000},
		{72, 10000},
	}

	for _, sz := range sizes {
		atm := testutil.ModelAtmosphere(sz.deps, sz.lams)
		name := strconv.Itoa(sz.deps) + "x" + strconv.Itoa(sz.lams)

		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = TotalOpacity(atm.NumDeps, atm.NumLams, atm.Temp, atm.Lambdas, atm.StagePops, nil)
			}
		})
		b.Run(name+"/workers4", func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = TotalOpacity(atm.NumDeps, atm.NumLams, atm.Temp, atm.Lambdas, atm.StagePops, nil, WithWorkers(4))
			}
		})
	}
}

func BenchmarkHydrogenCrossSection(b *testing.B) {
	atm := testutil.ModelAtmosphere(72, 1)
	pops := atm.StagePops[0][0]

	b.ReportAllocs()
	for range b.N {
		_, _ = HydrogenCrossSection(atm.NumDeps, 5e-5, pops)
	}
}
