// Command raylinfo prints the Rayleigh scattering opacity of a small model
// atmosphere.
//
// Usage:
//
//	raylinfo [flags] model.yaml
//
// The model lists depth layers and a wavelength grid:
//
//	depths:
//	  - {temp: 4500, logNH: 36.2, logNHe: 33.7}
//	  - {temp: 6200, logNH: 38.9, logNHe: 36.4}
//	wavelengths: {min: 3.0e-5, max: 1.0e-4, count: 8, log: true}
//	partition:            # optional log10 U overrides at θ = 1.0, 0.5
//	  HI: [0.30, 0.30]
//
// Examples:
//
//	raylinfo model.yaml
//	raylinfo -log10 -workers 4 model.yaml
//	raylinfo -species model.yaml
//	cat model.yaml | raylinfo -
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-opacity/opacity/rayleigh"
)

func main() {
	log10 := flag.Bool("log10", false, "print log10 opacity instead of natural log")
	species := flag.Bool("species", false, "print H I and He I contributions next to the total")
	workers := flag.Int("workers", 1, "goroutines used across wavelengths")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: raylinfo [flags] model.yaml\n\n")
		fmt.Fprintf(os.Stderr, "Prints Rayleigh scattering opacity (H I + He I) per wavelength and depth.\n")
		fmt.Fprintf(os.Stderr, "Use '-' to read the model from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, flag.Arg(0), os.Stdout, *workers, *log10, *species); err != nil {
		logger.Error("raylinfo failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(logger *zap.Logger, path string, w io.Writer, workers int, log10, species bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	m, err := decodeModel(r)
	if err != nil {
		return err
	}
	atm, err := m.atmosphere()
	if err != nil {
		return err
	}

	logger.Debug("model loaded",
		zap.String("path", path),
		zap.Int("depths", atm.numDeps),
		zap.Int("wavelengths", len(atm.lambdas)),
		zap.Bool("partition_override", atm.partition != nil),
	)

	opts := []rayleigh.Option{rayleigh.WithWorkers(workers)}
	if atm.partition != nil {
		opts = append(opts, rayleigh.WithPartition(atm.partition))
	}

	b, err := rayleigh.Contributions(atm.numDeps, len(atm.lambdas), atm.temp, atm.lambdas, atm.stagePops, nil, opts...)
	if err != nil {
		return err
	}

	printTable(w, atm, b, log10, species)
	return nil
}

func printTable(w io.Writer, atm *atmosphere, b rayleigh.Breakdown, log10, species bool) {
	scale := 1.0
	unit := "ln"
	if log10 {
		scale = 1 / math.Ln10
		unit = "log10"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "lambda(nm)\tdepth\tT(K)\t%s kappa\t", unit)
	if species {
		fmt.Fprintf(tw, "%s HI\t%s HeI\t", unit, unit)
	}
	fmt.Fprintln(tw)

	for iL, lambda := range atm.lambdas {
		for iD := range atm.numDeps {
			fmt.Fprintf(tw, "%.2f\t%d\t%.0f\t%.4f\t", lambda*1e7, iD, atm.temp[0][iD], b.Total[iL][iD]*scale)
			if species {
				fmt.Fprintf(tw, "%.4f\t%.4f\t", b.H1[iL][iD]*scale, b.He1[iL][iD]*scale)
			}
			fmt.Fprintln(tw)
		}
	}
	_ = tw.Flush()
}
