package rayleigh

import "github.com/cwbudde/algo-opacity/opacity/partition"

// Option configures [TotalOpacity] and [Contributions].
type Option func(*config)

type config struct {
	source  partition.Source
	model   partition.Model
	workers int
}

func defaultConfig() config {
	return config{
		source:  partition.Allen,
		workers: 1,
	}
}

// WithPartition sets where H I and He I two-point partition values come
// from. Default is [partition.Allen].
func WithPartition(src partition.Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithModel replaces the two-point θ interpolation with m for the ground
// state statistical weights. WithPartition is ignored when a model is set.
func WithModel(m partition.Model) Option {
	return func(c *config) {
		if m != nil {
			c.model = m
		}
	}
}

// WithWorkers evaluates wavelengths on up to n goroutines. Values <= 1
// run serially. The result does not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
