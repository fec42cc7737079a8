package transform

import "github.com/ferstp/dbn-upper-bound/dbn/series"

// Config holds evaluation parameters for Ht.
type Config struct {
	// NMax is the kernel series truncation length.
	NMax int

	// Upper is the integration cutoff replacing the infinite upper
	// limit.
	Upper float64

	// AbsTol and RelTol are the quadrature convergence targets.
	AbsTol float64
	RelTol float64

	// MaxIntervals is the quadrature subdivision budget.
	MaxIntervals int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default evaluation parameters.
func DefaultConfig() Config {
	return Config{
		NMax:         series.DefaultTruncation,
		Upper:        10,
		AbsTol:       1e-12,
		RelTol:       1e-10,
		MaxIntervals: 128,
	}
}

// WithTruncation sets the kernel series truncation length. Values are
// validated at evaluation time.
func WithTruncation(n int) Option {
	return func(cfg *Config) {
		cfg.NMax = n
	}
}

// WithUpperLimit sets the integration cutoff.
func WithUpperLimit(u float64) Option {
	return func(cfg *Config) {
		cfg.Upper = u
	}
}

// WithTolerance sets the quadrature convergence targets.
func WithTolerance(abs, rel float64) Option {
	return func(cfg *Config) {
		cfg.AbsTol = abs
		cfg.RelTol = rel
	}
}

// WithMaxIntervals sets the quadrature subdivision budget.
func WithMaxIntervals(n int) Option {
	return func(cfg *Config) {
		cfg.MaxIntervals = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
