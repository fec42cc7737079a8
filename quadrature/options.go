package quadrature

// Config defines tolerances and the subdivision budget for Adaptive.
type Config struct {
	// AbsTol and RelTol form the convergence target
	// max(AbsTol, RelTol*|result|) for the summed error estimate.
	AbsTol float64
	RelTol float64

	// MaxIntervals bounds the number of panels the driver may hold;
	// each bisection adds one.
	MaxIntervals int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		AbsTol:       1e-12,
		RelTol:       1e-10,
		MaxIntervals: 128,
	}
}

// WithTolerance sets the absolute and relative convergence targets.
func WithTolerance(abs, rel float64) Option {
	return func(cfg *Config) {
		cfg.AbsTol = abs
		cfg.RelTol = rel
	}
}

// WithMaxIntervals sets the subdivision budget.
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
