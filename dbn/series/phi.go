package series

import (
	"errors"

	"github.com/ferstp/dbn-upper-bound/numeric"
)

var (
	ErrNonFiniteArgument = errors.New("series: argument must be finite")
	ErrInvalidTruncation = errors.New("series: truncation length must be positive")
)

// DefaultTruncation is the default number of retained series terms.
const DefaultTruncation = 100

// Config holds evaluation parameters.
type Config struct {
	NMax int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default evaluation parameters.
func DefaultConfig() Config {
	return Config{NMax: DefaultTruncation}
}

// WithTruncation sets the number of retained terms. Values are
// validated at evaluation time, not here.
func WithTruncation(n int) Option {
	return func(cfg *Config) {
		cfg.NMax = n
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

// Phi evaluates the kernel series at u with nMax retained terms, in the
// arithmetic of ctx. It is a pure function and safe for concurrent use.
func Phi[T any](ctx numeric.Context[T], u T, nMax int) (T, error) {
	var zero T

	if nMax < 1 {
		return zero, ErrInvalidTruncation
	}
	if !ctx.IsFinite(u) {
		return zero, ErrNonFiniteArgument
	}

	pi := ctx.Pi()
	piE4u := ctx.Mul(pi, ctx.Exp(ctx.Mul(ctx.FromInt(4), u)))
	nineU := ctx.Mul(ctx.FromInt(9), u)
	fiveU := ctx.Mul(ctx.FromInt(5), u)
	twoPiSq := ctx.Mul(ctx.FromInt(2), ctx.Mul(pi, pi))
	threePi := ctx.Mul(ctx.FromInt(3), pi)

	// Ascending magnitude: n = nMax carries the smallest term.
	sum := ctx.FromInt(0)
	for n := nMax; n >= 1; n-- {
		nSq := ctx.FromInt(n * n)
		nQuad := ctx.Mul(nSq, nSq)
		decay := ctx.Mul(nSq, piE4u)

		lead := ctx.Mul(twoPiSq, ctx.Mul(nQuad, ctx.Exp(ctx.Sub(nineU, decay))))
		corr := ctx.Mul(threePi, ctx.Mul(nSq, ctx.Exp(ctx.Sub(fiveU, decay))))

		sum = ctx.Add(sum, ctx.Sub(lead, corr))
	}

	return sum, nil
}

// Phi64 evaluates the kernel series in float64 arithmetic.
func Phi64(u float64, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)
	return Phi(numeric.Float64{}, u, cfg.NMax)
}
