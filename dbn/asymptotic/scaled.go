package asymptotic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ferstp/dbn-upper-bound/numeric"
	"github.com/ferstp/dbn-upper-bound/quadrature"
)

// ktTerms is the number of retained kernel terms in ScaledKt; the n-th
// term carries exp(-pi*n^2*cos(4*theta)*e^{4v}) decay, so four terms
// already sit far below the quadrature tolerance.
const ktTerms = 4

// Config holds quadrature parameters for the scaled evaluations.
type Config struct {
	Upper        float64
	AbsTol       float64
	RelTol       float64
	MaxIntervals int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default quadrature parameters. The
// contour-shifted integrand decays like exp(-beta*cos(4*theta)*e^{4v})
// with cos(4*theta) ~ 1/Re(z), so the large-argument regime needs a far
// larger subdivision budget than the plain transform.
func DefaultConfig() Config {
	return Config{
		Upper:        10,
		AbsTol:       1e-8,
		RelTol:       1e-6,
		MaxIntervals: 4096,
	}
}

// WithUpperLimit sets the integration cutoff.
func WithUpperLimit(u float64) Option {
	return func(cfg *Config) { cfg.Upper = u }
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
	return func(cfg *Config) { cfg.MaxIntervals = n }
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

// ScaledIt evaluates the contour-shifted integral
//
//	I_{t,theta}(b, beta) = integral_0^upper exp(t*w^2 - beta*e^{4w} + i*b*w) dv,
//	w = v + i*theta,
//
// scaled by exp(pi*Re(b)/8), which offsets the principal decay of the
// unscaled quantity. The value and the summed quadrature error estimate
// are returned.
func ScaledIt(t float64, b complex128, beta, theta float64, opts ...Option) (complex128, float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || !isFiniteComplex(b) ||
		math.IsNaN(beta) || math.IsInf(beta, 0) || math.IsNaN(theta) || math.IsInf(theta, 0) {
		return 0, 0, ErrNonFiniteArgument
	}

	cfg := ApplyOptions(opts...)

	integrand := func(v float64) complex128 {
		w := complex(v, theta)
		arg := complex(t, 0)*w*w -
			complex(beta, 0)*cmplx.Exp(4*w) +
			1i*b*w +
			complex(math.Pi*real(b)/8, 0)
		return cmplx.Exp(arg)
	}

	return integrateComplex(integrand, cfg)
}

// ScaledKt evaluates the four-term kernel combination
//
//	K_{t,theta}(z) = sum_n 2*pi^2*n^4*I(z-9i, pi*n^2) - 3*pi*n^2*I(z-5i, pi*n^2)
//
// scaled by exp(pi*Re(z)/8), with theta = pi/8 - 1/(4*Re z). Re z must
// be positive.
func ScaledKt(t float64, z complex128, opts ...Option) (complex128, float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || !isFiniteComplex(z) {
		return 0, 0, ErrNonFiniteArgument
	}
	if real(z) <= 0 {
		return 0, 0, ErrNonPositiveRealPart
	}

	theta := math.Pi/8 - 1/(4*real(z))

	var sum complex128
	var errEst float64
	for n := 1; n <= ktTerms; n++ {
		nSq := float64(n * n)
		beta := math.Pi * nSq

		lead, leadErr, err := ScaledIt(t, z-9i, beta, theta, opts...)
		if err != nil {
			return 0, 0, fmt.Errorf("asymptotic: kernel term %d: %w", n, err)
		}
		corr, corrErr, err := ScaledIt(t, z-5i, beta, theta, opts...)
		if err != nil {
			return 0, 0, fmt.Errorf("asymptotic: kernel term %d: %w", n, err)
		}

		leadCoef := 2 * math.Pi * math.Pi * nSq * nSq
		corrCoef := 3 * math.Pi * nSq

		sum += complex(leadCoef, 0)*lead - complex(corrCoef, 0)*corr
		errEst += leadCoef*leadErr + corrCoef*corrErr
	}

	return sum, errEst, nil
}

// HtLargeScaled evaluates H_t(z)*exp(pi*Re(z)/8) for large Re z > 0 as
//
//	(K(z) + conj(K(conj z))) / 2.
//
// For real z the imaginary part cancels exactly.
func HtLargeScaled(t float64, z complex128, opts ...Option) (complex128, float64, error) {
	k1, e1, err := ScaledKt(t, z, opts...)
	if err != nil {
		return 0, 0, err
	}
	k2, e2, err := ScaledKt(t, cmplx.Conj(z), opts...)
	if err != nil {
		return 0, 0, err
	}

	return 0.5 * (k1 + cmplx.Conj(k2)), 0.5 * (e1 + e2), nil
}

// integrateComplex splits a complex integrand over [0, cfg.Upper] into
// two real quadratures and combines their error estimates.
func integrateComplex(f func(float64) complex128, cfg Config) (complex128, float64, error) {
	ctx := numeric.Float64{}
	qopts := []quadrature.Option{
		quadrature.WithTolerance(cfg.AbsTol, cfg.RelTol),
		quadrature.WithMaxIntervals(cfg.MaxIntervals),
	}

	re, reErr, err := quadrature.Adaptive(ctx, func(v float64) (float64, error) {
		return real(f(v)), nil
	}, 0, cfg.Upper, qopts...)
	if err != nil {
		return 0, 0, fmt.Errorf("asymptotic: real part: %w", err)
	}

	im, imErr, err := quadrature.Adaptive(ctx, func(v float64) (float64, error) {
		return imag(f(v)), nil
	}, 0, cfg.Upper, qopts...)
	if err != nil {
		return 0, 0, fmt.Errorf("asymptotic: imaginary part: %w", err)
	}

	return complex(re, im), reErr + imErr, nil
}
