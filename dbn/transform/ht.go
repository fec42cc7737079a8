package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/ferstp/dbn-upper-bound/dbn/series"
	"github.com/ferstp/dbn-upper-bound/numeric"
	"github.com/ferstp/dbn-upper-bound/quadrature"
)

var (
	ErrNonFiniteArgument = errors.New("transform: arguments must be finite")
	ErrInvalidTruncation = errors.New("transform: truncation length must be positive")
	ErrInvalidUpperLimit = errors.New("transform: upper limit must be positive and finite")
)

// Result is the fixed-width evaluation result.
type Result struct {
	// Value is the approximate H_t(z); its imaginary part is exactly
	// zero for real z.
	Value complex128

	// ErrEst bounds the quadrature error of Value. It does not include
	// the kernel series truncation error, which is controlled by the
	// truncation length and sub-dominant by construction.
	ErrEst float64
}

// Ht evaluates H_t(z) for z = zRe + i*zIm in the arithmetic of ctx and
// returns the real and imaginary parts of the value together with the
// summed quadrature error estimate. It is a pure function and safe for
// concurrent use.
func Ht[T any](ctx numeric.Context[T], t, zRe, zIm T, opts ...Option) (re, im, errEst T, err error) {
	var zero T

	cfg := ApplyOptions(opts...)
	if cfg.NMax < 1 {
		return zero, zero, zero, ErrInvalidTruncation
	}
	if !(cfg.Upper > 0) || math.IsInf(cfg.Upper, 1) {
		return zero, zero, zero, ErrInvalidUpperLimit
	}
	if !ctx.IsFinite(t) || !ctx.IsFinite(zRe) || !ctx.IsFinite(zIm) {
		return zero, zero, zero, ErrNonFiniteArgument
	}

	// Common factor Phi(u)*exp(t*u^2); the cosine split supplies the
	// per-part oscillation.
	damped := func(u T) (T, error) {
		phi, err := series.Phi(ctx, u, cfg.NMax)
		if err != nil {
			return zero, err
		}
		return ctx.Mul(phi, ctx.Exp(ctx.Mul(t, ctx.Mul(u, u)))), nil
	}

	realPart := func(u T) (T, error) {
		g, err := damped(u)
		if err != nil {
			return zero, err
		}
		g = ctx.Mul(g, ctx.Cos(ctx.Mul(u, zRe)))
		if ctx.Float64(zIm) != 0 {
			g = ctx.Mul(g, ctx.Cosh(ctx.Mul(u, zIm)))
		}
		return g, nil
	}

	imagPart := func(u T) (T, error) {
		g, err := damped(u)
		if err != nil {
			return zero, err
		}
		g = ctx.Mul(g, ctx.Mul(ctx.Sin(ctx.Mul(u, zRe)), ctx.Sinh(ctx.Mul(u, zIm))))
		return ctx.Neg(g), nil
	}

	qopts := []quadrature.Option{
		quadrature.WithTolerance(cfg.AbsTol, cfg.RelTol),
		quadrature.WithMaxIntervals(cfg.MaxIntervals),
	}
	lo := ctx.FromInt(0)
	hi := ctx.FromFloat64(cfg.Upper)

	re, reErr, err := quadrature.Adaptive(ctx, realPart, lo, hi, qopts...)
	if err != nil {
		return zero, zero, zero, fmt.Errorf("transform: real part: %w", err)
	}

	im = ctx.FromInt(0)
	imErr := ctx.FromInt(0)
	if ctx.Float64(zIm) != 0 {
		im, imErr, err = quadrature.Adaptive(ctx, imagPart, lo, hi, qopts...)
		if err != nil {
			return zero, zero, zero, fmt.Errorf("transform: imaginary part: %w", err)
		}
	}

	return re, im, ctx.Add(reErr, imErr), nil
}

// Ht64 evaluates H_t(z) in float64 arithmetic.
func Ht64(t float64, z complex128, opts ...Option) (Result, error) {
	ctx := numeric.Float64{}

	re, im, errEst, err := Ht(ctx, t, real(z), imag(z), opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: complex(re, im), ErrEst: errEst}, nil
}
