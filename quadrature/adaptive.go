package quadrature

import (
	"errors"
	"fmt"
	"math"

	"github.com/ferstp/dbn-upper-bound/numeric"
)

var (
	ErrNilIntegrand = errors.New("quadrature: integrand is nil")
	ErrBadInterval  = errors.New("quadrature: interval must satisfy a < b with finite endpoints")
	ErrBadTolerance = errors.New("quadrature: absolute tolerance must be positive and relative tolerance non-negative")
	ErrBadBudget    = errors.New("quadrature: subdivision budget must be positive")
	ErrDivergence   = errors.New("quadrature: tolerance not met within subdivision budget")
)

// Adaptive integrates f over [a, b] to the configured tolerance and
// returns the value together with an estimate bounding the integration
// error. No partial result is returned on failure.
func Adaptive[T any](ctx numeric.Context[T], f func(T) (T, error), a, b T, opts ...Option) (T, T, error) {
	var zero T

	cfg := ApplyOptions(opts...)
	if f == nil {
		return zero, zero, ErrNilIntegrand
	}
	if !ctx.IsFinite(a) || !ctx.IsFinite(b) || !(ctx.Float64(a) < ctx.Float64(b)) {
		return zero, zero, ErrBadInterval
	}
	if cfg.AbsTol <= 0 || cfg.RelTol < 0 {
		return zero, zero, ErrBadTolerance
	}
	if cfg.MaxIntervals < 1 {
		return zero, zero, ErrBadBudget
	}

	r := newRule(ctx)

	first, err := r.apply(ctx, f, a, b)
	if err != nil {
		return zero, zero, fmt.Errorf("quadrature: integrand failed: %w", err)
	}

	panels := make([]panel[T], 0, cfg.MaxIntervals)
	panels = append(panels, first)

	for {
		total := ctx.FromInt(0)
		totalErr := ctx.FromInt(0)
		totalErrF := 0.0
		worst := 0

		for i := range panels {
			total = ctx.Add(total, panels[i].value)
			totalErr = ctx.Add(totalErr, panels[i].errT)
			totalErrF += panels[i].errF
			if panels[i].errF > panels[worst].errF {
				worst = i
			}
		}

		target := math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(ctx.Float64(total)))
		if totalErrF <= target {
			return total, totalErr, nil
		}

		if len(panels) >= cfg.MaxIntervals {
			return zero, zero, fmt.Errorf("%w (%d panels, estimate %.3g, target %.3g)",
				ErrDivergence, len(panels), totalErrF, target)
		}

		w := panels[worst]
		mid := ctx.Mul(ctx.Add(w.a, w.b), r.half)

		left, err := r.apply(ctx, f, w.a, mid)
		if err != nil {
			return zero, zero, fmt.Errorf("quadrature: integrand failed: %w", err)
		}
		right, err := r.apply(ctx, f, mid, w.b)
		if err != nil {
			return zero, zero, fmt.Errorf("quadrature: integrand failed: %w", err)
		}

		panels[worst] = left
		panels = append(panels, right)
	}
}
