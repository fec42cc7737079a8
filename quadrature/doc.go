// Package quadrature provides globally adaptive Gauss–Kronrod
// integration over a finite interval, generic over a numeric context.
//
// The panel rule is the classic 15-point Kronrod extension of 7-point
// Gauss–Legendre. Each panel yields both the 15-point result and the
// embedded 7-point result; their difference drives the per-panel error
// estimate, sharpened by the standard QUADPACK heuristic. The adaptive
// driver bisects the panel with the largest estimated error until the
// summed estimate meets the tolerance or the subdivision budget runs
// out. A run that exhausts the budget fails with ErrDivergence instead
// of returning an estimate it cannot back.
//
// Node and weight constants are carried as decimal literals and parsed
// through the active context, so the rule keeps full accuracy under
// arbitrary-precision backends. The convergence accounting itself (the
// summed per-panel estimate and its comparison against the tolerance)
// runs in float64 regardless of the context, so requested tolerances
// bottom out near the float64 range even when values are carried at
// higher precision; the returned estimate is carried in the context's
// own type.
//
// # Usage
//
//	ctx := numeric.Float64{}
//	f := func(u float64) (float64, error) { return math.Exp(-u), nil }
//	value, errEst, err := quadrature.Adaptive(ctx, f, 0, 10)
//
// The returned estimate bounds the integration error of the rule for
// the integrand as supplied; it knows nothing about approximations made
// inside the integrand itself.
package quadrature
