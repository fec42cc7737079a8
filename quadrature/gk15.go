package quadrature

import (
	"math"

	"github.com/ferstp/dbn-upper-bound/numeric"
)

// 15-point Kronrod abscissae (positive half, descending) with the
// embedded 7-point Gauss rule at every other node. Values are the
// QUADPACK dqk15 constants, kept as decimal literals so higher-precision
// contexts do not inherit float64 rounding.
var xgkLit = [8]string{
	"0.991455371120812639206854697526329",
	"0.949107912342758524526189684047851",
	"0.864864423359769072789712788640926",
	"0.741531185599394439863864773280788",
	"0.586087235467691130294144838258730",
	"0.405845151377397166906606412076961",
	"0.207784955007898467600689403773245",
	"0.000000000000000000000000000000000",
}

var wgkLit = [8]string{
	"0.022935322010529224963732008058970",
	"0.063092092629978553290700663189204",
	"0.104790010322250183839876322541518",
	"0.140653259715525918745189590510238",
	"0.169004726639267902826583426598550",
	"0.190350578064785409913256402421014",
	"0.204432940075298892414161999234649",
	"0.209482141084727828012999174891714",
}

var wgLit = [4]string{
	"0.129484966168869693270611432679082",
	"0.279705391489276667901467771423780",
	"0.381830050505118944950369775488975",
	"0.417959183673469387755102040816327",
}

// rule holds the 15 nodes and aligned weight vectors materialized in a
// context, ordered ascending across [-1, 1].
type rule[T any] struct {
	nodes [15]T
	wk    []T // Kronrod weights
	wg    []T // Gauss weights, zero at Kronrod-only nodes
	half  T
}

func newRule[T any](ctx numeric.Context[T]) *rule[T] {
	r := &rule[T]{
		wk:   make([]T, 15),
		wg:   make([]T, 15),
		half: ctx.FromFloat64(0.5),
	}

	zero := ctx.FromInt(0)
	for i := 0; i < 15; i++ {
		r.wg[i] = zero
	}

	for i := 0; i < 7; i++ {
		x := ctx.MustParse(xgkLit[i])
		w := ctx.MustParse(wgkLit[i])
		r.nodes[i] = ctx.Neg(x)
		r.nodes[14-i] = x
		r.wk[i] = w
		r.wk[14-i] = w
	}
	r.nodes[7] = zero
	r.wk[7] = ctx.MustParse(wgkLit[7])

	// The embedded Gauss nodes sit at every other Kronrod node.
	for j := 0; j < 3; j++ {
		w := ctx.MustParse(wgLit[j])
		r.wg[2*j+1] = w
		r.wg[13-2*j] = w
	}
	r.wg[7] = ctx.MustParse(wgLit[3])

	return r
}

// panel is one evaluated subinterval.
type panel[T any] struct {
	a, b  T
	value T
	errT  T
	errF  float64
}

// apply evaluates the rule on [a, b], a < b.
func (r *rule[T]) apply(ctx numeric.Context[T], f func(T) (T, error), a, b T) (panel[T], error) {
	center := ctx.Mul(ctx.Add(a, b), r.half)
	hl := ctx.Mul(ctx.Sub(b, a), r.half)

	var samples [15]T
	for i := range r.nodes {
		u := ctx.Add(center, ctx.Mul(hl, r.nodes[i]))

		fv, err := f(u)
		if err != nil {
			return panel[T]{}, err
		}
		samples[i] = fv
	}

	resk := ctx.Dot(r.wk, samples[:])
	resg := ctx.Dot(r.wg, samples[:])
	value := ctx.Mul(resk, hl)

	// QUADPACK error heuristic: scale the raw Kronrod/Gauss difference
	// by the integrand's deviation from its mean, then floor at the
	// round-off level of the panel.
	reskh := ctx.Mul(resk, r.half)
	dev := make([]T, 15)
	mag := make([]T, 15)
	for i := range samples {
		dev[i] = ctx.Abs(ctx.Sub(samples[i], reskh))
		mag[i] = ctx.Abs(samples[i])
	}
	resasc := ctx.Mul(ctx.Dot(r.wk, dev), hl)
	resabs := ctx.Mul(ctx.Dot(r.wk, mag), hl)

	errT := ctx.Abs(ctx.Mul(ctx.Sub(resk, resg), hl))

	errF := ctx.Float64(errT)
	resascF := ctx.Float64(resasc)
	if resascF > 0 && errF > 0 {
		ratio := 200 * errF / resascF
		if ratio < 1 {
			errT = ctx.Mul(resasc, ctx.FromFloat64(math.Pow(ratio, 1.5)))
		} else {
			errT = resasc
		}
		errF = ctx.Float64(errT)
	}

	epmach := math.Ldexp(1, 1-int(ctx.Prec()))
	if floor := 50 * epmach * ctx.Float64(resabs); floor > 0 && errF < floor {
		errT = ctx.FromFloat64(floor)
		errF = floor
	}

	return panel[T]{a: a, b: b, value: value, errT: errT, errF: errF}, nil
}
