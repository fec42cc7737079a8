package numeric

import (
	"math"
	"strconv"
	"strings"

	ap "github.com/lukaszgryglicki/apcomplex"
)

// expFloor is the exponent below which Exp returns exact zero. exp of
// anything smaller is under one ulp of every quantity the evaluators
// form at supported precisions, and keeping it avoids stressing the
// bignum exponent range on arguments like -pi*e^(4u) for large u.
const expFloor = -1e6

// float64Digits is the number of decimals used when rounding to
// float64; enough to reach the subnormal range.
const float64Digits = 324

// Big is the arbitrary-precision backend, carrying values as
// real-valued arbitrary-precision complex numbers.
var _ Context[*ap.Complex] = (*Big)(nil)

type Big struct {
	prec uint

	zero    *ap.Complex
	half    *ap.Complex
	i       *ap.Complex
	negI    *ap.Complex
	negHalI *ap.Complex // -i/2, for sin via the complex exponential
	pi      *ap.Complex
}

// NewBig returns a context with the given significand width in bits.
// A width of 0 selects DefaultPrec.
func NewBig(prec uint) *Big {
	if prec == 0 {
		prec = DefaultPrec
	}

	b := &Big{prec: prec}
	b.zero = ap.MustParse("0", prec)
	b.half = ap.MustParse("0.5", prec)
	b.i = ap.MustParse("0+1i", prec)
	b.negI = ap.New(prec).Sub(b.zero, b.i)
	b.negHalI = ap.New(prec).Mul(b.half, b.negI)

	// pi = -i*log(-1), exact at the working precision.
	minusOne := ap.MustParse("-1", prec)
	b.pi = ap.New(prec).Mul(b.negI, ap.New(prec).Log(minusOne))

	return b
}

// Prec reports the significand width in bits.
func (b *Big) Prec() uint { return b.prec }

func (b *Big) FromFloat64(v float64) *ap.Complex {
	// Shortest round-tripping decimal, without an exponent so the parser
	// only ever sees plain fixed-point literals.
	return ap.MustParse(strconv.FormatFloat(v, 'f', -1, 64), b.prec)
}

func (b *Big) FromInt(n int) *ap.Complex {
	return ap.MustParse(strconv.Itoa(n), b.prec)
}

func (b *Big) MustParse(s string) *ap.Complex {
	return ap.MustParse(s, b.prec)
}

func (b *Big) Pi() *ap.Complex { return b.pi }

func (b *Big) Add(x, y *ap.Complex) *ap.Complex { return ap.New(b.prec).Add(x, y) }
func (b *Big) Sub(x, y *ap.Complex) *ap.Complex { return ap.New(b.prec).Sub(x, y) }
func (b *Big) Mul(x, y *ap.Complex) *ap.Complex { return ap.New(b.prec).Mul(x, y) }
func (b *Big) Div(x, y *ap.Complex) *ap.Complex { return ap.New(b.prec).Div(x, y) }

func (b *Big) Neg(x *ap.Complex) *ap.Complex { return ap.New(b.prec).Sub(b.zero, x) }

// Abs reads the sign from the scientific rendering rather than a
// float64 round trip, so magnitudes below the float64 range keep their
// sign instead of collapsing to zero.
func (b *Big) Abs(x *ap.Complex) *ap.Complex {
	if strings.HasPrefix(strings.TrimSpace(x.StringScientific(3)), "-") {
		return b.Neg(x)
	}
	return x
}

func (b *Big) Exp(x *ap.Complex) *ap.Complex {
	if b.Float64(x) < expFloor {
		return ap.MustParse("0", b.prec)
	}
	return ap.New(b.prec).Exp(x)
}

// Cos, Sin, Cosh and Sinh are formed from the complex exponential, which
// is the primitive the backend provides. Arguments are real-valued, so
// the spurious component stays at round-off level.

func (b *Big) Cos(x *ap.Complex) *ap.Complex {
	ePos := b.Exp(b.Mul(b.i, x))
	eNeg := b.Exp(b.Mul(b.negI, x))
	return b.Mul(b.half, b.Add(ePos, eNeg))
}

func (b *Big) Sin(x *ap.Complex) *ap.Complex {
	ePos := b.Exp(b.Mul(b.i, x))
	eNeg := b.Exp(b.Mul(b.negI, x))
	return b.Mul(b.negHalI, b.Sub(ePos, eNeg))
}

func (b *Big) Cosh(x *ap.Complex) *ap.Complex {
	return b.Mul(b.half, b.Add(b.Exp(x), b.Exp(b.Neg(x))))
}

func (b *Big) Sinh(x *ap.Complex) *ap.Complex {
	return b.Mul(b.half, b.Sub(b.Exp(x), b.Exp(b.Neg(x))))
}

func (b *Big) Dot(w, v []*ap.Complex) *ap.Complex {
	if len(w) != len(v) {
		panic("numeric: dot product length mismatch")
	}

	sum := ap.MustParse("0", b.prec)
	for k := range w {
		sum = b.Add(sum, b.Mul(w[k], v[k]))
	}
	return sum
}

func (b *Big) Float64(x *ap.Complex) float64 {
	s := strings.TrimSpace(strings.TrimPrefix(x.RealStringFixed(float64Digits), "+"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range magnitudes round to the infinity ParseFloat
		// reports; anything else is a non-numeric rendering.
		if math.IsInf(v, 0) {
			return v
		}
		return math.NaN()
	}
	return v
}

func (b *Big) IsFinite(x *ap.Complex) bool {
	re := strings.ToLower(x.RealStringFixed(2))
	im := strings.ToLower(x.ImagStringFixed(2))
	for _, s := range []string{re, im} {
		if strings.Contains(s, "inf") || strings.Contains(s, "nan") {
			return false
		}
	}
	return true
}
