// Package numeric defines the arithmetic context the evaluators are
// written against, with a fixed-width float64 backend and an
// arbitrary-precision backend.
//
// All arithmetic within one evaluation goes through a single Context, so
// a computation is moved between precisions by swapping the context, not
// by touching the algorithm. Values produced by one context must not be
// mixed with values from another.
package numeric

// DefaultPrec is the default significand width in bits for the
// arbitrary-precision backend, matching extended double precision.
const DefaultPrec = 80

// Context provides the arithmetic operations the series and quadrature
// code needs, over an opaque value type T.
//
// Values are real-valued by convention; backends may carry them in a
// complex representation internally as long as the imaginary part stays
// at round-off level.
type Context[T any] interface {
	// Prec reports the significand width in bits.
	Prec() uint

	FromFloat64(v float64) T
	FromInt(n int) T
	// MustParse converts a decimal literal and panics on malformed input.
	// It exists for embedding constants that exceed float64 accuracy.
	MustParse(s string) T
	Pi() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	Abs(a T) T

	Exp(a T) T
	Cos(a T) T
	Sin(a T) T
	Cosh(a T) T
	Sinh(a T) T

	// Dot returns the inner product of w and v, which must have equal
	// length.
	Dot(w, v []T) T

	// Float64 rounds a to the nearest float64, with over- and underflow
	// mapped to ±Inf and 0.
	Float64(a T) float64
	IsFinite(a T) bool
}
