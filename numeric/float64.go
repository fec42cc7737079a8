package numeric

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-vecmath"
)

// Float64 is the fixed-width backend. The zero value is ready to use.
type Float64 struct{}

var _ Context[float64] = Float64{}

// Prec reports the float64 significand width.
func (Float64) Prec() uint { return 53 }

func (Float64) FromFloat64(v float64) float64 { return v }

func (Float64) FromInt(n int) float64 { return float64(n) }

func (Float64) MustParse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("numeric: bad decimal literal %q: %v", s, err))
	}
	return v
}

func (Float64) Pi() float64 { return math.Pi }

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) Abs(a float64) float64    { return math.Abs(a) }

func (Float64) Exp(a float64) float64  { return math.Exp(a) }
func (Float64) Cos(a float64) float64  { return math.Cos(a) }
func (Float64) Sin(a float64) float64  { return math.Sin(a) }
func (Float64) Cosh(a float64) float64 { return math.Cosh(a) }
func (Float64) Sinh(a float64) float64 { return math.Sinh(a) }

// Dot computes the inner product using the block multiply kernel.
func (Float64) Dot(w, v []float64) float64 {
	if len(w) != len(v) {
		panic("numeric: dot product length mismatch")
	}
	buf := make([]float64, len(w))
	vecmath.MulBlock(buf, w, v)

	sum := 0.0
	for _, x := range buf {
		sum += x
	}
	return sum
}

func (Float64) Float64(a float64) float64 { return a }

func (Float64) IsFinite(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}
