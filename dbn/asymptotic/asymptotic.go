package asymptotic

import (
	"errors"
	"math"
	"math/cmplx"
)

var (
	ErrNonFiniteArgument   = errors.New("asymptotic: arguments must be finite")
	ErrNonPositiveHeight   = errors.New("asymptotic: height must be positive")
	ErrNonPositiveRealPart = errors.New("asymptotic: real part of z must be positive")
)

// Nt estimates the number of zeros of H_t up to the given height:
//
//	N_t(T) = (T/4pi)*log(T/4pi) - T/4pi + (t/16)*log(T/4pi).
func Nt(t, height float64) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return 0, ErrNonFiniteArgument
	}
	if height <= 0 {
		return 0, ErrNonPositiveHeight
	}

	scaled := height / (4 * math.Pi)
	logScaled := math.Log(scaled)

	return scaled*logScaled - scaled + t/16*logScaled, nil
}

// ZLargeResult holds the closed-form large-|z| approximation of H_t.
type ZLargeResult struct {
	// Value includes the dominant exp(-pi*x/8) amplitude.
	Value complex128

	// Magnitude is |Value|.
	Magnitude float64

	// Unscaled omits the exp(-pi*x/8) amplitude, which is useful when
	// that factor would underflow for very large x.
	Unscaled complex128
}

// ZLarge approximates H_t(z) for large Re z > 0:
//
//	H_t(z) ~ A1 * A3 * exp(-iB) * exp(-pi*x/8),
//
// with x = Re z, y = Im z and
//
//	B  = (pi*t/16 + x/4)*log(x/4pi) - x/4 + pi*(9+y)/8,
//	A1 = pi^2 * sqrt(pi/(2i*x)) * (x/4pi)^((9+y)/4),
//	A3 = exp((t/16)*log^2(x/4pi) - t*pi^2/64).
func ZLarge(t float64, z complex128) (ZLargeResult, error) {
	x, y := real(z), imag(z)
	if math.IsNaN(t) || math.IsInf(t, 0) || !isFiniteComplex(z) {
		return ZLargeResult{}, ErrNonFiniteArgument
	}
	if x <= 0 {
		return ZLargeResult{}, ErrNonPositiveRealPart
	}

	piSq := math.Pi * math.Pi
	xBy4Pi := x / (4 * math.Pi)
	logX := math.Log(xBy4Pi)

	b := (math.Pi*t/16+x/4)*logX - x/4 + math.Pi*(9+y)/8
	a1 := complex(piSq, 0) *
		cmplx.Sqrt(complex(math.Pi, 0)/(2i*complex(x, 0))) *
		cmplx.Pow(complex(xBy4Pi, 0), complex((9+y)/4, 0))
	a3 := math.Exp(t/16*logX*logX - t*piSq/64)

	unscaled := a1 * complex(a3, 0) * cmplx.Exp(complex(0, -b))
	value := unscaled * complex(math.Exp(-math.Pi*x/8), 0)

	return ZLargeResult{
		Value:     value,
		Magnitude: cmplx.Abs(value),
		Unscaled:  unscaled,
	}, nil
}

func isFiniteComplex(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
