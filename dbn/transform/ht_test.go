package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/ferstp/dbn-upper-bound/dbn/series"
	"github.com/ferstp/dbn-upper-bound/quadrature"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// H_0(0) = Xi(0)/8 = xi(1/2)/8.
const h0AtZero = 0.0621400973

func TestHt64ReferenceAtZero(t *testing.T) {
	res, err := Ht64(0, 0)
	if err != nil {
		t.Fatalf("Ht64: %v", err)
	}

	if imag(res.Value) != 0 {
		t.Fatalf("imaginary part = %g, want exact 0 for real z", imag(res.Value))
	}
	if diff := math.Abs(real(res.Value) - h0AtZero); diff > 1e-7 {
		t.Fatalf("H_0(0) = %.17g, want %.10g (diff %g)", real(res.Value), h0AtZero, diff)
	}
	if res.ErrEst < 0 {
		t.Fatalf("negative error estimate %g", res.ErrEst)
	}
}

func TestHt64Evenness(t *testing.T) {
	cases := []struct {
		t float64
		z complex128
	}{
		{0, 5},
		{0, 28.2},
		{-0.5, 12},
		{0.2, 7},
		{0, complex(10, 1)},
		{-1, complex(3, -2)},
	}
	for _, c := range cases {
		plus, err := Ht64(c.t, c.z)
		if err != nil {
			t.Fatalf("Ht64(%v, %v): %v", c.t, c.z, err)
		}
		minus, err := Ht64(c.t, -c.z)
		if err != nil {
			t.Fatalf("Ht64(%v, %v): %v", c.t, -c.z, err)
		}

		tol := plus.ErrEst + minus.ErrEst + 1e-13
		if diff := cmplx.Abs(plus.Value - minus.Value); diff > tol {
			t.Fatalf("t=%v z=%v: H(z)=%v H(-z)=%v diff %g > %g",
				c.t, c.z, plus.Value, minus.Value, diff, tol)
		}
	}
}

func TestHt64ConjugateSymmetry(t *testing.T) {
	cases := []struct {
		t float64
		z complex128
	}{
		{0, complex(10, 1)},
		{-0.5, complex(5, 2)},
		{0.1, complex(8, -1.5)},
	}
	for _, c := range cases {
		direct, err := Ht64(c.t, c.z)
		if err != nil {
			t.Fatalf("Ht64(%v, %v): %v", c.t, c.z, err)
		}
		conjugated, err := Ht64(c.t, cmplx.Conj(c.z))
		if err != nil {
			t.Fatalf("Ht64(%v, conj): %v", c.t, err)
		}

		tol := direct.ErrEst + conjugated.ErrEst + 1e-13
		if diff := cmplx.Abs(conjugated.Value - cmplx.Conj(direct.Value)); diff > tol {
			t.Fatalf("t=%v z=%v: H(conj z)=%v conj(H(z))=%v diff %g > %g",
				c.t, c.z, conjugated.Value, cmplx.Conj(direct.Value), diff, tol)
		}
	}
}

func TestHt64ZeroCrossing(t *testing.T) {
	// Re H_0 has a simple real root near x = 28.2694 (twice the first
	// Riemann zeta zero ordinate 14.1347).
	grid := floats.Span(make([]float64, 51), 28.0, 28.5)

	crossings := 0
	lo, hi := 0.0, 0.0
	prev := 0.0
	for i, x := range grid {
		res, err := Ht64(0, complex(x, 0))
		if err != nil {
			t.Fatalf("Ht64(0, %v): %v", x, err)
		}

		v := real(res.Value)
		if v == 0 {
			t.Fatalf("exact zero at grid point %v, grid too coarse to classify", x)
		}
		if i > 0 && math.Signbit(v) != math.Signbit(prev) {
			crossings++
			lo, hi = grid[i-1], x
		}
		prev = v
	}

	if crossings != 1 {
		t.Fatalf("sign changes = %d, want exactly 1", crossings)
	}
	if lo > 28.28 || hi < 28.25 {
		t.Fatalf("crossing bracketed in [%v, %v], want around 28.2694", lo, hi)
	}
}

func TestHt64TruncationStability(t *testing.T) {
	base, err := Ht64(-0.3, complex(6, 0.5))
	if err != nil {
		t.Fatalf("Ht64: %v", err)
	}

	doubled, err := Ht64(-0.3, complex(6, 0.5), WithTruncation(2*series.DefaultTruncation))
	if err != nil {
		t.Fatalf("Ht64 (nMax=200): %v", err)
	}

	if diff := cmplx.Abs(base.Value - doubled.Value); diff > base.ErrEst+1e-15 {
		t.Fatalf("nMax 100 vs 200 differ by %g, above error estimate %g", diff, base.ErrEst)
	}
}

func TestHt64AgainstFixedRule(t *testing.T) {
	// Cross-check the adaptive result against a dense fixed
	// Gauss-Legendre rule on the same truncated interval.
	const (
		tt = 0.0
		x  = 10.0
	)

	res, err := Ht64(tt, complex(x, 0))
	if err != nil {
		t.Fatalf("Ht64: %v", err)
	}

	f := func(u float64) float64 {
		phi, err := series.Phi64(u)
		if err != nil {
			return math.NaN()
		}
		return phi * math.Exp(tt*u*u) * math.Cos(u*x)
	}
	want := quad.Fixed(f, 0, 10, 300, nil, 0)

	if diff := math.Abs(real(res.Value) - want); diff > 1e-8 {
		t.Fatalf("adaptive %.17g vs fixed rule %.17g (diff %g)", real(res.Value), want, diff)
	}
}

func TestHt64Validation(t *testing.T) {
	if _, err := Ht64(math.NaN(), 1); !errors.Is(err, ErrNonFiniteArgument) {
		t.Fatalf("NaN t: err = %v, want ErrNonFiniteArgument", err)
	}
	if _, err := Ht64(0, cmplx.Inf()); !errors.Is(err, ErrNonFiniteArgument) {
		t.Fatalf("Inf z: err = %v, want ErrNonFiniteArgument", err)
	}
	if _, err := Ht64(0, complex(0, math.Inf(1))); !errors.Is(err, ErrNonFiniteArgument) {
		t.Fatalf("Inf imag z: err = %v, want ErrNonFiniteArgument", err)
	}
	if _, err := Ht64(0, 1, WithTruncation(0)); !errors.Is(err, ErrInvalidTruncation) {
		t.Fatalf("nMax=0: err = %v, want ErrInvalidTruncation", err)
	}
	if _, err := Ht64(0, 1, WithUpperLimit(0)); !errors.Is(err, ErrInvalidUpperLimit) {
		t.Fatalf("upper=0: err = %v, want ErrInvalidUpperLimit", err)
	}
	if _, err := Ht64(0, 1, WithUpperLimit(math.NaN())); !errors.Is(err, ErrInvalidUpperLimit) {
		t.Fatalf("upper=NaN: err = %v, want ErrInvalidUpperLimit", err)
	}
}

func TestHt64Divergence(t *testing.T) {
	_, err := Ht64(0, 200, WithMaxIntervals(2))
	if !errors.Is(err, quadrature.ErrDivergence) {
		t.Fatalf("err = %v, want quadrature.ErrDivergence", err)
	}
}
