package transform

import (
	"math"
	"testing"

	"github.com/ferstp/dbn-upper-bound/numeric"
)

// The generic evaluator must give the same answer through the
// arbitrary-precision backend as through float64, configuration held
// fixed.
func TestHtBigMatchesFloat64(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping arbitrary-precision evaluation in short mode")
	}

	opts := []Option{
		WithTolerance(1e-8, 1e-6),
		WithUpperLimit(2),
		WithTruncation(30),
	}

	f64 := numeric.Float64{}
	re64, im64, _, err := Ht(f64, 0.0, 1.0, 0.0, opts...)
	if err != nil {
		t.Fatalf("Ht float64: %v", err)
	}
	if im64 != 0 {
		t.Fatalf("imaginary part = %g, want 0 for real z", im64)
	}

	big := numeric.NewBig(96)
	reBig, imBig, _, err := Ht(big, big.FromInt(0), big.FromInt(1), big.FromInt(0), opts...)
	if err != nil {
		t.Fatalf("Ht big: %v", err)
	}

	if diff := math.Abs(big.Float64(reBig) - re64); diff > 1e-10 {
		t.Fatalf("backend mismatch: big %v vs float64 %v (diff %g)", big.Float64(reBig), re64, diff)
	}
	if got := big.Float64(imBig); got != 0 {
		t.Fatalf("big imaginary part = %v, want 0", got)
	}
}
