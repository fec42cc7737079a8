package quadrature_test

import (
	"fmt"
	"math"

	"github.com/ferstp/dbn-upper-bound/numeric"
	"github.com/ferstp/dbn-upper-bound/quadrature"
)

func ExampleAdaptive() {
	ctx := numeric.Float64{}
	f := func(u float64) (float64, error) { return math.Exp(-u), nil }

	value, _, err := quadrature.Adaptive(ctx, f, 0, 1)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.6f\n", value)

	// Output:
	// 0.632121
}
