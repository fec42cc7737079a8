package series_test

import (
	"fmt"

	"github.com/ferstp/dbn-upper-bound/dbn/series"
)

func ExamplePhi64() {
	v, err := series.Phi64(0.001)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.9f\n", v)

	// Output:
	// 0.446680170
}
