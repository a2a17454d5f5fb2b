package interp_test

import (
	"fmt"

	"github.com/katalvlaran/classify/interp"
)

// ExampleValues spreads two symbol sizes over five classes.
func ExampleValues() {
	sizes, err := interp.Values(5, []float64{4, 24})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sizes)
	// Output:
	// [4 9 14 19 24]
}

// ExampleVectorValues builds a three-class black-to-white color ramp.
func ExampleVectorValues() {
	ramp, err := interp.VectorValues(3, [][]float64{{0, 0, 0}, {255, 255, 255}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, color := range ramp {
		fmt.Println(color)
	}
	// Output:
	// [0 0 0]
	// [127.5 127.5 127.5]
	// [255 255 255]
}
