package curve_test

import (
	"fmt"

	"github.com/katalvlaran/fractalis/curve"
)

// ExampleGenerate builds the Koch snowflake and the Minkowski sausage at level 2.
func ExampleGenerate() {
	flake, err := curve.Generate(curve.SnowflakeSeed(), 2, curve.Koch)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	sausage, _ := curve.Generate(curve.UnitSegment(), 2, curve.Minkowski)

	fmt.Printf("snowflake points=%d closed=%v\n", len(flake), flake[0] == flake[len(flake)-1])
	fmt.Printf("sausage points=%d\n", len(sausage))
	// Output:
	// snowflake points=49 closed=true
	// sausage points=65
}
