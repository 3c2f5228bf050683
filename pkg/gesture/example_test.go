package gesture_test

import (
	"fmt"

	"github.com/matzehuels/shuffle/pkg/gesture"
)

func ExampleTension_MapDistance() {
	t := gesture.Tension{Inner: 100, Outer: 370, Factor: 0.8}
	for _, raw := range []float64{50, 100, 200, 1000} {
		fmt.Printf("%4.0f -> %3.0f\n", raw, t.MapDistance(raw))
	}
	// Output:
	//   50 ->  50
	//  100 -> 100
	//  200 -> 343
	// 1000 -> 370
}
