package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/lvqsim/sampler"
)

// ExampleSample measures |10⟩ a few times; a basis state always yields the same label.
func ExampleSample() {
	amps := []complex128{0, 0, 1, 0}
	counts, err := sampler.Sample(amps, 4, sampler.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, k := range counts.Keys() {
		fmt.Println(k, counts[k])
	}
	// Output:
	// 10 4
}
