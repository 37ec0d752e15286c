package calc_test

import (
	"fmt"

	"github.com/calclab/calc"
)

func ExampleEvaluate() {
	r, _ := calc.Evaluate("2 * (5 + 1)")
	fmt.Println(r)
	// Output: 12
}

func ExampleIsIncomplete() {
	buf := "2 * (5+2"
	if _, err := calc.Evaluate(buf); calc.IsIncomplete(err) {
		buf += "\n" + ")"
	}
	r, _ := calc.Evaluate(buf)
	fmt.Println(r)
	// Output: 14
}
