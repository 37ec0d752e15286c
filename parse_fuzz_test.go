//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/calclab/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("1")
	f.Add("2 * (5+2)")
	f.Add("-5^2")
	f.Fuzz(func(t *testing.T, s string) {
		calc.Parse(s)
	})
}
