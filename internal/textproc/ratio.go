package textproc

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SequenceRatio scores the character-level similarity of two strings in [0,1]
// using the classic longest-matching-subsequence ratio.
func SequenceRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
