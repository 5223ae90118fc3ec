// Package tokens estimates token counts from plain text.
package tokens

import (
	"math"
	"strings"
)

// WordsPerToken is the heuristic ratio: one token is roughly 0.75 words.
const WordsPerToken = 0.75

// Estimate returns ceil(words / WordsPerToken), where words are the
// whitespace-delimited non-empty substrings of text. Blank text estimates
// to 0.
func Estimate(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerToken))
}
