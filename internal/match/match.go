// Package match scores approximate string similarity for category
// reconciliation. Scores are on a 0-100 scale, case-insensitive, and
// tolerant of one string being a substring of the other.
package match

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ratio returns the edit-distance similarity of a and b on a 0-100
// scale (100 = identical after case folding).
func Ratio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return levenshtein.RatioForStrings(ra, rb, levenshtein.DefaultOptions) * 100
}

// PartialRatio returns the best Ratio between the shorter string and
// any equal-length window of the longer one. "Food" scores 100 against
// "Food & Beverage" because the window "Food" matches exactly.
func PartialRatio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}

	best := 0.0
	for start := 0; start+len(ra) <= len(rb); start++ {
		window := rb[start : start+len(ra)]
		score := levenshtein.RatioForStrings(ra, window, levenshtein.DefaultOptions) * 100
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}
