// Package text normalizes utterances and dish names so both sides of a
// substring match go through the same folding.
package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps raw text to its comparable form
type Normalizer func(s string) string

// Fold composes to NFC and applies Unicode case folding.
// A new Caser is built per call because cases.Caser is not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// ContainsAny reports whether s contains any of the given phrases.
// Both s and phrases are expected to be normalized already.
func ContainsAny(s string, phrases ...string) bool {
	for _, phrase := range phrases {
		if phrase != "" && strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
