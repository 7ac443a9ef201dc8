package aptagger

import (
	"regexp"
	"strings"
)

// Sentinels padding a Context and seeding the previous-tag window.
const (
	Start  = "-START-"
	Start2 = "-START2-"
	End    = "-END-"
	End2   = "-END2-"

	// Number replaces every numeric token before feature extraction.
	Number = "!NUMBER"
)

// ContextOffset is the Context index of the first real word.
const ContextOffset = 2

// reNumber matches digits optionally interspersed with '.' and ','.
var reNumber = regexp.MustCompile(`^[0-9][0-9,.]*$`)

// IsNumber reports whether word is a numeric token such as "1,000" or "3.14".
func IsNumber(word string) bool {
	return reNumber.MatchString(word)
}

// Normalize maps numeric tokens to Number and case-folds everything else.
func Normalize(word string) string {
	if IsNumber(word) {
		return Number
	}
	return strings.ToLower(word)
}

// NewContext normalizes words and pads them with two start and two end
// sentinels, so that a window of two words on each side always exists.
func NewContext(words []string) []string {
	context := make([]string, 0, len(words)+4)
	context = append(context, Start, Start2)
	for _, w := range words {
		context = append(context, Normalize(w))
	}
	return append(context, End, End2)
}
