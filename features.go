package aptagger

import (
	"sort"
	"strings"
)

const suffixLength = 3

// Features maps a feature key to the number of times it fired at a position.
type Features map[string]int

// add joins the component name and its values with spaces and counts the key.
func (f Features) add(parts ...string) {
	f[strings.Join(parts, " ")]++
}

// Keys returns the feature keys in sorted order.
func (f Features) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// suffix returns the last suffixLength runes of word.
func suffix(word string) string {
	r := []rune(word)
	if len(r) <= suffixLength {
		return word
	}
	return string(r[len(r)-suffixLength:])
}

// prefix1 returns the first rune of word, or "" for an empty word.
func prefix1(word string) string {
	for _, r := range word {
		return string(r)
	}
	return ""
}

// Extract builds the features of the word at index i of a padded context
// (see NewContext), given the two previously emitted tags. i must satisfy
// ContextOffset <= i < len(context)-2.
func Extract(i int, context []string, prev, prev2 string) Features {
	word := context[i]
	f := make(Features, 14)

	f.add("bias")
	f.add("suffix", suffix(word))
	f.add("prefix1", prefix1(word))

	f.add("prev-tag", prev)
	f.add("prev2-tag", prev2)
	f.add("prev-tags", prev, prev2)

	f.add("word", word)
	f.add("prev-tag+word", prev, word)

	f.add("prev-word", context[i-1])
	f.add("prev-suffix", suffix(context[i-1]))
	f.add("prev2-word", context[i-2])

	f.add("next-word", context[i+1])
	f.add("next-suffix", suffix(context[i+1]))
	f.add("next2-word", context[i+2])

	return f
}
