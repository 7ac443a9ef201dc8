package aptagger

import (
	"strings"

	"github.com/pkg/errors"
)

// Separators of the corpus line format: "Simple_JJ is_VBZ better_JJR".
const (
	WordSeparator  = " "
	TokenSeparator = "_"
)

// TaggedSentence is an ordered sequence of words with one tag per word.
// Words and Tags always have the same length and are not modified after
// construction.
type TaggedSentence struct {
	Words []string
	Tags  []string
}

// NewTaggedSentence pairs words with tags; both must have the same length.
func NewTaggedSentence(words, tags []string) (TaggedSentence, error) {
	if len(words) != len(tags) {
		return TaggedSentence{}, errors.Errorf("%d words but %d tags", len(words), len(tags))
	}
	return TaggedSentence{
		Words: append([]string(nil), words...),
		Tags:  append([]string(nil), tags...),
	}, nil
}

// Len returns the number of tokens.
func (s TaggedSentence) Len() int {
	return len(s.Words)
}

// String renders the sentence in corpus line format.
func (s TaggedSentence) String() string {
	return FormatSentence(s.Words, s.Tags)
}

// ParseSentence splits a corpus line into words and tags. Every token must
// hold exactly one TokenSeparator with a non-empty word and tag on either
// side; otherwise a *FormatError naming the token is returned.
func ParseSentence(line string) (TaggedSentence, error) {
	tokens := strings.Split(line, WordSeparator)
	s := TaggedSentence{
		Words: make([]string, 0, len(tokens)),
		Tags:  make([]string, 0, len(tokens)),
	}
	for _, token := range tokens {
		parts := strings.Split(token, TokenSeparator)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return TaggedSentence{}, errors.WithStack(&FormatError{Token: token, Sentence: line})
		}
		s.Words = append(s.Words, parts[0])
		s.Tags = append(s.Tags, parts[1])
	}
	return s, nil
}

// FormatSentence joins each word with its tag and the pairs with spaces.
func FormatSentence(words, tags []string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(WordSeparator)
		}
		b.WriteString(w)
		b.WriteString(TokenSeparator)
		if i < len(tags) {
			b.WriteString(tags[i])
		}
	}
	return b.String()
}
