// Package aptagger is a greedy part-of-speech tagger built on an averaged
// perceptron. Train learns a Tagger from tagged sentences; the Tagger labels
// new word sequences left to right, consulting a tag dictionary of frequent
// unambiguous words before the perceptron.
package aptagger

import "fmt"

// Tagger decodes word sequences with a frozen Model and a TagDictionary.
// It is read-only after construction and safe for concurrent use.
type Tagger struct {
	model *Model
	dict  TagDictionary
}

// NewTagger returns a Tagger over model. The dictionary is copied.
func NewTagger(model *Model, dict TagDictionary) *Tagger {
	return &Tagger{model: model, dict: dict.clone()}
}

// Model returns the frozen perceptron.
func (t *Tagger) Model() *Model {
	return t.model
}

// Dictionary returns a copy of the tag dictionary.
func (t *Tagger) Dictionary() TagDictionary {
	return t.dict.clone()
}

// Tag returns one tag per word, in order.
func (t *Tagger) Tag(words []string) ([]string, error) {
	context := NewContext(words)
	prev, prev2 := Start, Start2
	tags := make([]string, 0, len(words))
	for i, word := range words {
		tag, ok := t.dict.Lookup(word)
		if !ok {
			var err error
			tag, err = t.model.Predict(Extract(ContextOffset+i, context, prev, prev2))
			if err != nil {
				return nil, err
			}
		}
		tags = append(tags, tag)
		prev2, prev = prev, tag
	}
	return tags, nil
}

// Accuracy counts correctly tagged tokens.
type Accuracy struct {
	Correct int
	Total   int
}

// Percent returns the share of correct tokens in percent, 0 when empty.
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Total) * 100
}

// String formats the accuracy as "correct/total = percentage%".
func (a Accuracy) String() string {
	return fmt.Sprintf("%d/%d = %.3f%%", a.Correct, a.Total, a.Percent())
}

// Evaluate tags the words of every sentence and compares against its tags.
func (t *Tagger) Evaluate(sentences []TaggedSentence) (Accuracy, error) {
	var acc Accuracy
	for _, s := range sentences {
		tags, err := t.Tag(s.Words)
		if err != nil {
			return Accuracy{}, err
		}
		for i, tag := range tags {
			if tag == s.Tags[i] {
				acc.Correct++
			}
			acc.Total++
		}
	}
	return acc, nil
}
