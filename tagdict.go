package aptagger

import "sort"

// Default thresholds for BuildTagDictionary.
const (
	DefaultFrequencyThreshold = 20
	DefaultAmbiguityThreshold = 0.97
)

// TagDictionary fixes the tag of frequent, unambiguous words. Keys are the
// words as they appear in the corpus, before normalization.
type TagDictionary map[string]string

// DictionaryOptions controls which words enter the TagDictionary.
type DictionaryOptions struct {
	// FrequencyThreshold is the number of occurrences a word must exceed.
	FrequencyThreshold int
	// AmbiguityThreshold is the minimum share of the majority tag.
	AmbiguityThreshold float64
}

// DefaultDictionaryOptions returns the default thresholds.
func DefaultDictionaryOptions() DictionaryOptions {
	return DictionaryOptions{
		FrequencyThreshold: DefaultFrequencyThreshold,
		AmbiguityThreshold: DefaultAmbiguityThreshold,
	}
}

// Validate returns a ConfigError for out of range thresholds.
func (o DictionaryOptions) Validate() error {
	if o.FrequencyThreshold < 0 {
		return configErrorf("frequency threshold", "%d is negative", o.FrequencyThreshold)
	}
	if !(o.AmbiguityThreshold >= 0 && o.AmbiguityThreshold <= 1) {
		return configErrorf("ambiguity threshold", "%v is outside [0, 1]", o.AmbiguityThreshold)
	}
	return nil
}

// BuildTagDictionary counts the tags of every word in sentences and fixes a
// word to its majority tag when it occurs more than FrequencyThreshold times
// and the majority tag accounts for at least AmbiguityThreshold of them.
// Majority ties go to the lexicographically smallest tag.
func BuildTagDictionary(sentences []TaggedSentence, opts DictionaryOptions) (TagDictionary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[string]map[string]int)
	for _, s := range sentences {
		for i, word := range s.Words {
			byTag, ok := counts[word]
			if !ok {
				byTag = make(map[string]int)
				counts[word] = byTag
			}
			byTag[s.Tags[i]]++
		}
	}

	dict := make(TagDictionary)
	for word, byTag := range counts {
		var tag string
		var mode, n int
		for t, c := range byTag {
			n += c
			if c > mode || (c == mode && t < tag) {
				tag, mode = t, c
			}
		}
		if n > opts.FrequencyThreshold && float64(mode)/float64(n) >= opts.AmbiguityThreshold {
			dict[word] = tag
		}
	}
	return dict, nil
}

// CollectLabels returns the distinct tags of sentences, sorted.
func CollectLabels(sentences []TaggedSentence) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, s := range sentences {
		for _, tag := range s.Tags {
			if !seen[tag] {
				seen[tag] = true
				labels = append(labels, tag)
			}
		}
	}
	sort.Strings(labels)
	return labels
}

// Lookup returns the fixed tag of word, if any.
func (d TagDictionary) Lookup(word string) (string, bool) {
	tag, ok := d[word]
	return tag, ok
}

func (d TagDictionary) clone() TagDictionary {
	out := make(TagDictionary, len(d))
	for w, t := range d {
		out[w] = t
	}
	return out
}
