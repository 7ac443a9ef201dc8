package aptagger

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repeatSentence returns n one-word sentences word_tag.
func repeatSentence(word, tag string, n int) []TaggedSentence {
	out := make([]TaggedSentence, n)
	for i := range out {
		out[i] = TaggedSentence{Words: []string{word}, Tags: []string{tag}}
	}
	return out
}

func TestBuildTagDictionaryAmbiguity(t *testing.T) {
	opts := DictionaryOptions{FrequencyThreshold: 20, AmbiguityThreshold: 0.97}

	// 24/25 = 0.96 < 0.97
	sentences := append(repeatSentence("the", "DT", 24), repeatSentence("the", "JJ", 1)...)
	dict, err := BuildTagDictionary(sentences, opts)
	require.NoError(t, err)
	_, ok := dict.Lookup("the")
	assert.False(t, ok)

	// 25/25 = 1.0
	dict, err = BuildTagDictionary(repeatSentence("the", "DT", 25), opts)
	require.NoError(t, err)
	tag, ok := dict.Lookup("the")
	assert.True(t, ok)
	assert.Equal(t, "DT", tag)
}

func TestBuildTagDictionaryFrequency(t *testing.T) {
	opts := DefaultDictionaryOptions()

	// exactly the threshold is not enough
	dict, err := BuildTagDictionary(repeatSentence("of", "IN", 20), opts)
	require.NoError(t, err)
	assert.Empty(t, dict)

	dict, err = BuildTagDictionary(repeatSentence("of", "IN", 21), opts)
	require.NoError(t, err)
	assert.Equal(t, TagDictionary{"of": "IN"}, dict)
}

func TestBuildTagDictionaryKeepsRawWords(t *testing.T) {
	opts := DictionaryOptions{FrequencyThreshold: 0, AmbiguityThreshold: 0.5}
	dict, err := BuildTagDictionary([]TaggedSentence{
		{Words: []string{"The", "the"}, Tags: []string{"DT", "DT"}},
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, TagDictionary{"The": "DT", "the": "DT"}, dict)
}

func TestBuildTagDictionaryMajorityTie(t *testing.T) {
	opts := DictionaryOptions{FrequencyThreshold: 0, AmbiguityThreshold: 0.5}
	sentences := append(repeatSentence("run", "VB", 2), repeatSentence("run", "NN", 2)...)
	dict, err := BuildTagDictionary(sentences, opts)
	require.NoError(t, err)
	assert.Equal(t, "NN", dict["run"])
}

func TestDictionaryOptionsValidate(t *testing.T) {
	tests := []struct {
		opts  DictionaryOptions
		valid bool
	}{
		{DefaultDictionaryOptions(), true},
		{DictionaryOptions{FrequencyThreshold: 0, AmbiguityThreshold: 0}, true},
		{DictionaryOptions{FrequencyThreshold: 0, AmbiguityThreshold: 1}, true},
		{DictionaryOptions{FrequencyThreshold: -1, AmbiguityThreshold: 0.97}, false},
		{DictionaryOptions{FrequencyThreshold: 20, AmbiguityThreshold: 1.5}, false},
		{DictionaryOptions{FrequencyThreshold: 20, AmbiguityThreshold: -0.1}, false},
		{DictionaryOptions{FrequencyThreshold: 20, AmbiguityThreshold: math.NaN()}, false},
	}
	for _, tt := range tests {
		err := tt.opts.Validate()
		if tt.valid {
			assert.NoError(t, err, "%+v", tt.opts)
			continue
		}
		var ce *ConfigError
		assert.True(t, errors.As(err, &ce), "%+v: %v", tt.opts, err)
		_, err = BuildTagDictionary(nil, tt.opts)
		assert.True(t, errors.As(err, &ce), "%+v: %v", tt.opts, err)
	}
}

func TestCollectLabels(t *testing.T) {
	labels := CollectLabels([]TaggedSentence{
		{Words: []string{"a", "b"}, Tags: []string{"NN", "DT"}},
		{Words: []string{"c"}, Tags: []string{"NN"}},
	})
	assert.Equal(t, []string{"DT", "NN"}, labels)
	assert.Empty(t, CollectLabels(nil))
}
