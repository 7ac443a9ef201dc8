package aptagger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagKeepsLengthAndOrder(t *testing.T) {
	model, err := NewModel(map[string]map[string]float64{
		"word dog": {"NN": 1},
		"word ran": {"VBD": 1},
	}, []string{"DT", "NN", "VBD"})
	require.NoError(t, err)
	tagger := NewTagger(model, TagDictionary{"The": "DT"})

	tests := []struct {
		words []string
		want  []string
	}{
		{[]string{"The", "dog", "ran"}, []string{"DT", "NN", "VBD"}},
		{[]string{"ran", "The", "DOG"}, []string{"VBD", "DT", "NN"}},
		{[]string{"unknown"}, []string{"DT"}},
		{nil, []string{}},
	}
	for _, tt := range tests {
		got, err := tagger.Tag(tt.words)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.words)
	}
}

func TestTagDictionaryWins(t *testing.T) {
	model, err := NewModel(map[string]map[string]float64{
		"word the": {"NN": 100},
	}, []string{"DT", "NN"})
	require.NoError(t, err)

	dict := TagDictionary{"the": "DT"}
	tagger := NewTagger(model, dict)
	dict["the"] = "XX"

	got, err := tagger.Tag([]string{"the", "The"})
	require.NoError(t, err)
	assert.Equal(t, []string{"DT", "NN"}, got)
}

func TestTagConcurrently(t *testing.T) {
	opts := DefaultTrainOptions()
	opts.Iterations = 10
	tagger, err := Train(toyCorpus(t), opts)
	require.NoError(t, err)

	words := []string{"Complex", "is", "worse", "than", "simple"}
	want, err := tagger.Tag(words)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = tagger.Tag(words)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEvaluate(t *testing.T) {
	model, err := NewModel(nil, []string{"NN", "VB"})
	require.NoError(t, err)
	tagger := NewTagger(model, nil)

	acc, err := tagger.Evaluate(mustParse(t, "dog_NN runs_VB", "cat_NN"))
	require.NoError(t, err)
	assert.Equal(t, Accuracy{Correct: 2, Total: 3}, acc)
	assert.Equal(t, "2/3 = 66.667%", acc.String())
}

func TestAccuracyEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy{}.Percent())
	assert.Equal(t, "0/0 = 0.000%", Accuracy{}.String())
}
