package aptagger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) []TaggedSentence {
	var out []TaggedSentence
	for _, line := range lines {
		s, err := ParseSentence(line)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func toyCorpus(t *testing.T) []TaggedSentence {
	return mustParse(t,
		"Simple_JJ is_VBZ better_JJR",
		"Complex_JJ is_VBZ worse_JJR",
	)
}

func TestTrainToyCorpus(t *testing.T) {
	opts := DefaultTrainOptions()
	opts.Iterations = 10
	tagger, err := Train(toyCorpus(t), opts)
	require.NoError(t, err)

	words := []string{"Simple", "is", "good"}
	tags, err := tagger.Tag(words)
	require.NoError(t, err)
	require.Len(t, tags, len(words))
	assert.Equal(t, "VBZ", tags[1])
	assert.Equal(t, []string{"JJ", "JJR", "VBZ"}, tagger.Model().Labels())
}

func TestTrainLearnsCorpus(t *testing.T) {
	sentences := toyCorpus(t)
	opts := DefaultTrainOptions()
	opts.Iterations = 10
	tagger, err := Train(sentences, opts)
	require.NoError(t, err)

	acc, err := tagger.Evaluate(sentences)
	require.NoError(t, err)
	assert.Equal(t, Accuracy{Correct: 6, Total: 6}, acc)
}

func TestTrainIsDeterministic(t *testing.T) {
	sentences := mustParse(t,
		"The_DT cat_NN sat_VBD on_IN the_DT mat_NN ._.",
		"A_DT dog_NN ran_VBD to_TO the_DT park_NN ._.",
		"Dogs_NNS like_VBP 2_CD bones_NNS ._.",
		"The_DT cat_NN likes_VBZ the_DT dog_NN ._.",
	)

	weights := func(opts TrainOptions) map[string]float64 {
		tagger, err := Train(sentences, opts)
		require.NoError(t, err)
		out := map[string]float64{}
		tagger.Model().Range(func(feature, label string, w float64) bool {
			out[feature+"\x00"+label] = w
			return true
		})
		return out
	}

	fixed := DefaultTrainOptions()
	fixed.NoShuffle = true
	assert.Equal(t, weights(fixed), weights(fixed))

	seeded := DefaultTrainOptions()
	seeded.Seed = 42
	assert.Equal(t, weights(seeded), weights(seeded))
}

func TestTrainSentenceFeedsGuessForward(t *testing.T) {
	tr := newTestTrainer(t, "A", "B")
	s := mustParse(t, "x_B y_A")[0]

	// an untrained model guesses A for x, then the bias learned from that
	// mistake makes it guess B for y
	correct, err := trainSentence(tr, TagDictionary{}, s)
	require.NoError(t, err)
	assert.Equal(t, 0, correct)
	assert.Equal(t, 2, tr.Steps())

	assert.Equal(t, 1.0, tr.Weight("prev-tag A", "A"))
	assert.Equal(t, -1.0, tr.Weight("prev-tag A", "B"))
	assert.Equal(t, 0.0, tr.Weight("prev-tag B", "A"))
	assert.Equal(t, 0.0, tr.Weight("prev-tag B", "B"))
}

// visitOrder trains on sentences and returns, per epoch, the input positions
// in the order they were visited.
func visitOrder(t *testing.T, sentences []TaggedSentence, opts TrainOptions) [][]int {
	orders := make([][]int, opts.Iterations)
	opts.Progress = func(p Progress) {
		if p.Kind == SentenceTrained {
			orders[p.Epoch] = append(orders[p.Epoch], p.Index)
		}
	}
	_, err := Train(sentences, opts)
	require.NoError(t, err)
	return orders
}

func TestTrainReshufflesEachEpoch(t *testing.T) {
	sentences := mustParse(t, "a_X", "b_Y", "c_Z", "d_X", "e_Y", "f_Z", "g_X", "h_Y")
	identity := []int{0, 1, 2, 3, 4, 5, 6, 7}

	opts := DefaultTrainOptions()
	opts.Iterations = 3
	orders := visitOrder(t, sentences, opts)
	require.Len(t, orders, 3)
	assert.Equal(t, identity, orders[0])
	for _, order := range orders[1:] {
		assert.ElementsMatch(t, identity, order)
	}
	assert.NotEqual(t, orders[0], orders[1])
	assert.NotEqual(t, orders[1], orders[2])
	assert.Equal(t, orders, visitOrder(t, sentences, opts))

	opts.NoShuffle = true
	for _, order := range visitOrder(t, sentences, opts) {
		assert.Equal(t, identity, order)
	}
}

func TestTrainLeavesInputOrder(t *testing.T) {
	sentences := mustParse(t, "a_X", "b_Y", "c_Z", "d_X", "e_Y")
	saved := append([]TaggedSentence(nil), sentences...)
	_, err := Train(sentences, DefaultTrainOptions())
	require.NoError(t, err)
	assert.Equal(t, saved, sentences)
}

func TestTrainProgress(t *testing.T) {
	var kinds []ProgressKind
	var last Progress
	opts := DefaultTrainOptions()
	opts.Iterations = 2
	opts.Progress = func(p Progress) {
		kinds = append(kinds, p.Kind)
		if p.Kind == SentenceTrained {
			last = p
		}
	}
	_, err := Train(toyCorpus(t), opts)
	require.NoError(t, err)

	assert.Equal(t, []ProgressKind{
		EpochStart, SentenceTrained, SentenceTrained, EpochEnd,
		EpochStart, SentenceTrained, SentenceTrained, EpochEnd,
		Averaging,
	}, kinds)
	assert.Equal(t, 1, last.Epoch)
	assert.Equal(t, 1, last.Sentence)
	assert.Equal(t, 2, last.Sentences)
	assert.Equal(t, 6, last.Total)
}

func TestTrainProgressDoesNotAffectResult(t *testing.T) {
	quiet := DefaultTrainOptions()
	noisy := DefaultTrainOptions()
	var n int
	noisy.Progress = func(Progress) { n++ }

	a, err := Train(toyCorpus(t), quiet)
	require.NoError(t, err)
	b, err := Train(toyCorpus(t), noisy)
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, a.Model(), b.Model())
}

func TestTrainUsesDictionary(t *testing.T) {
	var sentences []TaggedSentence
	for i := 0; i < 30; i++ {
		sentences = append(sentences, mustParse(t, "the_DT dog_NN")...)
	}
	opts := DefaultTrainOptions()
	opts.Iterations = 1
	tagger, err := Train(sentences, opts)
	require.NoError(t, err)

	assert.Equal(t, TagDictionary{"the": "DT", "dog": "NN"}, tagger.Dictionary())
	// every token came from the dictionary, so the perceptron never updated
	assert.Equal(t, 0, tagger.Model().NumFeatures())
}

func TestTrainConfigErrors(t *testing.T) {
	var ce *ConfigError

	opts := DefaultTrainOptions()
	opts.Iterations = 0
	_, err := Train(toyCorpus(t), opts)
	assert.True(t, errors.As(err, &ce), "%v", err)

	opts = DefaultTrainOptions()
	opts.Dictionary.FrequencyThreshold = -1
	_, err = Train(toyCorpus(t), opts)
	assert.True(t, errors.As(err, &ce), "%v", err)

	_, err = Train(nil, DefaultTrainOptions())
	assert.True(t, errors.As(err, &ce), "%v", err)
}

func TestProgressKindString(t *testing.T) {
	assert.Equal(t, "epoch-start", EpochStart.String())
	assert.Equal(t, "averaging", Averaging.String())
	assert.Equal(t, "unknown", ProgressKind(99).String())
}
