package aptagger

import (
	"math/rand"
	"time"
)

// DefaultIterations is the default number of training epochs.
const DefaultIterations = 5

// ProgressKind identifies a training progress record.
type ProgressKind int

const (
	// EpochStart is emitted before the first sentence of an epoch.
	EpochStart ProgressKind = iota
	// SentenceTrained is emitted after each sentence.
	SentenceTrained
	// EpochEnd is emitted after the last sentence of an epoch.
	EpochEnd
	// Averaging is emitted once, right before the weights are averaged.
	Averaging
)

func (k ProgressKind) String() string {
	switch k {
	case EpochStart:
		return "epoch-start"
	case SentenceTrained:
		return "sentence-trained"
	case EpochEnd:
		return "epoch-end"
	case Averaging:
		return "averaging"
	default:
		return "unknown"
	}
}

// Progress is a snapshot of training. Epoch and Sentence are 0-based;
// Correct and Total are running token counts within the current epoch.
// Index is the position in the input slice of the sentence just trained,
// so Sentence counts visits while Index tracks the shuffled order.
type Progress struct {
	Kind      ProgressKind
	Epoch     int
	Epochs    int
	Sentence  int
	Sentences int
	Index     int
	Correct   int
	Total     int
}

// Accuracy returns the running accuracy carried by the record.
func (p Progress) Accuracy() Accuracy {
	return Accuracy{Correct: p.Correct, Total: p.Total}
}

// TrainOptions configures Train.
type TrainOptions struct {
	// Iterations is the number of passes over the corpus.
	Iterations int
	// Dictionary controls the tag dictionary shortcut.
	Dictionary DictionaryOptions
	// Seed seeds the shuffle between epochs.
	Seed int64
	// RandomSeed seeds the shuffle from the clock instead of Seed.
	RandomSeed bool
	// NoShuffle keeps the corpus order across epochs.
	NoShuffle bool
	// Progress, if set, observes training. It is called synchronously on the
	// training goroutine, so a slow callback slows training down.
	Progress func(Progress)
}

// DefaultTrainOptions returns 5 iterations, the default dictionary
// thresholds and a fixed shuffle seed.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{
		Iterations: DefaultIterations,
		Dictionary: DefaultDictionaryOptions(),
		Seed:       1,
	}
}

// Validate returns a ConfigError for unusable options.
func (o TrainOptions) Validate() error {
	if o.Iterations < 1 {
		return configErrorf("iterations", "%d is less than 1", o.Iterations)
	}
	return o.Dictionary.Validate()
}

func (o TrainOptions) emit(p Progress) {
	if o.Progress != nil {
		o.Progress(p)
	}
}

// Train learns a Tagger from sentences with online averaged perceptron
// updates and greedy left-to-right decoding. Unless NoShuffle is set, the
// visiting order is reshuffled after every epoch; the caller's slice itself
// is never reordered.
func Train(sentences []TaggedSentence, opts TrainOptions) (*Tagger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	dict, err := BuildTagDictionary(sentences, opts.Dictionary)
	if err != nil {
		return nil, err
	}
	trainer, err := NewTrainer(CollectLabels(sentences))
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if opts.RandomSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	for epoch := 0; epoch < opts.Iterations; epoch++ {
		opts.emit(Progress{Kind: EpochStart, Epoch: epoch, Epochs: opts.Iterations, Sentences: len(order)})

		var correct, total int
		for i, idx := range order {
			s := sentences[idx]
			c, err := trainSentence(trainer, dict, s)
			if err != nil {
				return nil, err
			}
			correct += c
			total += s.Len()
			opts.emit(Progress{
				Kind:      SentenceTrained,
				Epoch:     epoch,
				Epochs:    opts.Iterations,
				Sentence:  i,
				Sentences: len(order),
				Index:     idx,
				Correct:   correct,
				Total:     total,
			})
		}

		if !opts.NoShuffle {
			rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}
		opts.emit(Progress{
			Kind:      EpochEnd,
			Epoch:     epoch,
			Epochs:    opts.Iterations,
			Sentence:  len(order) - 1,
			Sentences: len(order),
			Correct:   correct,
			Total:     total,
		})
	}

	opts.emit(Progress{Kind: Averaging, Epoch: opts.Iterations - 1, Epochs: opts.Iterations, Sentences: len(order)})
	model, err := trainer.Average()
	if err != nil {
		return nil, err
	}
	return NewTagger(model, dict), nil
}

// trainSentence decodes s greedily with the live weights, updating after
// every token the dictionary does not cover. The guessed tag, not the gold
// one, is fed forward as context. It returns the number of correct guesses.
func trainSentence(t *Trainer, dict TagDictionary, s TaggedSentence) (int, error) {
	context := NewContext(s.Words)
	prev, prev2 := Start, Start2
	var correct int
	for i, word := range s.Words {
		gold := s.Tags[i]
		guess, ok := dict.Lookup(word)
		if !ok {
			f := Extract(ContextOffset+i, context, prev, prev2)
			var err error
			if guess, err = t.Predict(f); err != nil {
				return 0, err
			}
			if err := t.Update(gold, guess, f); err != nil {
				return 0, err
			}
		}
		prev2, prev = prev, guess
		if guess == gold {
			correct++
		}
	}
	return correct, nil
}
