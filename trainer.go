package aptagger

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// averagePrecision is the number of decimal places kept by Average.
const averagePrecision = 3

// entry is the training state of one (feature, label) weight.
type entry struct {
	weight float64
	// total is the integral of weight over steps up to timestamp.
	total float64
	// timestamp is the step at which weight last changed.
	timestamp int
}

// Trainer owns the mutable state of an averaged perceptron during online
// training. Averaging is lazy: the time-weighted total of a weight is only
// brought up to date when that weight changes, and once more in Average.
//
// A Trainer is not safe for concurrent use.
type Trainer struct {
	state  map[string]map[string]*entry
	labels []string
	steps  int
	done   bool
}

// NewTrainer returns a Trainer choosing among labels. It returns a
// ConfigError when labels is empty.
func NewTrainer(labels []string) (*Trainer, error) {
	sorted := sortedLabels(labels)
	if len(sorted) == 0 {
		return nil, configErrorf("labels", "label set is empty")
	}
	return &Trainer{
		state:  make(map[string]map[string]*entry),
		labels: sorted,
	}, nil
}

// Steps returns the number of Update calls so far.
func (t *Trainer) Steps() int {
	return t.steps
}

// Weight returns the current, unaveraged weight of (feature, label).
func (t *Trainer) Weight(feature, label string) float64 {
	if e := t.state[feature][label]; e != nil {
		return e.weight
	}
	return 0
}

// Predict scores f with the current weights, using the same rule and
// tie-break as Model.Predict.
func (t *Trainer) Predict(f Features) (string, error) {
	if t.done {
		return "", ErrTrainerFinished
	}
	scores := make(map[string]float64)
	for _, feature := range f.Keys() {
		count := f[feature]
		byLabel, ok := t.state[feature]
		if !ok || count == 0 {
			continue
		}
		for label, e := range byLabel {
			scores[label] += float64(count) * e.weight
		}
	}
	return argmax(t.labels, scores), nil
}

// Update applies the perceptron rule for one prediction: when guess differs
// from truth, every distinct feature in f gains 1 for truth and loses 1 for
// guess, regardless of its count. The step counter advances in every case.
func (t *Trainer) Update(truth, guess string, f Features) error {
	if t.done {
		return ErrTrainerFinished
	}
	if guess != truth {
		for feature := range f {
			t.bump(feature, truth, 1)
			t.bump(feature, guess, -1)
		}
	}
	t.steps++
	return nil
}

// bump settles the running total of (feature, label) up to the current step
// and then changes its weight by v.
func (t *Trainer) bump(feature, label string, v float64) {
	byLabel, ok := t.state[feature]
	if !ok {
		byLabel = make(map[string]*entry)
		t.state[feature] = byLabel
	}
	e, ok := byLabel[label]
	if !ok {
		e = &entry{timestamp: t.steps}
		byLabel[label] = e
	}
	e.total += float64(t.steps-e.timestamp) * e.weight
	e.timestamp = t.steps
	e.weight += v
}

// Average settles every total up to the final step, divides by the number of
// steps, rounds to three decimals and keeps only positive weights. It
// consumes the Trainer: the training state is released and any further call
// returns ErrTrainerFinished.
func (t *Trainer) Average() (*Model, error) {
	if t.done {
		return nil, ErrTrainerFinished
	}
	t.done = true

	weights := make(map[string]map[string]float64, len(t.state))
	if t.steps > 0 {
		for feature, byLabel := range t.state {
			averaged := make(map[string]float64)
			for label, e := range byLabel {
				total := e.total + float64(t.steps-e.timestamp)*e.weight
				w, err := stats.Round(total/float64(t.steps), averagePrecision)
				if err != nil {
					return nil, errors.Wrapf(err, "averaging %q for %q", feature, label)
				}
				if w > 0 {
					averaged[label] = w
				}
			}
			if len(averaged) > 0 {
				weights[feature] = averaged
			}
		}
	}
	labels := t.labels
	t.state = nil
	return NewModel(weights, labels)
}
