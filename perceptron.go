package aptagger

import (
	"sort"
)

// Model is a frozen averaged perceptron: per-feature label weights plus the
// label set it chooses from. A Model never changes after NewModel returns,
// so it may be shared freely between goroutines.
type Model struct {
	// weights maps feature → label → weight. Absent entries weigh 0.
	weights map[string]map[string]float64
	// labels is sorted and free of duplicates; it fixes the tie-break order.
	labels []string
}

// NewModel copies weights and labels into a new Model. Weight entries of 0
// are dropped. It returns a ConfigError when labels is empty.
func NewModel(weights map[string]map[string]float64, labels []string) (*Model, error) {
	sorted := sortedLabels(labels)
	if len(sorted) == 0 {
		return nil, configErrorf("labels", "label set is empty")
	}
	m := &Model{
		weights: make(map[string]map[string]float64, len(weights)),
		labels:  sorted,
	}
	for feature, byLabel := range weights {
		copied := make(map[string]float64, len(byLabel))
		for label, w := range byLabel {
			if w != 0 {
				copied[label] = w
			}
		}
		if len(copied) > 0 {
			m.weights[feature] = copied
		}
	}
	return m, nil
}

// sortedLabels returns the distinct labels in lexicographic order.
func sortedLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// Predict returns the highest scoring label for f. The score of a label is
// the sum over features of count × weight; ties go to the lexicographically
// smallest label.
func (m *Model) Predict(f Features) (string, error) {
	if m == nil || len(m.labels) == 0 {
		return "", configErrorf("labels", "cannot predict with an empty label set")
	}
	scores := make(map[string]float64)
	for _, feature := range f.Keys() {
		count := f[feature]
		byLabel, ok := m.weights[feature]
		if !ok || count == 0 {
			continue
		}
		for label, w := range byLabel {
			scores[label] += float64(count) * w
		}
	}
	return argmax(m.labels, scores), nil
}

// argmax picks the best label from sorted labels; missing scores count as 0.
func argmax(labels []string, scores map[string]float64) string {
	best := labels[0]
	bestScore := scores[best]
	for _, label := range labels[1:] {
		if s := scores[label]; s > bestScore {
			best, bestScore = label, s
		}
	}
	return best
}

// Labels returns a copy of the sorted label set.
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Weight returns the weight of (feature, label), 0 if absent.
func (m *Model) Weight(feature, label string) float64 {
	return m.weights[feature][label]
}

// NumFeatures returns the number of features carrying at least one weight.
func (m *Model) NumFeatures() int {
	return len(m.weights)
}

// Range calls fn for every stored weight, in no particular order, until fn
// returns false.
func (m *Model) Range(fn func(feature, label string, weight float64) bool) {
	for feature, byLabel := range m.weights {
		for label, w := range byLabel {
			if !fn(feature, label, w) {
				return
			}
		}
	}
}
