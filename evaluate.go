package sentiment

import (
	"fmt"
	"io"
)

// A LabelSet is an ordered mapping from document id to class. Insertion
// order is preserved so evaluation output is deterministic.
type LabelSet struct {
	ids    []string
	labels map[string]Class
}

// NewLabelSet creates an empty label set.
func NewLabelSet() *LabelSet {
	return &LabelSet{labels: make(map[string]Class)}
}

// Add records a label for an id. Re-adding an id overwrites its label but
// keeps its original position.
func (s *LabelSet) Add(id string, label Class) {
	if _, ok := s.labels[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.labels[id] = label
}

// Get returns the label for an id.
func (s *LabelSet) Get(id string) (Class, bool) {
	label, ok := s.labels[id]
	return label, ok
}

// Len returns the number of labeled ids.
func (s *LabelSet) Len() int {
	return len(s.ids)
}

// IDs returns the ids in insertion order.
func (s *LabelSet) IDs() []string {
	return s.ids
}

// Metrics holds the confusion counters and the derived evaluation metrics.
// Precision and recall report 0 when their denominator is zero.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	TrueNegatives  int

	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// A Comparison is one document's gold and system labels side by side.
type Comparison struct {
	ID     string
	Gold   Class
	System Class
}

// Evaluate compares system labels against gold labels over the same id set.
// The two sets are assumed co-indexed; an id present in one but not the
// other fails the whole evaluation rather than being skipped. Comparisons
// come back in gold insertion order.
func Evaluate(gold, system *LabelSet) ([]Comparison, Metrics, error) {
	if gold.Len() != system.Len() {
		return nil, Metrics{}, fmt.Errorf("gold has %d ids but system has %d", gold.Len(), system.Len())
	}

	var m Metrics
	detail := make([]Comparison, 0, gold.Len())
	for _, id := range gold.IDs() {
		goldLabel, _ := gold.Get(id)
		systemLabel, ok := system.Get(id)
		if !ok {
			return nil, Metrics{}, fmt.Errorf("id %q present in gold but missing from system output", id)
		}
		detail = append(detail, Comparison{ID: id, Gold: goldLabel, System: systemLabel})

		switch {
		case systemLabel == Positive && goldLabel == Positive:
			m.TruePositives++
		case systemLabel == Positive && goldLabel == Negative:
			m.FalsePositives++
		case systemLabel == Negative && goldLabel == Positive:
			m.FalseNegatives++
		default:
			m.TrueNegatives++
		}
	}

	total := m.TruePositives + m.FalsePositives + m.FalseNegatives + m.TrueNegatives
	if total > 0 {
		m.Accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(total)
	}
	if denom := m.TruePositives + m.FalsePositives; denom > 0 {
		m.Precision = float64(m.TruePositives) / float64(denom)
	}
	if denom := m.TruePositives + m.FalseNegatives; denom > 0 {
		m.Recall = float64(m.TruePositives) / float64(denom)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return detail, m, nil
}

// WriteEvaluation emits one detail line per id followed by the three summary
// lines, all metrics rounded to four decimals.
func WriteEvaluation(w io.Writer, detail []Comparison, m Metrics) error {
	for _, c := range detail {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", c.ID, c.Gold, c.System); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Accuracy: %.4f\nPrecision: %.4f\nRecall: %.4f\n",
		m.Accuracy, m.Precision, m.Recall)
	return err
}
