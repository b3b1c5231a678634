package sentiment

// A Class is a binary sentiment label.
type Class int

const (
	// Negative is the negative sentiment class, written as 0 on the wire.
	Negative Class = 0
	// Positive is the positive sentiment class, written as 1 on the wire.
	Positive Class = 1
)

// String returns the wire digit for the class.
func (c Class) String() string {
	if c == Positive {
		return "1"
	}
	return "0"
}

// A Decision pairs a lexical feature with accumulated class evidence and,
// once scored, a predicted class and a confidence magnitude.
type Decision struct {
	Feature string // A unigram or space-joined bigram, NOT_ prefix included.

	// Evidence counters, meaningful only during training. Units depend on
	// the counting strategy in effect for the run.
	PositiveCount float64
	NegativeCount float64

	// LogLikelihood is the magnitude of the smoothed base-2 log ratio of
	// positive to negative evidence. Valid only after Score.
	LogLikelihood float64

	// Classification is the class predicted by the sign of the log ratio
	// during training, or the class reloaded from a serialized list.
	Classification Class
}

// A DecisionList is a sequence of decisions ordered by descending
// log-likelihood. The stored order is both the serialization order and the
// classifier's first-match priority.
type DecisionList []*Decision

// A Review is one document: an identifier, its raw text, and (for labeled
// corpora) its gold class. Reviews are transient; training and inference
// reduce them to token sequences and discard them.
type Review struct {
	ID    string
	Text  string
	Label Class
}

// A CountingMode selects how n-gram occurrences fold into feature counts.
// The mode is fixed for an entire training run.
type CountingMode int

const (
	// FrequencyCount counts every occurrence in every document.
	FrequencyCount CountingMode = iota
	// PresenceCount counts each distinct feature at most once per document.
	PresenceCount
	// HybridCount counts occurrences per document up to a fixed cap.
	HybridCount
)

// String returns the mode name used by configuration files and CLI flags.
func (m CountingMode) String() string {
	switch m {
	case PresenceCount:
		return "presence"
	case HybridCount:
		return "hybrid"
	default:
		return "frequency"
	}
}
