package sentiment

import "strings"

// A Classifier labels documents by scanning a sorted decision list for the
// first feature the document contains. It holds the list read-only for the
// duration of one inference run.
type Classifier struct {
	list      DecisionList
	tokenizer *Tokenizer
	fallback  Class
}

// NewClassifier creates a classifier over an already-sorted decision list.
// The reloaded list is trusted to be in descending-confidence order; the
// classifier never re-sorts it. Tokenizer options must match the options the
// list was trained with. When no feature matches, the classifier returns the
// negative class.
func NewClassifier(list DecisionList, opts ...TokenizerOptFunc) *Classifier {
	return &Classifier{
		list:      list,
		tokenizer: NewTokenizer(opts...),
		fallback:  Negative,
	}
}

// Preprocess reduces raw document text to a single space-padded string of
// filtered, negation-tagged tokens. The padding guarantees containment tests
// match whole tokens only: every token, first and last included, is bounded
// by spaces.
func (c *Classifier) Preprocess(text string) string {
	var b strings.Builder
	b.WriteByte(' ')
	for _, sent := range c.tokenizer.Sentences(text) {
		ScopeNegation(sent)
		for _, tok := range sent {
			b.WriteString(tok)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Classify returns the classification of the first decision whose feature
// occurs in the document, or the fallback class when the list is exhausted
// without a match. Linear scan with early exit.
func (c *Classifier) Classify(text string) Class {
	padded := c.Preprocess(text)
	for _, d := range c.list {
		if strings.Contains(padded, " "+d.Feature+" ") {
			return d.Classification
		}
	}
	return c.fallback
}
