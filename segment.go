package sentiment

import (
	"strings"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits raw document text into sentences.
type Segmenter interface {
	Segment(text string) []string
}

// punctSegmenter is the default segmenter: it splits after sentence-final
// punctuation (".", "?", "!"), leaving the punctuation attached to the
// sentence it ends. Trailing text without final punctuation forms a sentence
// of its own.
type punctSegmenter struct{}

func (punctSegmenter) Segment(text string) []string {
	var sents []string
	var b strings.Builder
	flush := func() {
		if s := b.String(); strings.TrimSpace(s) != "" {
			sents = append(sents, s)
		}
		b.Reset()
	}
	for _, r := range text {
		if b.Len() == 0 && unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			flush()
		}
	}
	flush()
	return sents
}

// punktSegmenter adapts the trained Punkt sentence tokenizer. It is an
// alternative for raw prose where abbreviations make naive punctuation
// splitting unreliable; the classifier defaults to punctSegmenter.
type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter creates a Segmenter backed by the English Punkt model.
func NewPunktSegmenter() (Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}

func (p *punktSegmenter) Segment(text string) []string {
	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if strings.TrimSpace(s.Text) != "" {
			sents = append(sents, s.Text)
		}
	}
	return sents
}
