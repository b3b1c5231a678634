package sentiment

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// A Tokenizer splits raw text into per-sentence token sequences, discarding
// stop tokens. Training and inference must share one configuration: the stop
// set decides which tokens can ever become features.
type Tokenizer struct {
	stopTokens map[string]struct{}
	segmenter  Segmenter
	langCode   string
}

type TokenizerOptFunc func(*Tokenizer)

// UsingStopTokens replaces the default stop-token set.
func UsingStopTokens(stops []string) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.stopTokens = make(map[string]struct{}, len(stops))
		for _, s := range stops {
			tokenizer.stopTokens[s] = struct{}{}
		}
	}
}

// UsingSegmenter replaces the default punctuation segmenter.
func UsingSegmenter(s Segmenter) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.segmenter = s
	}
}

// UsingLanguageStopwords additionally strips the full stopword list for the
// given ISO 639-1 language code from each sentence before tokenization. Off
// by default; decision lists trained with this option only match documents
// preprocessed the same way.
func UsingLanguageStopwords(code string) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.langCode = code
	}
}

// DefaultStopTokens is the fixed stop-token set: high-frequency function
// words plus bare punctuation marks.
var DefaultStopTokens = []string{
	"a", "an", "the", "to", "of", "and",
	".", ",", "'", `"`, ";", ":", "-", "(", ")", "&",
}

// NewTokenizer builds a tokenizer with the default stop set and segmenter,
// then applies any options.
func NewTokenizer(opts ...TokenizerOptFunc) *Tokenizer {
	tokenizer := &Tokenizer{segmenter: punctSegmenter{}}
	UsingStopTokens(DefaultStopTokens)(tokenizer)

	for _, applyOpt := range opts {
		applyOpt(tokenizer)
	}

	return tokenizer
}

// Sentences segments text and returns each sentence as its filtered token
// sequence. Sentences whose tokens are all filtered out come back empty
// rather than being dropped, so sentence boundaries stay visible to callers.
func (t *Tokenizer) Sentences(text string) [][]string {
	raw := t.segmenter.Segment(text)
	sents := make([][]string, 0, len(raw))
	for _, sent := range raw {
		if t.langCode != "" {
			sent = stopwords.CleanString(sent, t.langCode, false)
		}
		var toks []string
		for _, tok := range strings.Fields(sent) {
			if _, stop := t.stopTokens[tok]; stop {
				continue
			}
			toks = append(toks, tok)
		}
		sents = append(sents, toks)
	}
	return sents
}
