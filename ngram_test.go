package sentiment

import (
	"reflect"
	"testing"
)

func TestNGrams(t *testing.T) {
	tests := []struct {
		tokens   []string
		n        int
		expected []string
		desc     string
	}{
		{[]string{"a", "b", "c"}, 1, []string{"a", "b", "c"}, "Unigrams in order"},
		{[]string{"a", "b", "c"}, 2, []string{"a b", "b c"}, "Bigrams joined with one space"},
		{[]string{"solo"}, 2, nil, "Too few tokens for bigrams"},
		{[]string{"solo"}, 1, []string{"solo"}, "Single token unigram"},
		{nil, 1, nil, "Empty sequence"},
		{[]string{"a", "a", "a"}, 2, []string{"a a", "a a"}, "Repeated windows all yielded"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := NGrams(tt.tokens, tt.n)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NGrams(%v, %d) = %v, want %v", tt.tokens, tt.n, got, tt.expected)
			}
		})
	}
}

func TestNGramCompleteness(t *testing.T) {
	tokens := []string{"one", "two", "three", "four", "five"}
	if got := len(NGrams(tokens, 1)); got != len(tokens) {
		t.Errorf("unigram count = %d, want %d", got, len(tokens))
	}
	if got := len(NGrams(tokens, 2)); got != len(tokens)-1 {
		t.Errorf("bigram count = %d, want %d", got, len(tokens)-1)
	}
}
