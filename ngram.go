package sentiment

import "strings"

// FeatureOrders are the n-gram orders that form features: unigrams and
// bigrams, always both.
var FeatureOrders = []int{1, 2}

// NGrams returns every contiguous window of n tokens, joined with a single
// space, in left-to-right order. Repeated windows are all yielded;
// deduplication, if any, belongs to the counting strategy.
func NGrams(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}
