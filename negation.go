package sentiment

import "strings"

// NegationPrefix marks tokens that fall under a negation scope.
const NegationPrefix = "NOT_"

// ScopeNegation rewrites one sentence's token sequence in place: the first
// token equal to "not" or ending in "n't" opens a negation region, and every
// token strictly after it receives the NOT_ prefix. The region runs to the
// end of the sentence; later cues in the same sentence neither re-trigger
// nor un-trigger it. The slice is returned for convenience.
func ScopeNegation(tokens []string) []string {
	for i, tok := range tokens {
		if tok == "not" || strings.HasSuffix(tok, "n't") {
			for j := i + 1; j < len(tokens); j++ {
				tokens[j] = NegationPrefix + tokens[j]
			}
			break
		}
	}
	return tokens
}
