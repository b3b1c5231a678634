package sentiment

import (
	"math"
	"sort"
)

// Score converts accumulated counts into the decision's final class and
// confidence. Add-one smoothing applies only to whichever side is zero,
// keeping the ratio finite while leaving well-populated features untouched.
//
// The order matters: the signed log ratio is computed first, the class is
// taken from its sign (a ratio of exactly zero classifies negative), and only
// then is LogLikelihood overwritten with the magnitude. Call exactly once per
// decision, after all counting has completed.
func (d *Decision) Score() {
	p, n := d.PositiveCount, d.NegativeCount

	var signed float64
	switch {
	case p == 0:
		total := n + 2
		signed = math.Log2((1 / total) / ((n + 1) / total))
	case n == 0:
		total := p + 2
		signed = math.Log2(((p + 1) / total) / (1 / total))
	default:
		total := p + n
		signed = math.Log2((p / total) / (n / total))
	}

	if signed > 0 {
		d.Classification = Positive
	} else {
		d.Classification = Negative
	}
	d.LogLikelihood = math.Abs(signed)
}

// SortDecisions orders a table's scored decisions by descending
// log-likelihood. The sort is stable, so ties keep their arrival order; there
// is no secondary key.
func SortDecisions(table *FeatureTable) DecisionList {
	list := table.Decisions()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LogLikelihood > list[j].LogLikelihood
	})
	return list
}
