package sentiment

// A FeatureTable maps feature strings to their decisions, remembering the
// order in which features were first seen. Arrival order is the tiebreaker
// when decisions are later sorted, so it must not depend on map traversal.
type FeatureTable struct {
	decisions map[string]*Decision
	arrival   []string
}

// NewFeatureTable creates an empty feature table.
func NewFeatureTable() *FeatureTable {
	return &FeatureTable{decisions: make(map[string]*Decision)}
}

// Decision returns the decision for a feature, creating it with zero counts
// on first encounter.
func (t *FeatureTable) Decision(feature string) *Decision {
	d, ok := t.decisions[feature]
	if !ok {
		d = &Decision{Feature: feature}
		t.decisions[feature] = d
		t.arrival = append(t.arrival, feature)
	}
	return d
}

// Len returns the number of distinct features seen.
func (t *FeatureTable) Len() int {
	return len(t.decisions)
}

// Decisions returns all decisions in arrival order.
func (t *FeatureTable) Decisions() DecisionList {
	list := make(DecisionList, 0, len(t.arrival))
	for _, feature := range t.arrival {
		list = append(list, t.decisions[feature])
	}
	return list
}

func (d *Decision) addCount(label Class, delta float64) {
	if label == Positive {
		d.PositiveCount += delta
	} else {
		d.NegativeCount += delta
	}
}

// A CountingStrategy folds one document's n-gram occurrences into the shared
// feature table under that document's known class. Exactly one strategy
// governs a training run.
type CountingStrategy interface {
	CountDocument(table *FeatureTable, grams []string, label Class)
}

// FrequencyCounting increments a feature's count for every occurrence,
// repeats included.
type FrequencyCounting struct{}

func (FrequencyCounting) CountDocument(table *FeatureTable, grams []string, label Class) {
	for _, g := range grams {
		table.Decision(g).addCount(label, 1)
	}
}

// PresenceCounting increments each distinct feature once per document, so
// counts reflect how many documents contain the feature.
type PresenceCounting struct{}

func (PresenceCounting) CountDocument(table *FeatureTable, grams []string, label Class) {
	seen := make(map[string]struct{}, len(grams))
	for _, g := range grams {
		seen[g] = struct{}{}
	}
	// Merge after the whole document, first-arrival order for new features.
	for _, g := range grams {
		if _, pending := seen[g]; pending {
			table.Decision(g).addCount(label, 1)
			delete(seen, g)
		}
	}
}

// HybridCounting counts occurrences like FrequencyCounting but caps each
// feature's per-document contribution. Sub-counts accumulate in a
// document-local table and merge into the shared table by summation once the
// document is done.
type HybridCounting struct {
	Cap float64
}

// DefaultHybridCap bounds a feature's per-document contribution under
// HybridCounting.
const DefaultHybridCap = 2

func (h HybridCounting) CountDocument(table *FeatureTable, grams []string, label Class) {
	limit := h.Cap
	if limit <= 0 {
		limit = DefaultHybridCap
	}
	local := make(map[string]float64, len(grams))
	for _, g := range grams {
		if local[g] < limit {
			local[g]++
		}
	}
	for _, g := range grams {
		if count, pending := local[g]; pending {
			table.Decision(g).addCount(label, count)
			delete(local, g)
		}
	}
}

// strategyForMode resolves a run's counting strategy from its configuration.
func strategyForMode(mode CountingMode, hybridCap float64) CountingStrategy {
	switch mode {
	case PresenceCount:
		return PresenceCounting{}
	case HybridCount:
		return HybridCounting{Cap: hybridCap}
	default:
		return FrequencyCounting{}
	}
}
