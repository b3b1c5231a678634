package sentiment

import (
	"math"
	"testing"
)

func TestScoreSmoothing(t *testing.T) {
	tests := []struct {
		positive float64
		negative float64
		expected float64
		class    Class
		desc     string
	}{
		{5, 0, math.Log2(6), Positive, "Zero negative side smoothed: |log2((6/7)/(1/7))|"},
		{0, 5, math.Log2(6), Negative, "Zero positive side smoothed symmetrically"},
		{3, 3, 0, Negative, "Equal counts score zero and classify negative"},
		{6, 2, math.Log2(3), Positive, "Well-populated feature unsmoothed"},
		{2, 6, math.Log2(3), Negative, "Negative-leaning unsmoothed feature"},
		{0, 0, 0, Negative, "Never-counted feature: |log2((1/2)/(1/2))|"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d := &Decision{Feature: "f", PositiveCount: tt.positive, NegativeCount: tt.negative}
			d.Score()
			if math.Abs(d.LogLikelihood-tt.expected) > 1e-12 {
				t.Errorf("LogLikelihood = %v, want %v", d.LogLikelihood, tt.expected)
			}
			if d.Classification != tt.class {
				t.Errorf("Classification = %v, want %v", d.Classification, tt.class)
			}
			if d.LogLikelihood < 0 {
				t.Error("LogLikelihood must be non-negative")
			}
		})
	}
}

func TestSortDecisionsDescending(t *testing.T) {
	table := NewFeatureTable()
	table.Decision("weak").PositiveCount = 3
	table.Decision("weak").NegativeCount = 2
	table.Decision("strong").PositiveCount = 9
	table.Decision("strong").NegativeCount = 1
	for _, d := range table.Decisions() {
		d.Score()
	}

	list := SortDecisions(table)
	if list[0].Feature != "strong" || list[1].Feature != "weak" {
		t.Errorf("sort order = [%s, %s], want [strong, weak]", list[0].Feature, list[1].Feature)
	}
}

func TestSortStabilityOnTies(t *testing.T) {
	table := NewFeatureTable()
	// Identical counts give identical likelihoods; arrival order must hold.
	for _, feature := range []string{"first", "second", "third"} {
		d := table.Decision(feature)
		d.PositiveCount = 4
		d.NegativeCount = 1
		d.Score()
	}

	list := SortDecisions(table)
	expected := []string{"first", "second", "third"}
	for i, feature := range expected {
		if list[i].Feature != feature {
			t.Errorf("tied decision %d = %q, want %q", i, list[i].Feature, feature)
		}
	}
}
