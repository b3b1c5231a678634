package sentiment

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLabeledReviews(t *testing.T) {
	input := "cv001 1 a great movie .\ncv002 0 what a waste .\n\n"
	reviews, err := parseLabeledReviews(strings.NewReader(input), "train.txt")
	if err != nil {
		t.Fatalf("parseLabeledReviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("parsed %d reviews, want 2", len(reviews))
	}
	if reviews[0].ID != "cv001" || reviews[0].Label != Positive || reviews[0].Text != "a great movie ." {
		t.Errorf("first review = %+v", reviews[0])
	}
	if reviews[1].Label != Negative {
		t.Errorf("second review label = %v, want %v", reviews[1].Label, Negative)
	}
}

func TestParseLabeledReviewsMalformed(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{"cv001 1\n", "Missing text field"},
		{"cv001 2 some text\n", "Class digit out of range"},
		{"cv001 pos some text\n", "Non-digit class field"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := parseLabeledReviews(strings.NewReader(tt.input), "train.txt")
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !strings.Contains(err.Error(), "train.txt:1") {
				t.Errorf("error %q does not identify file and line", err)
			}
		})
	}
}

func TestParseUnlabeledReviews(t *testing.T) {
	input := "cv101 __ this movie was fine .\n"
	reviews, err := parseUnlabeledReviews(strings.NewReader(input), "test.txt")
	if err != nil {
		t.Fatalf("parseUnlabeledReviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("parsed %d reviews, want 1", len(reviews))
	}
	if reviews[0].ID != "cv101" || reviews[0].Text != "this movie was fine ." {
		t.Errorf("review = %+v", reviews[0])
	}
}

func TestParseLabelSet(t *testing.T) {
	input := "cv001 1\ncv002 0\ncv003 1\n"
	set, err := parseLabelSet(strings.NewReader(input), "gold.txt")
	if err != nil {
		t.Fatalf("parseLabelSet: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("set has %d ids, want 3", set.Len())
	}
	// Insertion order preserved for deterministic evaluation output.
	if ids := set.IDs(); ids[0] != "cv001" || ids[2] != "cv003" {
		t.Errorf("ids = %v", ids)
	}
	if label, ok := set.Get("cv002"); !ok || label != Negative {
		t.Errorf("cv002 = (%v, %v), want (0, true)", label, ok)
	}
}

func TestWriteLabelSet(t *testing.T) {
	set := NewLabelSet()
	set.Add("cv001", Positive)
	set.Add("cv002", Negative)

	var buf bytes.Buffer
	if err := WriteLabelSet(&buf, set); err != nil {
		t.Fatalf("WriteLabelSet: %v", err)
	}
	if got := buf.String(); got != "cv001 1\ncv002 0\n" {
		t.Errorf("output = %q", got)
	}
}
