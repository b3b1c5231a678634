package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Review lines can run to whole documents; size the scanner accordingly.
const maxLineBytes = 1 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

func parseClass(field string) (Class, error) {
	switch field {
	case "0":
		return Negative, nil
	case "1":
		return Positive, nil
	}
	return Negative, fmt.Errorf("class field must be 0 or 1, got %q", field)
}

// ReadLabeledReviews reads a training corpus: one review per line in the form
// "<id> <class> <text>". A malformed line aborts the read with an error
// naming the file and line.
func ReadLabeledReviews(path string) ([]Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening training corpus: %w", err)
	}
	defer file.Close()
	return parseLabeledReviews(file, path)
}

func parseLabeledReviews(r io.Reader, name string) ([]Review, error) {
	var reviews []Review
	scanner := newLineScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: malformed review line %q", name, lineNo, line)
		}
		label, err := parseClass(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		reviews = append(reviews, Review{ID: fields[0], Label: label, Text: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return reviews, nil
}

// ReadUnlabeledReviews reads a test corpus: one review per line in the form
// "<id> <_> <text>". The middle field holds the label column's position; its
// content is ignored.
func ReadUnlabeledReviews(path string) ([]Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening test corpus: %w", err)
	}
	defer file.Close()
	return parseUnlabeledReviews(file, path)
}

func parseUnlabeledReviews(r io.Reader, name string) ([]Review, error) {
	var reviews []Review
	scanner := newLineScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: malformed review line %q", name, lineNo, line)
		}
		reviews = append(reviews, Review{ID: fields[0], Text: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return reviews, nil
}

// ReadLabelSet reads a label file: one "<id> <class>" line per document, in
// file order.
func ReadLabelSet(path string) (*LabelSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening label file: %w", err)
	}
	defer file.Close()
	return parseLabelSet(file, path)
}

func parseLabelSet(r io.Reader, name string) (*LabelSet, error) {
	set := NewLabelSet()
	scanner := newLineScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: malformed label line %q", name, lineNo, line)
		}
		label, err := parseClass(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		set.Add(fields[0], label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return set, nil
}

// WriteLabelSet writes one "<id> <class>" line per document in insertion
// order.
func WriteLabelSet(w io.Writer, set *LabelSet) error {
	for _, id := range set.IDs() {
		label, _ := set.Get(id)
		if _, err := fmt.Fprintf(w, "%s %s\n", id, label); err != nil {
			return err
		}
	}
	return nil
}
