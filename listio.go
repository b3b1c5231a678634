package sentiment

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// featureColumnWidth left-justifies the feature name so scores line up in
// the serialized list.
const featureColumnWidth = 32

// WriteDecisionList serializes a sorted decision list: one line per feature
// at or above the threshold, fixed-width feature name, 4-decimal
// log-likelihood, trailing class digit. Counts are not persisted.
func WriteDecisionList(w io.Writer, list DecisionList, threshold float64) error {
	for _, d := range list {
		if d.LogLikelihood < threshold {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-*s %.4f %s\n", featureColumnWidth, d.Feature, d.LogLikelihood, d.Classification); err != nil {
			return err
		}
	}
	return nil
}

// WriteDecisionListFile writes a serialized decision list to path.
func WriteDecisionListFile(path string, list DecisionList, threshold float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating decision list file: %w", err)
	}
	defer file.Close()
	if err := WriteDecisionList(file, list, threshold); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadDecisionList reloads a serialized decision list for inference. The
// producer already sorted it, so line order is kept verbatim. The score field
// is parsed for validation but inference uses only feature and class.
func ReadDecisionList(path string) (DecisionList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening decision list: %w", err)
	}
	defer file.Close()
	return parseDecisionList(file, path)
}

func parseDecisionList(r io.Reader, name string) (DecisionList, error) {
	var list DecisionList
	scanner := newLineScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		// The feature may itself contain a space (bigrams), so anchor the
		// score and class fields from the right.
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: malformed decision line %q", name, lineNo, line)
		}
		score, err := strconv.ParseFloat(fields[len(fields)-2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad score field: %w", name, lineNo, err)
		}
		class, err := parseClass(fields[len(fields)-1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		list = append(list, &Decision{
			Feature:        strings.Join(fields[:len(fields)-2], " "),
			LogLikelihood:  score,
			Classification: class,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return list, nil
}
