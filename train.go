package sentiment

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DefaultLikelihoodThreshold is the minimum log-likelihood a feature needs to
// be emitted into a serialized decision list. Zero keeps every scored
// feature.
const DefaultLikelihoodThreshold = 0.0

// TrainingConfig contains configuration for decision-list training.
type TrainingConfig struct {
	Mode                CountingMode
	HybridCap           float64 // per-document cap under HybridCount
	NGramOrders         []int   // feature orders; defaults to FeatureOrders
	LikelihoodThreshold float64 // emission cutoff for serialization
}

// DefaultTrainingConfig returns a default training configuration.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Mode:                FrequencyCount,
		HybridCap:           DefaultHybridCap,
		NGramOrders:         FeatureOrders,
		LikelihoodThreshold: DefaultLikelihoodThreshold,
	}
}

// A Trainer builds decision lists from labeled reviews. The trainer owns the
// feature table for the duration of one run; the finished list is independent
// of it.
type Trainer struct {
	config    TrainingConfig
	tokenizer *Tokenizer
}

// NewTrainer creates a trainer with the given configuration. Tokenizer
// options configure preprocessing and must match the options used later at
// inference time.
func NewTrainer(config TrainingConfig, opts ...TokenizerOptFunc) *Trainer {
	if len(config.NGramOrders) == 0 {
		config.NGramOrders = FeatureOrders
	}
	return &Trainer{
		config:    config,
		tokenizer: NewTokenizer(opts...),
	}
}

// Config returns the trainer's configuration.
func (t *Trainer) Config() TrainingConfig {
	return t.config
}

// documentGrams runs one review through the shared preprocessing pipeline:
// segment, filter, negation-scope, then n-gram per sentence.
func (t *Trainer) documentGrams(text string) []string {
	var grams []string
	for _, sent := range t.tokenizer.Sentences(text) {
		ScopeNegation(sent)
		for _, n := range t.config.NGramOrders {
			grams = append(grams, NGrams(sent, n)...)
		}
	}
	return grams
}

// Train folds every review into a fresh feature table under the configured
// counting strategy, scores each feature once, and returns the decisions
// sorted by descending confidence. Reviews are processed strictly one at a
// time; scoring never starts before the last review is counted.
func (t *Trainer) Train(reviews []Review) (DecisionList, error) {
	if len(reviews) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}

	table := NewFeatureTable()
	strategy := strategyForMode(t.config.Mode, t.config.HybridCap)
	for _, review := range reviews {
		strategy.CountDocument(table, t.documentGrams(review.Text), review.Label)
	}

	for _, d := range table.Decisions() {
		d.Score()
	}
	return SortDecisions(table), nil
}

// CrossValidationResult summarizes a k-fold run.
type CrossValidationResult struct {
	MeanAccuracy float64
	StdAccuracy  float64
	FoldResults  []Metrics
}

// CrossValidate performs k-fold cross-validation over a labeled corpus:
// contiguous folds, train on the remainder, classify the held-out fold, and
// aggregate fold accuracies.
func (t *Trainer) CrossValidate(reviews []Review, folds int) (CrossValidationResult, error) {
	if folds < 2 {
		return CrossValidationResult{}, fmt.Errorf("cross-validation requires at least 2 folds, got %d", folds)
	}
	if len(reviews) < folds {
		return CrossValidationResult{}, fmt.Errorf("cross-validation requires at least %d reviews, got %d", folds, len(reviews))
	}

	accuracies := make([]float64, 0, folds)
	results := make([]Metrics, 0, folds)
	size := len(reviews) / folds

	for fold := 0; fold < folds; fold++ {
		start := fold * size
		end := start + size
		if fold == folds-1 {
			end = len(reviews)
		}

		held := reviews[start:end]
		train := make([]Review, 0, len(reviews)-len(held))
		train = append(train, reviews[:start]...)
		train = append(train, reviews[end:]...)

		list, err := t.Train(train)
		if err != nil {
			return CrossValidationResult{}, fmt.Errorf("fold %d: %w", fold, err)
		}

		classifier := t.Classifier(list)
		gold, system := NewLabelSet(), NewLabelSet()
		for _, review := range held {
			gold.Add(review.ID, review.Label)
			system.Add(review.ID, classifier.Classify(review.Text))
		}

		_, metrics, err := Evaluate(gold, system)
		if err != nil {
			return CrossValidationResult{}, fmt.Errorf("fold %d: %w", fold, err)
		}
		results = append(results, metrics)
		accuracies = append(accuracies, metrics.Accuracy)
	}

	return CrossValidationResult{
		MeanAccuracy: stat.Mean(accuracies, nil),
		StdAccuracy:  stat.StdDev(accuracies, nil),
		FoldResults:  results,
	}, nil
}

// Classifier builds a classifier over list that shares this trainer's
// preprocessing configuration.
func (t *Trainer) Classifier(list DecisionList) *Classifier {
	return &Classifier{list: list, tokenizer: t.tokenizer, fallback: Negative}
}
