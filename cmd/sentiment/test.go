package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	sentiment "github.com/kvatsaas/PA3-Sentiment"
)

var testConfigPath string

func init() {
	testCmd.Flags().StringVar(&testConfigPath, "config", "", "TOML run configuration file (must match training)")
}

var testCmd = &cobra.Command{
	Use:   "test <decision-list-file> <test-file> <out-file>",
	Short: "Classify a test corpus with a trained decision list",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if usageExit(cmd, args, 3) {
			return nil
		}
		listFile, testFile, outFile := args[0], args[1], args[2]

		var config sentiment.Config
		if testConfigPath != "" {
			loaded, err := sentiment.LoadConfig(testConfigPath)
			if err != nil {
				return err
			}
			config = loaded
		}

		list, err := sentiment.ReadDecisionList(listFile)
		if err != nil {
			return err
		}
		reviews, err := sentiment.ReadUnlabeledReviews(testFile)
		if err != nil {
			return err
		}
		slog.Info("inference input loaded", "decisions", len(list), "reviews", len(reviews))

		classifier := sentiment.NewClassifier(list, config.TokenizerOptions()...)
		labels := sentiment.NewLabelSet()
		for _, review := range reviews {
			labels.Add(review.ID, classifier.Classify(review.Text))
		}

		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		if err := sentiment.WriteLabelSet(file, labels); err != nil {
			return fmt.Errorf("writing %s: %w", outFile, err)
		}
		slog.Info("labels written", "file", outFile, "documents", labels.Len())
		return nil
	},
}
