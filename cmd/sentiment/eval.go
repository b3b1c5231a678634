package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	sentiment "github.com/kvatsaas/PA3-Sentiment"
)

var evalCmd = &cobra.Command{
	Use:   "eval <gold-file> <system-file> <out-file>",
	Short: "Score system output against a gold standard",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if usageExit(cmd, args, 3) {
			return nil
		}
		goldFile, systemFile, outFile := args[0], args[1], args[2]

		gold, err := sentiment.ReadLabelSet(goldFile)
		if err != nil {
			return err
		}
		system, err := sentiment.ReadLabelSet(systemFile)
		if err != nil {
			return err
		}

		detail, metrics, err := sentiment.Evaluate(gold, system)
		if err != nil {
			return err
		}

		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		if err := sentiment.WriteEvaluation(file, detail, metrics); err != nil {
			return fmt.Errorf("writing %s: %w", outFile, err)
		}

		bold := color.New(color.Bold)
		bold.Fprintf(cmd.OutOrStdout(), "Accuracy:  %.4f\n", metrics.Accuracy)
		bold.Fprintf(cmd.OutOrStdout(), "Precision: %.4f\n", metrics.Precision)
		bold.Fprintf(cmd.OutOrStdout(), "Recall:    %.4f\n", metrics.Recall)
		return nil
	},
}
