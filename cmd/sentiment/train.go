package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	sentiment "github.com/kvatsaas/PA3-Sentiment"
)

var (
	trainConfigPath string
	trainMode       string
	trainHybridCap  float64
)

func init() {
	trainCmd.Flags().StringVar(&trainConfigPath, "config", "", "TOML run configuration file")
	trainCmd.Flags().StringVar(&trainMode, "mode", "", "counting mode (frequency|presence|hybrid)")
	trainCmd.Flags().Float64Var(&trainHybridCap, "cap", 0, "per-document count cap for hybrid mode")
}

var trainCmd = &cobra.Command{
	Use:   "train <training-file> <out-file>",
	Short: "Train a decision list from a labeled corpus",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if usageExit(cmd, args, 2) {
			return nil
		}
		trainingFile, outFile := args[0], args[1]

		var config sentiment.Config
		if trainConfigPath != "" {
			loaded, err := sentiment.LoadConfig(trainConfigPath)
			if err != nil {
				return err
			}
			config = loaded
		}
		if trainMode != "" {
			config.Mode = trainMode
		}
		if trainHybridCap > 0 {
			config.HybridCap = trainHybridCap
		}

		training, err := config.TrainingConfig()
		if err != nil {
			return err
		}

		reviews, err := sentiment.ReadLabeledReviews(trainingFile)
		if err != nil {
			return err
		}
		slog.Info("corpus loaded", "file", trainingFile, "reviews", len(reviews))

		trainer := sentiment.NewTrainer(training, config.TokenizerOptions()...)
		list, err := trainer.Train(reviews)
		if err != nil {
			return err
		}
		slog.Info("training complete", "mode", training.Mode, "features", len(list))

		if err := sentiment.WriteDecisionListFile(outFile, list, training.LikelihoodThreshold); err != nil {
			return err
		}
		slog.Info("decision list written", "file", outFile)
		return nil
	},
}
