package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Decision-list sentiment classifier",
	Long:  `Trains, applies, and evaluates a Yarowsky-style decision-list classifier for binary sentiment.`,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(evalCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// usageExit prints the command's usage and reports whether the argument
// count is wrong. A bad count is not an error: the command exits cleanly
// after showing usage.
func usageExit(cmd *cobra.Command, args []string, want int) bool {
	if len(args) == want {
		return false
	}
	_ = cmd.Usage()
	return true
}
