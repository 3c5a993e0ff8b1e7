package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "neuroflow",
	Short: "NeuroFlow CLI - flow and heart-rate analytics for local development",
	Long: `NeuroFlow CLI analyzes flow-intensity and heart-rate streams into
daily statistics, cross-signal correlation and a discrete emotional state,
and can mock full sessions for SDK development.

It eliminates dependency on a physical headset during development,
providing repeatable scenarios for QA and demos.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(segmentCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
