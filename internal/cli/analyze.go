package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuroflow/neuroflow-cli/internal/analytics"
	"github.com/neuroflow/neuroflow-cli/internal/emotion"
	"github.com/neuroflow/neuroflow-cli/internal/generator"
)

var (
	analyzeIn       string
	analyzeInterval int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a recorded sample file into daily insights",
	Long: `Reads an NDJSON sample recording, aggregates it into fixed-interval
buckets, and prints daily statistics, correlation, derived indicators,
key insights and the classified emotional state.

Examples:
  neuroflow analyze --in session.ndjson
  neuroflow analyze --in session.ndjson --interval 15`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeIn, "in", "", "Input NDJSON sample file (required)")
	analyzeCmd.Flags().IntVar(&analyzeInterval, "interval", 5, "Aggregation interval in minutes")
	analyzeCmd.MarkFlagRequired("in")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	streams, err := loadSampleStreams(analyzeIn)
	if err != nil {
		return err
	}

	flowBuckets, err := analytics.Aggregate(streams[generator.SignalFlow], analyzeInterval)
	if err != nil {
		return fmt.Errorf("aggregating flow: %w", err)
	}
	heartBuckets, err := analytics.Aggregate(streams[generator.SignalHeartRate], analyzeInterval)
	if err != nil {
		return fmt.Errorf("aggregating heart rate: %w", err)
	}

	raw := analytics.RawIndicatorSamples{
		Frustration: streams[generator.SignalFrustration],
		Excitement:  streams[generator.SignalExcitement],
		Calm:        streams[generator.SignalCalm],
	}

	insights, err := analytics.BuildDailyInsights(flowBuckets, heartBuckets, raw)
	if err != nil {
		return err
	}

	result, err := emotion.Classify(emotion.Inputs{
		Indicators: &insights.Indicators,
		Stats: &emotion.StatsBundle{
			Flow:        insights.FlowStats,
			Heart:       insights.HeartRateStats,
			Correlation: insights.Correlation,
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("📊 Daily Analysis (%d-minute buckets)\n\n", analyzeInterval)

	fs := insights.FlowStats
	hs := insights.HeartRateStats
	fmt.Printf("Flow intensity\n")
	fmt.Printf("  Average:    %.1f\n", fs.Average)
	fmt.Printf("  Peak:       %.1f at %s\n", fs.Peak, fs.PeakTime)
	fmt.Printf("  Low:        %.1f at %s\n", fs.Low, fs.LowTime)
	fmt.Printf("  Stability:  %5.1f  %s\n", fs.Stability, renderBar(fs.Stability/100, 20))
	if len(fs.Outliers) > 0 {
		fmt.Printf("  Outliers:   %d\n", len(fs.Outliers))
	}
	fmt.Printf("\nHeart rate\n")
	fmt.Printf("  Average:    %.1f bpm\n", hs.Average)
	fmt.Printf("  Peak:       %.1f at %s\n", hs.Peak, hs.PeakTime)
	fmt.Printf("  Low:        %.1f at %s\n", hs.Low, hs.LowTime)
	fmt.Printf("  Stability:  %5.1f  %s\n", hs.Stability, renderBar(hs.Stability/100, 20))
	if len(hs.Outliers) > 0 {
		fmt.Printf("  Outliers:   %d\n", len(hs.Outliers))
	}

	fmt.Printf("\nCorrelation:  %+.2f\n", insights.Correlation)

	ind := insights.Indicators
	fmt.Printf("\nIndicators\n")
	fmt.Printf("  Frustration: %5.1f  %s\n", ind.Frustration, renderBar(ind.Frustration/100, 20))
	fmt.Printf("  Excitement:  %5.1f  %s\n", ind.Excitement, renderBar(ind.Excitement/100, 20))
	fmt.Printf("  Calm:        %5.1f  %s\n", ind.Calm, renderBar(ind.Calm/100, 20))

	if len(insights.KeyInsights) > 0 {
		fmt.Printf("\nKey insights\n")
		for _, line := range insights.KeyInsights {
			fmt.Printf("  • %s\n", line)
		}
	}

	fmt.Printf("\nState: %s — %s\n", result.State, result.Description)
	return nil
}
