package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// BuildDailyInsights runs the full daily pipeline over two bucket series:
// per-signal summaries, the cross-signal correlation, the derived indicators
// and the generated key-insight strings. Both series must have been
// aggregated with the same interval over the same day; they are aligned on
// the union of their bucket timestamps before correlating, so one stream
// covering an interval the other misses never rejects the recording.
func BuildDailyInsights(flow, heart []models.Bucket, raw RawIndicatorSamples) (models.DailyInsights, error) {
	flowStats := Summarize(flow, StabilityScaleDaily)
	heartStats := Summarize(heart, StabilityScaleDaily)

	flowAligned, heartAligned := alignBuckets(flow, heart)
	correlation, err := Correlation(BucketAverages(flowAligned), BucketAverages(heartAligned))
	if err != nil {
		return models.DailyInsights{}, fmt.Errorf("correlating flow and heart rate: %w", err)
	}

	indicators := DeriveIndicators(raw, flowStats, heartStats)

	return models.DailyInsights{
		FlowStats:      flowStats,
		HeartRateStats: heartStats,
		Correlation:    correlation,
		Indicators:     indicators,
		KeyInsights:    keyInsights(flowStats, heartStats, correlation, indicators),
	}, nil
}

// alignBuckets places both series on the union of their bucket timestamps.
// Streams recorded together are aggregated independently, so one can reach
// an interval the other misses near the stream edges or across a dropout;
// the missing side gets an empty bucket at that position.
func alignBuckets(a, b []models.Bucket) ([]models.Bucket, []models.Bucket) {
	union := make(map[time.Time]struct{}, len(a)+len(b))
	aAt := make(map[time.Time]models.Bucket, len(a))
	bAt := make(map[time.Time]models.Bucket, len(b))
	for _, bk := range a {
		union[bk.Timestamp] = struct{}{}
		aAt[bk.Timestamp] = bk
	}
	for _, bk := range b {
		union[bk.Timestamp] = struct{}{}
		bAt[bk.Timestamp] = bk
	}

	times := make([]time.Time, 0, len(union))
	for t := range union {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	x := make([]models.Bucket, len(times))
	y := make([]models.Bucket, len(times))
	for i, t := range times {
		ab, ok := aAt[t]
		if !ok {
			ab = models.Bucket{Timestamp: t}
		}
		bb, ok := bAt[t]
		if !ok {
			bb = models.Bucket{Timestamp: t}
		}
		x[i] = ab
		y[i] = bb
	}
	return x, y
}

// keyInsights generates the ordered natural-language summary lines. Plain
// strings for direct display; no structured format.
func keyInsights(flow, heart models.DailyStats, correlation float64, ind models.Indicators) []string {
	var lines []string

	if flow.Peak > 0 {
		lines = append(lines, fmt.Sprintf("Flow intensity peaked at %.0f around %s.", flow.Peak, flow.PeakTime))
	}
	if heart.Peak > 0 {
		lines = append(lines, fmt.Sprintf("Heart rate topped out at %.0f bpm around %s.", heart.Peak, heart.PeakTime))
	}

	if flow.Average > 0 && heart.Average > 0 {
		lines = append(lines, correlationInsight(correlation))
	}

	switch {
	case flow.Stability > 70:
		lines = append(lines, "Flow held steady through the day.")
	case flow.Stability > 0 && flow.Stability < 40:
		lines = append(lines, "Flow swung widely; sessions were volatile.")
	}

	if n := len(flow.Outliers) + len(heart.Outliers); n > 0 {
		lines = append(lines, fmt.Sprintf("%d reading(s) stood more than two deviations from the mean.", n))
	}

	switch {
	case ind.Frustration > 60:
		lines = append(lines, "Frustration ran high; consider shorter sessions.")
	case ind.Excitement > 60:
		lines = append(lines, "Excitement dominated the day.")
	case ind.Calm > 60:
		lines = append(lines, "A calm, settled day overall.")
	}

	return lines
}

func correlationInsight(r float64) string {
	strength := "no clear"
	switch abs := math.Abs(r); {
	case abs > 0.7:
		strength = "a strong"
	case abs > 0.4:
		strength = "a moderate"
	case abs > 0.2:
		strength = "a weak"
	}
	direction := "positive"
	if r < 0 {
		direction = "inverse"
	}
	if strength == "no clear" {
		return "Flow and heart rate showed no clear relationship."
	}
	return fmt.Sprintf("Flow and heart rate showed %s %s relationship (r=%.2f).", strength, direction, r)
}
