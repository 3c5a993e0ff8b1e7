package analytics

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Stability scaling constants. The two call sites intentionally calibrate
// stability differently; the scale is always passed explicitly so neither
// value hides inside Summarize.
const (
	StabilityScaleDaily = 3.0  // daily insight pipeline
	StabilityScaleCell  = 10.0 // per-cell / segment summaries
)

// timeLayout is the wall-clock form used for peak/low/outlier timestamps.
const timeLayout = "15:04"

// Summarize reduces a bucket series to its daily statistics. Empty buckets
// (average 0) are excluded; if nothing remains the zero-value DailyStats is
// returned, which is a defined "no data" result rather than an error.
//
// stability = max(0, 100 - deviation*stabilityScale), with the population
// standard deviation (divide by N). Peak and low keep the first occurrence
// on ties. Outliers are buckets beyond two deviations from the mean.
func Summarize(buckets []models.Bucket, stabilityScale float64) models.DailyStats {
	active := make([]models.Bucket, 0, len(buckets))
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if b.Average > 0 {
			active = append(active, b)
			values = append(values, b.Average)
		}
	}
	if len(active) == 0 {
		return models.DailyStats{}
	}

	mean, _ := stats.Mean(values)
	deviation, _ := stats.StandardDeviationPopulation(values)

	peak, low := active[0], active[0]
	for _, b := range active[1:] {
		if b.Average > peak.Average {
			peak = b
		}
		if b.Average < low.Average {
			low = b
		}
	}

	stability := 100 - deviation*stabilityScale
	if stability < 0 {
		stability = 0
	}

	var outliers []models.Outlier
	for _, b := range active {
		if math.Abs(b.Average-mean) > 2*deviation {
			outliers = append(outliers, models.Outlier{
				Value: b.Average,
				Time:  b.Timestamp.Format(timeLayout),
			})
		}
	}

	return models.DailyStats{
		Average:   mean,
		Peak:      peak.Average,
		PeakTime:  peak.Timestamp.Format(timeLayout),
		Low:       low.Average,
		LowTime:   low.Timestamp.Format(timeLayout),
		Deviation: deviation,
		Stability: stability,
		Outliers:  outliers,
	}
}
