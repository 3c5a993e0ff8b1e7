package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// RawIndicatorSamples carries the optional raw frustration, excitement and
// calm streams for a day. Any of the slices may be empty.
type RawIndicatorSamples struct {
	Frustration []models.Sample
	Excitement  []models.Sample
	Calm        []models.Sample
}

// HasData reports whether any stream carries at least one non-sentinel
// reading.
func (r RawIndicatorSamples) HasData() bool {
	for _, group := range [][]models.Sample{r.Frustration, r.Excitement, r.Calm} {
		for _, s := range group {
			if !s.Sentinel() {
				return true
			}
		}
	}
	return false
}

// DeriveIndicators computes the 0-100 indicator values. Two paths exist:
// raw per-sample averaging when any raw indicator data is present, else a
// heuristic scored from the flow/heart-rate statistics. Raw data always
// wins; the two paths are not numerically reconciled.
func DeriveIndicators(raw RawIndicatorSamples, flow, heart models.DailyStats) models.Indicators {
	if raw.HasData() {
		return models.Indicators{
			Frustration: sampleMean(raw.Frustration),
			Excitement:  sampleMean(raw.Excitement),
			Calm:        sampleMean(raw.Calm),
		}
	}
	return scoreFromStats(flow, heart)
}

// sampleMean averages non-sentinel sample values, clamped to [0,100].
func sampleMean(samples []models.Sample) float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !s.Sentinel() {
			values = append(values, s.Value)
		}
	}
	if len(values) == 0 {
		return 0
	}
	mean, _ := stats.Mean(values)
	return clamp(mean, 0, 100)
}

// scoreFromStats is the fallback heuristic: frustration rises with unstable
// flow and an elevated heart rate, excitement with high flow plus an active
// heart rate, calm with joint stability minus heart-rate pressure.
func scoreFromStats(flow, heart models.DailyStats) models.Indicators {
	frustration := (100-flow.Stability)*0.6 + max0(heart.Average-70)*0.8
	excitement := flow.Average*0.5 + max0(heart.Average-60)*0.7
	calm := (flow.Stability+heart.Stability)/2 - max0(heart.Average-75)*0.5

	return models.Indicators{
		Frustration: clamp(frustration, 0, 100),
		Excitement:  clamp(excitement, 0, 100),
		Calm:        clamp(calm, 0, 100),
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
