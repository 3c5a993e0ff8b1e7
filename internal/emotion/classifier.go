package emotion

import (
	"fmt"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Inputs is the discriminated input union for classification. Channels are
// checked in precedence order: Override, then Indicators, then Stats, then
// Realtime. At least one channel must be populated; an all-nil Inputs is a
// caller contract violation.
type Inputs struct {
	Override   *models.EmotionState
	Indicators *models.Indicators
	Stats      *StatsBundle
	Realtime   *RealtimeSignals
}

// StatsBundle is the daily-statistics channel.
type StatsBundle struct {
	Flow        models.DailyStats
	Heart       models.DailyStats
	Correlation float64
}

// RealtimeSignals is the instantaneous-value channel.
type RealtimeSignals struct {
	FlowIntensity float64
	HeartRate     float64
}

// Result is a classified state with a display description.
type Result struct {
	State       models.EmotionState
	Description string
}

// indicatorRule, statsRule and realtimeRule are ordered (predicate, result)
// pairs. Evaluation is strictly top-down and stops at the first match, so
// the order is load-bearing: later branches are unreachable once an earlier
// one fires, and some statistics branches can never fire when indicator
// gating upstream already matched. Do not reorder or merge branches.

type indicatorRule struct {
	when        func(models.Indicators) bool
	state       models.EmotionState
	description string
}

var indicatorRules = []indicatorRule{
	{func(i models.Indicators) bool { return i.Frustration > 60 },
		models.StateStressed, "Frustration is running high."},
	{func(i models.Indicators) bool { return i.Excitement > 60 },
		models.StateHappy, "Excitement is driving the session."},
	{func(i models.Indicators) bool { return i.Calm > 60 },
		models.StateCalm, "Calm indicators dominate."},
}

type statsRule struct {
	when        func(StatsBundle) bool
	state       models.EmotionState
	description string
}

var statsRules = []statsRule{
	{func(s StatsBundle) bool { return s.Correlation < -0.6 && s.Heart.Stability < 40 },
		models.StateAnxious, "Flow and heart rate pull strongly apart with an unsettled heart rate."},
	{func(s StatsBundle) bool { return s.Flow.Average < 35 && s.Heart.Average > 90 && s.Flow.Stability < 40 },
		models.StateStressed, "Low, unstable flow against an elevated heart rate."},
	{func(s StatsBundle) bool { return s.Flow.Average > 70 && s.Heart.Stability > 70 },
		models.StateFocused, "High flow with a steady heart rate."},
	{func(s StatsBundle) bool { return s.Flow.Average > 65 && s.Heart.Average < 85 },
		models.StateHappy, "Strong flow at a comfortable heart rate."},
	{func(s StatsBundle) bool { return s.Flow.Average < 30 && s.Heart.Average > 85 },
		models.StateSad, "Flow stayed low while the heart worked hard."},
	{func(s StatsBundle) bool {
		return s.Flow.Average < 45 && s.Heart.Average < 65 && s.Flow.Stability > 60 && s.Heart.Stability > 60
	}, models.StateCalm, "Gentle, stable signals across the board."},
	{func(s StatsBundle) bool { return s.Flow.Stability < 45 || s.Heart.Stability < 45 },
		models.StateSurprised, "Signals jumped around more than usual."},
	{func(s StatsBundle) bool { return true },
		models.StateNeutral, "Signals sit in the ordinary range."},
}

type realtimeRule struct {
	when        func(RealtimeSignals) bool
	state       models.EmotionState
	description string
}

var realtimeRules = []realtimeRule{
	{func(r RealtimeSignals) bool { return r.FlowIntensity < 35 && r.HeartRate > 100 },
		models.StateStressed, "Flow has dropped while the heart races."},
	{func(r RealtimeSignals) bool { return r.FlowIntensity > 70 && r.HeartRate <= 90 },
		models.StateFocused, "Deep flow at a controlled heart rate."},
	{func(r RealtimeSignals) bool { return r.FlowIntensity > 65 && r.HeartRate < 100 },
		models.StateHappy, "Flow is strong and the heart rate comfortable."},
	{func(r RealtimeSignals) bool { return r.FlowIntensity < 30 && r.HeartRate > 95 },
		models.StateSad, "Flow is low against a working heart rate."},
	{func(r RealtimeSignals) bool { return r.FlowIntensity < 45 && r.HeartRate < 65 },
		models.StateCalm, "Both signals rest low and easy."},
	{func(r RealtimeSignals) bool { return r.HeartRate > 110 },
		models.StateSurprised, "Heart rate spiked."},
	{func(r RealtimeSignals) bool { return true },
		models.StateNeutral, "Signals sit in the ordinary range."},
}

// Classify maps the inputs to one discrete emotional state. It is a pure
// function: identical inputs always yield the identical result, with no
// hidden state or randomness. An explicit override wins outright; indicator
// thresholds are checked next; the statistics tree only runs when no
// indicator crossed its threshold; the realtime tree is the last resort.
func Classify(in Inputs) (Result, error) {
	if in.Override != nil {
		if !in.Override.Valid() {
			return Result{}, fmt.Errorf("unknown state override %q", *in.Override)
		}
		return Result{State: *in.Override, Description: "State set explicitly."}, nil
	}

	if in.Indicators != nil {
		for _, r := range indicatorRules {
			if r.when(*in.Indicators) {
				return Result{State: r.state, Description: r.description}, nil
			}
		}
		// Below every threshold: fall through to the next channel.
	}

	if in.Stats != nil {
		for _, r := range statsRules {
			if r.when(*in.Stats) {
				return Result{State: r.state, Description: r.description}, nil
			}
		}
	}

	if in.Realtime != nil {
		for _, r := range realtimeRules {
			if r.when(*in.Realtime) {
				return Result{State: r.state, Description: r.description}, nil
			}
		}
	}

	return Result{}, fmt.Errorf("no classification input provided")
}
