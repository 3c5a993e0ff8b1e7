package emotion

import (
	"testing"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

func TestClassify_OverrideWins(t *testing.T) {
	state := models.StateSad
	in := Inputs{
		Override:   &state,
		Indicators: &models.Indicators{Frustration: 90},
		Realtime:   &RealtimeSignals{FlowIntensity: 80, HeartRate: 70},
	}

	got, err := Classify(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != models.StateSad {
		t.Errorf("state = %s, want sad (override beats everything)", got.State)
	}
}

func TestClassify_InvalidOverride(t *testing.T) {
	state := models.EmotionState("ecstatic")
	if _, err := Classify(Inputs{Override: &state}); err == nil {
		t.Error("expected error for unknown override state")
	}
}

func TestClassify_IndicatorOrder(t *testing.T) {
	tests := []struct {
		name string
		ind  models.Indicators
		want models.EmotionState
	}{
		{"frustration beats excitement", models.Indicators{Frustration: 70, Excitement: 90}, models.StateStressed},
		{"frustration beats calm", models.Indicators{Frustration: 61, Calm: 99}, models.StateStressed},
		{"excitement beats calm", models.Indicators{Excitement: 65, Calm: 80}, models.StateHappy},
		{"calm alone", models.Indicators{Calm: 61}, models.StateCalm},
		{"exactly 60 does not trigger", models.Indicators{Frustration: 60, Excitement: 60, Calm: 61}, models.StateCalm},
	}

	for _, test := range tests {
		got, err := Classify(Inputs{Indicators: &test.ind})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if got.State != test.want {
			t.Errorf("%s: state = %s, want %s", test.name, got.State, test.want)
		}
	}
}

func TestClassify_IndicatorsBelowThresholdFallThrough(t *testing.T) {
	in := Inputs{
		Indicators: &models.Indicators{Frustration: 10, Excitement: 10, Calm: 10},
		Realtime:   &RealtimeSignals{FlowIntensity: 80, HeartRate: 70},
	}
	got, err := Classify(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != models.StateFocused {
		t.Errorf("state = %s, want focused from realtime fallback", got.State)
	}
}

func TestClassify_StatsTree(t *testing.T) {
	tests := []struct {
		name  string
		stats StatsBundle
		want  models.EmotionState
	}{
		{
			"anxious on strong inverse correlation",
			StatsBundle{
				Flow:        models.DailyStats{Average: 75, Stability: 80},
				Heart:       models.DailyStats{Average: 80, Stability: 30},
				Correlation: -0.7,
			},
			models.StateAnxious,
		},
		{
			"stressed on low unstable flow with high heart",
			StatsBundle{
				Flow:  models.DailyStats{Average: 30, Stability: 35},
				Heart: models.DailyStats{Average: 95, Stability: 60},
			},
			models.StateStressed,
		},
		{
			"focused on high flow steady heart",
			StatsBundle{
				Flow:  models.DailyStats{Average: 75, Stability: 80},
				Heart: models.DailyStats{Average: 70, Stability: 75},
			},
			models.StateFocused,
		},
		{
			"happy on strong flow comfortable heart",
			StatsBundle{
				Flow:  models.DailyStats{Average: 68, Stability: 80},
				Heart: models.DailyStats{Average: 80, Stability: 65},
			},
			models.StateHappy,
		},
		{
			"sad on low flow hard-working heart",
			StatsBundle{
				Flow:  models.DailyStats{Average: 25, Stability: 60},
				Heart: models.DailyStats{Average: 90, Stability: 60},
			},
			models.StateSad,
		},
		{
			"calm on gentle stable signals",
			StatsBundle{
				Flow:  models.DailyStats{Average: 40, Stability: 70},
				Heart: models.DailyStats{Average: 60, Stability: 70},
			},
			models.StateCalm,
		},
		{
			"surprised on low stability",
			StatsBundle{
				Flow:  models.DailyStats{Average: 50, Stability: 40},
				Heart: models.DailyStats{Average: 75, Stability: 80},
			},
			models.StateSurprised,
		},
		{
			"neutral default",
			StatsBundle{
				Flow:  models.DailyStats{Average: 55, Stability: 60},
				Heart: models.DailyStats{Average: 75, Stability: 60},
			},
			models.StateNeutral,
		},
	}

	for _, test := range tests {
		got, err := Classify(Inputs{Stats: &test.stats})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if got.State != test.want {
			t.Errorf("%s: state = %s, want %s", test.name, got.State, test.want)
		}
		if got.Description == "" {
			t.Errorf("%s: empty description", test.name)
		}
	}
}

func TestClassify_StatsBeatsRealtime(t *testing.T) {
	in := Inputs{
		Stats: &StatsBundle{
			Flow:  models.DailyStats{Average: 75, Stability: 80},
			Heart: models.DailyStats{Average: 70, Stability: 75},
		},
		Realtime: &RealtimeSignals{FlowIntensity: 20, HeartRate: 120},
	}
	got, err := Classify(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != models.StateFocused {
		t.Errorf("state = %s, want focused (stats channel outranks realtime)", got.State)
	}
}

func TestClassify_RealtimeTree(t *testing.T) {
	tests := []struct {
		name string
		rt   RealtimeSignals
		want models.EmotionState
	}{
		{"stressed", RealtimeSignals{FlowIntensity: 30, HeartRate: 105}, models.StateStressed},
		{"focused", RealtimeSignals{FlowIntensity: 75, HeartRate: 85}, models.StateFocused},
		{"happy above focus heart ceiling", RealtimeSignals{FlowIntensity: 72, HeartRate: 95}, models.StateHappy},
		{"sad", RealtimeSignals{FlowIntensity: 25, HeartRate: 98}, models.StateSad},
		{"calm", RealtimeSignals{FlowIntensity: 40, HeartRate: 60}, models.StateCalm},
		{"surprised on heart spike", RealtimeSignals{FlowIntensity: 50, HeartRate: 115}, models.StateSurprised},
		{"neutral default", RealtimeSignals{FlowIntensity: 50, HeartRate: 80}, models.StateNeutral},
	}

	for _, test := range tests {
		got, err := Classify(Inputs{Realtime: &test.rt})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if got.State != test.want {
			t.Errorf("%s: state = %s, want %s", test.name, got.State, test.want)
		}
	}
}

func TestClassify_NoInput(t *testing.T) {
	if _, err := Classify(Inputs{}); err == nil {
		t.Error("expected error for empty inputs")
	}
}

func TestClassify_Pure(t *testing.T) {
	in := Inputs{
		Stats: &StatsBundle{
			Flow:  models.DailyStats{Average: 68, Stability: 80},
			Heart: models.DailyStats{Average: 80, Stability: 65},
		},
	}

	first, err := Classify(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Classify(in)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if again != first {
			t.Fatalf("run %d: result changed: %+v vs %+v", i, again, first)
		}
	}
}
