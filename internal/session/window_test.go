package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
)

func eventAt(name string, value float64, ts time.Time) models.Event {
	return models.Event{
		SchemaVersion: "neuroflow.sample.v1",
		EventID:       fmt.Sprintf("%s-%d", name, ts.UnixNano()),
		Timestamp:     ts.Format(time.RFC3339Nano),
		Signal:        models.Signal{Name: name, Value: value},
	}
}

func TestWindow_EmptyHasNoInputs(t *testing.T) {
	w := NewWindow(10 * time.Second)
	if _, ok := w.Inputs(); ok {
		t.Error("empty window should yield no inputs")
	}
}

func TestWindow_RealtimeNeedsBothSignals(t *testing.T) {
	now := time.Now()
	w := NewWindow(10 * time.Second)
	w.Add(eventAt(generator.SignalFlow, 60, now))

	if _, ok := w.Inputs(); ok {
		t.Error("flow alone should not produce classifiable inputs")
	}

	w.Add(eventAt(generator.SignalHeartRate, 72, now))
	in, ok := w.Inputs()
	if !ok {
		t.Fatal("expected inputs with both flow and heart rate")
	}
	if in.Realtime == nil {
		t.Fatal("expected realtime channel")
	}
	if in.Realtime.FlowIntensity != 60 || in.Realtime.HeartRate != 72 {
		t.Errorf("realtime = %+v", in.Realtime)
	}
	if in.Indicators != nil {
		t.Error("no indicator readings were added; indicator channel should be nil")
	}
}

func TestWindow_IndicatorsPreferred(t *testing.T) {
	now := time.Now()
	w := NewWindow(10 * time.Second)
	w.Add(eventAt(generator.SignalFlow, 60, now))
	w.Add(eventAt(generator.SignalHeartRate, 72, now))
	w.Add(eventAt(generator.SignalFrustration, 70, now))
	w.Add(eventAt(generator.SignalFrustration, 80, now))

	in, ok := w.Inputs()
	if !ok {
		t.Fatal("expected inputs")
	}
	if in.Indicators == nil {
		t.Fatal("expected indicator channel when affect readings are present")
	}
	if in.Indicators.Frustration != 75 {
		t.Errorf("frustration = %v, want 75", in.Indicators.Frustration)
	}
	if in.Realtime == nil {
		t.Error("realtime channel should stay attached as fallback")
	}
}

func TestWindow_SentinelsIgnored(t *testing.T) {
	now := time.Now()
	w := NewWindow(10 * time.Second)
	w.Add(eventAt(generator.SignalFlow, 0, now))
	w.Add(eventAt(generator.SignalHeartRate, 0, now))

	if _, ok := w.Inputs(); ok {
		t.Error("sentinel readings must not make the window classifiable")
	}
}

func TestWindow_PrunesOldSamples(t *testing.T) {
	base := time.Now()
	w := NewWindow(5 * time.Second)
	w.Add(eventAt(generator.SignalFlow, 20, base))
	w.Add(eventAt(generator.SignalHeartRate, 72, base.Add(6*time.Second)))
	// This flow reading arrives 6s later; the first one falls outside the
	// window and must not drag the mean down.
	w.Add(eventAt(generator.SignalFlow, 80, base.Add(6*time.Second)))

	in, ok := w.Inputs()
	if !ok {
		t.Fatal("expected inputs")
	}
	if in.Realtime.FlowIntensity != 80 {
		t.Errorf("flow mean = %v, want 80 (stale reading pruned)", in.Realtime.FlowIntensity)
	}
}

func TestWindow_InvalidTimestampDropped(t *testing.T) {
	w := NewWindow(10 * time.Second)
	w.Add(models.Event{
		Timestamp: "not-a-time",
		Signal:    models.Signal{Name: generator.SignalFlow, Value: 50},
	})
	if _, ok := w.Inputs(); ok {
		t.Error("unparseable events must be dropped")
	}
}
