package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	session := Session{RunID: "run-1", Scenario: "baseline", Seed: 42}
	signal := Signal{Name: "eeg.flow_intensity", Unit: "score", Value: 61.5, Quality: 0.97}

	event := NewEvent("evt-1", session, signal, 7)

	if event.SchemaVersion != "neuroflow.sample.v1" {
		t.Errorf("schema version = %q", event.SchemaVersion)
	}
	if event.Meta.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", event.Meta.Sequence)
	}
	if _, err := time.Parse(time.RFC3339Nano, event.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", event.Timestamp, err)
	}
}

func TestEvent_Sample(t *testing.T) {
	event := Event{
		Timestamp: "2026-03-14T09:05:30Z",
		Signal:    Signal{Name: "ppg.hr_bpm", Value: 72},
	}

	sample, err := event.Sample()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Value != 72 {
		t.Errorf("value = %v, want 72", sample.Value)
	}
	if sample.Timestamp.Hour() != 9 || sample.Timestamp.Minute() != 5 {
		t.Errorf("timestamp = %v", sample.Timestamp)
	}
	if sample.Sentinel() {
		t.Error("72 is a real reading, not a sentinel")
	}
}

func TestEvent_SampleInvalidTimestamp(t *testing.T) {
	event := Event{Timestamp: "yesterday"}
	if _, err := event.Sample(); err == nil {
		t.Error("expected validation error for bad timestamp")
	}
}

func TestSample_Sentinel(t *testing.T) {
	if !(Sample{Value: 0}).Sentinel() {
		t.Error("zero value must be the sentinel")
	}
	if (Sample{Value: 0.001}).Sentinel() {
		t.Error("non-zero value must not be the sentinel")
	}
}

func TestBucket_Empty(t *testing.T) {
	if !(Bucket{}).Empty() {
		t.Error("zero bucket must be empty")
	}
	if (Bucket{Average: 40}).Empty() {
		t.Error("bucket with an average must not be empty")
	}
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	event := NewEvent("evt-2",
		Session{RunID: "run-2", Scenario: "deep_focus", Seed: 1},
		Signal{Name: "affect.calm", Unit: "score", Value: 58, Quality: 0.95}, 3)

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != event {
		t.Errorf("round trip changed the event: %+v vs %+v", decoded, event)
	}
}
