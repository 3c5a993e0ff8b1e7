package models

import (
	"testing"
	"time"
)

func validFrame() Frame {
	return NewFrame("frame-1",
		Session{RunID: "run-1", Scenario: "baseline", Seed: 42},
		StateFocused, "Deep flow at a controlled heart rate.", 0.5,
		StateAppearance{PrimaryColor: "#51cf66", Size: 1.0, EyeShape: "narrow", MouthShape: "flat", Bounce: 2, Scene: "glow"})
}

func TestNewFrame(t *testing.T) {
	frame := validFrame()
	if frame.SchemaVersion != "neuroflow.frame.v1" {
		t.Errorf("schema version = %q", frame.SchemaVersion)
	}
	if frame.State != "focused" {
		t.Errorf("state = %q, want focused", frame.State)
	}
	if _, err := time.Parse(time.RFC3339Nano, frame.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", frame.Timestamp, err)
	}
	if err := frame.Validate(); err != nil {
		t.Errorf("valid frame failed validation: %v", err)
	}
}

func TestFrame_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Frame)
	}{
		{"wrong schema", func(f *Frame) { f.SchemaVersion = "v2" }},
		{"missing id", func(f *Frame) { f.FrameID = "" }},
		{"bad timestamp", func(f *Frame) { f.Timestamp = "noon" }},
		{"unknown state", func(f *Frame) { f.State = "giddy" }},
		{"progress below range", func(f *Frame) { f.Progress = -0.1 }},
		{"progress above range", func(f *Frame) { f.Progress = 1.1 }},
	}

	for _, test := range tests {
		frame := validFrame()
		test.mutate(&frame)
		if err := frame.Validate(); err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
	}
}

func TestEmotionState_Valid(t *testing.T) {
	for _, state := range AllStates {
		if !state.Valid() {
			t.Errorf("%s should be valid", state)
		}
	}
	if EmotionState("thrilled").Valid() {
		t.Error("unknown label should be invalid")
	}
}
