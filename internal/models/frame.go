package models

import "time"

// Frame is the rendered-state envelope broadcast to clients: the classified
// emotional state plus the fully-resolved (possibly mid-transition)
// appearance for this instant.
type Frame struct {
	SchemaVersion string          `json:"schema_version"`
	FrameID       string          `json:"frame_id"`
	Timestamp     string          `json:"ts"`
	Session       Session         `json:"session"`
	State         string          `json:"state"`
	Description   string          `json:"description"`
	Progress      float64         `json:"progress"`
	Appearance    StateAppearance `json:"appearance"`
}

// NewFrame creates a Frame with the current timestamp.
func NewFrame(frameID string, session Session, state EmotionState, description string, progress float64, appearance StateAppearance) Frame {
	return Frame{
		SchemaVersion: "neuroflow.frame.v1",
		FrameID:       frameID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Session:       session,
		State:         string(state),
		Description:   description,
		Progress:      progress,
		Appearance:    appearance,
	}
}

// Validate checks the frame against the schema.
func (f *Frame) Validate() error {
	if f.SchemaVersion != "neuroflow.frame.v1" {
		return &ValidationError{Field: "schema_version", Message: "must be 'neuroflow.frame.v1'"}
	}
	if f.FrameID == "" {
		return &ValidationError{Field: "frame_id", Message: "is required"}
	}
	if _, err := time.Parse(time.RFC3339Nano, f.Timestamp); err != nil {
		return &ValidationError{Field: "ts", Message: "must be a valid RFC3339 timestamp"}
	}
	if !EmotionState(f.State).Valid() {
		return &ValidationError{Field: "state", Message: "unknown emotional state"}
	}
	if f.Progress < 0 || f.Progress > 1 {
		return &ValidationError{Field: "progress", Message: "must be within [0,1]"}
	}
	return nil
}
