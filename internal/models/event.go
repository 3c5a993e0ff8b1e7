package models

import "time"

// Event is the sample envelope carried on the wire and in NDJSON
// recordings: one reading of one named signal.
type Event struct {
	SchemaVersion string  `json:"schema_version"`
	EventID       string  `json:"event_id"`
	Timestamp     string  `json:"ts"`
	Session       Session `json:"session"`
	Signal        Signal  `json:"signal"`
	Meta          Meta    `json:"meta"`
}

// Session contains metadata about the mock session that produced an event.
type Session struct {
	RunID    string `json:"run_id"`
	Scenario string `json:"scenario"`
	Seed     int64  `json:"seed"`
}

// Signal is a single scalar measurement.
type Signal struct {
	Name    string  `json:"name"` // e.g. "eeg.flow_intensity"
	Unit    string  `json:"unit"` // e.g. "score", "bpm"
	Value   float64 `json:"value"`
	Quality float64 `json:"quality"`
}

// Meta contains additional event metadata.
type Meta struct {
	Sequence int64 `json:"sequence"`
}

// NewEvent creates a new Event with the current timestamp.
func NewEvent(eventID string, session Session, signal Signal, sequence int64) Event {
	return Event{
		SchemaVersion: "neuroflow.sample.v1",
		EventID:       eventID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Session:       session,
		Signal:        signal,
		Meta: Meta{
			Sequence: sequence,
		},
	}
}

// Sample converts the event into a raw sample for the analytics pipeline.
func (e Event) Sample() (Sample, error) {
	ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return Sample{}, &ValidationError{Field: "ts", Message: "must be a valid RFC3339 timestamp"}
	}
	return Sample{Timestamp: ts, Value: e.Signal.Value}, nil
}

// ValidationError represents a boundary contract violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
