package recorder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Recorder writes event and frame payloads to an NDJSON recording. Every
// entry must be one JSON document on one line; Record enforces that
// envelope so a bad payload can never corrupt the framing the replayer
// and the analyze/segment loaders depend on.
type Recorder struct {
	file    *os.File
	writer  *bufio.Writer
	entries int
	mu      sync.Mutex
}

// NewRecorder creates a new recorder.
func NewRecorder(filename string) (*Recorder, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording file: %w", err)
	}

	return &Recorder{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// Record appends one entry to the recording, followed by a newline. The
// payload must be a single valid JSON document without embedded newlines.
func (r *Recorder) Record(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("recording entry is not valid JSON")
	}
	if bytes.ContainsRune(data, '\n') {
		return fmt.Errorf("recording entry must not span lines")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}

	if _, err := r.writer.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	r.entries++
	return nil
}

// Entries returns the number of entries written so far.
func (r *Recorder) Entries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries
}

// RecordFromChannel reads payloads from a channel and records them.
func (r *Recorder) RecordFromChannel(ctx context.Context, dataStream <-chan []byte, onEntry func()) error {
	for {
		select {
		case <-ctx.Done():
			return r.Close()
		case data, ok := <-dataStream:
			if !ok {
				return r.Close() // Channel closed
			}
			if err := r.Record(data); err != nil {
				return err
			}
			if onEntry != nil {
				onEntry()
			}
		}
	}
}

// Flush flushes the buffer to disk.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writer.Flush()
}

// Close flushes and closes the recorder.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writer.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}
