package recorder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Replayer reads and replays frames from an NDJSON recording, preserving
// the original inter-frame timing scaled by a speed multiplier.
type Replayer struct {
	filename   string
	speed      float64
	loop       bool
	frameCount int
	firstFrame *models.Frame
	loaded     bool
}

// NewReplayer creates a new replayer.
func NewReplayer(filename string, speed float64, loop bool) *Replayer {
	return &Replayer{
		filename: filename,
		speed:    speed,
		loop:     loop,
	}
}

// loadMetadata reads the file once to cache count and first frame.
func (r *Replayer) loadMetadata() error {
	if r.loaded {
		return nil
	}

	file, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("failed to open recording file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	r.frameCount = 0

	for scanner.Scan() {
		r.frameCount++
		if r.frameCount == 1 {
			var frame models.Frame
			if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
				return fmt.Errorf("failed to parse first frame: %w", err)
			}
			r.firstFrame = &frame
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	r.loaded = true
	return nil
}

// Replay reads frames and sends them to the output channel with timing.
func (r *Replayer) Replay(ctx context.Context, output chan<- models.Frame) error {
	for {
		if err := r.replayOnce(ctx, output); err != nil {
			return err
		}

		if !r.loop {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			// Continue looping
		}
	}

	return nil
}

func (r *Replayer) replayOnce(ctx context.Context, output chan<- models.Frame) error {
	file, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("failed to open recording file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lastTimestamp time.Time
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		var frame models.Frame
		if err := json.Unmarshal(scanner.Bytes(), &frame); err != nil {
			return fmt.Errorf("failed to parse frame at line %d: %w", lineNum, err)
		}

		timestamp, err := time.Parse(time.RFC3339Nano, frame.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to parse timestamp at line %d: %w", lineNum, err)
		}

		if lineNum == 1 {
			lastTimestamp = timestamp
		} else {
			delay := timestamp.Sub(lastTimestamp)
			if r.speed != 1.0 {
				delay = time.Duration(float64(delay) / r.speed)
			}

			if delay > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
			}

			lastTimestamp = timestamp
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- frame:
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	return nil
}

// CountFrames returns the number of frames in the recording.
func (r *Replayer) CountFrames() (int, error) {
	if err := r.loadMetadata(); err != nil {
		return 0, err
	}
	return r.frameCount, nil
}

// GetFirstFrame returns the first frame in the recording.
func (r *Replayer) GetFirstFrame() (*models.Frame, error) {
	if err := r.loadMetadata(); err != nil {
		return nil, err
	}
	if r.firstFrame == nil {
		return nil, fmt.Errorf("recording file is empty")
	}
	return r.firstFrame, nil
}
