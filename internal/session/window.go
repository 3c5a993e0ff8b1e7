// Package session turns a live stream of sample events into classifier
// inputs over a short rolling window.
package session

import (
	"sync"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/emotion"
	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Window accumulates recent readings per signal and exposes them as
// classifier inputs. Safe for one writer and one reader goroutine.
type Window struct {
	span    time.Duration
	mu      sync.Mutex
	samples map[string][]models.Sample
}

// NewWindow creates a rolling window keeping readings for span.
func NewWindow(span time.Duration) *Window {
	return &Window{
		span:    span,
		samples: make(map[string][]models.Sample),
	}
}

// Add records one event's reading. Sentinel readings are kept out of the
// window entirely; they carry no information for classification.
func (w *Window) Add(event models.Event) {
	sample, err := event.Sample()
	if err != nil || sample.Sentinel() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.samples[event.Signal.Name] = append(w.samples[event.Signal.Name], sample)
	w.prune(event.Signal.Name, sample.Timestamp)
}

// prune drops readings older than the window span. Caller holds the lock.
func (w *Window) prune(name string, now time.Time) {
	cutoff := now.Add(-w.span)
	kept := w.samples[name][:0]
	for _, s := range w.samples[name] {
		if !s.Timestamp.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	w.samples[name] = kept
}

// Inputs builds the classifier inputs for the current window. The affect
// indicator channel is preferred when any indicator reading is present;
// otherwise the instantaneous flow/heart-rate channel is used. Returns
// false when the window holds nothing classifiable yet.
func (w *Window) Inputs() (emotion.Inputs, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	frustration, hasF := w.mean(generator.SignalFrustration)
	excitement, hasE := w.mean(generator.SignalExcitement)
	calm, hasC := w.mean(generator.SignalCalm)
	if hasF || hasE || hasC {
		ind := &models.Indicators{Frustration: frustration, Excitement: excitement, Calm: calm}
		in := emotion.Inputs{Indicators: ind}
		// Keep the realtime channel attached so a below-threshold
		// indicator set still classifies instead of erroring.
		if rt, ok := w.realtime(); ok {
			in.Realtime = rt
		}
		return in, true
	}

	if rt, ok := w.realtime(); ok {
		return emotion.Inputs{Realtime: rt}, true
	}
	return emotion.Inputs{}, false
}

// realtime builds the instantaneous channel from window means. Caller
// holds the lock.
func (w *Window) realtime() (*emotion.RealtimeSignals, bool) {
	flow, hasFlow := w.mean(generator.SignalFlow)
	heart, hasHeart := w.mean(generator.SignalHeartRate)
	if !hasFlow || !hasHeart {
		return nil, false
	}
	return &emotion.RealtimeSignals{FlowIntensity: flow, HeartRate: heart}, true
}

// mean averages a signal's window. Caller holds the lock.
func (w *Window) mean(name string) (float64, bool) {
	samples := w.samples[name]
	if len(samples) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, s := range samples {
		sum += s.Value
	}
	return sum / float64(len(samples)), true
}
