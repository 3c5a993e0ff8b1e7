package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/scenario"
)

// Generator orchestrates signal generation based on a scenario.
type Generator struct {
	engine      *scenario.Engine
	rng         *rand.Rand
	runID       string
	seed        int64
	sequence    int64
	signals     map[string]SignalGenerator
	defaultRate time.Duration
	lastEmit    map[string]time.Time
}

// Config holds generator configuration.
type Config struct {
	Seed        int64
	DefaultRate time.Duration
}

// NewGenerator creates a new event generator.
func NewGenerator(engine *scenario.Engine, config Config) *Generator {
	return &Generator{
		engine:      engine,
		rng:         rand.New(rand.NewSource(config.Seed)),
		runID:       uuid.New().String(),
		seed:        config.Seed,
		signals:     GetAllSignals(),
		defaultRate: config.DefaultRate,
		lastEmit:    make(map[string]time.Time),
	}
}

// Generate produces events at the ticker's rate until the scenario
// completes or the context is cancelled.
func (g *Generator) Generate(ctx context.Context, ticker *time.Ticker, output chan<- models.Event) error {
	now := time.Now()
	for signalName := range g.signals {
		g.lastEmit[signalName] = now
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if g.engine.IsComplete() {
				return nil
			}

			for _, event := range g.generateTick() {
				select {
				case output <- event:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

// generateTick generates all events due at the current tick.
func (g *Generator) generateTick() []models.Event {
	elapsed := g.engine.GetElapsed()
	now := time.Now()
	events := make([]models.Event, 0)

	corr := NewCorrelationContext()

	// Generate every due signal first, then let the correlation rules
	// adjust the full tick before any event is emitted.
	for signalName, gen := range g.signals {
		config := g.engine.GetSignalConfig(signalName)
		if config == nil {
			continue
		}

		if now.Sub(g.lastEmit[signalName]) < g.getSignalRate(config) {
			continue
		}

		corr.Set(signalName, gen(g.rng, config, elapsed.Seconds()))
		g.lastEmit[signalName] = now
	}

	corr.ApplyCorrelations()

	for signalName := range g.signals {
		value, ok := corr.Get(signalName)
		if !ok {
			continue
		}

		config := g.engine.GetSignalConfig(signalName)
		if config == nil {
			continue
		}

		events = append(events, g.createEvent(signalName, value, config))
	}

	return events
}

// Snapshot synchronously generates one correlated reading for every
// configured signal, ignoring per-signal rates. Used by render loops that
// want current values without running the channel pipeline.
func (g *Generator) Snapshot() map[string]float64 {
	elapsed := g.engine.GetElapsed()
	corr := NewCorrelationContext()

	for signalName, gen := range g.signals {
		config := g.engine.GetSignalConfig(signalName)
		if config == nil {
			continue
		}
		corr.Set(signalName, gen(g.rng, config, elapsed.Seconds()))
	}
	corr.ApplyCorrelations()

	out := make(map[string]float64, len(g.signals))
	for signalName := range g.signals {
		if v, ok := corr.Get(signalName); ok {
			out[signalName] = v
		}
	}
	return out
}

// createEvent creates a single event.
func (g *Generator) createEvent(signalName string, value float64, config *scenario.SignalConfig) models.Event {
	g.sequence++

	signal := models.Signal{
		Name:    signalName,
		Value:   value,
		Quality: 0.9 + g.rng.Float64()*0.1, // 0.9-1.0 quality
	}
	if config.Unit != "" {
		signal.Unit = config.Unit
	} else {
		signal.Unit = getDefaultUnit(signalName)
	}

	session := models.Session{
		RunID:    g.runID,
		Scenario: g.engine.GetScenario().Name,
		Seed:     g.seed,
	}

	return models.NewEvent(uuid.New().String(), session, signal, g.sequence)
}

// getSignalRate returns how often to emit a signal.
func (g *Generator) getSignalRate(config *scenario.SignalConfig) time.Duration {
	if config.Rate != "" {
		if duration, err := ParseRate(config.Rate); err == nil {
			return duration
		}
	}
	if g.defaultRate > 0 {
		return g.defaultRate
	}
	return time.Second
}

// ParseRate converts a rate string like "10hz" to an emit interval.
func ParseRate(rate string) (time.Duration, error) {
	var hz float64
	_, err := fmt.Sscanf(rate, "%fhz", &hz)
	if err != nil {
		return 0, err
	}
	if hz <= 0 {
		return 0, fmt.Errorf("invalid rate: %s", rate)
	}
	return time.Duration(float64(time.Second) / hz), nil
}

// GetRunID returns the current run ID.
func (g *Generator) GetRunID() string {
	return g.runID
}

// Session returns the session metadata for frames derived from this run.
func (g *Generator) Session() models.Session {
	return models.Session{
		RunID:    g.runID,
		Scenario: g.engine.GetScenario().Name,
		Seed:     g.seed,
	}
}
