// Package tui renders a live animated face for the classified emotional
// state in the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuroflow/neuroflow-cli/internal/emotion"
	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/scenario"
)

const (
	frameInterval    = 33 * time.Millisecond
	classifyInterval = 2 * time.Second
)

type frameMsg time.Time
type classifyMsg time.Time

// Model drives the watch screen: it owns the transition engine and
// reclassifies a fresh signal snapshot on a fixed cadence.
type Model struct {
	gen        *generator.Generator
	engine     *scenario.Engine
	override   *models.EmotionState
	transition emotion.Transition
	state      emotion.Result
	signals    map[string]float64
	width      int
	height     int
	done       bool
}

// NewModel creates a watch model for a running scenario.
func NewModel(gen *generator.Generator, engine *scenario.Engine, override *models.EmotionState) Model {
	return Model{
		gen:        gen,
		engine:     engine,
		override:   override,
		transition: emotion.NewTransition(),
		state:      emotion.Result{State: models.StateNeutral, Description: "Balanced and steady"},
		signals:    make(map[string]float64),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameTick(), classifyTick())
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func classifyTick() tea.Cmd {
	return tea.Tick(classifyInterval, func(t time.Time) tea.Msg {
		return classifyMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		m.transition.Advance(time.Time(msg))
		if m.done {
			return m, tea.Quit
		}
		return m, frameTick()

	case classifyMsg:
		if m.engine.IsComplete() {
			m.done = true
			return m, nil
		}
		m.signals = m.gen.Snapshot()
		if result, ok := m.classify(); ok {
			m.state = result
			m.transition.SetTarget(result.State, time.Time(msg))
		}
		return m, classifyTick()
	}

	return m, nil
}

// classify maps the latest signal snapshot to classifier inputs, preferring
// the affect indicator channel over the instantaneous one.
func (m Model) classify() (emotion.Result, bool) {
	inputs := emotion.Inputs{Override: m.override}

	frustration, hasF := m.signals[generator.SignalFrustration]
	excitement, hasE := m.signals[generator.SignalExcitement]
	calm, hasC := m.signals[generator.SignalCalm]
	if hasF || hasE || hasC {
		inputs.Indicators = &models.Indicators{
			Frustration: frustration,
			Excitement:  excitement,
			Calm:        calm,
		}
	}

	flow, hasFlow := m.signals[generator.SignalFlow]
	heart, hasHeart := m.signals[generator.SignalHeartRate]
	if hasFlow && hasHeart {
		inputs.Realtime = &emotion.RealtimeSignals{
			FlowIntensity: flow,
			HeartRate:     heart,
		}
	}

	if inputs.Override == nil && inputs.Indicators == nil && inputs.Realtime == nil {
		return emotion.Result{}, false
	}

	result, err := emotion.Classify(inputs)
	if err != nil {
		return emotion.Result{}, false
	}
	return result, true
}
