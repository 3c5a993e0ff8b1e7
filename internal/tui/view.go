package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuroflow/neuroflow-cli/internal/generator"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	faceFrame  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4).
			Align(lipgloss.Center)
)

var eyes = map[string]string{
	"round":  "o   o",
	"wide":   "O   O",
	"narrow": "-   -",
	"droopy": ",   ,",
	"soft":   "~   ~",
}

var mouths = map[string]string{
	"smile":  `\___/`,
	"frown":  "/---\\",
	"flat":   "-----",
	"open":   "( o )",
	"zigzag": "/\\/\\/",
	"wobble": "~~~~~",
}

func (m Model) View() string {
	if m.done {
		return "Scenario complete.\n"
	}

	appearance := m.transition.Frame()
	color := lipgloss.Color(appearance.PrimaryColor)

	eye := eyes[appearance.EyeShape]
	if eye == "" {
		eye = eyes["round"]
	}
	mouth := mouths[appearance.MouthShape]
	if mouth == "" {
		mouth = mouths["flat"]
	}

	// Bounce pushes the face up and down; jitter nudges it sideways. Both
	// are driven by wall-clock time so settled states still breathe.
	phase := float64(time.Now().UnixMilli()%1000) / 1000.0
	bounceRows := 0
	if appearance.Bounce >= 4 && phase > 0.5 {
		bounceRows = 1
	}
	jitterCols := 0
	if appearance.Jitter >= 2 && int(time.Now().UnixMilli()/100)%2 == 0 {
		jitterCols = 1
	}

	face := faceFrame.BorderForeground(color).Foreground(color).Render(
		eye + "\n\n" + mouth,
	)
	face = strings.Repeat("\n", 1-bounceRows) + strings.Repeat(" ", jitterCols) + face

	var b strings.Builder
	b.WriteString(titleStyle.Foreground(color).Render(strings.ToUpper(string(m.state.State))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.state.Description))
	b.WriteString("\n")
	b.WriteString(face)
	b.WriteString("\n\n")

	b.WriteString(renderGauge("transition", m.transition.Progress, color))
	b.WriteString("\n\n")

	if flow, ok := m.signals[generator.SignalFlow]; ok {
		b.WriteString(fmt.Sprintf("flow  %5.1f  ", flow))
		b.WriteString(renderGauge("", flow/100, color))
		b.WriteString("\n")
	}
	if hr, ok := m.signals[generator.SignalHeartRate]; ok {
		b.WriteString(fmt.Sprintf("heart %5.1f bpm\n", hr))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("scenario %s · elapsed %s · q to quit",
		m.engine.GetScenario().Name,
		m.engine.GetElapsed().Round(time.Second))))
	b.WriteString("\n")

	return b.String()
}

func renderGauge(label string, score float64, color lipgloss.Color) string {
	const width = 20
	filled := int(score * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	if label == "" {
		return bar
	}
	return dimStyle.Render(label+" ") + bar
}
