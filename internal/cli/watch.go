package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/scenario"
	"github.com/neuroflow/neuroflow-cli/internal/tui"
)

var (
	watchScenario string
	watchDuration string
	watchSeed     int64
	watchOverride string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the animated emotional state in the terminal",
	Long: `Runs a scenario and renders the classified emotional state as an
animated face, live in the terminal.

Examples:
  neuroflow watch
  neuroflow watch --scenario deep_focus
  neuroflow watch --override happy`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchScenario, "scenario", "baseline", "Scenario to run")
	watchCmd.Flags().StringVar(&watchDuration, "duration", "", "Duration to run (e.g., 5m)")
	watchCmd.Flags().Int64Var(&watchSeed, "seed", time.Now().UnixNano(), "Random seed")
	watchCmd.Flags().StringVar(&watchOverride, "override", "", "Pin the emotional state, bypassing classification")
}

func runWatch(cmd *cobra.Command, args []string) error {
	registry := scenario.NewRegistry()
	if err := registry.LoadFromDir(getScenarioDir()); err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	scen, err := registry.Get(watchScenario)
	if err != nil {
		return fmt.Errorf("failed to load scenario '%s': %w", watchScenario, err)
	}
	if watchDuration != "" {
		scen.Duration = watchDuration
	}

	var override *models.EmotionState
	if watchOverride != "" {
		state := models.EmotionState(watchOverride)
		if !state.Valid() {
			return fmt.Errorf("unknown state '%s'", watchOverride)
		}
		override = &state
	}

	engine := scenario.NewEngine(scen)
	gen := generator.NewGenerator(engine, generator.Config{Seed: watchSeed})

	program := tea.NewProgram(tui.NewModel(gen, engine, override), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}
