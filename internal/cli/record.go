package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/recorder"
	"github.com/neuroflow/neuroflow-cli/internal/scenario"
)

var (
	recordScenario string
	recordDuration string
	recordOut      string
	recordSeed     int64
	recordRate     string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record mock data to a file",
	Long: `Generates raw sample events from a scenario and records them to an
NDJSON file for later analysis or replay.`,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordScenario, "scenario", "baseline", "Scenario to run")
	recordCmd.Flags().StringVar(&recordDuration, "duration", "5m", "Duration to record")
	recordCmd.Flags().StringVar(&recordOut, "out", "", "Output file (required)")
	recordCmd.Flags().Int64Var(&recordSeed, "seed", time.Now().UnixNano(), "Random seed")
	recordCmd.Flags().StringVar(&recordRate, "rate", "10hz", "Global tick rate")
	recordCmd.MarkFlagRequired("out")
}

func runRecord(cmd *cobra.Command, args []string) error {
	registry := scenario.NewRegistry()
	if err := registry.LoadFromDir(getScenarioDir()); err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	scen, err := registry.Get(recordScenario)
	if err != nil {
		return fmt.Errorf("failed to load scenario '%s': %w", recordScenario, err)
	}
	scen.Duration = recordDuration

	scenarioEngine := scenario.NewEngine(scen)

	tickRate, err := parseTickRate(recordRate)
	if err != nil {
		return fmt.Errorf("invalid rate: %w", err)
	}

	gen := generator.NewGenerator(scenarioEngine, generator.Config{
		Seed:        recordSeed,
		DefaultRate: tickRate,
	})

	rec, err := recorder.NewRecorder(recordOut)
	if err != nil {
		return fmt.Errorf("failed to create recorder: %w", err)
	}
	defer rec.Close()

	events := make(chan models.Event, 100)
	payloads := make(chan []byte, 100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	fmt.Printf("📼 Recording Session Started\n\n")
	fmt.Printf("Scenario:   %s\n", scen.Name)
	fmt.Printf("Run ID:     %s\n", gen.GetRunID())
	fmt.Printf("Output:     %s\n", recordOut)
	fmt.Printf("Duration:   %s\n\n", recordDuration)

	progressCallback := func() {
		if n := rec.Entries(); n%1000 == 0 {
			fmt.Printf("\rRecorded ~%d sample events...", n)
		}
	}

	// Recording thread
	go func() {
		if err := rec.RecordFromChannel(ctx, payloads, progressCallback); err != nil && err != context.Canceled {
			log.Printf("Recording error: %v", err)
		}
	}()

	// Serialization
	go func() {
		defer close(payloads)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				data, err := json.Marshal(event)
				if err != nil {
					log.Printf("Marshal error: %v", err)
					continue
				}
				payloads <- data
			}
		}
	}()

	// Generation
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	if err := gen.Generate(ctx, ticker, events); err != nil && err != context.Canceled {
		return fmt.Errorf("generator error: %w", err)
	}

	close(events)
	time.Sleep(100 * time.Millisecond) // Let recording finish

	fmt.Printf("\n\n✅ Recording complete: %d entries in %s\n", rec.Entries(), recordOut)
	return nil
}
