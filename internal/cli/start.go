package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/neuroflow/neuroflow-cli/internal/emotion"
	"github.com/neuroflow/neuroflow-cli/internal/encoding"
	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/recorder"
	"github.com/neuroflow/neuroflow-cli/internal/scenario"
	"github.com/neuroflow/neuroflow-cli/internal/session"
	"github.com/neuroflow/neuroflow-cli/internal/transport"
)

var (
	startHost        string
	startPort        int
	startScenario    string
	startDuration    string
	startRate        string
	startSeed        int64
	startOut         string
	startEncoding    string
	startFPS         int
	startClassifyGap time.Duration
	startWindow      time.Duration
	startOverride    string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start generating signals and broadcasting state frames",
	Long: `Generates mock physiological signals from a scenario, classifies the
rolling window into an emotional state, and broadcasts animated state
frames over WebSocket, SSE and UDP.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&startHost, "host", "127.0.0.1", "Host to bind to")
	startCmd.Flags().IntVar(&startPort, "port", 8787, "Port to listen on")
	startCmd.Flags().StringVar(&startScenario, "scenario", "baseline", "Scenario to run")
	startCmd.Flags().StringVar(&startDuration, "duration", "", "Duration to run (e.g., 5m, 1h)")
	startCmd.Flags().StringVar(&startRate, "rate", "10hz", "Global tick rate")
	startCmd.Flags().Int64Var(&startSeed, "seed", time.Now().UnixNano(), "Random seed for deterministic output")
	startCmd.Flags().StringVar(&startOut, "out", "", "Record raw sample events to an NDJSON file")
	startCmd.Flags().StringVar(&startEncoding, "encoding", "json", "Frame encoding for SSE/UDP: json|protobuf")
	startCmd.Flags().IntVar(&startFPS, "fps", 30, "Frame broadcast rate")
	startCmd.Flags().DurationVar(&startClassifyGap, "classify-every", 2*time.Second, "How often to reclassify the window")
	startCmd.Flags().DurationVar(&startWindow, "window", 10*time.Second, "Rolling window span for classification")
	startCmd.Flags().StringVar(&startOverride, "override", "", "Pin the emotional state, bypassing classification")
}

func runStart(cmd *cobra.Command, args []string) error {
	// Load scenarios
	registry := scenario.NewRegistry()
	if err := registry.LoadFromDir(getScenarioDir()); err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	scen, err := registry.Get(startScenario)
	if err != nil {
		return fmt.Errorf("failed to load scenario '%s': %w", startScenario, err)
	}

	if startDuration != "" {
		scen.Duration = startDuration
	}

	var override *models.EmotionState
	if startOverride != "" {
		state := models.EmotionState(startOverride)
		if !state.Valid() {
			return fmt.Errorf("unknown state '%s'", startOverride)
		}
		override = &state
	}

	scenarioEngine := scenario.NewEngine(scen)

	tickRate, err := parseTickRate(startRate)
	if err != nil {
		return fmt.Errorf("invalid rate: %w", err)
	}

	if startEncoding != string(encoding.FormatJSON) && startEncoding != string(encoding.FormatProtobuf) {
		return fmt.Errorf("unknown encoding '%s'", startEncoding)
	}
	encoder := encoding.NewEncoder(encoding.Format(startEncoding))

	if startFPS <= 0 {
		return fmt.Errorf("fps must be positive")
	}

	gen := generator.NewGenerator(scenarioEngine, generator.Config{
		Seed:        startSeed,
		DefaultRate: tickRate,
	})

	// Create channels
	events := make(chan models.Event, 100)
	frames := make(chan models.Frame, 100)

	// Create dispatcher for the frame stream
	dispatcher := transport.NewDispatcher(frames, 100)

	// Create network servers
	wsServer := transport.NewWebSocketServer(startHost, startPort)
	sse := transport.NewSSEServer(startHost, startPort+1, encoder)
	udp := transport.NewUDPServer(startHost, startPort+2, encoder)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	// Start servers
	go func() {
		if err := wsServer.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("WS error: %v", err)
		}
	}()
	go func() {
		if err := sse.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("SSE error: %v", err)
		}
	}()
	go func() {
		if err := udp.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("UDP error: %v", err)
		}
	}()

	time.Sleep(200 * time.Millisecond)

	fmt.Printf("🚀 NeuroFlow Mock Server Started\n\n")
	fmt.Printf("Scenario:   %s\n", scen.Name)
	fmt.Printf("Run ID:     %s\n", gen.GetRunID())
	fmt.Printf("WebSocket:  %s\n", wsServer.GetAddress())
	fmt.Printf("SSE:        %s\n", sse.GetAddress())
	fmt.Printf("UDP:        %s\n", udp.GetAddress())
	fmt.Printf("Encoding:   %s\n", startEncoding)
	if override != nil {
		fmt.Printf("Override:   %s\n", *override)
	}
	fmt.Println()

	// Wire up transport broadcasting
	go func() { wsServer.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()
	go func() { sse.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()
	go func() { udp.BroadcastFromChannel(ctx, dispatcher.Subscribe()) }()

	go dispatcher.Run(ctx)

	// Optional raw event recording for later `analyze` / `segment` runs
	var rec *recorder.Recorder
	if startOut != "" {
		rec, err = recorder.NewRecorder(startOut)
		if err != nil {
			return err
		}
		defer rec.Close()
		fmt.Printf("Recording:  %s\n\n", startOut)
	}

	// Classification Pipeline: Events -> Rolling Window -> State -> Frames
	window := session.NewWindow(startWindow)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				window.Add(event)
				if rec != nil {
					if data, err := json.Marshal(event); err == nil {
						rec.Record(data)
					}
				}
			}
		}
	}()

	// The transition is owned by the frame loop; the classify loop only
	// retargets it under the lock.
	var transitionMu sync.Mutex
	transition := emotion.NewTransition()
	state := emotion.Result{State: models.StateNeutral, Description: "Balanced and steady"}

	go func() {
		classifyTicker := time.NewTicker(startClassifyGap)
		defer classifyTicker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-classifyTicker.C:
				inputs, ok := window.Inputs()
				if !ok && override == nil {
					continue
				}
				inputs.Override = override
				result, err := emotion.Classify(inputs)
				if err != nil {
					continue
				}
				transitionMu.Lock()
				if result.State != transition.Target {
					log.Printf("State change: %s → %s", transition.Target, result.State)
				}
				transition.SetTarget(result.State, time.Now())
				state = result
				transitionMu.Unlock()
			}
		}
	}()

	go func() {
		defer close(frames)
		frameTicker := time.NewTicker(time.Second / time.Duration(startFPS))
		defer frameTicker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-frameTicker.C:
				transitionMu.Lock()
				transition.Advance(now)
				frame := models.NewFrame(
					uuid.New().String(),
					gen.Session(),
					state.State,
					state.Description,
					transition.Progress,
					transition.Frame(),
				)
				transitionMu.Unlock()

				select {
				case frames <- frame:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	// Start generating
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	if err := gen.Generate(ctx, ticker, events); err != nil && err != context.Canceled {
		return fmt.Errorf("generator error: %w", err)
	}

	close(events)
	cancel()

	fmt.Println("\nShutdown complete")
	return nil
}
