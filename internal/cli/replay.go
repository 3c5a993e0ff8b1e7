package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neuroflow/neuroflow-cli/internal/models"
	"github.com/neuroflow/neuroflow-cli/internal/recorder"
	"github.com/neuroflow/neuroflow-cli/internal/transport"
)

var (
	replayIn    string
	replaySpeed float64
	replayLoop  bool
	replayHost  string
	replayPort  int
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay recorded frames",
	Long: `Replay state frames from a previously recorded NDJSON file with the
original timing.

Examples:
  neuroflow mock replay --in session_frames.ndjson
  neuroflow mock replay --in demo.ndjson --speed 2.0 --loop`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayIn, "in", "", "Input file to replay (required)")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayLoop, "loop", false, "Loop playback continuously")
	replayCmd.Flags().StringVar(&replayHost, "host", "127.0.0.1", "Host to bind to")
	replayCmd.Flags().IntVar(&replayPort, "port", 8787, "Port to listen on")
	replayCmd.MarkFlagRequired("in")
}

func runReplay(cmd *cobra.Command, args []string) error {
	// Create replayer
	rep := recorder.NewReplayer(replayIn, replaySpeed, replayLoop)

	// Get info about the recording
	count, err := rep.CountFrames()
	if err != nil {
		return fmt.Errorf("failed to read recording: %w", err)
	}

	firstFrame, err := rep.GetFirstFrame()
	if err != nil {
		return fmt.Errorf("failed to read first frame: %w", err)
	}

	// Create frame channel
	frames := make(chan models.Frame, 100)

	// Create WebSocket server
	wsServer := transport.NewWebSocketServer(replayHost, replayPort)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Start WebSocket server
	go func() {
		if err := wsServer.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	// Give server time to start
	time.Sleep(100 * time.Millisecond)

	fmt.Printf("▶️  Replay Session Started\n\n")
	fmt.Printf("File:       %s\n", replayIn)
	fmt.Printf("Frames:     %d\n", count)
	fmt.Printf("Scenario:   %s\n", firstFrame.Session.Scenario)
	fmt.Printf("Speed:      %.1fx\n", replaySpeed)
	fmt.Printf("Loop:       %v\n", replayLoop)
	fmt.Printf("WebSocket:  %s\n\n", wsServer.GetAddress())

	// Start broadcasting
	go func() {
		if err := wsServer.BroadcastFromChannel(ctx, frames); err != nil && err != context.Canceled {
			log.Printf("Broadcast error: %v", err)
		}
	}()

	fmt.Println("Press Ctrl+C to stop")
	fmt.Println("\nReplaying frames...")

	// Start replay
	if err := rep.Replay(ctx, frames); err != nil && err != context.Canceled {
		return fmt.Errorf("replay error: %w", err)
	}

	close(frames)

	fmt.Println("\nReplay complete")
	return nil
}
