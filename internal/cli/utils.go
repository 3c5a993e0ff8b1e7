package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/generator"
	"github.com/neuroflow/neuroflow-cli/internal/models"
)

func getScenarioDir() string {
	// Try current directory first
	if _, err := os.Stat("scenarios"); err == nil {
		return "scenarios"
	}

	// Try relative to executable
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "scenarios")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}

	// Default to scenarios in current directory
	return "scenarios"
}

func parseTickRate(rate string) (time.Duration, error) {
	d, err := generator.ParseRate(rate)
	if err != nil {
		return 0, fmt.Errorf("rate must look like '10hz': %w", err)
	}
	return d, nil
}

// loadSampleStreams reads an event NDJSON file and splits it into raw
// sample streams keyed by signal name. Lines that fail to parse abort the
// load; silently skipping them would hide producer bugs.
func loadSampleStreams(path string) (map[string][]models.Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer file.Close()

	streams := make(map[string][]models.Sample)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		var event models.Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		sample, err := event.Sample()
		if err != nil {
			return nil, fmt.Errorf("invalid event at line %d: %w", lineNum, err)
		}
		streams[event.Signal.Name] = append(streams[event.Signal.Name], sample)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return streams, nil
}
