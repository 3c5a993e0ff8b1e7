package generator

import (
	"math"
	"math/rand"

	"github.com/neuroflow/neuroflow-cli/internal/scenario"
)

// Signal names produced by the mock session.
const (
	SignalFlow        = "eeg.flow_intensity"
	SignalHeartRate   = "ppg.hr_bpm"
	SignalFrustration = "affect.frustration"
	SignalExcitement  = "affect.excitement"
	SignalCalm        = "affect.calm"
)

// SignalGenerator produces one reading for a signal. A returned 0 is the
// "no reading" sentinel (dropouts).
type SignalGenerator func(rng *rand.Rand, config *scenario.SignalConfig, elapsed float64) float64

// GetAllSignals returns every available signal generator.
func GetAllSignals() map[string]SignalGenerator {
	return map[string]SignalGenerator{
		SignalFlow:        generateFlowIntensity,
		SignalHeartRate:   generateHeartRate,
		SignalFrustration: indicatorGenerator(20.0),
		SignalExcitement:  indicatorGenerator(45.0),
		SignalCalm:        indicatorGenerator(55.0),
	}
}

// generateFlowIntensity generates the 0-100 flow score with a slow drift so
// sessions ebb and build rather than hover.
func generateFlowIntensity(rng *rand.Rand, config *scenario.SignalConfig, elapsed float64) float64 {
	if dropout(rng, config) {
		return 0
	}
	baseline := defaultFloat(config.Baseline, 55.0)
	noise := defaultFloat(config.Noise, 8.0)

	value := applyModifiers(baseline, config)
	value += math.Sin(elapsed/180.0) * 6
	value += rng.NormFloat64() * noise

	return clampNonZero(value, 1, 100)
}

// generateHeartRate generates heart rate in BPM.
func generateHeartRate(rng *rand.Rand, config *scenario.SignalConfig, elapsed float64) float64 {
	if dropout(rng, config) {
		return 0
	}
	baseline := defaultFloat(config.Baseline, 72.0)
	noise := defaultFloat(config.Noise, 3.0)

	value := applyModifiers(baseline, config)
	value += rng.NormFloat64() * noise

	return clampNonZero(value, 50, 150)
}

// indicatorGenerator builds a 0-100 affect indicator generator around a
// default baseline.
func indicatorGenerator(defaultBaseline float64) SignalGenerator {
	return func(rng *rand.Rand, config *scenario.SignalConfig, elapsed float64) float64 {
		if dropout(rng, config) {
			return 0
		}
		baseline := defaultFloat(config.Baseline, defaultBaseline)
		noise := defaultFloat(config.Noise, 5.0)

		value := applyModifiers(baseline, config)
		value += rng.NormFloat64() * noise

		return clampNonZero(value, 1, 100)
	}
}

func applyModifiers(value float64, config *scenario.SignalConfig) float64 {
	if config.Add != 0 {
		value += config.Add
	}
	if config.Multiply != 0 {
		value *= config.Multiply
	}
	return value
}

func dropout(rng *rand.Rand, config *scenario.SignalConfig) bool {
	return config.Dropout > 0 && rng.Float64() < config.Dropout
}

func defaultFloat(val, defaultVal float64) float64 {
	if val == 0 {
		return defaultVal
	}
	return val
}

// clampNonZero clamps to [min, max] with min >= 1 so a real reading can
// never collide with the 0 sentinel.
func clampNonZero(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// getDefaultUnit returns the default unit for a signal.
func getDefaultUnit(signalName string) string {
	units := map[string]string{
		SignalFlow:        "score",
		SignalHeartRate:   "bpm",
		SignalFrustration: "score",
		SignalExcitement:  "score",
		SignalCalm:        "score",
	}
	return units[signalName]
}
