package scenario

import "time"

// Scenario defines a complete mock session with phases and per-signal
// configurations.
type Scenario struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Duration    string                   `yaml:"duration"` // e.g. "8m", "unlimited"
	DefaultRate string                   `yaml:"default_rate"`
	Signals     map[string]*SignalConfig `yaml:"signals"`
	Phases      []Phase                  `yaml:"phases"`
}

// Phase represents a time-bounded stage of a session with specific
// overrides.
type Phase struct {
	Name      string                   `yaml:"name"`
	Duration  string                   `yaml:"duration"`
	Overrides map[string]*SignalConfig `yaml:"overrides,omitempty"`
}

// SignalConfig defines the configuration for one signal.
type SignalConfig struct {
	Baseline float64 `yaml:"baseline,omitempty"`
	Noise    float64 `yaml:"noise,omitempty"`
	Rate     string  `yaml:"rate,omitempty"` // e.g. "1hz", "10hz"
	Unit     string  `yaml:"unit,omitempty"` // e.g. "score", "bpm"

	// Phase override modifiers
	Add      float64 `yaml:"add,omitempty"`
	Multiply float64 `yaml:"multiply,omitempty"`
	Dropout  float64 `yaml:"dropout,omitempty"` // probability of a sentinel reading
}

// ParseDuration parses duration strings like "8m", "30s", "unlimited".
func ParseDuration(s string) (time.Duration, bool) {
	if s == "unlimited" || s == "" {
		return 0, true // 0 means unlimited
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, false
}

// GetEffectiveConfig returns the signal config for a signal at a specific
// elapsed time, with the current phase's overrides merged in.
func (s *Scenario) GetEffectiveConfig(signalName string, elapsed time.Duration) *SignalConfig {
	baseConfig := s.Signals[signalName]
	if baseConfig == nil {
		return nil
	}

	currentPhase := s.getCurrentPhase(elapsed)
	if currentPhase == nil {
		return baseConfig
	}

	if override, ok := currentPhase.Overrides[signalName]; ok {
		merged := *baseConfig
		if override.Add != 0 {
			merged.Add = override.Add
		}
		if override.Multiply != 0 {
			merged.Multiply = override.Multiply
		}
		if override.Baseline != 0 {
			merged.Baseline = override.Baseline
		}
		if override.Noise != 0 {
			merged.Noise = override.Noise
		}
		if override.Dropout != 0 {
			merged.Dropout = override.Dropout
		}
		return &merged
	}

	return baseConfig
}

func (s *Scenario) getCurrentPhase(elapsed time.Duration) *Phase {
	if len(s.Phases) == 0 {
		return nil
	}

	var currentTime time.Duration
	for i := range s.Phases {
		phaseDuration, unlimited := ParseDuration(s.Phases[i].Duration)
		if unlimited {
			return &s.Phases[i]
		}

		if elapsed < currentTime+phaseDuration {
			return &s.Phases[i]
		}
		currentTime += phaseDuration
	}

	// Past the total duration: stay on the last phase
	return &s.Phases[len(s.Phases)-1]
}
