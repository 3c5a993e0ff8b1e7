package generator

// CorrelationContext holds one tick's generated values so cross-signal
// consistency rules can nudge them before events are emitted. A value of 0
// is a dropout and is never adjusted.
type CorrelationContext struct {
	values map[string]float64
}

// NewCorrelationContext creates a new correlation context.
func NewCorrelationContext() *CorrelationContext {
	return &CorrelationContext{
		values: make(map[string]float64),
	}
}

// Set stores a signal value.
func (c *CorrelationContext) Set(name string, value float64) {
	c.values[name] = value
}

// Get retrieves a signal value.
func (c *CorrelationContext) Get(name string) (float64, bool) {
	val, ok := c.values[name]
	return val, ok
}

// ApplyCorrelations applies the consistency rules between signals.
func (c *CorrelationContext) ApplyCorrelations() {
	// Flow ↔ HR: deep flow tends to settle the heart rate slightly.
	if flow, ok := c.nonZero(SignalFlow); ok {
		if hr, ok := c.nonZero(SignalHeartRate); ok {
			if flow > 75 && hr > 80 {
				c.Set(SignalHeartRate, clampNonZero(hr-(flow-75)*0.3, 50, 150))
			}
		}
	}

	// Flow ↔ Frustration: collapsing flow pushes frustration up.
	if flow, ok := c.nonZero(SignalFlow); ok {
		if fr, ok := c.nonZero(SignalFrustration); ok {
			if flow < 30 {
				c.Set(SignalFrustration, clampNonZero(fr+(30-flow)*0.8, 1, 100))
			}
		}
	}

	// HR ↔ Excitement: a racing heart reads as excitement when flow holds.
	if hr, ok := c.nonZero(SignalHeartRate); ok {
		if ex, ok := c.nonZero(SignalExcitement); ok {
			if hr > 100 {
				c.Set(SignalExcitement, clampNonZero(ex+(hr-100)*0.5, 1, 100))
			}
		}
	}

	// Frustration ↔ Calm: they cannot both run high in the same tick.
	if fr, ok := c.nonZero(SignalFrustration); ok {
		if calm, ok := c.nonZero(SignalCalm); ok {
			if fr > 60 && calm > 50 {
				c.Set(SignalCalm, clampNonZero(calm-(fr-60)*0.7, 1, 100))
			}
		}
	}
}

func (c *CorrelationContext) nonZero(name string) (float64, bool) {
	v, ok := c.values[name]
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}
