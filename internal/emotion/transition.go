package emotion

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// DefaultTransitionDuration is how long a state change animates unless the
// caller overrides it.
const DefaultTransitionDuration = 500 * time.Millisecond

// Transition tracks the animated hand-off between the previously rendered
// appearance and the target state's static appearance. It is an owned
// value, not a singleton: the presentation layer holds exactly one and
// mutates it only through SetTarget and Advance, so the classify → compare
// → reset sequence stays atomic relative to the render loop.
type Transition struct {
	Previous  models.StateAppearance // snapshot, not a live reference
	Target    models.EmotionState
	StartTime time.Time // zero until the first retarget
	Progress  float64   // 0..1, pinned at 1 once settled
	Duration  time.Duration
}

// NewTransition returns a transition settled on neutral.
func NewTransition() Transition {
	return Transition{
		Previous: AppearanceFor(models.StateNeutral),
		Target:   models.StateNeutral,
		Progress: 1,
		Duration: DefaultTransitionDuration,
	}
}

// SetTarget starts a new transition when state differs from the current
// target; an unchanged target is a no-op and the engine stays settled. The
// snapshot stored as Previous is the currently rendered frame, which may
// itself be mid-interpolation.
func (t *Transition) SetTarget(state models.EmotionState, now time.Time) {
	if state == t.Target {
		return
	}
	t.Previous = t.Frame()
	t.Target = state
	t.StartTime = now
	t.Progress = 0
}

// Advance moves progress toward 1 based on wall-clock time. Once settled it
// is an idempotent no-op, so redundant render ticks are safe.
func (t *Transition) Advance(now time.Time) {
	if t.Progress >= 1 {
		return
	}
	d := t.Duration
	if d <= 0 {
		d = DefaultTransitionDuration
	}
	p := float64(now.Sub(t.StartTime)) / float64(d)
	if p >= 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	t.Progress = p
}

// Frame resolves the appearance to render at the current progress. Numeric
// fields interpolate linearly (color per RGB channel); categorical fields
// snap to the target as soon as progress is above 0, and show the previous
// value only exactly at 0.
func (t Transition) Frame() models.StateAppearance {
	target := AppearanceFor(t.Target)
	if t.Progress >= 1 {
		return target
	}

	p := t.Progress
	out := target
	if p == 0 {
		out.EyeShape = t.Previous.EyeShape
		out.MouthShape = t.Previous.MouthShape
		out.Scene = t.Previous.Scene
	}
	out.PrimaryColor = blendHex(t.Previous.PrimaryColor, target.PrimaryColor, p)
	out.Size = lerp(t.Previous.Size, target.Size, p)
	out.Bounce = lerp(t.Previous.Bounce, target.Bounce, p)
	out.Jitter = lerp(t.Previous.Jitter, target.Jitter, p)
	return out
}

func lerp(a, b, p float64) float64 {
	return a*(1-p) + b*p
}

// blendHex interpolates two #rrggbb colors channel-wise. Unparseable colors
// fall through to the target.
func blendHex(from, to string, p float64) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return to
	}
	return a.BlendRgb(b, p).Hex()
}
