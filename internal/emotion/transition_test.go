package emotion

import (
	"testing"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

func TestNewTransition_SettledNeutral(t *testing.T) {
	tr := NewTransition()
	if tr.Target != models.StateNeutral {
		t.Errorf("target = %s, want neutral", tr.Target)
	}
	if tr.Progress != 1 {
		t.Errorf("progress = %v, want 1 (settled)", tr.Progress)
	}
	if got := tr.Frame(); got != AppearanceFor(models.StateNeutral) {
		t.Errorf("settled frame = %+v, want neutral appearance", got)
	}
}

func TestSetTarget_SameStateNoOp(t *testing.T) {
	tr := NewTransition()
	tr.SetTarget(models.StateNeutral, time.Now())
	if tr.Progress != 1 {
		t.Errorf("progress = %v, retargeting the current state must not restart", tr.Progress)
	}
}

func TestTransition_Endpoints(t *testing.T) {
	start := time.Now()
	tr := NewTransition()
	tr.SetTarget(models.StateHappy, start)

	// At progress 0 the categorical fields still show the previous state.
	frame := tr.Frame()
	neutral := AppearanceFor(models.StateNeutral)
	if frame.EyeShape != neutral.EyeShape || frame.MouthShape != neutral.MouthShape || frame.Scene != neutral.Scene {
		t.Errorf("at progress 0 categorical fields = %s/%s/%s, want previous state's",
			frame.EyeShape, frame.MouthShape, frame.Scene)
	}
	if frame.PrimaryColor != neutral.PrimaryColor {
		t.Errorf("at progress 0 color = %s, want %s", frame.PrimaryColor, neutral.PrimaryColor)
	}

	// Fully advanced: exactly the target's static appearance.
	tr.Advance(start.Add(tr.Duration))
	if tr.Progress != 1 {
		t.Fatalf("progress = %v, want 1", tr.Progress)
	}
	if got := tr.Frame(); got != AppearanceFor(models.StateHappy) {
		t.Errorf("settled frame = %+v, want happy appearance", got)
	}
}

func TestTransition_MidwayStrictlyBetween(t *testing.T) {
	start := time.Now()
	tr := NewTransition()
	tr.SetTarget(models.StateHappy, start)
	tr.Advance(start.Add(tr.Duration / 2))

	if tr.Progress <= 0 || tr.Progress >= 1 {
		t.Fatalf("progress = %v, want strictly between 0 and 1", tr.Progress)
	}

	frame := tr.Frame()
	neutral := AppearanceFor(models.StateNeutral)
	happy := AppearanceFor(models.StateHappy)

	lo, hi := neutral.Size, happy.Size
	if lo > hi {
		lo, hi = hi, lo
	}
	if frame.Size <= lo || frame.Size >= hi {
		t.Errorf("midway size = %v, want strictly between %v and %v", frame.Size, lo, hi)
	}
	if frame.PrimaryColor == neutral.PrimaryColor || frame.PrimaryColor == happy.PrimaryColor {
		t.Errorf("midway color = %s, want a blend of %s and %s",
			frame.PrimaryColor, neutral.PrimaryColor, happy.PrimaryColor)
	}

	// Categorical fields have already snapped to the target.
	if frame.EyeShape != happy.EyeShape || frame.MouthShape != happy.MouthShape || frame.Scene != happy.Scene {
		t.Errorf("midway categorical fields = %s/%s/%s, want target's",
			frame.EyeShape, frame.MouthShape, frame.Scene)
	}
}

func TestTransition_RetargetSnapshotsCurrentFrame(t *testing.T) {
	start := time.Now()
	tr := NewTransition()
	tr.SetTarget(models.StateHappy, start)
	tr.Advance(start.Add(tr.Duration / 2))

	midFrame := tr.Frame()
	tr.SetTarget(models.StateSad, start.Add(tr.Duration/2))

	if tr.Progress != 0 {
		t.Errorf("progress = %v, want 0 after retarget", tr.Progress)
	}
	if tr.Previous != midFrame {
		t.Errorf("previous = %+v, want the mid-interpolation frame %+v", tr.Previous, midFrame)
	}
	if tr.Target != models.StateSad {
		t.Errorf("target = %s, want sad", tr.Target)
	}
}

func TestAdvance_IdempotentOnceSettled(t *testing.T) {
	start := time.Now()
	tr := NewTransition()
	tr.SetTarget(models.StateFocused, start)
	tr.Advance(start.Add(2 * tr.Duration))

	before := tr
	tr.Advance(start.Add(5 * tr.Duration))
	if tr != before {
		t.Errorf("settled transition changed on redundant Advance: %+v vs %+v", tr, before)
	}
}

func TestAdvance_ClampsEarlyClock(t *testing.T) {
	start := time.Now()
	tr := NewTransition()
	tr.SetTarget(models.StateCalm, start)
	tr.Advance(start.Add(-time.Second))
	if tr.Progress != 0 {
		t.Errorf("progress = %v, want 0 for a clock before the start", tr.Progress)
	}
}

func TestAppearanceFor_UnknownFallsBackToNeutral(t *testing.T) {
	got := AppearanceFor(models.EmotionState("unknown"))
	if got != AppearanceFor(models.StateNeutral) {
		t.Errorf("unknown state appearance = %+v, want neutral", got)
	}
}

func TestAppearances_AllStatesCovered(t *testing.T) {
	for _, state := range models.AllStates {
		a := AppearanceFor(state)
		if a.PrimaryColor == "" || a.Size == 0 {
			t.Errorf("state %s has incomplete appearance: %+v", state, a)
		}
	}
}
