package models

// EmotionState is one of the fixed discrete emotional-state labels.
type EmotionState string

const (
	StateHappy     EmotionState = "happy"
	StateSad       EmotionState = "sad"
	StateSurprised EmotionState = "surprised"
	StateNeutral   EmotionState = "neutral"
	StateFocused   EmotionState = "focused"
	StateStressed  EmotionState = "stressed"
	StateCalm      EmotionState = "calm"
	StateAnxious   EmotionState = "anxious"
)

// AllStates lists every valid state label.
var AllStates = []EmotionState{
	StateHappy, StateSad, StateSurprised, StateNeutral,
	StateFocused, StateStressed, StateCalm, StateAnxious,
}

// Valid reports whether the label is one of the declared states.
func (s EmotionState) Valid() bool {
	for _, v := range AllStates {
		if s == v {
			return true
		}
	}
	return false
}

// StateAppearance is the static visual parameter set owned by one emotional
// state. PrimaryColor is a #rrggbb hex string. EyeShape, MouthShape and
// Scene are categorical: during a transition they snap to the target rather
// than interpolate.
type StateAppearance struct {
	PrimaryColor string  `json:"primary_color"`
	Size         float64 `json:"size"`
	EyeShape     string  `json:"eye_shape"`
	MouthShape   string  `json:"mouth_shape"`
	Bounce       float64 `json:"bounce"`
	Scene        string  `json:"scene"`
	Jitter       float64 `json:"jitter"`
}
