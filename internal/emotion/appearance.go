package emotion

import "github.com/neuroflow/neuroflow-cli/internal/models"

// appearances is the static appearance owned by each state. Colors are
// lowercase #rrggbb hex.
var appearances = map[models.EmotionState]models.StateAppearance{
	models.StateHappy: {
		PrimaryColor: "#ffd93d", Size: 1.1,
		EyeShape: "round", MouthShape: "smile",
		Bounce: 6, Scene: "sunny", Jitter: 0,
	},
	models.StateSad: {
		PrimaryColor: "#5c7cfa", Size: 0.9,
		EyeShape: "droopy", MouthShape: "frown",
		Bounce: 1, Scene: "rain", Jitter: 0,
	},
	models.StateSurprised: {
		PrimaryColor: "#ff8787", Size: 1.2,
		EyeShape: "wide", MouthShape: "open",
		Bounce: 8, Scene: "sparks", Jitter: 2,
	},
	models.StateNeutral: {
		PrimaryColor: "#adb5bd", Size: 1.0,
		EyeShape: "round", MouthShape: "flat",
		Bounce: 2, Scene: "plain", Jitter: 0,
	},
	models.StateFocused: {
		PrimaryColor: "#51cf66", Size: 1.0,
		EyeShape: "narrow", MouthShape: "flat",
		Bounce: 2, Scene: "glow", Jitter: 0,
	},
	models.StateStressed: {
		PrimaryColor: "#fa5252", Size: 0.95,
		EyeShape: "narrow", MouthShape: "zigzag",
		Bounce: 4, Scene: "storm", Jitter: 3,
	},
	models.StateCalm: {
		PrimaryColor: "#66d9e8", Size: 1.05,
		EyeShape: "soft", MouthShape: "smile",
		Bounce: 1.5, Scene: "waves", Jitter: 0,
	},
	models.StateAnxious: {
		PrimaryColor: "#cc5de8", Size: 0.9,
		EyeShape: "wide", MouthShape: "wobble",
		Bounce: 5, Scene: "fog", Jitter: 4,
	},
}

// AppearanceFor returns the static appearance for a state, falling back to
// neutral for unknown labels.
func AppearanceFor(state models.EmotionState) models.StateAppearance {
	if a, ok := appearances[state]; ok {
		return a
	}
	return appearances[models.StateNeutral]
}
