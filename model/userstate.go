package model

// Stage is the position of a user inside the questionnaire.
type Stage int

const (
	StageIdle Stage = iota
	StageAskSkin
	StageAskTone
	StageAskUndertone
	StageAskEyes
	StageAskOccasion
	StageCompleted
)

var stageNames = [...]string{
	StageIdle:         "idle",
	StageAskSkin:      "ask_skin",
	StageAskTone:      "ask_tone",
	StageAskUndertone: "ask_undertone",
	StageAskEyes:      "ask_eyes",
	StageAskOccasion:  "ask_occasion",
	StageCompleted:    "completed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// StageFromString is the inverse of Stage.String. Unknown names map to StageIdle.
func StageFromString(name string) Stage {
	for i, n := range stageNames {
		if n == name {
			return Stage(i)
		}
	}
	return StageIdle
}

// Expects returns the dimension asked in stage s, if any.
func (s Stage) Expects() (Dimension, bool) {
	switch s {
	case StageAskSkin:
		return DimensionSkin, true
	case StageAskTone:
		return DimensionTone, true
	case StageAskUndertone:
		return DimensionUndertone, true
	case StageAskEyes:
		return DimensionEyes, true
	case StageAskOccasion:
		return DimensionOccasion, true
	}
	return "", false
}

// Subscriber is the slice of a user record the rotation needs.
type Subscriber struct {
	UserID int64
	Cursor int
}
