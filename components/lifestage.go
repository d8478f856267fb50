package components

// LifeStage is a fish's current developmental stage, derived each
// frame from its age against the configured per-stage frame-age
// boundaries (config.LifeStageConfig). This module uses a six-stage
// progression rather than a simpler Baby/Juvenile/Adult/Elder split:
// the extra Young Adult and Mature stages give behaviors and the
// energy model finer-grained aging signals.
type LifeStage uint8

const (
	Fry LifeStage = iota
	Juvenile
	YoungAdult
	Adult
	Mature
	Elder
)

func (s LifeStage) String() string {
	switch s {
	case Fry:
		return "fry"
	case Juvenile:
		return "juvenile"
	case YoungAdult:
		return "young_adult"
	case Adult:
		return "adult"
	case Mature:
		return "mature"
	case Elder:
		return "elder"
	default:
		return "unknown"
	}
}

// LifeStageBounds describes the frame-age ceilings for every stage but Elder,
// which has none.
type LifeStageBounds struct {
	FryMax, JuvenileMax, YoungAdultMax, AdultMax, MatureMax int
}

// StageForAge derives the life stage an age in frames falls into.
func StageForAge(age int, b LifeStageBounds) LifeStage {
	switch {
	case age < b.FryMax:
		return Fry
	case age < b.JuvenileMax:
		return Juvenile
	case age < b.YoungAdultMax:
		return YoungAdult
	case age < b.AdultMax:
		return Adult
	case age < b.MatureMax:
		return Mature
	default:
		return Elder
	}
}
