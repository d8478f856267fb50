// Package events defines the typed events emitted during a step and a
// bounded ring that keeps the most recent of them: a typed
// Event/Kind split covering this simulation's
// birth/death/feed/predation/poker vocabulary.
package events

import "github.com/mbolaris/tankcore/components"

// Kind identifies the category of a simulation event.
type Kind uint8

const (
	Birth Kind = iota
	Death
	Feed
	Predation
	Poker
)

func (k Kind) String() string {
	switch k {
	case Birth:
		return "birth"
	case Death:
		return "death"
	case Feed:
		return "feed"
	case Predation:
		return "predation"
	case Poker:
		return "poker"
	default:
		return "unknown"
	}
}

// DeathCause classifies why an entity left the population, matching
// the population tracker's per-cause breakdown.
type DeathCause uint8

const (
	CauseStarvation DeathCause = iota
	CauseOldAge
	CausePredation
	CausePopulationCap
	CauseUnknown
)

func (c DeathCause) String() string {
	switch c {
	case CauseStarvation:
		return "starvation"
	case CauseOldAge:
		return "old_age"
	case CausePredation:
		return "predation"
	case CausePopulationCap:
		return "population_cap"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported during a step. Fields not relevant
// to Kind are left at their zero value; callers switch on Kind before
// reading kind-specific fields, the same discipline components.Entity
// callers use when switching on Kind().
type Event struct {
	Kind  Kind
	Frame int

	EntityID    components.ID
	SecondaryID components.ID // parent (Birth), predator (Predation), poker counterpart
	Algorithm   string
	Generation  int
	ColorHue    float64

	Cause DeathCause
	// Age is the entity's age in frames at death; distinct from Frame
	// (the simulation frame the event occurred on), which the
	// population and fitness trackers must not substitute it for when
	// computing average lifespan.
	Age int

	// Source keys the energy ledger's gains/burns-by-source maps:
	// a food type name for Feed, "predation" for Predation, and
	// "poker_fish"/"poker_plant"/"poker_house_cut" for Poker.
	Source      string
	EnergyDelta float64
}
