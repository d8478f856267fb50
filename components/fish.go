package components

import (
	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/genome"
	"github.com/mbolaris/tankcore/pokerstrategy"
)

// FoodMemory is one remembered successful feeding location, with a
// decay horizon counted down each frame.
type FoodMemory struct {
	X, Y     float64
	FoodType catalog.FoodType
	FramesLeft int
}

// PokerRecord is a fish's cumulative poker performance.
type PokerRecord struct {
	Games          int
	Wins, Losses   int
	NetEnergy      float64
	WinStreak      int
	BestHandRank   int
	ButtonGames    int
	NonButtonGames int
}

// Energy is the energy component: current level, bounded by a
// genome-and-config-derived maximum, consumed each frame at a rate
// modulated by life stage, velocity magnitude, and size.
type Energy struct {
	Current float64
	Max     float64
}

// Ratio returns Current/Max, or 0 if Max is non-positive.
func (e Energy) Ratio() float64 {
	if e.Max <= 0 {
		return 0
	}
	r := e.Current / e.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Lifecycle tracks age and derived life stage.
type Lifecycle struct {
	Age      int
	MaxAge   int
	Stage    LifeStage
	Species  catalog.Species
	Generation int
}

// Reproduction is the pending-mating state of a fish.
type Reproduction struct {
	Pregnant        bool
	PregnancyTimer  int
	Cooldown        int
	StoredMate      *genome.Genome
	StoredMateBehavior *behavior.Instance
	StoredMatePoker    *pokerstrategy.Instance
}

// Poker is a fish's poker-table participation state.
type Poker struct {
	Cooldown int
	Record   PokerRecord
}

// Fish is the central, richest entity kind.
type Fish struct {
	Locomotion
	Genome       genome.Genome
	Behavior     behavior.Instance
	PokerStrategy pokerstrategy.Instance
	LearnedTraits genome.LearnedTraits

	Energy       Energy
	Lifecycle    Lifecycle
	Reproduction Reproduction
	Memory       []FoodMemory
	Poker        Poker

	// LastPredatorEncounter is the frame number a predator was last
	// within strike range. Used to resolve death-cause attribution
	// when starvation and predation would otherwise race within the
	// same frame: the predation path updates this before killing the
	// fish, so a frame that both starves and predates always
	// attributes predation.
	LastPredatorEncounter int
}

// MaxMemories bounds the food-memory ring to recent successful food
// locations only.
const MaxMemories = 8

// Remember appends a food memory, evicting the oldest if the ring is
// full.
func (f *Fish) Remember(m FoodMemory) {
	if len(f.Memory) >= MaxMemories {
		f.Memory = f.Memory[1:]
	}
	f.Memory = append(f.Memory, m)
}

// DecayMemories ages every remembered location by one frame, dropping
// any whose horizon has elapsed.
func (f *Fish) DecayMemories() {
	kept := f.Memory[:0]
	for _, m := range f.Memory {
		m.FramesLeft--
		if m.FramesLeft > 0 {
			kept = append(kept, m)
		}
	}
	f.Memory = kept
}
