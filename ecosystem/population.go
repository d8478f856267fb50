// Package ecosystem composes the specialized bookkeeping trackers the
// world loop reports into every frame: population counts, lineage,
// the energy ledger, per-algorithm fitness, poker stats, and trait
// diversity. Every tracker is written to only from typed events
// (events.Event); reads expose aggregated snapshots, mirroring the
// write-via-events/read-via-snapshot split in
// _examples/pthm-soup/telemetry's Collector-feeds-WindowStats shape.
package ecosystem

import (
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/events"
)

// CauseCounts tallies deaths by cause for one scope (all fish, or one
// algorithm).
type CauseCounts struct {
	Starvation    int
	OldAge        int
	Predation     int
	PopulationCap int
	Unknown       int
}

func (c *CauseCounts) record(cause events.DeathCause) {
	switch cause {
	case events.CauseStarvation:
		c.Starvation++
	case events.CauseOldAge:
		c.OldAge++
	case events.CausePredation:
		c.Predation++
	case events.CausePopulationCap:
		c.PopulationCap++
	default:
		c.Unknown++
	}
}

// generationStats is per-generation bookkeeping: births, deaths, live
// population, and average age at death.
type generationStats struct {
	Population int
	Births     int
	Deaths     int
	totalAge   int
}

func (g *generationStats) avgAge() float64 {
	if g.Deaths == 0 {
		return 0
	}
	return float64(g.totalAge) / float64(g.Deaths)
}

// Population tracks births, deaths, and live counts per generation and
// per death cause, issues monotonic entity IDs, and gates reproduction
// against a configured maximum.
type Population struct {
	nextID components.ID

	maxPopulation int
	liveFish      int

	totalBirths int
	totalDeaths int
	causes      CauseCounts

	currentGeneration int
	byGeneration      map[int]*generationStats
}

// NewPopulation builds a tracker with the given carrying capacity.
// Entity IDs are issued starting at 1: ID 0 is reserved as the
// spatial/collision "no winner" sentinel (see systems.lowestID), so
// every real entity must carry a nonzero ID.
func NewPopulation(maxPopulation int) *Population {
	return &Population{
		nextID:        1,
		maxPopulation: maxPopulation,
		byGeneration:  make(map[int]*generationStats),
	}
}

// NextID issues the next monotonic entity ID. IDs are never reused
// within a Population's lifetime, so insertion order stays a stable
// deterministic tiebreaker.
func (p *Population) NextID() components.ID {
	id := p.nextID
	p.nextID++
	return id
}

// CanReproduce reports whether the live fish count has room for one
// more birth under the configured maximum.
func (p *Population) CanReproduce() bool {
	return p.liveFish < p.maxPopulation
}

// LiveFish returns the current live fish count.
func (p *Population) LiveFish() int { return p.liveFish }

// MaxPopulation returns the configured carrying capacity.
func (p *Population) MaxPopulation() int { return p.maxPopulation }

func (p *Population) genStats(generation int) *generationStats {
	g, ok := p.byGeneration[generation]
	if !ok {
		g = &generationStats{}
		p.byGeneration[generation] = g
	}
	return g
}

// RecordBirth accounts for one new fish in the given generation.
func (p *Population) RecordBirth(generation int) {
	p.totalBirths++
	p.liveFish++
	if generation > p.currentGeneration {
		p.currentGeneration = generation
	}
	g := p.genStats(generation)
	g.Births++
	g.Population++
}

// RecordDeath accounts for one fish's death: generation population
// decrements, cause tallies increment, average age-at-death updates.
func (p *Population) RecordDeath(generation, age int, cause events.DeathCause) {
	p.totalDeaths++
	if p.liveFish > 0 {
		p.liveFish--
	}
	p.causes.record(cause)

	g := p.genStats(generation)
	g.Deaths++
	if g.Population > 0 {
		g.Population--
	}
	g.totalAge += age
}

// PopulationSnapshot is the read-only view of population state exposed to
// metrics/snapshot callers.
type PopulationSnapshot struct {
	LiveFish          int
	MaxPopulation     int
	CurrentGeneration int
	TotalBirths       int
	TotalDeaths       int
	DeathCauses       CauseCounts
}

// Snapshot returns the current aggregated population state.
func (p *Population) Snapshot() PopulationSnapshot {
	return PopulationSnapshot{
		LiveFish:          p.liveFish,
		MaxPopulation:     p.maxPopulation,
		CurrentGeneration: p.currentGeneration,
		TotalBirths:       p.totalBirths,
		TotalDeaths:       p.totalDeaths,
		DeathCauses:       p.causes,
	}
}

// GenerationAvgAge returns the average age at death for a generation,
// or 0 if no deaths have been recorded in it.
func (p *Population) GenerationAvgAge(generation int) float64 {
	g, ok := p.byGeneration[generation]
	if !ok {
		return 0
	}
	return g.avgAge()
}
