package ecosystem

import (
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/events"
)

// Ecosystem is the facade the world loop calls once per frame with
// the step's drained event batch; it fans each event out to the
// specialized tracker that cares about it and exposes aggregated
// snapshots for metrics()/snapshot(). All writes go through Record;
// nothing outside this package mutates a tracker directly.
type Ecosystem struct {
	Population *Population
	Lineage    *Lineage
	Energy     *EnergyLedger
	Fitness    *FitnessTracker
	Poker      *PokerStatsTracker
	Diversity  *Diversity

	maxEvents int
	ring      *events.Ring
}

// New builds an Ecosystem with the given carrying capacity, lineage
// log cap, energy-ledger window, and bounded recent-event ring size.
func New(maxPopulation, maxLineage, energyWindowFrames, maxRecentEvents int) *Ecosystem {
	return &Ecosystem{
		Population: NewPopulation(maxPopulation),
		Lineage:    NewLineage(maxLineage),
		Energy:     NewEnergyLedger(energyWindowFrames),
		Fitness:    NewFitnessTracker(),
		Poker:      NewPokerStatsTracker(),
		Diversity:  NewDiversity(),
		maxEvents:  maxRecentEvents,
		ring:       events.NewRing(maxRecentEvents),
	}
}

// Record folds one frame's drained event batch into every tracker it
// concerns, and pushes every event onto the bounded recency ring
// exposed to snapshot()'s poker_events/recent-events views.
func (e *Ecosystem) Record(evs []events.Event) {
	for _, ev := range evs {
		e.ring.Push(ev)
		switch ev.Kind {
		case events.Birth:
			e.Population.RecordBirth(ev.Generation)
			e.Fitness.RecordBirth(ev.Algorithm)
			e.Lineage.RecordBirth(LineageRecord{
				ID:         ev.EntityID,
				ParentID:   ev.SecondaryID,
				Generation: ev.Generation,
				Algorithm:  ev.Algorithm,
				ColorHue:   ev.ColorHue,
				BirthFrame: ev.Frame,
			})
			e.Energy.RecordBirthEnergy(ev.EnergyDelta)
		case events.Death:
			e.Population.RecordDeath(ev.Generation, ev.Age, ev.Cause)
			e.Fitness.RecordDeath(ev.Algorithm, ev.Age, ev.Cause)
			e.Energy.RecordDeathEnergy(-ev.EnergyDelta)
		case events.Feed:
			if ev.EnergyDelta > 0 {
				e.Energy.RecordGain(ev.Frame, SourceFeed, ev.EnergyDelta)
			}
		case events.Predation:
			e.Energy.RecordBurn(ev.Frame, SourcePredation, -ev.EnergyDelta)
		case events.Poker:
			// Per-participant poker accounting is recorded by the
			// caller via RecordHand, since one poker.Result spans
			// several participants that a single flat Event cannot
			// carry; this case exists so the recency ring still
			// reflects poker activity in event order.
		}
	}
}

// RecordHand folds one resolved poker hand's per-participant results
// into the poker stats tracker and the energy ledger, since a hand's
// full participant list doesn't fit the flat events.Event shape.
func (e *Ecosystem) RecordHand(frame int, results map[components.ID]HandResult, algorithmOf map[components.ID]string, houseCut float64, involvesPlant bool) {
	for id, r := range results {
		e.Poker.Record(id, algorithmOf[id], r)
		if r.NetEnergy >= 0 {
			e.Energy.RecordGain(frame, SourcePokerFish, r.NetEnergy)
		} else {
			e.Energy.RecordBurn(frame, SourcePokerFish, -r.NetEnergy)
		}
	}
	if houseCut > 0 {
		e.Energy.RecordBurn(frame, SourcePokerHouse, houseCut)
	}
	if involvesPlant {
		var plantDelta float64
		for _, r := range results {
			plantDelta += r.NetEnergy
		}
		e.Poker.RecordPlantHand(plantDelta)
	} else {
		e.Poker.RecordFishOnlyHand()
	}
}

// RecentEvents returns the bounded recency window of every event kind,
// oldest first, backing snapshot()'s poker_events/recent-events views.
func (e *Ecosystem) RecentEvents() []events.Event {
	return e.ring.Recent()
}

// StatsSnapshot is the full aggregated ecosystem-wide read a World
// exposes through its metrics/snapshot surface.
type StatsSnapshot struct {
	Population                  PopulationSnapshot
	Diversity                   DiversitySnapshot
	EnergyAccountingDiscrepancy float64
	LineageOrphanFixups         int
}

// Snapshot composes every tracker's current read into one
// StatsSnapshot. currentLiveFishEnergy and samples are supplied by the
// caller (the world loop), which alone holds the live entity set this
// package's trackers never reference directly: ecosystem trackers hold
// only IDs and aggregates, never entity pointers.
func (e *Ecosystem) Snapshot(currentLiveFishEnergy float64, samples []FishTraitSample) StatsSnapshot {
	return StatsSnapshot{
		Population:                  e.Population.Snapshot(),
		Diversity:                   e.Diversity.Compute(samples),
		EnergyAccountingDiscrepancy: e.Energy.Discrepancy(currentLiveFishEnergy),
		LineageOrphanFixups:         e.Lineage.OrphanFixups(),
	}
}
