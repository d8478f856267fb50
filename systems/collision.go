package systems

import (
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/events"
	"github.com/mbolaris/tankcore/spatial"
)

// Catch and predation radii, and the fixed sub-order collision
// resolution itself, are grounded on §4.3's "Food ∩ Fish, Food ∩ Crab,
// Crab ∩ Fish, Fish ∩ Fish" ordering and its "lowest stable ID wins"
// tie-break rule.
const (
	FoodCatchRadius = 20.0
	PredationRadius = 25.0
)

// ResolveFoodFish matches each uneaten food item to the lowest-ID fish
// within FoodCatchRadius (distance inside the radius plays no part in
// the choice), crediting the fish's energy and marking the food
// eaten in the caller-owned eaten set.
func ResolveFoodFish(foods []*components.Food, fishByID map[components.ID]*components.Fish, grid *spatial.Grid, eaten map[components.ID]bool, bus *events.Bus, frame int) {
	fishKind := components.KindFish
	var buf []spatial.Neighbor
	for _, f := range foods {
		if eaten[f.ID] {
			continue
		}
		buf = grid.QueryRadiusInto(buf[:0], f.X, f.Y, FoodCatchRadius, 0, &fishKind)
		winner := lowestID(buf)
		if winner == 0 {
			continue
		}
		fish := fishByID[winner]
		if fish == nil {
			continue
		}
		props := f.Type.Properties()
		fish.Energy.Current = clamp(fish.Energy.Current+props.Energy, 0, fish.Energy.Max)
		eaten[f.ID] = true
		bus.Emit(events.Event{Kind: events.Feed, Frame: frame, EntityID: fish.ID, Algorithm: fish.Behavior.Name, Source: props.Name, EnergyDelta: props.Energy})
	}
}

// ResolveFoodCrab is Food ∩ Crab: identical energy mechanics to
// ResolveFoodFish, without the plant-notification side effects beyond
// energy gain (the caller still decrements the source plant's
// OutstandingFood counter for any food consumed by either predator).
func ResolveFoodCrab(foods []*components.Food, crabByID map[components.ID]*components.Crab, grid *spatial.Grid, eaten map[components.ID]bool, bus *events.Bus, frame int) {
	crabKind := components.KindCrab
	var buf []spatial.Neighbor
	for _, f := range foods {
		if eaten[f.ID] {
			continue
		}
		buf = grid.QueryRadiusInto(buf[:0], f.X, f.Y, FoodCatchRadius, 0, &crabKind)
		winner := lowestID(buf)
		if winner == 0 {
			continue
		}
		crab := crabByID[winner]
		if crab == nil {
			continue
		}
		props := f.Type.Properties()
		crab.Energy += props.Energy
		eaten[f.ID] = true
		bus.Emit(events.Event{Kind: events.Feed, Frame: frame, EntityID: crab.ID, Source: props.Name, EnergyDelta: props.Energy})
	}
}

// PredationResult records one crab-kills-fish resolution.
type PredationResult struct {
	CrabID, FishID components.ID
}

// ResolveCrabFish is Crab ∩ Fish: a crab off cooldown that finds a fish
// within PredationRadius kills it (cause predation) unconditionally,
// gains a fixed energy bounty, and enters its attack cooldown. The
// fish's LastPredatorEncounter is stamped before the caller removes it,
// so death-cause attribution is correct even if the fish would
// otherwise have starved the same frame.
func ResolveCrabFish(crabs []*components.Crab, fishByID map[components.ID]*components.Fish, grid *spatial.Grid, cfg *config.CrabConfig, frame int, bus *events.Bus) []PredationResult {
	fishKind := components.KindFish
	var buf []spatial.Neighbor
	var results []PredationResult
	killed := make(map[components.ID]bool)

	for _, c := range crabs {
		if c.AttackCooldown > 0 {
			continue
		}
		buf = grid.QueryRadiusInto(buf[:0], c.X, c.Y, PredationRadius, 0, &fishKind)
		var winner components.ID
		for _, n := range buf {
			if killed[n.ID] {
				continue
			}
			if winner == 0 || n.ID < winner {
				winner = n.ID
			}
		}
		if winner == 0 {
			continue
		}
		fish := fishByID[winner]
		if fish == nil {
			continue
		}
		fish.LastPredatorEncounter = frame
		killed[winner] = true
		c.Energy += cfg.AttackTransfer
		c.AttackCooldown = cfg.AttackCooldown
		results = append(results, PredationResult{CrabID: c.ID, FishID: winner})
		bus.Emit(events.Event{Kind: events.Predation, Frame: frame, EntityID: fish.ID, SecondaryID: c.ID, Cause: events.CausePredation, Source: "predation", EnergyDelta: -cfg.AttackDamage})
	}
	return results
}

// PokerGroup is a set of mutually eligible fish staged for a hand.
type PokerGroup struct {
	ParticipantIDs []components.ID
}

// StagePokerGames implements Fish ∩ Fish: fish sharing a species, both
// off poker cooldown, both above the minimum sit energy, and within
// [MinProximity, MaxProximity] of each other are grouped into a hand,
// up to cfg.MaxPlayersPerHand participants. Each fish is staged into at
// most one hand per frame.
func StagePokerGames(fish []*components.Fish, grid *spatial.Grid, cfg *config.PokerConfig) []PokerGroup {
	fishKind := components.KindFish
	staged := make(map[components.ID]bool, len(fish))
	byID := make(map[components.ID]*components.Fish, len(fish))
	for _, f := range fish {
		byID[f.ID] = f
	}

	var groups []PokerGroup
	var buf []spatial.Neighbor
	for _, anchor := range fish {
		if staged[anchor.ID] || !pokerEligible(anchor, cfg) {
			continue
		}
		buf = grid.QueryRadiusInto(buf[:0], anchor.X, anchor.Y, cfg.MaxProximity, anchor.ID, &fishKind)
		group := []components.ID{anchor.ID}
		for _, n := range buf {
			if len(group) >= cfg.MaxPlayersPerHand {
				break
			}
			if staged[n.ID] || n.DistSq < cfg.MinProximity*cfg.MinProximity {
				continue
			}
			candidate := byID[n.ID]
			if candidate == nil || !pokerEligible(candidate, cfg) || candidate.Lifecycle.Species != anchor.Lifecycle.Species {
				continue
			}
			group = append(group, n.ID)
		}
		if len(group) < 2 {
			continue
		}
		for _, id := range group {
			staged[id] = true
		}
		groups = append(groups, PokerGroup{ParticipantIDs: group})
	}
	return groups
}

func pokerEligible(f *components.Fish, cfg *config.PokerConfig) bool {
	return f.Poker.Cooldown <= 0 && f.Energy.Current >= cfg.MinEnergyToSit
}

func lowestID(neighbors []spatial.Neighbor) components.ID {
	var winner components.ID
	for _, n := range neighbors {
		if winner == 0 || n.ID < winner {
			winner = n.ID
		}
	}
	return winner
}
