package systems

import (
	"testing"

	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/events"
	"github.com/mbolaris/tankcore/spatial"
)

func newGridWithFish(ids []components.ID, xs, ys []float64) (*spatial.Grid, map[components.ID]*components.Fish) {
	g := spatial.New(1000, 1000, 50, false)
	byID := make(map[components.ID]*components.Fish, len(ids))
	for i, id := range ids {
		g.Insert(id, components.KindFish, xs[i], ys[i])
		f := &components.Fish{}
		f.ID = id
		f.X, f.Y = xs[i], ys[i]
		f.Energy = components.Energy{Current: 50, Max: 200}
		byID[id] = f
	}
	return g, byID
}

func TestResolveFoodFishAwardsLowestIDOnTie(t *testing.T) {
	g, byID := newGridWithFish([]components.ID{5, 2, 9}, []float64{100, 101, 102}, []float64{100, 100, 100})
	food := &components.Food{Type: catalog.Algae}
	food.ID = 1
	food.X, food.Y = 100, 100
	eaten := make(map[components.ID]bool)
	bus := events.NewBus()

	ResolveFoodFish([]*components.Food{food}, byID, g, eaten, bus, 1)

	if !eaten[food.ID] {
		t.Fatalf("food was not marked eaten")
	}
	if byID[2].Energy.Current <= 50 {
		t.Fatalf("lowest-ID fish (2) did not gain energy")
	}
	if byID[5].Energy.Current != 50 || byID[9].Energy.Current != 50 {
		t.Fatalf("a non-winning fish's energy changed")
	}
}

func TestResolveFoodFishSkipsAlreadyEatenFood(t *testing.T) {
	g, byID := newGridWithFish([]components.ID{1}, []float64{100}, []float64{100})
	food := &components.Food{Type: catalog.Algae}
	food.ID = 1
	food.X, food.Y = 100, 100
	eaten := map[components.ID]bool{food.ID: true}
	bus := events.NewBus()

	ResolveFoodFish([]*components.Food{food}, byID, g, eaten, bus, 1)
	if byID[1].Energy.Current != 50 {
		t.Fatalf("already-eaten food was consumed again")
	}
}

func TestResolveCrabFishKillsLowestIDWithinRadiusAndEntersCooldown(t *testing.T) {
	g, byID := newGridWithFish([]components.ID{7, 3}, []float64{100, 101}, []float64{100, 100})
	c := &components.Crab{Energy: 100}
	c.ID = 1
	c.X, c.Y = 100, 100
	cfg := &config.CrabConfig{AttackTransfer: 20, AttackDamage: 10, AttackCooldown: 50}
	bus := events.NewBus()

	results := ResolveCrabFish([]*components.Crab{c}, byID, g, cfg, 42, bus)

	if len(results) != 1 || results[0].FishID != 3 {
		t.Fatalf("results = %+v, want a single kill of fish 3", results)
	}
	if byID[3].LastPredatorEncounter != 42 {
		t.Fatalf("LastPredatorEncounter = %d, want 42", byID[3].LastPredatorEncounter)
	}
	if c.AttackCooldown != 50 {
		t.Fatalf("AttackCooldown = %d, want 50 after a kill", c.AttackCooldown)
	}
	if c.Energy != 120 {
		t.Fatalf("crab energy = %g, want 120 after AttackTransfer", c.Energy)
	}
}

func TestResolveCrabFishSkipsCrabsOnCooldown(t *testing.T) {
	g, byID := newGridWithFish([]components.ID{1}, []float64{100}, []float64{100})
	c := &components.Crab{Energy: 100, AttackCooldown: 10}
	c.ID = 1
	c.X, c.Y = 100, 100
	cfg := &config.CrabConfig{AttackTransfer: 20, AttackDamage: 10, AttackCooldown: 50}
	bus := events.NewBus()

	results := ResolveCrabFish([]*components.Crab{c}, byID, g, cfg, 1, bus)
	if len(results) != 0 {
		t.Fatalf("crab on cooldown should not attack, got %+v", results)
	}
}

func newPokerFish(id components.ID, x, y float64, species catalog.Species, energy float64, cooldown int) *components.Fish {
	f := &components.Fish{}
	f.ID = id
	f.X, f.Y = x, y
	f.Lifecycle.Species = species
	f.Energy = components.Energy{Current: energy, Max: 200}
	f.Poker.Cooldown = cooldown
	return f
}

func TestStagePokerGamesGroupsEligibleWithinProximityBand(t *testing.T) {
	g := spatial.New(1000, 1000, 50, false)
	a := newPokerFish(1, 100, 100, catalog.Guppy, 80, 0)
	b := newPokerFish(2, 140, 100, catalog.Guppy, 80, 0)
	g.Insert(a.ID, components.KindFish, a.X, a.Y)
	g.Insert(b.ID, components.KindFish, b.X, b.Y)

	cfg := &config.PokerConfig{MinEnergyToSit: 40, MinProximity: 10, MaxProximity: 90, MaxPlayersPerHand: 5}
	groups := StagePokerGames([]*components.Fish{a, b}, g, cfg)

	if len(groups) != 1 || len(groups[0].ParticipantIDs) != 2 {
		t.Fatalf("groups = %+v, want one group of 2", groups)
	}
}

func TestStagePokerGamesExcludesTooCloseNeighbors(t *testing.T) {
	g := spatial.New(1000, 1000, 50, false)
	a := newPokerFish(1, 100, 100, catalog.Guppy, 80, 0)
	b := newPokerFish(2, 105, 100, catalog.Guppy, 80, 0)
	g.Insert(a.ID, components.KindFish, a.X, a.Y)
	g.Insert(b.ID, components.KindFish, b.X, b.Y)

	cfg := &config.PokerConfig{MinEnergyToSit: 40, MinProximity: 10, MaxProximity: 90, MaxPlayersPerHand: 5}
	groups := StagePokerGames([]*components.Fish{a, b}, g, cfg)
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none when the only neighbor is inside MinProximity", groups)
	}
}

func TestStagePokerGamesExcludesDifferentSpecies(t *testing.T) {
	g := spatial.New(1000, 1000, 50, false)
	a := newPokerFish(1, 100, 100, catalog.Guppy, 80, 0)
	b := newPokerFish(2, 140, 100, catalog.Tetra, 80, 0)
	g.Insert(a.ID, components.KindFish, a.X, a.Y)
	g.Insert(b.ID, components.KindFish, b.X, b.Y)

	cfg := &config.PokerConfig{MinEnergyToSit: 40, MinProximity: 10, MaxProximity: 90, MaxPlayersPerHand: 5}
	groups := StagePokerGames([]*components.Fish{a, b}, g, cfg)
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none across species", groups)
	}
}

func TestStagePokerGamesExcludesFishBelowMinEnergy(t *testing.T) {
	g := spatial.New(1000, 1000, 50, false)
	a := newPokerFish(1, 100, 100, catalog.Guppy, 80, 0)
	b := newPokerFish(2, 140, 100, catalog.Guppy, 10, 0)
	g.Insert(a.ID, components.KindFish, a.X, a.Y)
	g.Insert(b.ID, components.KindFish, b.X, b.Y)

	cfg := &config.PokerConfig{MinEnergyToSit: 40, MinProximity: 10, MaxProximity: 90, MaxPlayersPerHand: 5}
	groups := StagePokerGames([]*components.Fish{a, b}, g, cfg)
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none when a fish is below MinEnergyToSit", groups)
	}
}
