package world

import (
	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/ecosystem"
	"github.com/mbolaris/tankcore/events"
)

// modeID/worldType/viewMode are constant presentation tags a hosting
// UI uses to pick a renderer; this module only ever runs one world
// shape, so all three are fixed rather than configurable.
const (
	modeID    = "tank"
	worldType = "fishtank"
	viewMode  = "2d"
)

// EntitySnapshot is one entity's presentation-facing read, with
// kind-specific fields left at their zero value for kinds that don't
// carry them.
type EntitySnapshot struct {
	ID   components.ID
	Type string
	X, Y float64
	W, H float64

	// Fish/Crab
	Energy     float64
	Age        int
	Generation int
	Species    string
	Algorithm  string
	Stage      string
	GenomeSummary GenomeSummary

	// Food
	FoodType string

	// Plant
	PlantType int
}

// GenomeSummary is the compact genome read a snapshot carries per
// fish, rather than the full 9-scalar Genome a UI has no use for.
type GenomeSummary struct {
	Speed, Size, Vision, Aggression, SocialTendency float64
	ColorHue                                        float64
}

// PokerEvent is a presentation-facing read of one resolved hand,
// derived from the bounded recency ring's Poker-kind events.
type PokerEvent struct {
	Frame       int
	WinnerID    components.ID
	LoserID     components.ID
	PotEnergy   float64
}

// Snapshot is the full per-frame presentation read: a versioned
// envelope an embedding host can render without understanding any of
// the internal simulation types.
type Snapshot struct {
	Frame       int
	ElapsedTime float64
	Entities    []EntitySnapshot
	Stats       ecosystem.StatsSnapshot
	PokerEvents []PokerEvent
	ModeID      string
	WorldType   string
	ViewMode    string
	TimeOfDay   string
	IsNight     bool
}

// StepResult is the value every World entry point (New/Reset/Step)
// returns: a full snapshot, the ecosystem's bounded window of recent
// events (oldest first, spanning frames), the aggregated
// metrics read, a completion flag, and a delta against the previous
// full snapshot. Fast-forwarded frames still populate Events (physics
// never skips) but Snapshot.Entities and Delta are left empty, since
// fast-step skips snapshot construction without ever skipping physics.
type StepResult struct {
	Snapshot Snapshot
	Delta    DeltaSnapshot
	Events   []events.Event
	Metrics  ecosystem.StatsSnapshot
	Done     bool
}

// EntityUpdate carries only the fields of one entity that changed
// since the previous full snapshot; a nil pointer means that field is
// unchanged and should be left alone by a caller applying the delta
// on top of its own cached copy.
type EntityUpdate struct {
	ID components.ID

	X, Y *float64

	Energy     *float64
	Age        *int
	Stage      *string
	Generation *int
}

// DeltaSnapshot is the incremental counterpart to Snapshot: only
// entities that changed, were added, or were removed since the
// previous full snapshot, so a remote observer doesn't have to
// re-transmit the whole entity list every frame.
type DeltaSnapshot struct {
	Frame   int
	Updates []EntityUpdate
	Added   []EntitySnapshot
	Removed []components.ID
}

// buildStepResult assembles this frame's StepResult. extraEvents, if
// non-nil, are folded into the returned Events slice alongside the
// ecosystem's recency ring (used by callers that want to surface a
// frame's just-drained batch even though Record has already consumed
// it into the trackers).
func (w *World) buildStepResult(extraEvents []events.Event) *StepResult {
	stats := w.eco.Snapshot(w.totalFishEnergy(), w.traitSamples())

	result := &StepResult{
		Metrics: stats,
		Done:    false,
	}
	result.Events = append(result.Events, extraEvents...)
	result.Events = append(result.Events, w.eco.RecentEvents()...)

	if w.fastForward {
		result.Snapshot = Snapshot{Frame: w.frame, Stats: stats, ModeID: modeID, WorldType: worldType, ViewMode: viewMode}
		result.Delta = DeltaSnapshot{Frame: w.frame}
		return result
	}

	entities := w.buildEntitySnapshots()
	result.Snapshot = Snapshot{
		Frame:       w.frame,
		ElapsedTime: float64(w.frame) * w.cfg.Physics.DT,
		Entities:    entities,
		Stats:       stats,
		PokerEvents: w.buildPokerEvents(),
		ModeID:      modeID,
		WorldType:   worldType,
		ViewMode:    viewMode,
		TimeOfDay:   TimeString(w.timeOfDay),
		IsNight:     w.isNight,
	}
	result.Delta = w.buildDeltaSnapshot(entities)
	return result
}

// buildDeltaSnapshot diffs this frame's entity list against
// lastSnapshotEntities (the previous full snapshot's entities) and
// replaces the cache with the current list for next frame's diff.
func (w *World) buildDeltaSnapshot(entities []EntitySnapshot) DeltaSnapshot {
	delta := DeltaSnapshot{Frame: w.frame}
	seen := make(map[components.ID]bool, len(entities))

	for _, cur := range entities {
		seen[cur.ID] = true
		prev, ok := w.lastSnapshotEntities[cur.ID]
		if !ok {
			delta.Added = append(delta.Added, cur)
			continue
		}
		if update, changed := diffEntitySnapshot(prev, cur); changed {
			delta.Updates = append(delta.Updates, update)
		}
	}
	for id := range w.lastSnapshotEntities {
		if !seen[id] {
			delta.Removed = append(delta.Removed, id)
		}
	}

	next := make(map[components.ID]EntitySnapshot, len(entities))
	for _, e := range entities {
		next[e.ID] = e
	}
	w.lastSnapshotEntities = next

	return delta
}

// diffEntitySnapshot returns the subset of prev/cur fields that
// changed; changed is false when no tracked field moved.
func diffEntitySnapshot(prev, cur EntitySnapshot) (EntityUpdate, bool) {
	update := EntityUpdate{ID: cur.ID}
	changed := false

	if prev.X != cur.X {
		x := cur.X
		update.X = &x
		changed = true
	}
	if prev.Y != cur.Y {
		y := cur.Y
		update.Y = &y
		changed = true
	}
	if prev.Energy != cur.Energy {
		e := cur.Energy
		update.Energy = &e
		changed = true
	}
	if prev.Age != cur.Age {
		a := cur.Age
		update.Age = &a
		changed = true
	}
	if prev.Stage != cur.Stage {
		s := cur.Stage
		update.Stage = &s
		changed = true
	}
	if prev.Generation != cur.Generation {
		g := cur.Generation
		update.Generation = &g
		changed = true
	}
	return update, changed
}

// traitSamples gathers the live fish population's trait readout the
// diversity tracker computes its per-frame score from.
func (w *World) traitSamples() []ecosystem.FishTraitSample {
	samples := make([]ecosystem.FishTraitSample, len(w.fish))
	for i, f := range w.fish {
		samples[i] = ecosystem.FishTraitSample{
			Algorithm: f.Behavior.Name,
			Species:   f.Lifecycle.Species,
			ColorHue:  f.Genome.ColorHue,
			Speed:     f.Genome.SpeedModifier,
			Size:      f.Genome.SizeModifier,
			Vision:    f.Genome.VisionRange,
		}
	}
	return samples
}

func (w *World) buildEntitySnapshots() []EntitySnapshot {
	out := make([]EntitySnapshot, 0, len(w.fish)+len(w.crabs)+len(w.plants)+len(w.foods)+len(w.castles))
	for _, f := range w.fish {
		out = append(out, EntitySnapshot{
			ID: f.ID, Type: components.KindFish.String(), X: f.X, Y: f.Y, W: f.W, H: f.H,
			Energy: f.Energy.Current, Age: f.Lifecycle.Age, Generation: f.Lifecycle.Generation,
			Species: f.Lifecycle.Species.String(), Algorithm: f.Behavior.Name, Stage: f.Lifecycle.Stage.String(),
			GenomeSummary: GenomeSummary{
				Speed: f.Genome.SpeedModifier, Size: f.Genome.SizeModifier, Vision: f.Genome.VisionRange,
				Aggression: f.Genome.Aggression, SocialTendency: f.Genome.SocialTendency, ColorHue: f.Genome.ColorHue,
			},
		})
	}
	for _, c := range w.crabs {
		out = append(out, EntitySnapshot{
			ID: c.ID, Type: components.KindCrab.String(), X: c.X, Y: c.Y, W: c.W, H: c.H, Energy: c.Energy,
		})
	}
	for _, p := range w.plants {
		out = append(out, EntitySnapshot{
			ID: p.ID, Type: components.KindPlant.String(), X: p.X, Y: p.Y, W: p.W, H: p.H, PlantType: int(p.Type),
		})
	}
	for _, fd := range w.foods {
		out = append(out, EntitySnapshot{
			ID: fd.ID, Type: components.KindFood.String(), X: fd.X, Y: fd.Y, W: fd.W, H: fd.H, FoodType: fd.Type.String(),
		})
	}
	for _, c := range w.castles {
		out = append(out, EntitySnapshot{ID: c.ID, Type: components.KindCastle.String(), X: c.X, Y: c.Y, W: c.W, H: c.H})
	}
	return out
}

// buildPokerEvents derives the presentation-facing poker_events list
// from the ecosystem's bounded recency ring, since resolvePoker emits
// one flat events.Event per hand (EntityID/SecondaryID as
// winner/loser) rather than keeping its own separate log.
func (w *World) buildPokerEvents() []PokerEvent {
	recent := w.eco.RecentEvents()
	var out []PokerEvent
	for _, ev := range recent {
		if ev.Kind != events.Poker {
			continue
		}
		out = append(out, PokerEvent{
			Frame: ev.Frame, WinnerID: ev.EntityID, LoserID: ev.SecondaryID, PotEnergy: ev.EnergyDelta,
		})
	}
	return out
}

// Metrics returns the current aggregated ecosystem read alone,
// without the cost of a full entity snapshot.
func (w *World) Metrics() ecosystem.StatsSnapshot {
	return w.eco.Snapshot(w.totalFishEnergy(), w.traitSamples())
}

// FoodTypeProperties exposes the bit-exact food-type catalog, for a
// hosting UI that wants to render the table without importing the
// catalog package directly.
func FoodTypeProperties() map[string]catalog.FoodProperties {
	out := make(map[string]catalog.FoodProperties)
	for _, ft := range append(catalog.SpawnableFoodTypes(), catalog.Nectar) {
		out[ft.String()] = ft.Properties()
	}
	return out
}
