package world

import (
	"math"
	"sort"

	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/ecosystem"
	"github.com/mbolaris/tankcore/events"
	"github.com/mbolaris/tankcore/spatial"
	"github.com/mbolaris/tankcore/systems"
)

// Base speeds and vision radii the per-kind integration/context
// builders scale by genome modifiers. These are presentation-free
// tuning constants, not config, since nothing needs to vary them at
// runtime.
const (
	baseFishSpeed    = 2.2
	baseCrabSpeed    = 1.4
	baseVisionRadius = 140.0
	crabHuntRadius   = 180.0
)

// pendingDeath records a fish slated for removal at the end of the
// frame it died in. Predation (resolved later in the frame, during
// collision handling) always overrides a starvation/old-age cause
// recorded earlier in the same frame, per the fixed attribution rule.
type pendingDeath struct {
	cause events.DeathCause
}

// Step advances the simulation by exactly one frame and returns the
// resulting snapshot, following the fixed phase ordering: per-entity
// update, spawning, spatial rebuild, collision resolution in its fixed
// sub-order, reproduction, ecosystem bookkeeping, death removal, and
// finally snapshot construction. A paused world only re-emits its last
// snapshot; it never advances the frame counter or touches any RNG
// stream, so resuming from a pause is bit-identical to never having
// paused.
func (w *World) Step(cmd *Command) (*StepResult, error) {
	if cmd != nil {
		res, err := w.ApplyCommand(*cmd)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}
	if w.paused {
		return w.buildStepResult(nil), nil
	}

	w.frame++
	w.timeOfDay = TimeOfDay(w.frame)
	w.isNight = IsNight(w.timeOfDay)
	w.activityMod = ActivityModifier(w.timeOfDay)
	if w.frame-w.windowRolloverFrame >= DayLengthFrames {
		w.eco.Energy.SetWindowStart(w.totalFishEnergy())
		w.windowRolloverFrame = w.frame
	}

	pending := make(map[components.ID]pendingDeath)
	w.updateFish(pending)
	w.updateCrabs()
	w.foods = append(w.foods, w.updatePlants()...)
	w.updateFood()

	w.runSpawners()
	w.rebuildGrid()

	eaten := make(map[components.ID]bool, len(w.foods))
	fishByID := w.fishByID()
	crabByID := w.crabByID()
	systems.ResolveFoodFish(w.foods, fishByID, w.grid, eaten, w.bus, w.frame)
	systems.ResolveFoodCrab(w.foods, crabByID, w.grid, eaten, w.bus, w.frame)
	w.creditPlantsForEatenFood(eaten)
	w.removeEatenFood(eaten)

	predations := systems.ResolveCrabFish(w.crabs, fishByID, w.grid, &w.cfg.Crab, w.frame, w.bus)
	for _, p := range predations {
		pending[p.FishID] = pendingDeath{cause: events.CausePredation}
	}

	pokerHandles := w.resolvePoker(fishByID)
	w.advancePostPokerPregnancies(fishByID)

	before := w.markPregnancyBefore()
	systems.ResolveMating(w.fish, w.grid, &w.cfg.Reproduction)
	w.chargeMatingCost(before)

	births := systems.ResolveBirths(w.reproRNG, w.fish, &w.cfg.Mutation, len(w.fish), w.cfg.Population.Max)
	w.applyBirths(births)

	w.eco.Record(w.bus.Drain())
	for _, h := range pokerHandles {
		w.eco.RecordHand(w.frame, h.results, h.algorithmOf, h.houseCut, false)
	}

	w.removeDead(pending)
	w.capPopulation()

	return w.buildStepResult(nil), nil
}

// updateFish drives every live fish's behavior decision, movement
// integration, and metabolism for one frame, in the slice's existing
// (creation/ID-ascending) order, and records any that die of
// starvation or old age this frame into pending rather than removing
// them immediately, so a same-frame predation can still override the
// cause.
func (w *World) updateFish(pending map[components.ID]pendingDeath) {
	bounds := components.LifeStageBounds{
		FryMax: w.cfg.LifeStage.FryMax, JuvenileMax: w.cfg.LifeStage.JuvenileMax,
		YoungAdultMax: w.cfg.LifeStage.YoungAdultMax, AdultMax: w.cfg.LifeStage.AdultMax,
		MatureMax: w.cfg.LifeStage.MatureMax,
	}
	for _, f := range w.fish {
		ctx := w.buildFishContext(f)
		dx, dy := f.Behavior.Execute(ctx)
		speed := baseFishSpeed * f.Genome.SpeedModifier * (0.4 + 0.6*f.Energy.Ratio())
		reversalCost := systems.IntegrateFish(&f.Locomotion, dx, dy, speed, w.bounds)

		cause, dead, metabolismCost := systems.UpdateFishMetabolism(f, reversalCost, bounds, &w.cfg.Energy)
		w.eco.Energy.RecordBurn(w.frame, ecosystem.SourceMetabolism, metabolismCost)
		if reversalCost > 0 {
			w.eco.Energy.RecordBurn(w.frame, ecosystem.SourceReversal, reversalCost)
		}
		if dead {
			dc := events.CauseStarvation
			if cause == "old_age" {
				dc = events.CauseOldAge
			}
			pending[f.ID] = pendingDeath{cause: dc}
		}
		if f.Poker.Cooldown > 0 {
			f.Poker.Cooldown--
		}
		if f.Reproduction.Cooldown > 0 {
			f.Reproduction.Cooldown--
		}
	}
}

// nearestNeighbor returns the closest entry in a query result, or nil
// if the slice is empty. QueryRadiusInto does not sort its results, so
// every behavior-context lookup that wants "the nearest one" scans
// once rather than assuming order.
func nearestNeighbor(neighbors []spatial.Neighbor) *spatial.Neighbor {
	if len(neighbors) == 0 {
		return nil
	}
	best := &neighbors[0]
	for i := 1; i < len(neighbors); i++ {
		if neighbors[i].DistSq < best.DistSq {
			best = &neighbors[i]
		}
	}
	return best
}

// buildFishContext assembles one fish's read-only behavior.Context.
// Positions come from the spatial index rebuilt during the previous
// frame (after its spawning phase, before its collisions); neighbor
// energy ratios are read from the live fish, so fish earlier in this
// frame's update order already show this frame's metabolism. Nearby is
// sorted nearest first.
func (w *World) buildFishContext(f *components.Fish) behavior.Context {
	fishKind, foodKind, crabKind := components.KindFish, components.KindFood, components.KindCrab
	visionRadius := baseVisionRadius * f.Genome.VisionRange

	nearbyRaw := w.grid.QueryRadiusInto(nil, f.X, f.Y, visionRadius, f.ID, &fishKind)
	nearby := make([]behavior.Neighbor, 0, len(nearbyRaw))
	for _, n := range nearbyRaw {
		energy := 0.0
		if other := w.fishIndex[n.ID]; other != nil {
			energy = other.Energy.Ratio()
		}
		nearby = append(nearby, behavior.Neighbor{X: f.X + n.DX, Y: f.Y + n.DY, Distance: math.Sqrt(n.DistSq), Energy: energy})
	}
	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })

	var nearestFood *behavior.Neighbor
	foodRaw := w.grid.QueryRadiusInto(nil, f.X, f.Y, visionRadius, 0, &foodKind)
	if best := nearestNeighbor(foodRaw); best != nil {
		nearestFood = &behavior.Neighbor{X: f.X + best.DX, Y: f.Y + best.DY, Distance: math.Sqrt(best.DistSq)}
	}

	var nearestPredator *behavior.Neighbor
	predatorRaw := w.grid.QueryRadiusInto(nil, f.X, f.Y, visionRadius, 0, &crabKind)
	if best := nearestNeighbor(predatorRaw); best != nil {
		nearestPredator = &behavior.Neighbor{X: f.X + best.DX, Y: f.Y + best.DY, Distance: math.Sqrt(best.DistSq)}
	}

	r := w.rngProvider.Rand()
	return behavior.Context{
		X: f.X, Y: f.Y, VX: f.VX, VY: f.VY,
		Speed:       f.Genome.SpeedModifier,
		EnergyRatio: f.Energy.Ratio(),
		Age:         f.Lifecycle.Age,
		BoundsW:     w.cfg.Screen.Width, BoundsH: w.cfg.Screen.Height,
		Nearby:          nearby,
		NearestFood:     nearestFood,
		NearestPredator: nearestPredator,
		Rand01:          r.Float64,
	}
}

// updateCrabs moves every crab toward the nearest in-range fish
// (hunting) or wanders when none is visible, and applies its
// metabolism. A crab reaching zero energy is removed immediately:
// crabs carry no reproduction or lineage bookkeeping, so no
// cause-attribution ordering applies to them.
func (w *World) updateCrabs() {
	fishKind := components.KindFish
	r := w.rngProvider.Rand()
	var alive []*components.Crab
	for _, c := range w.crabs {
		neighbors := w.grid.QueryRadiusInto(nil, c.X, c.Y, crabHuntRadius, 0, &fishKind)
		desiredX := r.Float64()*2 - 1
		if best := nearestNeighbor(neighbors); best != nil {
			desiredX = best.DX
		}
		systems.IntegrateCrab(&c.Locomotion, desiredX, baseCrabSpeed, w.bounds)
		if !systems.UpdateCrabMetabolism(c) {
			alive = append(alive, c)
		}
	}
	w.crabs = alive
}

// updatePlants advances every plant's production timer and returns
// the food items any that rolled production this frame should emit,
// as Nectar (the one catalog food type flagged plant-only).
func (w *World) updatePlants() []*components.Food {
	r := w.rngProvider.Rand()
	var produced []*components.Food
	for _, p := range w.plants {
		if systems.UpdatePlantProduction(p, &w.cfg.Plant, w.activityMod, r.Float64()) {
			p.OutstandingFood++
			produced = append(produced, &components.Food{
				Locomotion:  components.Locomotion{ID: w.eco.Population.NextID(), X: p.X, Y: p.Y, W: 4, H: 4},
				Type:        catalog.Nectar,
				SourcePlant: p.ID,
			})
		}
	}
	return produced
}

// updateFood sinks every uneaten, non-stationary food item one frame.
func (w *World) updateFood() {
	for _, f := range w.foods {
		props := f.Type.Properties()
		systems.IntegrateFood(&f.Locomotion, props.SinkMultiplier, props.Stationary, w.bounds)
	}
}

// runSpawners advances the auto-food and emergency-fish controllers,
// which are driven by their own named RNG streams and hold their own
// timer state across frames independent of the world's frame counter.
func (w *World) runSpawners() {
	totalEnergy := 0.0
	for _, f := range w.fish {
		totalEnergy += f.Energy.Current
	}
	if food := w.autoFood.Update(w.cfg.Spawn.BaseFoodRate, w.cfg.Screen.Width, w.cfg.Screen.Height, totalEnergy, len(w.fish), w.timeOfDay, w.isNight, w.eco.Population.NextID); food != nil {
		w.foods = append(w.foods, food)
	}
	if w.emergency.ShouldSpawn(len(w.fish), w.cfg.Population.Max, w.cfg.Population.CriticalThreshold, w.frame) {
		nf := w.emergency.Spawn(w.cfg, w.cfg.Screen.Width, w.cfg.Screen.Height, w.cfg.Population.SpawnMarginPixels, w.frame, w.eco.Population.NextID)
		w.fish = append(w.fish, nf)
		w.emitBirth(nf, 0, 0)
	}
}

// rebuildGrid clears and reinserts every live, collision-relevant
// entity, reflecting this frame's freshly integrated positions for
// both this frame's remaining collision/reproduction phases and next
// frame's behavior contexts. Castles are deliberately never inserted:
// nothing queries KindCastle, so indexing them would be pure
// overhead.
func (w *World) rebuildGrid() {
	w.grid.Clear()
	w.fishIndex = make(map[components.ID]*components.Fish, len(w.fish))
	for _, f := range w.fish {
		w.grid.Insert(f.ID, components.KindFish, f.X, f.Y)
		w.fishIndex[f.ID] = f
	}
	for _, c := range w.crabs {
		w.grid.Insert(c.ID, components.KindCrab, c.X, c.Y)
	}
	for _, fd := range w.foods {
		w.grid.Insert(fd.ID, components.KindFood, fd.X, fd.Y)
	}
}

func (w *World) fishByID() map[components.ID]*components.Fish {
	m := make(map[components.ID]*components.Fish, len(w.fish))
	for _, f := range w.fish {
		m[f.ID] = f
	}
	return m
}

func (w *World) crabByID() map[components.ID]*components.Crab {
	m := make(map[components.ID]*components.Crab, len(w.crabs))
	for _, c := range w.crabs {
		m[c.ID] = c
	}
	return m
}

// creditPlantsForEatenFood decrements OutstandingFood for every plant
// whose produced item was just eaten.
func (w *World) creditPlantsForEatenFood(eaten map[components.ID]bool) {
	if len(eaten) == 0 {
		return
	}
	plantByID := make(map[components.ID]*components.Plant, len(w.plants))
	for _, p := range w.plants {
		plantByID[p.ID] = p
	}
	for _, f := range w.foods {
		if eaten[f.ID] && f.SourcePlant != 0 {
			if p := plantByID[f.SourcePlant]; p != nil && p.OutstandingFood > 0 {
				p.OutstandingFood--
			}
		}
	}
}

func (w *World) removeEatenFood(eaten map[components.ID]bool) {
	if len(eaten) == 0 {
		return
	}
	kept := w.foods[:0]
	for _, f := range w.foods {
		if !eaten[f.ID] {
			kept = append(kept, f)
		}
	}
	w.foods = kept
}

// markPregnancyBefore snapshots which fish are already pregnant, so
// the caller can diff against the post-ResolveMating state to find
// exactly the fish that became pregnant this frame.
func (w *World) markPregnancyBefore() map[components.ID]bool {
	before := make(map[components.ID]bool, len(w.fish))
	for _, f := range w.fish {
		before[f.ID] = f.Reproduction.Pregnant
	}
	return before
}

// chargeMatingCost records the energy-ledger burn and fitness
// reproduction credit for every fish ResolveMating newly impregnated
// this frame. ResolveMating itself only mutates Reproduction/Energy
// fields in place; it emits no event, so the ledger entry belongs here.
func (w *World) chargeMatingCost(before map[components.ID]bool) {
	for _, f := range w.fish {
		if f.Reproduction.Pregnant && !before[f.ID] {
			w.eco.Energy.RecordBurn(w.frame, ecosystem.SourceReproduction, w.cfg.Reproduction.EnergyCost)
			w.eco.Fitness.RecordReproduction(f.Behavior.Name)
		}
	}
}

// applyBirths assigns each BirthRequest a fresh ID, builds its child
// fish with stats derived from its mother, appends it to the live set,
// and emits the Birth event the ecosystem facade folds into
// population/fitness/lineage/energy bookkeeping.
func (w *World) applyBirths(births []systems.BirthRequest) {
	if !w.eco.Population.CanReproduce() {
		return
	}
	motherByID := w.fishByID()
	for _, b := range births {
		mother := motherByID[b.ParentA]
		if mother == nil {
			continue
		}
		maxAge := w.cfg.LifeStage.BaseMaxAge + w.reproRNG.Intn(w.cfg.LifeStage.MaxAgeJitter+1)
		maxEnergy := w.cfg.Energy.MaxFish * b.Genome.MaxEnergyModifier
		child := &components.Fish{
			Locomotion:    components.Locomotion{ID: w.eco.Population.NextID(), X: mother.X, Y: mother.Y, W: 12, H: 8},
			Genome:        b.Genome,
			Behavior:      b.Behavior,
			PokerStrategy: b.PokerStrategy,
			LearnedTraits: b.LearnedTraits,
			Energy:        components.Energy{Current: w.cfg.Energy.InitialFish * 0.5, Max: maxEnergy},
			Lifecycle:     components.Lifecycle{MaxAge: maxAge, Species: mother.Lifecycle.Species, Generation: b.Generation},
		}
		w.fish = append(w.fish, child)
		w.emitBirth(child, b.ParentA, b.Generation)
	}
}

// removeDead applies every pending death, emitting a Death event and
// removing the entity, preserving the remaining fish's relative
// (ID-ascending) order, then prunes poker stats for fish no longer
// alive.
func (w *World) removeDead(pending map[components.ID]pendingDeath) {
	if len(pending) == 0 {
		return
	}
	kept := w.fish[:0]
	alive := make(map[components.ID]bool, len(w.fish))
	for _, f := range w.fish {
		pd, dead := pending[f.ID]
		if !dead {
			kept = append(kept, f)
			alive[f.ID] = true
			continue
		}
		w.bus.Emit(events.Event{
			Kind:       events.Death,
			Frame:      w.frame,
			EntityID:   f.ID,
			Algorithm:  f.Behavior.Name,
			Generation: f.Lifecycle.Generation,
			Cause:      pd.cause,
			Age:        f.Lifecycle.Age,
			EnergyDelta: -f.Energy.Current,
		})
	}
	w.fish = kept
	w.eco.Record(w.bus.Drain())
	w.eco.Poker.CleanupDeadFish(alive)
}

// capPopulation trims the oldest-born surplus fish if a frame's births
// push the live count above the configured maximum — applyBirths'
// CanReproduce gate only checks room at the start of the births phase,
// so a frame that both offers a post-poker birth and resolves ordinary
// births can still land over max. Each trimmed fish gets a proper
// Death event so Population/Fitness/Lineage stay in sync with the
// live slice instead of silently losing their record of it.
func (w *World) capPopulation() {
	max := w.cfg.Population.Max
	if len(w.fish) <= max {
		return
	}
	overflow := len(w.fish) - max
	for _, f := range w.fish[:overflow] {
		w.bus.Emit(events.Event{
			Kind:        events.Death,
			Frame:       w.frame,
			EntityID:    f.ID,
			Algorithm:   f.Behavior.Name,
			Generation:  f.Lifecycle.Generation,
			Cause:       events.CausePopulationCap,
			Age:         f.Lifecycle.Age,
			EnergyDelta: -f.Energy.Current,
		})
	}
	w.fish = w.fish[overflow:]
	w.eco.Record(w.bus.Drain())

	alive := make(map[components.ID]bool, len(w.fish))
	for _, f := range w.fish {
		alive[f.ID] = true
	}
	w.eco.Poker.CleanupDeadFish(alive)
}
