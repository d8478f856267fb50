package systems

import (
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
)

// lifeStageMetabolismFactor scales base metabolism by life stage: young
// adults cost most, then adults and mature fish, while juveniles, elders
// and fry (low activity) cost progressively less, matching §3's "consumption modulated by life stage".
func lifeStageMetabolismFactor(stage components.LifeStage) float64 {
	switch stage {
	case components.Fry:
		return 0.6
	case components.Juvenile:
		return 0.85
	case components.YoungAdult:
		return 1.1
	case components.Adult:
		return 1.0
	case components.Mature:
		return 0.9
	case components.Elder:
		return 0.7
	default:
		return 1.0
	}
}

// UpdateFishMetabolism advances age, recomputes life stage, and
// deducts the per-frame energy cost from velocity magnitude, size, and
// life stage. reversalCost is the extra charge IntegrateFish reported
// for a sharp direction change this frame. It returns the death cause
// with dead set to true if the fish dies this frame (an empty cause and
// false if it survives), plus metabolismCost — the base+move portion of the deduction,
// excluding reversalCost — so the caller can record both burns to the
// energy ledger under their own sources.
func UpdateFishMetabolism(f *components.Fish, reversalCost float64, bounds components.LifeStageBounds, cfg *config.EnergyConfig) (cause string, dead bool, metabolismCost float64) {
	f.Lifecycle.Age++
	f.Lifecycle.Stage = components.StageForAge(f.Lifecycle.Age, bounds)

	speed := magnitude(f.Locomotion.VX, f.Locomotion.VY)
	sizeFactor := f.Genome.SizeModifier
	stageFactor := lifeStageMetabolismFactor(f.Lifecycle.Stage)

	baseCost := 0.08 * f.Genome.MetabolismRate * stageFactor
	moveCost := 0.05 * speed * sizeFactor
	metabolismCost = baseCost + moveCost
	cost := metabolismCost + reversalCost

	f.Energy.Current = clamp(f.Energy.Current-cost, 0, f.Energy.Max)
	f.DecayMemories()

	if f.Energy.Current <= 0 {
		return "starvation", true, metabolismCost
	}
	if f.Lifecycle.Age >= f.Lifecycle.MaxAge {
		return "old_age", true, metabolismCost
	}
	return "", false, metabolismCost
}

// UpdateCrabMetabolism deducts a crab's per-frame energy cost and
// ticks down its attack cooldown.
func UpdateCrabMetabolism(c *components.Crab) (dead bool) {
	const crabBaseCost = 0.05
	speed := magnitude(c.Locomotion.VX, c.Locomotion.VY)
	c.Energy = clamp(c.Energy-crabBaseCost-0.02*speed, 0, c.Energy)
	if c.AttackCooldown > 0 {
		c.AttackCooldown--
	}
	return c.Energy <= 0
}

// UpdatePlantProduction advances a plant's production timer, returning
// true when it should emit one food item this frame. The timer resets
// each time the production interval elapses, whether or not the chance
// roll succeeds; the caller increments OutstandingFood on a true result.
func UpdatePlantProduction(p *components.Plant, cfg *config.PlantConfig, activityModifier, roll float64) bool {
	if !cfg.Enabled || p.OutstandingFood >= components.MaxOutstandingFood {
		return false
	}
	p.ProductionTimer++
	if p.ProductionTimer < cfg.ProductionInterval {
		return false
	}
	p.ProductionTimer = 0
	return roll < cfg.ProductionChance*activityModifier
}
