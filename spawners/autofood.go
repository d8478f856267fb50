// Package spawners holds the two population-replenishing controllers
// this simulation runs outside the ordinary per-fish behavior loop:
// an automatic food dropper whose rate reacts to the tank's energy and
// crowding, and an emergency fish spawner that injects genetically
// diverse newcomers when the population nears collapse. Both are
// grounded on original_source/core/food_spawning_system.py's
// AutoFoodSpawner/EmergencyFishSpawner, restructured around this
// module's typed genome/behavior/pokerstrategy catalogs.
package spawners

import (
	"math/rand"

	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
)

// AutoFoodController drops food at a rate that accelerates when the
// tank is starving and decelerates when it is flush with energy or
// crowded, with a dawn/dusk/night live-food boost on top, grounded on
// AutoFoodSpawner.calculate_spawn_rate/calculate_live_food_chance.
type AutoFoodController struct {
	cfg   *config.SpawnConfig
	rng   *rand.Rand
	timer int
}

// NewAutoFoodController builds a controller drawing from its own
// named child stream so food-drop randomness never perturbs any other
// subsystem's draw sequence.
func NewAutoFoodController(cfg *config.SpawnConfig, rng *rand.Rand) *AutoFoodController {
	return &AutoFoodController{cfg: cfg, rng: rng}
}

// SpawnRate returns the current interval, in frames, between food
// drops: a baseline rate accelerated under energy stress and slowed
// when the tank is already well fed or crowded. Never returns less
// than 1.
func (a *AutoFoodController) SpawnRate(baseRate float64, totalFishEnergy float64, fishCount int) int {
	rate := baseRate

	switch {
	case totalFishEnergy < a.cfg.UltraLowEnergyThreshold:
		rate = baseRate / 4
	case totalFishEnergy < a.cfg.LowEnergyThreshold:
		rate = baseRate / 3
	case totalFishEnergy > a.cfg.HighEnergyThreshold2 || fishCount > a.cfg.HighPopThreshold2:
		rate = baseRate * 3
	case totalFishEnergy > a.cfg.HighEnergyThreshold1 || fishCount > a.cfg.HighPopThreshold1:
		rate = baseRate * 1.67
	}

	if rate < 1 {
		rate = 1
	}
	return int(rate)
}

// LiveFoodChance returns the probability of spawning a live (random
// mid-water position) food item versus a dropped (top-of-tank) one,
// boosted at dawn/dusk/night and damped at midday, grounded on
// AutoFoodSpawner.calculate_live_food_chance.
func (a *AutoFoodController) LiveFoodChance(timeOfDay float64, isNight bool) float64 {
	chance := a.cfg.LiveFoodBaseFraction

	isDawn := timeOfDay >= 0.15 && timeOfDay < 0.35
	isDay := timeOfDay >= 0.35 && timeOfDay < 0.65
	isDusk := timeOfDay >= 0.65 && timeOfDay < 0.85

	switch {
	case isDawn || isDusk:
		chance = min64(0.95, a.cfg.LiveFoodBaseFraction*a.cfg.DawnDuskBoost)
	case isNight:
		chance = min64(0.85, a.cfg.LiveFoodBaseFraction*a.cfg.NightBoost)
	case isDay:
		chance = max64(0.25, a.cfg.LiveFoodBaseFraction*a.cfg.MiddayDamping)
	}
	return chance
}

// Update advances the drop timer by one frame and, once it reaches the
// current spawn rate, returns a freshly spawned Food item (resetting
// the timer) or nil otherwise. baseRate, screenWidth/Height, and the
// tank's current total fish energy/count/time-of-day/night state are
// supplied by the caller each frame, since the controller holds no
// world state of its own beyond its timer and RNG stream.
func (a *AutoFoodController) Update(baseRate, screenWidth, screenHeight, totalFishEnergy float64, fishCount int, timeOfDay float64, isNight bool, nextID func() components.ID) *components.Food {
	rate := a.SpawnRate(baseRate, totalFishEnergy, fishCount)

	a.timer++
	if a.timer < rate {
		return nil
	}
	a.timer = 0

	foodType := catalog.PickSpawnable(a.rng.Float64())

	var x, y float64
	if a.rng.Float64() < a.LiveFoodChance(timeOfDay, isNight) {
		// Live food appears anywhere in the water column.
		x = a.rng.Float64() * screenWidth
		y = a.rng.Float64() * screenHeight
	} else {
		// Regular food drops from the surface.
		x = a.rng.Float64() * screenWidth
		y = 0
	}

	return &components.Food{
		Locomotion: components.Locomotion{ID: nextID(), X: x, Y: y, W: 6, H: 6},
		Type:       foodType,
	}
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
