package spawners

import (
	"math/rand"

	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/genome"
	"github.com/mbolaris/tankcore/pokerstrategy"
)

// EmergencyFishSpawner injects a fresh, genetically random fish when
// the population is low, gated by a cooldown and a probability curve
// that decays quadratically as the population approaches its
// configured maximum, grounded on EmergencyFishSpawner.should_spawn.
type EmergencyFishSpawner struct {
	cooldownFrames int
	lastSpawnFrame int
	rng            *rand.Rand
}

// NewEmergencyFishSpawner builds a spawner that allows its first spawn
// immediately (the cooldown window is considered already elapsed at
// construction), matching the original's `-cooldown_frames` initial
// value.
func NewEmergencyFishSpawner(cooldownFrames int, rng *rand.Rand) *EmergencyFishSpawner {
	return &EmergencyFishSpawner{
		cooldownFrames: cooldownFrames,
		lastSpawnFrame: -cooldownFrames,
		rng:            rng,
	}
}

// ShouldSpawn reports whether an emergency fish should appear this
// frame: never above the population cap, never inside the cooldown
// window, always below criticalThreshold, and otherwise with
// probability (1 - populationRatio)^2 * 0.3, a quadratic curve
// that falls toward zero as the population approaches maxPopulation.
func (s *EmergencyFishSpawner) ShouldSpawn(fishCount, maxPopulation, criticalThreshold, currentFrame int) bool {
	if fishCount >= maxPopulation {
		return false
	}
	if currentFrame-s.lastSpawnFrame < s.cooldownFrames {
		return false
	}

	var spawnProbability float64
	if fishCount < criticalThreshold {
		spawnProbability = 1.0
	} else {
		span := float64(maxPopulation - criticalThreshold)
		populationRatio := float64(fishCount-criticalThreshold) / span
		spawnProbability = (1.0 - populationRatio) * (1.0 - populationRatio) * 0.3
	}

	return s.rng.Float64() < spawnProbability
}

// Spawn builds a brand-new fish with a uniformly random genome,
// behavior, poker strategy, and species, at a random position inset
// from the tank edges by marginPixels, and records currentFrame as the
// spawner's last-spawn time regardless of whether the caller actually
// keeps the fish. Grounded on EmergencyFishSpawner.spawn, generalized
// from the original's fixed movement-strategy/sprite assignment to
// this module's composable behavior/pokerstrategy catalogs.
func (s *EmergencyFishSpawner) Spawn(cfg *config.Config, screenWidth, screenHeight, marginPixels float64, currentFrame int, nextID func() components.ID) *components.Fish {
	s.lastSpawnFrame = currentFrame

	g := genome.Random(s.rng)
	species := catalog.RandomSpecies(s.rng.Float64())
	maxAge := cfg.LifeStage.BaseMaxAge + s.rng.Intn(cfg.LifeStage.MaxAgeJitter+1)
	maxEnergy := cfg.Energy.MaxFish * g.MaxEnergyModifier

	x := marginPixels + s.rng.Float64()*(screenWidth-2*marginPixels)
	y := marginPixels + s.rng.Float64()*(screenHeight-2*marginPixels)

	return &components.Fish{
		Locomotion: components.Locomotion{ID: nextID(), X: x, Y: y, W: 12, H: 8},
		Genome:     g,
		Behavior:   behavior.RandomInstance(s.rng),
		PokerStrategy: pokerstrategy.RandomInstance(s.rng),
		Energy: components.Energy{
			Current: cfg.Energy.InitialFish,
			Max:     maxEnergy,
		},
		Lifecycle: components.Lifecycle{
			MaxAge:     maxAge,
			Species:    species,
			Generation: 0,
		},
	}
}
