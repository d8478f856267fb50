// Package config defines the tunable parameters a World is constructed
// with. Defaults are embedded as YAML and merged with whatever the
// caller supplies to reset, following an embed-and-unmarshal pattern.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mbolaris/tankcore/tankerr"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ScreenConfig bounds the world's toroidal/bounded coordinate space.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Toroidal selects wrap-around neighbor queries and movement;
	// false clamps entities to the rectangle instead.
	Toroidal bool `yaml:"toroidal"`
}

// PopulationConfig bounds how many fish the world will carry.
type PopulationConfig struct {
	Max                int     `yaml:"max"`
	CriticalThreshold  int     `yaml:"critical_threshold"`
	InitialFishCount    int     `yaml:"initial_fish_count"`
	InitialCrabCount    int     `yaml:"initial_crab_count"`
	InitialPlantCount   int     `yaml:"initial_plant_count"`
	DiversitySpawnTries int     `yaml:"diversity_spawn_tries"`
	SpawnMarginPixels   float64 `yaml:"spawn_margin_pixels"`
}

// LifeStageConfig holds the frame-age boundaries of the six life
// stages named in the data model (fry through elder).
type LifeStageConfig struct {
	FryMax        int `yaml:"fry_max"`
	JuvenileMax   int `yaml:"juvenile_max"`
	YoungAdultMax int `yaml:"young_adult_max"`
	AdultMax      int `yaml:"adult_max"`
	MatureMax     int `yaml:"mature_max"`
	// Beyond MatureMax an entity is Elder; there is no elder ceiling.

	// BaseMaxAge/MaxAgeJitter set a newly spawned fish's lifespan as
	// BaseMaxAge plus a uniform random draw in [0, MaxAgeJitter), so
	// old-age deaths spread out rather than landing on a single frame.
	BaseMaxAge  int `yaml:"base_max_age"`
	MaxAgeJitter int `yaml:"max_age_jitter"`
}

// EnergyConfig holds the energy thresholds that gate behavior
// (flee/forage aggressiveness) and survival.
type EnergyConfig struct {
	CriticalThreshold float64 `yaml:"critical_threshold"`
	LowThreshold      float64 `yaml:"low_threshold"`
	SafeThreshold     float64 `yaml:"safe_threshold"`
	StarvationAt      float64 `yaml:"starvation_at"`
	InitialFish       float64 `yaml:"initial_fish"`
	InitialCrab       float64 `yaml:"initial_crab"`
	MaxFish           float64 `yaml:"max_fish"`
}

// ReproductionConfig governs ordinary (non-poker) mating.
type ReproductionConfig struct {
	MinEnergy     float64 `yaml:"min_energy"`
	EnergyCost    float64 `yaml:"energy_cost"`
	Cooldown      int     `yaml:"cooldown"`
	Gestation     int     `yaml:"gestation"`
	MatingDistance float64 `yaml:"mating_distance"`
}

// PostPokerReproductionConfig governs the winner-offers-reproduction
// mechanic: a resolved poker hand can seed a pregnancy biased toward
// the winner's genome.
type PostPokerReproductionConfig struct {
	EnergyThreshold  float64 `yaml:"energy_threshold"`
	WinnerProb       float64 `yaml:"winner_prob"`
	LoserProb        float64 `yaml:"loser_prob"`
	WinnerDNAWeight  float64 `yaml:"winner_dna_weight"`
	MatingDistance   float64 `yaml:"mating_distance"`
}

// MutationConfig governs Gaussian mutation strength/probability and
// the population-stress scaling described in §3/§9.
type MutationConfig struct {
	BaseProbability     float64 `yaml:"base_probability"`
	BaseStrength        float64 `yaml:"base_strength"`
	BehaviorSwapProb    float64 `yaml:"behavior_swap_probability"`
	LearnedTraitFactor  float64 `yaml:"learned_trait_factor"`
	PopulationStressMax float64 `yaml:"population_stress_max"`
}

// CrabConfig holds crab-specific predation constants.
type CrabConfig struct {
	InitialEnergy   float64 `yaml:"initial_energy"`
	AttackTransfer  float64 `yaml:"attack_energy_transfer"`
	AttackDamage    float64 `yaml:"attack_damage"`
	AttackCooldown  int     `yaml:"attack_cooldown"`
}

// PlantConfig holds plant production constants.
type PlantConfig struct {
	Enabled           bool    `yaml:"enabled"`
	ProductionInterval int    `yaml:"production_interval"`
	ProductionEnergy  float64 `yaml:"production_energy"`
	ProductionChance  float64 `yaml:"production_chance"`
}

// SpawnConfig governs the auto-food controller and emergency fish
// spawner described in §4.7/§12.
type SpawnConfig struct {
	BaseFoodRate         float64 `yaml:"base_food_rate"`
	LiveFoodBaseFraction float64 `yaml:"live_food_base_fraction"`
	DawnDuskBoost        float64 `yaml:"dawn_dusk_boost"`
	NightBoost           float64 `yaml:"night_boost"`
	MiddayDamping        float64 `yaml:"midday_damping"`
	EmergencyCooldown    int     `yaml:"emergency_cooldown"`

	// UltraLowEnergyThreshold/LowEnergyThreshold gate emergency and
	// low-energy spawn-rate acceleration; HighEnergyThreshold1/2 and
	// HighPopThreshold1/2 gate spawn-rate deceleration when the tank
	// is already well fed or crowded.
	UltraLowEnergyThreshold float64 `yaml:"ultra_low_energy_threshold"`
	LowEnergyThreshold      float64 `yaml:"low_energy_threshold"`
	HighEnergyThreshold1    float64 `yaml:"high_energy_threshold_1"`
	HighEnergyThreshold2    float64 `yaml:"high_energy_threshold_2"`
	HighPopThreshold1       int     `yaml:"high_pop_threshold_1"`
	HighPopThreshold2       int     `yaml:"high_pop_threshold_2"`
}

// PokerConfig governs the poker subsystem's economy.
type PokerConfig struct {
	Enabled               bool    `yaml:"enabled"`
	HouseCutFraction      float64 `yaml:"house_cut_fraction"`
	MinEnergyToSit        float64 `yaml:"min_energy_to_sit"`
	MinProximity          float64 `yaml:"min_proximity"`
	MaxProximity          float64 `yaml:"max_proximity"`
	Ante                  float64 `yaml:"ante"`
	MaxPlayersPerHand     int     `yaml:"max_players_per_hand"`
	Cooldown              int     `yaml:"cooldown"`
	MaxEvents             int     `yaml:"max_events"`
	EventMaxAgeFrames      int    `yaml:"event_max_age_frames"`
	PostPoker PostPokerReproductionConfig `yaml:"post_poker_reproduction"`
}

// EcosystemConfig bounds the size of the bookkeeping logs kept by the
// ecosystem facade (§4.6/§9).
type EcosystemConfig struct {
	MaxLineageLogSize  int `yaml:"max_lineage_log_size"`
	MaxEcosystemEvents int `yaml:"max_ecosystem_events"`
}

// PhysicsConfig holds the fixed-step timing parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// Config is the full set of parameters a World is constructed with.
// Fields absent from a caller-supplied override document keep their
// embedded default, via a merge-over-defaults load.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Physics      PhysicsConfig      `yaml:"physics"`
	Population   PopulationConfig   `yaml:"population"`
	LifeStage    LifeStageConfig    `yaml:"life_stage"`
	Energy       EnergyConfig       `yaml:"energy"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Mutation     MutationConfig     `yaml:"mutation"`
	Crab         CrabConfig         `yaml:"crab"`
	Plant        PlantConfig        `yaml:"plant"`
	Spawn        SpawnConfig        `yaml:"spawn"`
	Poker        PokerConfig        `yaml:"poker"`
	Ecosystem    EcosystemConfig    `yaml:"ecosystem"`
}

// Default returns a fresh Config populated from the embedded defaults.
// Each call returns an independent value; callers never share a
// package-level singleton, since §5 allows multiple independent worlds
// to run in the same process with different configurations.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, tankerr.Configuration("parsing embedded defaults: %v", err)
	}
	return cfg, nil
}

// Merge overlays a caller-supplied YAML override document onto cfg.
// Fields absent from data keep their current value. This is how
// reset(config) in §6 applies a partial override map.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return tankerr.Configuration("parsing config override: %v", err)
	}
	return nil
}

// Validate checks the bounds and enum-like invariants a reset must
// enforce before a World is constructed. It never runs from step.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return tankerr.Configuration("screen dimensions must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}
	if c.Physics.DT <= 0 {
		return tankerr.Configuration("physics.dt must be positive, got %g", c.Physics.DT)
	}
	if c.Population.Max <= 0 {
		return tankerr.Configuration("population.max must be positive, got %d", c.Population.Max)
	}
	if c.Population.CriticalThreshold < 0 || c.Population.CriticalThreshold > c.Population.Max {
		return tankerr.Configuration("population.critical_threshold %d out of [0,%d]", c.Population.CriticalThreshold, c.Population.Max)
	}
	if !(c.LifeStage.FryMax < c.LifeStage.JuvenileMax &&
		c.LifeStage.JuvenileMax < c.LifeStage.YoungAdultMax &&
		c.LifeStage.YoungAdultMax < c.LifeStage.AdultMax &&
		c.LifeStage.AdultMax < c.LifeStage.MatureMax) {
		return tankerr.Configuration("life_stage boundaries must be strictly increasing: %+v", c.LifeStage)
	}
	if c.Energy.CriticalThreshold < 0 || c.Energy.CriticalThreshold > c.Energy.LowThreshold ||
		c.Energy.LowThreshold > c.Energy.SafeThreshold {
		return tankerr.Configuration("energy thresholds must satisfy 0 <= critical <= low <= safe")
	}
	if c.Mutation.BaseProbability < 0 || c.Mutation.BaseProbability > 1 {
		return tankerr.Configuration("mutation.base_probability must be in [0,1], got %g", c.Mutation.BaseProbability)
	}
	if c.Poker.HouseCutFraction < 0 || c.Poker.HouseCutFraction >= 1 {
		return tankerr.Configuration("poker.house_cut_fraction must be in [0,1), got %g", c.Poker.HouseCutFraction)
	}
	if c.Poker.MinProximity < 0 || c.Poker.MinProximity >= c.Poker.MaxProximity {
		return tankerr.Configuration("poker.min_proximity must be < poker.max_proximity, got %g >= %g", c.Poker.MinProximity, c.Poker.MaxProximity)
	}
	if c.Poker.MaxPlayersPerHand < 2 {
		return tankerr.Configuration("poker.max_players_per_hand must be >= 2, got %d", c.Poker.MaxPlayersPerHand)
	}
	if c.Poker.PostPoker.WinnerDNAWeight < 0 || c.Poker.PostPoker.WinnerDNAWeight > 1 {
		return tankerr.Configuration("poker.post_poker_reproduction.winner_dna_weight must be in [0,1], got %g", c.Poker.PostPoker.WinnerDNAWeight)
	}
	if c.Ecosystem.MaxLineageLogSize <= 0 {
		return tankerr.Configuration("ecosystem.max_lineage_log_size must be positive, got %d", c.Ecosystem.MaxLineageLogSize)
	}
	if c.LifeStage.BaseMaxAge <= 0 {
		return tankerr.Configuration("life_stage.base_max_age must be positive, got %d", c.LifeStage.BaseMaxAge)
	}
	if c.Spawn.HighPopThreshold1 >= c.Spawn.HighPopThreshold2 {
		return tankerr.Configuration("spawn.high_pop_threshold_1 must be < high_pop_threshold_2, got %d >= %d", c.Spawn.HighPopThreshold1, c.Spawn.HighPopThreshold2)
	}
	return nil
}

// String renders a compact summary, useful in log lines at reset.
func (c *Config) String() string {
	return fmt.Sprintf("Config{screen=%gx%g max_pop=%d poker=%v plant=%v}",
		c.Screen.Width, c.Screen.Height, c.Population.Max, c.Poker.Enabled, c.Plant.Enabled)
}
