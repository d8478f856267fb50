// Package world composes every other package into the single
// deterministic World backend: reset/step/snapshot/metrics/commands,
// built from entity slices plus a spatial grid and a fixed per-frame
// phase order, exposed as a headless reset/step contract rather than
// a windowed game loop.
package world

import (
	"log/slog"
	"math/rand"

	"github.com/mbolaris/tankcore/catalog"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/ecosystem"
	"github.com/mbolaris/tankcore/events"
	"github.com/mbolaris/tankcore/genome"
	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/pokerstrategy"
	"github.com/mbolaris/tankcore/rng"
	"github.com/mbolaris/tankcore/spatial"
	"github.com/mbolaris/tankcore/spawners"
	"github.com/mbolaris/tankcore/systems"
	"github.com/mbolaris/tankcore/tankerr"
)

// defaultLogger is the package-level logger every World logs through
// unless the embedding caller overrides it with SetLogger. Log lines
// never carry wall-clock timings or anything else that would make two
// runs of the same seed diverge in observable state; they exist for
// operators, not for the simulation itself to read back.
var defaultLogger = slog.Default()

// SetLogger overrides the logger every subsequently constructed World
// uses: a package-level slog sink an embedding host can redirect
// without touching the global slog.SetDefault.
func SetLogger(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// cellSize is the spatial grid's bucket size. 64 was chosen to keep
// query fan-out small at the tank's typical entity density while
// still covering the largest configured interaction radius (poker's
// MaxProximity) in a handful of cells.
const cellSize = 64.0

// gridCastleMargin keeps the single decorative castle away from the
// tank edges regardless of screen size.
const gridCastleMargin = 80.0

// World is the single deterministic simulation instance. All mutation
// happens inside Step; callers running a World on a background thread
// must serialize Reset/Step/Snapshot/Command behind one mutex
// themselves, since the core holds no lock of its own.
type World struct {
	cfg *config.Config
	log *slog.Logger

	rngProvider *rng.Provider
	autoFoodRNG *rand.Rand
	emergencyRNG *rand.Rand
	reproRNG    *rand.Rand
	pokerRNG    *rand.Rand
	postPokerRNG *rand.Rand

	bounds systems.Bounds
	grid   *spatial.Grid
	// fishIndex mirrors the fish slice as an ID-keyed lookup, rebuilt
	// alongside the grid each frame so behavior-context assembly can
	// resolve a neighbor's full record without a linear scan.
	fishIndex map[components.ID]*components.Fish

	frame       int
	timeOfDay   float64
	isNight     bool
	activityMod float64

	paused      bool
	fastForward bool

	fish    []*components.Fish
	crabs   []*components.Crab
	plants  []*components.Plant
	foods   []*components.Food
	castles []*components.Castle

	bus        *events.Bus
	eco        *ecosystem.Ecosystem

	autoFood  *spawners.AutoFoodController
	emergency *spawners.EmergencyFishSpawner

	windowRolloverFrame int

	// lastSnapshotEntities is the previous full snapshot's entities
	// keyed by ID, kept around so buildDeltaSnapshot only has to diff
	// rather than re-serialize every entity every frame.
	lastSnapshotEntities map[components.ID]EntitySnapshot

	// postPokerPregnancies tracks gestation for the winner-offers-
	// reproduction mechanic separately from ordinary courtship; see
	// poker.go.
	postPokerPregnancies map[components.ID]*postPokerPregnancy
}

// New constructs a World from a validated config and a root seed, and
// spawns its initial population. This is the reset(seed, config) entry
// point an embedding host calls to start or restart a run;
// overrideYAML, if non-nil, is merged onto config.Default() before
// validation.
func New(seed int64, overrideYAML []byte) (*World, *StepResult, error) {
	cfg, err := config.Default()
	if err != nil {
		return nil, nil, err
	}
	if overrideYAML != nil {
		if err := cfg.Merge(overrideYAML); err != nil {
			return nil, nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	provider := rng.New(seed)
	w := &World{
		cfg:          cfg,
		log:          defaultLogger,
		rngProvider:  provider,
		autoFoodRNG:  provider.Child("autofood"),
		emergencyRNG: provider.Child("emergency"),
		reproRNG:     provider.Child("reproduction"),
		pokerRNG:     provider.Child("poker"),
		postPokerRNG: provider.Child("postpoker"),
		lastSnapshotEntities: make(map[components.ID]EntitySnapshot),
		postPokerPregnancies: make(map[components.ID]*postPokerPregnancy),
		bounds: systems.Bounds{
			Width:    cfg.Screen.Width,
			Height:   cfg.Screen.Height,
			Toroidal: cfg.Screen.Toroidal,
		},
		bus: events.NewBus(),
	}
	w.grid = spatial.New(cfg.Screen.Width, cfg.Screen.Height, cellSize, cfg.Screen.Toroidal)
	w.eco = ecosystem.New(cfg.Population.Max, cfg.Ecosystem.MaxLineageLogSize, DayLengthFrames, cfg.Ecosystem.MaxEcosystemEvents)
	w.autoFood = spawners.NewAutoFoodController(&cfg.Spawn, w.autoFoodRNG)
	w.emergency = spawners.NewEmergencyFishSpawner(cfg.Spawn.EmergencyCooldown, w.emergencyRNG)

	w.spawnInitialPopulation()
	w.rebuildGrid()
	w.eco.Energy.SetWindowStart(w.totalFishEnergy())
	w.windowRolloverFrame = 0
	w.log.Info("world reset", "seed", seed, "fish", len(w.fish), "crabs", len(w.crabs), "plants", len(w.plants))

	result := w.buildStepResult(nil)
	return w, result, nil
}

// totalFishEnergy sums every live fish's current energy, the
// currentLiveFishEnergy input ecosystem.Snapshot and EnergyLedger's
// window-rollover baseline both need.
func (w *World) totalFishEnergy() float64 {
	var total float64
	for _, f := range w.fish {
		total += f.Energy.Current
	}
	return total
}

// Reset reinitializes the World in place with a fresh seed and
// (optional) config override, equivalent to calling New again but
// reusing the existing value's address for callers that hold a stable
// *World reference.
func (w *World) Reset(seed int64, overrideYAML []byte) (*StepResult, error) {
	fresh, result, err := New(seed, overrideYAML)
	if err != nil {
		return nil, err
	}
	*w = *fresh
	return result, nil
}

// spawnInitialPopulation creates the starting fish, crab, and plant
// population from PopulationConfig, plus one decorative castle.
// DiversitySpawnTries fish are drawn per slot and the one whose
// species/algorithm combination is rarest so far is kept, nudging
// initial diversity upward the same way EmergencyFishSpawner's single
// random draw does not bother to.
func (w *World) spawnInitialPopulation() {
	r := w.rngProvider.Rand()
	seenSpecies := make(map[catalog.Species]int)
	seenAlgorithm := make(map[string]int)

	for i := 0; i < w.cfg.Population.InitialFishCount; i++ {
		best := w.diverseFishCandidate(r, seenSpecies, seenAlgorithm)
		seenSpecies[best.Lifecycle.Species]++
		seenAlgorithm[best.Behavior.Name]++
		w.fish = append(w.fish, best)
		w.emitBirth(best, 0, best.Lifecycle.Generation)
	}

	for i := 0; i < w.cfg.Population.InitialCrabCount; i++ {
		w.crabs = append(w.crabs, w.newCrab(r))
	}

	for i := 0; i < w.cfg.Population.InitialPlantCount; i++ {
		w.plants = append(w.plants, w.newPlant(r))
	}

	w.castles = append(w.castles, &components.Castle{
		Locomotion: components.Locomotion{
			ID: w.eco.Population.NextID(),
			X:  w.cfg.Screen.Width / 2,
			Y:  w.cfg.Screen.Height - gridCastleMargin,
			W:  80, H: 60,
		},
	})
}

// diverseFishCandidate draws DiversitySpawnTries candidate fish and
// keeps the one whose (species, algorithm) pair has been seen least
// often so far, a cheap diversity nudge grounded on the original
// implementation's create_initial_population spawning several
// distinct species/algorithm combinations deliberately rather than
// drawing everything uniformly at random.
func (w *World) diverseFishCandidate(r *rand.Rand, seenSpecies map[catalog.Species]int, seenAlgorithm map[string]int) *components.Fish {
	tries := w.cfg.Population.DiversitySpawnTries
	if tries < 1 {
		tries = 1
	}
	var best *components.Fish
	bestScore := -1
	for i := 0; i < tries; i++ {
		candidate := w.newFish(r)
		score := seenSpecies[candidate.Lifecycle.Species] + seenAlgorithm[candidate.Behavior.Name]
		if best == nil || score < bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}

// newFish builds one freshly spawned fish with random genome,
// behavior, poker strategy, species, and position, generation 0.
func (w *World) newFish(r *rand.Rand) *components.Fish {
	g := genome.Random(r)
	species := catalog.RandomSpecies(r.Float64())
	margin := w.cfg.Population.SpawnMarginPixels
	maxAge := w.cfg.LifeStage.BaseMaxAge + r.Intn(w.cfg.LifeStage.MaxAgeJitter+1)
	maxEnergy := w.cfg.Energy.MaxFish * g.MaxEnergyModifier

	return &components.Fish{
		Locomotion: components.Locomotion{
			ID: w.eco.Population.NextID(),
			X:  margin + r.Float64()*(w.cfg.Screen.Width-2*margin),
			Y:  margin + r.Float64()*(w.cfg.Screen.Height-2*margin),
			W:  12, H: 8,
		},
		Genome:        g,
		Behavior:      behavior.RandomInstance(r),
		PokerStrategy: pokerstrategy.RandomInstance(r),
		Energy:        components.Energy{Current: w.cfg.Energy.InitialFish, Max: maxEnergy},
		Lifecycle:     components.Lifecycle{MaxAge: maxAge, Species: species, Generation: 0},
	}
}

func (w *World) newCrab(r *rand.Rand) *components.Crab {
	margin := w.cfg.Population.SpawnMarginPixels
	return &components.Crab{
		Locomotion: components.Locomotion{
			ID: w.eco.Population.NextID(),
			X:  margin + r.Float64()*(w.cfg.Screen.Width-2*margin),
			Y:  w.cfg.Screen.Height - gridCastleMargin/2,
			W:  16, H: 10,
		},
		Energy: w.cfg.Crab.InitialEnergy,
	}
}

func (w *World) newPlant(r *rand.Rand) *components.Plant {
	margin := w.cfg.Population.SpawnMarginPixels
	return &components.Plant{
		Locomotion: components.Locomotion{
			ID: w.eco.Population.NextID(),
			X:  margin + r.Float64()*(w.cfg.Screen.Width-2*margin),
			Y:  w.cfg.Screen.Height - margin,
			W:  10, H: 40,
		},
		Type: components.PlantType(r.Intn(3)),
	}
}

func (w *World) emitBirth(f *components.Fish, parent components.ID, generation int) {
	w.bus.Emit(events.Event{
		Kind:        events.Birth,
		Frame:       w.frame,
		EntityID:    f.ID,
		SecondaryID: parent,
		Algorithm:   f.Behavior.Name,
		Generation:  generation,
		ColorHue:    f.Genome.ColorHue,
		EnergyDelta: f.Energy.Current,
	})
}

// Command is the external command surface an embedding host issues
// against a running World: pause/resume/reset, fast-forward toggling,
// and the add_food/spawn_fish population commands.
type Command struct {
	Name        string
	FastForward bool
	FoodCount   int
	Seed        int64
	OverrideYAML []byte
}

// ApplyCommand dispatches one external command against the active
// world. Unsupported command names are returned as a structured
// tankerr.UnsupportedCommand error rather than panicking, per §7.
func (w *World) ApplyCommand(c Command) (*StepResult, error) {
	switch c.Name {
	case "pause":
		w.paused = true
		return nil, nil
	case "resume":
		w.paused = false
		return nil, nil
	case "fast_forward":
		w.fastForward = c.FastForward
		return nil, nil
	case "reset":
		return w.Reset(c.Seed, c.OverrideYAML)
	case "add_food":
		w.addFood(c.FoodCount)
		return nil, nil
	case "spawn_fish":
		w.fish = append(w.fish, w.newFish(w.rngProvider.Rand()))
		return nil, nil
	default:
		return nil, tankerr.Command("unrecognized command %q", c.Name)
	}
}

func (w *World) addFood(n int) {
	if n <= 0 {
		n = 1
	}
	r := w.rngProvider.Rand()
	for i := 0; i < n; i++ {
		foodType := catalog.PickSpawnable(r.Float64())
		w.foods = append(w.foods, &components.Food{
			Locomotion: components.Locomotion{
				ID: w.eco.Population.NextID(),
				X:  r.Float64() * w.cfg.Screen.Width,
				Y:  0,
				W:  6, H: 6,
			},
			Type: foodType,
		})
	}
}

// ListAgents returns every live fish's entity ID, in stable order.
func (w *World) ListAgents() []components.ID {
	out := make([]components.ID, len(w.fish))
	for i, f := range w.fish {
		out[i] = f.ID
	}
	return out
}
