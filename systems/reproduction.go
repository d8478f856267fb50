package systems

import (
	"math/rand"

	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/genome"
	"github.com/mbolaris/tankcore/pokerstrategy"
	"github.com/mbolaris/tankcore/spatial"
)

// categoricalMutationBoost is how much higher the mutation rate and
// strength run for inherited behavior/poker-strategy parameters than
// for scalar genome traits, per §4.4's "slightly higher rate/strength
// than scalar traits".
const categoricalMutationBoost = 1.5

// BirthRequest is a fully-formed offspring waiting for the world loop
// to assign it an ID and insert it into the live set.
type BirthRequest struct {
	ParentA, ParentB components.ID
	Genome            genome.Genome
	Behavior          behavior.Instance
	PokerStrategy     pokerstrategy.Instance
	LearnedTraits     genome.LearnedTraits
	Generation        int
}

// mutationParamsFor scales the configured base mutation rate/strength
// by population stress: when the population sits below targetPop, both
// scale up proportionally to the shortfall, biasing exploration during
// near-extinction states per §4.4.
func mutationParamsFor(cfg *config.MutationConfig, currentPop, targetPop int) genome.MutationParams {
	stress := 0.0
	if targetPop > 0 && currentPop < targetPop {
		stress = float64(targetPop-currentPop) / float64(targetPop)
		if stress > cfg.PopulationStressMax {
			stress = cfg.PopulationStressMax
		}
	}
	return genome.MutationParams{
		Rate:     cfg.BaseProbability * (1 + stress),
		Strength: cfg.BaseStrength * (1 + stress),
	}
}

// ResolveMating implements the "search nearby compatible mates" half of
// §4.1 step 8. Eligible fish (not pregnant, off reproduction cooldown,
// above minimum energy) search for a same-species eligible mate within
// ReproductionConfig.MatingDistance; the lowest-ID match wins ties.
// Each fish mates at most once per frame; the initiating fish becomes
// pregnant and stores the mate's identity for ResolveBirths to draw
// from at term.
func ResolveMating(fish []*components.Fish, grid *spatial.Grid, cfg *config.ReproductionConfig) {
	fishKind := components.KindFish
	byID := make(map[components.ID]*components.Fish, len(fish))
	for _, f := range fish {
		byID[f.ID] = f
	}
	staged := make(map[components.ID]bool, len(fish))

	var buf []spatial.Neighbor
	for _, f := range fish {
		if staged[f.ID] || !matingEligible(f, cfg) {
			continue
		}
		buf = grid.QueryRadiusInto(buf[:0], f.X, f.Y, cfg.MatingDistance, f.ID, &fishKind)
		var mateID components.ID
		for _, n := range buf {
			if staged[n.ID] {
				continue
			}
			candidate := byID[n.ID]
			if candidate == nil || candidate.Lifecycle.Species != f.Lifecycle.Species || !matingEligible(candidate, cfg) {
				continue
			}
			if mateID == 0 || n.ID < mateID {
				mateID = n.ID
			}
		}
		if mateID == 0 {
			continue
		}
		mate := byID[mateID]
		staged[f.ID] = true
		staged[mateID] = true

		f.Energy.Current -= cfg.EnergyCost
		f.Reproduction.Pregnant = true
		f.Reproduction.PregnancyTimer = cfg.Gestation
		f.Reproduction.Cooldown = cfg.Cooldown
		mateGenome := mate.Genome
		mateBehavior := mate.Behavior
		matePoker := mate.PokerStrategy
		f.Reproduction.StoredMate = &mateGenome
		f.Reproduction.StoredMateBehavior = &mateBehavior
		f.Reproduction.StoredMatePoker = &matePoker
	}
}

func matingEligible(f *components.Fish, cfg *config.ReproductionConfig) bool {
	return !f.Reproduction.Pregnant &&
		f.Reproduction.Cooldown <= 0 &&
		f.Energy.Current >= cfg.MinEnergy
}

// ResolveBirths counts down every pregnant fish's gestation timer and
// produces a BirthRequest for each that reaches term, combining the
// mother's current genome/behavior/poker identity with the stored mate
// snapshot taken at mating time.
func ResolveBirths(r *rand.Rand, fish []*components.Fish, mutation *config.MutationConfig, currentPop, targetPop int) []BirthRequest {
	params := mutationParamsFor(mutation, currentPop, targetPop)
	categorical := genome.MutationParams{Rate: params.Rate * categoricalMutationBoost, Strength: params.Strength * categoricalMutationBoost}

	var births []BirthRequest
	for _, f := range fish {
		if !f.Reproduction.Pregnant {
			continue
		}
		f.Reproduction.PregnancyTimer--
		if f.Reproduction.PregnancyTimer > 0 {
			continue
		}

		mateGenome := genome.Random(r)
		if f.Reproduction.StoredMate != nil {
			mateGenome = *f.Reproduction.StoredMate
		}
		childGenome := genome.FromParents(r, f.Genome, mateGenome, params)

		childBehavior := f.Behavior.Mutate(r, categorical.Rate, categorical.Strength)

		childPoker := f.PokerStrategy.Mutate(r, categorical.Rate, categorical.Strength)

		mateLearned := genome.LearnedTraits(nil)
		childLearned := genome.InheritLearned(f.LearnedTraits, mateLearned, mutation.LearnedTraitFactor)

		births = append(births, BirthRequest{
			ParentA:       f.ID,
			Genome:        childGenome,
			Behavior:      childBehavior,
			PokerStrategy: childPoker,
			LearnedTraits: childLearned,
			Generation:    f.Lifecycle.Generation + 1,
		})

		f.Reproduction.Pregnant = false
		f.Reproduction.PregnancyTimer = 0
		f.Reproduction.StoredMate = nil
		f.Reproduction.StoredMateBehavior = nil
		f.Reproduction.StoredMatePoker = nil
	}
	return births
}
