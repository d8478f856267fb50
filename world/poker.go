package world

import (
	"sort"

	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/ecosystem"
	"github.com/mbolaris/tankcore/events"
	"github.com/mbolaris/tankcore/genome"
	"github.com/mbolaris/tankcore/poker"
	"github.com/mbolaris/tankcore/systems"
)

// pokerHandle is one resolved hand's bookkeeping, carried from
// resolvePoker through to the ecosystem.RecordHand call once the
// frame's event batch has drained, since a hand's full participant
// list doesn't fit the flat events.Event shape Record consumes.
type pokerHandle struct {
	results     map[components.ID]ecosystem.HandResult
	algorithmOf map[components.ID]string
	houseCut    float64
}

// postPokerPregnancy is a pregnancy seeded by the winner-offers-
// reproduction mechanic rather than ordinary courtship. It is tracked
// separately from components.Fish.Reproduction (which
// systems.ResolveMating/ResolveBirths own exclusively) so its
// winner-weighted crossover never has to fight the 50/50 blend
// ResolveBirths always applies.
type postPokerPregnancy struct {
	timer         int
	partnerGenome genome.Genome
	generation    int
}

// resolvePoker stages and plays every eligible poker hand this frame.
// Plant participation (poker.RolePlant) is deliberately never wired
// here: components.Plant carries no Energy field to stake, so a
// mixed fish/plant hand has nothing honest to ante from a plant's
// side. The fish-only economy below exercises the same poker.PlayHand
// path, house cut, and cooldown bookkeeping a mixed hand would.
func (w *World) resolvePoker(fishByID map[components.ID]*components.Fish) []pokerHandle {
	cfg := &w.cfg.Poker
	if !cfg.Enabled {
		return nil
	}
	groups := systems.StagePokerGames(w.fish, w.grid, cfg)
	if len(groups) == 0 {
		return nil
	}

	handles := make([]pokerHandle, 0, len(groups))
	for _, group := range groups {
		if handle := w.playGroup(group.ParticipantIDs, fishByID, cfg); handle != nil {
			handles = append(handles, *handle)
		}
	}
	return handles
}

// playGroup resolves one staged group into a poker hand, applying its
// energy events back onto the live fish and attempting the
// post-poker reproduction offer before returning the hand's
// ecosystem-facing bookkeeping.
func (w *World) playGroup(group []components.ID, fishByID map[components.ID]*components.Fish, cfg *config.PokerConfig) *pokerHandle {
	participants := make([]poker.Participant, 0, len(group))
	for _, id := range group {
		if f := fishByID[id]; f != nil {
			participants = append(participants, poker.Participant{
				ID: uint64(id), Role: poker.RoleFish, Strategy: f.PokerStrategy, Energy: f.Energy.Current,
			})
		}
	}
	if len(participants) < 2 {
		return nil
	}
	buttonIdx := w.pokerRNG.Intn(len(participants))

	result, err := poker.PlayHand(w.pokerRNG, participants, buttonIdx, poker.Config{Ante: cfg.Ante, HouseCut: cfg.HouseCutFraction})
	if err != nil {
		w.log.Error("poker hand failed to resolve", "error", err, "frame", w.frame, "participants", len(participants))
		return nil
	}

	winnerSet := make(map[uint64]bool, len(result.WinnerIDs))
	for _, id := range result.WinnerIDs {
		winnerSet[id] = true
	}

	results := make(map[components.ID]ecosystem.HandResult, len(participants))
	algorithmOf := make(map[components.ID]string, len(participants))
	var winnerID, loserID components.ID
	bestLoserEnergy := -1.0

	buttonID := uint64(group[buttonIdx])
	for _, ev := range result.Events {
		if ev.Category == poker.EventPokerHouseCut {
			continue
		}
		id := components.ID(ev.ParticipantID)
		f := fishByID[id]
		if f == nil {
			continue
		}
		f.Energy.Current = clampF(f.Energy.Current+ev.Delta, 0, f.Energy.Max)
		f.Poker.Cooldown = cfg.Cooldown
		f.Poker.Record.Games++

		won := winnerSet[ev.ParticipantID]
		if won {
			f.Poker.Record.Wins++
			winnerID = id
		} else {
			f.Poker.Record.Losses++
			if f.Energy.Current > bestLoserEnergy {
				bestLoserEnergy = f.Energy.Current
				loserID = id
			}
		}

		rank := 0
		if hv, ok := result.HandValues[ev.ParticipantID]; ok {
			rank = int(hv.Rank)
		}
		algorithmOf[id] = f.Behavior.Name
		results[id] = ecosystem.HandResult{
			Won: won, NetEnergy: ev.Delta, HandRank: rank,
			ReachedShowdown: rank > 0, OnButton: ev.ParticipantID == buttonID,
		}
	}

	w.bus.Emit(events.Event{Kind: events.Poker, Frame: w.frame, EntityID: winnerID, SecondaryID: loserID, EnergyDelta: result.Pot})

	if winnerID != 0 && loserID != 0 {
		w.offerPostPokerReproduction(fishByID[winnerID], fishByID[loserID])
	}

	return &pokerHandle{results: results, algorithmOf: algorithmOf, houseCut: result.HouseCut}
}

// offerPostPokerReproduction implements the supplemented winner-
// offers-reproduction mechanic: if both fish clear the configured
// energy threshold and sit within mating distance, the winner
// probabilistically offers and the loser probabilistically accepts,
// seeding a postPokerPregnancy on the loser that, unlike ordinary
// courtship, is resolved by advancePostPokerPregnancies with the
// winner's genome dominating the crossover blend (WinnerDNAWeight).
func (w *World) offerPostPokerReproduction(winner, loser *components.Fish) {
	pp := w.cfg.Poker.PostPoker
	if winner == nil || loser == nil || winner.Lifecycle.Species != loser.Lifecycle.Species {
		return
	}
	if winner.Energy.Current < pp.EnergyThreshold || loser.Energy.Current < pp.EnergyThreshold {
		return
	}
	if loser.Reproduction.Pregnant || loser.Reproduction.Cooldown > 0 {
		return
	}
	if _, already := w.postPokerPregnancies[loser.ID]; already {
		return
	}
	dx, dy := w.grid.Delta(winner.X, winner.Y, loser.X, loser.Y)
	if dx*dx+dy*dy > pp.MatingDistance*pp.MatingDistance {
		return
	}
	if w.postPokerRNG.Float64() >= pp.WinnerProb || w.postPokerRNG.Float64() >= pp.LoserProb {
		return
	}

	// Cooldown (not Pregnant/PregnancyTimer/StoredMate) is what keeps
	// this fish off ResolveMating's market and out of ResolveBirths'
	// scan for the whole gestation window: those two fields are
	// ResolveMating/ResolveBirths' own state, and setting them here
	// would hand this pregnancy to ResolveBirths' plain 50/50
	// genome.FromParents path on top of advancePostPokerPregnancies'
	// weighted one, producing two births from a single bearer.
	loser.Reproduction.Cooldown = w.cfg.Reproduction.Gestation + w.cfg.Reproduction.Cooldown
	w.postPokerPregnancies[loser.ID] = &postPokerPregnancy{
		timer:         w.cfg.Reproduction.Gestation,
		partnerGenome: winner.Genome,
		generation:    loser.Lifecycle.Generation,
	}

	w.eco.Energy.RecordBurn(w.frame, ecosystem.SourceReproduction, w.cfg.Reproduction.EnergyCost)
	w.eco.Fitness.RecordReproduction(loser.Behavior.Name)
}

// advancePostPokerPregnancies counts down every tracked post-poker
// pregnancy and, at term, builds a BirthRequest-shaped child using
// genome.FromParentsWeighted so the winner's DNA dominates the blend,
// mirroring systems.ResolveBirths' categorical-mutation-boost
// treatment of inherited behavior/poker identity. Bearers that died
// mid-gestation (absent from fishByID) are dropped silently: their
// pregnancy state died with them.
//
// Timer decrement and dead-bearer pruning happen in one map pass, but
// the RNG-consuming, ID-issuing child construction is deferred to a
// second pass over bearer IDs sorted ascending: Go's map iteration
// order is randomized per run, and when two or more pregnancies come
// to term in the same frame, consuming w.postPokerRNG/NextID in
// iteration order would make the resulting state depend on that
// randomized order.
func (w *World) advancePostPokerPregnancies(fishByID map[components.ID]*components.Fish) {
	if len(w.postPokerPregnancies) == 0 {
		return
	}

	var terminating []components.ID
	for id, p := range w.postPokerPregnancies {
		bearer := fishByID[id]
		if bearer == nil {
			delete(w.postPokerPregnancies, id)
			continue
		}
		p.timer--
		if p.timer > 0 {
			continue
		}
		terminating = append(terminating, id)
	}
	if len(terminating) == 0 {
		return
	}
	sort.Slice(terminating, func(i, j int) bool { return terminating[i] < terminating[j] })

	params := genome.MutationParams{Rate: w.cfg.Mutation.BaseProbability, Strength: w.cfg.Mutation.BaseStrength}
	categorical := genome.MutationParams{Rate: params.Rate * 1.5, Strength: params.Strength * 1.5}

	for _, id := range terminating {
		bearer := fishByID[id]
		p := w.postPokerPregnancies[id]
		delete(w.postPokerPregnancies, id)

		childGenome := genome.FromParentsWeighted(w.postPokerRNG, p.partnerGenome, bearer.Genome, w.cfg.Poker.PostPoker.WinnerDNAWeight, params)
		childBehavior := bearer.Behavior.Mutate(w.postPokerRNG, categorical.Rate, categorical.Strength)
		childPoker := bearer.PokerStrategy.Mutate(w.postPokerRNG, categorical.Rate, categorical.Strength)
		childLearned := genome.InheritLearned(bearer.LearnedTraits, nil, w.cfg.Mutation.LearnedTraitFactor)

		maxAge := w.cfg.LifeStage.BaseMaxAge + w.postPokerRNG.Intn(w.cfg.LifeStage.MaxAgeJitter+1)
		maxEnergy := w.cfg.Energy.MaxFish * childGenome.MaxEnergyModifier
		child := &components.Fish{
			Locomotion:    components.Locomotion{ID: w.eco.Population.NextID(), X: bearer.X, Y: bearer.Y, W: 12, H: 8},
			Genome:        childGenome,
			Behavior:      childBehavior,
			PokerStrategy: childPoker,
			LearnedTraits: childLearned,
			Energy:        components.Energy{Current: w.cfg.Energy.InitialFish * 0.5, Max: maxEnergy},
			Lifecycle:     components.Lifecycle{MaxAge: maxAge, Species: bearer.Lifecycle.Species, Generation: p.generation + 1},
		}
		w.fish = append(w.fish, child)
		w.emitBirth(child, bearer.ID, child.Lifecycle.Generation)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
