package ecosystem

import (
	"sort"

	"github.com/mbolaris/tankcore/components"
)

// PokerStats is one algorithm's (or one fish's) cumulative poker
// record, fields and derived-rate formulas grounded on
// original_source/core/ecosystem_stats.py's PokerStats dataclass.
type PokerStats struct {
	Games            int
	Wins, Losses     int
	NetEnergy        float64
	HouseCutsPaid    float64
	BestHandRank     int
	totalHandRank    int
	Folds            int
	WonAtShowdown    int
	ShowdownCount    int
	ButtonGames      int
	ButtonWins       int
	NonButtonGames   int
	NonButtonWins    int
	TotalRaises      int
	TotalCalls       int
}

func (p PokerStats) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games)
}

func (p PokerStats) ShowdownWinRate() float64 {
	if p.ShowdownCount == 0 {
		return 0
	}
	return float64(p.WonAtShowdown) / float64(p.ShowdownCount)
}

func (p PokerStats) ButtonWinRate() float64 {
	if p.ButtonGames == 0 {
		return 0
	}
	return float64(p.ButtonWins) / float64(p.ButtonGames)
}

// AggressionFactor is raises/calls, the standard poker-stats proxy for
// how often a player bets for value versus passively calling.
func (p PokerStats) AggressionFactor() float64 {
	if p.TotalCalls == 0 {
		return 0
	}
	return float64(p.TotalRaises) / float64(p.TotalCalls)
}

func (p PokerStats) AvgHandRank() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.totalHandRank) / float64(p.Games)
}

// HandResult is one participant's outcome from a single resolved hand,
// the unit PokerStatsTracker.Record consumes.
type HandResult struct {
	Won           bool
	NetEnergy     float64
	HouseCutShare float64
	HandRank      int
	ReachedShowdown bool
	OnButton      bool
	Raises, Calls int
}

// PokerStatsTracker keeps per-algorithm aggregates (for fleet-wide
// comparison) and per-fish records (for a leaderboard), mirroring
// original_source/core/poker_stats_manager.py's two parallel
// dictionaries, keyed on algorithm name and components.ID respectively
// instead of the original's integer algorithm IDs.
type PokerStatsTracker struct {
	byAlgorithm map[string]*PokerStats
	byFish      map[components.ID]*PokerStats

	totalFishGames    int
	totalPlantGames   int
	plantEnergyMoved  float64
}

// NewPokerStatsTracker builds an empty tracker.
func NewPokerStatsTracker() *PokerStatsTracker {
	return &PokerStatsTracker{
		byAlgorithm: make(map[string]*PokerStats),
		byFish:      make(map[components.ID]*PokerStats),
	}
}

func (t *PokerStatsTracker) entry(m map[string]*PokerStats, key string) *PokerStats {
	e, ok := m[key]
	if !ok {
		e = &PokerStats{}
		m[key] = e
	}
	return e
}

// Record folds one fish's hand result into both its algorithm's
// aggregate and its individual leaderboard record.
func (t *PokerStatsTracker) Record(fishID components.ID, algorithm string, r HandResult) {
	for _, e := range t.entriesFor(fishID, algorithm) {
		e.Games++
		if r.Won {
			e.Wins++
		} else {
			e.Losses++
		}
		e.NetEnergy += r.NetEnergy
		e.HouseCutsPaid += r.HouseCutShare
		if r.HandRank > e.BestHandRank {
			e.BestHandRank = r.HandRank
		}
		e.totalHandRank += r.HandRank
		if !r.ReachedShowdown {
			e.Folds++
		} else {
			e.ShowdownCount++
			if r.Won {
				e.WonAtShowdown++
			}
		}
		if r.OnButton {
			e.ButtonGames++
			if r.Won {
				e.ButtonWins++
			}
		} else {
			e.NonButtonGames++
			if r.Won {
				e.NonButtonWins++
			}
		}
		e.TotalRaises += r.Raises
		e.TotalCalls += r.Calls
	}
}

func (t *PokerStatsTracker) entriesFor(fishID components.ID, algorithm string) []*PokerStats {
	fishEntry, ok := t.byFish[fishID]
	if !ok {
		fishEntry = &PokerStats{}
		t.byFish[fishID] = fishEntry
	}
	return []*PokerStats{t.entry(t.byAlgorithm, algorithm), fishEntry}
}

// RecordPlantHand tallies a plant-versus-fish hand for the ecosystem's
// separate plant/fish economy breakdown, keeping those energy
// transfers distinct from the fish-only poker economy.
func (t *PokerStatsTracker) RecordPlantHand(plantEnergyDelta float64) {
	t.totalPlantGames++
	t.plantEnergyMoved += plantEnergyDelta
}

// RecordFishOnlyHand tallies one all-fish hand for the fish/plant game
// split.
func (t *PokerStatsTracker) RecordFishOnlyHand() {
	t.totalFishGames++
}

// CleanupDeadFish drops leaderboard entries for fish no longer alive,
// mirroring PokerStatsManager.cleanup_dead_fish, and returns the
// number of records removed.
func (t *PokerStatsTracker) CleanupDeadFish(alive map[components.ID]bool) int {
	removed := 0
	for id := range t.byFish {
		if !alive[id] {
			delete(t.byFish, id)
			removed++
		}
	}
	return removed
}

// AlgorithmSnapshot returns a copy of every tracked algorithm's poker
// stats, keyed by algorithm name.
func (t *PokerStatsTracker) AlgorithmSnapshot() map[string]PokerStats {
	out := make(map[string]PokerStats, len(t.byAlgorithm))
	for k, v := range t.byAlgorithm {
		out[k] = *v
	}
	return out
}

// Leaderboard returns every tracked fish's poker record sorted by net
// energy descending, for presentation.
func (t *PokerStatsTracker) Leaderboard() []FishPokerRecord {
	out := make([]FishPokerRecord, 0, len(t.byFish))
	for id, stats := range t.byFish {
		out = append(out, FishPokerRecord{FishID: id, Stats: *stats})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stats.NetEnergy != out[j].Stats.NetEnergy {
			return out[i].Stats.NetEnergy > out[j].Stats.NetEnergy
		}
		return out[i].FishID < out[j].FishID
	})
	return out
}

// FishPokerRecord pairs a fish ID with its accumulated poker record.
type FishPokerRecord struct {
	FishID components.ID
	Stats  PokerStats
}

// GameSplit reports how many hands were all-fish versus mixed with a
// plant, and the cumulative energy moved across the plant/fish
// boundary.
func (t *PokerStatsTracker) GameSplit() (fishOnly, mixed int, plantEnergyMoved float64) {
	return t.totalFishGames, t.totalPlantGames, t.plantEnergyMoved
}
