package ecosystem

import (
	"testing"

	"github.com/mbolaris/tankcore/components"
)

func TestPokerStatsTrackerRecordsPerAlgorithmAndPerFish(t *testing.T) {
	tr := NewPokerStatsTracker()
	tr.Record(1, "tight-aggressive", HandResult{
		Won: true, NetEnergy: 5, HandRank: 3, ReachedShowdown: true, OnButton: true, Raises: 2, Calls: 1,
	})
	tr.Record(2, "tight-aggressive", HandResult{
		Won: false, NetEnergy: -5, HandRank: 1, ReachedShowdown: false,
	})

	algoSnap := tr.AlgorithmSnapshot()
	stats := algoSnap["tight-aggressive"]
	if stats.Games != 2 || stats.Wins != 1 || stats.Losses != 1 {
		t.Fatalf("algorithm stats = %+v, want Games=2 Wins=1 Losses=1", stats)
	}
	if stats.NetEnergy != 0 {
		t.Fatalf("NetEnergy = %v, want 0 (5 + -5)", stats.NetEnergy)
	}
	if stats.Folds != 1 {
		t.Fatalf("Folds = %d, want 1", stats.Folds)
	}
	if stats.ShowdownCount != 1 || stats.WonAtShowdown != 1 {
		t.Fatalf("ShowdownCount/WonAtShowdown = %d/%d, want 1/1", stats.ShowdownCount, stats.WonAtShowdown)
	}

	lb := tr.Leaderboard()
	if len(lb) != 2 {
		t.Fatalf("Leaderboard() len = %d, want 2", len(lb))
	}
	if lb[0].FishID != 1 {
		t.Fatalf("Leaderboard()[0].FishID = %d, want 1 (higher net energy first)", lb[0].FishID)
	}
}

func TestPokerStatsAggressionFactorIsRaisesOverCalls(t *testing.T) {
	tr := NewPokerStatsTracker()
	tr.Record(1, "loose", HandResult{Raises: 4, Calls: 2})
	stats := tr.AlgorithmSnapshot()["loose"]
	if got := stats.AggressionFactor(); got != 2 {
		t.Fatalf("AggressionFactor() = %v, want 2", got)
	}
}

func TestPokerStatsAggressionFactorIsZeroWithNoCalls(t *testing.T) {
	var p PokerStats
	if got := p.AggressionFactor(); got != 0 {
		t.Fatalf("AggressionFactor() with no calls = %v, want 0", got)
	}
}

func TestCleanupDeadFishRemovesOnlyDeadEntries(t *testing.T) {
	tr := NewPokerStatsTracker()
	tr.Record(1, "a", HandResult{})
	tr.Record(2, "a", HandResult{})

	removed := tr.CleanupDeadFish(map[components.ID]bool{1: true})
	if removed != 1 {
		t.Fatalf("CleanupDeadFish() removed = %d, want 1", removed)
	}
	lb := tr.Leaderboard()
	if len(lb) != 1 || lb[0].FishID != 1 {
		t.Fatalf("Leaderboard() after cleanup = %+v, want only fish 1", lb)
	}
}

func TestGameSplitTracksFishOnlyVersusPlantHands(t *testing.T) {
	tr := NewPokerStatsTracker()
	tr.RecordFishOnlyHand()
	tr.RecordFishOnlyHand()
	tr.RecordPlantHand(-3)

	fishOnly, mixed, plantEnergy := tr.GameSplit()
	if fishOnly != 2 || mixed != 1 {
		t.Fatalf("GameSplit() = %d,%d, want 2,1", fishOnly, mixed)
	}
	if plantEnergy != -3 {
		t.Fatalf("plantEnergyMoved = %v, want -3", plantEnergy)
	}
}
