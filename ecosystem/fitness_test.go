package ecosystem

import (
	"testing"

	"github.com/mbolaris/tankcore/events"
)

func TestFitnessTrackerTracksBirthsAndDeathsPerAlgorithm(t *testing.T) {
	f := NewFitnessTracker()
	f.RecordBirth("circler")
	f.RecordBirth("circler")
	f.RecordDeath("circler", 40, events.CauseOldAge)

	snap := f.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot() len = %d, want 1", len(snap))
	}
	got := snap[0]
	if got.TotalBirths != 2 || got.TotalDeaths != 1 || got.CurrentPop != 1 {
		t.Fatalf("got %+v, want TotalBirths=2 TotalDeaths=1 CurrentPop=1", got)
	}
	if got.AvgLifespan() != 40 {
		t.Fatalf("AvgLifespan() = %v, want 40", got.AvgLifespan())
	}
	if got.SurvivalRate() != 0.5 {
		t.Fatalf("SurvivalRate() = %v, want 0.5", got.SurvivalRate())
	}
}

func TestFitnessTrackerSnapshotIsSortedByName(t *testing.T) {
	f := NewFitnessTracker()
	f.RecordBirth("zigzag")
	f.RecordBirth("ambusher")
	f.RecordBirth("circler")

	snap := f.Snapshot()
	names := make([]string, len(snap))
	for i, s := range snap {
		names[i] = s.Name
	}
	want := []string{"ambusher", "circler", "zigzag"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Snapshot() names = %v, want %v", names, want)
		}
	}
}

func TestAlgorithmFitnessRatesAreZeroWithNoBirths(t *testing.T) {
	var a AlgorithmFitness
	if a.AvgLifespan() != 0 || a.SurvivalRate() != 0 || a.ReproductionRate() != 0 {
		t.Fatalf("zero-value AlgorithmFitness rates should all be 0, got %+v", a)
	}
}

func TestFitnessTrackerCurrentPopNeverUnderflows(t *testing.T) {
	f := NewFitnessTracker()
	f.RecordDeath("ghost", 1, events.CauseUnknown)
	if f.Snapshot()[0].CurrentPop != 0 {
		t.Fatalf("CurrentPop went negative on death with no prior birth")
	}
}
