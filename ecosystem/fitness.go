package ecosystem

import (
	"sort"

	"github.com/mbolaris/tankcore/events"
)

// AlgorithmFitness holds the cumulative performance record of one
// behavior algorithm, fields and derived-rate formulas grounded on
// original_source/core/ecosystem.py's AlgorithmStats dataclass.
type AlgorithmFitness struct {
	Name string

	TotalBirths   int
	TotalDeaths   int
	DeathCauses   CauseCounts
	Reproductions int
	CurrentPop    int
	totalLifespan int
	FoodEaten     int
}

// AvgLifespan is totalLifespan / TotalDeaths, or 0 with no deaths yet.
func (a AlgorithmFitness) AvgLifespan() float64 {
	if a.TotalDeaths == 0 {
		return 0
	}
	return float64(a.totalLifespan) / float64(a.TotalDeaths)
}

// SurvivalRate is CurrentPop / TotalBirths, or 0 with no births yet.
func (a AlgorithmFitness) SurvivalRate() float64 {
	if a.TotalBirths == 0 {
		return 0
	}
	return float64(a.CurrentPop) / float64(a.TotalBirths)
}

// ReproductionRate is Reproductions / TotalBirths, or 0 with no births
// yet.
func (a AlgorithmFitness) ReproductionRate() float64 {
	if a.TotalBirths == 0 {
		return 0
	}
	return float64(a.Reproductions) / float64(a.TotalBirths)
}

// FitnessTracker keys AlgorithmFitness records by algorithm name,
// since this module's behaviors are named rather than integer-indexed
// (see behavior.Instance), unlike the original's fixed 0-47 algorithm
// IDs.
type FitnessTracker struct {
	byAlgorithm map[string]*AlgorithmFitness
}

// NewFitnessTracker builds an empty tracker; records are created
// lazily on first reference to an algorithm name.
func NewFitnessTracker() *FitnessTracker {
	return &FitnessTracker{byAlgorithm: make(map[string]*AlgorithmFitness)}
}

func (t *FitnessTracker) entry(algorithm string) *AlgorithmFitness {
	e, ok := t.byAlgorithm[algorithm]
	if !ok {
		e = &AlgorithmFitness{Name: algorithm}
		t.byAlgorithm[algorithm] = e
	}
	return e
}

// RecordBirth increments an algorithm's birth and live-population
// counts.
func (t *FitnessTracker) RecordBirth(algorithm string) {
	e := t.entry(algorithm)
	e.TotalBirths++
	e.CurrentPop++
}

// RecordDeath decrements live population, tallies the cause, and
// accumulates lifespan for the average.
func (t *FitnessTracker) RecordDeath(algorithm string, age int, cause events.DeathCause) {
	e := t.entry(algorithm)
	e.TotalDeaths++
	if e.CurrentPop > 0 {
		e.CurrentPop--
	}
	e.totalLifespan += age
	e.DeathCauses.record(cause)
}

// RecordReproduction increments an algorithm's reproduction count.
func (t *FitnessTracker) RecordReproduction(algorithm string) {
	t.entry(algorithm).Reproductions++
}

// RecordFoodEaten increments an algorithm's cumulative food-eaten
// count.
func (t *FitnessTracker) RecordFoodEaten(algorithm string) {
	t.entry(algorithm).FoodEaten++
}

// Snapshot returns a stable-ordered copy of every tracked algorithm's
// fitness record, by name, for deterministic snapshot/metrics output.
func (t *FitnessTracker) Snapshot() []AlgorithmFitness {
	names := make([]string, 0, len(t.byAlgorithm))
	for name := range t.byAlgorithm {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]AlgorithmFitness, 0, len(names))
	for _, name := range names {
		out = append(out, *t.byAlgorithm[name])
	}
	return out
}
