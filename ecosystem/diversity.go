package ecosystem

import (
	"gonum.org/v1/gonum/stat"

	"github.com/mbolaris/tankcore/behavior"
	"github.com/mbolaris/tankcore/catalog"
)

// totalAlgorithmCount is the denominator the algorithm-diversity term
// normalizes against, taken from the live catalog rather than a copied
// constant so it never drifts from behavior.Names().
var totalAlgorithmCount = float64(len(behavior.Names()))

// diversityWeights are the fixed weights the composite diversity score
// combines its terms with. Algorithm presence, species presence, and
// trait variance (the mean of the speed/size/vision/color variance
// terms this module tracks) each carry an equal third.
const (
	weightAlgorithm = 1.0 / 3.0
	weightSpecies   = 1.0 / 3.0
	weightTraits    = 1.0 / 3.0
)

// FishTraitSample is the subset of a fish's state the diversity
// tracker samples each frame: its behavior name, species, and the four
// scalar traits whose population variance feeds the composite score.
type FishTraitSample struct {
	Algorithm string
	Species   catalog.Species
	ColorHue  float64
	Speed     float64
	Size      float64
	Vision    float64
}

// DiversitySnapshot is the aggregated diversity read, including the
// composite score.
type DiversitySnapshot struct {
	UniqueAlgorithms int
	UniqueSpecies    int
	ColorVariance    float64
	SpeedVariance    float64
	SizeVariance     float64
	VisionVariance   float64
	Score            float64
}

// Diversity computes population-level diversity from a fresh sample of
// every live fish each frame; it holds no state of its own between
// calls, since unique-algorithm/species counts and trait variances are
// always recomputed from the current population rather than tracked
// incrementally, following the original's get_diversity_score's
// from-scratch-each-call shape.
type Diversity struct{}

// NewDiversity builds a (stateless) diversity computer.
func NewDiversity() *Diversity { return &Diversity{} }

// Compute derives a DiversitySnapshot from the current population's
// trait samples. Variance uses gonum/stat.Variance (the unbiased
// sample variance, n-1 denominator), in place of a hand-rolled accumulator,
// since gonum is already a teacher-adjacent dependency carried for
// exactly this kind of descriptive-statistics work (see DESIGN.md).
func (Diversity) Compute(samples []FishTraitSample) DiversitySnapshot {
	if len(samples) == 0 {
		return DiversitySnapshot{}
	}

	algos := make(map[string]bool, len(samples))
	species := make(map[catalog.Species]bool, len(samples))
	colors := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	sizes := make([]float64, len(samples))
	visions := make([]float64, len(samples))

	for i, s := range samples {
		algos[s.Algorithm] = true
		species[s.Species] = true
		colors[i] = s.ColorHue
		speeds[i] = s.Speed
		sizes[i] = s.Size
		visions[i] = s.Vision
	}

	snap := DiversitySnapshot{
		UniqueAlgorithms: len(algos),
		UniqueSpecies:    len(species),
		ColorVariance:    variance(colors),
		SpeedVariance:    variance(speeds),
		SizeVariance:     variance(sizes),
		VisionVariance:   variance(visions),
	}

	algoScore := min1(float64(snap.UniqueAlgorithms) / totalAlgorithmCount)
	speciesScore := min1(float64(snap.UniqueSpecies) / float64(catalog.SpeciesCount))
	traitScore := min1((normalizeVariance(snap.ColorVariance) +
		normalizeVariance(snap.SpeedVariance) +
		normalizeVariance(snap.SizeVariance) +
		normalizeVariance(snap.VisionVariance)) / 4)

	snap.Score = weightAlgorithm*algoScore + weightSpecies*speciesScore + weightTraits*traitScore
	return snap
}

func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.Variance(xs, nil)
}

// normalizeVariance scales a raw variance (traits live on bounded
// ranges on the order of 1) into roughly [0, 1], matching the
// original's "Normalize variance" color-score comment.
func normalizeVariance(v float64) float64 {
	return min1(v * 3.0)
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
