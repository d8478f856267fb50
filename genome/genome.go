// Package genome implements the evolvable trait vector carried by
// every fish: physical modifiers subject to Gaussian mutation and
// arithmetic-mean crossover, plus the asymmetric inheritance of
// learned identity (behavior algorithm, poker strategy) from one
// parent with an elevated mutation rate.
package genome

import "math/rand"

// bound is a closed [Min,Max] range a trait is clamped to.
type bound struct{ Min, Max float64 }

var (
	speedBound       = bound{0.5, 1.5}
	sizeBound        = bound{0.7, 1.3}
	visionBound      = bound{0.7, 1.3}
	metabolismBound  = bound{0.7, 1.3}
	maxEnergyBound   = bound{0.7, 1.5}
	fertilityBound   = bound{0.6, 1.4}
	aggressionBound  = bound{0.0, 1.0}
	socialBound      = bound{0.0, 1.0}
	colorHueBound    = bound{0.0, 1.0}
)

func (b bound) span() float64 { return b.Max - b.Min }
func (b bound) clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}
func (b bound) random(r *rand.Rand) float64 {
	return b.Min + r.Float64()*b.span()
}

// Genome is the evolvable physical trait vector. Fields are modifiers
// applied multiplicatively to base stats, except Aggression,
// SocialTendency, and ColorHue which are absolute [0,1] values.
type Genome struct {
	SpeedModifier      float64
	SizeModifier       float64
	VisionRange        float64
	MetabolismRate     float64
	MaxEnergyModifier  float64
	Fertility          float64
	Aggression         float64
	SocialTendency     float64
	ColorHue           float64
}

// Random builds a uniformly distributed genome within the canonical
// trait bounds.
func Random(r *rand.Rand) Genome {
	return Genome{
		SpeedModifier:     speedBound.random(r),
		SizeModifier:      sizeBound.random(r),
		VisionRange:       visionBound.random(r),
		MetabolismRate:    metabolismBound.random(r),
		MaxEnergyModifier: maxEnergyBound.random(r),
		Fertility:         fertilityBound.random(r),
		Aggression:        aggressionBound.random(r),
		SocialTendency:    socialBound.random(r),
		ColorHue:          colorHueBound.random(r),
	}
}

// inherit averages two parent values onto the trait's bound, then
// applies a probability-gated Gaussian mutation scaled by the bound's
// span, and clamps back into range. rate is the per-trait mutation
// probability; strength scales the Gaussian's standard deviation.
func inherit(r *rand.Rand, b bound, a, c, rate, strength float64) float64 {
	avg := (a + c) / 2
	if r.Float64() < rate {
		avg += r.NormFloat64() * strength * b.span()
	}
	return b.clamp(avg)
}

// MutationParams bundles the probability and strength a crossover
// applies uniformly across every trait. Both come from
// config.MutationConfig, scaled by population stress at the call
// site.
type MutationParams struct {
	Rate     float64
	Strength float64
}

// FromParents builds a child genome by averaging two parents' traits
// and applying Gaussian mutation, following the original
// implementation's inherit_trait helper applied per field.
func FromParents(r *rand.Rand, a, c Genome, m MutationParams) Genome {
	return Genome{
		SpeedModifier:     inherit(r, speedBound, a.SpeedModifier, c.SpeedModifier, m.Rate, m.Strength),
		SizeModifier:      inherit(r, sizeBound, a.SizeModifier, c.SizeModifier, m.Rate, m.Strength),
		VisionRange:       inherit(r, visionBound, a.VisionRange, c.VisionRange, m.Rate, m.Strength),
		MetabolismRate:    inherit(r, metabolismBound, a.MetabolismRate, c.MetabolismRate, m.Rate, m.Strength),
		MaxEnergyModifier: inherit(r, maxEnergyBound, a.MaxEnergyModifier, c.MaxEnergyModifier, m.Rate, m.Strength),
		Fertility:         inherit(r, fertilityBound, a.Fertility, c.Fertility, m.Rate, m.Strength),
		Aggression:        inherit(r, aggressionBound, a.Aggression, c.Aggression, m.Rate, m.Strength),
		SocialTendency:    inherit(r, socialBound, a.SocialTendency, c.SocialTendency, m.Rate, m.Strength),
		ColorHue:          inherit(r, colorHueBound, a.ColorHue, c.ColorHue, m.Rate, m.Strength),
	}
}

// inheritWeighted blends two parent values with an explicit weight on
// a (in [0,1]) instead of inherit's fixed 50/50 average, then applies
// the same probability-gated Gaussian mutation and clamp.
func inheritWeighted(r *rand.Rand, b bound, a, c, weightA, rate, strength float64) float64 {
	blend := a*weightA + c*(1-weightA)
	if r.Float64() < rate {
		blend += r.NormFloat64() * strength * b.span()
	}
	return b.clamp(blend)
}

// FromParentsWeighted builds a child genome the same way FromParents
// does, but blends the two parents with an explicit weight on a
// rather than a plain average. Used by the poker-winner-offers-
// reproduction mechanic, where the winner's genome should dominate the
// blend rather than split it evenly.
func FromParentsWeighted(r *rand.Rand, a, c Genome, weightA float64, m MutationParams) Genome {
	return Genome{
		SpeedModifier:     inheritWeighted(r, speedBound, a.SpeedModifier, c.SpeedModifier, weightA, m.Rate, m.Strength),
		SizeModifier:      inheritWeighted(r, sizeBound, a.SizeModifier, c.SizeModifier, weightA, m.Rate, m.Strength),
		VisionRange:       inheritWeighted(r, visionBound, a.VisionRange, c.VisionRange, weightA, m.Rate, m.Strength),
		MetabolismRate:    inheritWeighted(r, metabolismBound, a.MetabolismRate, c.MetabolismRate, weightA, m.Rate, m.Strength),
		MaxEnergyModifier: inheritWeighted(r, maxEnergyBound, a.MaxEnergyModifier, c.MaxEnergyModifier, weightA, m.Rate, m.Strength),
		Fertility:         inheritWeighted(r, fertilityBound, a.Fertility, c.Fertility, weightA, m.Rate, m.Strength),
		Aggression:        inheritWeighted(r, aggressionBound, a.Aggression, c.Aggression, weightA, m.Rate, m.Strength),
		SocialTendency:    inheritWeighted(r, socialBound, a.SocialTendency, c.SocialTendency, weightA, m.Rate, m.Strength),
		ColorHue:          inheritWeighted(r, colorHueBound, a.ColorHue, c.ColorHue, weightA, m.Rate, m.Strength),
	}
}

// LearnedTraits holds scalars a fish accumulates from experience
// (rather than being born with) that are culturally, not genetically,
// passed on: a component-wise mean of both parents' values, damped by
// a fixed cultural-inheritance rate. Counters such as games played or
// successful escapes are never inherited — callers reset those to
// zero on the child independently of this struct.
type LearnedTraits map[string]float64

// InheritLearned computes the offspring's learned-trait map as the
// component-wise mean of both parents, scaled by rate. Keys present in
// only one parent are treated as zero for the other.
func InheritLearned(a, c LearnedTraits, rate float64) LearnedTraits {
	out := make(LearnedTraits, len(a)+len(c))
	seen := make(map[string]bool, len(a)+len(c))
	for k := range a {
		seen[k] = true
	}
	for k := range c {
		seen[k] = true
	}
	for k := range seen {
		out[k] = (a[k] + c[k]) / 2 * rate
	}
	return out
}

// ColorTint derives an RGB-ish tint from ColorHue for presentation in
// snapshots, using an HSV-style sweep at full saturation and value
// across the visible spectrum.
func (g Genome) ColorTint() (r, gg, b float64) {
	h := g.ColorHue * 6
	x := 1 - abs(mod(h, 2)-1)
	switch {
	case h < 1:
		return 1, x, 0
	case h < 2:
		return x, 1, 0
	case h < 3:
		return 0, 1, x
	case h < 4:
		return 0, x, 1
	case h < 5:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod(v, m float64) float64 {
	for v >= m {
		v -= m
	}
	for v < 0 {
		v += m
	}
	return v
}
