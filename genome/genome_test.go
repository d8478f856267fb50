package genome

import (
	"math/rand"
	"testing"
)

func TestRandomWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		g := Random(r)
		checkBounds(t, g)
	}
}

func checkBounds(t *testing.T, g Genome) {
	t.Helper()
	fields := []struct {
		name string
		v    float64
		b    bound
	}{
		{"SpeedModifier", g.SpeedModifier, speedBound},
		{"SizeModifier", g.SizeModifier, sizeBound},
		{"VisionRange", g.VisionRange, visionBound},
		{"MetabolismRate", g.MetabolismRate, metabolismBound},
		{"MaxEnergyModifier", g.MaxEnergyModifier, maxEnergyBound},
		{"Fertility", g.Fertility, fertilityBound},
		{"Aggression", g.Aggression, aggressionBound},
		{"SocialTendency", g.SocialTendency, socialBound},
		{"ColorHue", g.ColorHue, colorHueBound},
	}
	for _, f := range fields {
		if f.v < f.b.Min || f.v > f.b.Max {
			t.Errorf("%s = %g out of bounds [%g,%g]", f.name, f.v, f.b.Min, f.b.Max)
		}
	}
}

func TestFromParentsStaysWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	m := MutationParams{Rate: 1.0, Strength: 5.0} // force mutation every trait, large strength
	for i := 0; i < 500; i++ {
		a := Random(r)
		c := Random(r)
		child := FromParents(r, a, c, m)
		checkBounds(t, child)
	}
}

func TestFromParentsNoMutationIsExactAverage(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	m := MutationParams{Rate: 0, Strength: 0}
	a := Genome{SpeedModifier: 0.6, Aggression: 0.2}
	c := Genome{SpeedModifier: 1.4, Aggression: 0.8}
	child := FromParents(r, a, c, m)
	if got, want := child.SpeedModifier, 1.0; abs(got-want) > 1e-9 {
		t.Errorf("SpeedModifier = %g, want %g", got, want)
	}
	if got, want := child.Aggression, 0.5; abs(got-want) > 1e-9 {
		t.Errorf("Aggression = %g, want %g", got, want)
	}
}

func TestFromParentsWeightedStaysWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	m := MutationParams{Rate: 1.0, Strength: 5.0}
	for i := 0; i < 500; i++ {
		a := Random(r)
		c := Random(r)
		child := FromParentsWeighted(r, a, c, 0.6, m)
		checkBounds(t, child)
	}
}

func TestFromParentsWeightedNoMutationMatchesWeight(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	m := MutationParams{Rate: 0, Strength: 0}
	a := Genome{SpeedModifier: 1.5, Aggression: 1.0}
	c := Genome{SpeedModifier: 0.5, Aggression: 0.0}
	child := FromParentsWeighted(r, a, c, 0.6, m)
	if got, want := child.SpeedModifier, 1.5*0.6+0.5*0.4; abs(got-want) > 1e-9 {
		t.Errorf("SpeedModifier = %g, want %g", got, want)
	}
	if got, want := child.Aggression, 1.0*0.6+0.0*0.4; abs(got-want) > 1e-9 {
		t.Errorf("Aggression = %g, want %g", got, want)
	}
}

func TestInheritLearnedScalesByRate(t *testing.T) {
	a := LearnedTraits{"food_memory": 1.0, "only_a": 2.0}
	c := LearnedTraits{"food_memory": 3.0}
	out := InheritLearned(a, c, 0.5)
	if got, want := out["food_memory"], 1.0; abs(got-want) > 1e-9 {
		t.Errorf("food_memory = %g, want %g", got, want)
	}
	if got, want := out["only_a"], 0.5; abs(got-want) > 1e-9 {
		t.Errorf("only_a = %g, want %g", got, want)
	}
}

func TestColorTintStaysInUnitRange(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		g := Random(r)
		rr, gg, bb := g.ColorTint()
		for _, v := range []float64{rr, gg, bb} {
			if v < 0 || v > 1 {
				t.Fatalf("ColorTint component out of [0,1]: %g (hue=%g)", v, g.ColorHue)
			}
		}
	}
}
