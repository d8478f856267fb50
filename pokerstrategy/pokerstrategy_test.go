package pokerstrategy

import (
	"math/rand"
	"testing"
)

func TestCatalogHasTwelveStrategies(t *testing.T) {
	names := Names()
	if len(names) != 12 {
		t.Fatalf("Names() returned %d strategies, want 12", len(names))
	}
	for _, n := range names {
		if _, ok := strategies[n]; !ok {
			t.Errorf("strategy %q registered with no Decide function", n)
		}
	}
}

func TestRandomInstanceWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 300; i++ {
		in := RandomInstance(r)
		s := specs[in.Name]
		for _, param := range s.Params {
			b := s.Bounds[param]
			v := in.Parameters[param]
			if v < b.Low || v > b.High {
				t.Fatalf("%s.%s = %g out of bounds [%g,%g]", in.Name, param, v, b.Low, b.High)
			}
		}
	}
}

func TestMutateStaysWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for _, name := range Names() {
		in := NewInstance(r, name)
		for i := 0; i < 30; i++ {
			in = in.Mutate(r, 1.0, 3.0)
		}
		s := specs[name]
		for _, param := range s.Params {
			b := s.Bounds[param]
			v := in.Parameters[param]
			if v < b.Low-1e-9 || v > b.High+1e-9 {
				t.Errorf("%s.%s = %g out of bounds [%g,%g]", name, param, v, b.Low, b.High)
			}
		}
	}
}

func TestDecideNeverExceedsEnergy(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for _, name := range Names() {
		in := NewInstance(r, name)
		for i := 0; i < 50; i++ {
			s := Situation{
				HandStrength: r.Float64(),
				CurrentBet:   0,
				OpponentBet:  r.Float64() * 50,
				Pot:          r.Float64() * 200,
				PlayerEnergy: 100,
				OnButton:     i%2 == 0,
				Rand01:       r.Float64,
			}
			d := in.Decide(s)
			if d.Amount > s.PlayerEnergy+1e-9 {
				t.Fatalf("%s: Decide committed %g, exceeding energy %g", name, d.Amount, s.PlayerEnergy)
			}
			if d.Amount < 0 {
				t.Fatalf("%s: Decide returned negative amount %g", name, d.Amount)
			}
		}
	}
}

func TestFoldWhenCallExceedsEnergy(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	s := Situation{HandStrength: 0.99, CurrentBet: 0, OpponentBet: 1000, Pot: 50, PlayerEnergy: 10, Rand01: r.Float64}
	for _, name := range Names() {
		if name == "always_fold" || name == "random" {
			continue
		}
		in := NewInstance(r, name)
		d := in.Decide(s)
		if d.Action != Fold {
			t.Errorf("%s: Decide() with call > energy = %v, want Fold", name, d.Action)
		}
	}
}
