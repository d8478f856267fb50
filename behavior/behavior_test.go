package behavior

import (
	"math"
	"math/rand"
	"testing"
)

func TestCatalogHasFortyEightAlgorithms(t *testing.T) {
	names := Names()
	if len(names) != 48 {
		t.Fatalf("Names() returned %d algorithms, want 48", len(names))
	}
	for _, n := range names {
		if _, ok := algorithms[n]; !ok {
			t.Errorf("algorithm %q registered with no Execute function", n)
		}
	}
}

func TestRandomInstanceWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		in := RandomInstance(r)
		spec := specs[in.Name]
		for _, param := range spec.Params {
			b := spec.Bounds[param]
			v := in.Parameters[param]
			if v < b.Low || v > b.High {
				t.Fatalf("%s.%s = %g out of bounds [%g,%g]", in.Name, param, v, b.Low, b.High)
			}
		}
	}
}

func TestMutateStaysWithinBounds(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for _, name := range Names() {
		in := NewInstance(r, name)
		for i := 0; i < 50; i++ {
			in = in.Mutate(r, 1.0, 3.0) // always mutate, large strength
		}
		spec := specs[name]
		for _, param := range spec.Params {
			b := spec.Bounds[param]
			v := in.Parameters[param]
			if v < b.Low-1e-9 || v > b.High+1e-9 {
				t.Errorf("%s.%s = %g out of bounds [%g,%g] after repeated mutation", name, param, v, b.Low, b.High)
			}
		}
	}
}

func TestExecuteReturnsClampedVector(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	ctx := Context{
		X: 100, Y: 100, VX: 1, VY: 0, Speed: 1, EnergyRatio: 0.5, Age: 42,
		BoundsW: 1280, BoundsH: 720,
		Nearby: []Neighbor{
			{X: 110, Y: 100, Distance: 10, Energy: 50},
			{X: 90, Y: 95, Distance: 11.2, Energy: 80},
		},
		NearestFood:     &Neighbor{X: 200, Y: 100, Distance: 100, Quality: 0.8},
		NearestPredator: &Neighbor{X: 50, Y: 100, Distance: 50, Quality: 1.0},
		Rand01:          r.Float64,
	}
	for _, name := range Names() {
		in := NewInstance(r, name)
		vx, vy := in.Execute(ctx)
		if math.IsNaN(vx) || math.IsNaN(vy) || math.IsInf(vx, 0) || math.IsInf(vy, 0) {
			t.Fatalf("%s: Execute returned non-finite vector (%g,%g)", name, vx, vy)
		}
		if vx < -1.0001 || vx > 1.0001 || vy < -1.0001 || vy > 1.0001 {
			t.Fatalf("%s: Execute returned out-of-range vector (%g,%g)", name, vx, vy)
		}
	}
}

func TestExecuteUnknownAlgorithmReturnsZero(t *testing.T) {
	in := Instance{Name: "not_a_real_algorithm", Parameters: nil}
	vx, vy := in.Execute(Context{Rand01: func() float64 { return 0.5 }})
	if vx != 0 || vy != 0 {
		t.Fatalf("Execute on unregistered algorithm = (%g,%g), want (0,0)", vx, vy)
	}
}
