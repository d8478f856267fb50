package catalog

import "testing"

func TestSpawnableFoodTypesExcludesNectar(t *testing.T) {
	for _, ft := range SpawnableFoodTypes() {
		if ft == Nectar {
			t.Fatal("SpawnableFoodTypes included plant-only Nectar")
		}
	}
}

func TestPickSpawnableBoundaries(t *testing.T) {
	if got := PickSpawnable(0); got != Algae {
		t.Fatalf("PickSpawnable(0) = %v, want Algae (highest rarity first)", got)
	}
	last := SpawnableFoodTypes()[len(SpawnableFoodTypes())-1]
	if got := PickSpawnable(0.999999); got != last {
		t.Fatalf("PickSpawnable(~1) = %v, want %v", got, last)
	}
}

func TestFoodPropertiesOutOfRange(t *testing.T) {
	var ft FoodType = 200
	if got := ft.Properties(); got != (FoodProperties{}) {
		t.Fatalf("out-of-range FoodType.Properties() = %+v, want zero value", got)
	}
}

func TestRandomSpeciesCoversAll(t *testing.T) {
	seen := map[Species]bool{}
	for i := 0; i < SpeciesCount; i++ {
		r := float64(i) / float64(SpeciesCount)
		seen[RandomSpecies(r)] = true
	}
	if len(seen) != SpeciesCount {
		t.Fatalf("RandomSpecies covered %d distinct species, want %d", len(seen), SpeciesCount)
	}
}

func TestAllSpeciesStableOrder(t *testing.T) {
	want := []Species{Guppy, Tetra, Molly, Barb}
	got := AllSpecies()
	if len(got) != len(want) {
		t.Fatalf("AllSpecies() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllSpecies()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
