package components

import "testing"

func TestStageForAgeBoundaries(t *testing.T) {
	b := LifeStageBounds{FryMax: 300, JuvenileMax: 900, YoungAdultMax: 1800, AdultMax: 3600, MatureMax: 5400}
	tests := []struct {
		age  int
		want LifeStage
	}{
		{0, Fry},
		{299, Fry},
		{300, Juvenile},
		{899, Juvenile},
		{900, YoungAdult},
		{1799, YoungAdult},
		{1800, Adult},
		{3599, Adult},
		{3600, Mature},
		{5399, Mature},
		{5400, Elder},
		{100000, Elder},
	}
	for _, tt := range tests {
		if got := StageForAge(tt.age, b); got != tt.want {
			t.Errorf("StageForAge(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestEnergyRatioClampedAndSafe(t *testing.T) {
	tests := []struct {
		name string
		e    Energy
		want float64
	}{
		{"zero max", Energy{Current: 10, Max: 0}, 0},
		{"half", Energy{Current: 50, Max: 100}, 0.5},
		{"over max", Energy{Current: 150, Max: 100}, 1},
		{"negative current", Energy{Current: -5, Max: 100}, 0},
	}
	for _, tt := range tests {
		if got := tt.e.Ratio(); got != tt.want {
			t.Errorf("%s: Ratio() = %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestFishRememberEvictsOldest(t *testing.T) {
	f := &Fish{}
	for i := 0; i < MaxMemories+3; i++ {
		f.Remember(FoodMemory{X: float64(i), FramesLeft: 100})
	}
	if len(f.Memory) != MaxMemories {
		t.Fatalf("len(Memory) = %d, want %d", len(f.Memory), MaxMemories)
	}
	if f.Memory[0].X != 3 {
		t.Fatalf("oldest entries not evicted: Memory[0].X = %g, want 3", f.Memory[0].X)
	}
}

func TestFishDecayMemoriesDropsExpired(t *testing.T) {
	f := &Fish{}
	f.Remember(FoodMemory{X: 1, FramesLeft: 1})
	f.Remember(FoodMemory{X: 2, FramesLeft: 5})
	f.DecayMemories()
	if len(f.Memory) != 1 || f.Memory[0].X != 2 {
		t.Fatalf("DecayMemories() left %v, want only the X=2 entry", f.Memory)
	}
}

func TestEntityKindDispatch(t *testing.T) {
	entities := []Entity{&Fish{}, &Crab{}, &Plant{}, &Food{}, &Castle{}}
	want := []Kind{KindFish, KindCrab, KindPlant, KindFood, KindCastle}
	for i, e := range entities {
		if e.Kind() != want[i] {
			t.Errorf("entities[%d].Kind() = %v, want %v", i, e.Kind(), want[i])
		}
		if e.Loc() == nil {
			t.Errorf("entities[%d].Loc() = nil", i)
		}
	}
}
