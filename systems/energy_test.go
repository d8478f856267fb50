package systems

import (
	"testing"

	"github.com/mbolaris/tankcore/components"
	"github.com/mbolaris/tankcore/config"
	"github.com/mbolaris/tankcore/genome"
)

func newTestFish(energy float64, age int) *components.Fish {
	f := &components.Fish{}
	f.Genome = genome.Genome{SizeModifier: 1, MetabolismRate: 1}
	f.Energy = components.Energy{Current: energy, Max: 200}
	f.Lifecycle = components.Lifecycle{Age: age, MaxAge: 10000}
	return f
}

var testBounds = components.LifeStageBounds{
	FryMax: 300, JuvenileMax: 900, YoungAdultMax: 1800, AdultMax: 3600, MatureMax: 5400,
}

func TestUpdateFishMetabolismConsumesEnergy(t *testing.T) {
	f := newTestFish(100, 0)
	cfg := &config.EnergyConfig{}
	_, dead, metabolismCost := UpdateFishMetabolism(f, 0, testBounds, cfg)
	if dead {
		t.Fatalf("fish died from a single frame of baseline metabolism")
	}
	if metabolismCost <= 0 {
		t.Fatalf("metabolismCost = %g, want > 0", metabolismCost)
	}
	if f.Energy.Current >= 100 {
		t.Fatalf("energy = %g after metabolism, want < 100", f.Energy.Current)
	}
}

func TestUpdateFishMetabolismAdvancesLifeStage(t *testing.T) {
	f := newTestFish(100, testBounds.FryMax-1)
	cfg := &config.EnergyConfig{}
	UpdateFishMetabolism(f, 0, testBounds, cfg)
	if f.Lifecycle.Stage != components.Juvenile {
		t.Fatalf("stage = %v after crossing FryMax, want Juvenile", f.Lifecycle.Stage)
	}
}

func TestUpdateFishMetabolismReportsStarvation(t *testing.T) {
	f := newTestFish(0.01, 0)
	cfg := &config.EnergyConfig{}
	cause, dead, _ := UpdateFishMetabolism(f, 0, testBounds, cfg)
	if !dead || cause != "starvation" {
		t.Fatalf("UpdateFishMetabolism(energy=0.01) = (%q, %v), want (starvation, true)", cause, dead)
	}
}

func TestUpdateFishMetabolismReportsOldAge(t *testing.T) {
	f := newTestFish(100, 9999)
	f.Lifecycle.MaxAge = 10000
	cfg := &config.EnergyConfig{}
	cause, dead, _ := UpdateFishMetabolism(f, 0, testBounds, cfg)
	if !dead || cause != "old_age" {
		t.Fatalf("UpdateFishMetabolism at the max-age boundary = (%q, %v), want (old_age, true)", cause, dead)
	}
}

func TestUpdateFishMetabolismChargesReversalCost(t *testing.T) {
	withReversal := newTestFish(100, 0)
	withoutReversal := newTestFish(100, 0)
	cfg := &config.EnergyConfig{}
	UpdateFishMetabolism(withReversal, 0.05, testBounds, cfg)
	UpdateFishMetabolism(withoutReversal, 0, testBounds, cfg)
	if withReversal.Energy.Current >= withoutReversal.Energy.Current {
		t.Fatalf("reversal-charged energy %g should be lower than uncharged %g", withReversal.Energy.Current, withoutReversal.Energy.Current)
	}
}

func TestUpdateCrabMetabolismTicksCooldownAndDrainsEnergy(t *testing.T) {
	c := &components.Crab{Energy: 10, AttackCooldown: 3}
	dead := UpdateCrabMetabolism(c)
	if dead {
		t.Fatalf("crab with ample energy reported dead")
	}
	if c.AttackCooldown != 2 {
		t.Fatalf("AttackCooldown = %d, want 2", c.AttackCooldown)
	}
}

func TestUpdateCrabMetabolismDiesAtZeroEnergy(t *testing.T) {
	c := &components.Crab{Energy: 0.001}
	if dead := UpdateCrabMetabolism(c); !dead {
		t.Fatalf("crab with near-zero energy should die this frame")
	}
}

func TestUpdatePlantProductionRespectsInterval(t *testing.T) {
	p := &components.Plant{}
	cfg := &config.PlantConfig{Enabled: true, ProductionInterval: 5, ProductionChance: 1.0}
	for i := 0; i < 4; i++ {
		if UpdatePlantProduction(p, cfg, 1, 0) {
			t.Fatalf("plant produced food before its interval elapsed")
		}
	}
	if !UpdatePlantProduction(p, cfg, 1, 0) {
		t.Fatalf("plant should produce food once its interval elapses and roll < chance")
	}
}

func TestUpdatePlantProductionDisabledNeverProduces(t *testing.T) {
	p := &components.Plant{}
	cfg := &config.PlantConfig{Enabled: false, ProductionInterval: 1, ProductionChance: 1.0}
	for i := 0; i < 10; i++ {
		if UpdatePlantProduction(p, cfg, 1, 0) {
			t.Fatalf("disabled plant config produced food")
		}
	}
}

func TestUpdatePlantProductionCapsOutstandingFood(t *testing.T) {
	p := &components.Plant{OutstandingFood: components.MaxOutstandingFood}
	cfg := &config.PlantConfig{Enabled: true, ProductionInterval: 1, ProductionChance: 1.0}
	if UpdatePlantProduction(p, cfg, 1, 0) {
		t.Fatalf("plant at its outstanding-food cap should not produce more")
	}
}
