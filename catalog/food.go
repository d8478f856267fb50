// Package catalog holds the small fixed tables of named, weighted
// categories the simulation draws from at spawn time: food types and
// fish species. Both follow the same pattern: a typed enum plus a
// weight map for random selection and a names/color lookup for
// presentation.
package catalog

// FoodType names a kind of food with its own energy value, spawn
// rarity, and sink behavior.
type FoodType uint8

const (
	Algae FoodType = iota
	Protein
	Vitamin
	EnergyRich
	Rare
	Nectar
	foodTypeCount
)

// FoodProperties describes one food type's simulation parameters.
type FoodProperties struct {
	Name           string
	Energy         float64
	Rarity         float64 // relative spawn weight
	SinkMultiplier float64 // vertical drift speed multiplier; 0 for stationary
	Stationary     bool
	PlantOnly      bool // only produced by plants, never spawned by the auto-food controller
}

// foodCatalog is indexed by FoodType and mirrors the values in the
// original implementation's food-type table.
var foodCatalog = [foodTypeCount]FoodProperties{
	Algae:      {Name: "algae", Energy: 30, Rarity: 0.35, SinkMultiplier: 0.8},
	Protein:    {Name: "protein", Energy: 50, Rarity: 0.25, SinkMultiplier: 1.2},
	Vitamin:    {Name: "vitamin", Energy: 40, Rarity: 0.20, SinkMultiplier: 0.9},
	EnergyRich: {Name: "energy", Energy: 45, Rarity: 0.15, SinkMultiplier: 1.0},
	Rare:       {Name: "rare", Energy: 75, Rarity: 0.05, SinkMultiplier: 1.1},
	Nectar:     {Name: "nectar", Energy: 60, Rarity: 0.0, SinkMultiplier: 0.0, Stationary: true, PlantOnly: true},
}

// Properties returns the fixed parameters for a food type. Passing an
// out-of-range value returns the zero FoodProperties.
func (f FoodType) Properties() FoodProperties {
	if f >= foodTypeCount {
		return FoodProperties{}
	}
	return foodCatalog[f]
}

func (f FoodType) String() string {
	return f.Properties().Name
}

// SpawnableFoodTypes lists the food types the auto-food controller may
// pick from; Nectar is excluded because it is plant-produced only.
func SpawnableFoodTypes() []FoodType {
	out := make([]FoodType, 0, foodTypeCount-1)
	for ft := FoodType(0); ft < foodTypeCount; ft++ {
		if !foodCatalog[ft].PlantOnly {
			out = append(out, ft)
		}
	}
	return out
}

// PickSpawnable draws a food type from SpawnableFoodTypes weighted by
// Rarity, using r for the single random draw.
func PickSpawnable(r float64) FoodType {
	candidates := SpawnableFoodTypes()
	var total float64
	for _, ft := range candidates {
		total += ft.Properties().Rarity
	}
	if total <= 0 {
		return candidates[0]
	}
	target := r * total
	var acc float64
	for _, ft := range candidates {
		acc += ft.Properties().Rarity
		if target < acc {
			return ft
		}
	}
	return candidates[len(candidates)-1]
}
