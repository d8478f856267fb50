package components

import "github.com/mbolaris/tankcore/catalog"

// Food is an ephemeral item. SourcePlant is non-zero when the food
// was produced by a plant (required for Nectar, which is anchored to
// its source and never sinks); the world decrements that plant's
// OutstandingFood counter when this item is eaten or removed.
type Food struct {
	Locomotion
	Type        catalog.FoodType
	SourcePlant ID // 0 if not plant-produced
}
