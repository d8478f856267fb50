package components

// Crab is the bottom-dwelling predator kind: energy and an attack
// cooldown, no reproduction, and movement constrained to zero
// vertical velocity by the physics system.
type Crab struct {
	Locomotion
	Energy         float64
	AttackCooldown int
}
