package systems

import "github.com/mbolaris/tankcore/components"

// velocitySmoothing is the fixed interpolation factor the movement
// integrator blends the current velocity toward behavior's desired
// vector each frame: a steer-toward-desired blend rather than a pure
// friction decay, since behaviors return a desired direction rather
// than a thrust delta.
const velocitySmoothing = 0.18

// reversalDotThreshold is the dot-product-with-previous-direction
// cutoff below which a direction change counts as a sharp reversal
// and incurs an extra energy cost.
const reversalDotThreshold = -0.4

// reversalEnergyCost is the extra energy charged on a sharp reversal.
const reversalEnergyCost = 0.05

// Bounds is the rectangle entities move within.
type Bounds struct {
	Width, Height float64
	Toroidal      bool
}

// IntegrateFish steers loc's velocity toward (desiredX, desiredY)
// scaled to speed, integrates position, applies the boundary policy,
// and returns the extra energy cost incurred by a sharp reversal (0 if
// none occurred).
func IntegrateFish(loc *components.Locomotion, desiredX, desiredY, speed float64, b Bounds) float64 {
	prevX, prevY := normalize(loc.VX, loc.VY)

	dx, dy := normalize(desiredX, desiredY)
	targetVX, targetVY := dx*speed, dy*speed

	loc.VX = lerp(loc.VX, targetVX, velocitySmoothing)
	loc.VY = lerp(loc.VY, targetVY, velocitySmoothing)

	if m := magnitude(loc.VX, loc.VY); m > 0 && speed > 0 {
		scale := speed / m
		loc.VX *= scale
		loc.VY *= scale
	}

	cost := 0.0
	if (prevX != 0 || prevY != 0) && (dx != 0 || dy != 0) {
		if dot := prevX*dx + prevY*dy; dot <= reversalDotThreshold {
			cost = reversalEnergyCost
		}
	}

	loc.X += loc.VX
	loc.Y += loc.VY
	ApplyBoundary(loc, b)
	return cost
}

// IntegrateCrab mirrors IntegrateFish but constrains movement to the
// horizontal axis, matching §3's "movement constrained to zero
// vertical velocity" for crabs.
func IntegrateCrab(loc *components.Locomotion, desiredX, speed float64, b Bounds) {
	dx, _ := normalize(desiredX, 0)
	targetVX := dx * speed
	loc.VX = lerp(loc.VX, targetVX, velocitySmoothing)
	loc.VX = clamp(loc.VX, -speed, speed)
	loc.VY = 0
	loc.X += loc.VX
	ApplyBoundary(loc, b)
}

// IntegrateFood advances a sinking food item by its catalog sink
// multiplier; stationary food (nectar) does not move under gravity.
func IntegrateFood(loc *components.Locomotion, sinkMultiplier float64, stationary bool, b Bounds) {
	if stationary {
		return
	}
	const baseSinkSpeed = 0.4
	loc.VY = baseSinkSpeed * sinkMultiplier
	loc.X += loc.VX
	loc.Y += loc.VY
	ApplyBoundary(loc, b)
}

// ApplyBoundary wraps or clamps loc's position to b depending on
// b.Toroidal, after integration has already moved it.
func ApplyBoundary(loc *components.Locomotion, b Bounds) {
	if b.Toroidal {
		loc.X = wrap(loc.X, b.Width)
		loc.Y = wrap(loc.Y, b.Height)
		return
	}
	if loc.X < 0 {
		loc.X = 0
		loc.VX = -loc.VX
	} else if loc.X > b.Width {
		loc.X = b.Width
		loc.VX = -loc.VX
	}
	if loc.Y < 0 {
		loc.Y = 0
		loc.VY = -loc.VY
	} else if loc.Y > b.Height {
		loc.Y = b.Height
		loc.VY = -loc.VY
	}
}

func wrap(v, span float64) float64 {
	if span <= 0 {
		return v
	}
	for v < 0 {
		v += span
	}
	for v >= span {
		v -= span
	}
	return v
}
