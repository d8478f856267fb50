package behavior

import "math"

// Neighbor is a read-only view of another entity relevant to a
// behavior decision: same-kind schoolmate, food item, predator, etc.
type Neighbor struct {
	X, Y     float64
	Distance float64
	Energy   float64 // 0 if not applicable (e.g. a food item)
	Quality  float64 // food energy value or predator threat weight
}

// Context is the read-only environment a behavior observes. The
// world package populates one per fish per frame from the spatial
// index; behaviors never mutate it or retain a reference across
// frames.
type Context struct {
	X, Y           float64
	VX, VY         float64 // current heading, unit-ish
	Speed          float64 // base speed modifier from genome
	EnergyRatio    float64 // current energy / max energy, in [0,1]
	Age            int
	BoundsW, BoundsH float64
	Nearby         []Neighbor // same-kind neighbors, nearest first
	NearestFood    *Neighbor
	NearestPredator *Neighbor
	Rand01         func() float64 // one uniform draw in [0,1); never seeds its own source
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampComponent(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalize scales (x,y) to unit length, or returns (0,0) if both
// components are zero.
func normalize(x, y float64) (float64, float64) {
	m := math.Hypot(x, y)
	if m == 0 {
		return 0, 0
	}
	return x / m, y / m
}
