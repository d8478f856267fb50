package world

import (
	"fmt"
	"math"
)

// DayLengthFrames is the frame count of one full day/night cycle: a
// [0,1) time_of_day fraction with dawn starting at 0.15, day at 0.35,
// dusk at 0.65, and night at 0.85, matching the boundaries
// spawners.AutoFoodController.LiveFoodChance and plant production are
// already written against.
const DayLengthFrames = 7200

// nightFloorActivity is the minimum activity multiplier at the dead
// of night; activity never drops to zero so a sleeping tank still has
// some plant production and spawn-rate baseline.
const nightFloorActivity = 0.35

// TimeOfDay returns the cyclical time-of-day fraction in [0,1) for a
// given simulation frame: 0 is midnight, 0.5 is midday.
func TimeOfDay(frame int) float64 {
	f := frame % DayLengthFrames
	if f < 0 {
		f += DayLengthFrames
	}
	return float64(f) / float64(DayLengthFrames)
}

// IsNight reports whether timeOfDay falls outside the dawn-to-dusk
// band [0.15, 0.85), matching the boundaries
// spawners.AutoFoodController.LiveFoodChance already uses.
func IsNight(timeOfDay float64) bool {
	return timeOfDay < 0.15 || timeOfDay >= 0.85
}

// ActivityModifier derives a [nightFloorActivity,1] multiplier from
// time of day, peaking at midday and tapering to its floor at
// midnight, smoothed with a cosine centered on 0.5 so the transition
// through dawn/dusk has no discontinuity for plant production and
// metabolic curves to react to.
func ActivityModifier(timeOfDay float64) float64 {
	d := math.Abs(timeOfDay - 0.5)
	if d > 0.5 {
		d = 0.5
	}
	curve := math.Cos(d * math.Pi) // 1 at midday, 0 at midnight
	return nightFloorActivity + (1-nightFloorActivity)*curve
}

// TimeString renders a 24-hour clock string for a time-of-day
// fraction, for presentation in snapshot/metrics output.
func TimeString(timeOfDay float64) string {
	totalMinutes := int(timeOfDay * 24 * 60)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
