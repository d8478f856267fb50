package components

// Castle is an inert decorative entity retained for completeness: it
// never moves and is collision-inert (excluded from every collision
// pass and behavior dispatch in the systems package).
type Castle struct {
	Locomotion
}
