package pokerstrategy

import "math/rand"

// Action is a betting decision a strategy can return.
type Action uint8

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Decision is a strategy's output: an action and, for Call/Raise, the
// amount committed.
type Decision struct {
	Action Action
	Amount float64
}

// Situation is the read-only betting context a strategy decides from.
type Situation struct {
	HandStrength    float64 // normalized 0..1
	CurrentBet      float64
	OpponentBet     float64
	Pot             float64
	PlayerEnergy    float64
	OnButton        bool
	Rand01          func() float64
}

// Instance is one player's evolved betting strategy.
type Instance struct {
	Name       string
	Parameters map[string]float64
}

// RandomInstance picks a uniformly random strategy name and draws its
// parameters uniformly within their declared bounds.
func RandomInstance(r *rand.Rand) Instance {
	name := catalogOrder[r.Intn(len(catalogOrder))]
	return NewInstance(r, name)
}

// NewInstance builds a named strategy instance with randomly drawn
// parameters. Panics on an unregistered name for the same reason
// behavior.NewInstance does.
func NewInstance(r *rand.Rand, name string) Instance {
	s, ok := specs[name]
	if !ok {
		panic("pokerstrategy: unknown strategy " + name)
	}
	params := make(map[string]float64, len(s.Params))
	for _, p := range s.Params {
		b := s.Bounds[p]
		params[p] = b.Low + r.Float64()*b.span()
	}
	return Instance{Name: name, Parameters: params}
}

// Mutate perturbs each parameter independently, matching the behavior
// package's mutation scheme: a probability gate, then a Gaussian
// perturbation scaled by each parameter's registered bound span,
// clamped back into range.
func (in Instance) Mutate(r *rand.Rand, rate, strength float64) Instance {
	s, ok := specs[in.Name]
	if !ok {
		return in
	}
	out := make(map[string]float64, len(in.Parameters))
	for k, v := range in.Parameters {
		out[k] = v
	}
	for _, p := range s.Params {
		if r.Float64() >= rate {
			continue
		}
		b := s.Bounds[p]
		span := b.span()
		if span <= 0 {
			span = 1
		}
		out[p] = b.clamp(out[p] + r.NormFloat64()*strength*span)
	}
	return Instance{Name: in.Name, Parameters: out}
}

// Decide dispatches to the named strategy's betting-decision function.
func (in Instance) Decide(s Situation) Decision {
	fn, ok := strategies[in.Name]
	if !ok {
		return Decision{Action: Fold}
	}
	return fn(in.Parameters, s)
}
