package behavior

import "math/rand"

// Instance is one fish's behavior: an algorithm identity plus its own
// mutated parameter values, dispatched through the shared Execute
// entry point rather than a distinct Go type per algorithm. This
// mirrors the single generic BehaviorAlgorithm base the original
// implementation used for every variant.
type Instance struct {
	Name       string
	Parameters map[string]float64
}

// RandomInstance picks a uniformly random algorithm name and draws
// each of its parameters uniformly within its declared bounds.
func RandomInstance(r *rand.Rand) Instance {
	name := catalogOrder[r.Intn(len(catalogOrder))]
	return NewInstance(r, name)
}

// NewInstance builds an instance of a named algorithm with randomly
// drawn parameters. Panics if name is not registered, since this is
// only ever called with a name drawn from Names() or a snapshot
// written by this same build.
func NewInstance(r *rand.Rand, name string) Instance {
	spec, ok := specs[name]
	if !ok {
		panic("behavior: unknown algorithm " + name)
	}
	params := make(map[string]float64, len(spec.Params))
	for _, p := range spec.Params {
		b := spec.Bounds[p]
		params[p] = b.Low + r.Float64()*b.span()
	}
	return Instance{Name: name, Parameters: params}
}

// Mutate perturbs each parameter independently: with probability
// rate, add Gaussian noise scaled by strength and the parameter's
// bound span, then clamp back into range. Parameters absent from the
// registered spec (there are none by construction) are left alone.
func (in Instance) Mutate(r *rand.Rand, rate, strength float64) Instance {
	spec, ok := specs[in.Name]
	if !ok {
		return in
	}
	out := make(map[string]float64, len(in.Parameters))
	for k, v := range in.Parameters {
		out[k] = v
	}
	for _, p := range spec.Params {
		if r.Float64() >= rate {
			continue
		}
		b := spec.Bounds[p]
		span := b.span()
		if span <= 0 {
			span = 1
		}
		out[p] = b.clamp(out[p] + r.NormFloat64()*strength*span)
	}
	return Instance{Name: in.Name, Parameters: out}
}

// Execute dispatches to the named algorithm's movement function and
// returns a desired velocity with both components clamped to
// [-1,1], per the shared behavior contract.
func (in Instance) Execute(ctx Context) (float64, float64) {
	fn, ok := algorithms[in.Name]
	if !ok {
		return 0, 0
	}
	vx, vy := fn(in.Parameters, ctx)
	return clampComponent(vx), clampComponent(vy)
}

// Param returns a parameter's current value, or the zero value if the
// instance's algorithm does not declare it.
func (in Instance) Param(name string) float64 {
	return in.Parameters[name]
}
