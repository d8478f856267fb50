// Package pokerstrategy implements the betting-strategy catalog poker
// players evolve and draw from, parallel to the behavior package's
// movement catalog: a (name, parameter-map) pair dispatched through a
// shared Decide entry point rather than one Go type per strategy.
package pokerstrategy

// ParamBound is the closed [Low,High] range a named parameter mutates
// within.
type ParamBound struct{ Low, High float64 }

func (b ParamBound) span() float64 { return b.High - b.Low }
func (b ParamBound) clamp(v float64) float64 {
	if v < b.Low {
		return b.Low
	}
	if v > b.High {
		return b.High
	}
	return v
}

type spec struct {
	Params []string
	Bounds map[string]ParamBound
}

var specs = map[string]spec{}
var catalogOrder []string

func register(name string, order []string, bounds map[string]ParamBound) {
	specs[name] = spec{Params: order, Bounds: bounds}
	catalogOrder = append(catalogOrder, name)
}

// Names lists every registered strategy name, in catalog order.
func Names() []string {
	out := make([]string, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

func init() {
	register("tight_aggressive",
		[]string{"weak_fold_threshold", "strong_raise_threshold", "value_raise_multiplier", "bluff_frequency", "position_bonus"},
		map[string]ParamBound{
			"weak_fold_threshold":    {0.3, 0.5},
			"strong_raise_threshold": {0.6, 0.8},
			"value_raise_multiplier": {0.5, 1.0},
			"bluff_frequency":        {0.05, 0.15},
			"position_bonus":         {0.05, 0.15},
		})
	register("loose_aggressive",
		[]string{"weak_fold_threshold", "raise_threshold", "raise_multiplier", "bluff_frequency", "position_aggression"},
		map[string]ParamBound{
			"weak_fold_threshold": {0.15, 0.30},
			"raise_threshold":     {0.4, 0.6},
			"raise_multiplier":    {0.7, 1.5},
			"bluff_frequency":     {0.25, 0.45},
			"position_aggression": {0.1, 0.25},
		})
	register("tight_passive",
		[]string{"weak_fold_threshold", "raise_threshold", "call_threshold", "raise_multiplier", "bluff_frequency"},
		map[string]ParamBound{
			"weak_fold_threshold": {0.4, 0.6},
			"raise_threshold":     {0.75, 0.90},
			"call_threshold":      {0.35, 0.55},
			"raise_multiplier":    {0.3, 0.6},
			"bluff_frequency":     {0.01, 0.05},
		})
	register("loose_passive",
		[]string{"weak_fold_threshold", "raise_threshold", "call_threshold", "raise_multiplier", "pot_odds_sensitivity"},
		map[string]ParamBound{
			"weak_fold_threshold":   {0.10, 0.25},
			"raise_threshold":       {0.80, 0.95},
			"call_threshold":        {0.15, 0.30},
			"raise_multiplier":      {0.25, 0.50},
			"pot_odds_sensitivity":  {0.5, 1.5},
		})
	register("balanced",
		[]string{"weak_fold_threshold", "medium_threshold", "strong_threshold", "value_raise_multiplier", "bluff_multiplier", "bluff_frequency", "position_bonus", "pot_odds_factor"},
		map[string]ParamBound{
			"weak_fold_threshold":    {0.25, 0.40},
			"medium_threshold":       {0.45, 0.60},
			"strong_threshold":       {0.70, 0.85},
			"value_raise_multiplier": {0.5, 0.9},
			"bluff_multiplier":       {0.4, 0.8},
			"bluff_frequency":        {0.15, 0.30},
			"position_bonus":         {0.08, 0.18},
			"pot_odds_factor":        {1.2, 1.8},
		})
	register("maniac",
		[]string{"min_hand_to_play", "raise_frequency", "raise_sizing", "bluff_frequency", "all_in_threshold"},
		map[string]ParamBound{
			"min_hand_to_play": {0.05, 0.20},
			"raise_frequency":  {0.60, 0.85},
			"raise_sizing":     {1.0, 2.5},
			"bluff_frequency":  {0.40, 0.65},
			"all_in_threshold": {0.75, 0.95},
		})
	register("adaptive",
		[]string{"aggression_base", "pot_size_adjustment", "stack_depth_factor", "fold_threshold_tight", "fold_threshold_loose", "position_bonus"},
		map[string]ParamBound{
			"aggression_base":      {0.3, 0.6},
			"pot_size_adjustment":  {0.1, 0.3},
			"stack_depth_factor":   {0.5, 1.5},
			"fold_threshold_tight": {0.35, 0.50},
			"fold_threshold_loose": {0.15, 0.30},
			"position_bonus":       {0.08, 0.18},
		})
	register("positional_exploiter",
		[]string{"ip_raise_threshold", "oop_fold_threshold", "ip_aggression_boost", "steal_frequency", "value_sizing"},
		map[string]ParamBound{
			"ip_raise_threshold":   {0.25, 0.40},
			"oop_fold_threshold":   {0.40, 0.55},
			"ip_aggression_boost":  {0.20, 0.40},
			"steal_frequency":      {0.35, 0.55},
			"value_sizing":         {0.6, 1.2},
		})
	register("trap_setter",
		[]string{"trap_threshold", "trap_frequency", "spring_trap_threshold", "weak_fold_threshold", "check_raise_frequency"},
		map[string]ParamBound{
			"trap_threshold":         {0.70, 0.85},
			"trap_frequency":         {0.50, 0.75},
			"spring_trap_threshold":  {0.80, 0.95},
			"weak_fold_threshold":    {0.30, 0.45},
			"check_raise_frequency":  {0.25, 0.45},
		})
	register("mathematical",
		[]string{"required_equity_multiplier", "implied_odds_factor", "value_bet_threshold", "bet_sizing_pot_fraction", "fold_equity_threshold"},
		map[string]ParamBound{
			"required_equity_multiplier": {1.0, 1.4},
			"implied_odds_factor":        {1.2, 2.0},
			"value_bet_threshold":        {0.55, 0.70},
			"bet_sizing_pot_fraction":    {0.5, 0.8},
			"fold_equity_threshold":      {0.25, 0.40},
		})
	register("always_fold", nil, nil)
	register("random", nil, nil)
}
