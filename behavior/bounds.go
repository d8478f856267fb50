// Package behavior implements the named, parametrized movement
// algorithm catalog every fish draws its behavior from. Each
// algorithm is a (name, parameter map) pair dispatched through a
// shared Execute entry point, rather than one Go type per algorithm.
package behavior

// ParamBound is the closed [Low,High] range a named parameter mutates
// within.
type ParamBound struct {
	Low, High float64
}

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

// Spec describes one catalog entry: its declared parameter bounds, in
// a stable order so RandomInstance and snapshots are reproducible.
type Spec struct {
	Name   string
	Params []string
	Bounds map[string]ParamBound
}

// Names lists every registered algorithm name, in catalog order.
func Names() []string {
	out := make([]string, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// specs maps algorithm name to its Spec.
var specs = map[string]Spec{}

// catalogOrder fixes iteration order for Names/RandomInstance.
var catalogOrder []string

func register(name string, bounds map[string]ParamBound) {
	params := make([]string, 0, len(bounds))
	for _, p := range paramOrder[name] {
		params = append(params, p)
	}
	specs[name] = Spec{Name: name, Params: params, Bounds: bounds}
	catalogOrder = append(catalogOrder, name)
}

// paramOrder pins each algorithm's parameter iteration order (map
// iteration in Go is randomized, and mutation/random-instance draws
// must be reproducible given a seeded RNG).
var paramOrder = map[string][]string{
	"adaptive_pacer":            {"base_speed", "energy_influence"},
	"alignment_matcher":         {"alignment_radius", "alignment_strength"},
	"ambush_feeder":             {"patience", "strike_distance", "strike_speed"},
	"boids_behavior":            {"alignment_weight", "cohesion_weight", "separation_weight"},
	"border_hugger":             {"hug_speed"},
	"bottom_feeder":             {"preferred_depth", "search_speed"},
	"boundary_explorer":         {"edge_preference", "exploration_speed"},
	"burst_swimmer":             {"burst_duration", "burst_speed", "rest_duration"},
	"center_hugger":             {"orbit_radius", "return_strength"},
	"circular_hunter":           {"circle_radius", "circle_speed", "strike_threshold"},
	"cooperative_forager":       {"follow_strength", "independence"},
	"corner_seeker":             {"approach_speed"},
	"distance_keeper":           {"approach_speed", "flee_speed", "safe_distance"},
	"dynamic_schooler":          {"calm_cohesion", "danger_cohesion", "danger_threshold"},
	"energy_aware_food_seeker":  {"calm_speed", "urgency_threshold", "urgent_speed"},
	"energy_balancer":           {"max_energy_ratio", "min_energy_ratio"},
	"energy_conserver":          {"activity_threshold", "rest_speed"},
	"erratic_evader":            {"evasion_speed", "randomness", "threat_range"},
	"food_memory_seeker":        {"exploration_rate", "memory_strength"},
	"food_quality_optimizer":    {"distance_weight", "quality_weight"},
	"freeze_response":           {"freeze_distance", "resume_distance"},
	"front_runner":              {"independence", "leadership_strength"},
	"greedy_food_seeker":        {"detection_range", "speed_multiplier"},
	"group_defender":            {"group_strength", "min_group_distance"},
	"leader_follower":           {"follow_strength", "max_follow_distance"},
	"loose_schooler":            {"cohesion_strength", "max_distance"},
	"metabolic_optimizer":       {"efficiency_threshold", "high_efficiency_speed", "low_efficiency_speed"},
	"mirror_mover":              {"mirror_distance", "mirror_strength"},
	"nomadic_wanderer":          {"direction_change_rate", "wander_strength"},
	"opportunistic_feeder":      {"max_pursuit_distance", "speed"},
	"opportunistic_rester":      {"active_speed", "safe_radius"},
	"panic_flee":                {"flee_speed", "panic_distance"},
	"patrol_feeder":             {"food_priority", "patrol_radius", "patrol_speed"},
	"perimeter_guard":           {"orbit_radius", "orbit_speed"},
	"perpendicular_escape":      {"escape_speed"},
	"random_explorer":           {"change_frequency", "exploration_speed"},
	"route_patroller":           {"patrol_speed", "waypoint_threshold"},
	"separation_seeker":         {"min_distance", "separation_strength"},
	"spiral_escape":             {"spiral_radius", "spiral_rate"},
	"starvation_preventer":      {"critical_threshold", "urgency_multiplier"},
	"stealthy_avoider":          {"awareness_range", "stealth_speed"},
	"surface_skimmer":           {"horizontal_speed", "preferred_depth"},
	"sustainable_cruiser":       {"consistency", "cruise_speed"},
	"territorial_defender":      {"aggression", "territory_radius"},
	"tight_schooler":            {"cohesion_strength", "preferred_distance"},
	"vertical_escaper":          {"escape_speed"},
	"wall_follower":             {"follow_speed", "wall_distance"},
	"zigzag_forager":            {"forward_speed", "zigzag_amplitude", "zigzag_frequency"},
}

func init() {
	register("adaptive_pacer", map[string]ParamBound{"base_speed": {0.5, 0.8}, "energy_influence": {0.3, 0.7}})
	register("alignment_matcher", map[string]ParamBound{"alignment_radius": {60, 120}, "alignment_strength": {0.5, 1.0}})
	register("ambush_feeder", map[string]ParamBound{"patience": {0.5, 1.0}, "strike_distance": {30, 80}, "strike_speed": {1.0, 1.5}})
	register("boids_behavior", map[string]ParamBound{"alignment_weight": {0.3, 0.7}, "cohesion_weight": {0.3, 0.7}, "separation_weight": {0.3, 0.7}})
	register("border_hugger", map[string]ParamBound{"hug_speed": {0.7, 1.1}})
	register("bottom_feeder", map[string]ParamBound{"preferred_depth": {0.7, 0.9}, "search_speed": {0.4, 0.8}})
	register("boundary_explorer", map[string]ParamBound{"edge_preference": {0.6, 1.0}, "exploration_speed": {0.5, 0.8}})
	register("burst_swimmer", map[string]ParamBound{"burst_duration": {30, 90}, "burst_speed": {1.2, 1.6}, "rest_duration": {60, 120}})
	register("center_hugger", map[string]ParamBound{"orbit_radius": {50, 120}, "return_strength": {0.5, 0.9}})
	register("circular_hunter", map[string]ParamBound{"circle_radius": {40, 100}, "circle_speed": {0.05, 0.15}, "strike_threshold": {0.3, 0.6}})
	register("cooperative_forager", map[string]ParamBound{"follow_strength": {0.5, 0.9}, "independence": {0.2, 0.5}})
	register("corner_seeker", map[string]ParamBound{"approach_speed": {0.4, 0.7}})
	register("distance_keeper", map[string]ParamBound{"approach_speed": {0.3, 0.6}, "flee_speed": {0.8, 1.2}, "safe_distance": {120, 200}})
	register("dynamic_schooler", map[string]ParamBound{"calm_cohesion": {0.3, 0.6}, "danger_cohesion": {0.8, 1.2}, "danger_threshold": {150, 250}})
	register("energy_aware_food_seeker", map[string]ParamBound{"calm_speed": {0.3, 0.6}, "urgency_threshold": {0.3, 0.7}, "urgent_speed": {0.8, 1.2}})
	register("energy_balancer", map[string]ParamBound{"max_energy_ratio": {0.7, 0.9}, "min_energy_ratio": {0.3, 0.5}})
	register("energy_conserver", map[string]ParamBound{"activity_threshold": {0.4, 0.7}, "rest_speed": {0.1, 0.3}})
	register("erratic_evader", map[string]ParamBound{"evasion_speed": {0.8, 1.3}, "randomness": {0.5, 1.0}, "threat_range": {100, 180}})
	register("food_memory_seeker", map[string]ParamBound{"exploration_rate": {0.2, 0.5}, "memory_strength": {0.5, 1.0}})
	register("food_quality_optimizer", map[string]ParamBound{"distance_weight": {0.3, 0.7}, "quality_weight": {0.5, 1.0}})
	register("freeze_response", map[string]ParamBound{"freeze_distance": {80, 150}, "resume_distance": {200, 300}})
	register("front_runner", map[string]ParamBound{"independence": {0.5, 0.9}, "leadership_strength": {0.7, 1.2}})
	register("greedy_food_seeker", map[string]ParamBound{"detection_range": {0.5, 1.0}, "speed_multiplier": {0.7, 1.3}})
	register("group_defender", map[string]ParamBound{"group_strength": {0.6, 1.0}, "min_group_distance": {30, 80}})
	register("leader_follower", map[string]ParamBound{"follow_strength": {0.6, 1.0}, "max_follow_distance": {80, 150}})
	register("loose_schooler", map[string]ParamBound{"cohesion_strength": {0.3, 0.6}, "max_distance": {100, 200}})
	register("metabolic_optimizer", map[string]ParamBound{"efficiency_threshold": {0.5, 0.8}, "high_efficiency_speed": {0.7, 1.1}, "low_efficiency_speed": {0.2, 0.4}})
	register("mirror_mover", map[string]ParamBound{"mirror_distance": {50, 100}, "mirror_strength": {0.6, 1.0}})
	register("nomadic_wanderer", map[string]ParamBound{"direction_change_rate": {0.01, 0.05}, "wander_strength": {0.5, 0.9}})
	register("opportunistic_feeder", map[string]ParamBound{"max_pursuit_distance": {50, 200}, "speed": {0.6, 1.0}})
	register("opportunistic_rester", map[string]ParamBound{"active_speed": {0.5, 0.9}, "safe_radius": {100, 200}})
	register("panic_flee", map[string]ParamBound{"flee_speed": {1.2, 1.8}, "panic_distance": {100, 200}})
	register("patrol_feeder", map[string]ParamBound{"food_priority": {0.6, 1.0}, "patrol_radius": {50, 150}, "patrol_speed": {0.5, 1.0}})
	register("perimeter_guard", map[string]ParamBound{"orbit_radius": {70, 130}, "orbit_speed": {0.5, 0.9}})
	register("perpendicular_escape", map[string]ParamBound{"escape_speed": {1.0, 1.4}})
	register("random_explorer", map[string]ParamBound{"change_frequency": {0.02, 0.08}, "exploration_speed": {0.5, 0.9}})
	register("route_patroller", map[string]ParamBound{"patrol_speed": {0.5, 0.8}, "waypoint_threshold": {30, 60}})
	register("separation_seeker", map[string]ParamBound{"min_distance": {30, 70}, "separation_strength": {0.5, 1.0}})
	register("spiral_escape", map[string]ParamBound{"spiral_radius": {20, 60}, "spiral_rate": {0.1, 0.3}})
	register("starvation_preventer", map[string]ParamBound{"critical_threshold": {0.2, 0.4}, "urgency_multiplier": {1.3, 1.8}})
	register("stealthy_avoider", map[string]ParamBound{"awareness_range": {150, 250}, "stealth_speed": {0.3, 0.6}})
	register("surface_skimmer", map[string]ParamBound{"horizontal_speed": {0.5, 1.0}, "preferred_depth": {0.1, 0.3}})
	register("sustainable_cruiser", map[string]ParamBound{"consistency": {0.7, 1.0}, "cruise_speed": {0.4, 0.7}})
	register("territorial_defender", map[string]ParamBound{"aggression": {0.5, 1.0}, "territory_radius": {80, 150}})
	register("tight_schooler", map[string]ParamBound{"cohesion_strength": {0.7, 1.2}, "preferred_distance": {20, 50}})
	register("vertical_escaper", map[string]ParamBound{"escape_speed": {1.0, 1.5}})
	register("wall_follower", map[string]ParamBound{"follow_speed": {0.5, 0.8}, "wall_distance": {20, 60}})
	register("zigzag_forager", map[string]ParamBound{"forward_speed": {0.6, 1.0}, "zigzag_amplitude": {0.5, 1.2}, "zigzag_frequency": {0.02, 0.08}})
}
