package behavior

import "math"

type algoFunc func(p map[string]float64, ctx Context) (float64, float64)

// algorithms maps each registered name to its movement function.
// Every function returns a desired velocity in roughly [-1,1] per
// axis; Execute clamps the result so a misbehaving combination of
// mutated parameters can never hand the integrator a runaway vector.
var algorithms = map[string]algoFunc{
	"adaptive_pacer":           adaptivePacer,
	"alignment_matcher":        alignmentMatcher,
	"ambush_feeder":            ambushFeeder,
	"boids_behavior":           boidsBehavior,
	"border_hugger":            borderHugger,
	"bottom_feeder":            bottomFeeder,
	"boundary_explorer":        boundaryExplorer,
	"burst_swimmer":            burstSwimmer,
	"center_hugger":            centerHugger,
	"circular_hunter":          circularHunter,
	"cooperative_forager":      cooperativeForager,
	"corner_seeker":            cornerSeeker,
	"distance_keeper":          distanceKeeper,
	"dynamic_schooler":         dynamicSchooler,
	"energy_aware_food_seeker": energyAwareFoodSeeker,
	"energy_balancer":          energyBalancer,
	"energy_conserver":         energyConserver,
	"erratic_evader":           erraticEvader,
	"food_memory_seeker":       foodMemorySeeker,
	"food_quality_optimizer":  foodQualityOptimizer,
	"freeze_response":          freezeResponse,
	"front_runner":             frontRunner,
	"greedy_food_seeker":       greedyFoodSeeker,
	"group_defender":           groupDefender,
	"leader_follower":          leaderFollower,
	"loose_schooler":           looseSchooler,
	"metabolic_optimizer":      metabolicOptimizer,
	"mirror_mover":             mirrorMover,
	"nomadic_wanderer":         nomadicWanderer,
	"opportunistic_feeder":     opportunisticFeeder,
	"opportunistic_rester":     opportunisticRester,
	"panic_flee":               panicFlee,
	"patrol_feeder":            patrolFeeder,
	"perimeter_guard":          perimeterGuard,
	"perpendicular_escape":     perpendicularEscape,
	"random_explorer":          randomExplorer,
	"route_patroller":          routePatroller,
	"separation_seeker":        separationSeeker,
	"spiral_escape":            spiralEscape,
	"starvation_preventer":     starvationPreventer,
	"stealthy_avoider":         stealthyAvoider,
	"surface_skimmer":          surfaceSkimmer,
	"sustainable_cruiser":      sustainableCruiser,
	"territorial_defender":     territorialDefender,
	"tight_schooler":           tightSchooler,
	"vertical_escaper":         verticalEscaper,
	"wall_follower":            wallFollower,
	"zigzag_forager":           zigzagForager,
}

// --- shared geometric helpers -------------------------------------

// seek returns a unit vector from ctx toward (tx,ty).
func seek(ctx Context, tx, ty float64) (float64, float64) {
	return normalize(tx-ctx.X, ty-ctx.Y)
}

// flee returns a unit vector from (tx,ty) away, i.e. the opposite of seek.
func flee(ctx Context, tx, ty float64) (float64, float64) {
	x, y := seek(ctx, tx, ty)
	return -x, -y
}

func centerOf(w, h float64) (float64, float64) { return w / 2, h / 2 }

// --- food / energy seeking algorithms -------------------------------

func adaptivePacer(p map[string]float64, ctx Context) (float64, float64) {
	speed := p["base_speed"] + p["energy_influence"]*(1-ctx.EnergyRatio)
	if ctx.NearestFood == nil {
		return ctx.VX * speed, ctx.VY * speed
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * speed, y * speed
}

func ambushFeeder(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood != nil && ctx.NearestFood.Distance <= p["strike_distance"] {
		x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		return x * p["strike_speed"], y * p["strike_speed"]
	}
	return 0, 0 // patient: hold position until prey is close
}

func bottomFeeder(p map[string]float64, ctx Context) (float64, float64) {
	targetY := p["preferred_depth"] * ctx.BoundsH
	dy := (targetY - ctx.Y) / ctx.BoundsH
	dx := 0.0
	if ctx.NearestFood != nil {
		dx, _ = seek(ctx, ctx.NearestFood.X, ctx.Y)
	}
	return dx * p["search_speed"], dy * p["search_speed"]
}

func energyAwareFoodSeeker(p map[string]float64, ctx Context) (float64, float64) {
	speed := p["calm_speed"]
	if ctx.EnergyRatio < p["urgency_threshold"] {
		speed = p["urgent_speed"]
	}
	if ctx.NearestFood == nil {
		return ctx.VX * speed, ctx.VY * speed
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * speed, y * speed
}

func energyBalancer(p map[string]float64, ctx Context) (float64, float64) {
	switch {
	case ctx.EnergyRatio > p["max_energy_ratio"]:
		return ctx.VX * 0.3, ctx.VY * 0.3 // coast, no need to forage
	case ctx.EnergyRatio < p["min_energy_ratio"] && ctx.NearestFood != nil:
		return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	default:
		return ctx.VX * 0.6, ctx.VY * 0.6
	}
}

func energyConserver(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.EnergyRatio < p["activity_threshold"] {
		return ctx.VX * p["rest_speed"], ctx.VY * p["rest_speed"]
	}
	if ctx.NearestFood != nil {
		return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	}
	return ctx.VX, ctx.VY
}

func foodMemorySeeker(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.Rand01() < p["exploration_rate"] || ctx.NearestFood == nil {
		a := ctx.Rand01() * 2 * math.Pi
		return math.Cos(a), math.Sin(a)
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * p["memory_strength"], y * p["memory_strength"]
}

func foodQualityOptimizer(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood == nil {
		return 0, 0
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	score := p["quality_weight"]*ctx.NearestFood.Quality - p["distance_weight"]*ctx.NearestFood.Distance/ctx.BoundsW
	score = clamp01(score + 0.5)
	return x * score, y * score
}

func greedyFoodSeeker(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood == nil || ctx.NearestFood.Distance > p["detection_range"]*ctx.BoundsW {
		return ctx.VX, ctx.VY
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * p["speed_multiplier"], y * p["speed_multiplier"]
}

func metabolicOptimizer(p map[string]float64, ctx Context) (float64, float64) {
	speed := p["low_efficiency_speed"]
	if ctx.EnergyRatio > p["efficiency_threshold"] {
		speed = p["high_efficiency_speed"]
	}
	if ctx.NearestFood != nil {
		x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		return x * speed, y * speed
	}
	return ctx.VX * speed, ctx.VY * speed
}

func opportunisticFeeder(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood == nil || ctx.NearestFood.Distance > p["max_pursuit_distance"] {
		return ctx.VX * p["speed"] * 0.5, ctx.VY * p["speed"] * 0.5
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * p["speed"], y * p["speed"]
}

func starvationPreventer(p map[string]float64, ctx Context) (float64, float64) {
	urgency := 1.0
	if ctx.EnergyRatio < p["critical_threshold"] {
		urgency = p["urgency_multiplier"]
	}
	if ctx.NearestFood == nil {
		return ctx.VX * urgency, ctx.VY * urgency
	}
	x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	return x * urgency, y * urgency
}

func patrolFeeder(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood != nil {
		x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		return x * p["food_priority"], y * p["food_priority"]
	}
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	ang := ctx.Rand01() * 2 * math.Pi
	tx := cx + math.Cos(ang)*p["patrol_radius"]
	ty := cy + math.Sin(ang)*p["patrol_radius"]
	x, y := seek(ctx, tx, ty)
	return x * p["patrol_speed"], y * p["patrol_speed"]
}

// --- predator avoidance algorithms ----------------------------------

func panicFlee(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator != nil && ctx.NearestPredator.Distance <= p["panic_distance"] {
		x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return x * p["flee_speed"], y * p["flee_speed"]
	}
	if ctx.EnergyRatio < 0.7 && ctx.NearestFood != nil {
		return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	}
	return ctx.VX, ctx.VY
}

func distanceKeeper(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil {
		if ctx.NearestFood != nil {
			return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		}
		return ctx.VX, ctx.VY
	}
	band := p["safe_distance"]
	if ctx.EnergyRatio < 0.3 {
		band *= 0.7
	}
	d := ctx.NearestPredator.Distance
	switch {
	case d < band*0.8:
		x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return x * p["flee_speed"], y * p["flee_speed"]
	case d > band*1.2:
		if ctx.NearestFood != nil {
			return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		}
		x, y := seek(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return x * p["approach_speed"], y * p["approach_speed"]
	default:
		x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return -y * p["approach_speed"], x * p["approach_speed"] // strafe perpendicular
	}
}

func erraticEvader(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil || ctx.NearestPredator.Distance > p["threat_range"] {
		return ctx.VX, ctx.VY
	}
	x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
	jx := (ctx.Rand01()*2 - 1) * p["randomness"]
	jy := (ctx.Rand01()*2 - 1) * p["randomness"]
	return (x + jx) * p["evasion_speed"], (y + jy) * p["evasion_speed"]
}

func freezeResponse(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil {
		return ctx.VX, ctx.VY
	}
	if ctx.NearestPredator.Distance < p["freeze_distance"] {
		return 0, 0
	}
	if ctx.NearestPredator.Distance > p["resume_distance"] {
		return ctx.VX, ctx.VY
	}
	return ctx.VX * 0.2, ctx.VY * 0.2
}

func perpendicularEscape(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil {
		return ctx.VX, ctx.VY
	}
	x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
	return -y * p["escape_speed"], x * p["escape_speed"]
}

func spiralEscape(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil {
		return ctx.VX, ctx.VY
	}
	fx, fy := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
	ang := float64(ctx.Age) * p["spiral_rate"]
	rx := fx*math.Cos(ang) - fy*math.Sin(ang)
	ry := fx*math.Sin(ang) + fy*math.Cos(ang)
	return rx, ry
}

func stealthyAvoider(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator != nil && ctx.NearestPredator.Distance < p["awareness_range"] {
		x, y := flee(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return x * p["stealth_speed"], y * p["stealth_speed"]
	}
	return ctx.VX * p["stealth_speed"], ctx.VY * p["stealth_speed"]
}

func verticalEscaper(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator == nil {
		return ctx.VX, ctx.VY
	}
	dir := 1.0
	if ctx.NearestPredator.Y < ctx.Y {
		dir = -1
	}
	return 0, dir * p["escape_speed"]
}

func groupDefender(p map[string]float64, ctx Context) (float64, float64) {
	if len(ctx.Nearby) == 0 {
		return ctx.VX, ctx.VY
	}
	nearest := ctx.Nearby[0]
	if nearest.Distance > p["min_group_distance"] {
		x, y := seek(ctx, nearest.X, nearest.Y)
		return x * p["group_strength"], y * p["group_strength"]
	}
	return ctx.VX * 0.4, ctx.VY * 0.4
}

func territorialDefender(p map[string]float64, ctx Context) (float64, float64) {
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	d := math.Hypot(ctx.X-cx, ctx.Y-cy)
	if d > p["territory_radius"] {
		x, y := seek(ctx, cx, cy)
		return x * p["aggression"], y * p["aggression"]
	}
	if ctx.NearestPredator != nil && ctx.NearestPredator.Distance < p["territory_radius"] {
		x, y := seek(ctx, ctx.NearestPredator.X, ctx.NearestPredator.Y)
		return x * p["aggression"], y * p["aggression"]
	}
	return 0, 0
}

// --- schooling / social algorithms ----------------------------------

func averageNeighbor(neighbors []Neighbor) (float64, float64, bool) {
	if len(neighbors) == 0 {
		return 0, 0, false
	}
	var sx, sy float64
	for _, n := range neighbors {
		sx += n.X
		sy += n.Y
	}
	return sx / float64(len(neighbors)), sy / float64(len(neighbors)), true
}

func boidsBehavior(p map[string]float64, ctx Context) (float64, float64) {
	if len(ctx.Nearby) == 0 {
		return ctx.VX, ctx.VY
	}
	var ax, ay, sepx, sepy float64
	for _, n := range ctx.Nearby {
		ax += n.X
		ay += n.Y
		if n.Distance > 0 {
			dx, dy := ctx.X-n.X, ctx.Y-n.Y
			sepx += dx / n.Distance
			sepy += dy / n.Distance
		}
	}
	count := float64(len(ctx.Nearby))
	cx, cy := seek(ctx, ax/count, ay/count) // cohesion
	sx, sy := normalize(sepx, sepy)         // separation
	alignX, alignY := normalize(ctx.VX, ctx.VY)

	wx := p["alignment_weight"]*alignX + p["cohesion_weight"]*cx + p["separation_weight"]*sx
	wy := p["alignment_weight"]*alignY + p["cohesion_weight"]*cy + p["separation_weight"]*sy
	return wx, wy
}

func alignmentMatcher(p map[string]float64, ctx Context) (float64, float64) {
	withinRadius := make([]Neighbor, 0, len(ctx.Nearby))
	for _, n := range ctx.Nearby {
		if n.Distance <= p["alignment_radius"] {
			withinRadius = append(withinRadius, n)
		}
	}
	ax, ay, ok := averageNeighbor(withinRadius)
	if !ok {
		return ctx.VX, ctx.VY
	}
	x, y := seek(ctx, ax, ay)
	return x * p["alignment_strength"], y * p["alignment_strength"]
}

func cooperativeForager(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood != nil && ctx.Rand01() < p["independence"] {
		return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	}
	if ax, ay, ok := averageNeighbor(ctx.Nearby); ok {
		x, y := seek(ctx, ax, ay)
		return x * p["follow_strength"], y * p["follow_strength"]
	}
	return ctx.VX, ctx.VY
}

func dynamicSchooler(p map[string]float64, ctx Context) (float64, float64) {
	cohesion := p["calm_cohesion"]
	if ctx.NearestPredator != nil && ctx.NearestPredator.Distance < p["danger_threshold"] {
		cohesion = p["danger_cohesion"]
	}
	ax, ay, ok := averageNeighbor(ctx.Nearby)
	if !ok {
		return ctx.VX, ctx.VY
	}
	x, y := seek(ctx, ax, ay)
	return x * cohesion, y * cohesion
}

func frontRunner(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood != nil && ctx.Rand01() < p["independence"] {
		x, y := seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
		return x * p["leadership_strength"], y * p["leadership_strength"]
	}
	return ctx.VX * p["leadership_strength"], ctx.VY * p["leadership_strength"]
}

func leaderFollower(p map[string]float64, ctx Context) (float64, float64) {
	if len(ctx.Nearby) == 0 {
		return ctx.VX, ctx.VY
	}
	leader := ctx.Nearby[0]
	if leader.Distance > p["max_follow_distance"] {
		return ctx.VX, ctx.VY
	}
	x, y := seek(ctx, leader.X, leader.Y)
	return x * p["follow_strength"], y * p["follow_strength"]
}

func looseSchooler(p map[string]float64, ctx Context) (float64, float64) {
	ax, ay, ok := averageNeighbor(ctx.Nearby)
	if !ok {
		return ctx.VX, ctx.VY
	}
	d := math.Hypot(ax-ctx.X, ay-ctx.Y)
	if d < p["max_distance"] {
		return ctx.VX * 0.5, ctx.VY * 0.5
	}
	x, y := seek(ctx, ax, ay)
	return x * p["cohesion_strength"], y * p["cohesion_strength"]
}

func mirrorMover(p map[string]float64, ctx Context) (float64, float64) {
	if len(ctx.Nearby) == 0 {
		return ctx.VX, ctx.VY
	}
	n := ctx.Nearby[0]
	if n.Distance > p["mirror_distance"] {
		x, y := seek(ctx, n.X, n.Y)
		return x * p["mirror_strength"], y * p["mirror_strength"]
	}
	return ctx.VX, ctx.VY
}

func separationSeeker(p map[string]float64, ctx Context) (float64, float64) {
	var sx, sy float64
	for _, n := range ctx.Nearby {
		if n.Distance < p["min_distance"] && n.Distance > 0 {
			dx, dy := ctx.X-n.X, ctx.Y-n.Y
			sx += dx / n.Distance
			sy += dy / n.Distance
		}
	}
	x, y := normalize(sx, sy)
	return x * p["separation_strength"], y * p["separation_strength"]
}

func tightSchooler(p map[string]float64, ctx Context) (float64, float64) {
	ax, ay, ok := averageNeighbor(ctx.Nearby)
	if !ok {
		return ctx.VX, ctx.VY
	}
	d := math.Hypot(ax-ctx.X, ay-ctx.Y)
	if d < p["preferred_distance"] {
		x, y := flee(ctx, ax, ay)
		return x * p["cohesion_strength"] * 0.5, y * p["cohesion_strength"] * 0.5
	}
	x, y := seek(ctx, ax, ay)
	return x * p["cohesion_strength"], y * p["cohesion_strength"]
}

// --- positional / patrol / exploration algorithms --------------------

func borderHugger(p map[string]float64, ctx Context) (float64, float64) {
	distances := []float64{ctx.X, ctx.BoundsW - ctx.X, ctx.Y, ctx.BoundsH - ctx.Y}
	minIdx, minD := 0, distances[0]
	for i, d := range distances {
		if d < minD {
			minD = d
			minIdx = i
		}
	}
	switch minIdx {
	case 0:
		return -p["hug_speed"], 0
	case 1:
		return p["hug_speed"], 0
	case 2:
		return 0, -p["hug_speed"]
	default:
		return 0, p["hug_speed"]
	}
}

func boundaryExplorer(p map[string]float64, ctx Context) (float64, float64) {
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	x, y := flee(ctx, cx, cy)
	return x * p["edge_preference"] * p["exploration_speed"], y * p["edge_preference"] * p["exploration_speed"]
}

func burstSwimmer(p map[string]float64, ctx Context) (float64, float64) {
	cycle := p["burst_duration"] + p["rest_duration"]
	phase := math.Mod(float64(ctx.Age), cycle)
	if phase < p["burst_duration"] {
		return ctx.VX * p["burst_speed"], ctx.VY * p["burst_speed"]
	}
	return ctx.VX * 0.1, ctx.VY * 0.1
}

func centerHugger(p map[string]float64, ctx Context) (float64, float64) {
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	d := math.Hypot(ctx.X-cx, ctx.Y-cy)
	if d > p["orbit_radius"] {
		x, y := seek(ctx, cx, cy)
		return x * p["return_strength"], y * p["return_strength"]
	}
	x, y := seek(ctx, cx, cy)
	return -y * p["return_strength"], x * p["return_strength"] // orbit tangentially
}

func circularHunter(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestFood != nil && ctx.NearestFood.Distance < p["circle_radius"]*p["strike_threshold"] {
		return seek(ctx, ctx.NearestFood.X, ctx.NearestFood.Y)
	}
	ang := float64(ctx.Age) * p["circle_speed"]
	return math.Cos(ang), math.Sin(ang)
}

func cornerSeeker(p map[string]float64, ctx Context) (float64, float64) {
	corners := [4][2]float64{{0, 0}, {ctx.BoundsW, 0}, {0, ctx.BoundsH}, {ctx.BoundsW, ctx.BoundsH}}
	bestD, bx, by := math.MaxFloat64, corners[0][0], corners[0][1]
	for _, c := range corners {
		d := math.Hypot(c[0]-ctx.X, c[1]-ctx.Y)
		if d < bestD {
			bestD, bx, by = d, c[0], c[1]
		}
	}
	x, y := seek(ctx, bx, by)
	return x * p["approach_speed"], y * p["approach_speed"]
}

func nomadicWanderer(p map[string]float64, ctx Context) (float64, float64) {
	ang := float64(ctx.Age) * p["direction_change_rate"] * 2 * math.Pi
	return math.Cos(ang) * p["wander_strength"], math.Sin(ang) * p["wander_strength"]
}

func opportunisticRester(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.NearestPredator != nil && ctx.NearestPredator.Distance < p["safe_radius"] {
		return ctx.VX * p["active_speed"], ctx.VY * p["active_speed"]
	}
	return 0, 0
}

func perimeterGuard(p map[string]float64, ctx Context) (float64, float64) {
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	ang := float64(ctx.Age) * p["orbit_speed"] * 0.1
	tx := cx + math.Cos(ang)*p["orbit_radius"]
	ty := cy + math.Sin(ang)*p["orbit_radius"]
	return seek(ctx, tx, ty)
}

func randomExplorer(p map[string]float64, ctx Context) (float64, float64) {
	if ctx.Rand01() < p["change_frequency"] {
		ang := ctx.Rand01() * 2 * math.Pi
		return math.Cos(ang) * p["exploration_speed"], math.Sin(ang) * p["exploration_speed"]
	}
	return ctx.VX, ctx.VY
}

func routePatroller(p map[string]float64, ctx Context) (float64, float64) {
	cx, cy := centerOf(ctx.BoundsW, ctx.BoundsH)
	d := math.Hypot(ctx.X-cx, ctx.Y-cy)
	if d < p["waypoint_threshold"] {
		ang := ctx.Rand01() * 2 * math.Pi
		tx := cx + math.Cos(ang)*ctx.BoundsW*0.4
		ty := cy + math.Sin(ang)*ctx.BoundsH*0.4
		x, y := seek(ctx, tx, ty)
		return x * p["patrol_speed"], y * p["patrol_speed"]
	}
	return ctx.VX * p["patrol_speed"], ctx.VY * p["patrol_speed"]
}

func surfaceSkimmer(p map[string]float64, ctx Context) (float64, float64) {
	targetY := p["preferred_depth"] * ctx.BoundsH
	dy := (targetY - ctx.Y) / ctx.BoundsH
	return ctx.VX * p["horizontal_speed"], dy
}

func sustainableCruiser(p map[string]float64, ctx Context) (float64, float64) {
	x, y := normalize(ctx.VX, ctx.VY)
	if x == 0 && y == 0 {
		x, y = 1, 0
	}
	return x * p["cruise_speed"] * p["consistency"], y * p["cruise_speed"] * p["consistency"]
}

func wallFollower(p map[string]float64, ctx Context) (float64, float64) {
	distances := []float64{ctx.X, ctx.BoundsW - ctx.X, ctx.Y, ctx.BoundsH - ctx.Y}
	minD := distances[0]
	for _, d := range distances[1:] {
		if d < minD {
			minD = d
		}
	}
	if minD > p["wall_distance"] {
		// head toward the nearest wall
		switch minD {
		case distances[0]:
			return -p["follow_speed"], 0
		case distances[1]:
			return p["follow_speed"], 0
		case distances[2]:
			return 0, -p["follow_speed"]
		default:
			return 0, p["follow_speed"]
		}
	}
	// follow along the wall (tangential)
	if minD == distances[2] || minD == distances[3] {
		return p["follow_speed"], 0
	}
	return 0, p["follow_speed"]
}

func zigzagForager(p map[string]float64, ctx Context) (float64, float64) {
	ang := math.Sin(float64(ctx.Age)*p["zigzag_frequency"]) * p["zigzag_amplitude"]
	fx, fy := normalize(ctx.VX, ctx.VY)
	if fx == 0 && fy == 0 {
		fx = 1
	}
	px, py := -fy, fx
	x := fx*p["forward_speed"] + px*ang
	y := fy*p["forward_speed"] + py*ang
	return x, y
}
