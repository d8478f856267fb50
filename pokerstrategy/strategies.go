package pokerstrategy

type strategyFunc func(p map[string]float64, s Situation) Decision

var strategies = map[string]strategyFunc{
	"tight_aggressive":      tightAggressive,
	"loose_aggressive":      looseAggressive,
	"tight_passive":         tightPassive,
	"loose_passive":         loosePassive,
	"balanced":              balanced,
	"maniac":                maniac,
	"adaptive":              adaptive,
	"positional_exploiter":  positionalExploiter,
	"trap_setter":           trapSetter,
	"mathematical":          mathematical,
	"always_fold":           alwaysFold,
	"random":                randomStrategy,
}

func callAmount(s Situation) float64 { return s.OpponentBet - s.CurrentBet }

func checkOrCall(call float64) Decision {
	if call > 0 {
		return Decision{Action: Call, Amount: call}
	}
	return Decision{Action: Check}
}

// tightAggressive plays few hands aggressively: folds weak hands
// (occasionally bluffing instead), raises big with strong hands.
func tightAggressive(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	strength := s.HandStrength
	if s.OnButton {
		strength = minF(1, strength+p["position_bonus"])
	}
	if strength < p["weak_fold_threshold"] {
		if s.Rand01() < p["bluff_frequency"] {
			return Decision{Action: Raise, Amount: minF(s.Pot*0.5, s.PlayerEnergy*0.2)}
		}
		return Decision{Action: Fold}
	}
	if strength >= p["strong_raise_threshold"] {
		raise := s.Pot * p["value_raise_multiplier"]
		raise = minF(raise, s.PlayerEnergy*0.4)
		raise = maxF(raise, call*1.5)
		return Decision{Action: Raise, Amount: raise}
	}
	return checkOrCall(call)
}

// looseAggressive plays many hands aggressively, opening pots with
// marginal hands and bluffing often.
func looseAggressive(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	strength := s.HandStrength
	if s.OnButton {
		strength += p["position_aggression"]
	}
	if call == 0 && strength > 0.2 {
		raise := s.Pot * p["raise_multiplier"]
		return Decision{Action: Raise, Amount: minF(raise, s.PlayerEnergy*0.5)}
	}
	if strength < p["weak_fold_threshold"] {
		return Decision{Action: Fold}
	}
	if s.Rand01() < p["bluff_frequency"] {
		bluff := s.Pot * (0.5 + s.Rand01()*0.7)
		return Decision{Action: Raise, Amount: minF(bluff, s.PlayerEnergy*0.3)}
	}
	if strength >= p["raise_threshold"] {
		raise := minF(s.Pot*p["raise_multiplier"], s.PlayerEnergy*0.4)
		return Decision{Action: Raise, Amount: maxF(raise, call*1.5)}
	}
	return checkOrCall(call)
}

// tightPassive (a "rock"): plays few hands, rarely raises, calls only
// when pot odds justify it.
func tightPassive(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	if s.HandStrength < p["weak_fold_threshold"] {
		return Decision{Action: Fold}
	}
	if s.HandStrength >= p["raise_threshold"] {
		raise := minF(s.Pot*p["raise_multiplier"], s.PlayerEnergy*0.25)
		return Decision{Action: Raise, Amount: maxF(raise, call*1.3)}
	}
	if s.HandStrength >= p["call_threshold"] {
		if call == 0 {
			return Decision{Action: Check}
		}
		potOdds := 1.0
		if s.Pot > 0 {
			potOdds = call / (s.Pot + call)
		}
		if s.HandStrength > potOdds*1.5 {
			return Decision{Action: Call, Amount: call}
		}
	}
	if call == 0 {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// loosePassive calls often, rarely raises or folds.
func loosePassive(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	if s.HandStrength < p["weak_fold_threshold"] {
		return Decision{Action: Fold}
	}
	if s.HandStrength >= p["raise_threshold"] {
		return Decision{Action: Raise, Amount: minF(s.Pot*p["raise_multiplier"], s.PlayerEnergy*0.3)}
	}
	if s.HandStrength >= p["call_threshold"] || call*p["pot_odds_sensitivity"] < s.Pot {
		return checkOrCall(call)
	}
	if call == 0 {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// balanced mixes value bets and bluffs at GTO-inspired frequencies
// across three hand-strength tiers.
func balanced(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	strength := s.HandStrength
	if s.OnButton {
		strength = minF(1, strength+p["position_bonus"])
	}
	if strength < p["weak_fold_threshold"] {
		if s.Rand01() < p["bluff_frequency"] {
			return Decision{Action: Raise, Amount: minF(s.Pot*p["bluff_multiplier"], s.PlayerEnergy*0.2)}
		}
		return Decision{Action: Fold}
	}
	if strength >= p["strong_threshold"] {
		return Decision{Action: Raise, Amount: minF(s.Pot*p["value_raise_multiplier"], s.PlayerEnergy*0.4)}
	}
	if strength >= p["medium_threshold"] {
		potOdds := 1.0
		if s.Pot > 0 {
			potOdds = call / (s.Pot + call)
		}
		if strength > potOdds*p["pot_odds_factor"] {
			return checkOrCall(call)
		}
	}
	if call == 0 {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// maniac plays nearly any hand, raising and bluffing at high
// frequency, shoving all-in with premium hands.
func maniac(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	if s.HandStrength >= p["all_in_threshold"] {
		return Decision{Action: Raise, Amount: s.PlayerEnergy}
	}
	if s.HandStrength < p["min_hand_to_play"] && s.Rand01() >= p["bluff_frequency"] {
		return Decision{Action: Fold}
	}
	if s.Rand01() < p["raise_frequency"] {
		return Decision{Action: Raise, Amount: minF(s.Pot*p["raise_sizing"], s.PlayerEnergy*0.6)}
	}
	return checkOrCall(call)
}

// adaptive scales aggression with pot size and effective stack depth.
func adaptive(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	foldThreshold := p["fold_threshold_loose"]
	if s.Pot < s.PlayerEnergy*0.2 {
		foldThreshold = p["fold_threshold_tight"]
	}
	strength := s.HandStrength
	if s.OnButton {
		strength = minF(1, strength+p["position_bonus"])
	}
	if strength < foldThreshold {
		return Decision{Action: Fold}
	}
	aggression := p["aggression_base"] + p["pot_size_adjustment"]*(s.Pot/maxF(s.PlayerEnergy, 1))
	aggression *= p["stack_depth_factor"]
	if strength*aggression > 0.5 {
		return Decision{Action: Raise, Amount: minF(s.Pot*aggression, s.PlayerEnergy*0.4)}
	}
	return checkOrCall(call)
}

// positionalExploiter leans heavily on button position: steals more
// in position, folds more out of it.
func positionalExploiter(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	if s.OnButton {
		if call == 0 && s.Rand01() < p["steal_frequency"] {
			return Decision{Action: Raise, Amount: minF(s.Pot*p["value_sizing"], s.PlayerEnergy*0.3)}
		}
		if s.HandStrength >= p["ip_raise_threshold"] {
			boosted := s.HandStrength + p["ip_aggression_boost"]
			return Decision{Action: Raise, Amount: minF(s.Pot*p["value_sizing"]*boosted, s.PlayerEnergy*0.4)}
		}
		return checkOrCall(call)
	}
	if s.HandStrength < p["oop_fold_threshold"] {
		return Decision{Action: Fold}
	}
	return checkOrCall(call)
}

// trapSetter slowplays strong hands, then springs the trap with a
// check-raise once the strength threshold clears.
func trapSetter(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	if s.HandStrength < p["weak_fold_threshold"] {
		return Decision{Action: Fold}
	}
	if s.HandStrength >= p["spring_trap_threshold"] {
		return Decision{Action: Raise, Amount: minF(s.Pot*1.2, s.PlayerEnergy*0.5)}
	}
	if s.HandStrength >= p["trap_threshold"] {
		if s.Rand01() < p["trap_frequency"] {
			return checkOrCall(call)
		}
		return Decision{Action: Raise, Amount: minF(s.Pot*0.7, s.PlayerEnergy*0.35)}
	}
	if call == 0 && s.Rand01() < p["check_raise_frequency"] {
		return Decision{Action: Check}
	}
	return checkOrCall(call)
}

// mathematical compares hand strength to pot-odds-derived required
// equity and bets a fixed pot fraction for value.
func mathematical(p map[string]float64, s Situation) Decision {
	call := callAmount(s)
	if call > s.PlayerEnergy {
		return Decision{Action: Fold}
	}
	requiredEquity := 0.0
	if s.Pot+call > 0 {
		requiredEquity = (call / (s.Pot + call)) * p["required_equity_multiplier"]
	}
	if s.HandStrength < requiredEquity*(1/p["implied_odds_factor"]) && s.HandStrength < p["fold_equity_threshold"] {
		return Decision{Action: Fold}
	}
	if s.HandStrength >= p["value_bet_threshold"] {
		return Decision{Action: Raise, Amount: minF(s.Pot*p["bet_sizing_pot_fraction"], s.PlayerEnergy*0.4)}
	}
	if s.HandStrength >= requiredEquity {
		return checkOrCall(call)
	}
	if call == 0 {
		return Decision{Action: Check}
	}
	return Decision{Action: Fold}
}

// alwaysFold is a baseline strategy for benchmarking: folds whenever
// there is a bet to face, checks otherwise.
func alwaysFold(_ map[string]float64, s Situation) Decision {
	if callAmount(s) > 0 {
		return Decision{Action: Fold}
	}
	return Decision{Action: Check}
}

// randomStrategy is a baseline strategy that ignores hand strength: it
// folds 25% of the time, checks or calls 35%, and raises 40%, for
// benchmarking evolved strategies against.
func randomStrategy(_ map[string]float64, s Situation) Decision {
	call := callAmount(s)
	roll := s.Rand01()
	switch {
	case roll < 0.25:
		return Decision{Action: Fold}
	case roll < 0.6:
		return checkOrCall(call)
	default:
		return Decision{Action: Raise, Amount: minF(s.Pot*0.5, s.PlayerEnergy*0.3)}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
