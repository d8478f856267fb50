package poker

import (
	"errors"
	"math/rand"

	"github.com/mbolaris/tankcore/pokerstrategy"
)

// ParticipantRole distinguishes the fixed-policy plant participants
// from fish, which bet through an evolved strategy.
type ParticipantRole uint8

const (
	RoleFish ParticipantRole = iota
	RolePlant
)

// EventCategory labels an energy delta for the ecosystem tracker.
type EventCategory string

const (
	EventPokerFish     EventCategory = "poker_fish"
	EventPokerPlant    EventCategory = "poker_plant"
	EventPokerHouseCut EventCategory = "poker_house_cut"
)

// MinPlayers and MaxPlayers bound a single hand's participant count.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// maxRaisesPerStreet bounds a single street's betting round: the round
// ends after the first full pass of the rotation that finishes with more
// than maxRaisesPerStreet raises made on the street, so a pathological
// strategy can't stall a hand indefinitely.
const maxRaisesPerStreet = 4

// Participant is one seat at the table. ID is opaque to this package;
// callers map it back to their own entity.
type Participant struct {
	ID       uint64
	Role     ParticipantRole
	Strategy pokerstrategy.Instance
	Energy   float64
}

// Config parametrizes a single hand.
type Config struct {
	Ante     float64
	HouseCut float64 // fraction of the pot taken before distribution
}

// EnergyEvent is one reportable energy movement from a resolved hand.
type EnergyEvent struct {
	ParticipantID uint64
	Category      EventCategory
	Delta         float64
}

// Result is the outcome of a resolved hand.
type Result struct {
	Events     []EnergyEvent
	WinnerIDs  []uint64
	Pot        float64
	HouseCut   float64
	HandValues map[uint64]HandValue
}

// table holds the per-hand mutable state threaded through dealing,
// betting, and showdown.
type table struct {
	participants []Participant
	hole         [][2]Card
	community    []Card
	committed    []float64
	folded       []bool
	energyLeft   []float64
	buttonIdx    int
}

// PlayHand deals and resolves one complete hand: ante, four streets of
// betting (preflop, flop, turn, river), showdown, and energy
// distribution with a house cut. buttonIdx is an index into
// participants identifying the button seat.
//
// Plant participants act through a fixed conservative policy rather
// than an evolved pokerstrategy.Instance. At least one fish
// participant is required.
func PlayHand(r *rand.Rand, participants []Participant, buttonIdx int, cfg Config) (Result, error) {
	n := len(participants)
	if n < MinPlayers || n > MaxPlayers {
		return Result{}, errors.New("poker: participant count out of bounds")
	}
	hasFish := false
	for _, p := range participants {
		if p.Role == RoleFish {
			hasFish = true
		}
	}
	if !hasFish {
		return Result{}, errors.New("poker: a hand requires at least one fish participant")
	}
	if buttonIdx < 0 || buttonIdx >= n {
		buttonIdx = 0
	}

	deck := NewDeck()
	Shuffle(deck, r)

	t := &table{
		participants: participants,
		hole:         make([][2]Card, n),
		community:    make([]Card, 0, 5),
		committed:    make([]float64, n),
		folded:       make([]bool, n),
		energyLeft:   make([]float64, n),
		buttonIdx:    buttonIdx,
	}
	for i, p := range participants {
		t.energyLeft[i] = p.Energy
	}
	for i := 0; i < n; i++ {
		t.hole[i] = [2]Card{deck[0], deck[1]}
		deck = deck[2:]
	}

	pot := 0.0
	for i := range participants {
		ante := minF(cfg.Ante, t.energyLeft[i])
		t.energyLeft[i] -= ante
		t.committed[i] += ante
		pot += ante
	}

	streetDeals := []int{0, 3, 1, 1}
	for _, deal := range streetDeals {
		for k := 0; k < deal; k++ {
			t.community = append(t.community, deck[0])
			deck = deck[1:]
		}
		pot += t.playBettingRound(r, pot)
		if t.activeCount() <= 1 {
			break
		}
	}

	return t.resolveShowdown(pot, cfg), nil
}

// playBettingRound runs one street's betting to completion: players
// act in rotation starting left of the button until every active
// player has matched the street's current bet, folded, or the street
// runs out of raise cycles. It returns the additional amount
// committed to the pot during the round.
func (t *table) playBettingRound(r *rand.Rand, potBefore float64) float64 {
	n := len(t.participants)
	streetCommitted := make([]float64, n)
	acted := make([]bool, n)
	currentBet := 0.0
	potAdded := 0.0
	raiseCycles := 0

	order := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		order = append(order, (t.buttonIdx+i)%n)
	}

	for {
		allSettled := true
		for _, i := range order {
			if t.folded[i] {
				continue
			}
			if acted[i] && streetCommitted[i] >= currentBet {
				continue
			}
			allSettled = false

			toCall := currentBet - streetCommitted[i]
			situation := pokerstrategy.Situation{
				HandStrength: t.handStrength(i),
				CurrentBet:   currentBet,
				OpponentBet:  currentBet,
				Pot:          potBefore + potAdded,
				PlayerEnergy: t.energyLeft[i],
				OnButton:     i == t.buttonIdx,
				Rand01:       r.Float64,
			}

			decision := decideFor(t.participants[i], situation)
			acted[i] = true

			switch decision.Action {
			case pokerstrategy.Fold:
				t.folded[i] = true
			case pokerstrategy.Check, pokerstrategy.Call:
				amt := minF(toCall, t.energyLeft[i])
				potAdded += t.pay(i, amt, &streetCommitted[i])
			case pokerstrategy.Raise:
				raiseTo := currentBet + maxF(decision.Amount, 0)
				amt := minF(raiseTo-streetCommitted[i], t.energyLeft[i])
				potAdded += t.pay(i, amt, &streetCommitted[i])
				if streetCommitted[i] > currentBet {
					currentBet = streetCommitted[i]
					raiseCycles++
					for j := range acted {
						if j != i {
							acted[j] = false
						}
					}
				}
			}
			if t.activeCount() <= 1 {
				return potAdded
			}
		}
		if allSettled || raiseCycles > maxRaisesPerStreet {
			break
		}
	}
	return potAdded
}

func (t *table) pay(i int, amt float64, streetCommitted *float64) float64 {
	t.energyLeft[i] -= amt
	t.committed[i] += amt
	*streetCommitted += amt
	return amt
}

func decideFor(p Participant, s pokerstrategy.Situation) pokerstrategy.Decision {
	if p.Role == RolePlant {
		return plantPolicy(s)
	}
	return p.Strategy.Decide(s)
}

// plantPolicy is the fixed conservative policy plants use in mixed
// games: call small bets within energy, fold to anything larger,
// never raise.
func plantPolicy(s pokerstrategy.Situation) pokerstrategy.Decision {
	if s.CurrentBet <= 0 {
		return pokerstrategy.Decision{Action: pokerstrategy.Check}
	}
	if s.CurrentBet > s.PlayerEnergy*0.25 {
		return pokerstrategy.Decision{Action: pokerstrategy.Fold}
	}
	return pokerstrategy.Decision{Action: pokerstrategy.Call}
}

// handStrength normalizes the evaluator's category against the full
// [0,9] range once at least 5 cards are known (flop onward); preflop,
// with only the two hole cards, it returns a fixed 0.3.
func (t *table) handStrength(i int) float64 {
	cards := make([]Card, 0, 7)
	cards = append(cards, t.hole[i][0], t.hole[i][1])
	cards = append(cards, t.community...)
	if len(cards) < 5 {
		return 0.3
	}
	v := Evaluate(cards)
	return float64(v.Rank) / float64(RoyalFlush)
}

func (t *table) activeCount() int {
	c := 0
	for _, f := range t.folded {
		if !f {
			c++
		}
	}
	return c
}

func (t *table) resolveShowdown(pot float64, cfg Config) Result {
	n := len(t.participants)
	values := make(map[uint64]HandValue, n)

	var winners []int
	var best HandValue
	for i := 0; i < n; i++ {
		if t.folded[i] {
			continue
		}
		cards := append([]Card{}, t.community...)
		cards = append(cards, t.hole[i][0], t.hole[i][1])
		v := Evaluate(cards)
		values[t.participants[i].ID] = v

		switch {
		case len(winners) == 0:
			winners = []int{i}
			best = v
		case best.Less(v):
			winners = []int{i}
			best = v
		case v.Equal(best):
			winners = append(winners, i)
		}
	}

	houseCut := pot * cfg.HouseCut
	remainder := pot - houseCut
	share := 0.0
	if len(winners) > 0 {
		share = remainder / float64(len(winners))
	}

	events := make([]EnergyEvent, 0, n+1)
	winnerIDs := make([]uint64, 0, len(winners))
	winnerSet := make(map[int]bool, len(winners))
	for idx, i := range winners {
		winnerSet[i] = true
		amt := share
		if idx == len(winners)-1 {
			// Absorb rounding on the last winner so the distributed
			// total matches remainder exactly.
			amt = remainder - share*float64(len(winners)-1)
		}
		net := amt - t.committed[i]
		events = append(events, EnergyEvent{
			ParticipantID: t.participants[i].ID,
			Category:      categoryFor(t.participants[i].Role),
			Delta:         net,
		})
		winnerIDs = append(winnerIDs, t.participants[i].ID)
	}

	for i := range t.participants {
		if winnerSet[i] {
			continue
		}
		events = append(events, EnergyEvent{
			ParticipantID: t.participants[i].ID,
			Category:      categoryFor(t.participants[i].Role),
			Delta:         -t.committed[i],
		})
	}
	events = append(events, EnergyEvent{Category: EventPokerHouseCut, Delta: houseCut})

	return Result{
		Events:     events,
		WinnerIDs:  winnerIDs,
		Pot:        pot,
		HouseCut:   houseCut,
		HandValues: values,
	}
}

func categoryFor(role ParticipantRole) EventCategory {
	if role == RolePlant {
		return EventPokerPlant
	}
	return EventPokerFish
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
