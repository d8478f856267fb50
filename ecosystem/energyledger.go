package ecosystem

// EnergySource names where an energy gain or burn originated, keying
// the ledger's per-source gains-by-source and burns-by-source
// dictionaries.
type EnergySource string

const (
	SourceFeed       EnergySource = "feed"
	SourceMetabolism EnergySource = "metabolism"
	SourceReversal   EnergySource = "reversal"
	SourceReproduction EnergySource = "reproduction"
	SourcePredation  EnergySource = "predation"
	SourcePokerFish  EnergySource = "poker_fish"
	SourcePokerHouse EnergySource = "poker_house_cut"
)

// windowEntry is one recorded energy delta, kept only long enough to
// fall out of the ledger's recency window.
type windowEntry struct {
	frame int
	delta float64
}

// EnergyLedger keeps lifetime gains/burns dictionaries keyed by
// EnergySource, plus a recency window of deltas, and tracks total live
// fish energy so callers can compute the window's closure discrepancy.
// Window entries carry no source: WindowGains/WindowBurns are totals
// across all sources, and there is no per-source windowed breakdown.
type EnergyLedger struct {
	windowFrames int

	lifetimeGains map[EnergySource]float64
	lifetimeBurns map[EnergySource]float64

	entries []windowEntry

	birthEnergyInWindow float64
	deathEnergyInWindow float64

	liveFishEnergyAtWindowStart float64
	liveFishEnergyObserved      bool
}

// NewEnergyLedger builds a ledger with the given recency window, in
// frames, for windowed gains/burns queries.
func NewEnergyLedger(windowFrames int) *EnergyLedger {
	return &EnergyLedger{
		windowFrames:  windowFrames,
		lifetimeGains: make(map[EnergySource]float64),
		lifetimeBurns: make(map[EnergySource]float64),
	}
}

// RecordGain logs a positive energy delta from source at frame.
func (e *EnergyLedger) RecordGain(frame int, source EnergySource, amount float64) {
	e.lifetimeGains[source] += amount
	e.entries = append(e.entries, windowEntry{frame: frame, delta: amount})
	e.pruneOlderThan(frame)
}

// RecordBurn logs a positive-magnitude energy cost from source at
// frame (callers pass the cost as a positive number; it is tracked
// as a burn, not subtracted from gains).
func (e *EnergyLedger) RecordBurn(frame int, source EnergySource, amount float64) {
	e.lifetimeBurns[source] += amount
	e.entries = append(e.entries, windowEntry{frame: frame, delta: -amount})
	e.pruneOlderThan(frame)
}

// RecordBirthEnergy and RecordDeathEnergy track the energy carried out
// of (death) or endowed into (birth) the live fish population within
// the current window, since §8 property 5 requires the ledger
// closure to subtract these from the observed net change.
func (e *EnergyLedger) RecordBirthEnergy(amount float64) { e.birthEnergyInWindow += amount }
func (e *EnergyLedger) RecordDeathEnergy(amount float64) { e.deathEnergyInWindow += amount }

func (e *EnergyLedger) pruneOlderThan(frame int) {
	if e.windowFrames <= 0 {
		return
	}
	cutoff := frame - e.windowFrames
	i := 0
	for i < len(e.entries) && e.entries[i].frame < cutoff {
		i++
	}
	if i > 0 {
		e.entries = e.entries[i:]
	}
}

// WindowGains sums every positive delta within the current window.
func (e *EnergyLedger) WindowGains() float64 {
	var total float64
	for _, en := range e.entries {
		if en.delta > 0 {
			total += en.delta
		}
	}
	return total
}

// WindowBurns sums the magnitude of every negative delta within the
// current window.
func (e *EnergyLedger) WindowBurns() float64 {
	var total float64
	for _, en := range e.entries {
		if en.delta < 0 {
			total += -en.delta
		}
	}
	return total
}

// Discrepancy computes the window's energy-closure check:
// Σrecent_gains − Σrecent_burns should equal the observed net change
// in total live fish energy over the window, minus energy carried by
// births/deaths in the window. observedNetChange is
// currentLiveFishEnergy minus the value recorded at the start of the
// window (via SetWindowStart).
func (e *EnergyLedger) Discrepancy(currentLiveFishEnergy float64) float64 {
	if !e.liveFishEnergyObserved {
		return 0
	}
	observedNetChange := currentLiveFishEnergy - e.liveFishEnergyAtWindowStart
	ledgerNetChange := e.WindowGains() - e.WindowBurns()
	expected := observedNetChange - e.birthEnergyInWindow + e.deathEnergyInWindow
	return ledgerNetChange - expected
}

// SetWindowStart records the live fish energy baseline a future
// Discrepancy call measures against, and resets the per-window
// birth/death energy accumulators. Callers call this once per window
// rollover (e.g. every windowFrames frames).
func (e *EnergyLedger) SetWindowStart(liveFishEnergy float64) {
	e.liveFishEnergyAtWindowStart = liveFishEnergy
	e.liveFishEnergyObserved = true
	e.birthEnergyInWindow = 0
	e.deathEnergyInWindow = 0
}

// LifetimeGains and LifetimeBurns return copies of the cumulative
// per-source dictionaries for snapshot/metrics consumption.
func (e *EnergyLedger) LifetimeGains() map[EnergySource]float64 {
	return cloneSourceMap(e.lifetimeGains)
}

func (e *EnergyLedger) LifetimeBurns() map[EnergySource]float64 {
	return cloneSourceMap(e.lifetimeBurns)
}

func cloneSourceMap(m map[EnergySource]float64) map[EnergySource]float64 {
	out := make(map[EnergySource]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
