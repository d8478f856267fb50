package ecosystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Exporter writes ecosystem CSV snapshots once per reporting window,
// grounded directly on _examples/pthm-soup/telemetry's OutputManager:
// one file per concern, a header written once then appended, and a
// nil receiver that makes every method a no-op so export stays
// optional without littering call sites with enabled checks.
type Exporter struct {
	dir string

	fitnessFile *os.File
	pokerFile   *os.File

	fitnessHeaderWritten bool
	pokerHeaderWritten   bool
}

// NewExporter opens fitness.csv and poker_leaderboard.csv under dir,
// creating dir if needed. A blank dir disables export: NewExporter
// returns (nil, nil), and every Exporter method becomes a no-op.
func NewExporter(dir string) (*Exporter, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	e := &Exporter{dir: dir}

	f, err := os.Create(filepath.Join(dir, "fitness.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating fitness.csv: %w", err)
	}
	e.fitnessFile = f

	f, err = os.Create(filepath.Join(dir, "poker_leaderboard.csv"))
	if err != nil {
		e.fitnessFile.Close()
		return nil, fmt.Errorf("creating poker_leaderboard.csv: %w", err)
	}
	e.pokerFile = f

	return e, nil
}

// fitnessRow is the flattened, CSV-tagged projection of one
// AlgorithmFitness record.
type fitnessRow struct {
	Frame            int     `csv:"frame"`
	Algorithm        string  `csv:"algorithm"`
	TotalBirths      int     `csv:"total_births"`
	TotalDeaths      int     `csv:"total_deaths"`
	CurrentPop       int     `csv:"current_pop"`
	Reproductions    int     `csv:"reproductions"`
	AvgLifespan      float64 `csv:"avg_lifespan"`
	SurvivalRate     float64 `csv:"survival_rate"`
	ReproductionRate float64 `csv:"reproduction_rate"`
	FoodEaten        int     `csv:"food_eaten"`
}

// WriteFitness appends one frame's fitness snapshot, one row per
// tracked algorithm.
func (e *Exporter) WriteFitness(frame int, rows []AlgorithmFitness) error {
	if e == nil {
		return nil
	}
	out := make([]fitnessRow, len(rows))
	for i, r := range rows {
		out[i] = fitnessRow{
			Frame:            frame,
			Algorithm:        r.Name,
			TotalBirths:      r.TotalBirths,
			TotalDeaths:      r.TotalDeaths,
			CurrentPop:       r.CurrentPop,
			Reproductions:    r.Reproductions,
			AvgLifespan:      r.AvgLifespan(),
			SurvivalRate:     r.SurvivalRate(),
			ReproductionRate: r.ReproductionRate(),
			FoodEaten:        r.FoodEaten,
		}
	}
	return e.writeCSV(out, e.fitnessFile, &e.fitnessHeaderWritten)
}

// pokerRow is the flattened, CSV-tagged projection of one fish's
// leaderboard entry.
type pokerRow struct {
	Frame           int     `csv:"frame"`
	FishID          uint64  `csv:"fish_id"`
	Games           int     `csv:"games"`
	WinRate         float64 `csv:"win_rate"`
	NetEnergy       float64 `csv:"net_energy"`
	AggressionFactor float64 `csv:"aggression_factor"`
	ShowdownWinRate float64 `csv:"showdown_win_rate"`
	ButtonWinRate   float64 `csv:"button_win_rate"`
}

// WritePokerLeaderboard appends one frame's poker leaderboard, one row
// per tracked fish.
func (e *Exporter) WritePokerLeaderboard(frame int, rows []FishPokerRecord) error {
	if e == nil {
		return nil
	}
	out := make([]pokerRow, len(rows))
	for i, r := range rows {
		out[i] = pokerRow{
			Frame:            frame,
			FishID:           uint64(r.FishID),
			Games:            r.Stats.Games,
			WinRate:          r.Stats.WinRate(),
			NetEnergy:        r.Stats.NetEnergy,
			AggressionFactor: r.Stats.AggressionFactor(),
			ShowdownWinRate:  r.Stats.ShowdownWinRate(),
			ButtonWinRate:    r.Stats.ButtonWinRate(),
		}
	}
	return e.writeCSV(out, e.pokerFile, &e.pokerHeaderWritten)
}

func (e *Exporter) writeCSV(records any, f *os.File, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the export directory, or "" if export is disabled.
func (e *Exporter) Dir() string {
	if e == nil {
		return ""
	}
	return e.dir
}

// Close flushes and closes every open export file.
func (e *Exporter) Close() error {
	if e == nil {
		return nil
	}
	var firstErr error
	if e.fitnessFile != nil {
		if err := e.fitnessFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if e.pokerFile != nil {
		if err := e.pokerFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
