package config

import (
	"testing"

	"github.com/mbolaris/tankcore/tankerr"
)

func TestDefaultValidates(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestMergeOverridesOnlyPresentFields(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	wantHeight := cfg.Screen.Height

	if err := cfg.Merge([]byte("population:\n  max: 5\n")); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if cfg.Population.Max != 5 {
		t.Fatalf("Population.Max = %d, want 5", cfg.Population.Max)
	}
	if cfg.Screen.Height != wantHeight {
		t.Fatalf("Merge clobbered an untouched field: Screen.Height = %g, want %g", cfg.Screen.Height, wantHeight)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"zero dt", func(c *Config) { c.Physics.DT = 0 }},
		{"zero max population", func(c *Config) { c.Population.Max = 0 }},
		{"critical threshold above max", func(c *Config) { c.Population.CriticalThreshold = c.Population.Max + 1 }},
		{"non-monotonic life stages", func(c *Config) { c.LifeStage.JuvenileMax = c.LifeStage.FryMax }},
		{"energy thresholds out of order", func(c *Config) { c.Energy.LowThreshold = c.Energy.SafeThreshold + 1 }},
		{"mutation probability above one", func(c *Config) { c.Mutation.BaseProbability = 1.5 }},
		{"house cut at one", func(c *Config) { c.Poker.HouseCutFraction = 1 }},
		{"winner dna weight negative", func(c *Config) { c.Poker.PostPoker.WinnerDNAWeight = -0.1 }},
		{"zero lineage log size", func(c *Config) { c.Ecosystem.MaxLineageLogSize = 0 }},
		{"zero base max age", func(c *Config) { c.LifeStage.BaseMaxAge = 0 }},
		{"pop thresholds out of order", func(c *Config) { c.Spawn.HighPopThreshold1 = c.Spawn.HighPopThreshold2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			if err != nil {
				t.Fatalf("Default() error: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want an InvalidConfiguration error")
			}
			if !tankerr.IsKind(err, tankerr.InvalidConfiguration) {
				t.Fatalf("Validate() error kind = %v, want InvalidConfiguration", err)
			}
		})
	}
}
