package config

import (
	"math"
	"testing"
)

func TestDifficultyChance(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.03},
		{100, 0.04},
		{7000, 0.1},
		{10000, 0.1},
		{50000, 0.1}, // capped
		{-5, 0.03},   // negative scores never lower the floor
	}

	for _, tc := range tests {
		got := dm.Chance(tc.score)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Chance(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	prev := dm.Chance(0)
	for score := 1; score <= 20000; score += 37 {
		c := dm.Chance(score)
		if c < prev {
			t.Fatalf("Chance(%d) = %f dropped below %f", score, c, prev)
		}
		if c > 0.1 {
			t.Fatalf("Chance(%d) = %f exceeds cap", score, c)
		}
		prev = c
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	dm := NewDifficultyManager(cfg.Difficulty)

	if dm.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := dm.Chance(5000); got != cfg.Difficulty.Base {
		t.Errorf("Chance with progression off = %f, expected base %f", got, cfg.Difficulty.Base)
	}
	if dm.Level(5000) != 0 {
		t.Error("Level should be 0 with progression off")
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	if dm.Level(0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", dm.Level(0))
	}
	if dm.Level(100000) != 1 {
		t.Errorf("Level(100000) = %f, expected 1", dm.Level(100000))
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		base    float64
	}{
		{DifficultyEasy, true, 0.02},
		{DifficultyNormal, true, 0.03},
		{DifficultyHard, true, 0.05},
		{DifficultyFixed, false, 0.03},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.Base != tc.base {
				t.Errorf("Base = %f, expected %f", cfg.Difficulty.Base, tc.base)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if ParsePreset("brutal") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
