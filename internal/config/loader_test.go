package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRunnerCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lateral_step: 0.3\ndifficulty:\n  max: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Player.LateralStep != 0.3 {
		t.Errorf("LateralStep = %f, expected 0.3", cfg.Player.LateralStep)
	}
	if cfg.Difficulty.Max != 0.2 {
		t.Errorf("Difficulty.Max = %f, expected 0.2", cfg.Difficulty.Max)
	}
	// Keys not named in the file keep their defaults
	if cfg.Player.BoundX != 10 {
		t.Errorf("BoundX = %f, expected default 10", cfg.Player.BoundX)
	}
}

func TestLoadRunnerCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[obstacles]\nwobbler_min_score = 50\n\n[keys]\nleft = [\"h\"]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Obstacles.WobblerMinScore != 50 {
		t.Errorf("WobblerMinScore = %d, expected 50", cfg.Obstacles.WobblerMinScore)
	}
	if !reflect.DeepEqual(cfg.Keys.Left, []string{"h"}) {
		t.Errorf("Keys.Left = %v, expected [h]", cfg.Keys.Left)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  bound_x: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(invalid)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "player.bound_x" {
		t.Errorf("Field = %q, expected player.bound_x", verr.Field)
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real user or local config
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadRunnerLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "runner.yaml"), []byte("camera:\n  offset_z: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Camera.OffsetZ != 9 {
		t.Errorf("OffsetZ = %f, expected 9 from ./configs", cfg.Camera.OffsetZ)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"runner.yaml", "camera:\n  offset_z: 8\n", false},
		{"runner.YML", "camera:\n  offset_z: 8\n", false},
		{"runner.toml", "[camera]\noffset_z = 8.0\n", false},
		{"runner.json", `{"camera": {"offset_z": 8}}`, true},
		{"runner", "camera:\n  offset_z: 8\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(tc.name, []byte(tc.data))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) should reject the format", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.name, err)
			}
			if cfg.Camera.OffsetZ != 8 {
				t.Errorf("OffsetZ = %f, expected 8", cfg.Camera.OffsetZ)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
