// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for cuberun.
package config

import "github.com/vovakirdan/cuberun/internal/core"

// RunnerConfig contains all tunables for the runner simulation and its
// terminal front-end.
type RunnerConfig struct {
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	HighScores HighScoreConfig  `yaml:"highscores" toml:"highscores"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Keys       KeysConfig       `yaml:"keys" toml:"keys"`
}

// PlayerConfig defines movement parameters for the player cube.
type PlayerConfig struct {
	BoundX          float64 `yaml:"bound_x" toml:"bound_x"`                   // |x| limit of the track
	LateralStep     float64 `yaml:"lateral_step" toml:"lateral_step"`         // x change per frame while strafing
	CruiseSpeed     float64 `yaml:"cruise_speed" toml:"cruise_speed"`         // z change per frame with no input
	ForwardSpeed    float64 `yaml:"forward_speed" toml:"forward_speed"`       // while forward is held
	BackwardSpeed   float64 `yaml:"backward_speed" toml:"backward_speed"`     // while backward is held
	CollisionRadius float64 `yaml:"collision_radius" toml:"collision_radius"` // hit when distance is strictly less
}

// CameraConfig places the camera relative to the player.
type CameraConfig struct {
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
	OffsetZ float64 `yaml:"offset_z" toml:"offset_z"` // obstacles past player.z + OffsetZ are culled
}

// ObstacleConfig defines spawn placement and wobbler behavior.
type ObstacleConfig struct {
	SpawnDistance   float64 `yaml:"spawn_distance" toml:"spawn_distance"`       // minimum distance ahead of the player
	SpawnJitter     float64 `yaml:"spawn_jitter" toml:"spawn_jitter"`           // extra random distance ahead
	WobblerMinScore int     `yaml:"wobbler_min_score" toml:"wobbler_min_score"` // wobblers appear once score exceeds this
	WobblerChance   float64 `yaml:"wobbler_chance" toml:"wobbler_chance"`
	WobbleAmplitude float64 `yaml:"wobble_amplitude" toml:"wobble_amplitude"`
	WobbleRate      float64 `yaml:"wobble_rate" toml:"wobble_rate"` // radians per millisecond
}

// DifficultyConfig defines the spawn probability curve.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	Base         float64 `yaml:"base" toml:"base"`                   // spawn chance at score 0
	Max          float64 `yaml:"max" toml:"max"`                     // spawn chance cap
	ScoreDivisor float64 `yaml:"score_divisor" toml:"score_divisor"` // score needed to add 1.0 to the chance
}

// HighScoreConfig controls the persisted high-score list.
type HighScoreConfig struct {
	DisplayLimit int    `yaml:"display_limit" toml:"display_limit"`
	StoreKey     string `yaml:"store_key" toml:"store_key"`
	MaxNameLen   int    `yaml:"max_name_len" toml:"max_name_len"`
}

// InputConfig tunes how terminal key events become held keys.
type InputConfig struct {
	InitialHoldMs int `yaml:"initial_hold_ms" toml:"initial_hold_ms"` // hold after the first press, covers the OS repeat delay
	RepeatHoldMs  int `yaml:"repeat_hold_ms" toml:"repeat_hold_ms"`   // hold after each auto-repeat
}

// KeysConfig lists key names per direction, using browser-style names
// ("arrowleft", "a", ...).
type KeysConfig struct {
	Left     []string `yaml:"left" toml:"left"`
	Right    []string `yaml:"right" toml:"right"`
	Forward  []string `yaml:"forward" toml:"forward"`
	Backward []string `yaml:"backward" toml:"backward"`
}

// Bindings converts the key lists into core bindings.
func (k KeysConfig) Bindings() core.Bindings {
	return core.Bindings{
		core.ActionLeft:     k.Left,
		core.ActionRight:    k.Right,
		core.ActionForward:  k.Forward,
		core.ActionBackward: k.Backward,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the difficulty block based on a preset.
// Normal keeps whatever the loaded config says.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Base = 0.02
		cfg.Difficulty.Max = 0.07
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Base = 0.05
		cfg.Difficulty.Max = 0.14
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
