package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			BoundX:          10,
			LateralStep:     0.15,
			CruiseSpeed:     0.1,
			ForwardSpeed:    0.2,
			BackwardSpeed:   0.05,
			CollisionRadius: 1.0,
		},
		Camera: CameraConfig{
			OffsetY: 3,
			OffsetZ: 7,
		},
		Obstacles: ObstacleConfig{
			SpawnDistance:   40,
			SpawnJitter:     20,
			WobblerMinScore: 150,
			WobblerChance:   0.3,
			WobbleAmplitude: 3,
			WobbleRate:      0.005,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			Base:         0.03,
			Max:          0.1,
			ScoreDivisor: 10000,
		},
		HighScores: HighScoreConfig{
			DisplayLimit: 5,
			StoreKey:     "highScores",
			MaxNameLen:   16,
		},
		Input: InputConfig{
			InitialHoldMs: 520,
			RepeatHoldMs:  160,
		},
		Keys: KeysConfig{
			Left:     []string{"arrowleft", "a"},
			Right:    []string{"arrowright", "d"},
			Forward:  []string{"arrowup", "w"},
			Backward: []string{"arrowdown", "s"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
