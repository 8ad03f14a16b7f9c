package config

import "fmt"

// ValidationError describes a tunable that cannot produce a playable game.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the configuration is playable.
func (c RunnerConfig) Validate() error {
	p := c.Player
	if p.BoundX <= 0 {
		return ValidationError{"player.bound_x", "must be positive"}
	}
	if p.LateralStep < 0 {
		return ValidationError{"player.lateral_step", "must not be negative"}
	}
	if p.CruiseSpeed <= 0 || p.ForwardSpeed <= 0 || p.BackwardSpeed <= 0 {
		return ValidationError{"player.*_speed", "speeds must be positive"}
	}
	if p.CollisionRadius <= 0 {
		return ValidationError{"player.collision_radius", "must be positive"}
	}

	if c.Camera.OffsetZ <= 0 {
		return ValidationError{"camera.offset_z", "camera must sit behind the player"}
	}

	o := c.Obstacles
	if o.SpawnDistance <= 0 || o.SpawnJitter < 0 {
		return ValidationError{"obstacles.spawn_distance", "obstacles must spawn ahead of the player"}
	}
	if o.WobblerChance < 0 || o.WobblerChance > 1 {
		return ValidationError{"obstacles.wobbler_chance", "must be within [0, 1]"}
	}

	d := c.Difficulty
	if d.Base < 0 || d.Max > 1 || d.Base > d.Max {
		return ValidationError{"difficulty", fmt.Sprintf("need 0 <= base (%g) <= max (%g) <= 1", d.Base, d.Max)}
	}
	if d.Enabled && d.ScoreDivisor <= 0 {
		return ValidationError{"difficulty.score_divisor", "must be positive"}
	}

	if c.HighScores.DisplayLimit <= 0 {
		return ValidationError{"highscores.display_limit", "must be positive"}
	}
	if c.HighScores.StoreKey == "" {
		return ValidationError{"highscores.store_key", "must not be empty"}
	}

	if c.Input.InitialHoldMs <= 0 || c.Input.RepeatHoldMs <= 0 {
		return ValidationError{"input", "hold windows must be positive"}
	}
	return nil
}
