package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

// Kind tags an obstacle's behavior for renderers.
type Kind int

const (
	KindStatic Kind = iota
	KindWobbler
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindWobbler:
		return "wobbler"
	default:
		return "unknown"
	}
}

// Behavior is how an obstacle moves. It is one of Static or Wobbler.
type Behavior interface {
	Kind() Kind
}

// Static obstacles never move.
type Static struct{}

// Kind implements Behavior.
func (Static) Kind() Kind { return KindStatic }

// Wobbler obstacles swing sideways around InitialX.
type Wobbler struct {
	InitialX float64
	Phase    float64 // in [0, 2π)
}

// Kind implements Behavior.
func (Wobbler) Kind() Kind { return KindWobbler }

// X returns the wobbler's lateral position at the given clock reading.
func (w Wobbler) X(clockMs, amplitude, rate float64) float64 {
	return w.InitialX + amplitude*math.Sin(clockMs*rate+w.Phase)
}

// Obstacle is a unit cube on the track.
type Obstacle struct {
	Pos      core.Vec3
	Behavior Behavior
}

// Kind returns the obstacle's behavior tag.
func (o Obstacle) Kind() Kind {
	if o.Behavior == nil {
		return KindStatic
	}
	return o.Behavior.Kind()
}

// Spawner creates obstacles ahead of the player.
type Spawner struct {
	rng    *rand.Rand
	cfg    config.ObstacleConfig
	boundX float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.RunnerConfig) *Spawner {
	return &Spawner{
		rng:    rng,
		cfg:    cfg.Obstacles,
		boundX: cfg.Player.BoundX,
	}
}

// ShouldSpawn rolls once against the per-frame spawn chance.
func (s *Spawner) ShouldSpawn(chance float64) bool {
	return s.rng.Float64() < chance
}

// Spawn creates one obstacle somewhere across the track, between
// SpawnDistance and SpawnDistance+SpawnJitter ahead of player.
// Once score passes WobblerMinScore each obstacle independently has
// WobblerChance of being a wobbler.
func (s *Spawner) Spawn(score int, player core.Vec3) Obstacle {
	// The wobbler roll only happens past the threshold, so early runs
	// consume the same random sequence regardless of WobblerChance.
	wobbler := score > s.cfg.WobblerMinScore && s.rng.Float64() < s.cfg.WobblerChance

	x := (s.rng.Float64() - 0.5) * 2 * s.boundX
	z := player.Z - s.cfg.SpawnDistance - s.rng.Float64()*s.cfg.SpawnJitter

	o := Obstacle{
		Pos:      core.V3(x, 0, z),
		Behavior: Static{},
	}
	if wobbler {
		o.Behavior = Wobbler{
			InitialX: x,
			Phase:    s.rng.Float64() * 2 * math.Pi,
		}
	}
	return o
}
