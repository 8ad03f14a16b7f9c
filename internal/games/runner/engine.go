package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

// InitialPlayerZ is where every run starts; score is measured from here.
const InitialPlayerZ = 0.0

// Player is the cube the user steers.
type Player struct {
	Pos   core.Vec3
	Speed float64
}

// World is everything a renderer needs to draw a frame.
type World struct {
	Player    Player
	Camera    core.Vec3
	Obstacles []Obstacle
	Score     int
}

// Engine applies the per-frame movement, obstacle and collision rules.
type Engine struct {
	player    config.PlayerConfig
	obstacles config.ObstacleConfig
}

// NewEngine creates an engine from the runner config.
func NewEngine(cfg config.RunnerConfig) Engine {
	return Engine{
		player:    cfg.Player,
		obstacles: cfg.Obstacles,
	}
}

// MovePlayer applies lateral movement, picks the frame's speed and moves
// the player forward (toward negative Z).
func (e Engine) MovePlayer(p *Player, c core.Controls) {
	bound := e.player.BoundX

	// Both directions may apply in the same frame
	if c.Left {
		p.Pos.X = math.Max(p.Pos.X-e.player.LateralStep, -bound)
	}
	if c.Right {
		p.Pos.X = math.Min(p.Pos.X+e.player.LateralStep, bound)
	}

	switch {
	case c.Forward:
		p.Speed = e.player.ForwardSpeed
	case c.Backward:
		p.Speed = e.player.BackwardSpeed
	default:
		p.Speed = e.player.CruiseSpeed
	}

	p.Pos.Z -= p.Speed
}

// UpdateObstacle moves o according to its behavior at the given clock.
func (e Engine) UpdateObstacle(o *Obstacle, clock time.Duration) {
	switch b := o.Behavior.(type) {
	case Wobbler:
		ms := float64(clock) / float64(time.Millisecond)
		o.Pos.X = b.X(ms, e.obstacles.WobbleAmplitude, e.obstacles.WobbleRate)
	case Static, nil:
	}
}

// Collides reports whether the player touches o: the distance between
// their centers is strictly less than the collision radius.
func (e Engine) Collides(player core.Vec3, o Obstacle) bool {
	return player.DistanceTo(o.Pos) < e.player.CollisionRadius
}

// Advance runs one frame of movement for w: the player moves, every
// obstacle updates and is checked against the player, then obstacles
// behind the camera are pruned. It reports whether any obstacle was hit.
func (e Engine) Advance(w *World, c core.Controls, clock time.Duration) bool {
	e.MovePlayer(&w.Player, c)

	collided := false
	for i := range w.Obstacles {
		e.UpdateObstacle(&w.Obstacles[i], clock)
		if e.Collides(w.Player.Pos, w.Obstacles[i]) {
			collided = true
		}
	}

	w.Obstacles, _ = Prune(w.Obstacles, w.Camera.Z)
	return collided
}

// Prune drops obstacles that have passed the camera (z > cameraZ), in
// place, and returns the kept slice with the number removed.
func Prune(obstacles []Obstacle, cameraZ float64) ([]Obstacle, int) {
	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.Pos.Z <= cameraZ {
			kept = append(kept, o)
		}
	}
	removed := len(obstacles) - len(kept)

	// Clear the tail so dropped obstacles don't linger in the backing array
	clear(obstacles[len(kept):])
	return kept, removed
}

// ScoreFor returns the whole units travelled from InitialPlayerZ to z,
// never negative.
func ScoreFor(z float64) int {
	return max(0, int(math.Floor(InitialPlayerZ-z)))
}
