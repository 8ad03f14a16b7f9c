// Package runner implements the cuberun endless runner: a cube slides down
// an open track toward negative Z while the player strafes around randomly
// spawned obstacles. Score is the distance travelled.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

// Phase is the run's lifecycle state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Qualifier decides whether a final score earns a high-score entry.
// *highscore.Board satisfies it.
type Qualifier interface {
	Qualifies(score int) bool
}

// Game owns one run's simulation state and sequences each frame.
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	engine     Engine
	difficulty *config.DifficultyManager
	bindings   core.Bindings
	qualifier  Qualifier
	rng        *rand.Rand
	spawner    *Spawner

	world        World
	phase        Phase
	paused       bool
	newHighScore bool
	frames       int           // Frames simulated since the last reset
	clock        time.Duration // Clock reading of the latest frame
}

// Option configures a Game.
type Option func(*Game)

// WithQualifier sets the high-score check run when a run ends. Without
// one, every positive score counts as a new high score.
func WithQualifier(q Qualifier) Option {
	return func(g *Game) { g.qualifier = q }
}

// New creates a game from cfg, already reset with the default runtime
// config. Call Reset to apply a seed.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		engine:     NewEngine(cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bindings:   cfg.Keys.Bindings(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset starts a fresh run: player at the origin, camera at its offset,
// cruise speed, score 0, no obstacles, running. The RNG is reseeded from
// runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.rng, g.cfg)

	// Reuse the obstacle backing array across runs
	obstacles := g.world.Obstacles[:0]
	clear(g.world.Obstacles)

	g.world = World{
		Player: Player{
			Pos:   core.V3(0, 0, InitialPlayerZ),
			Speed: g.cfg.Player.CruiseSpeed,
		},
		Camera:    g.cameraFor(InitialPlayerZ),
		Obstacles: obstacles,
		Score:     0,
	}
	g.phase = PhaseRunning
	g.paused = false
	g.newHighScore = false
	g.frames = 0
	g.clock = 0
}

// Step advances the run by one frame using the held keys in in and the
// host clock reading (time since the run's loop started). It does nothing
// once the run is over or while paused.
//
// Frame order: move the player, update and collide obstacles, prune those
// behind the camera, roll for a spawn against the previous frame's score,
// recompute the score, then move the camera to follow.
func (g *Game) Step(in *core.InputState, clock time.Duration) core.StepResult {
	if g.phase == PhaseGameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.clock = clock

	controls := g.bindings.Controls(in)
	collided := g.engine.Advance(&g.world, controls, clock)

	if g.spawner.ShouldSpawn(g.difficulty.Chance(g.world.Score)) {
		g.world.Obstacles = append(g.world.Obstacles, g.spawner.Spawn(g.world.Score, g.world.Player.Pos))
	}

	g.world.Score = ScoreFor(g.world.Player.Pos.Z)
	g.world.Camera = g.cameraFor(g.world.Player.Pos.Z)

	if collided {
		g.phase = PhaseGameOver
		g.newHighScore = g.world.Score > 0 && (g.qualifier == nil || g.qualifier.Qualifies(g.world.Score))
	}

	return core.StepResult{State: g.State(), Collided: collided}
}

// cameraFor returns the camera anchor for a player at depth z.
func (g *Game) cameraFor(z float64) core.Vec3 {
	return core.V3(0, g.cfg.Camera.OffsetY, z+g.cfg.Camera.OffsetZ)
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.phase == PhaseRunning {
		g.paused = !g.paused
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.world.Score,
		GameOver:     g.phase == PhaseGameOver,
		Paused:       g.paused,
		NewHighScore: g.newHighScore,
		Difficulty:   g.difficulty.Chance(g.world.Score),
	}
}

// World returns a snapshot of the world; the obstacle slice is a copy.
func (g *Game) World() World {
	w := g.world
	w.Obstacles = append([]Obstacle(nil), g.world.Obstacles...)
	return w
}

// Frames returns the number of frames simulated since the last reset.
func (g *Game) Frames() int {
	return g.frames
}
