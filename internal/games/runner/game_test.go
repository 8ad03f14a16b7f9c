package runner

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
)

const frame = time.Second / 60

type fixedQualifier bool

func (q fixedQualifier) Qualifies(int) bool { return bool(q) }

func newTestGame(t *testing.T, seed int64, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultRunnerConfig(), opts...)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func held(keys ...string) *core.InputState {
	in := core.NewInputState()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func assertFreshState(t *testing.T, g *Game) {
	t.Helper()
	w := g.World()
	if w.Player.Pos != core.V3(0, 0, 0) {
		t.Errorf("player at %+v, expected origin", w.Player.Pos)
	}
	if w.Player.Speed != 0.1 {
		t.Errorf("speed = %f, expected 0.1", w.Player.Speed)
	}
	if w.Camera != core.V3(0, 3, 7) {
		t.Errorf("camera at %+v, expected (0, 3, 7)", w.Camera)
	}
	if len(w.Obstacles) != 0 {
		t.Errorf("expected no obstacles, have %d", len(w.Obstacles))
	}
	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused || st.NewHighScore {
		t.Errorf("state = %+v, expected fresh", st)
	}
	if g.phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", g.phase)
	}
	if g.Frames() != 0 {
		t.Errorf("frames = %d, expected 0", g.Frames())
	}
}

func TestGameFreshState(t *testing.T) {
	assertFreshState(t, newTestGame(t, 1))
}

func TestGameRestartRestoresFreshState(t *testing.T) {
	g := newTestGame(t, 42)

	// Play until something happens, holding forward and strafing
	in := held("arrowup", "a")
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		g.Step(in, time.Duration(i)*frame)
	}
	if g.State().Score == 0 {
		t.Fatal("expected some progress before restart")
	}

	g.Reset(core.RuntimeConfig{Seed: 42})
	assertFreshState(t, g)

	// Restarting twice changes nothing
	g.Reset(core.RuntimeConfig{Seed: 42})
	assertFreshState(t, g)
}

func TestGameDeterminism(t *testing.T) {
	// Same seed, same inputs and same clock give identical worlds
	run := func() (World, core.GameState) {
		g := newTestGame(t, 12345)
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 1500; i++ {
			in := core.NewInputState()
			if rng.Intn(2) == 0 {
				in.Press("d")
			}
			if rng.Intn(3) == 0 {
				in.Press("w")
			}
			if g.Step(in, time.Duration(i)*frame).State.GameOver {
				break
			}
		}
		return g.World(), g.State()
	}

	w1, s1 := run()
	w2, s2 := run()

	if !reflect.DeepEqual(w1, w2) {
		t.Error("worlds differ between identical runs")
	}
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
}

func TestGameBoundsAndScoreWhileRunning(t *testing.T) {
	g := newTestGame(t, 7)
	rng := rand.New(rand.NewSource(8))
	keys := []string{"arrowleft", "arrowright", "arrowup", "arrowdown", "a", "d", "w", "s", "x"}

	prevScore := 0
	for i := 0; i < 4000; i++ {
		in := core.NewInputState()
		for _, k := range keys {
			if rng.Intn(3) == 0 {
				in.Press(k)
			}
		}
		res := g.Step(in, time.Duration(i)*frame)
		w := g.World()

		if w.Player.Pos.X < -10 || w.Player.Pos.X > 10 {
			t.Fatalf("frame %d: x = %f out of bounds", i, w.Player.Pos.X)
		}
		if res.State.Score < prevScore {
			t.Fatalf("frame %d: score dropped from %d to %d", i, prevScore, res.State.Score)
		}
		if res.State.Score != ScoreFor(w.Player.Pos.Z) {
			t.Fatalf("frame %d: score %d does not match z %f", i, res.State.Score, w.Player.Pos.Z)
		}
		if res.State.Difficulty < 0.03 || res.State.Difficulty > 0.1 {
			t.Fatalf("frame %d: difficulty %f outside [0.03, 0.1]", i, res.State.Difficulty)
		}
		prevScore = res.State.Score

		if res.State.GameOver {
			break
		}
	}
}

func TestGameSpawnsEveryFrameAtFullDifficulty(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.Base = 1
	cfg.Difficulty.Max = 1
	g := New(cfg)

	g.Step(core.NewInputState(), 0)
	w := g.World()

	if len(w.Obstacles) != 1 {
		t.Fatalf("expected one spawned obstacle, have %d", len(w.Obstacles))
	}
	z := w.Obstacles[0].Pos.Z
	// Spawned relative to the player's position after this frame's move
	if z > -40.1+1e-9 || z < -60.1-1e-9 {
		t.Errorf("spawned at z = %f, expected within [-60.1, -40.1]", z)
	}
}

func TestGameNeverSpawnsAtZeroDifficulty(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.Base = 0
	cfg.Difficulty.Enabled = false
	g := New(cfg)

	for i := 0; i < 600; i++ {
		g.Step(core.NewInputState(), time.Duration(i)*frame)
	}
	if n := len(g.World().Obstacles); n != 0 {
		t.Errorf("expected no obstacles, have %d", n)
	}
}

func TestGameCollisionEndsRunAndFreezes(t *testing.T) {
	g := newTestGame(t, 5)
	g.world.Obstacles = []Obstacle{{Pos: core.V3(0, 0, -0.5), Behavior: Static{}}}

	res := g.Step(core.NewInputState(), 0)
	if !res.Collided || !res.State.GameOver {
		t.Fatalf("expected collision to end the run, got %+v", res)
	}
	if g.phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", g.phase)
	}

	frozen := g.World()
	frames := g.Frames()
	for i := 1; i < 30; i++ {
		res = g.Step(held("arrowup", "arrowleft"), time.Duration(i)*frame)
		if res.Collided {
			t.Fatal("a finished run should not collide again")
		}
	}
	if !reflect.DeepEqual(g.World(), frozen) {
		t.Error("world changed after game over")
	}
	if g.Frames() != frames {
		t.Error("frames advanced after game over")
	}
}

func TestGameNewHighScoreSignal(t *testing.T) {
	tests := []struct {
		name      string
		startZ    float64
		qualifier Qualifier
		expected  bool
	}{
		{"qualifying score", -40, fixedQualifier(true), true},
		{"board says no", -40, fixedQualifier(false), false},
		{"zero score never qualifies", 0, fixedQualifier(true), false},
		{"no board", -40, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var opts []Option
			if tc.qualifier != nil {
				opts = append(opts, WithQualifier(tc.qualifier))
			}
			g := newTestGame(t, 9, opts...)
			g.world.Player.Pos.Z = tc.startZ
			g.world.Camera.Z = tc.startZ + 7
			g.world.Obstacles = []Obstacle{{Pos: core.V3(0, 0, tc.startZ-0.3), Behavior: Static{}}}

			res := g.Step(core.NewInputState(), 0)
			if !res.State.GameOver {
				t.Fatal("expected the run to end")
			}
			if res.State.NewHighScore != tc.expected {
				t.Errorf("NewHighScore = %v (score %d), expected %v", res.State.NewHighScore, res.State.Score, tc.expected)
			}
		})
	}
}

func TestGameWithoutQualifierFlagsPositiveScore(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.world.Player.Pos.Z = -50
	g.world.Camera.Z = -43
	g.world.Obstacles = []Obstacle{{Pos: core.V3(0, 0, -50.3), Behavior: Static{}}}

	res := g.Step(core.NewInputState(), 0)

	if !res.Collided {
		t.Fatal("expected a collision")
	}
	if res.State.Score != 50 {
		t.Errorf("score = %d, expected 50", res.State.Score)
	}
	if !res.State.NewHighScore {
		t.Error("a positive score should count as a new high score when no board is attached")
	}
}

func TestGameScoreFromDepth(t *testing.T) {
	g := newTestGame(t, 3)
	g.world.Player.Pos.Z = -40.2
	g.world.Camera.Z = -33.2

	res := g.Step(core.NewInputState(), 0) // cruise moves 0.1 to -40.3

	if res.State.Score != 40 {
		t.Errorf("score = %d, expected 40", res.State.Score)
	}
	if math.Abs(g.World().Camera.Z-(-33.3)) > 1e-9 {
		t.Errorf("camera z = %f, expected to follow the player to -33.3", g.World().Camera.Z)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 4)
	g.Step(core.NewInputState(), 0)
	before := g.World()

	g.TogglePause()
	for i := 0; i < 10; i++ {
		g.Step(held("w"), time.Duration(i)*frame)
	}
	if !reflect.DeepEqual(g.World(), before) {
		t.Error("world changed while paused")
	}
	if !g.State().Paused {
		t.Error("State().Paused should be set")
	}

	g.TogglePause()
	g.Step(held("w"), 0)
	if g.World().Player.Pos.Z >= before.Player.Pos.Z {
		t.Error("player should move again after resuming")
	}
}

func TestGameWorldIsSnapshot(t *testing.T) {
	g := newTestGame(t, 6)
	g.world.Obstacles = []Obstacle{{Pos: core.V3(0, 0, -30), Behavior: Static{}}}

	w := g.World()
	w.Obstacles[0].Pos.X = 9

	if g.world.Obstacles[0].Pos.X != 0 {
		t.Error("mutating a snapshot changed the game")
	}
}
