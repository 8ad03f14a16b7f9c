package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cuberun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	RayChar     = '┆'
	StaticChar  = '▓'
	WobblerChar = '◆'
	GridChar    = '·'
	RailChar    = '│'
)

const (
	maxTrackCols = 61 // Widest track drawn, in characters
	gridSpacing  = 5  // World units between grid lines
	rayLength    = 5  // Length of the forward ray in world units
	gaugeWidth   = 10 // Cells in the HUD difficulty gauge
)

// Render draws a top-down projection of the world: X across the screen,
// depth up the screen with the camera on the bottom row and the far
// spawn horizon on the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := newViewport(g, dst)
	if v.rows < 2 || v.cols < 3 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	// Rails
	dst.DrawVLine(v.left-1, v.top, v.rows, RailChar, core.ColorGray)
	dst.DrawVLine(v.left+v.cols, v.top, v.rows, RailChar, core.ColorGray)

	// Ground grid, anchored to world Z so it scrolls past the player
	first := math.Ceil(v.farZ/gridSpacing) * gridSpacing
	for z := first; z <= v.nearZ; z += gridSpacing {
		row, ok := v.row(z)
		if !ok {
			continue
		}
		for x := v.left; x < v.left+v.cols; x += 2 {
			dst.SetColor(x, row, GridChar, core.ColorDarkGray)
		}
	}

	// Obstacles
	for _, o := range g.world.Obstacles {
		row, ok := v.row(o.Pos.Z)
		if !ok {
			continue
		}
		switch o.Kind() {
		case KindWobbler:
			dst.SetColor(v.col(o.Pos.X), row, WobblerChar, core.ColorBrightBlue)
		default:
			dst.SetColor(v.col(o.Pos.X), row, StaticChar, core.ColorRed)
		}
	}

	// Player and its forward ray
	p := g.world.Player.Pos
	px := v.col(p.X)
	for d := 1.0; d <= rayLength; d++ {
		row, ok := v.row(p.Z - d)
		if !ok {
			continue
		}
		// The ray never hides an obstacle
		if r := dst.Get(px, row); r == ' ' || r == GridChar {
			dst.SetColor(px, row, RayChar, core.ColorGreen)
		}
	}
	if row, ok := v.row(p.Z); ok {
		dst.SetColor(px, row, PlayerChar, core.ColorBrightGreen)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score))
	}
}

// drawHUD renders the score and spawn rate on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.world.Score), core.ColorWhite)

	rate := fmt.Sprintf(" Spawn: %.1f%% ", g.difficulty.Chance(g.world.Score)*100)
	if g.world.Score > g.cfg.Obstacles.WobblerMinScore {
		rate = " ◆" + rate
	}
	dst.DrawTextColor(dst.Width()-len([]rune(rate))-2, 0, rate, core.ColorYellow)

	gauge := g.paceGauge()
	dst.DrawTextColor((dst.Width()-len([]rune(gauge)))/2, 0, gauge, core.ColorCyan)
}

// paceGauge shows how far the spawn chance has climbed towards its cap.
func (g *Game) paceGauge() string {
	if !g.difficulty.IsEnabled() {
		return " Pace: fixed "
	}
	filled := core.Clamp(int(math.Round(g.difficulty.Level(g.world.Score)*gaugeWidth)), 0, gaugeWidth)
	return " Pace: [" + strings.Repeat("=", filled) + strings.Repeat("-", gaugeWidth-filled) + "] "
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// viewport maps world coordinates onto the screen.
type viewport struct {
	left, cols int     // Track columns
	top, rows  int     // Track rows (row 0 is the HUD)
	bound      float64 // Half-width of the track in world units
	nearZ      float64 // Depth shown on the bottom row (the camera)
	farZ       float64 // Depth shown on the top row
}

func newViewport(g *Game, dst *core.Screen) viewport {
	cols := core.Min(dst.Width()-2, maxTrackCols)
	horizon := g.cfg.Obstacles.SpawnDistance + g.cfg.Obstacles.SpawnJitter
	return viewport{
		left:  (dst.Width() - cols) / 2,
		cols:  cols,
		top:   1,
		rows:  dst.Height() - 1,
		bound: g.cfg.Player.BoundX,
		nearZ: g.world.Camera.Z,
		farZ:  g.world.Player.Pos.Z - horizon,
	}
}

// col returns the screen column for lateral position x.
func (v viewport) col(x float64) int {
	if v.bound <= 0 {
		return v.left + v.cols/2
	}
	t := (core.ClampF(x, -v.bound, v.bound) + v.bound) / (2 * v.bound)
	return v.left + int(math.Round(t*float64(v.cols-1)))
}

// row returns the screen row for depth z and whether it is visible.
func (v viewport) row(z float64) (int, bool) {
	if z > v.nearZ || z < v.farZ {
		return 0, false
	}
	t := (v.nearZ - z) / (v.nearZ - v.farZ)
	return v.top + v.rows - 1 - int(math.Round(t*float64(v.rows-1))), true
}
