package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/games/runner"
	"github.com/vovakirdan/cuberun/internal/highscore"
	"github.com/vovakirdan/cuberun/internal/storage"
)

// Options configures a runner Model.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Board   *highscore.Board // nil keeps scores in memory for this model only
	Store   *storage.Store   // optional, receives finished runs
	Logger  *log.Logger
	Player  string // name pre-filled in the high-score form
}

// Model is the Bubble Tea model for a runner session.
type Model struct {
	game      *runner.Game
	board     *highscore.Board
	store     *storage.Store
	logger    *log.Logger
	runtime   core.RuntimeConfig
	fixedSeed bool
	player    string

	screen *core.Screen
	input  *core.InputState
	holds  *holdTracker
	keys   KeyMap
	help   help.Model
	name   textinput.Model
	now    func() time.Time

	last     time.Time     // time of the previous tick, zero before the first frame
	clock    time.Duration // simulated time of this run, excluding pauses
	state    core.GameState
	entering bool // high-score name form is open
	quitting bool
}

// NewModel creates a model and starts a fresh run.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	fixedSeed := rt.Seed != 0
	if !fixedSeed {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := opts.Board
	if board == nil {
		board = highscore.New(nil, opts.Runner.HighScores.StoreKey,
			highscore.WithDisplayLimit(opts.Runner.HighScores.DisplayLimit),
			highscore.WithMaxNameLen(opts.Runner.HighScores.MaxNameLen),
		)
	}

	bindings := opts.Runner.Keys.Bindings()
	input := core.NewInputState()
	holds := newHoldTracker(input, bindings,
		time.Duration(opts.Runner.Input.InitialHoldMs)*time.Millisecond,
		time.Duration(opts.Runner.Input.RepeatHoldMs)*time.Millisecond,
	)

	name := textinput.New()
	name.Placeholder = "your name"
	name.Prompt = "> "
	name.CharLimit = opts.Runner.HighScores.MaxNameLen
	name.Width = 20

	game := runner.New(opts.Runner, runner.WithQualifier(board))
	game.Reset(rt)

	m := Model{
		game:      game,
		board:     board,
		store:     opts.Store,
		logger:    logger,
		runtime:   rt,
		fixedSeed: fixedSeed,
		player:    opts.Player,
		screen:    core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		input:     input,
		holds:     holds,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		name:      name,
		now:       time.Now,
		state:     game.State(),
	}
	m.help.Width = rt.ScreenW
	m.keys.setPhase(true, false)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.entering {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.entering {
		return m.handleNameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case m.state.GameOver:
		if key.Matches(msg, m.keys.Restart) {
			return m.restart()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
		m.holds.Reset()
		m.state = m.game.State()
		return m, nil
	}

	m.holds.Press(keyName(msg), m.now())
	return m, nil
}

// handleNameKey feeds the high-score form.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		recorded, err := m.board.Record(m.name.Value(), m.state.Score)
		if !recorded {
			// Blank name: keep asking
			return m, nil
		}
		if err != nil {
			m.logger.Warn("high score kept in memory only", "score", m.state.Score, "err", err)
		}
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.closeForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleResize adapts the screen buffer. The run itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame and schedules the next while the run lasts.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}

	if !m.last.IsZero() && !m.state.Paused {
		m.clock += now.Sub(m.last)
	}
	m.last = now

	m.holds.Expire(now)
	res := m.game.Step(m.input, m.clock)
	m.state = res.State

	if res.Collided {
		return m.endRun()
	}
	return m, tickCmd(m.runtime.TickRate)
}

// endRun records the finished run and opens the name form when the score
// qualifies. No further tick is requested.
func (m Model) endRun() (tea.Model, tea.Cmd) {
	m.holds.Reset()

	if m.state.Score > 0 && m.store != nil {
		if _, err := m.store.SaveRun(m.state.Score); err != nil {
			m.logger.Warn("could not record run", "score", m.state.Score, "err", err)
		}
	}
	m.logger.Debug("run ended", "score", m.state.Score, "frames", m.game.Frames(), "high_score", m.state.NewHighScore)

	var cmd tea.Cmd
	if m.state.NewHighScore {
		m.entering = true
		m.name.Reset()
		m.name.SetValue(m.player)
		cmd = m.name.Focus()
	}
	m.keys.setPhase(false, m.entering)
	return m, cmd
}

func (m *Model) closeForm() {
	m.entering = false
	m.name.Blur()
	m.keys.setPhase(false, false)
}

// restart begins a new run and re-arms the frame loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.fixedSeed {
		m.runtime.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.runtime)
	m.holds.Reset()
	m.clock = 0
	m.last = time.Time{}
	m.state = m.game.State()
	m.keys.setPhase(true, false)
	return m, tickCmd(m.runtime.TickRate)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Entering reports whether the high-score form is open.
func (m Model) Entering() bool {
	return m.entering
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.state.GameOver {
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.gameOverPanel())
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}
	return body + "\n" + m.help.View(m.keys)
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 3)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	highlightStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// gameOverPanel shows the final score, the name form and the top list.
func (m Model) gameOverPanel() string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("GAME OVER"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Score: %d\n", m.state.Score)

	if m.entering {
		sb.WriteString("\n")
		sb.WriteString(highlightStyle.Render("New high score!"))
		sb.WriteString("\n")
		sb.WriteString(m.name.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\nHigh Scores\n")
	top := m.board.Top()
	if len(top) == 0 {
		sb.WriteString(dimStyle.Render("no scores yet"))
	}
	for i, e := range top {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %-16s %6d", i+1, e.Name, e.Score)
	}

	return panelStyle.Render(sb.String())
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
