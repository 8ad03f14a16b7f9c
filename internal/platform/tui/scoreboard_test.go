package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cuberun/internal/config"
	"github.com/vovakirdan/cuberun/internal/highscore"
	"github.com/vovakirdan/cuberun/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	board := highscore.Open(store, config.DefaultRunnerConfig().HighScores, nil)
	board.Record("ann", 50)
	board.Record("bob", 30)
	for _, s := range []int{12, 34, 56} {
		if _, err := store.SaveRun(s); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(board, store, 100, 30)
	if len(m.rows) != 2 || m.rows[0][1] != "ann" {
		t.Errorf("high score rows = %v", m.rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecentRuns {
		t.Fatalf("view = %v, expected recent runs", m.view)
	}
	if len(m.rows) != 3 || m.rows[0][1] != "56" {
		t.Errorf("run rows = %v, expected newest first", m.rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.view != viewHighScores {
		t.Errorf("view = %v, expected high scores", m.view)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	board := highscore.New(nil, highscore.DefaultKey)
	m := NewScoreboardModel(board, nil, 80, 24)

	if !strings.Contains(m.View(), "No high scores yet") {
		t.Error("expected the empty message")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("q should quit")
	}
}
