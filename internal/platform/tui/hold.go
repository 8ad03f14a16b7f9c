package tui

import (
	"time"

	"github.com/vovakirdan/cuberun/internal/core"
)

// holdTracker turns terminal key events into held keys.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held until no repeat arrives within its hold window.
type holdTracker struct {
	input     *core.InputState
	bindings  core.Bindings
	deadlines map[string]time.Time
	initial   time.Duration // window after the first press, covers the repeat delay
	repeat    time.Duration // window after each auto-repeat
}

func newHoldTracker(input *core.InputState, bindings core.Bindings, initial, repeat time.Duration) *holdTracker {
	return &holdTracker{
		input:     input,
		bindings:  bindings,
		deadlines: make(map[string]time.Time),
		initial:   initial,
		repeat:    repeat,
	}
}

// Press marks key held until its hold window runs out. Pressing a
// direction releases every key bound to the opposite direction.
func (h *holdTracker) Press(key string, now time.Time) {
	key = core.NormalizeKey(key)

	window := h.initial
	if _, held := h.deadlines[key]; held {
		window = h.repeat
	}
	h.deadlines[key] = now.Add(window)
	h.input.Press(key)

	if opp := h.bindings.ActionFor(key).Opposite(); opp != core.ActionNone {
		for _, k := range h.bindings[opp] {
			h.Release(k)
		}
	}
}

// Release drops key immediately.
func (h *holdTracker) Release(key string) {
	key = core.NormalizeKey(key)
	delete(h.deadlines, key)
	h.input.Release(key)
}

// Expire releases every key whose window ended at or before now.
func (h *holdTracker) Expire(now time.Time) {
	for k, deadline := range h.deadlines {
		if !now.Before(deadline) {
			h.Release(k)
		}
	}
}

// Reset releases everything.
func (h *holdTracker) Reset() {
	clear(h.deadlines)
	h.input.ReleaseAll()
}
