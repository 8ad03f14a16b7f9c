package core

import "strings"

// InputState tracks which keys are currently held.
// Keys are normalized to lower case; unknown keys are stored and simply
// never queried. The zero value is ready to use.
type InputState struct {
	held map[string]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{held: make(map[string]bool)}
}

// NormalizeKey lower-cases a key identifier.
func NormalizeKey(key string) string {
	return strings.ToLower(key)
}

// Press marks a key as held.
func (s *InputState) Press(key string) {
	if s.held == nil {
		s.held = make(map[string]bool)
	}
	s.held[NormalizeKey(key)] = true
}

// Release marks a key as no longer held.
func (s *InputState) Release(key string) {
	if s.held == nil {
		s.held = make(map[string]bool)
	}
	s.held[NormalizeKey(key)] = false
}

// Held reports whether the key is currently held.
func (s *InputState) Held(key string) bool {
	if s == nil || s.held == nil {
		return false
	}
	return s.held[NormalizeKey(key)]
}

// ReleaseAll clears every held key.
func (s *InputState) ReleaseAll() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Action is a semantic direction, abstracted from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // strafe toward -X
	ActionRight           // strafe toward +X
	ActionForward         // speed up
	ActionBackward        // slow down
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Opposite returns the action that cancels this one.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionForward:
		return ActionBackward
	case ActionBackward:
		return ActionForward
	default:
		return ActionNone
	}
}

// Bindings maps each action to the key names that trigger it.
type Bindings map[Action][]string

// DefaultBindings returns arrow keys plus WASD.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:     {"arrowleft", "a"},
		ActionRight:    {"arrowright", "d"},
		ActionForward:  {"arrowup", "w"},
		ActionBackward: {"arrowdown", "s"},
	}
}

// ActionFor returns the action bound to key, or ActionNone.
func (b Bindings) ActionFor(key string) Action {
	key = NormalizeKey(key)
	for a, keys := range b {
		for _, k := range keys {
			if NormalizeKey(k) == key {
				return a
			}
		}
	}
	return ActionNone
}

// Active reports whether any key bound to a is held.
func (b Bindings) Active(s *InputState, a Action) bool {
	for _, k := range b[a] {
		if s.Held(k) {
			return true
		}
	}
	return false
}

// Controls is the per-frame directional intent resolved from held keys.
// Left and Right may both be set; the engine applies both.
type Controls struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
}

// Controls resolves the held keys in s into directional intent.
func (b Bindings) Controls(s *InputState) Controls {
	return Controls{
		Left:     b.Active(s, ActionLeft),
		Right:    b.Active(s, ActionRight),
		Forward:  b.Active(s, ActionForward),
		Backward: b.Active(s, ActionBackward),
	}
}
