package core

import "testing"

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()

	s.Press("ArrowLeft")
	if !s.Held("arrowleft") {
		t.Error("Press should normalize to lower case")
	}

	s.Release("ARROWLEFT")
	if s.Held("arrowleft") {
		t.Error("Release should clear held state")
	}

	// Unknown keys are stored without complaint
	s.Press("F13")
	if !s.Held("f13") {
		t.Error("unknown keys should still be tracked")
	}
}

func TestInputStateZeroValue(t *testing.T) {
	var s InputState
	if s.Held("a") {
		t.Error("zero value should hold nothing")
	}
	s.Press("a")
	if !s.Held("a") {
		t.Error("zero value should accept presses")
	}

	var nilState *InputState
	if nilState.Held("a") {
		t.Error("nil state should hold nothing")
	}
}

func TestBindingsControls(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name     string
		keys     []string
		expected Controls
	}{
		{"nothing held", nil, Controls{}},
		{"arrow left", []string{"arrowleft"}, Controls{Left: true}},
		{"wasd right", []string{"d"}, Controls{Right: true}},
		{"both laterals", []string{"a", "arrowright"}, Controls{Left: true, Right: true}},
		{"forward and backward", []string{"w", "s"}, Controls{Forward: true, Backward: true}},
		{"unbound key", []string{"x"}, Controls{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewInputState()
			for _, k := range tc.keys {
				s.Press(k)
			}
			if got := b.Controls(s); got != tc.expected {
				t.Errorf("Controls() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestBindingsActionFor(t *testing.T) {
	b := DefaultBindings()

	if got := b.ActionFor("ArrowUp"); got != ActionForward {
		t.Errorf("ActionFor(ArrowUp) = %v, expected Forward", got)
	}
	if got := b.ActionFor("q"); got != ActionNone {
		t.Errorf("ActionFor(q) = %v, expected None", got)
	}
	if ActionLeft.Opposite() != ActionRight || ActionForward.Opposite() != ActionBackward {
		t.Error("Opposite() pairs are wrong")
	}
}
