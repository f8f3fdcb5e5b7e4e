// Package input turns raw key and button events into per-frame,
// edge-triggered action queries.
package input

import (
	"slidepuzzle/internal/mathutil"
)

// Key identifies a physical key or mouse button, e.g. "Enter" or "MouseLeft".
type Key string

const (
	MouseLeft  Key = "MouseLeft"
	MouseRight Key = "MouseRight"
)

type keySet map[Key]struct{}

func (s keySet) has(k Key) bool {
	_, ok := s[k]
	return ok
}

// State tracks held keys across frames. Raw events mutate the held set at
// any point during a frame; Refresh is called once at the start of every
// tick to derive the just-pressed set and take the previous-frame snapshot.
type State struct {
	actions ActionTable

	held        keySet
	justPressed keySet
	previous    keySet

	// released is previous minus held, computed by Refresh before the
	// snapshot is replaced.
	released keySet

	pointer mathutil.Vector2
}

// NewState creates an input state bound to the given action table.
func NewState(actions ActionTable) *State {
	if actions == nil {
		actions = DefaultActions()
	}
	return &State{
		actions:     actions,
		held:        make(keySet),
		justPressed: make(keySet),
		previous:    make(keySet),
		released:    make(keySet),
	}
}

// Press records a key-down event.
func (s *State) Press(k Key) {
	s.held[k] = struct{}{}
}

// Release records a key-up event.
func (s *State) Release(k Key) {
	delete(s.held, k)
}

// MoveTo records the pointer position in logical pixels.
func (s *State) MoveTo(x, y float64) {
	s.pointer = mathutil.V(x, y)
}

// Pointer returns the last pointer position.
func (s *State) Pointer() mathutil.Vector2 {
	return s.pointer
}

// Refresh advances the frame: just-pressed becomes held minus the previous
// snapshot, then the snapshot is replaced with a copy of held.
func (s *State) Refresh() {
	clear(s.justPressed)
	for k := range s.held {
		if !s.previous.has(k) {
			s.justPressed[k] = struct{}{}
		}
	}

	clear(s.released)
	for k := range s.previous {
		if !s.held.has(k) {
			s.released[k] = struct{}{}
		}
	}

	clear(s.previous)
	for k := range s.held {
		s.previous[k] = struct{}{}
	}
}

// KeyHeld reports whether a physical key is currently down.
func (s *State) KeyHeld(k Key) bool {
	return s.held.has(k)
}

// KeyJustPressed reports whether a physical key went down this frame.
func (s *State) KeyJustPressed(k Key) bool {
	return s.justPressed.has(k)
}

// IsPressed reports whether any key bound to action is held.
func (s *State) IsPressed(action string) bool {
	return s.any(action, s.held)
}

// IsJustPressed reports whether any key bound to action went down this frame.
func (s *State) IsJustPressed(action string) bool {
	return s.any(action, s.justPressed)
}

// IsReleased reports whether any key bound to action was down as of the
// previous-frame snapshot. After Refresh that snapshot equals the held set,
// so this is true while the key is held, not on the down-to-up transition.
// Screen navigation depends on this behaviour; use IsJustReleased for the
// edge.
func (s *State) IsReleased(action string) bool {
	return s.any(action, s.previous)
}

// IsJustReleased reports whether any key bound to action went up between
// the last two refreshes.
func (s *State) IsJustReleased(action string) bool {
	return s.any(action, s.released)
}

func (s *State) any(action string, set keySet) bool {
	for _, k := range s.actions[action] {
		if set.has(k) {
			return true
		}
	}
	return false
}
