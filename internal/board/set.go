package board

import (
	"fmt"
	"math/rand"
)

// Set owns the three colour boards and tracks which one is active.
type Set struct {
	layout  Layout
	boards  map[Color]*Board
	active  Color
	created bool
}

// NewSet creates an empty set; boards are built by Init.
func NewSet(layout Layout) *Set {
	return &Set{
		layout: layout,
		boards: make(map[Color]*Board, len(Colors)),
		active: Red,
	}
}

// Initialized reports whether Init has run.
func (s *Set) Initialized() bool {
	return s.created
}

// Init creates and shuffles every board. Later calls do nothing.
func (s *Set) Init(r *rand.Rand, moves int, l Listener) {
	if s.created {
		return
	}
	for _, c := range Colors {
		b := New(c, s.layout)
		b.SetListener(l)
		b.Shuffle(r, moves)
		s.boards[c] = b
	}
	s.created = true
}

// Active returns the displayed board, or nil before Init.
func (s *Set) Active() *Board {
	return s.boards[s.active]
}

// ActiveColor returns the colour of the displayed board.
func (s *Set) ActiveColor() Color {
	return s.active
}

// SetActive switches the displayed board.
func (s *Set) SetActive(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("board: unknown color %q", c)
	}
	s.active = c
	return nil
}

// Get returns the board of the given colour.
func (s *Set) Get(c Color) (*Board, bool) {
	b, ok := s.boards[c]
	return b, ok
}

// Valid reports whether c is one of the three board colours.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// Colors returns the board colours in display order.
func (s *Set) Colors() []Color {
	return append([]Color(nil), Colors...)
}
