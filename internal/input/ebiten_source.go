package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source delivers raw events into a State. It runs once per tick, before
// State.Refresh.
type Source interface {
	Pump(s *State)
}

// EbitenSource replays ebiten's key and mouse transitions as Press/Release
// events. Key names come from ebiten.Key.String ("Enter", "Escape", "R").
type EbitenSource struct {
	keys []ebiten.Key
}

// NewEbitenSource creates a source reading from the running ebiten game.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

var mouseButtons = map[ebiten.MouseButton]Key{
	ebiten.MouseButtonLeft:  MouseLeft,
	ebiten.MouseButtonRight: MouseRight,
}

// Pump implements Source.
func (es *EbitenSource) Pump(s *State) {
	es.keys = inpututil.AppendJustPressedKeys(es.keys[:0])
	for _, k := range es.keys {
		s.Press(Key(k.String()))
	}
	es.keys = inpututil.AppendJustReleasedKeys(es.keys[:0])
	for _, k := range es.keys {
		s.Release(Key(k.String()))
	}

	for button, key := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			s.Press(key)
		}
		if inpututil.IsMouseButtonJustReleased(button) {
			s.Release(key)
		}
	}

	// CursorPosition is already in layout (logical) coordinates.
	x, y := ebiten.CursorPosition()
	s.MoveTo(float64(x), float64(y))
}
