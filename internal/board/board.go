package board

import (
	"errors"
	"fmt"
	"math/rand"

	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/mathutil"

	"github.com/kamstrup/intmap"
)

// ErrInvalidGrid is returned by FromGrid for a grid that is not a
// permutation of the board's ids.
var ErrInvalidGrid = errors.New("board: invalid grid")

// Color names one of the three boards.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Colors lists the boards in the order the UI shows them.
var Colors = []Color{Red, Green, Blue}

// Layout places a board on screen.
type Layout struct {
	Size       int              // tiles per side
	Resolution float64          // board width and height in pixels
	Origin     mathutil.Vector2 // top-left corner of the board
	Step       float64          // animation progress added per tick
	Easing     mathutil.Easing  // slide curve
}

// TileSize returns the side of one tile in pixels.
func (l Layout) TileSize() float64 {
	return l.Resolution / float64(l.Size)
}

// CellPos returns the top-left pixel of a cell.
func (l Layout) CellPos(row, col int) mathutil.Vector2 {
	size := l.TileSize()
	return mathutil.V(float64(col)*size+l.Origin.X, float64(row)*size+l.Origin.Y)
}

// Listener receives the board's feedback signals.
type Listener interface {
	TileMoved(b *Board, t *Tile)
	TileBlocked(b *Board, t *Tile)
	BoardSolved(b *Board)
}

// Board is one colour's grid and tiles.
type Board struct {
	Color  Color
	Layout Layout
	Grid   Grid
	Tiles  []*Tile

	byID     *intmap.Map[int, *Tile]
	solved   bool
	listener Listener
}

// New creates a board in solved order.
func New(color Color, layout Layout) *Board {
	b, err := FromGrid(color, layout, NewSolvedGrid(layout.Size))
	if err != nil {
		panic(err)
	}
	return b
}

// FromGrid creates a board whose tiles sit where g says. Each tile keeps
// the texture region of its solved cell.
func FromGrid(color Color, layout Layout, g Grid) (*Board, error) {
	n := layout.Size
	if g.Size() != n || !g.Valid() {
		return nil, fmt.Errorf("%w: %d-board from grid\n%v", ErrInvalidGrid, n, g)
	}

	b := &Board{
		Color:  color,
		Layout: layout,
		Grid:   g.Clone(),
		Tiles:  make([]*Tile, 0, n*n),
		byID:   intmap.New[int, *Tile](n * n),
	}

	// Tiles are kept in id order so index i holds id i+1.
	for id := 1; id <= n*n; id++ {
		row, col, _ := b.Grid.Find(id)
		solvedRow, solvedCol := (id-1)/n, (id-1)%n
		texturePos := layout.CellPos(solvedRow, solvedCol).Subtract(layout.Origin)

		t := NewTile(id, row, col, layout.CellPos(row, col), layout.TileSize(), texturePos)
		t.easing = layout.Easing
		b.Tiles = append(b.Tiles, t)
		b.byID.Put(id, t)
	}
	b.solved = b.Grid.Solved()
	return b, nil
}

// SetListener installs the receiver for move, block and solved signals.
func (b *Board) SetListener(l Listener) {
	b.listener = l
}

// Solved reports the board's solved flag. It is recomputed after every
// successful move and cleared by Shuffle.
func (b *Board) Solved() bool {
	return b.solved
}

// Tile returns the tile with the given id.
func (b *Board) Tile(id int) (*Tile, bool) {
	return b.byID.Get(id)
}

// Move requests a move of the tile with the given id.
func (b *Board) Move(id int) MoveResult {
	t, ok := b.byID.Get(id)
	if !ok || id == b.Grid.Empty() {
		return Blocked
	}
	return b.move(t, true)
}

func (b *Board) move(t *Tile, notify bool) MoveResult {
	result := t.Move(b.Grid)
	if !notify {
		return result
	}

	if result == Blocked {
		if b.listener != nil {
			b.listener.TileBlocked(b, t)
		}
		return result
	}

	if b.listener != nil {
		b.listener.TileMoved(b, t)
	}
	b.solved = b.Grid.Solved()
	if b.solved && b.listener != nil {
		b.listener.BoardSolved(b)
	}
	return result
}

// Shuffle scrambles the board with random legal moves, so the result is
// always solvable, then settles every tile on its cell.
func (b *Board) Shuffle(r *rand.Rand, moves int) {
	b.solved = false
	last := b.Layout.Size*b.Layout.Size - 2
	for range moves {
		t := b.Tiles[mathutil.RandomInt(r, 0, last)]
		b.move(t, false)
	}
	for _, t := range b.Tiles {
		if t.playing {
			t.EndAnimation()
		}
	}
}

// TileAt returns the movable tile under p. While the board is solved no
// tile is movable.
func (b *Board) TileAt(p collision.Point) (*Tile, bool) {
	if b.solved {
		return nil, false
	}
	empty := b.Grid.Empty()
	for _, t := range b.Tiles {
		if t.ID == empty {
			continue
		}
		if collision.Collides(p, t.Collider) {
			return t, true
		}
	}
	return nil, false
}

// Click moves the tile under p, if any. ok is false when nothing was hit.
func (b *Board) Click(p collision.Point) (result MoveResult, ok bool) {
	t, hit := b.TileAt(p)
	if !hit {
		return Blocked, false
	}
	return b.move(t, true), true
}

// Animate advances every playing tile by one tick.
func (b *Board) Animate() {
	for _, t := range b.Tiles {
		if t.playing {
			t.Animate(b.Layout.Step)
		}
	}
}

// Animating reports whether any tile is mid-slide.
func (b *Board) Animating() bool {
	for _, t := range b.Tiles {
		if t.playing {
			return true
		}
	}
	return false
}
