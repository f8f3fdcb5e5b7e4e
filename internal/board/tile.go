package board

import (
	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/mathutil"
)

// Axis is the coordinate a tile slides along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// MoveResult is the outcome of a move request.
type MoveResult int

const (
	Blocked MoveResult = iota
	Moved
)

func (m MoveResult) String() string {
	if m == Moved {
		return "moved"
	}
	return "blocked"
}

// Tile is one numbered piece. ID matches the cell it occupies when the
// board is solved, which is also where its texture region comes from.
type Tile struct {
	ID       int
	Row, Col int
	Pos      mathutil.Vector2
	Size     float64

	// TexturePos is the top-left of the tile's region in the board texture.
	TexturePos mathutil.Vector2

	Collider *collision.Rectangle

	playing  bool
	axis     Axis
	progress float64
	target   float64
	easing   mathutil.Easing
}

// NewTile creates an idle tile at pos occupying cell (row, col).
func NewTile(id, row, col int, pos mathutil.Vector2, size float64, texturePos mathutil.Vector2) *Tile {
	return &Tile{
		ID:         id,
		Row:        row,
		Col:        col,
		Pos:        pos,
		Size:       size,
		TexturePos: texturePos,
		Collider:   collision.NewRectangle(pos.X, pos.Y, size, size),
		easing:     mathutil.EaseOutElastic,
	}
}

// Playing reports whether a slide animation is in flight.
func (t *Tile) Playing() bool {
	return t.playing
}

// Animation returns the in-flight animation parameters.
func (t *Tile) Animation() (axis Axis, progress, target float64) {
	return t.axis, t.progress, t.target
}

// Move slides the tile into a neighbouring empty cell of g, checking left,
// right, up and down in that order. An animation still in flight is
// completed first. When no neighbour is empty the grid and the tile are left
// unchanged and Blocked is returned.
func (t *Tile) Move(g Grid) MoveResult {
	if t.playing {
		t.EndAnimation()
	}

	row, col := t.Row, t.Col
	n := g.Size()
	empty := g.Empty()

	switch {
	case col > 0 && g[row][col-1] == empty:
		t.startAnimation(AxisX, t.Pos.X-t.Size)
		t.Col = col - 1
	case col < n-1 && g[row][col+1] == empty:
		t.startAnimation(AxisX, t.Pos.X+t.Size)
		t.Col = col + 1
	case row > 0 && g[row-1][col] == empty:
		t.startAnimation(AxisY, t.Pos.Y-t.Size)
		t.Row = row - 1
	case row < n-1 && g[row+1][col] == empty:
		t.startAnimation(AxisY, t.Pos.Y+t.Size)
		t.Row = row + 1
	default:
		return Blocked
	}

	g[t.Row][t.Col] = t.ID
	g[row][col] = empty
	return Moved
}

func (t *Tile) startAnimation(axis Axis, target float64) {
	t.axis = axis
	t.target = target
	t.progress = 0
	t.playing = true
}

// EndAnimation stops the animation and puts the tile exactly on its target.
func (t *Tile) EndAnimation() {
	t.playing = false
	if t.axis == AxisX {
		t.Pos.X = t.target
	} else {
		t.Pos.Y = t.target
	}
	t.Collider.UpdatePosition(t.Pos)
}

// Animate advances the slide by one tick. The coordinate is eased from its
// current value toward the target, then progress grows by step; once past
// 1 the tile snaps onto the target so the elastic overshoot leaves no drift.
func (t *Tile) Animate(step float64) {
	if !t.playing {
		return
	}

	if t.axis == AxisX {
		t.Pos.X = mathutil.Lerp(t.Pos.X, t.target, t.progress, t.easing)
	} else {
		t.Pos.Y = mathutil.Lerp(t.Pos.Y, t.target, t.progress, t.easing)
	}
	t.progress += step

	if t.progress > 1 {
		t.EndAnimation()
		return
	}
	t.Collider.UpdatePosition(t.Pos)
}
