package board

import (
	"math/rand"
	"testing"

	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout(size int) Layout {
	return Layout{
		Size:       size,
		Resolution: float64(32 * size),
		Origin:     mathutil.V(96, 18),
		Step:       1.0 / 200,
		Easing:     mathutil.EaseOutElastic,
	}
}

type recordingListener struct {
	moved, blocked, solved int
}

func (l *recordingListener) TileMoved(*Board, *Tile)   { l.moved++ }
func (l *recordingListener) TileBlocked(*Board, *Tile) { l.blocked++ }
func (l *recordingListener) BoardSolved(*Board)        { l.solved++ }

func center(t *Tile) collision.Point {
	return collision.Point(t.Pos.Add(mathutil.V(t.Size/2, t.Size/2)))
}

func TestNewBoardLayout(t *testing.T) {
	b := New(Red, testLayout(4))

	require.Len(t, b.Tiles, 16)
	assert.True(t, b.Grid.Solved())
	for i, tile := range b.Tiles {
		assert.Equal(t, i+1, tile.ID)
		assert.Equal(t, b.Layout.CellPos(tile.Row, tile.Col), tile.Pos)
		assert.Equal(t, tile.Pos.Subtract(b.Layout.Origin), tile.TexturePos)
		assert.False(t, tile.Playing())
	}

	last := b.Tiles[15]
	assert.Equal(t, mathutil.V(96+96, 18+96), last.Pos)

	tile, ok := b.Tile(6)
	require.True(t, ok)
	assert.Equal(t, 1, tile.Row)
	assert.Equal(t, 1, tile.Col)
}

func TestFromGridRejectsBadGrid(t *testing.T) {
	_, err := FromGrid(Red, testLayout(2), Grid{{1, 1}, {2, 3}})
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = FromGrid(Red, testLayout(3), NewSolvedGrid(2))
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestMoveRejected(t *testing.T) {
	b, err := FromGrid(Red, testLayout(2), Grid{{1, 4}, {2, 3}})
	require.NoError(t, err)
	l := &recordingListener{}
	b.SetListener(l)

	tile, _ := b.Tile(2)
	before := tile.Pos

	assert.Equal(t, Blocked, b.Move(2))
	assert.Equal(t, Grid{{1, 4}, {2, 3}}, b.Grid)
	assert.False(t, tile.Playing())
	assert.Equal(t, before, tile.Pos)
	assert.Equal(t, 1, tile.Row)
	assert.Equal(t, 0, tile.Col)
	assert.Equal(t, 1, l.blocked)
	assert.Equal(t, 0, l.moved)
}

func TestMoveIntoEmptyCell(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		id       int
		want     Grid
		axis     Axis
		delta    mathutil.Vector2
		row, col int
	}{
		{"right", Grid{{1, 4}, {2, 3}}, 1, Grid{{4, 1}, {2, 3}}, AxisX, mathutil.V(32, 0), 0, 1},
		{"left", Grid{{4, 1}, {2, 3}}, 1, Grid{{1, 4}, {2, 3}}, AxisX, mathutil.V(-32, 0), 0, 0},
		{"up", Grid{{4, 1}, {2, 3}}, 2, Grid{{2, 1}, {4, 3}}, AxisY, mathutil.V(0, -32), 0, 0},
		{"down", Grid{{1, 2}, {4, 3}}, 1, Grid{{4, 2}, {1, 3}}, AxisY, mathutil.V(0, 32), 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromGrid(Green, testLayout(2), tt.grid)
			require.NoError(t, err)
			tile, _ := b.Tile(tt.id)
			start := tile.Pos

			require.Equal(t, Moved, b.Move(tt.id))
			assert.Equal(t, tt.want, b.Grid)
			assert.Equal(t, tt.row, tile.Row)
			assert.Equal(t, tt.col, tile.Col)

			axis, progress, target := tile.Animation()
			assert.True(t, tile.Playing())
			assert.Equal(t, tt.axis, axis)
			assert.Equal(t, 0.0, progress)

			end := start.Add(tt.delta)
			if axis == AxisX {
				assert.Equal(t, end.X, target)
			} else {
				assert.Equal(t, end.Y, target)
			}
			assert.True(t, b.Grid.Valid())
		})
	}
}

func TestMoveFromCenter(t *testing.T) {
	// Tile 5 sits in the middle of a 3x3 board with the empty cell on its
	// left.
	b, err := FromGrid(Red, testLayout(3), Grid{{1, 2, 3}, {9, 5, 6}, {7, 8, 4}})
	require.NoError(t, err)
	require.Equal(t, Moved, b.Move(5))
	tile, _ := b.Tile(5)
	axis, _, _ := tile.Animation()
	assert.Equal(t, AxisX, axis)
	assert.Equal(t, 0, tile.Col)
}

func TestAnimateSettlesOnTarget(t *testing.T) {
	b, err := FromGrid(Red, testLayout(2), Grid{{1, 4}, {2, 3}})
	require.NoError(t, err)
	tile, _ := b.Tile(1)
	want := b.Layout.CellPos(0, 1)

	require.Equal(t, Moved, b.Move(1))
	ticks := 0
	for b.Animating() {
		b.Animate()
		ticks++
		require.Less(t, ticks, 1000, "animation never finished")
	}

	// 1/200 per tick: roughly 200 ticks depending on float accumulation.
	assert.Contains(t, []int{200, 201}, ticks)
	assert.Equal(t, want, tile.Pos)
	assert.Equal(t, want, tile.Collider.Position)
}

func TestMoveDrainsAnimationInFlight(t *testing.T) {
	b, err := FromGrid(Red, testLayout(2), Grid{{1, 4}, {2, 3}})
	require.NoError(t, err)
	tile, _ := b.Tile(1)
	home := tile.Pos

	require.Equal(t, Moved, b.Move(1))
	for range 5 {
		b.Animate()
	}
	require.True(t, tile.Playing())

	// The slide right is forced to finish before the slide back starts.
	require.Equal(t, Moved, b.Move(1))
	assert.Equal(t, home.X+32, tile.Pos.X)
	_, progress, target := tile.Animation()
	assert.Equal(t, 0.0, progress)
	assert.Equal(t, home.X, target)
	assert.Equal(t, Grid{{1, 4}, {2, 3}}, b.Grid)
}

func TestShuffleKeepsInvariant(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		b := New(Blue, testLayout(4))
		b.Shuffle(rand.New(rand.NewSource(seed)), 500)

		require.True(t, b.Grid.Valid(), "seed %d\n%v", seed, b.Grid)
		assert.False(t, b.Solved())
		assert.False(t, b.Animating(), "shuffle leaves tiles at rest")

		empty := b.Grid.Empty()
		for _, tile := range b.Tiles {
			if tile.ID == empty {
				continue
			}
			require.Equal(t, tile.ID, b.Grid[tile.Row][tile.Col])
			require.Equal(t, b.Layout.CellPos(tile.Row, tile.Col), tile.Pos)
		}
	}
}

func TestShuffleIsSilentAndSeeded(t *testing.T) {
	l := &recordingListener{}
	a := New(Red, testLayout(4))
	a.SetListener(l)
	a.Shuffle(rand.New(rand.NewSource(9)), 200)

	b := New(Red, testLayout(4))
	b.Shuffle(rand.New(rand.NewSource(9)), 200)

	assert.Equal(t, a.Grid, b.Grid)
	assert.Zero(t, l.moved+l.blocked+l.solved)
}

func TestClickAndSolve(t *testing.T) {
	b, err := FromGrid(Red, testLayout(2), Grid{{1, 2}, {4, 3}})
	require.NoError(t, err)
	l := &recordingListener{}
	b.SetListener(l)
	require.False(t, b.Solved())

	tile3, _ := b.Tile(3)
	result, ok := b.Click(center(tile3))
	require.True(t, ok)
	assert.Equal(t, Moved, result)
	assert.True(t, b.Solved())
	assert.Equal(t, 1, l.moved)
	assert.Equal(t, 1, l.solved)

	// A solved board takes no more input.
	tile1, _ := b.Tile(1)
	_, ok = b.Click(center(tile1))
	assert.False(t, ok)
	_, ok = b.TileAt(center(tile1))
	assert.False(t, ok)
}

func TestClickIgnoresEmptyTileAndMisses(t *testing.T) {
	b, err := FromGrid(Red, testLayout(2), Grid{{1, 2}, {4, 3}})
	require.NoError(t, err)

	empty, _ := b.Tile(4)
	_, ok := b.Click(center(empty))
	assert.False(t, ok, "the sentinel tile is never clickable")

	_, ok = b.Click(collision.Point(mathutil.V(0, 0)))
	assert.False(t, ok)

	blocked, ok := b.Click(center(b.Tiles[1]))
	assert.True(t, ok)
	assert.Equal(t, Blocked, blocked)
}

func TestSetInit(t *testing.T) {
	s := NewSet(testLayout(4))
	assert.Nil(t, s.Active())
	assert.False(t, s.Initialized())

	s.Init(rand.New(rand.NewSource(1)), 100, nil)
	require.True(t, s.Initialized())
	require.NotNil(t, s.Active())
	assert.Equal(t, Red, s.ActiveColor())

	first := s.Active().Grid.Clone()
	s.Init(rand.New(rand.NewSource(2)), 100, nil)
	assert.Equal(t, first, s.Active().Grid, "second Init is a no-op")

	require.NoError(t, s.SetActive(Blue))
	blue, ok := s.Get(Blue)
	require.True(t, ok)
	assert.Same(t, blue, s.Active())

	assert.Error(t, s.SetActive("purple"))
	assert.Equal(t, Blue, s.ActiveColor())
	assert.Equal(t, []Color{Red, Green, Blue}, s.Colors())
}

func TestSolvedIsPerBoard(t *testing.T) {
	s := NewSet(testLayout(2))
	s.Init(rand.New(rand.NewSource(3)), 0, nil)

	red, _ := s.Get(Red)
	green, _ := s.Get(Green)
	require.NoError(t, s.SetActive(Green))

	// Solving a board that is not active still marks that board, not the
	// active one.
	red.Grid = Grid{{1, 2}, {4, 3}}
	red.Tiles[2].Row, red.Tiles[2].Col = 1, 1
	red.Tiles[2].Pos = red.Layout.CellPos(1, 1)
	red.Tiles[2].Collider.UpdatePosition(red.Tiles[2].Pos)
	require.Equal(t, Moved, red.Move(3))

	assert.True(t, red.Solved())
	assert.False(t, green.Solved())
}
