// Package board holds the sliding-tile puzzle state: the id grid, the tiles
// with their slide animation, and the three colour boards.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShapeMismatch is returned by Shape when the flat slice cannot fill the
// requested dimensions.
var ErrShapeMismatch = errors.New("board: invalid flat array length for shape")

// Grid is a square matrix of tile ids. Ids run 1..n*n-1 and the single
// empty cell holds the sentinel n*n.
type Grid [][]int

// Empty returns the sentinel id for a board of side n.
func Empty(n int) int {
	return n * n
}

// NewSolvedGrid returns the n x n grid in solved order, sentinel last.
func NewSolvedGrid(n int) Grid {
	g, err := Shape(Fill(n*n + 1)[1:], n, n)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the side length.
func (g Grid) Size() int {
	return len(g)
}

// Empty returns the sentinel id for this grid.
func (g Grid) Empty() int {
	return Empty(len(g))
}

// Flatten returns the ids in row-major order.
func (g Grid) Flatten() []int {
	flat := make([]int, 0, len(g)*len(g))
	for _, row := range g {
		flat = append(flat, row...)
	}
	return flat
}

// Solved reports whether the ids, read row by row with the last cell
// dropped, are exactly 1..n*n-1.
func (g Grid) Solved() bool {
	flat := g.Flatten()
	if len(flat) == 0 {
		return false
	}
	for i, id := range flat[:len(flat)-1] {
		if id != i+1 {
			return false
		}
	}
	return true
}

// Valid reports whether the grid is square and holds each id 1..n*n exactly
// once.
func (g Grid) Valid() bool {
	n := len(g)
	seen := make([]bool, n*n+1)
	for _, row := range g {
		if len(row) != n {
			return false
		}
		for _, id := range row {
			if id < 1 || id > n*n || seen[id] {
				return false
			}
			seen[id] = true
		}
	}
	return true
}

// Find returns the position of id, or ok=false.
func (g Grid) Find(id int) (row, col int, ok bool) {
	for r, cells := range g {
		for c, v := range cells {
			if v == id {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, id := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if id == g.Empty() {
				sb.WriteString(" .")
				continue
			}
			fmt.Fprintf(&sb, "%2d", id)
		}
	}
	return sb.String()
}

// Fill returns 0..length-1.
func Fill(length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = i
	}
	return out
}

// Shape reshapes flat into rows x cols in row-major order.
func Shape(flat []int, rows, cols int) ([][]int, error) {
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d (%dx%d)", ErrShapeMismatch, len(flat), rows*cols, rows, cols)
	}
	out := make([][]int, rows)
	for r := range rows {
		out[r] = make([]int, cols)
		copy(out[r], flat[r*cols:(r+1)*cols])
	}
	return out, nil
}
