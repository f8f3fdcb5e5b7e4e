package main

import (
	"bytes"
	"strings"
	"testing"

	"slidepuzzle/internal/board"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGrid(t *testing.T) {
	out := renderGrid(board.Grid{{1, 2}, {4, 3}})
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, ".")
	assert.NotContains(t, out, "4")
	// two rows plus top and bottom border
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestShuffledBoardIsSeeded(t *testing.T) {
	a := shuffledBoard(4, 100, 42)
	b := shuffledBoard(4, 100, 42)
	assert.Equal(t, a.Grid, b.Grid)
	assert.True(t, a.Grid.Valid())

	solved := shuffledBoard(3, 0, 1)
	assert.True(t, solved.Grid.Solved())
}

func TestShuffleCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"shuffle", "--size", "3", "--moves", "10", "--seed", "5"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagSize, flagMoves, flagSeed = 0, 0, 0
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "10 moves")
	assert.Contains(t, out.String(), "8")
}

func TestShuffleCommandRejectsTinyBoard(t *testing.T) {
	rootCmd.SetArgs([]string{"shuffle", "--size", "1"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
		flagSize = 0
	})

	assert.ErrorContains(t, rootCmd.Execute(), "size must be at least 2")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "slidepuzzle dev\n", out.String())
}

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, log.WarnLevel, newLogger("warn", false).GetLevel())
	assert.Equal(t, log.DebugLevel, newLogger("warn", true).GetLevel())
	assert.Equal(t, log.InfoLevel, newLogger("loud", false).GetLevel())
}
