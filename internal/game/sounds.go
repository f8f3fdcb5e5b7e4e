package game

import (
	"slidepuzzle/internal/board"
	"slidepuzzle/internal/sfx"
)

// soundListener turns board feedback into sound effects.
type soundListener struct {
	game *Game
}

func (l *soundListener) TileMoved(*board.Board, *board.Tile) {
	l.game.sounds.Play(sfx.Move)
	l.game.monitor.CountMove()
}

func (l *soundListener) TileBlocked(*board.Board, *board.Tile) {
	l.game.sounds.Play(sfx.Block)
}

func (l *soundListener) BoardSolved(b *board.Board) {
	l.game.logger.Info("board solved", "color", b.Color)
}
