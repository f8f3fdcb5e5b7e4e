package game

import (
	"slidepuzzle/internal/board"
	"slidepuzzle/internal/input"
	"slidepuzzle/internal/mathutil"
	"slidepuzzle/internal/sfx"
)

// updateRun advances the active board and handles the run screen's input.
func (g *Game) updateRun() {
	active := g.boards.Active()
	if active == nil {
		g.logger.Error("run screen without boards")
		g.setState(StateStart)
		return
	}

	g.monitor.ProfiledFunction("animate", active.Animate)
	g.monitor.SetTilesAnimating(countAnimating(active))

	if g.clicked() {
		active.Click(g.pointer())
		g.clickFrames()
	}

	g.updatePeek()

	if g.input.IsJustPressed(input.ActionShuffle) {
		active.Shuffle(g.rng, g.config.Board.ShuffleMoves)
		g.logger.Debug("board reshuffled", "color", active.Color)
	}

	if g.input.IsReleased(input.ActionBack) {
		g.setState(StateStart)
	}
	if g.hovered(buttonBack) && g.clicked() {
		g.setState(StateStart)
		g.sounds.Play(sfx.Select)
	}
}

// clickFrames switches the active board when a colour frame is clicked.
func (g *Game) clickFrames() {
	for _, c := range g.boards.Colors() {
		if !g.hovered(frameID(c)) {
			continue
		}
		if err := g.boards.SetActive(c); err != nil {
			g.logger.Warn("frame click", "err", err)
			continue
		}
		g.sounds.Play(sfx.Select)
	}
}

// updatePeek fades the solved picture in while the peek button is held and
// resets it the moment the button is up.
func (g *Game) updatePeek() {
	if !g.input.IsPressed(input.ActionRightClick) {
		g.peeking = false
		g.peekAlpha = 0
		g.peekProgress = 0
		return
	}
	g.peeking = true
	g.peekAlpha = mathutil.Lerp(g.peekAlpha, 1, g.peekProgress, g.peekEasing())
	g.peekProgress += g.config.Peek.Step
}

// Peek returns whether the preview is showing and its opacity.
func (g *Game) Peek() (peeking bool, alpha float64) {
	return g.peeking, g.peekAlpha
}

func countAnimating(b *board.Board) int32 {
	var n int32
	for _, t := range b.Tiles {
		if t.Playing() {
			n++
		}
	}
	return n
}
