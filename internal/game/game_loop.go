package game

import (
	"slidepuzzle/internal/input"
	"slidepuzzle/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop adapts Game to ebiten's Update/Draw/Layout cycle
type GameLoop struct {
	game   *Game
	source input.Source
	layers *render.Layers

	perfState
}

// NewGameLoop creates the ebiten-facing loop around game. Raw input comes
// from source once per tick.
func NewGameLoop(game *Game, source input.Source) *GameLoop {
	cfg := game.Config()
	return &GameLoop{
		game:   game,
		source: source,
		layers: render.NewGameLayers(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
	}
}

// Update handles all game logic updates for one tick
func (gl *GameLoop) Update() error {
	frameTimer := gl.game.monitor.StartFrame()
	defer frameTimer.EndFrame()

	gl.source.Pump(gl.game.Input())

	var err error
	gl.game.monitor.ProfiledFunction("update", func() {
		err = gl.game.Update()
	})

	gl.maybeLogPerfDrop()
	return err
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.game.monitor.ProfiledFunction("draw", func() {
		gl.game.Draw(gl.layers)
		gl.layers.Present(screen)
	})

	if gl.game.ShowDebug() {
		gl.drawDebug(screen)
	}
}

// Layout returns the logical screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}
