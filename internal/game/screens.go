package game

import (
	"slidepuzzle/internal/assets"
	"slidepuzzle/internal/input"
	"slidepuzzle/internal/render"
	"slidepuzzle/internal/sfx"
)

func (g *Game) updateStart() {
	switch {
	case g.hovered(buttonPlay):
		if g.clicked() {
			g.sounds.Play(sfx.Select)
			g.startRun()
		}
	case g.hovered(buttonCredits):
		if g.clicked() {
			g.setState(StateCredits)
			g.sounds.Play(sfx.Select)
		}
	}
}

func (g *Game) updateCredits() {
	if g.input.IsReleased(input.ActionBack) {
		g.setState(StateStart)
	}
	if g.hovered(buttonBack) && g.clicked() {
		g.setState(StateStart)
		g.sounds.Play(sfx.Select)
	}
}

func (g *Game) drawStart(c render.Canvas) {
	clearLayers(c, render.LayerPeek, render.LayerUI)

	name := assets.Start1
	switch {
	case g.hovered(buttonPlay):
		name = assets.Start2
	case g.hovered(buttonCredits):
		name = assets.Start3
	}
	main := c.Layer(render.LayerMain)
	main.Clear()
	main.DrawImage(g.atlas.Get(name), 0, 0)
}

func (g *Game) drawCredits(c render.Canvas) {
	clearLayers(c, render.LayerPeek, render.LayerUI)

	name := assets.Credits1
	if g.hovered(buttonBack) {
		name = assets.Credits2
	}
	main := c.Layer(render.LayerMain)
	main.Clear()
	main.DrawImage(g.atlas.Get(name), 0, 0)
}

func clearLayers(c render.Canvas, names ...string) {
	for _, name := range names {
		c.Layer(name).Clear()
	}
}
