package game

import (
	"image"
	"image/color"

	"slidepuzzle/internal/assets"
	"slidepuzzle/internal/board"
	"slidepuzzle/internal/collision"
	"slidepuzzle/internal/render"
)

var (
	colorBackground = color.Black
	colorTileShadow = color.RGBA{0x31, 0x38, 0x45, 0xff}
)

// Draw paints the screen the last Update processed.
func (g *Game) Draw(c render.Canvas) {
	switch g.drawn {
	case StateStart:
		g.drawStart(c)
	case StateCredits:
		g.drawCredits(c)
	case StateRun:
		g.drawRun(c)
	}
}

func (g *Game) drawRun(c render.Canvas) {
	main := c.Layer(render.LayerMain)
	peek := c.Layer(render.LayerPeek)
	main.Clear()
	peek.Clear()

	w, h := g.config.GetScreenWidth(), g.config.GetScreenHeight()
	main.FillRect(0, 0, float64(w), float64(h), colorBackground)

	active := g.boards.Active()
	if active != nil {
		g.drawBoard(main, peek, active)
	}

	overlay := assets.Background1
	if g.hovered(buttonBack) {
		overlay = assets.Background2
	}
	main.DrawImage(g.atlas.Get(overlay), 0, 0)

	g.drawFrameUI(c.Layer(render.LayerUI))
}

func (g *Game) drawBoard(main, peek render.Surface, b *board.Board) {
	tex := g.atlas.Get(boardTextures[b.Color])
	size := b.Layout.TileSize()
	origin := b.Layout.Origin
	empty := b.Grid.Empty()

	for _, t := range b.Tiles {
		main.FillRect(t.Pos.X, t.Pos.Y+size, size, 2, colorTileShadow)
	}

	for _, t := range b.Tiles {
		if t.ID == empty {
			continue
		}
		src := image.Rect(int(t.TexturePos.X), int(t.TexturePos.Y),
			int(t.TexturePos.X+size), int(t.TexturePos.Y+size))
		main.DrawImageRegion(tex, src, t.Pos.X, t.Pos.Y)
	}

	if t, ok := b.TileAt(g.pointer()); ok {
		main.DrawImage(g.atlas.Get(assets.TileFrame), t.Pos.X, t.Pos.Y)
	}

	if g.peeking {
		peek.SetAlpha(g.peekAlpha)
		peek.DrawImage(tex, origin.X, origin.Y)
		peek.SetAlpha(1)
	}

	if b.Solved() {
		main.DrawImage(tex, origin.X, origin.Y)
	}
}

// drawFrameUI outlines hovered colour frames and the active board's frame.
func (g *Game) drawFrameUI(ui render.Surface) {
	ui.Clear()
	frame := g.atlas.Get(assets.Frame)

	for _, c := range g.boards.Colors() {
		if g.hovered(frameID(c)) {
			g.drawFrame(ui, frame, c)
		}
	}
	g.drawFrame(ui, frame, g.boards.ActiveColor())
}

func (g *Game) drawFrame(ui render.Surface, frame render.Texture, c board.Color) {
	e := g.ui.GetEntityByID(frameID(c))
	if e == nil {
		return
	}
	if rect, ok := e.Shape.(*collision.Rectangle); ok {
		ui.DrawImage(frame, rect.Position.X, rect.Position.Y)
	}
}
