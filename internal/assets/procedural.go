package assets

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"slidepuzzle/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackdrop = color.RGBA{20, 22, 30, 255}
	colorPanel    = color.RGBA{49, 56, 69, 255}
	colorText     = color.RGBA{230, 230, 230, 255}
	colorHover    = color.RGBA{240, 200, 90, 255}
	colorFrame    = color.RGBA{255, 255, 255, 255}

	boardColors = map[string][2]color.RGBA{
		RedBoard:   {{170, 50, 60, 255}, {120, 30, 40, 255}},
		GreenBoard: {{60, 150, 80, 255}, {35, 100, 55, 255}},
		BlueBoard:  {{60, 90, 170, 255}, {35, 55, 120, 255}},
	}
)

// Procedural draws every required texture from the layout in cfg, so the
// game runs without an asset directory.
func Procedural(cfg *config.Config) map[string]image.Image {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	ui := cfg.UI

	images := map[string]image.Image{
		Start1:      startScreen(w, h, ui, ""),
		Start2:      startScreen(w, h, ui, "play"),
		Start3:      startScreen(w, h, ui, "credits"),
		Credits1:    creditsScreen(w, h, ui, false),
		Credits2:    creditsScreen(w, h, ui, true),
		Background1: runOverlay(cfg, false),
		Background2: runOverlay(cfg, true),
		Frame:       outline(int(ui.Frames["red"].Width), int(ui.Frames["red"].Height), colorFrame),
		TileFrame:   outline(int(cfg.GetTileSize()), int(cfg.GetTileSize()), colorHover),
	}
	for name, shades := range boardColors {
		images[name] = boardImage(cfg.Board.Resolution, cfg.Board.Size, shades[0], shades[1])
	}
	return images
}

func newFilled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func rectOf(rc config.RectConfig) image.Rectangle {
	return image.Rect(int(rc.X), int(rc.Y), int(rc.X+rc.Width), int(rc.Y+rc.Height))
}

// drawLabel centres label inside r using the 7x13 bitmap face.
func drawLabel(img draw.Image, r image.Rectangle, label string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	width := d.MeasureString(label).Round()
	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()+face.Ascent-face.Descent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(label)
}

func drawButton(img draw.Image, r image.Rectangle, label string, hover bool) {
	bg := colorPanel
	fg := colorText
	if hover {
		fg = colorHover
	}
	fillRect(img, r, bg)
	drawLabel(img, r, label, fg)
}

func startScreen(w, h int, ui config.UIConfig, hover string) image.Image {
	img := newFilled(w, h, colorBackdrop)
	drawLabel(img, image.Rect(0, 30, w, 60), "SLIDE PUZZLE", colorText)
	drawButton(img, rectOf(ui.Play), "PLAY", hover == "play")
	drawButton(img, rectOf(ui.Credits), "CREDITS", hover == "credits")
	return img
}

func creditsScreen(w, h int, ui config.UIConfig, hover bool) image.Image {
	img := newFilled(w, h, colorBackdrop)
	drawLabel(img, image.Rect(0, 60, w, 80), "A SLIDING TILE PUZZLE", colorText)
	drawLabel(img, image.Rect(0, 90, w, 110), "BUILT WITH EBITEN", colorText)
	drawButton(img, rectOf(ui.Back), "BACK", hover)
	return img
}

// runOverlay is drawn above the tiles, so everything outside the panels is
// transparent.
func runOverlay(cfg *config.Config, hover bool) image.Image {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	origin := cfg.GetBoardOrigin()
	res := cfg.Board.Resolution
	board := image.Rect(int(origin.X), int(origin.Y), int(origin.X)+res, int(origin.Y)+res)
	border := board.Inset(-2)
	fillRect(img, image.Rect(border.Min.X, border.Min.Y, border.Max.X, board.Min.Y), colorPanel)
	fillRect(img, image.Rect(border.Min.X, board.Max.Y, border.Max.X, border.Max.Y), colorPanel)
	fillRect(img, image.Rect(border.Min.X, board.Min.Y, board.Min.X, board.Max.Y), colorPanel)
	fillRect(img, image.Rect(board.Max.X, board.Min.Y, border.Max.X, board.Max.Y), colorPanel)

	drawButton(img, rectOf(cfg.UI.Back), "BACK", hover)

	for name, fill := range map[string]color.RGBA{
		"red":   boardColors[RedBoard][0],
		"green": boardColors[GreenBoard][0],
		"blue":  boardColors[BlueBoard][0],
	} {
		r, ok := cfg.UI.Frames[name]
		if !ok {
			continue
		}
		fillRect(img, rectOf(r).Inset(3), fill)
	}
	return img
}

// boardImage is the solved picture: one shaded cell per tile with its
// number, the last cell left plain.
func boardImage(resolution, size int, light, dark color.RGBA) image.Image {
	img := newFilled(resolution, resolution, dark)
	cell := resolution / size
	for row := range size {
		for col := range size {
			id := row*size + col + 1
			r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell).Inset(1)
			if id == size*size {
				fillRect(img, r, dark)
				continue
			}
			fillRect(img, r, light)
			drawLabel(img, r, strconv.Itoa(id), colorText)
		}
	}
	return img
}

func outline(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, image.Rect(0, 0, w, 1), c)
	fillRect(img, image.Rect(0, h-1, w, h), c)
	fillRect(img, image.Rect(0, 0, 1, h), c)
	fillRect(img, image.Rect(w-1, 0, w, h), c)
	return img
}
