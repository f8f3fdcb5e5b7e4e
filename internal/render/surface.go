// Package render defines the drawing surfaces the game paints on and their
// ebiten implementation.
package render

import (
	"image"
	"image/color"
)

// Layer names, bottom to top.
const (
	LayerMain     = "main"
	LayerParticle = "particle"
	LayerPeek     = "peek"
	LayerUI       = "ui"
)

// Texture is a drawable image. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Surface is one drawing layer.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	DrawImage(tex Texture, x, y float64)
	DrawImageRegion(tex Texture, src image.Rectangle, x, y float64)
	// SetAlpha scales the opacity of subsequent image draws.
	SetAlpha(alpha float64)
}

// Canvas hands out layers by name.
type Canvas interface {
	Layer(name string) Surface
}
