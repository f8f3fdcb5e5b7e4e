package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type ebitenSurface struct {
	name  string
	z     int
	img   *ebiten.Image
	alpha float64
}

func (s *ebitenSurface) Clear() {
	s.img.Clear()
}

func (s *ebitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ebitenSurface) DrawImage(tex Texture, x, y float64) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	s.img.DrawImage(img, op)
}

func (s *ebitenSurface) DrawImageRegion(tex Texture, src image.Rectangle, x, y float64) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	s.DrawImage(sub, x, y)
}

func (s *ebitenSurface) SetAlpha(alpha float64) {
	s.alpha = alpha
}

// Layers is a stack of offscreen images composited in z order.
type Layers struct {
	width, height int
	byName        map[string]*ebitenSurface
	ordered       []*ebitenSurface
}

// NewLayers creates an empty stack of the given logical size.
func NewLayers(width, height int) *Layers {
	return &Layers{
		width:  width,
		height: height,
		byName: make(map[string]*ebitenSurface),
	}
}

// Add creates a layer; higher z draws on top.
func (l *Layers) Add(name string, z int) {
	s := &ebitenSurface{
		name:  name,
		z:     z,
		img:   ebiten.NewImage(l.width, l.height),
		alpha: 1,
	}
	l.byName[name] = s
	l.ordered = append(l.ordered, s)
	sort.SliceStable(l.ordered, func(i, j int) bool {
		return l.ordered[i].z < l.ordered[j].z
	})
}

// Layer implements Canvas. Unknown names get a fresh layer on top.
func (l *Layers) Layer(name string) Surface {
	if s, ok := l.byName[name]; ok {
		return s
	}
	top := 0
	if n := len(l.ordered); n > 0 {
		top = l.ordered[n-1].z + 1
	}
	l.Add(name, top)
	return l.byName[name]
}

// Present composites every layer onto screen.
func (l *Layers) Present(screen *ebiten.Image) {
	for _, s := range l.ordered {
		screen.DrawImage(s.img, nil)
	}
}

// NewGameLayers creates the layer stack the game draws on.
func NewGameLayers(width, height int) *Layers {
	l := NewLayers(width, height)
	l.Add(LayerMain, 1)
	l.Add(LayerParticle, 2)
	l.Add(LayerPeek, 3)
	l.Add(LayerUI, 4)
	return l
}
