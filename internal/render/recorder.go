package render

import (
	"fmt"
	"image"
	"image/color"
)

// NamedTexture is a Texture that only carries a name and size. It is used
// where no GPU image is available, e.g. in tests and headless runs.
type NamedTexture struct {
	Name   string
	Width  int
	Height int
}

func (t NamedTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.Width, t.Height)
}

func (t NamedTexture) String() string {
	return t.Name
}

// Op is one recorded draw call.
type Op struct {
	Layer string
	Kind  string // clear, fill, image, region, alpha
	Tex   string
	X, Y  float64
	Alpha float64
	Src   image.Rectangle
}

// Recorder is a Canvas that records draw calls instead of drawing.
type Recorder struct {
	Ops []Op

	surfaces map[string]*recordingSurface
}

// Layer implements Canvas.
func (r *Recorder) Layer(name string) Surface {
	if r.surfaces == nil {
		r.surfaces = make(map[string]*recordingSurface)
	}
	s, ok := r.surfaces[name]
	if !ok {
		s = &recordingSurface{rec: r, name: name, alpha: 1}
		r.surfaces[name] = s
	}
	return s
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Images returns the names of textures drawn on layer, in order.
func (r *Recorder) Images(layer string) []string {
	var names []string
	for _, op := range r.Ops {
		if op.Layer == layer && op.Kind == "image" {
			names = append(names, op.Tex)
		}
	}
	return names
}

// Count returns how many calls of kind hit layer.
func (r *Recorder) Count(layer, kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Layer == layer && op.Kind == kind {
			n++
		}
	}
	return n
}

type recordingSurface struct {
	rec   *Recorder
	name  string
	alpha float64
}

func (s *recordingSurface) add(op Op) {
	op.Layer = s.name
	s.rec.Ops = append(s.rec.Ops, op)
}

func (s *recordingSurface) Clear() {
	s.add(Op{Kind: "clear"})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.add(Op{Kind: "fill", X: x, Y: y})
}

func (s *recordingSurface) DrawImage(tex Texture, x, y float64) {
	s.add(Op{Kind: "image", Tex: fmt.Sprint(tex), X: x, Y: y, Alpha: s.alpha})
}

func (s *recordingSurface) DrawImageRegion(tex Texture, src image.Rectangle, x, y float64) {
	s.add(Op{Kind: "region", Tex: fmt.Sprint(tex), X: x, Y: y, Alpha: s.alpha, Src: src})
}

func (s *recordingSurface) SetAlpha(alpha float64) {
	s.alpha = alpha
	s.add(Op{Kind: "alpha", Alpha: alpha})
}
