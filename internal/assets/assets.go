// Package assets loads the game's textures, either from PNG files or by
// drawing them procedurally when no asset directory is configured.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"slidepuzzle/internal/config"
	"slidepuzzle/internal/render"
	"slidepuzzle/internal/workers"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingTexture is returned when a required texture is not available.
var ErrMissingTexture = errors.New("assets: missing texture")

// Texture names.
const (
	Start1      = "start1"
	Start2      = "start2"
	Start3      = "start3"
	Credits1    = "credits1"
	Credits2    = "credits2"
	Background1 = "bg1"
	Background2 = "bg2"
	RedBoard    = "redBoard"
	GreenBoard  = "greenBoard"
	BlueBoard   = "blueBoard"
	Frame       = "frame"
	TileFrame   = "tileFrame"
)

// Files maps every required texture to its file name inside the asset
// directory.
var Files = map[string]string{
	Start1:      "startscreen1.png",
	Start2:      "startscreen2.png",
	Start3:      "startscreen3.png",
	Credits1:    "credits1.png",
	Credits2:    "credits2.png",
	Background1: "background1.png",
	Background2: "background2.png",
	RedBoard:    "boardbg1.png",
	GreenBoard:  "boardbg2.png",
	BlueBoard:   "boardbg3.png",
	Frame:       "frame.png",
	TileFrame:   "tileframe.png",
}

// Required returns the texture names in sorted order.
func Required() []string {
	names := make([]string, 0, len(Files))
	for name := range Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Atlas is the loaded set of textures, keyed by name.
type Atlas struct {
	textures map[string]render.Texture
}

// NewAtlas wraps textures after checking every required name is present.
func NewAtlas(textures map[string]render.Texture) (*Atlas, error) {
	for _, name := range Required() {
		if _, ok := textures[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTexture, name)
		}
	}
	return &Atlas{textures: textures}, nil
}

// Get returns the named texture.
func (a *Atlas) Get(name string) render.Texture {
	return a.textures[name]
}

// LoadImages decodes every file in files from dir, in parallel. The load is
// all-or-nothing: on any failure nothing is returned, and the error names
// the first failing texture in sorted order.
func LoadImages(dir string, files map[string]string) (map[string]image.Image, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	decoded := make([]image.Image, len(names))
	errs := make([]error, len(names))

	pool := workers.NewPool(0)
	pool.Start()
	defer pool.Stop()
	pool.ParallelFor(0, len(names), func(i int) {
		decoded[i], errs[i] = decodeFile(filepath.Join(dir, files[names[i]]))
	})

	images := make(map[string]image.Image, len(names))
	for i, name := range names {
		if errs[i] != nil {
			return nil, fmt.Errorf("assets: load %s: %w", name, errs[i])
		}
		images[name] = decoded[i]
	}
	return images, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ToEbiten uploads decoded images as ebiten textures.
func ToEbiten(images map[string]image.Image) map[string]render.Texture {
	textures := make(map[string]render.Texture, len(images))
	for name, img := range images {
		textures[name] = ebiten.NewImageFromImage(img)
	}
	return textures
}

// Decode returns the source images for cfg: the PNG files in the configured
// asset directory, or procedural ones when no directory is set.
func Decode(cfg *config.Config) (map[string]image.Image, error) {
	if cfg.Assets.Dir == "" {
		return Procedural(cfg), nil
	}
	return LoadImages(cfg.Assets.Dir, Files)
}

// Load decodes the textures for cfg and uploads them to the GPU.
func Load(cfg *config.Config) (*Atlas, error) {
	images, err := Decode(cfg)
	if err != nil {
		return nil, err
	}
	return NewAtlas(ToEbiten(images))
}
