package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"slidepuzzle/internal/config"
	"slidepuzzle/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProceduralCoversRequired(t *testing.T) {
	cfg := config.Default()
	images := Procedural(cfg)

	for _, name := range Required() {
		require.Contains(t, images, name)
	}
	assert.Len(t, images, len(Files))

	assert.Equal(t, image.Rect(0, 0, 320, 180), images[Start1].Bounds())
	assert.Equal(t, image.Rect(0, 0, 128, 128), images[RedBoard].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), images[TileFrame].Bounds())
	assert.Equal(t, image.Rect(0, 0, 22, 22), images[Frame].Bounds())
}

func TestRunOverlayLeavesBoardTransparent(t *testing.T) {
	cfg := config.Default()
	overlay := Procedural(cfg)[Background1]

	origin := cfg.GetBoardOrigin()
	_, _, _, a := overlay.At(int(origin.X)+40, int(origin.Y)+40).RGBA()
	assert.Zero(t, a, "tiles must show through the overlay")

	_, _, _, a = overlay.At(int(cfg.UI.Back.X)+1, int(cfg.UI.Back.Y)+1).RGBA()
	assert.NotZero(t, a)
}

func TestBoardImagesDiffer(t *testing.T) {
	images := Procedural(config.Default())
	red := images[RedBoard].At(5, 5)
	blue := images[BlueBoard].At(5, 5)
	assert.NotEqual(t, red, blue)
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	writePNG(t, filepath.Join(dir, "b.png"))

	images, err := LoadImages(dir, map[string]string{"a": "a.png", "b": "b.png"})
	require.NoError(t, err)
	assert.Len(t, images, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 4), images["a"].Bounds())
}

func TestLoadImagesIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0o644))

	images, err := LoadImages(dir, map[string]string{"a": "a.png", "missing": "nope.png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, images)

	_, err = LoadImages(dir, map[string]string{"bad": "bad.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestNewAtlasRequiresEveryTexture(t *testing.T) {
	textures := map[string]render.Texture{}
	for _, name := range Required() {
		textures[name] = render.NamedTexture{Name: name, Width: 1, Height: 1}
	}
	atlas, err := NewAtlas(textures)
	require.NoError(t, err)
	assert.Equal(t, render.NamedTexture{Name: Frame, Width: 1, Height: 1}, atlas.Get(Frame))

	delete(textures, TileFrame)
	_, err = NewAtlas(textures)
	assert.ErrorIs(t, err, ErrMissingTexture)
}

func TestDecodeChoosesSource(t *testing.T) {
	cfg := config.Default()
	images, err := Decode(cfg)
	require.NoError(t, err)
	assert.Len(t, images, len(Files))

	cfg.Assets.Dir = t.TempDir()
	_, err = Decode(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
