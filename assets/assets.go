package assets

import (
	"bytes"
	"embed"
	"hash/fnv"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/grimhold/rockbuster/config"
	"github.com/hajimehoshi/ebiten/v2"

	_ "image/png"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS returns the embedded level filesystem for the TMX loader.
func LevelFS() fs.FS {
	return levelFS
}

// SpriteLoader loads and caches entity sprites. Art is looked up on
// disk under dir; a missing or undecodable file yields a flat-color
// placeholder sized for the requesting entity, so the game runs with
// no art installed at all.
type SpriteLoader struct {
	dir   string
	cache map[string]*ebiten.Image
}

func NewSpriteLoader(dir string) *SpriteLoader {
	return &SpriteLoader{
		dir:   dir,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the sprite for key ("player/idle", "sentry", ...). The
// placeholder fallback is cached under the same key so repeated lookups
// stay cheap.
func (l *SpriteLoader) Load(key string, w, h int) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	img := l.fromDisk(key)
	if img == nil {
		img = placeholder(key, w, h)
	}
	l.cache[key] = img
	return img
}

func (l *SpriteLoader) fromDisk(key string) *ebiten.Image {
	if l.dir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(l.dir, key+".png"))
	if err != nil {
		return nil
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		config.Logger().Warn("undecodable sprite, using placeholder", "key", key, "err", err)
		return nil
	}
	return ebiten.NewImageFromImage(decoded)
}

// placeholder builds a bordered flat-color rectangle. The fill color is
// derived from the key so distinct entities stay distinguishable.
func placeholder(key string, w, h int) *ebiten.Image {
	if w <= 0 {
		w = config.C.TileSize
	}
	if h <= 0 {
		h = config.C.TileSize
	}

	hash := fnv.New32a()
	hash.Write([]byte(key))
	sum := hash.Sum32()
	fill := color.RGBA{
		R: uint8(96 + sum%160),
		G: uint8(96 + (sum>>8)%160),
		B: uint8(96 + (sum>>16)%160),
		A: 255,
	}

	img := ebiten.NewImage(w, h)
	img.Fill(config.Magenta)
	inner := ebiten.NewImage(max(w-2, 1), max(h-2, 1))
	inner.Fill(fill)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(1, 1)
	img.DrawImage(inner, op)
	return img
}
