package game

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// spriteSize is the raster size SVG sprites are rendered at
const spriteSize = 64

// Sprites holds the images found in the sprite directory, keyed by file name
// without extension. Names follow <character>_<direction>, for example
// librarian_left, or the enemy type name.
type Sprites struct {
	images map[string]*ebiten.Image
}

// LoadSprites reads every .svg and .png in dir. A missing dir yields an
// empty provider; unreadable files are logged and skipped.
func LoadSprites(dir string, log zerolog.Logger) *Sprites {
	s := &Sprites{images: make(map[string]*ebiten.Image)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Info().Str("dir", dir).Msg("no sprite directory, drawing shapes")
		return s
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		var img *ebiten.Image
		switch ext {
		case ".svg":
			img, err = loadSVG(path)
		case ".png":
			img, _, err = ebitenutil.NewImageFromFile(path)
		default:
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping sprite")
			continue
		}
		// svg wins when both exist
		if _, ok := s.images[name]; ok && ext == ".png" {
			continue
		}
		s.images[name] = img
	}

	log.Debug().Int("count", len(s.images)).Str("dir", dir).Msg("sprites loaded")
	return s
}

func loadSVG(path string) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read svg: %w", err)
	}
	img, err := svgToImage(data, spriteSize, spriteSize)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// svgToImage converts SVG data to an RGBA image
func svgToImage(svgData []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// SpriteName returns the lookup key for a character sprite facing dir
func SpriteName(character, dir string) string {
	return character + "_" + dir
}

// Has reports whether a sprite exists for a character facing dir
func (s *Sprites) Has(character, dir string) bool {
	_, ok := s.images[SpriteName(character, dir)]
	return ok
}

// Get returns the named sprite
func (s *Sprites) Get(name string) (*ebiten.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

// Len is the number of loaded sprites
func (s *Sprites) Len() int {
	return len(s.images)
}
