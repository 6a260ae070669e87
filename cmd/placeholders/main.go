package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"librarydefender/game"
	"librarydefender/sim"
)

const size = 64

// placeholder draws a filled body with a dark outline and, when facing is
// set, a light marker on the facing side
func placeholder(clr color.RGBA, facing sim.Vec, round bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dark := color.RGBA{0, 0, 0, 255}
	light := color.RGBA{255, 255, 255, 255}
	c := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			inside := true
			edge := x == 0 || y == 0 || x == size-1 || y == size-1
			if round {
				d := dx*dx + dy*dy
				inside = d <= c*c
				edge = inside && d >= (c-2)*(c-2)
			}
			switch {
			case !inside:
				continue
			case edge:
				img.Set(x, y, dark)
			case facing != (sim.Vec{}) && dx*facing.X+dy*facing.Y > c*0.55:
				img.Set(x, y, light)
			default:
				img.Set(x, y, clr)
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func rgba(c sim.RGB) color.RGBA { return color.RGBA{c.R, c.G, c.B, 255} }

// generate writes one sprite per character direction, enemy type and power-up
func generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	emit := func(name string, img image.Image) error {
		path := filepath.Join(dir, name+".png")
		if err := writePNG(path, img); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	for c := sim.Character(0); c < sim.CharacterCount; c++ {
		cc := sim.GetCharacterConfig(c)
		for _, d := range []sim.Direction{sim.DirRight, sim.DirLeft, sim.DirUp, sim.DirDown} {
			if err := emit(game.SpriteName(cc.SpriteName, d.String()), placeholder(rgba(cc.Color), d.Unit(), false)); err != nil {
				return written, err
			}
		}
	}
	for t := sim.EnemyType(0); t < sim.EnemyTypeCount; t++ {
		tc := sim.GetEnemyTypeConfig(t)
		if err := emit(tc.Name, placeholder(rgba(tc.Color), sim.Vec{}, true)); err != nil {
			return written, err
		}
	}
	for _, p := range sim.AllPowerUps() {
		pc := sim.GetPowerUpConfig(p)
		if err := emit(pc.Name, placeholder(rgba(pc.Color), sim.Vec{}, true)); err != nil {
			return written, err
		}
	}
	return written, nil
}

func main() {
	dir := flag.String("out", game.DefaultConfig().SpriteDir, "output directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	written, err := generate(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("placeholder generation failed")
	}
	log.Info().Int("count", len(written)).Str("dir", *dir).Msg("placeholders written")
}
