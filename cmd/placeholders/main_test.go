package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarydefender/sim"
)

func TestGenerateWritesEverySprite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")

	written, err := generate(dir)
	require.NoError(t, err)

	want := int(sim.CharacterCount)*4 + int(sim.EnemyTypeCount) + len(sim.AllPowerUps())
	assert.Len(t, written, want)
	assert.FileExists(t, filepath.Join(dir, "librarian_left.png"))
	assert.FileExists(t, filepath.Join(dir, "exploding_bomb.png"))
	assert.FileExists(t, filepath.Join(dir, "magnet.png"))

	f, err := os.Open(filepath.Join(dir, "runner_up.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, size, img.Bounds().Dx())
}

func TestPlaceholderFacingMarker(t *testing.T) {
	body := color.RGBA{10, 20, 30, 255}
	img := placeholder(body, sim.DirLeft.Unit(), false)

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(5, size/2))
	assert.Equal(t, body, img.RGBAAt(size-5, size/2))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
}

func TestRoundPlaceholderLeavesCornersClear(t *testing.T) {
	img := placeholder(color.RGBA{200, 0, 0, 255}, sim.Vec{}, true)
	assert.Zero(t, img.RGBAAt(1, 1).A)
	assert.Equal(t, uint8(200), img.RGBAAt(size/2, size/2).R)
}
