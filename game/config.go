package game

import "time"

// Config holds shell configuration: window, assets, audio and diagnostics
type Config struct {
	// ScreenWidth and ScreenHeight are the window size in pixels
	ScreenWidth  int
	ScreenHeight int

	Title string

	// HighScorePath is the JSON file the high-score table is kept in
	HighScorePath string

	// SpriteDir is searched for <name>_<direction>.svg or .png sprites
	SpriteDir string

	// Volume is the linear playback volume, 0 to 1
	Volume float64
	Mute   bool

	// Debug shows the debug overlay from the start
	Debug bool

	// Profile enables slow-tick CPU profiling into ProfileDir
	Profile        bool
	ProfileDir     string
	ProfileBudget  time.Duration
	ProfileLength  time.Duration
	ProfileBackoff time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		Title:          "Library Defender",
		HighScorePath:  "highscores.json",
		SpriteDir:      "assets",
		Volume:         0.5,
		ProfileDir:     "profiles",
		ProfileBudget:  2 * time.Second / 60,
		ProfileLength:  5 * time.Second,
		ProfileBackoff: 10 * time.Second,
	}
}
