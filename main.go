package main

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"librarydefender/game"
	"librarydefender/sim"
	"librarydefender/storage"
)

// env returns the LIBDEF_ prefixed environment value or def
func env(name, def string) string {
	if v, ok := os.LookupEnv("LIBDEF_" + name); ok {
		return v
	}
	return def
}

func envBool(name string, def bool) bool {
	if b, err := strconv.ParseBool(env(name, "")); err == nil {
		return b
	}
	return def
}

func envFloat(name string, def float64) float64 {
	if f, err := strconv.ParseFloat(env(name, ""), 64); err == nil {
		return f
	}
	return def
}

func main() {
	config := game.DefaultConfig()
	simConfig := sim.DefaultConfig()

	highScores := flag.String("highscores", env("HIGHSCORES", config.HighScorePath), "high score file (or set LIBDEF_HIGHSCORES)")
	sprites := flag.String("sprites", env("SPRITES", config.SpriteDir), "sprite directory (or set LIBDEF_SPRITES)")
	volume := flag.Float64("volume", envFloat("VOLUME", config.Volume), "sound volume 0..1 (or set LIBDEF_VOLUME)")
	mute := flag.Bool("mute", envBool("MUTE", config.Mute), "start muted (or set LIBDEF_MUTE)")
	debug := flag.Bool("debug", envBool("DEBUG", config.Debug), "show the debug overlay (or set LIBDEF_DEBUG)")
	profile := flag.Bool("profile", envBool("PROFILE", config.Profile), "capture CPU profiles on slow ticks (or set LIBDEF_PROFILE)")
	logLevel := flag.String("log-level", env("LOG_LEVEL", "info"), "log level (or set LIBDEF_LOG_LEVEL)")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(level)
	} else {
		log.Warn().Str("level", *logLevel).Msg("unknown log level, using info")
		log = log.Level(zerolog.InfoLevel)
	}

	config.HighScorePath = *highScores
	config.SpriteDir = *sprites
	config.Volume = max(0, min(1, *volume))
	config.Mute = *mute
	config.Debug = *debug
	config.Profile = *profile
	simConfig.Seed = *seed
	simConfig.Width = float64(config.ScreenWidth)
	simConfig.Height = float64(config.ScreenHeight)

	scores := sim.LoadHighScores(storage.NewFileStore(config.HighScorePath), log)
	audio := game.NewAudio(config.Volume, config.Mute, log)
	bindings := game.DefaultBindings()

	session := sim.NewSession(simConfig, scores,
		sim.WithSessionLogger(log),
		sim.WithSessionSounds(audio),
		sim.WithSettingsItems(bindings.Labels()),
	)
	g := game.NewGame(config, session, bindings, game.LoadSprites(config.SpriteDir, log), audio, log)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	log.Info().Int("best", scores.Best()).Str("highscores", config.HighScorePath).Msg("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
