package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"librarydefender/sim"
)

// options for one headless run
type options struct {
	chapter    sim.Chapter
	character  sim.Character
	difficulty sim.Difficulty
	seed       int64
	limit      time.Duration
	runs       int
}

// normalize lowercases and drops a leading "the" and spaces: "The Stacks" is "stacks"
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "the ")
	return strings.ReplaceAll(name, " ", "")
}

// parseChapter accepts a chapter name or a prefix of it, e.g. "endless"
func parseChapter(name string) (sim.Chapter, error) {
	want := normalize(name)
	for c := sim.Chapter(0); c < sim.ChapterCount && want != ""; c++ {
		if strings.HasPrefix(normalize(c.String()), want) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown chapter %q", name)
}

func parseCharacter(name string) (sim.Character, error) {
	for c := sim.Character(0); c < sim.CharacterCount; c++ {
		cc := sim.GetCharacterConfig(c)
		if strings.EqualFold(cc.SpriteName, name) || strings.EqualFold(cc.Name, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown character %q", name)
}

func parseDifficulty(name string) (sim.Difficulty, error) {
	for d := sim.Difficulty(0); d < sim.DifficultyCount; d++ {
		if strings.EqualFold(sim.GetDifficultyConfig(d).Name, name) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", name)
}

// run plays opts.runs autopilot games and writes one line per game plus a summary
func run(w io.Writer, opts options, log zerolog.Logger) error {
	p := message.NewPrinter(language.English)
	cfg := sim.DefaultConfig()
	cfg.Difficulty = opts.difficulty

	total, best := 0, 0
	for i := 0; i < opts.runs; i++ {
		s := sim.New(cfg, opts.chapter, opts.character, 0,
			sim.WithRand(sim.NewRand(opts.seed+int64(i))),
			sim.WithLogger(log),
		)
		end := sim.Play(s, sim.NewAutopilot(), 0, time.Second/60, opts.limit)

		outcome := "survived"
		if s.GameOver {
			outcome = s.Cause
		}
		if _, err := p.Fprintf(w, "run %d: score %d, kills %d, wave %d, noise %d, %v (%s)\n",
			i+1, s.Score, s.Kills, s.Wave, s.Noise, end.Truncate(time.Millisecond), outcome); err != nil {
			return err
		}
		total += s.Score
		best = max(best, s.Score)
	}

	_, err := p.Fprintf(w, "%s on %s: best %d, mean %d over %d runs\n",
		sim.GetCharacterConfig(opts.character).Name, opts.chapter, best, total/max(1, opts.runs), opts.runs)
	return err
}

func main() {
	chapter := flag.String("chapter", "endless", "chapter name")
	character := flag.String("character", "librarian", "character name")
	difficulty := flag.String("difficulty", "normal", "difficulty name")
	seed := flag.Int64("seed", 1, "seed of the first run")
	limit := flag.Duration("limit", 2*time.Minute, "session time limit per run")
	runs := flag.Int("runs", 1, "number of runs")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(level)
	}

	opts := options{seed: *seed, limit: *limit, runs: *runs}
	var err error
	if opts.chapter, err = parseChapter(*chapter); err != nil {
		log.Fatal().Err(err).Msg("bad flag")
	}
	if opts.character, err = parseCharacter(*character); err != nil {
		log.Fatal().Err(err).Msg("bad flag")
	}
	if opts.difficulty, err = parseDifficulty(*difficulty); err != nil {
		log.Fatal().Err(err).Msg("bad flag")
	}

	if err := run(os.Stdout, opts, log); err != nil {
		log.Fatal().Err(err).Msg("headless run failed")
	}
}
