package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarydefender/sim"
)

func TestParseFlags(t *testing.T) {
	c, err := parseChapter("endless")
	require.NoError(t, err)
	assert.Equal(t, sim.ChapterEndless, c)

	c, err = parseChapter("The Stacks")
	require.NoError(t, err)
	assert.Equal(t, sim.ChapterStacks, c)

	_, err = parseChapter("")
	assert.Error(t, err)

	ch, err := parseCharacter("runner")
	require.NoError(t, err)
	assert.Equal(t, sim.CharacterPageRunner, ch)

	d, err := parseDifficulty("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, sim.DifficultyExpert, d)

	_, err = parseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestRunReportsEveryGame(t *testing.T) {
	var out bytes.Buffer
	opts := options{
		chapter:    sim.ChapterReadingRoom,
		character:  sim.CharacterLibrarian,
		difficulty: sim.DifficultyNormal,
		seed:       7,
		limit:      5 * time.Second,
		runs:       2,
	}

	require.NoError(t, run(&out, opts, zerolog.Nop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "run 1: score"))
	assert.True(t, strings.HasPrefix(lines[1], "run 2: score"))
	assert.Contains(t, lines[2], "Librarian on The Reading Room")
	assert.Contains(t, lines[2], "over 2 runs")
}
