package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarydefender/sim"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscores.json")
	store := NewFileStore(path)

	scores, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, scores)

	require.NoError(t, store.Save([]int{300, 200, 100}))

	scores, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{300, 200, 100}, scores)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[300,200,100]", string(data))
}

func TestFileStoreEmptyTable(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "highscores.json"))
	require.NoError(t, store.Save(nil))

	scores, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStoreBacksHighScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte("oops"), 0644))

	// a corrupt file starts an empty table and is replaced on the next save
	h := sim.LoadHighScores(NewFileStore(path), zerolog.Nop())
	assert.Empty(t, h.Scores())

	h.Submit(40)
	h.Submit(70)

	reloaded := sim.LoadHighScores(NewFileStore(path), zerolog.Nop())
	assert.Equal(t, []int{70, 40}, reloaded.Scores())
}
