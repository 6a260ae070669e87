package sim

import (
	"cmp"
	"slices"

	"github.com/rs/zerolog"
)

// MaxHighScores is the size of the high-score table
const MaxHighScores = 10

// ScoreStore persists the high-score table
type ScoreStore interface {
	Load() ([]int, error)
	Save(scores []int) error
}

// HighScores is the in-memory table, kept sorted in descending order.
// Store failures are logged and otherwise ignored.
type HighScores struct {
	scores []int
	store  ScoreStore
	log    zerolog.Logger
}

// LoadHighScores reads the table from store. A nil store keeps scores in memory only.
func LoadHighScores(store ScoreStore, log zerolog.Logger) *HighScores {
	h := &HighScores{store: store, log: log}
	if store == nil {
		return h
	}
	scores, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("high scores unavailable, starting empty")
		return h
	}
	h.scores = NormalizeScores(scores)
	return h
}

// NormalizeScores returns a copy sorted descending and truncated to MaxHighScores
func NormalizeScores(scores []int) []int {
	out := slices.Clone(scores)
	slices.SortFunc(out, func(a, b int) int { return cmp.Compare(b, a) })
	if len(out) > MaxHighScores {
		out = out[:MaxHighScores]
	}
	return out
}

// Submit records a score and persists the table. It returns the 1-based
// rank, or 0 if the score did not make the table.
func (h *HighScores) Submit(score int) int {
	h.scores = NormalizeScores(append(h.scores, score))

	rank := 0
	for i, s := range h.scores {
		if s == score {
			rank = i + 1
			break
		}
	}

	if h.store != nil {
		if err := h.store.Save(h.scores); err != nil {
			h.log.Warn().Err(err).Msg("failed to save high scores")
		}
	}
	return rank
}

// Scores returns a copy of the table
func (h *HighScores) Scores() []int {
	return slices.Clone(h.scores)
}

// Best returns the top score, zero when the table is empty
func (h *HighScores) Best() int {
	if len(h.scores) == 0 {
		return 0
	}
	return h.scores[0]
}
