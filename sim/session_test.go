package sim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	opts = append([]SessionOption{
		WithSimOptions(WithRand(newScriptedRand())),
		WithSettingsItems([]string{"Throw", "Shush"}),
	}, opts...)
	return NewSession(DefaultConfig(), nil, opts...)
}

func number(n int) Event { return Event{Action: ActionNumber, Number: n} }

func TestSessionQuickPlayFlow(t *testing.T) {
	s := newTestSession(t)
	require.Equal(t, StateMenu, s.State)

	s.HandleEvent(number(1))
	assert.Equal(t, StateCharacterSelect, s.State)
	assert.False(t, s.Story)

	s.HandleEvent(number(3))
	assert.Equal(t, StateDifficultySelect, s.State)
	assert.Equal(t, CharacterArchivist, s.Character)

	s.HandleEvent(number(4))
	require.Equal(t, StatePlaying, s.State)
	require.NotNil(t, s.Sim)
	assert.Equal(t, ChapterEndless, s.Sim.Chapter)
	assert.Equal(t, DifficultyExpert, s.Sim.Config().Difficulty)
	assert.Equal(t, CharacterArchivist, s.Sim.Player.Character)
}

func TestSessionStoryFlow(t *testing.T) {
	s := newTestSession(t)

	s.HandleEvent(number(2))
	require.Equal(t, StateChapterSelect, s.State)

	s.HandleEvent(number(2))
	assert.Equal(t, StateCharacterSelect, s.State)
	assert.Equal(t, ChapterStacks, s.Chapter)

	// back from character select returns to the chapter list in story mode
	s.HandleEvent(Event{Action: ActionBack})
	assert.Equal(t, StateChapterSelect, s.State)

	s.HandleEvent(number(1))
	s.HandleEvent(number(1))
	s.HandleEvent(number(2))
	require.Equal(t, StatePlaying, s.State)
	assert.Equal(t, ChapterReadingRoom, s.Sim.Chapter)
	assert.True(t, s.Sim.Rules().NoiseLoss)
}

func TestSessionCursorNavigation(t *testing.T) {
	sounds := &recordedSounds{}
	s := newTestSession(t, WithSessionSounds(sounds))

	s.HandleEvent(Event{Action: ActionUp})
	assert.Equal(t, len(mainMenuLabels)-1, s.Cursor)
	s.HandleEvent(Event{Action: ActionDown})
	s.HandleEvent(Event{Action: ActionDown})
	assert.Equal(t, 1, s.Cursor)
	assert.Contains(t, sounds.names, SoundMenuNavigate)

	s.HandleEvent(Event{Action: ActionConfirm})
	assert.Equal(t, StateChapterSelect, s.State)
	assert.Zero(t, s.Cursor)
}

func TestSessionClickSelectsItem(t *testing.T) {
	s := newTestSession(t)
	items := s.Items()
	require.Len(t, items, 4)

	s.HandleEvent(Event{Action: ActionClick, Pos: Vec{5, 5}})
	assert.Equal(t, StateMenu, s.State)

	settings := items[MenuSettings].Rect
	s.HandleEvent(Event{Action: ActionClick, Pos: Vec{settings.X + 1, settings.Y + 1}})
	assert.Equal(t, StateSettings, s.State)
}

func TestSessionInvalidEventsAreIgnored(t *testing.T) {
	s := newTestSession(t)

	s.HandleEvent(number(9))
	s.HandleEvent(number(0))
	s.HandleEvent(Event{Action: ActionRestart})
	s.HandleEvent(Event{Action: ActionBack})
	s.HandleEvent(Event{Action: ActionNone})

	assert.Equal(t, StateMenu, s.State)
	assert.Nil(t, s.Sim)
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(t)
	s.HandleEvent(number(4))
	assert.True(t, s.Quit)
}

func startQuickPlay(t *testing.T, s *Session) {
	t.Helper()
	s.HandleEvent(number(1))
	s.HandleEvent(number(1))
	s.HandleEvent(number(2))
	require.Equal(t, StatePlaying, s.State)
}

func TestSessionContactGameOverRecordsScore(t *testing.T) {
	s := newTestSession(t)
	startQuickPlay(t, s)

	s.Sim.Score = 120
	e := placeEnemy(s.Sim, EnemyStudent, s.Sim.Player.Pos.Add(Vec{10, 10}))
	e.Speed = 0

	s.Update(frame, Input{})

	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, []int{120}, s.Scores.Scores())
	assert.Equal(t, 1, s.LastRank)

	// the finished run does not tick again
	s.Update(frame, Input{})
	assert.Equal(t, []int{120}, s.Scores.Scores())
}

func TestSessionRestartAndMenu(t *testing.T) {
	s := newTestSession(t)
	startQuickPlay(t, s)
	sim := s.Sim
	s.Sim.Score = 50
	s.Sim.endGame(s.Clock(), "test")
	require.Equal(t, StateGameOver, s.State)

	s.HandleEvent(Event{Action: ActionRestart})
	assert.Equal(t, StatePlaying, s.State)
	assert.Same(t, sim, s.Sim)
	assert.Zero(t, s.Sim.Score)
	assert.False(t, s.Sim.GameOver)

	s.Sim.endGame(s.Clock(), "test")
	s.HandleEvent(Event{Action: ActionBack})
	assert.Equal(t, StateMenu, s.State)
	assert.Nil(t, s.Sim)
}

func TestSessionSettingsPausesPlay(t *testing.T) {
	s := newTestSession(t)
	startQuickPlay(t, s)

	s.Update(frame, Input{})
	ticks := s.Sim.Ticks
	clock := s.Clock()

	s.HandleEvent(Event{Action: ActionBack})
	require.Equal(t, StateSettings, s.State)

	s.Update(time.Second, Input{})
	assert.Equal(t, ticks, s.Sim.Ticks)
	assert.Equal(t, clock, s.Clock())

	s.HandleEvent(Event{Action: ActionBack})
	assert.Equal(t, StatePlaying, s.State)
	s.Update(frame, Input{})
	assert.Equal(t, ticks+1, s.Sim.Ticks)
}

func TestSessionRebindCapture(t *testing.T) {
	s := newTestSession(t)
	s.HandleEvent(number(3))
	require.Equal(t, StateSettings, s.State)
	assert.Equal(t, NoRebind, s.PendingRebind)

	labels := s.Items()
	require.Len(t, labels, 3)
	assert.Equal(t, "Back", labels[2].Label)

	s.HandleEvent(number(2))
	assert.Equal(t, 1, s.PendingRebind)
	s.FinishRebind()
	assert.Equal(t, NoRebind, s.PendingRebind)

	// back cancels a pending capture before leaving
	s.HandleEvent(number(1))
	s.HandleEvent(Event{Action: ActionBack})
	assert.Equal(t, StateSettings, s.State)
	assert.Equal(t, NoRebind, s.PendingRebind)

	s.HandleEvent(number(3))
	assert.Equal(t, StateMenu, s.State)
}

func TestSessionNumbersIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(t)
	startQuickPlay(t, s)

	s.HandleEvent(number(1))
	s.HandleEvent(Event{Action: ActionConfirm})
	s.HandleEvent(Event{Action: ActionRestart})

	assert.Equal(t, StatePlaying, s.State)
}

type failingStore struct {
	saves int
}

func (f *failingStore) Load() ([]int, error) { return nil, errors.New("disk on fire") }

func (f *failingStore) Save([]int) error {
	f.saves++
	return errors.New("disk on fire")
}

type memoryStore struct {
	scores []int
}

func (m *memoryStore) Load() ([]int, error) { return m.scores, nil }

func (m *memoryStore) Save(scores []int) error {
	m.scores = append([]int(nil), scores...)
	return nil
}

func TestHighScoresSortedAndCapped(t *testing.T) {
	store := &memoryStore{scores: []int{5, 50, 20}}
	h := LoadHighScores(store, zerolog.Nop())
	assert.Equal(t, []int{50, 20, 5}, h.Scores())

	for i := 1; i <= 10; i++ {
		h.Submit(i * 100)
	}

	scores := h.Scores()
	assert.Len(t, scores, MaxHighScores)
	assert.Equal(t, 1000, h.Best())
	assert.Equal(t, 100, scores[len(scores)-1])
	assert.Equal(t, scores, store.scores)

	assert.Equal(t, 0, h.Submit(1))
	assert.Equal(t, 1, h.Submit(5000))
}

func TestNormalizeScoresExtremeValues(t *testing.T) {
	got := NormalizeScores([]int{math.MinInt, 7, math.MaxInt, -3})
	assert.Equal(t, []int{math.MaxInt, 7, -3, math.MinInt}, got)
}

func TestHighScoresSwallowStoreErrors(t *testing.T) {
	store := &failingStore{}
	h := LoadHighScores(store, zerolog.Nop())
	assert.Empty(t, h.Scores())

	assert.Equal(t, 1, h.Submit(10))
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []int{10}, h.Scores())
}
