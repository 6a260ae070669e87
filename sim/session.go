package sim

import (
	"time"

	"github.com/rs/zerolog"
)

// State is the top-level mode of the game
type State int

const (
	StateMenu State = iota
	StateCharacterSelect
	StateDifficultySelect
	StateChapterSelect
	StatePlaying
	StateGameOver
	StateSettings
)

// String returns a display name for a state
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StateCharacterSelect:
		return "CHARACTER_SELECT"
	case StateDifficultySelect:
		return "DIFFICULTY_SELECT"
	case StateChapterSelect:
		return "CHAPTER_SELECT"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	case StateSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Action is a discrete input event kind
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionRestart
	ActionNumber // Number holds the 1-based item
	ActionClick  // Pos holds the cursor position
)

// Event is one discrete input event routed through the state machine
type Event struct {
	Action Action
	Number int
	Pos    Vec
}

// NoRebind means no binding slot is waiting for a key
const NoRebind = -1

// Session owns the state machine, the selections made in the menus, the
// running simulation and the high-score table. Events that do not apply to
// the current state are ignored.
type Session struct {
	State State

	// Cursor is the highlighted item on menu screens
	Cursor int

	Story      bool
	Chapter    Chapter
	Character  Character
	Difficulty Difficulty

	Sim    *Simulation
	Scores *HighScores

	// LastRank is the high-score rank of the last finished game, 0 if unranked
	LastRank int

	// SettingsItems are the rebindable slot names shown in SETTINGS
	SettingsItems []string

	// PendingRebind is the slot waiting for a key, or NoRebind
	PendingRebind int

	// Quit is set when the player picks Quit from the main menu
	Quit bool

	prior State
	clock time.Duration

	cfg     Config
	log     zerolog.Logger
	sounds  SoundPlayer
	simOpts []Option
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithSessionLogger sets the session logger, also handed to each simulation
func WithSessionLogger(log zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// WithSessionSounds sets the sound sink for menus and simulations
func WithSessionSounds(p SoundPlayer) SessionOption {
	return func(s *Session) {
		if p != nil {
			s.sounds = p
		}
	}
}

// WithSimOptions adds options applied to every simulation the session starts
func WithSimOptions(opts ...Option) SessionOption {
	return func(s *Session) { s.simOpts = append(s.simOpts, opts...) }
}

// WithSettingsItems sets the rebindable slot names listed in SETTINGS
func WithSettingsItems(items []string) SessionOption {
	return func(s *Session) { s.SettingsItems = items }
}

// NewSession creates a session in MENU
func NewSession(cfg Config, scores *HighScores, opts ...SessionOption) *Session {
	s := &Session{
		State:         StateMenu,
		Chapter:       ChapterEndless,
		Difficulty:    cfg.Difficulty,
		Scores:        scores,
		PendingRebind: NoRebind,
		cfg:           cfg,
		log:           zerolog.Nop(),
		sounds:        nopSounds{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Scores == nil {
		s.Scores = LoadHighScores(nil, s.log)
	}
	return s
}

// Clock returns the session clock. It only advances while PLAYING.
func (s *Session) Clock() time.Duration { return s.clock }

// Update advances the session clock by dt and runs one simulation tick
// when PLAYING. Other states are idle.
func (s *Session) Update(dt time.Duration, in Input) {
	if s.State != StatePlaying || s.Sim == nil {
		return
	}
	s.clock += dt
	s.Sim.Tick(s.clock, in)
}

// Items returns the selectable items of the current screen
func (s *Session) Items() []MenuItem {
	return layoutMenu(s.cfg.Width, s.labels())
}

func (s *Session) labels() []string {
	switch s.State {
	case StateMenu:
		return mainMenuLabels
	case StateChapterSelect:
		labels := make([]string, len(StoryChapters))
		for i, c := range StoryChapters {
			labels[i] = c.String()
		}
		return labels
	case StateCharacterSelect:
		labels := make([]string, CharacterCount)
		for c := Character(0); c < CharacterCount; c++ {
			labels[c] = c.String()
		}
		return labels
	case StateDifficultySelect:
		labels := make([]string, DifficultyCount)
		for d := Difficulty(0); d < DifficultyCount; d++ {
			labels[d] = GetDifficultyConfig(d).Name
		}
		return labels
	case StateSettings:
		return append(append([]string(nil), s.SettingsItems...), settingsBackLabel)
	case StateGameOver:
		return gameOverLabels
	default:
		return nil
	}
}

// HandleEvent routes one input event through the state machine
func (s *Session) HandleEvent(ev Event) {
	switch ev.Action {
	case ActionUp:
		s.moveCursor(-1)
	case ActionDown:
		s.moveCursor(1)
	case ActionConfirm:
		if s.State != StatePlaying {
			s.selectItem(s.Cursor)
		}
	case ActionNumber:
		if s.State != StatePlaying {
			s.selectItem(ev.Number - 1)
		}
	case ActionClick:
		if s.State == StatePlaying {
			return
		}
		for i, item := range s.Items() {
			if item.Rect.Contains(ev.Pos) {
				s.selectItem(i)
				return
			}
		}
	case ActionBack:
		s.back()
	case ActionRestart:
		if s.State == StateGameOver {
			s.restart()
		}
	}
}

func (s *Session) moveCursor(delta int) {
	n := len(s.labels())
	if n == 0 {
		return
	}
	s.Cursor = (s.Cursor + delta + n) % n
	s.sounds.Play(SoundMenuNavigate)
}

func (s *Session) enter(state State) {
	if state != s.State {
		s.log.Debug().Stringer("from", s.State).Stringer("to", state).Msg("state change")
	}
	s.State = state
	s.Cursor = 0
}

func (s *Session) selectItem(i int) {
	labels := s.labels()
	if i < 0 || i >= len(labels) {
		return
	}
	s.sounds.Play(SoundMenuSelect)

	switch s.State {
	case StateMenu:
		switch i {
		case MenuQuickPlay:
			s.Story = false
			s.Chapter = ChapterEndless
			s.enter(StateCharacterSelect)
		case MenuStory:
			s.Story = true
			s.enter(StateChapterSelect)
		case MenuSettings:
			s.openSettings()
		case MenuQuit:
			s.Quit = true
		}
	case StateChapterSelect:
		s.Chapter = StoryChapters[i]
		s.enter(StateCharacterSelect)
	case StateCharacterSelect:
		s.Character = Character(i)
		s.enter(StateDifficultySelect)
	case StateDifficultySelect:
		s.Difficulty = Difficulty(i)
		s.start()
	case StateSettings:
		if i < len(s.SettingsItems) {
			s.PendingRebind = i
			return
		}
		s.closeSettings()
	case StateGameOver:
		if i == 0 {
			s.restart()
			return
		}
		s.toMenu()
	}
}

func (s *Session) back() {
	switch s.State {
	case StateChapterSelect:
		s.enter(StateMenu)
	case StateCharacterSelect:
		if s.Story {
			s.enter(StateChapterSelect)
			return
		}
		s.enter(StateMenu)
	case StateDifficultySelect:
		s.enter(StateCharacterSelect)
	case StatePlaying:
		s.openSettings()
	case StateSettings:
		if s.PendingRebind != NoRebind {
			s.PendingRebind = NoRebind
			return
		}
		s.closeSettings()
	case StateGameOver:
		s.toMenu()
	}
}

func (s *Session) openSettings() {
	s.prior = s.State
	s.PendingRebind = NoRebind
	s.enter(StateSettings)
}

func (s *Session) closeSettings() {
	s.PendingRebind = NoRebind
	prior := s.prior
	s.enter(prior)
}

// FinishRebind clears the pending capture once the shell has bound a key
func (s *Session) FinishRebind() {
	if s.PendingRebind == NoRebind {
		return
	}
	s.log.Info().Str("slot", s.SettingsItems[s.PendingRebind]).Msg("binding changed")
	s.PendingRebind = NoRebind
	s.sounds.Play(SoundRebindCapture)
}

// start begins a new simulation from the current selections
func (s *Session) start() {
	cfg := s.cfg
	cfg.Difficulty = s.Difficulty

	opts := []Option{
		WithLogger(s.log),
		WithSounds(s.sounds),
		WithGameOver(s.finish),
	}
	opts = append(opts, s.simOpts...)
	s.Sim = New(cfg, s.Chapter, s.Character, s.clock, opts...)
	s.LastRank = 0
	s.enter(StatePlaying)
}

// restart discards the current run and starts over with the same selections
func (s *Session) restart() {
	if s.Sim == nil {
		s.start()
		return
	}
	s.Sim.Reset(s.Character, s.clock)
	s.LastRank = 0
	s.enter(StatePlaying)
}

func (s *Session) toMenu() {
	s.Sim = nil
	s.enter(StateMenu)
}

// finish is called by the simulation when the game ends
func (s *Session) finish(score int) {
	s.LastRank = s.Scores.Submit(score)
	s.enter(StateGameOver)
}
