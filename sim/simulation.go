package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Simulation is one play session. It is driven by Tick and never reads the
// wall clock: every time-based rule uses the now passed in by the caller.
type Simulation struct {
	cfg    Config
	rules  Rules
	rng    Rand
	base   zerolog.Logger
	log    zerolog.Logger
	sounds SoundPlayer

	onGameOver func(score int)

	SessionID string
	Chapter   Chapter

	Player    *Player
	Enemies   []*Enemy
	Books     []*Book
	PowerUps  []*PowerUp
	Particles []*Particle
	Effects   Effects
	Maze      *Maze

	Score int
	Noise int
	Wave  int
	Kills int

	// Reading progression
	ReadingLevel int
	Genres       map[Genre]struct{}
	Authors      map[string]struct{}

	Messages []Message
	BookType BookType

	GameOver bool
	Cause    string

	Ticks uint64

	// now is the time of the tick in progress
	now time.Duration

	startedAt        time.Duration
	lastEnemySpawn   time.Duration
	lastPowerUpSpawn time.Duration
	lastThrow        time.Duration
	lastShush        time.Duration
	thrown           bool
	shushed          bool

	// waveArmed is set once the first enemy spawns so an empty opening
	// field does not count as a cleared wave
	waveArmed bool

	nextID EntityID
}

// Option configures a Simulation
type Option func(*Simulation)

// WithRand replaces the random source
func WithRand(rng Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithLogger sets the base logger; the session id is added as a field
func WithLogger(log zerolog.Logger) Option {
	return func(s *Simulation) { s.base = log }
}

// WithSounds sets the sound cue sink
func WithSounds(p SoundPlayer) Option {
	return func(s *Simulation) {
		if p != nil {
			s.sounds = p
		}
	}
}

// WithGameOver registers a callback run once when the session ends
func WithGameOver(fn func(score int)) Option {
	return func(s *Simulation) { s.onGameOver = fn }
}

// New creates a simulation for a chapter and character starting at now
func New(cfg Config, chapter Chapter, character Character, now time.Duration, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:     cfg,
		rules:   GetChapterConfig(chapter).Rules,
		base:    zerolog.Nop(),
		sounds:  nopSounds{},
		Chapter: chapter,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(cfg.Seed)
	}
	if s.rules.Maze != nil {
		s.Maze = NewMaze(s.rules.Maze, MazeTileSize)
	}
	s.Reset(character, now)
	return s
}

// Reset restarts the session with a fresh player at now. The maze, rules
// and collaborators are kept.
func (s *Simulation) Reset(character Character, now time.Duration) {
	s.SessionID = uuid.NewString()
	s.log = s.base.With().Str("session", s.SessionID).Logger()

	s.Player = NewPlayer(s.cfg, character)
	s.Enemies = nil
	s.Books = nil
	s.PowerUps = nil
	s.Particles = nil
	s.Effects.Reset()
	s.Score = 0
	s.Noise = 0
	s.Wave = 0
	s.Kills = 0
	s.ReadingLevel = 1
	s.Genres = make(map[Genre]struct{})
	s.Authors = make(map[string]struct{})
	s.Messages = nil
	s.BookType = BookPaperback
	s.GameOver = false
	s.Cause = ""
	s.Ticks = 0
	s.startedAt = now
	s.now = now
	s.lastEnemySpawn = now
	s.lastPowerUpSpawn = now
	s.thrown = false
	s.shushed = false
	s.waveArmed = false

	s.log.Info().
		Str("chapter", s.Chapter.String()).
		Str("character", character.String()).
		Str("difficulty", GetDifficultyConfig(s.cfg.Difficulty).Name).
		Msg("session started")
}

// Config returns the simulation constants
func (s *Simulation) Config() Config { return s.cfg }

// Rules returns the active rule set
func (s *Simulation) Rules() Rules { return s.rules }

// Elapsed returns the session time played until now
func (s *Simulation) Elapsed(now time.Duration) time.Duration {
	return now - s.startedAt
}

// Tick advances the simulation by one step at now. Once the game is over
// Tick does nothing.
func (s *Simulation) Tick(now time.Duration, in Input) {
	if s.GameOver {
		return
	}
	s.Ticks++
	s.now = now

	// 1. player input
	s.movePlayer(in)
	if in.CycleBook {
		s.BookType = s.BookType.Next()
		s.sounds.Play(SoundBookCycle)
	}
	if in.Throw {
		s.throw(now, in)
	}

	// 2. advance
	frozen := s.Effects.IsActive(EffectTimeFreeze, now)
	s.advanceEnemies(frozen)
	for _, b := range s.Books {
		b.Pos = b.Pos.Add(b.Vel)
	}
	s.advancePowerUps(now)
	s.advanceParticles()

	// 3. spawn
	s.spawn(now)

	// 4. resolve
	if s.resolve(now, in) {
		return
	}

	// 5. prune
	s.prune(now)

	// 6. status refresh
	if !s.Effects.IsActive(EffectSpeedBoost, now) {
		s.Player.Speed = s.Player.BaseSpeed
	}
}

func (s *Simulation) newID() EntityID {
	s.nextID++
	return s.nextID
}

func (s *Simulation) movePlayer(in Input) {
	p := s.Player
	var dx, dy float64
	if in.MoveX < 0 && p.Pos.X > 0 {
		dx = -p.Speed
	}
	if in.MoveX > 0 && p.Pos.X < s.cfg.Width-p.Width {
		dx = p.Speed
	}
	if in.MoveY < 0 && p.Pos.Y > 0 {
		dy = -p.Speed
	}
	if in.MoveY > 0 && p.Pos.Y < s.cfg.Height-p.Height {
		dy = p.Speed
	}

	switch {
	case in.MoveX < 0:
		p.Facing = DirLeft
	case in.MoveX > 0:
		p.Facing = DirRight
	case in.MoveY < 0:
		p.Facing = DirUp
	case in.MoveY > 0:
		p.Facing = DirDown
	}

	p.Moving = dx != 0 || dy != 0
	if !p.Moving {
		return
	}
	p.AnimPhase++
	p.Pos = SlideMove(s.Maze, p.Pos, p.Width, p.Height, dx, dy)
}

// ThrowCooldown returns the current book cooldown for the player's character
func (s *Simulation) ThrowCooldown() time.Duration {
	bc := GetBookConfig(s.BookType)
	cc := GetCharacterConfig(s.Player.Character)
	return time.Duration(float64(bc.Cooldown) * cc.ThrowCooldownFactor)
}

// CanThrow reports whether the book cooldown has elapsed at now
func (s *Simulation) CanThrow(now time.Duration) bool {
	// the first throw of a session is always allowed
	if !s.thrown {
		return true
	}
	return now-s.lastThrow > s.ThrowCooldown()
}

// ThrowOrigin is where new books appear: the right edge, vertically centered
func (s *Simulation) ThrowOrigin() Vec {
	p := s.Player
	return Vec{p.Pos.X + p.Width, p.Pos.Y + p.Height/2}
}

func (s *Simulation) throw(now time.Duration, in Input) {
	if !s.CanThrow(now) {
		return
	}
	s.lastThrow = now
	s.thrown = true

	origin := s.ThrowOrigin()
	target := in.Aim
	if !in.HasAim {
		target = origin.Add(s.Player.Facing.Unit().Scale(keyboardThrowReach))
	}
	mega := s.Effects.IsActive(EffectMegaBook, now)

	targets := []Vec{target}
	if s.Effects.IsActive(EffectMultiShot, now) {
		targets = append(targets,
			rotateAround(origin, target, multiShotSpread),
			rotateAround(origin, target, -multiShotSpread))
	}

	for _, t := range targets {
		b := NewBook(s.newID(), s.BookType, origin, t, mega)
		if s.rules.Genres {
			b.Genre, b.Author = rollGenre(s.rng)
		}
		s.Books = append(s.Books, b)
	}
	s.sounds.Play(SoundThrow)
}

func (s *Simulation) advanceParticles() {
	for _, p := range s.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += particleGravity
		p.Life--
	}
}

func (s *Simulation) advancePowerUps(now time.Duration) {
	magnet := s.Effects.IsActive(EffectMagnet, now)
	for _, pu := range s.PowerUps {
		pu.Pos.X -= pu.Speed
		if !magnet {
			continue
		}
		d := s.Player.Pos.Sub(pu.Pos)
		dist := d.Len()
		if dist == 0 || dist >= s.cfg.MagnetRadius {
			continue
		}
		if dist <= s.cfg.MagnetPull {
			pu.Pos = s.Player.Pos
			continue
		}
		pu.Pos = pu.Pos.Add(d.Scale(s.cfg.MagnetPull / dist))
	}
}

// prune drops everything that left play this tick
func (s *Simulation) prune(now time.Duration) {
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive() {
			enemies = append(enemies, e)
		}
	}
	clear(s.Enemies[len(enemies):])
	s.Enemies = enemies

	books := s.Books[:0]
	for _, b := range s.Books {
		if b.spent || s.bookOutOfBounds(b) {
			continue
		}
		books = append(books, b)
	}
	clear(s.Books[len(books):])
	s.Books = books

	powerUps := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		if pu.taken || pu.Pos.X < -powerUpMargin {
			continue
		}
		powerUps = append(powerUps, pu)
	}
	clear(s.PowerUps[len(powerUps):])
	s.PowerUps = powerUps

	particles := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(s.Particles[len(particles):])
	s.Particles = particles

	messages := s.Messages[:0]
	for _, m := range s.Messages {
		if now < m.Until {
			messages = append(messages, m)
		}
	}
	s.Messages = messages
}

func (s *Simulation) bookOutOfBounds(b *Book) bool {
	return b.Pos.X > s.cfg.Width || b.Pos.X < -b.Width ||
		b.Pos.Y > s.cfg.Height || b.Pos.Y < -b.Height
}

// RemoveEnemy takes an enemy out of play without scoring it. It reports
// whether the enemy was still in play; a second call is a no-op.
func (s *Simulation) RemoveEnemy(id EntityID) bool {
	for _, e := range s.Enemies {
		if e.ID == id && !e.dead {
			e.dead = true
			return true
		}
	}
	return false
}

// Enemy returns a live enemy by id
func (s *Simulation) Enemy(id EntityID) (*Enemy, bool) {
	for _, e := range s.Enemies {
		if e.ID == id && e.Alive() {
			return e, true
		}
	}
	return nil, false
}

// ActiveEffects lists the effects active at now, in display order
func (s *Simulation) ActiveEffects(now time.Duration) []Effect {
	var out []Effect
	for e := Effect(0); e < EffectCount; e++ {
		if s.Effects.IsActive(e, now) {
			out = append(out, e)
		}
	}
	return out
}

// ShushVisible reports whether the shush ring is still drawn at now
func (s *Simulation) ShushVisible(now time.Duration) bool {
	return s.shushed && now-s.lastShush < s.cfg.ShushVisual
}

// ShushFade returns the shush ring opacity at now, 1 on activation down to 0
func (s *Simulation) ShushFade(now time.Duration) float64 {
	if !s.ShushVisible(now) || s.cfg.ShushVisual <= 0 {
		return 0
	}
	return 1 - float64(now-s.lastShush)/float64(s.cfg.ShushVisual)
}

// ShushReady reports whether a shush would fire at now
func (s *Simulation) ShushReady(now time.Duration) bool {
	return !s.shushed || now-s.lastShush > s.shushCooldown()
}

func (s *Simulation) shushCooldown() time.Duration {
	if cd := GetCharacterConfig(s.Player.Character).ShushCooldown; cd > 0 {
		return cd
	}
	return s.cfg.ShushCooldown
}

func (s *Simulation) addMessage(now time.Duration, format string, args ...any) {
	s.Messages = append(s.Messages, Message{
		Text:  fmt.Sprintf(format, args...),
		Until: now + s.cfg.MessageTimeout,
	})
}

func (s *Simulation) endGame(now time.Duration, cause string) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Cause = cause
	s.sounds.Play(SoundGameOver)
	s.log.Info().
		Int("score", s.Score).
		Int("wave", s.Wave).
		Int("kills", s.Kills).
		Dur("elapsed", s.Elapsed(now)).
		Str("cause", cause).
		Msg("game over")
	if s.onGameOver != nil {
		s.onGameOver(s.Score)
	}
}
