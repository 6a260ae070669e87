package sim

import (
	"math"
	"time"
)

// EntityID identifies an entity within one simulation. IDs are never reused
// inside a session so a stale ID can be detected instead of hitting a newer entity.
type EntityID uint64

// InvalidEntityID is never assigned
const InvalidEntityID EntityID = 0

// Vec is a 2D point or vector
type Vec struct {
	X, Y float64
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points
func Dist(a, b Vec) float64 { return a.Sub(b).Len() }

// Direction is the facing of the player, used for sprites and keyboard throws
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// String returns the sprite-name form of a direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "right"
	}
}

// Unit returns the unit vector of a direction
func (d Direction) Unit() Vec {
	switch d {
	case DirLeft:
		return Vec{-1, 0}
	case DirUp:
		return Vec{0, -1}
	case DirDown:
		return Vec{0, 1}
	default:
		return Vec{1, 0}
	}
}

// Player is the librarian. Pos is the top-left corner of its box.
type Player struct {
	Pos           Vec
	Width, Height float64

	// Speed is the current per-tick speed; BaseSpeed is restored when the boost lapses
	Speed     float64
	BaseSpeed float64

	Facing    Direction
	AnimPhase int
	Moving    bool

	Character Character
}

// NewPlayer creates a player for a character at the starting position
func NewPlayer(cfg Config, character Character) *Player {
	cc := GetCharacterConfig(character)
	return &Player{
		Pos:       Vec{50, cfg.Height / 2},
		Width:     40,
		Height:    60,
		Speed:     cc.Speed,
		BaseSpeed: cc.Speed,
		Facing:    DirRight,
		Character: character,
	}
}

// Enemy is a noisy monster. Pos is its center.
type Enemy struct {
	ID            EntityID
	Type          EnemyType
	Pos           Vec
	Width, Height float64
	Health        int
	MaxHealth     int
	Speed         float64
	NoiseValue    int

	// ShieldHealth absorbs damage before Health (shielded_knight)
	ShieldHealth int

	// TeleportTimer and ExplosionTimer count down in ticks
	TeleportTimer  int
	ExplosionTimer int

	// Target is the cached pursuit point, refreshed every few ticks
	Target Vec

	// Exploded marks a bomb whose timer ran out
	Exploded bool

	dead bool
}

// Alive reports whether the enemy is still in play
func (e *Enemy) Alive() bool {
	return !e.dead && e.Health > 0
}

// Book is a thrown projectile. Pos is the top-left of its box; the velocity
// is fixed when the book is created.
type Book struct {
	ID            EntityID
	Type          BookType
	Pos           Vec
	Vel           Vec
	Width, Height float64
	Damage        int
	Mega          bool

	Genre  Genre
	Author string

	spent bool
}

// NewBook creates a book aimed from origin towards target.
// A target equal to the origin leaves the book motionless.
func NewBook(id EntityID, bt BookType, origin, target Vec, mega bool) *Book {
	bc := GetBookConfig(bt)
	speed, w, h := bc.Speed, bc.Width, bc.Height
	if mega {
		speed, w, h = MegaBookSpeed, MegaBookWidth, MegaBookHeight
	}

	b := &Book{
		ID:     id,
		Type:   bt,
		Pos:    origin,
		Width:  w,
		Height: h,
		Damage: bc.Damage,
		Mega:   mega,
	}

	d := target.Sub(origin)
	if dist := d.Len(); dist > 0 {
		b.Vel = d.Scale(speed / dist)
	}
	return b
}

// PowerUp drifts across the play area until picked up. Pos is its center.
type PowerUp struct {
	ID            EntityID
	Type          PowerUpType
	Pos           Vec
	Width, Height float64
	Speed         float64

	taken bool
}

// Particle is a cosmetic death-burst fragment
type Particle struct {
	Pos     Vec
	Vel     Vec
	Life    int
	MaxLife int
	Size    float64
	Color   RGB
}

// RGB is a display color carried by the simulation for the renderer
type RGB struct {
	R, G, B uint8
}

// CurrentSize returns the particle size shrunk by remaining life
func (p *Particle) CurrentSize() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Size * float64(p.Life) / float64(p.MaxLife)
}

// Message is a transient on-screen notice
type Message struct {
	Text  string
	Until time.Duration
}
