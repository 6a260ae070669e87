package sim

import "time"

// Difficulty scales enemy spawn delay and the chance of extra enemies per trigger
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyExpert
	DifficultyCount
)

// DifficultyConfig holds the tuning for one difficulty level
type DifficultyConfig struct {
	Name string

	// DelayFactor multiplies the enemy spawn delay
	DelayFactor float64

	// ExtraSpawnChance is the probability of each of the two extra enemies per trigger
	ExtraSpawnChance float64
}

// GetDifficultyConfig returns configuration for a difficulty level
func GetDifficultyConfig(d Difficulty) DifficultyConfig {
	switch d {
	case DifficultyEasy:
		return DifficultyConfig{Name: "Easy", DelayFactor: 0.7, ExtraSpawnChance: 0.05}
	case DifficultyNormal:
		return DifficultyConfig{Name: "Normal", DelayFactor: 1.0, ExtraSpawnChance: 0.15}
	case DifficultyHard:
		return DifficultyConfig{Name: "Hard", DelayFactor: 1.4, ExtraSpawnChance: 0.30}
	case DifficultyExpert:
		return DifficultyConfig{Name: "Expert", DelayFactor: 1.8, ExtraSpawnChance: 0.45}
	default:
		return GetDifficultyConfig(DifficultyNormal)
	}
}

// Config holds simulation constants. Distances are in play-area units,
// per-tick speeds assume a fixed 60 Hz update.
type Config struct {
	// Play area size
	Width, Height float64

	// EnemySpawnDelay is the base delay between enemy spawn triggers
	EnemySpawnDelay time.Duration

	// DecayWindow is the elapsed time over which spawn delay shrinks to MinDecayFactor
	DecayWindow    time.Duration
	MinDecayFactor float64

	// PowerUpSpawnDelay is the fixed delay between power-up spawns
	PowerUpSpawnDelay time.Duration

	// Player action cooldowns
	ShushCooldown    time.Duration
	ShushVisual      time.Duration
	ShushRange       float64
	ShushDamage      int
	SilenceAuraRange float64

	// Combat geometry
	HitBox          float64 // |dx| and |dy| below this count as a book or contact hit
	PickupBoxX      float64
	PickupBoxY      float64
	SplashRadius    float64
	MegaDamage      int
	BombRadius      float64
	BombDamage      int
	MagnetRadius    float64
	MagnetPull      float64
	FantasyRadius   float64
	FantasySlow     float64
	HorrorBoost     float64
	ScienceRadius   float64
	GenreProcChance float64

	// Noise meter
	MaxNoise    int
	EscapeLeftX float64 // enemies left of this escape in noise-meter rules
	EscapeSlack float64 // distance outside the area before an enemy counts as gone in contact rules

	// Enemy AI
	TargetRefreshTicks int
	TeleportTicks      int
	BombTicks          int
	TeleportDistance   float64

	// Waves
	WaveBaseCount  int
	WaveMaxCount   int
	WaveBonus      int
	MessageTimeout time.Duration

	// Particles
	ParticleCount int
	ParticleLife  int

	// MaxSpawnAttempts bounds the randomized search for a free spawn cell
	MaxSpawnAttempts int

	Difficulty Difficulty

	// Seed for the default random source; zero picks a time-based seed
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:              800,
		Height:             600,
		EnemySpawnDelay:    2000 * time.Millisecond,
		DecayWindow:        120 * time.Second,
		MinDecayFactor:     0.5,
		PowerUpSpawnDelay:  10 * time.Second,
		ShushCooldown:      1000 * time.Millisecond,
		ShushVisual:        500 * time.Millisecond,
		ShushRange:         100,
		ShushDamage:        2,
		SilenceAuraRange:   60,
		HitBox:             30,
		PickupBoxX:         40,
		PickupBoxY:         50,
		SplashRadius:       80,
		MegaDamage:         1,
		BombRadius:         80,
		BombDamage:         2,
		MagnetRadius:       100,
		MagnetPull:         4,
		FantasyRadius:      60,
		FantasySlow:        0.5,
		HorrorBoost:        1.5,
		ScienceRadius:      80,
		GenreProcChance:    0.3,
		MaxNoise:           100,
		EscapeLeftX:        -50,
		EscapeSlack:        100,
		TargetRefreshTicks: 5,
		TeleportTicks:      120,
		BombTicks:          180,
		TeleportDistance:   120,
		WaveBaseCount:      3,
		WaveMaxCount:       8,
		WaveBonus:          100,
		MessageTimeout:     2000 * time.Millisecond,
		ParticleCount:      5,
		ParticleLife:       30,
		MaxSpawnAttempts:   50,
		Difficulty:         DifficultyNormal,
	}
}

// Rules selects the game-over model and the optional systems of a chapter
type Rules struct {
	// ContactDeath ends the game when an enemy touches an unshielded player
	ContactDeath bool

	// NoiseLoss ends the game when the noise meter fills
	NoiseLoss bool

	// Waves enables the wave-clear bonus
	Waves bool

	// Genres tags thrown books with a genre and author
	Genres bool

	// PowerUps is the pool the spawner draws from
	PowerUps []PowerUpType

	// MaxTier caps the enemy type pool (1..3)
	MaxTier int

	// Maze is the tile layout; nil means an open field
	Maze []string
}

// MeterRules returns the noise-meter game: escapes fill the meter
func MeterRules() Rules {
	return Rules{
		NoiseLoss: true,
		PowerUps:  []PowerUpType{PowerUpCoffee, PowerUpMegaBook},
		MaxTier:   1,
	}
}

// ContactRules returns the contact game: touching an enemy ends the run
func ContactRules() Rules {
	return Rules{
		ContactDeath: true,
		Waves:        true,
		Genres:       true,
		PowerUps:     AllPowerUps(),
		MaxTier:      3,
	}
}
