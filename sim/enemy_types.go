package sim

// EnemyType defines the closed set of noisy monsters
type EnemyType int

const (
	EnemyStudent EnemyType = iota
	EnemyAnimal
	EnemyGhost
	EnemyChaosLord
	EnemyLiteraryVillain
	EnemyBookWorm
	EnemyNoiseDemon
	EnemyBossMonster
	EnemySwarm
	EnemyTeleportingGhost
	EnemyShieldedKnight
	EnemyExplodingBomb
	EnemyTypeCount // Total number of enemy types
)

// EnemyTypeConfig holds configuration for each enemy type
type EnemyTypeConfig struct {
	Type EnemyType
	Name string

	Health       int
	ShieldHealth int

	// Per-tick speed is drawn uniformly from [SpeedMin, SpeedMax]
	SpeedMin, SpeedMax float64

	// Noise value is drawn uniformly from [NoiseMin, NoiseMax]
	NoiseMin, NoiseMax int

	Size float64

	// Boss-class enemies award the higher kill score
	Boss  bool
	Color RGB
}

// Score values for kills
const (
	ScoreKill     = 10
	ScoreBossKill = 20
)

// Score returns the kill score for this type
func (c EnemyTypeConfig) Score() int {
	if c.Boss {
		return ScoreBossKill
	}
	return ScoreKill
}

// GetEnemyTypeConfig returns configuration for an enemy type
func GetEnemyTypeConfig(t EnemyType) EnemyTypeConfig {
	switch t {
	case EnemyStudent:
		return EnemyTypeConfig{Type: t, Name: "student", Health: 1, SpeedMin: 1, SpeedMax: 3, NoiseMin: 8, NoiseMax: 12, Size: 30, Color: RGB{255, 200, 200}}
	case EnemyAnimal:
		return EnemyTypeConfig{Type: t, Name: "animal", Health: 1, SpeedMin: 1, SpeedMax: 3, NoiseMin: 5, NoiseMax: 10, Size: 30, Color: RGB{200, 150, 100}}
	case EnemyGhost:
		return EnemyTypeConfig{Type: t, Name: "ghost", Health: 1, SpeedMin: 1, SpeedMax: 3, NoiseMin: 10, NoiseMax: 15, Size: 30, Color: RGB{200, 200, 255}}
	case EnemyChaosLord:
		return EnemyTypeConfig{Type: t, Name: "chaos_lord", Health: 4, SpeedMin: 1, SpeedMax: 1.8, NoiseMin: 15, NoiseMax: 20, Size: 40, Boss: true, Color: RGB{160, 0, 160}}
	case EnemyLiteraryVillain:
		return EnemyTypeConfig{Type: t, Name: "literary_villain", Health: 3, SpeedMin: 1.2, SpeedMax: 2.2, NoiseMin: 12, NoiseMax: 18, Size: 32, Color: RGB{90, 20, 20}}
	case EnemyBookWorm:
		return EnemyTypeConfig{Type: t, Name: "book_worm", Health: 2, SpeedMin: 0.8, SpeedMax: 1.5, NoiseMin: 5, NoiseMax: 8, Size: 26, Color: RGB{120, 200, 80}}
	case EnemyNoiseDemon:
		return EnemyTypeConfig{Type: t, Name: "noise_demon", Health: 5, SpeedMin: 1.5, SpeedMax: 2.5, NoiseMin: 20, NoiseMax: 25, Size: 40, Boss: true, Color: RGB{220, 40, 40}}
	case EnemyBossMonster:
		return EnemyTypeConfig{Type: t, Name: "boss_monster", Health: 8, SpeedMin: 0.6, SpeedMax: 1.0, NoiseMin: 30, NoiseMax: 30, Size: 50, Boss: true, Color: RGB{60, 0, 0}}
	case EnemySwarm:
		return EnemyTypeConfig{Type: t, Name: "swarm_enemy", Health: 1, SpeedMin: 2.5, SpeedMax: 3.5, NoiseMin: 3, NoiseMax: 5, Size: 20, Color: RGB{250, 220, 60}}
	case EnemyTeleportingGhost:
		return EnemyTypeConfig{Type: t, Name: "teleporting_ghost", Health: 2, SpeedMin: 1, SpeedMax: 2, NoiseMin: 10, NoiseMax: 15, Size: 30, Color: RGB{150, 150, 255}}
	case EnemyShieldedKnight:
		return EnemyTypeConfig{Type: t, Name: "shielded_knight", Health: 3, ShieldHealth: 2, SpeedMin: 0.8, SpeedMax: 1.4, NoiseMin: 12, NoiseMax: 16, Size: 34, Color: RGB{170, 170, 190}}
	case EnemyExplodingBomb:
		return EnemyTypeConfig{Type: t, Name: "exploding_bomb", Health: 1, SpeedMin: 1.5, SpeedMax: 2.5, NoiseMin: 10, NoiseMax: 10, Size: 24, Color: RGB{40, 40, 40}}
	default:
		return GetEnemyTypeConfig(EnemyStudent)
	}
}

// String returns the enemy type name
func (t EnemyType) String() string {
	return GetEnemyTypeConfig(t).Name
}

type weightedEnemy struct {
	Type   EnemyType
	Weight int
}

// Candidate pools by elapsed-time tier. Later tiers widen the pool and
// shift weight towards tougher types.
var enemyTiers = [3][]weightedEnemy{
	{
		{EnemyStudent, 5}, {EnemyAnimal, 3}, {EnemyGhost, 2},
	},
	{
		{EnemyStudent, 3}, {EnemyAnimal, 3}, {EnemyGhost, 3},
		{EnemyBookWorm, 2}, {EnemySwarm, 2},
		{EnemyLiteraryVillain, 1}, {EnemyShieldedKnight, 1},
	},
	{
		{EnemyStudent, 2}, {EnemyAnimal, 2}, {EnemyGhost, 2},
		{EnemyBookWorm, 2}, {EnemySwarm, 3},
		{EnemyLiteraryVillain, 2}, {EnemyShieldedKnight, 2},
		{EnemyTeleportingGhost, 2}, {EnemyExplodingBomb, 2},
		{EnemyChaosLord, 1}, {EnemyNoiseDemon, 1}, {EnemyBossMonster, 1},
	},
}

// EnemyTier returns the 1-based tier for an elapsed time in milliseconds,
// capped at maxTier
func EnemyTier(elapsedMs int64, maxTier int) int {
	tier := 1
	switch {
	case elapsedMs >= 60000:
		tier = 3
	case elapsedMs >= 30000:
		tier = 2
	}
	if maxTier > 0 && tier > maxTier {
		tier = maxTier
	}
	return tier
}

// PickEnemyType draws a weighted random type from the tier's pool
func PickEnemyType(rng Rand, tier int) EnemyType {
	if tier < 1 {
		tier = 1
	}
	if tier > len(enemyTiers) {
		tier = len(enemyTiers)
	}
	pool := enemyTiers[tier-1]

	total := 0
	for _, w := range pool {
		total += w.Weight
	}
	roll := rng.Intn(total)
	for _, w := range pool {
		if roll < w.Weight {
			return w.Type
		}
		roll -= w.Weight
	}
	return pool[len(pool)-1].Type
}
