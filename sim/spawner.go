package sim

import (
	"time"
)

const (
	// spawnMargin is how far beyond the right edge drifting entities appear
	spawnMargin = 50.0

	// powerUpMargin is how far past the left edge a power-up may drift before it is dropped
	powerUpMargin = 50.0

	powerUpSize  = 25.0
	powerUpSpeed = 2.0

	// minSpawnGap keeps open-field spawns away from the player
	minSpawnGap = 150.0
)

// EnemySpawnDelay returns the delay between enemy spawn triggers at now.
// The delay shrinks linearly over the decay window down to a floor and is
// scaled by the difficulty factor.
func (s *Simulation) EnemySpawnDelay(now time.Duration) time.Duration {
	elapsed := s.Elapsed(now)
	decay := 1 - float64(elapsed)/float64(s.cfg.DecayWindow)
	if decay < s.cfg.MinDecayFactor {
		decay = s.cfg.MinDecayFactor
	}
	factor := GetDifficultyConfig(s.cfg.Difficulty).DelayFactor
	return time.Duration(float64(s.cfg.EnemySpawnDelay) * decay * factor)
}

func (s *Simulation) spawn(now time.Duration) {
	if s.rules.Waves {
		s.checkWaveClear(now)
	}

	if now-s.lastEnemySpawn > s.EnemySpawnDelay(now) {
		tier := s.tier(now)
		n := s.rollSpawnCount()
		for i := 0; i < n; i++ {
			s.SpawnEnemy(PickEnemyType(s.rng, tier))
		}
		s.lastEnemySpawn = now
	}

	if len(s.rules.PowerUps) > 0 && now-s.lastPowerUpSpawn > s.cfg.PowerUpSpawnDelay {
		s.SpawnPowerUp(s.rules.PowerUps[s.rng.Intn(len(s.rules.PowerUps))])
		s.lastPowerUpSpawn = now
	}
}

func (s *Simulation) tier(now time.Duration) int {
	return EnemyTier(s.Elapsed(now).Milliseconds(), s.rules.MaxTier)
}

// rollSpawnCount returns one plus an independent roll per extra enemy
func (s *Simulation) rollSpawnCount() int {
	chance := GetDifficultyConfig(s.cfg.Difficulty).ExtraSpawnChance
	n := 1
	for i := 0; i < 2; i++ {
		if s.rng.Float64() < chance {
			n++
		}
	}
	return n
}

// SpawnEnemy adds an enemy of type t at a spawn point for the active rules
func (s *Simulation) SpawnEnemy(t EnemyType) *Enemy {
	tc := GetEnemyTypeConfig(t)
	e := &Enemy{
		ID:             s.newID(),
		Type:           t,
		Pos:            s.enemySpawnPoint(tc.Size),
		Width:          tc.Size,
		Height:         tc.Size,
		Health:         tc.Health,
		MaxHealth:      tc.Health,
		ShieldHealth:   tc.ShieldHealth,
		Speed:          uniform(s.rng, tc.SpeedMin, tc.SpeedMax),
		NoiseValue:     randInt(s.rng, tc.NoiseMin, tc.NoiseMax),
		TeleportTimer:  s.cfg.TeleportTicks,
		ExplosionTimer: s.cfg.BombTicks,
		Target:         s.Player.Pos,
	}
	s.Enemies = append(s.Enemies, e)
	s.waveArmed = true

	s.log.Debug().
		Uint64("id", uint64(e.ID)).
		Str("type", t.String()).
		Float64("x", e.Pos.X).
		Float64("y", e.Pos.Y).
		Msg("enemy spawned")
	return e
}

// enemySpawnPoint picks the center of a new enemy
func (s *Simulation) enemySpawnPoint(size float64) Vec {
	fallback := Vec{s.cfg.Width + spawnMargin, s.cfg.Height / 2}

	if !s.rules.ContactDeath {
		return Vec{s.cfg.Width + spawnMargin, float64(randInt(s.rng, 50, int(s.cfg.Height)-50))}
	}

	if s.Maze != nil {
		if p, ok := s.Maze.RandomEdgeSpawn(s.rng, size, size, s.cfg.MaxSpawnAttempts); ok {
			return p
		}
		return fallback
	}

	for i := 0; i < s.cfg.MaxSpawnAttempts; i++ {
		var p Vec
		switch s.rng.Intn(4) {
		case 0: // left
			p = Vec{size / 2, uniform(s.rng, size/2, s.cfg.Height-size/2)}
		case 1: // right
			p = Vec{s.cfg.Width - size/2, uniform(s.rng, size/2, s.cfg.Height-size/2)}
		case 2: // top
			p = Vec{uniform(s.rng, size/2, s.cfg.Width-size/2), size / 2}
		default: // bottom
			p = Vec{uniform(s.rng, size/2, s.cfg.Width-size/2), s.cfg.Height - size/2}
		}
		if Dist(p, s.Player.Pos) >= minSpawnGap {
			return p
		}
	}
	return fallback
}

// SpawnPowerUp adds a power-up at the right edge
func (s *Simulation) SpawnPowerUp(t PowerUpType) *PowerUp {
	pu := &PowerUp{
		ID:     s.newID(),
		Type:   t,
		Pos:    Vec{s.cfg.Width + spawnMargin, float64(randInt(s.rng, 50, int(s.cfg.Height)-50))},
		Width:  powerUpSize,
		Height: powerUpSize,
		Speed:  powerUpSpeed,
	}
	s.PowerUps = append(s.PowerUps, pu)
	return pu
}

// checkWaveClear fires when the field has been emptied of enemies and books
func (s *Simulation) checkWaveClear(now time.Duration) {
	if !s.waveArmed || len(s.Enemies) > 0 || len(s.Books) > 0 {
		return
	}

	count := min(s.cfg.WaveBaseCount+s.Wave, s.cfg.WaveMaxCount)
	tier := s.tier(now)
	for i := 0; i < count; i++ {
		s.SpawnEnemy(PickEnemyType(s.rng, tier))
	}

	s.Wave++
	bonus := s.Wave * s.cfg.WaveBonus
	s.Score += bonus
	s.addMessage(now, "Wave %d cleared! +%d", s.Wave, bonus)
	s.sounds.Play(SoundWaveClear)
	s.log.Info().Int("wave", s.Wave).Int("bonus", bonus).Int("spawned", count).Msg("wave cleared")
}
