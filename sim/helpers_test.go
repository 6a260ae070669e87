package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values, then falls back to defaults.
// The default float of 0.99 keeps every probability roll from firing.
type scriptedRand struct {
	floats []float64
	ints   []int

	defaultFloat float64
}

func newScriptedRand() *scriptedRand {
	return &scriptedRand{defaultFloat: 0.99}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.defaultFloat
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

const frame = 16 * time.Millisecond

func newTestSim(t *testing.T, chapter Chapter, rng Rand, opts ...Option) *Simulation {
	t.Helper()
	opts = append([]Option{WithRand(rng)}, opts...)
	s := New(DefaultConfig(), chapter, CharacterLibrarian, 0, opts...)
	require.NotNil(t, s.Player)
	return s
}

// placeEnemy adds an enemy directly, bypassing the spawner
func placeEnemy(s *Simulation, t EnemyType, pos Vec) *Enemy {
	tc := GetEnemyTypeConfig(t)
	e := &Enemy{
		ID:             s.newID(),
		Type:           t,
		Pos:            pos,
		Width:          tc.Size,
		Height:         tc.Size,
		Health:         tc.Health,
		MaxHealth:      tc.Health,
		ShieldHealth:   tc.ShieldHealth,
		NoiseValue:     tc.NoiseMin,
		TeleportTimer:  s.cfg.TeleportTicks,
		ExplosionTimer: s.cfg.BombTicks,
		Target:         pos,
	}
	s.Enemies = append(s.Enemies, e)
	return e
}

type recordedSounds struct {
	names []string
}

func (r *recordedSounds) Play(name string) { r.names = append(r.names, name) }
