package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMegaBookSplash(t *testing.T) {
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand())
	s.Effects.Activate(EffectMegaBook, 0)

	near := placeEnemy(s, EnemyStudent, Vec{410, 300})
	inside := placeEnemy(s, EnemyStudent, Vec{470, 300})
	edge := placeEnemy(s, EnemyStudent, Vec{480, 300})

	b := NewBook(s.newID(), BookPaperback, Vec{400, 300}, Vec{500, 300}, true)
	s.Books = append(s.Books, b)

	s.resolveBookHits(0)

	assert.False(t, near.Alive())
	assert.False(t, inside.Alive())
	assert.True(t, edge.Alive(), "enemy exactly at the splash radius is untouched")
	assert.Equal(t, 2*ScoreKill, s.Score)
	assert.True(t, b.spent)
}

func TestBookHitsFirstMatchedEnemyOnly(t *testing.T) {
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand())
	first := placeEnemy(s, EnemyBookWorm, Vec{410, 300})
	second := placeEnemy(s, EnemyBookWorm, Vec{405, 305})

	s.Books = append(s.Books, NewBook(s.newID(), BookPaperback, Vec{400, 300}, Vec{500, 300}, false))
	s.resolveBookHits(0)

	assert.Equal(t, 1, first.Health)
	assert.Equal(t, 2, second.Health)
}

func TestSpentBookDoesNotHitAgain(t *testing.T) {
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand())
	e := placeEnemy(s, EnemyNoiseDemon, Vec{400, 300})
	b := NewBook(s.newID(), BookPaperback, Vec{400, 300}, Vec{500, 300}, false)
	s.Books = append(s.Books, b)

	s.resolveBookHits(0)
	s.resolveBookHits(0)

	assert.Equal(t, 4, e.Health)
}

func TestShieldedKnightOverflow(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	k := placeEnemy(s, EnemyShieldedKnight, Vec{600, 300})
	require.Equal(t, 2, k.ShieldHealth)
	require.Equal(t, 3, k.Health)

	s.damage(k, 3, nil)

	assert.Equal(t, -1, k.ShieldHealth)
	assert.Equal(t, 2, k.Health)
	assert.True(t, k.Alive())

	// shield is gone, damage goes straight to health
	s.damage(k, 2, nil)
	assert.False(t, k.Alive())
	assert.Equal(t, ScoreKill, s.Score)
}

func TestShieldAbsorbsSmallHit(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	k := placeEnemy(s, EnemyShieldedKnight, Vec{600, 300})

	s.damage(k, 1, nil)

	assert.Equal(t, 1, k.ShieldHealth)
	assert.Equal(t, 3, k.Health)
}

func TestMagicalTomeFantasySlowsNeighbours(t *testing.T) {
	rng := newScriptedRand()
	rng.floats = []float64{0.1}
	s := newTestSim(t, ChapterEndless, rng)

	hit := placeEnemy(s, EnemyNoiseDemon, Vec{400, 300})
	hit.Speed = 2
	close1 := placeEnemy(s, EnemyStudent, Vec{440, 300})
	close1.Speed = 2
	close2 := placeEnemy(s, EnemyStudent, Vec{400, 350})
	close2.Speed = 2
	far := placeEnemy(s, EnemyStudent, Vec{470, 300})
	far.Speed = 2

	b := NewBook(s.newID(), BookMagicalTome, Vec{400, 300}, Vec{500, 300}, false)
	b.Genre = GenreFantasy
	s.Books = append(s.Books, b)

	s.resolveBookHits(0)

	assert.Equal(t, 3, hit.Health)
	assert.Equal(t, 2.0, hit.Speed)
	assert.Equal(t, 1.0, close1.Speed)
	assert.Equal(t, 1.0, close2.Speed)
	assert.Equal(t, 2.0, far.Speed)
}

func TestMagicalTomeProcMisses(t *testing.T) {
	rng := newScriptedRand()
	rng.floats = []float64{0.3}
	s := newTestSim(t, ChapterEndless, rng)

	placeEnemy(s, EnemyNoiseDemon, Vec{400, 300}).Speed = 2
	other := placeEnemy(s, EnemyStudent, Vec{440, 300})
	other.Speed = 2

	b := NewBook(s.newID(), BookMagicalTome, Vec{400, 300}, Vec{500, 300}, false)
	b.Genre = GenreFantasy
	s.Books = append(s.Books, b)
	s.resolveBookHits(0)

	assert.Equal(t, 2.0, other.Speed)
}

func TestMagicalTomeScienceChains(t *testing.T) {
	rng := newScriptedRand()
	rng.floats = []float64{0.0}
	s := newTestSim(t, ChapterEndless, rng)

	placeEnemy(s, EnemyNoiseDemon, Vec{400, 300})
	chained := placeEnemy(s, EnemyBookWorm, Vec{470, 300})
	far := placeEnemy(s, EnemyBookWorm, Vec{490, 300})

	b := NewBook(s.newID(), BookMagicalTome, Vec{400, 300}, Vec{500, 300}, false)
	b.Genre = GenreScience
	s.Books = append(s.Books, b)
	s.resolveBookHits(0)

	assert.Equal(t, 1, chained.Health)
	assert.Equal(t, 2, far.Health)
}

func TestContactEndsGame(t *testing.T) {
	var final []int
	s := newTestSim(t, ChapterEndless, newScriptedRand(), WithGameOver(func(score int) { final = append(final, score) }))
	s.Score = 42
	placeEnemy(s, EnemyStudent, s.Player.Pos.Add(Vec{10, 10}))

	assert.True(t, s.resolveContact(0))
	assert.True(t, s.GameOver)
	assert.Equal(t, []int{42}, final)

	// a finished game stays finished
	s.Tick(frame, Input{})
	assert.Equal(t, []int{42}, final)
}

func TestShieldDestroysTouchingEnemy(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	s.Effects.Activate(EffectShield, 0)
	e := placeEnemy(s, EnemyChaosLord, s.Player.Pos.Add(Vec{5, -5}))

	assert.False(t, s.resolveContact(time.Second))
	assert.False(t, s.GameOver)
	assert.False(t, e.Alive())
	assert.Equal(t, ScoreBossKill, s.Score)
}

func TestContactIgnoredInMeterRules(t *testing.T) {
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand())
	e := placeEnemy(s, EnemyStudent, s.Player.Pos)
	e.Speed = 0

	s.Tick(frame, Input{})

	assert.False(t, s.GameOver)
}

func TestBombBlastIgnoresShield(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	s.Effects.Activate(EffectShield, 0)

	bomb := placeEnemy(s, EnemyExplodingBomb, s.Player.Pos.Add(Vec{50, 0}))
	bomb.Exploded = true
	bomb.Health = 0
	bystander := placeEnemy(s, EnemyBookWorm, bomb.Pos.Add(Vec{30, 0}))

	assert.True(t, s.resolveBombs(0))
	assert.True(t, s.GameOver)
	assert.False(t, bystander.Alive())
	assert.Equal(t, "caught in an explosion", s.Cause)
}

func TestBombTimerDetonatesWithoutScore(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	bomb := placeEnemy(s, EnemyExplodingBomb, Vec{600, 300})
	bomb.ExplosionTimer = 1
	bystander := placeEnemy(s, EnemyStudent, Vec{650, 300})

	s.Tick(frame, Input{})

	assert.False(t, s.GameOver)
	assert.True(t, bomb.Exploded)
	assert.False(t, bystander.Alive())
	assert.Equal(t, ScoreKill, s.Score, "only the bystander scores")
	assert.Empty(t, s.Enemies)
}

func TestPickupActivatesEffect(t *testing.T) {
	sounds := &recordedSounds{}
	s := newTestSim(t, ChapterEndless, newScriptedRand(), WithSounds(sounds))
	pu := s.SpawnPowerUp(PowerUpCoffee)
	pu.Pos = s.Player.Pos.Add(Vec{30, 40})

	s.resolvePickups(time.Second)

	assert.True(t, s.Effects.IsActive(EffectSpeedBoost, time.Second))
	assert.InDelta(t, 8.0, s.Player.Speed, 1e-9)
	assert.True(t, pu.taken)
	assert.Contains(t, sounds.names, "pickup_coffee")
}

func TestPickupBoxIsAsymmetric(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	pu := s.SpawnPowerUp(PowerUpShield)
	pu.Pos = s.Player.Pos.Add(Vec{45, 0})

	s.resolvePickups(0)

	assert.False(t, pu.taken)
	assert.False(t, s.Effects.IsActive(EffectShield, 0))
}

func TestMagnetPullsPowerUps(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	pu := s.SpawnPowerUp(PowerUpShield)
	pu.Speed = 0
	pu.Pos = s.Player.Pos.Add(Vec{90, 0})

	s.advancePowerUps(0)
	assert.InDelta(t, 90.0, Dist(pu.Pos, s.Player.Pos), 1e-9)

	s.Effects.Activate(EffectMagnet, 0)
	s.advancePowerUps(0)
	assert.InDelta(t, 86.0, Dist(pu.Pos, s.Player.Pos), 1e-9)
}

func TestShushRangeAndCooldown(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	inRange := placeEnemy(s, EnemyBookWorm, s.Player.Pos.Add(Vec{100, 0}))
	outOfRange := placeEnemy(s, EnemyBookWorm, s.Player.Pos.Add(Vec{0, 101}))

	assert.True(t, s.Shush(0))
	assert.False(t, inRange.Alive())
	assert.Equal(t, 2, outOfRange.Health)
	assert.True(t, s.ShushVisible(400*time.Millisecond))
	assert.False(t, s.ShushVisible(500*time.Millisecond))

	assert.False(t, s.Shush(500*time.Millisecond))
	assert.False(t, s.Shush(1000*time.Millisecond))
	assert.True(t, s.Shush(1001*time.Millisecond))
}

func TestArchivistShushesFaster(t *testing.T) {
	s := New(DefaultConfig(), ChapterEndless, CharacterArchivist, 0, WithRand(newScriptedRand()))

	assert.True(t, s.Shush(0))
	assert.True(t, s.Shush(801*time.Millisecond))
}

func TestSilenceAuraDrainsNearbyEnemies(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	s.Effects.Activate(EffectSilenceAura, 0)
	near := placeEnemy(s, EnemyBossMonster, s.Player.Pos.Add(Vec{50, 0}))
	far := placeEnemy(s, EnemyBossMonster, s.Player.Pos.Add(Vec{60, 0}))

	s.applySilenceAura()
	s.applySilenceAura()

	assert.Equal(t, 6, near.Health)
	assert.Equal(t, 8, far.Health)
}

func TestEscapeFillsNoiseMeter(t *testing.T) {
	var final []int
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand(), WithGameOver(func(score int) { final = append(final, score) }))

	a := placeEnemy(s, EnemyStudent, Vec{-49, 200})
	a.Speed, a.NoiseValue = 2, 60
	b := placeEnemy(s, EnemyStudent, Vec{-49, 400})
	b.Speed, b.NoiseValue = 2, 50

	s.Tick(frame, Input{})

	assert.True(t, s.GameOver)
	assert.Equal(t, 110, s.Noise)
	assert.Equal(t, []int{0}, final)
}

func TestEscapeBelowThresholdKeepsPlaying(t *testing.T) {
	s := newTestSim(t, ChapterReadingRoom, newScriptedRand())
	e := placeEnemy(s, EnemyStudent, Vec{-49, 200})
	e.Speed, e.NoiseValue = 2, 16

	s.Tick(frame, Input{})

	assert.False(t, s.GameOver)
	assert.Equal(t, 16, s.Noise)
	assert.Empty(t, s.Enemies)
}

func TestContactRulesNoiseIsCapped(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	e := placeEnemy(s, EnemyNoiseDemon, Vec{-150, 300})
	e.Speed, e.NoiseValue = 0, 150

	s.Tick(frame, Input{})

	assert.False(t, s.GameOver)
	assert.Equal(t, s.cfg.MaxNoise, s.Noise)
}

func TestRemoveEnemyIsIdempotent(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	e := placeEnemy(s, EnemyStudent, Vec{600, 300})

	assert.True(t, s.RemoveEnemy(e.ID))
	assert.False(t, s.RemoveEnemy(e.ID))
	assert.False(t, s.RemoveEnemy(InvalidEntityID))
	assert.Zero(t, s.Score)
}

func TestKillRecordsGenreAndLevelsUp(t *testing.T) {
	s := newTestSim(t, ChapterEndless, newScriptedRand())
	genres := []Genre{GenreFantasy, GenreHorror, GenreFantasy, GenreScience}
	for i, g := range genres {
		e := placeEnemy(s, EnemyStudent, Vec{600, float64(100 + 50*i)})
		b := &Book{Genre: g, Author: GetGenreConfig(g).Authors[0]}
		s.damage(e, 1, b)
	}

	assert.Len(t, s.Genres, 3)
	assert.Len(t, s.Authors, 3)
	assert.Equal(t, 2, s.ReadingLevel)
	assert.Equal(t, 4*ScoreKill+2*50, s.Score)
}
