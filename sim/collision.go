package sim

import (
	"math"
	"time"
)

// resolve runs every interaction for the tick in a fixed order. It returns
// true when the game ended, in which case the rest of the tick is skipped.
func (s *Simulation) resolve(now time.Duration, in Input) bool {
	s.resolveBookHits(now)

	if s.rules.ContactDeath && s.resolveContact(now) {
		return true
	}
	if s.resolveBombs(now) {
		return true
	}

	s.resolvePickups(now)

	if in.Shush {
		s.Shush(now)
	}
	if s.Effects.IsActive(EffectSilenceAura, now) {
		s.applySilenceAura()
	}

	return s.resolveEscapes(now)
}

// inBox reports whether two points are closer than hx and hy on each axis
func inBox(a, b Vec, hx, hy float64) bool {
	return math.Abs(a.X-b.X) < hx && math.Abs(a.Y-b.Y) < hy
}

// resolveBookHits lets each book hit at most one enemy
func (s *Simulation) resolveBookHits(now time.Duration) {
	for _, b := range s.Books {
		if b.spent {
			continue
		}
		for _, e := range s.Enemies {
			if !e.Alive() || !inBox(b.Pos, e.Pos, s.cfg.HitBox, s.cfg.HitBox) {
				continue
			}

			if b.Mega {
				s.splash(b, b.Pos)
			} else {
				s.damage(e, b.Damage, b)
				if b.Type == BookMagicalTome && b.Genre != GenreNone && s.rng.Float64() < s.cfg.GenreProcChance {
					s.genreEffect(b, e)
				}
			}
			b.spent = true
			s.sounds.Play(SoundHit)
			break
		}
	}
}

// splash damages every enemy strictly inside the splash radius
func (s *Simulation) splash(b *Book, at Vec) {
	for _, e := range s.Enemies {
		if e.Alive() && Dist(e.Pos, at) < s.cfg.SplashRadius {
			s.damage(e, s.cfg.MegaDamage, b)
		}
	}
}

// genreEffect applies a magical tome's secondary effect around the enemy it hit
func (s *Simulation) genreEffect(b *Book, hit *Enemy) {
	switch b.Genre {
	case GenreFantasy:
		for _, o := range s.Enemies {
			if o != hit && o.Alive() && Dist(o.Pos, hit.Pos) < s.cfg.FantasyRadius {
				o.Speed *= s.cfg.FantasySlow
			}
		}
	case GenreHorror:
		if hit.Alive() {
			hit.Speed *= s.cfg.HorrorBoost
		}
	case GenreScience:
		for _, o := range s.Enemies {
			if o != hit && o.Alive() && Dist(o.Pos, hit.Pos) < s.cfg.ScienceRadius {
				s.damage(o, 1, b)
			}
		}
	}
}

// damage applies dmg to an enemy, draining a knight's shield first, and
// kills it when health runs out. src is the book responsible, if any.
func (s *Simulation) damage(e *Enemy, dmg int, src *Book) {
	if !e.Alive() {
		return
	}
	if e.Type == EnemyShieldedKnight && e.ShieldHealth > 0 {
		e.ShieldHealth -= dmg
		if e.ShieldHealth < 0 {
			// the overflow goes through to health
			e.Health += e.ShieldHealth
		}
	} else {
		e.Health -= dmg
	}
	if e.Health <= 0 {
		s.kill(e, src)
	}
}

// kill scores an enemy exactly once
func (s *Simulation) kill(e *Enemy, src *Book) {
	if e.dead {
		return
	}
	e.dead = true
	if e.Health > 0 {
		e.Health = 0
	}

	tc := GetEnemyTypeConfig(e.Type)
	s.burst(e.Pos, tc.Color)
	s.Score += tc.Score()
	s.Kills++
	s.sounds.Play(SoundDefeatPrefix + tc.Name)

	if src != nil && src.Genre != GenreNone {
		s.collect(src)
	}
}

// resolveContact ends the game when an enemy touches an unshielded player.
// While shielded, touching enemies are destroyed instead.
func (s *Simulation) resolveContact(now time.Duration) bool {
	shielded := s.Effects.IsActive(EffectShield, now)
	for _, e := range s.Enemies {
		if !e.Alive() || !inBox(e.Pos, s.Player.Pos, s.cfg.HitBox, s.cfg.HitBox) {
			continue
		}
		if shielded {
			s.kill(e, nil)
			s.sounds.Play(SoundShieldBlock)
			continue
		}
		s.endGame(now, "caught by "+e.Type.String())
		return true
	}
	return false
}

// resolveBombs detonates bombs whose timer ran out. The blast ignores the shield.
func (s *Simulation) resolveBombs(now time.Duration) bool {
	for _, e := range s.Enemies {
		if e.Type != EnemyExplodingBomb || !e.Exploded || e.dead {
			continue
		}
		e.dead = true
		s.burst(e.Pos, GetEnemyTypeConfig(e.Type).Color)
		s.sounds.Play(SoundExplosion)

		for _, o := range s.Enemies {
			if o != e && o.Alive() && Dist(o.Pos, e.Pos) < s.cfg.BombRadius {
				s.damage(o, s.cfg.BombDamage, nil)
			}
		}

		if s.rules.ContactDeath && Dist(e.Pos, s.Player.Pos) < s.cfg.BombRadius {
			s.endGame(now, "caught in an explosion")
			return true
		}
	}
	return false
}

// resolvePickups activates the effect of every power-up the player touches
func (s *Simulation) resolvePickups(now time.Duration) {
	for _, pu := range s.PowerUps {
		if pu.taken || !inBox(pu.Pos, s.Player.Pos, s.cfg.PickupBoxX, s.cfg.PickupBoxY) {
			continue
		}
		pu.taken = true

		pc := GetPowerUpConfig(pu.Type)
		s.Effects.Activate(pc.Effect, now)
		if pc.Effect == EffectSpeedBoost {
			s.Player.Speed = s.Player.BaseSpeed * SpeedBoostFactor
		}
		s.addMessage(now, "%s", pc.Effect.String())
		s.sounds.Play(SoundPickupPrefix + pc.Name)
	}
}

// Shush damages every enemy within range of the player when the cooldown
// allows. It reports whether the shush fired.
func (s *Simulation) Shush(now time.Duration) bool {
	if !s.ShushReady(now) {
		return false
	}
	s.lastShush = now
	s.shushed = true

	for _, e := range s.Enemies {
		if e.Alive() && Dist(e.Pos, s.Player.Pos) <= s.cfg.ShushRange {
			s.damage(e, s.cfg.ShushDamage, nil)
		}
	}
	s.sounds.Play(SoundShush)
	return true
}

func (s *Simulation) applySilenceAura() {
	for _, e := range s.Enemies {
		if e.Alive() && Dist(e.Pos, s.Player.Pos) < s.cfg.SilenceAuraRange {
			s.damage(e, 1, nil)
		}
	}
}

// resolveEscapes turns enemies that left the area into noise
func (s *Simulation) resolveEscapes(now time.Duration) bool {
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}

		if s.rules.NoiseLoss {
			if e.Pos.X >= s.cfg.EscapeLeftX {
				continue
			}
			s.Noise += e.NoiseValue
			e.dead = true
			s.sounds.Play(SoundEscape)
			if s.Noise >= s.cfg.MaxNoise {
				s.endGame(now, "the library got too loud")
				return true
			}
			continue
		}

		if !s.outside(e.Pos, s.cfg.EscapeSlack) {
			continue
		}
		s.Noise = min(s.Noise+e.NoiseValue, s.cfg.MaxNoise)
		e.dead = true
		s.sounds.Play(SoundEscape)
	}
	return false
}

func (s *Simulation) outside(p Vec, slack float64) bool {
	return p.X < -slack || p.X > s.cfg.Width+slack || p.Y < -slack || p.Y > s.cfg.Height+slack
}
