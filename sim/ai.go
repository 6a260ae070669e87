package sim

import "math"

// advanceEnemies moves every enemy one tick and runs the per-type timers.
// Time freeze stops movement and teleports, timers keep counting.
func (s *Simulation) advanceEnemies(frozen bool) {
	refresh := s.cfg.TargetRefreshTicks <= 1 || s.Ticks%uint64(s.cfg.TargetRefreshTicks) == 0

	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}

		switch e.Type {
		case EnemyExplodingBomb:
			e.ExplosionTimer--
			if e.ExplosionTimer <= 0 && !e.Exploded {
				e.Exploded = true
				e.Health = 0
				continue
			}
		case EnemyTeleportingGhost:
			e.TeleportTimer--
			if e.TeleportTimer <= 0 && !frozen {
				s.teleport(e)
				e.TeleportTimer = s.cfg.TeleportTicks
			}
		}

		if !s.rules.ContactDeath {
			// Noise-meter rules: everything drifts towards the left edge
			if !frozen {
				e.Pos.X -= e.Speed
			}
			continue
		}

		if refresh {
			e.Target = s.Player.Pos
		}
		if frozen {
			continue
		}
		s.pursue(e)
	}
}

// pursue steps an enemy towards its cached target, sliding along walls
func (s *Simulation) pursue(e *Enemy) {
	d := e.Target.Sub(e.Pos)
	dist := d.Len()
	if dist == 0 {
		return
	}
	step := e.Speed
	if step > dist {
		step = dist
	}
	move := d.Scale(step / dist)

	topLeft := Vec{e.Pos.X - e.Width/2, e.Pos.Y - e.Height/2}
	moved := SlideMove(s.Maze, topLeft, e.Width, e.Height, move.X, move.Y)
	e.Pos = Vec{moved.X + e.Width/2, moved.Y + e.Height/2}
}

// teleport relocates an enemy to a free point at a fixed distance from the player
func (s *Simulation) teleport(e *Enemy) {
	for i := 0; i < s.cfg.MaxSpawnAttempts; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		p := s.Player.Pos.Add(Vec{math.Cos(angle), math.Sin(angle)}.Scale(s.cfg.TeleportDistance))
		if p.X < 0 || p.X > s.cfg.Width || p.Y < 0 || p.Y > s.cfg.Height {
			continue
		}
		if s.Maze != nil && s.Maze.BlockedCentered(p, e.Width, e.Height) {
			continue
		}
		e.Pos = p
		e.Target = s.Player.Pos
		s.sounds.Play(SoundTeleport)
		return
	}
}
