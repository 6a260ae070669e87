package sim

import "math"

// Autopilot is a scripted player used by the headless runner and tests.
// It throws at the nearest enemy with a predictive lead, shushes anything
// that gets close and, under contact rules, backs away from threats.
type Autopilot struct {
	// DangerRadius is how close an enemy may get before the autopilot retreats
	DangerRadius float64
}

// NewAutopilot creates an autopilot with default tuning
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerRadius: 90}
}

// Next implements InputProvider
func (a *Autopilot) Next(s *Simulation) Input {
	var in Input
	p := s.Player
	if p == nil {
		return in
	}

	target := a.nearest(s)
	if target == nil {
		// Nothing to do, drift back to the starting column
		if p.Pos.Y < s.cfg.Height/2-p.Speed {
			in.MoveY = 1
		} else if p.Pos.Y > s.cfg.Height/2+p.Speed {
			in.MoveY = -1
		}
		return in
	}

	origin := s.ThrowOrigin()
	speed := GetBookConfig(s.BookType).Speed
	in.Throw = true
	in.HasAim = true
	in.Aim = PredictiveAim(origin, target.Pos, s.Velocity(target), speed)

	dist := Dist(target.Pos, p.Pos)
	if dist <= s.cfg.ShushRange {
		in.Shush = true
	}

	if s.rules.ContactDeath && dist < a.DangerRadius {
		// Step away on the dominant axis
		d := p.Pos.Sub(target.Pos)
		if math.Abs(d.X) > math.Abs(d.Y) {
			in.MoveX = sign(d.X)
		} else {
			in.MoveY = sign(d.Y)
		}
		return in
	}

	// Line up vertically with the target
	dy := target.Pos.Y - (p.Pos.Y + p.Height/2)
	if math.Abs(dy) > p.Speed {
		in.MoveY = sign(dy)
	}
	return in
}

func (a *Autopilot) nearest(s *Simulation) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range s.Enemies {
		if !e.Alive() {
			continue
		}
		if d := Dist(e.Pos, s.Player.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
