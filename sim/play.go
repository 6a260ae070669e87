package sim

import "time"

// Play drives s with inputs from p, advancing the clock by step per tick,
// until the game ends or limit of session time has passed. It returns the
// final clock value.
func Play(s *Simulation, p InputProvider, start, step, limit time.Duration) time.Duration {
	now := start
	for !s.GameOver && now-start < limit {
		now += step
		s.Tick(now, p.Next(s))
	}
	return now
}
