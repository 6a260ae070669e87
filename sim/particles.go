package sim

// particleGravity is added to each particle's vertical velocity per tick
const particleGravity = 0.1

// burst emits a fan of death particles at pos
func (s *Simulation) burst(pos Vec, color RGB) {
	for i := 0; i < s.cfg.ParticleCount; i++ {
		s.Particles = append(s.Particles, &Particle{
			Pos: pos,
			Vel: Vec{
				X: uniform(s.rng, -3, 3),
				Y: uniform(s.rng, -3, 3),
			},
			Life:    s.cfg.ParticleLife,
			MaxLife: s.cfg.ParticleLife,
			Size:    float64(randInt(s.rng, 2, 5)),
			Color:   color,
		})
	}
}
