package sim

import "math"

// multiShotSpread is the angle between the center book and each side book
const multiShotSpread = 15 * math.Pi / 180

// rotateAround rotates target about origin by angle radians
func rotateAround(origin, target Vec, angle float64) Vec {
	d := target.Sub(origin)
	cos, sin := math.Cos(angle), math.Sin(angle)
	return origin.Add(Vec{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	})
}

// PredictiveAim returns the point to throw at so a projectile with the given
// per-tick speed meets a target moving at targetVel
func PredictiveAim(shooter, target, targetVel Vec, projectileSpeed float64) Vec {
	// Not moving, aim straight at it
	if math.Abs(targetVel.X) < 0.01 && math.Abs(targetVel.Y) < 0.01 {
		return target
	}

	distance := Dist(shooter, target)
	if distance < 1 || projectileSpeed <= 0 {
		return target
	}

	// Refine the intercept time: distance to the predicted point over projectile speed
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := Dist(shooter, predicted) / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}

// Velocity estimates the per-tick motion of an enemy under the active rules
func (s *Simulation) Velocity(e *Enemy) Vec {
	if !s.rules.ContactDeath {
		return Vec{-e.Speed, 0}
	}
	d := e.Target.Sub(e.Pos)
	dist := d.Len()
	if dist == 0 {
		return Vec{}
	}
	return d.Scale(e.Speed / dist)
}
