package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"librarydefender/sim"
)

const (
	dustCount     = 70
	dustBaseSpeed = 20.0
)

type mote struct {
	pos   sim.Vec
	speed float64
	size  float64
	phase float64
}

// Dust is the drifting dust behind the menus
type Dust struct {
	motes         []mote
	width, height float64
	wind          sim.Vec
}

// NewDust scatters n motes over a width x height area
func NewDust(n int, width, height float64, rng sim.Rand) *Dust {
	d := &Dust{
		motes:  make([]mote, n),
		width:  width,
		height: height,
		wind:   sim.Vec{X: -1, Y: 0.35},
	}
	for i := range d.motes {
		d.motes[i] = mote{
			pos:   sim.Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			speed: 0.5 + rng.Float64(),
			size:  1 + rng.Float64()*2,
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return d
}

// Update drifts the motes by dt seconds, wrapping them around the area
func (d *Dust) Update(dt float64) {
	for i := range d.motes {
		m := &d.motes[i]
		m.phase += dt
		step := dustBaseSpeed * m.speed * dt
		m.pos.X += d.wind.X * step
		m.pos.Y += d.wind.Y*step + math.Sin(m.phase)*0.2

		// keep motes on a torus over the area
		m.pos.X = wrap(m.pos.X, d.width)
		m.pos.Y = wrap(m.pos.Y, d.height)
	}
}

func wrap(v, span float64) float64 {
	if span <= 0 {
		return v
	}
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}

// Draw renders the motes
func (d *Dust) Draw(screen *ebiten.Image) {
	for _, m := range d.motes {
		vector.DrawFilledCircle(screen, float32(m.pos.X), float32(m.pos.Y), float32(m.size), colorDust, true)
	}
}
