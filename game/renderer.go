package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"librarydefender/sim"
)

// Renderer draws the play area of a simulation
type Renderer struct {
	sprites *Sprites
}

// NewRenderer creates a renderer using sprites where available
func NewRenderer(sprites *Sprites) *Renderer {
	return &Renderer{sprites: sprites}
}

// Render draws one frame of the simulation at now
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Simulation, now time.Duration) {
	screen.Fill(colorBackground)

	if s.Maze != nil {
		r.renderMaze(screen, s.Maze)
	}
	for _, p := range s.PowerUps {
		r.renderPowerUp(screen, p)
	}
	for _, e := range s.Enemies {
		if e.Alive() {
			r.renderEnemy(screen, e, s.Ticks)
		}
	}
	for _, b := range s.Books {
		r.renderBook(screen, b)
	}
	r.renderPlayer(screen, s, now)
	for _, p := range s.Particles {
		vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y),
			float32(p.CurrentSize()), float32(p.CurrentSize()), rgba(p.Color), false)
	}

	if s.Effects.IsActive(sim.EffectTimeFreeze, now) {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorFreeze, false)
	}
}

func (r *Renderer) renderMaze(screen *ebiten.Image, m *sim.Maze) {
	size := float32(m.TileSize)
	for row, tiles := range m.Tiles {
		for col, t := range tiles {
			var clr color.Color
			switch t {
			case sim.TileWall:
				clr = colorWall
			case sim.TileShelf:
				clr = colorShelf
			case sim.TileFurniture:
				clr = colorFurniture
			default:
				continue
			}
			x, y := float32(col)*size, float32(row)*size
			vector.DrawFilledRect(screen, x, y, size, size, clr, false)
			if t == sim.TileShelf {
				// book spines
				for i := float32(1); i < 4; i++ {
					vector.StrokeLine(screen, x, y+i*size/4, x+size, y+i*size/4, 1, colorWall, false)
				}
			}
		}
	}

	if GetDebugState().ShowGrid {
		grid := color.RGBA{0, 0, 0, 40}
		for col := 0; col <= m.Cols; col++ {
			x := float32(col) * size
			vector.StrokeLine(screen, x, 0, x, float32(m.Rows)*size, 1, grid, false)
		}
		for row := 0; row <= m.Rows; row++ {
			y := float32(row) * size
			vector.StrokeLine(screen, 0, y, float32(m.Cols)*size, y, 1, grid, false)
		}
	}
}

func (r *Renderer) renderPlayer(screen *ebiten.Image, s *sim.Simulation, now time.Duration) {
	p := s.Player
	cc := sim.GetCharacterConfig(p.Character)

	if fade := s.ShushFade(now); fade > 0 {
		cx, cy := p.Pos.X+p.Width/2, p.Pos.Y+p.Height/2
		radius := s.Config().ShushRange * (1.2 - 0.2*fade)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 3, fadeColor(colorShush, fade), true)
	}
	if s.Effects.IsActive(sim.EffectSilenceAura, now) {
		cx, cy := p.Pos.X+p.Width/2, p.Pos.Y+p.Height/2
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(s.Config().SilenceAuraRange), colorAura, true)
	}

	if img, ok := r.sprites.Get(SpriteName(cc.SpriteName, p.Facing.String())); ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(p.Width/float64(b.Dx()), p.Height/float64(b.Dy()))
		// walking bob
		bob := 0.0
		if p.Moving {
			bob = math.Sin(float64(p.AnimPhase)/3) * 2
		}
		op.GeoM.Translate(p.Pos.X, p.Pos.Y+bob)
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Width), float32(p.Height), rgba(cc.Color), false)
		// facing marker
		c := sim.Vec{X: p.Pos.X + p.Width/2, Y: p.Pos.Y + p.Height/2}
		tip := c.Add(p.Facing.Unit().Scale(p.Width / 2))
		vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tip.X), float32(tip.Y), 3, colorMenuText, true)
	}

	if s.Effects.IsActive(sim.EffectShield, now) {
		cx, cy := p.Pos.X+p.Width/2, p.Pos.Y+p.Height/2
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(p.Height/2+6), 2, colorShield, true)
	}
}

func (r *Renderer) renderEnemy(screen *ebiten.Image, e *sim.Enemy, ticks uint64) {
	tc := sim.GetEnemyTypeConfig(e.Type)
	clr := rgba(tc.Color)

	// bombs flash faster as the fuse burns down
	if e.Type == sim.EnemyExplodingBomb && e.ExplosionTimer < 60 && (ticks/4)%2 == 0 {
		clr = colorNoise
	}

	radius := float32(e.Width / 2)
	if img, ok := r.sprites.Get(tc.Name); ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(e.Width/float64(b.Dx()), e.Height/float64(b.Dy()))
		op.GeoM.Translate(e.Pos.X-e.Width/2, e.Pos.Y-e.Height/2)
		screen.DrawImage(img, op)
	} else {
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), radius, clr, true)
		if tc.Boss {
			vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), radius+3, 2, colorNoise, true)
		}
	}

	if e.ShieldHealth > 0 {
		vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), radius+5, 2, colorShield, true)
	}

	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		barWidth := e.Width
		barX := e.Pos.X - barWidth/2
		barY := e.Pos.Y - e.Height/2 - 8
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), 4, colorHealthBack, false)
		healthWidth := barWidth * float64(e.Health) / float64(e.MaxHealth)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(healthWidth), 4, colorHealth, false)
	}
}

func (r *Renderer) renderBook(screen *ebiten.Image, b *sim.Book) {
	clr := rgba(sim.GetBookConfig(b.Type).Color)
	if b.Mega {
		clr = colorMegaBook
	}
	vector.DrawFilledRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Width), float32(b.Height), clr, false)
	if b.Genre != sim.GenreNone {
		gc := rgba(sim.GetGenreConfig(b.Genre).Color)
		vector.DrawFilledRect(screen, float32(b.Pos.X), float32(b.Pos.Y), 4, float32(b.Height), gc, false)
	}
	vector.StrokeRect(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Width), float32(b.Height), 1, colorText, false)
}

func (r *Renderer) renderPowerUp(screen *ebiten.Image, p *sim.PowerUp) {
	pc := sim.GetPowerUpConfig(p.Type)
	if img, ok := r.sprites.Get(pc.Name); ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(p.Width/float64(b.Dx()), p.Height/float64(b.Dy()))
		op.GeoM.Translate(p.Pos.X-p.Width/2, p.Pos.Y-p.Height/2)
		screen.DrawImage(img, op)
		return
	}
	radius := float32(p.Width / 2)
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), radius, rgba(pc.Color), true)
	vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), radius, 2, colorText, true)
}
