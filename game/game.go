package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"librarydefender/sim"
)

// tick is the nominal step at ebiten's 60 TPS. The session clock itself
// advances by measured wall time.
const tick = time.Second / 60

// Game adapts a sim.Session to ebiten's Update/Draw/Layout loop
type Game struct {
	config   Config
	session  *sim.Session
	bindings *Bindings
	renderer *Renderer
	hud      *HUD
	audio    *Audio
	dust     *Dust
	profiler *Profiler
	clock    *frameClock
	log      zerolog.Logger

	keys []ebiten.Key
}

// NewGame creates the shell around session. audio may be nil for a silent build.
func NewGame(config Config, session *sim.Session, bindings *Bindings, sprites *Sprites, audio *Audio, log zerolog.Logger) *Game {
	g := &Game{
		config:   config,
		session:  session,
		bindings: bindings,
		renderer: NewRenderer(sprites),
		hud:      NewHUD(),
		audio:    audio,
		dust:     NewDust(dustCount, float64(config.ScreenWidth), float64(config.ScreenHeight), sim.NewRand(time.Now().UnixNano())),
		clock:    newFrameClock(),
		log:      log,
		keys:     make([]ebiten.Key, 0, 8),
	}
	session.SettingsItems = bindings.Labels()
	if config.Profile {
		g.profiler = NewProfiler(config.ProfileDir, config.ProfileBudget, config.ProfileLength, config.ProfileBackoff, log)
	}
	GetDebugState().ShowOverlay = config.Debug
	return g
}

// Update handles input and advances the session by one tick
func (g *Game) Update() error {
	start := time.Now()
	dt := g.clock.Step()
	wasPlaying := g.session.State == sim.StatePlaying

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.handleShellKeys()

	if g.session.State == sim.StateSettings && g.session.PendingRebind != sim.NoRebind {
		g.captureRebind()
	} else {
		for _, ev := range g.bindings.Events(g.keys) {
			g.session.HandleEvent(ev)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.session.State != sim.StatePlaying {
			x, y := ebiten.CursorPosition()
			g.session.HandleEvent(sim.Event{Action: sim.ActionClick, Pos: sim.Vec{X: float64(x), Y: float64(y)}})
		}
	}

	if g.session.Quit {
		g.log.Info().Msg("quit from menu")
		return ebiten.Termination
	}

	var in sim.Input
	if g.session.State == sim.StatePlaying {
		in = g.playInput(wasPlaying)
	}
	g.session.Update(dt, in)

	if g.session.State != sim.StatePlaying {
		g.dust.Update(dt.Seconds())
	}

	if g.profiler != nil {
		g.profiler.Observe(time.Since(start))
	}
	return nil
}

func (g *Game) handleShellKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState := GetDebugState()
		debugState.ShowGrid = !debugState.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.audio != nil {
		muted := g.audio.ToggleMute()
		g.log.Debug().Bool("muted", muted).Msg("mute toggled")
	}
}

// captureRebind binds the first bindable key pressed this tick. Esc cancels.
func (g *Game) captureRebind() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.HandleEvent(sim.Event{Action: sim.ActionBack})
		return
	}
	key, ok := Capture(g.keys)
	if !ok {
		return
	}
	g.bindings.Rebind(Slot(g.session.PendingRebind), key)
	g.session.SettingsItems = g.bindings.Labels()
	g.session.FinishRebind()
}

// playInput reads keys and the mouse. A click only throws when the game was
// already running at the start of the frame, so the click that starts a run does not.
func (g *Game) playInput(wasPlaying bool) sim.Input {
	in := g.bindings.Input(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	clicked := wasPlaying && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	return MouseThrow(in, clicked, x, y)
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch {
	case s.State == sim.StatePlaying && s.Sim != nil:
		g.renderer.Render(screen, s.Sim, s.Clock())
		g.hud.DrawPlay(screen, s.Sim, s.Scores.Best(), g.muted(), s.Clock())
	default:
		screen.Fill(colorMenuBack)
		g.dust.Draw(screen)
		g.hud.DrawMenu(screen, s)
	}

	if GetDebugState().ShowOverlay {
		drawDebug(screen, s)
	}
}

func (g *Game) muted() bool {
	return g.audio != nil && g.audio.Muted()
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
