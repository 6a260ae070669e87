package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"librarydefender/sim"
)

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowOverlay bool // TPS, entity counts and session id
	ShowGrid    bool // maze tile grid
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// debugLines describes the session for the overlay
func debugLines(s *sim.Session) string {
	out := fmt.Sprintf("TPS %.0f  FPS %.0f\nstate %s  clock %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.State, s.Clock().Truncate(time.Millisecond))
	if g := s.Sim; g != nil {
		out += fmt.Sprintf("\nsession %s\nenemies %d  books %d  powerups %d  particles %d\nticks %d",
			g.SessionID, len(g.Enemies), len(g.Books), len(g.PowerUps), len(g.Particles), g.Ticks)
	}
	return out
}

func drawDebug(screen *ebiten.Image, s *sim.Session) {
	ebitenutil.DebugPrintAt(screen, debugLines(s), 4, screen.Bounds().Dy()-80)
}
