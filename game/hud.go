package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"librarydefender/sim"
)

const lineHeight = 16

// HUD draws text overlays: the in-play status line and the menu screens
type HUD struct {
	face    text.Face
	printer *message.Printer
}

// NewHUD creates a HUD using the basic bitmap font
func NewHUD() *HUD {
	return &HUD{
		face:    text.NewGoXFace(basicfont.Face7x13),
		printer: message.NewPrinter(language.English),
	}
}

// Number formats n with digit grouping
func (h *HUD) Number(n int) string {
	return h.printer.Sprintf("%d", n)
}

func (h *HUD) draw(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	op.PrimaryAlign = align
	text.Draw(screen, s, h.face, op)
}

// DrawPlay draws the status overlay over the play area
func (h *HUD) DrawPlay(screen *ebiten.Image, s *sim.Simulation, best int, muted bool, now time.Duration) {
	width := float64(screen.Bounds().Dx())

	status := fmt.Sprintf("Score %s   Best %s   Book %s", h.Number(s.Score), h.Number(max(best, s.Score)), s.BookType)
	if s.Rules().Waves {
		status += fmt.Sprintf("   Wave %d", s.Wave)
	}
	if s.Rules().Genres {
		status += fmt.Sprintf("   Level %d (%d genres)", s.ReadingLevel, len(s.Genres))
	}
	if muted {
		status += "   [muted]"
	}
	h.draw(screen, status, 10, 8, colorText, text.AlignStart)

	h.drawNoise(screen, s, width)

	y := 30.0
	for _, e := range s.ActiveEffects(now) {
		left := s.Effects.Remaining(e, now).Seconds()
		h.draw(screen, fmt.Sprintf("%s %.1fs", e, left), 10, y, colorText, text.AlignStart)
		y += lineHeight
	}
	if !s.ShushReady(now) {
		h.draw(screen, "shush recharging", 10, y, colorText, text.AlignStart)
	}

	my := float64(screen.Bounds().Dy()) / 3
	for _, m := range s.Messages {
		h.draw(screen, m.Text, width/2, my, colorHighlight, text.AlignCenter)
		my += lineHeight * 1.5
	}
}

func (h *HUD) drawNoise(screen *ebiten.Image, s *sim.Simulation, width float64) {
	const barW, barH = 150.0, 10.0
	x, y := width-barW-10, 10.0
	ratio := float64(s.Noise) / float64(max(1, s.Config().MaxNoise))

	vector.DrawFilledRect(screen, float32(x), float32(y), barW, barH, colorNoiseBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW*min(1, ratio)), barH, colorNoise, false)
	h.draw(screen, "Noise", x-8, y-3, colorText, text.AlignEnd)
}

var screenTitles = map[sim.State]string{
	sim.StateMenu:             "LIBRARY DEFENDER",
	sim.StateChapterSelect:    "Choose a Chapter",
	sim.StateCharacterSelect:  "Choose your Librarian",
	sim.StateDifficultySelect: "Choose a Difficulty",
	sim.StateSettings:         "Key Bindings",
	sim.StateGameOver:         "The Library Fell Silent... Loudly",
}

// DrawMenu draws the menu screen of the session's current state
func (h *HUD) DrawMenu(screen *ebiten.Image, s *sim.Session) {
	width := float64(screen.Bounds().Dx())
	h.draw(screen, screenTitles[s.State], width/2, 80, colorMenuText, text.AlignCenter)

	switch s.State {
	case sim.StateMenu:
		h.draw(screen, "Keep the noise down. Throw books at anything that makes a sound.", width/2, 120, colorMenuText, text.AlignCenter)
	case sim.StateChapterSelect:
		if s.Cursor < len(sim.StoryChapters) {
			blurb := sim.GetChapterConfig(sim.StoryChapters[s.Cursor]).Blurb
			h.draw(screen, blurb, width/2, 120, colorMenuText, text.AlignCenter)
		}
	case sim.StateGameOver:
		h.drawGameOver(screen, s, width)
	case sim.StateSettings:
		if s.PendingRebind != sim.NoRebind {
			h.draw(screen, "Press a key for "+Slot(s.PendingRebind).String()+" (Esc cancels)", width/2, 120, colorHighlight, text.AlignCenter)
		}
	}

	for i, item := range s.Items() {
		r := item.Rect
		clr := colorItem
		if i == s.Cursor {
			clr = colorHighlight
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		h.draw(screen, label, r.X+r.W/2, r.Y+r.H/2-7, colorMenuText, text.AlignCenter)
	}

	help := "Up/Down to move, Enter or number to pick, Esc to go back, M to mute"
	h.draw(screen, help, width/2, float64(screen.Bounds().Dy())-30, colorMenuText, text.AlignCenter)
}

func (h *HUD) drawGameOver(screen *ebiten.Image, s *sim.Session, width float64) {
	if s.Sim == nil {
		return
	}
	lines := []string{fmt.Sprintf("Score %s  (%s)", h.Number(s.Sim.Score), s.Sim.Cause)}
	if s.LastRank > 0 {
		lines = append(lines, fmt.Sprintf("New high score! Rank #%d", s.LastRank))
	}
	lines = append(lines, "R to play again")
	h.draw(screen, strings.Join(lines, "\n"), width/2, 110, colorMenuText, text.AlignCenter)

	// high-score table along the right edge
	var table strings.Builder
	table.WriteString("High Scores\n")
	for i, score := range s.Scores.Scores() {
		fmt.Fprintf(&table, "%2d. %s\n", i+1, h.Number(score))
	}
	h.draw(screen, table.String(), width-20, 140, colorMenuText, text.AlignEnd)
}
