package sim

// Rect is an axis-aligned rectangle in screen units
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// MenuItem is one selectable row of a menu screen
type MenuItem struct {
	Label string
	Rect  Rect
}

// Menu layout
const (
	menuItemWidth   = 300.0
	menuItemHeight  = 40.0
	menuItemSpacing = 50.0
	menuTop         = 200.0
)

// layoutMenu stacks labels in a centered column
func layoutMenu(width float64, labels []string) []MenuItem {
	items := make([]MenuItem, len(labels))
	x := width/2 - menuItemWidth/2
	for i, label := range labels {
		items[i] = MenuItem{
			Label: label,
			Rect: Rect{
				X: x,
				Y: menuTop + float64(i)*menuItemSpacing,
				W: menuItemWidth,
				H: menuItemHeight,
			},
		}
	}
	return items
}

// Main menu entries
const (
	MenuQuickPlay = iota
	MenuStory
	MenuSettings
	MenuQuit
)

var mainMenuLabels = []string{"Quick Play", "Story Mode", "Settings", "Quit"}

var gameOverLabels = []string{"Play Again", "Main Menu"}

// settingsBackLabel is appended after the rebindable actions
const settingsBackLabel = "Back"
