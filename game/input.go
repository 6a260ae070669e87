package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"librarydefender/sim"
)

// Slot is one rebindable action
type Slot int

const (
	SlotUp Slot = iota
	SlotDown
	SlotLeft
	SlotRight
	SlotThrow
	SlotShush
	SlotCycleBook
	SlotCount
)

var slotNames = [SlotCount]string{
	SlotUp:        "Move Up",
	SlotDown:      "Move Down",
	SlotLeft:      "Move Left",
	SlotRight:     "Move Right",
	SlotThrow:     "Throw",
	SlotShush:     "Shush",
	SlotCycleBook: "Cycle Book",
}

// String returns the slot display name
func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "Unknown"
	}
	return slotNames[s]
}

// Bindings maps action slots to keys. Arrow keys always move as well.
type Bindings struct {
	keys [SlotCount]ebiten.Key
}

// DefaultBindings returns WASD movement, space to throw, Q to shush and Tab to cycle books
func DefaultBindings() *Bindings {
	return &Bindings{keys: [SlotCount]ebiten.Key{
		SlotUp:        ebiten.KeyW,
		SlotDown:      ebiten.KeyS,
		SlotLeft:      ebiten.KeyA,
		SlotRight:     ebiten.KeyD,
		SlotThrow:     ebiten.KeySpace,
		SlotShush:     ebiten.KeyQ,
		SlotCycleBook: ebiten.KeyTab,
	}}
}

// Key returns the key bound to slot
func (b *Bindings) Key(slot Slot) ebiten.Key {
	return b.keys[slot]
}

// Rebind binds key to slot. A slot already holding key takes the old key of slot.
func (b *Bindings) Rebind(slot Slot, key ebiten.Key) {
	if slot < 0 || slot >= SlotCount {
		return
	}
	old := b.keys[slot]
	for i, k := range b.keys {
		if k == key {
			b.keys[i] = old
		}
	}
	b.keys[slot] = key
}

// Labels returns the settings menu entries, one per slot
func (b *Bindings) Labels() []string {
	labels := make([]string, SlotCount)
	for s := Slot(0); s < SlotCount; s++ {
		labels[s] = fmt.Sprintf("%s: %s", s, b.keys[s])
	}
	return labels
}

// reserved keys never become bindings
func reserved(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyF1, ebiten.KeyM:
		return true
	}
	return false
}

// Input samples one tick of play input. pressed reports held keys,
// justPressed keys that went down this tick.
func (b *Bindings) Input(pressed, justPressed func(ebiten.Key) bool) sim.Input {
	var in sim.Input
	if pressed(b.keys[SlotLeft]) || pressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if pressed(b.keys[SlotRight]) || pressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if pressed(b.keys[SlotUp]) || pressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if pressed(b.keys[SlotDown]) || pressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}
	in.Throw = pressed(b.keys[SlotThrow])
	in.Shush = pressed(b.keys[SlotShush])
	in.CycleBook = justPressed(b.keys[SlotCycleBook])
	return in
}

var digits = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1, ebiten.KeyDigit2: 2, ebiten.KeyDigit3: 3,
	ebiten.KeyDigit4: 4, ebiten.KeyDigit5: 5, ebiten.KeyDigit6: 6,
	ebiten.KeyDigit7: 7, ebiten.KeyDigit8: 8, ebiten.KeyDigit9: 9,
}

// Events translates this tick's key presses into state machine events
func (b *Bindings) Events(just []ebiten.Key) []sim.Event {
	var events []sim.Event
	for _, k := range just {
		switch {
		case k == ebiten.KeyArrowUp || k == b.keys[SlotUp]:
			events = append(events, sim.Event{Action: sim.ActionUp})
		case k == ebiten.KeyArrowDown || k == b.keys[SlotDown]:
			events = append(events, sim.Event{Action: sim.ActionDown})
		case k == ebiten.KeyEnter || k == ebiten.KeyNumpadEnter:
			events = append(events, sim.Event{Action: sim.ActionConfirm})
		case k == ebiten.KeyEscape:
			events = append(events, sim.Event{Action: sim.ActionBack})
		case k == ebiten.KeyR:
			events = append(events, sim.Event{Action: sim.ActionRestart})
		default:
			if n, ok := digits[k]; ok {
				events = append(events, sim.Event{Action: sim.ActionNumber, Number: n})
			}
		}
	}
	return events
}

// Capture returns the first key in just that can be bound
func Capture(just []ebiten.Key) (ebiten.Key, bool) {
	for _, k := range just {
		if !reserved(k) {
			return k, true
		}
	}
	return 0, false
}

// MouseThrow aims a throw at the cursor on the frame the button goes down.
// Holding the button does not repeat the throw.
func MouseThrow(in sim.Input, clicked bool, x, y int) sim.Input {
	if !clicked {
		return in
	}
	in.Throw = true
	in.HasAim = true
	in.Aim = sim.Vec{X: float64(x), Y: float64(y)}
	return in
}
