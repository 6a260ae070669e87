package sim

// Input is one tick's worth of player intent, sampled by the shell before
// the tick runs. Any input device (keyboard, mouse, scripted autopilot)
// produces this.
type Input struct {
	// MoveX and MoveY are -1, 0 or 1
	MoveX, MoveY int

	// Throw requests a book; with HasAim it flies at Aim, otherwise along the facing
	Throw  bool
	HasAim bool
	Aim    Vec

	Shush     bool
	CycleBook bool
}

// InputProvider yields the next tick's input
type InputProvider interface {
	Next(s *Simulation) Input
}

// keyboardThrowReach is how far ahead of the player a keyboard throw aims
const keyboardThrowReach = 100.0
