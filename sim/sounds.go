package sim

// SoundPlayer receives fire-and-forget sound cues. Implementations must not
// touch simulation state.
type SoundPlayer interface {
	Play(name string)
}

// Sound cue names. Per-type cues are built from these prefixes plus the
// enemy or power-up type name, e.g. "defeat_ghost" or "pickup_coffee".
const (
	SoundThrow         = "throw"
	SoundHit           = "hit"
	SoundShush         = "shush"
	SoundDefeatPrefix  = "defeat_"
	SoundPickupPrefix  = "pickup_"
	SoundShieldBlock   = "shield_block"
	SoundExplosion     = "explosion"
	SoundTeleport      = "teleport"
	SoundEscape        = "escape"
	SoundWaveClear     = "wave_clear"
	SoundLevelUp       = "level_up"
	SoundGameOver      = "game_over"
	SoundMenuNavigate  = "menu_navigate"
	SoundMenuSelect    = "menu_select"
	SoundBookCycle     = "book_cycle"
	SoundRebindCapture = "rebind"
)

type nopSounds struct{}

func (nopSounds) Play(string) {}

// SoundFunc adapts a function to SoundPlayer
type SoundFunc func(name string)

// Play calls f(name)
func (f SoundFunc) Play(name string) { f(name) }
