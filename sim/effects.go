package sim

import "time"

// Effect names a timed status effect
type Effect int

const (
	EffectSpeedBoost Effect = iota
	EffectMegaBook
	EffectSilenceAura
	EffectTimeFreeze // freezes enemy movement only
	EffectShield
	EffectMultiShot
	EffectMagnet
	EffectCount
)

// EffectDuration returns the fixed duration of an effect
func EffectDuration(e Effect) time.Duration {
	switch e {
	case EffectSpeedBoost:
		return 5000 * time.Millisecond
	case EffectMegaBook:
		return 3000 * time.Millisecond
	case EffectSilenceAura:
		return 8000 * time.Millisecond
	case EffectTimeFreeze:
		return 4000 * time.Millisecond
	case EffectShield:
		return 5000 * time.Millisecond
	case EffectMultiShot:
		return 4000 * time.Millisecond
	case EffectMagnet:
		return 6000 * time.Millisecond
	default:
		return 0
	}
}

// String returns a display label
func (e Effect) String() string {
	switch e {
	case EffectSpeedBoost:
		return "COFFEE BOOST!"
	case EffectMegaBook:
		return "MEGA BOOK!"
	case EffectSilenceAura:
		return "SILENCE AURA"
	case EffectTimeFreeze:
		return "TIME FREEZE"
	case EffectShield:
		return "SHIELD"
	case EffectMultiShot:
		return "MULTI-SHOT"
	case EffectMagnet:
		return "MAGNET"
	default:
		return "?"
	}
}

// Effects tracks one activation timestamp per effect. An effect is active
// while now-activation < duration; activating again resets the timestamp.
type Effects struct {
	activatedAt [EffectCount]time.Duration
	activated   [EffectCount]bool
}

// Activate starts or refreshes an effect at now
func (fx *Effects) Activate(e Effect, now time.Duration) {
	if e < 0 || e >= EffectCount {
		return
	}
	fx.activatedAt[e] = now
	fx.activated[e] = true
}

// IsActive reports whether an effect is active at now
func (fx *Effects) IsActive(e Effect, now time.Duration) bool {
	if e < 0 || e >= EffectCount || !fx.activated[e] {
		return false
	}
	return now-fx.activatedAt[e] < EffectDuration(e)
}

// Remaining returns how long an effect stays active, zero if inactive
func (fx *Effects) Remaining(e Effect, now time.Duration) time.Duration {
	if !fx.IsActive(e, now) {
		return 0
	}
	return EffectDuration(e) - (now - fx.activatedAt[e])
}

// ActivatedAt returns the last activation time and whether the effect was ever activated
func (fx *Effects) ActivatedAt(e Effect) (time.Duration, bool) {
	if e < 0 || e >= EffectCount {
		return 0, false
	}
	return fx.activatedAt[e], fx.activated[e]
}

// Reset clears every timer
func (fx *Effects) Reset() {
	*fx = Effects{}
}
