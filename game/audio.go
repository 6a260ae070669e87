package game

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"librarydefender/sound"
)

// Audio plays synthesized cues through ebiten's audio context. It satisfies
// sim.SoundPlayer. Cues are synthesized on first use and cached.
type Audio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	cache  map[string][]byte
	volume float64
	muted  bool
	log    zerolog.Logger
}

// NewAudio creates the process-wide audio context
func NewAudio(volume float64, muted bool, log zerolog.Logger) *Audio {
	return &Audio{
		ctx:    audio.NewContext(int(sound.SampleRate)),
		cache:  make(map[string][]byte),
		volume: volume,
		muted:  muted,
		log:    log,
	}
}

// Play starts the named cue. Unknown cues are logged once and ignored.
func (a *Audio) Play(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.muted || a.volume <= 0 {
		return
	}

	pcm, ok := a.cache[name]
	if !ok {
		var err error
		pcm, err = sound.Synthesize(name, 1)
		if err != nil {
			a.log.Warn().Err(err).Msg("cannot synthesize sound")
		}
		a.cache[name] = pcm
	}
	if len(pcm) == 0 {
		return
	}

	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.volume)
	p.Play()
}

// ToggleMute flips mute and returns the new state
func (a *Audio) ToggleMute() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = !a.muted
	return a.muted
}

// Muted reports whether playback is muted
func (a *Audio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}
