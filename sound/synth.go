// Package sound synthesizes the game's named sound cues into 16-bit PCM.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is rendered at
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates one wave at a fixed frequency for a fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer for a single tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a short linear attack and a release over the tail of a stream
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &fade{
		streamer: s,
		attack:   min(rate.N(5*time.Millisecond), total/4),
		release:  total / 2,
		total:    total,
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if start := f.total - f.release; f.release > 0 && f.position >= start {
			vol = math.Max(0, float64(f.total-f.position)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer builds the beep stream for a cue at the given linear volume
func Streamer(name string, volume float64) (beep.Streamer, error) {
	notes, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", name)
	}

	parts := make([]beep.Streamer, 0, 2*len(notes))
	for _, n := range notes {
		osc, err := tone(n)
		if err != nil {
			return nil, fmt.Errorf("sound %q: %w", name, err)
		}
		parts = append(parts, newVolume(newFade(osc, n.Duration, SampleRate), n.Gain))
		if n.Gap > 0 {
			parts = append(parts, beep.Silence(SampleRate.N(n.Gap)))
		}
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// tone uses beep's sine generator for pure tones and the local oscillator
// for the other shapes
func tone(n Note) (beep.Streamer, error) {
	if n.Wave != WaveSine {
		return NewOscillator(n.Freq, n.Duration, n.Wave, SampleRate), nil
	}
	sine, err := generators.SineTone(SampleRate, n.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(SampleRate.N(n.Duration), sine), nil
}

// Synthesize renders a cue as interleaved little-endian 16-bit stereo PCM
func Synthesize(name string, volume float64) ([]byte, error) {
	s, err := Streamer(name, volume)
	if err != nil {
		return nil, err
	}
	return Encode(s), nil
}

// Encode drains a streamer into interleaved little-endian 16-bit stereo PCM
func Encode(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
