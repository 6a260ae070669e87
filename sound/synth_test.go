package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarydefender/sim"
)

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, SampleRate)

	pcm := Encode(osc)

	// 4 bytes per stereo frame
	assert.Len(t, pcm, SampleRate.N(10*time.Millisecond)*4)
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(220, 20*time.Millisecond, wave, SampleRate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		require.True(t, ok)
		require.Equal(t, 100, n)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1])
		}
	}
}

func TestSynthesizeCue(t *testing.T) {
	pcm, err := Synthesize("wave_clear", 1)
	require.NoError(t, err)

	var want time.Duration
	notes, _ := Lookup("wave_clear")
	for _, n := range notes {
		want += n.Duration + n.Gap
	}
	assert.InDelta(t, SampleRate.N(want)*4, len(pcm), 4*float64(len(notes)))

	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		peak = max(peak, v, -v)
	}
	assert.Positive(t, peak)
}

func TestSynthesizeSilent(t *testing.T) {
	pcm, err := Synthesize("hit", 0)
	require.NoError(t, err)
	for _, b := range pcm {
		require.Zero(t, b)
	}
}

func TestUnknownCue(t *testing.T) {
	_, err := Synthesize("kazoo", 1)
	assert.Error(t, err)

	_, ok := Lookup("victory_lap")
	assert.False(t, ok)
}

func TestFamilyCuesArePitched(t *testing.T) {
	demon, ok := Lookup("defeat_noise_demon")
	require.True(t, ok)
	swarm, ok := Lookup("defeat_swarm_enemy")
	require.True(t, ok)
	assert.Less(t, demon[0].Freq, swarm[0].Freq)

	unknown, ok := Lookup("pickup_mystery")
	require.True(t, ok)
	assert.Equal(t, cues["pickup"][0].Freq, unknown[0].Freq)
}

func TestEveryGameCueResolves(t *testing.T) {
	names := []string{
		sim.SoundThrow, sim.SoundHit, sim.SoundShush, sim.SoundShieldBlock,
		sim.SoundExplosion, sim.SoundTeleport, sim.SoundEscape, sim.SoundWaveClear,
		sim.SoundLevelUp, sim.SoundGameOver, sim.SoundMenuNavigate, sim.SoundMenuSelect,
		sim.SoundBookCycle, sim.SoundRebindCapture,
	}
	for t2 := sim.EnemyType(0); t2 < sim.EnemyTypeCount; t2++ {
		names = append(names, sim.SoundDefeatPrefix+t2.String())
	}
	for p := sim.PowerUpType(0); p < sim.PowerUpTypeCount; p++ {
		names = append(names, sim.SoundPickupPrefix+p.String())
	}

	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Subset(t, Names(), names[len(names)-1:])
}
