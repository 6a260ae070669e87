package sound

import (
	"sort"
	"strings"
	"time"
)

// Note is one tone of a cue, followed by an optional pause
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Gain     float64
	Gap      time.Duration
}

func note(freq float64, ms int, wave WaveType) Note {
	return Note{Freq: freq, Duration: time.Duration(ms) * time.Millisecond, Wave: wave, Gain: 0.6}
}

var cues = map[string][]Note{
	"throw":         {note(660, 40, WaveTriangle), note(880, 30, WaveTriangle)},
	"hit":           {note(220, 50, WaveSquare)},
	"shush":         {{Freq: 0, Duration: 180 * time.Millisecond, Wave: WaveNoise, Gain: 0.35}},
	"shield_block":  {note(1200, 60, WaveSine), note(900, 60, WaveSine)},
	"explosion":     {{Freq: 0, Duration: 350 * time.Millisecond, Wave: WaveNoise, Gain: 0.8}},
	"teleport":      {note(400, 40, WaveSine), note(800, 40, WaveSine), note(1600, 40, WaveSine)},
	"escape":        {note(180, 120, WaveSquare)},
	"wave_clear":    {note(523, 90, WaveSine), note(659, 90, WaveSine), note(784, 160, WaveSine)},
	"level_up":      {note(784, 80, WaveTriangle), note(988, 80, WaveTriangle), note(1175, 200, WaveTriangle)},
	"game_over":     {note(392, 200, WaveSquare), note(330, 200, WaveSquare), note(262, 400, WaveSquare)},
	"menu_navigate": {note(880, 30, WaveSine)},
	"menu_select":   {note(660, 40, WaveSine), note(990, 50, WaveSine)},
	"book_cycle":    {note(520, 35, WaveTriangle)},
	"rebind":        {note(740, 50, WaveSine), note(740, 50, WaveSine)},

	"defeat": {note(440, 60, WaveTriangle), note(330, 80, WaveTriangle)},
	"pickup": {note(660, 60, WaveSine), note(990, 90, WaveSine)},
}

// per-type pitch offsets for defeat and pickup cues
var pitch = map[string]float64{
	"student":           1.0,
	"animal":            0.9,
	"ghost":             1.3,
	"chaos_lord":        0.6,
	"literary_villain":  0.75,
	"book_worm":         1.1,
	"noise_demon":       0.5,
	"boss_monster":      0.45,
	"swarm_enemy":       1.5,
	"teleporting_ghost": 1.4,
	"shielded_knight":   0.8,
	"exploding_bomb":    0.7,

	"coffee":       1.0,
	"mega_book":    0.8,
	"silence_aura": 1.2,
	"time_freeze":  1.4,
	"shield":       0.9,
	"multi_shot":   1.1,
	"magnet":       0.7,
}

// Lookup returns the notes of a cue. Names like "defeat_ghost" or
// "pickup_coffee" reuse the family cue at a per-type pitch.
func Lookup(name string) ([]Note, bool) {
	if notes, ok := cues[name]; ok {
		return notes, true
	}

	family, kind, found := strings.Cut(name, "_")
	if !found {
		return nil, false
	}
	base, ok := cues[family]
	if !ok || (family != "defeat" && family != "pickup") {
		return nil, false
	}
	scale, ok := pitch[kind]
	if !ok {
		scale = 1
	}

	notes := make([]Note, len(base))
	for i, n := range base {
		n.Freq *= scale
		notes[i] = n
	}
	return notes, true
}

// Names lists every cue that can be synthesized, sorted
func Names() []string {
	var names []string
	for name := range cues {
		if name == "defeat" || name == "pickup" {
			continue
		}
		names = append(names, name)
	}
	for kind := range pitch {
		names = append(names, "defeat_"+kind, "pickup_"+kind)
	}
	sort.Strings(names)
	return names
}
