package game

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestProfiler(t *testing.T) (*Profiler, *time.Time, *[]string) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var captured []string

	p := NewProfiler(t.TempDir(), 30*time.Millisecond, time.Second, 10*time.Second, zerolog.Nop())
	p.now = func() time.Time { return clock }
	p.capture = func(name string) {
		captured = append(captured, name)
		p.done()
	}
	return p, &clock, &captured
}

func TestProfilerIgnoresFastTicks(t *testing.T) {
	p, _, captured := newTestProfiler(t)

	assert.False(t, p.Observe(30*time.Millisecond))
	assert.Empty(t, *captured)
}

func TestProfilerCapturesSlowTick(t *testing.T) {
	p, _, captured := newTestProfiler(t)

	assert.True(t, p.Observe(45*time.Millisecond))
	assert.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0], "slow-tick-20240101-120000-45ms")
	assert.False(t, p.IsProfiling())
}

func TestProfilerCooldown(t *testing.T) {
	p, clock, captured := newTestProfiler(t)

	assert.True(t, p.Observe(time.Second))
	*clock = clock.Add(5 * time.Second)
	assert.False(t, p.Observe(time.Second))
	*clock = clock.Add(6 * time.Second)
	assert.True(t, p.Observe(time.Second))
	assert.Len(t, *captured, 2)
}

func TestProfilerSkipsWhileCapturing(t *testing.T) {
	p, clock, _ := newTestProfiler(t)
	p.capture = func(string) {} // never finishes

	assert.True(t, p.Observe(time.Second))
	*clock = clock.Add(time.Minute)
	assert.True(t, p.IsProfiling())
	assert.False(t, p.Observe(time.Second))
}
