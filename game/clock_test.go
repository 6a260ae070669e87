package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockMeasuresWallTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := newFrameClock()
	c.now = func() time.Time { return now }

	assert.Equal(t, tick, c.Step(), "first step is one tick")

	now = now.Add(33 * time.Millisecond)
	assert.Equal(t, 33*time.Millisecond, c.Step())

	now = now.Add(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, c.Step())

	now = now.Add(3 * time.Second)
	assert.Equal(t, maxFrameGap, c.Step())

	now = now.Add(-time.Second)
	assert.Zero(t, c.Step(), "clock going backwards yields no time")
}
