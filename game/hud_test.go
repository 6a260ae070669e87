package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberGrouping(t *testing.T) {
	h := NewHUD()
	assert.Equal(t, "1,234,567", h.Number(1234567))
	assert.Equal(t, "40", h.Number(40))
}
