package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexSplitsChannels(t *testing.T) {
	assert.Equal(t, Color{R: 0xfa, G: 0x36, B: 0x36}, Hex(0xfa3636))
	assert.Equal(t, Color{R: 0, G: 0, B: 0}, Hex(0))
	assert.Equal(t, Color{R: 255, G: 255, B: 255}, Hex(0xffffff))
}

func TestJitterShiftsAndClamps(t *testing.T) {
	c := Color{R: 100, G: 200, B: 50}
	assert.Equal(t, Color{R: 115, G: 185, B: 50}, c.Jitter(15, -15, 0))
	assert.Equal(t, Color{R: 255, G: 255, B: 0}, Color{R: 250, G: 250, B: 5}.Jitter(15, 15, -15))
	// pure: same deltas, same result
	assert.Equal(t, c.Jitter(3, -7, 9), c.Jitter(3, -7, 9))
}

func TestPaletteForCoversModes(t *testing.T) {
	for _, m := range []Mode{Classical, Pareto, Competition} {
		p := PaletteFor(m)
		assert.Len(t, p, 10, m.Name())
	}
	assert.Nil(t, PaletteFor(Mode(9)))
}

func TestAccentsDifferPerMode(t *testing.T) {
	seen := map[Color]bool{}
	for _, m := range []Mode{Classical, Pareto, Competition} {
		seen[AccentFor(m)] = true
	}
	assert.Len(t, seen, 3)
}
