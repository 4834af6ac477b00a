package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigKeepsDefaultsForOmittedKeys(t *testing.T) {
	cfg, err := read(strings.NewReader("max_balls: 50\nspawn_interval: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxBalls)
	assert.Equal(t, 2, cfg.SpawnInterval)

	def := DefaultConfig()
	assert.Equal(t, def.Rows, cfg.Rows)
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.SpeedMin, cfg.SpeedMin)
	assert.Equal(t, def.ColorJitter, cfg.ColorJitter)
}

func TestReadConfigRejectsBadValues(t *testing.T) {
	for _, in := range []string{
		"rows: 0\n",
		"max_balls: -1\n",
		"spawn_interval: 0\n",
		"speed_min: 0\n",
		"speed_min: 0.1\nspeed_max: 0.05\n",
		"color_jitter: -3\n",
	} {
		_, err := read(strings.NewReader(in))
		assert.Equal(t, ErrBadConfig, err, "input %q", in)
	}
}

func TestReadConfigRejectsMalformedYaml(t *testing.T) {
	_, err := read(strings.NewReader("rows: [not a number\n"))
	require.Error(t, err)
}

func TestDefaultConfigGeometry(t *testing.T) {
	g := DefaultConfig().Geometry()
	assert.Equal(t, 10, g.Rows)
	assert.Equal(t, 11, g.Bins())
	assert.Equal(t, 300.0, g.CenterX)
	// bins start just under the last peg row and end above the window edge
	assert.Equal(t, 80.0+10*28+16, g.BinTop)
	assert.Equal(t, 655.0, g.BinBottom)
}
