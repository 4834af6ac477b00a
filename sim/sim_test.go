package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-yam/boards-of-destiny/model"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 1
	cfg.MaxBalls = 40
	cfg.SpeedMin = 0.2
	cfg.SpeedMax = 0.3
	return cfg
}

func TestNewRejectsInvalidMode(t *testing.T) {
	_, err := New(DefaultConfig(), model.Mode(0), NewSeededSource(1))
	require.Equal(t, ErrInvalidMode, err)
	_, err = New(DefaultConfig(), model.Mode(42), NewSeededSource(1))
	require.Equal(t, ErrInvalidMode, err)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBalls = 0
	_, err := New(cfg, model.Classical, NewSeededSource(1))
	require.Equal(t, ErrBadConfig, err)
}

func TestSpawnCadenceAndCap(t *testing.T) {
	cfg := fastConfig()
	cfg.SpawnInterval = 4
	cfg.MaxBalls = 2
	s, err := New(cfg, model.Classical, NewSeededSource(5))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		s.Tick(true, true)
	}
	assert.Equal(t, 0, s.Spawned)
	s.Tick(true, true)
	assert.Equal(t, 1, s.Spawned)
	for i := 0; i < 4; i++ {
		s.Tick(true, true)
	}
	assert.Equal(t, 2, s.Spawned)

	// quota reached: cadence keeps ticking but nothing more spawns
	for i := 0; i < 20; i++ {
		s.Tick(true, true)
	}
	assert.Equal(t, 2, s.Spawned)
}

func TestSpawnedBallStartsAtEntryPoint(t *testing.T) {
	cfg := fastConfig()
	s, err := New(cfg, model.Pareto, NewSeededSource(8))
	require.NoError(t, err)
	b, err := s.Spawn()
	require.NoError(t, err)

	g := cfg.Geometry()
	assert.Equal(t, g.CenterX, b.X)
	assert.Equal(t, g.BoardTop-g.EntryLift, b.Y)
	assert.Equal(t, 0, b.Segment)
	assert.Equal(t, 0.0, b.T)
	assert.False(t, b.Landed)
	assert.True(t, b.Speed >= cfg.SpeedMin && b.Speed < cfg.SpeedMax)
	require.Len(t, b.Path, g.Rows+2)
	assert.Equal(t, terminalBin(b.Choices), b.FinalBin)
}

func TestRunToCompletionCountsEveryBall(t *testing.T) {
	cfg := fastConfig()
	s, err := New(cfg, model.Competition, NewSeededSource(13))
	require.NoError(t, err)

	perBin := make([]int, cfg.Rows+1)
	total := 0
	for tick := 0; tick < 10000 && !s.Done(); tick++ {
		for _, l := range s.Tick(true, true) {
			require.True(t, l.Bin >= 0 && l.Bin <= cfg.Rows)
			// ranks come out in occupancy order per bin
			assert.Equal(t, perBin[l.Bin], l.Rank)
			perBin[l.Bin]++
			total++

			g := s.Geometry
			assert.Equal(t, g.BinCenterX(l.Bin), l.X)
			assert.Equal(t, g.BinBottom-float64(l.Rank)*g.LandedStep-g.LandedRadius, l.Y)
		}
	}
	require.True(t, s.Done(), "run did not finish")
	assert.Equal(t, cfg.MaxBalls, total)
	assert.Equal(t, perBin, s.BinCounts)

	landed := 0
	for _, n := range s.BinCounts {
		landed += n
	}
	assert.Equal(t, cfg.MaxBalls, landed)
	assert.Empty(t, s.Balls)
}

func TestPausedTickFreezesEverything(t *testing.T) {
	cfg := fastConfig()
	s, err := New(cfg, model.Classical, NewSeededSource(21))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s.Tick(true, true)
	}
	require.NotEmpty(t, s.Balls)

	spawned := s.Spawned
	counts := append([]int(nil), s.BinCounts...)
	type pos struct{ x, y float64 }
	positions := make([]pos, len(s.Balls))
	for i, b := range s.Balls {
		positions[i] = pos{b.X, b.Y}
	}

	for i := 0; i < 25; i++ {
		assert.Nil(t, s.Tick(false, false))
	}
	assert.Equal(t, spawned, s.Spawned)
	assert.Equal(t, counts, s.BinCounts)
	for i, b := range s.Balls {
		assert.Equal(t, positions[i].x, b.X)
		assert.Equal(t, positions[i].y, b.Y)
	}
}

func TestResetClearsRunState(t *testing.T) {
	cfg := fastConfig()
	s, err := New(cfg, model.Competition, NewSeededSource(34))
	require.NoError(t, err)
	landed := 0
	for tick := 0; tick < 10000 && landed == 0; tick++ {
		landed += len(s.Tick(true, true))
	}
	require.NotZero(t, landed)

	s.Reset()
	assert.Empty(t, s.Balls)
	assert.Equal(t, 0, s.Spawned)
	for _, n := range s.BinCounts {
		assert.Zero(t, n)
	}
	assert.False(t, s.Done())
}

func TestResetRestoresFairCompetitionStart(t *testing.T) {
	// a first-row draw just under 0.5 loses against pressure from five
	// landed competitors, but wins on the fair coin after a reset
	src := &scriptSource{vals: []float64{0.499}}
	s, err := New(fastConfig(), model.Competition, src)
	require.NoError(t, err)
	s.BinCounts[3] = 5

	b, err := s.Spawn()
	require.NoError(t, err)
	assert.Equal(t, 0, b.Choices[0])

	s.Reset()
	b, err = s.Spawn()
	require.NoError(t, err)
	assert.Equal(t, 1, b.Choices[0])
}

func TestClassicalAllLeftBallRunsToBinZero(t *testing.T) {
	// every draw at 0.9 loses the fair coin, so the ball goes left ten
	// times and must come to rest at the center of bin 0
	src := &scriptSource{vals: []float64{0.9}}
	cfg := fastConfig()
	cfg.MaxBalls = 1
	s, err := New(cfg, model.Classical, src)
	require.NoError(t, err)

	var landings []Landing
	for tick := 0; tick < 10000 && !s.Done(); tick++ {
		landings = append(landings, s.Tick(true, true)...)
	}
	require.Len(t, landings, 1)
	assert.Equal(t, 0, landings[0].Bin)
	assert.Equal(t, 0, landings[0].Rank)

	g := s.Geometry
	assert.Equal(t, g.BinCenterX(0), landings[0].X)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, s.BinCounts)
}

func TestSpawnColorComesFromModePalette(t *testing.T) {
	cfg := fastConfig()
	cfg.ColorJitter = 0
	s, err := New(cfg, model.Pareto, NewSeededSource(55))
	require.NoError(t, err)
	b, err := s.Spawn()
	require.NoError(t, err)
	assert.Contains(t, model.PalettePareto, b.Color)
}
