package sim

import (
	log "github.com/sirupsen/logrus"

	"github.com/i-yam/boards-of-destiny/model"
)

// Landing reports one ball that finished its fall during a tick.
type Landing struct {
	Bin   int // terminal bin index
	Rank  int // 0-based occupancy order within the bin
	Color model.Color
	X, Y  float64 // rest position for the renderer
}

// Simulation owns the in-flight balls and the landed census for one run.
// Tick performs the whole per-frame transition. The spawn phase runs before
// the landing phase, so Competition-mode decisions for a freshly spawned
// ball always read the census as it stood before this tick's landings.
type Simulation struct {
	Mode      model.Mode
	Geometry  model.Geometry
	Balls     []*model.Ball // in flight only; landed balls are removed
	BinCounts []int         // landed balls per bin, reset only by Reset
	Spawned   int           // total spawned this run

	cfg        Config
	palette    []model.Color
	rng        RandomSource
	spawnTimer int
}

// New validates the mode up front and builds a fresh run. A nil rng falls
// back to a time-seeded source.
func New(cfg Config, mode model.Mode, rng RandomSource) (*Simulation, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewTimeSource()
	}
	g := cfg.Geometry()
	return &Simulation{
		Mode:      mode,
		Geometry:  g,
		Balls:     make([]*model.Ball, 0, cfg.MaxBalls),
		BinCounts: make([]int, g.Bins()),
		cfg:       cfg,
		palette:   model.PaletteFor(mode),
		rng:       rng,
	}, nil
}

// Spawn creates one ball from the current landed census, positioned at its
// entry waypoint with a freshly sampled speed and jittered palette color.
func (s *Simulation) Spawn() (*model.Ball, error) {
	choices, err := GenerateDecisions(s.Mode, s.Geometry.Rows, s.BinCounts, s.rng)
	if err != nil {
		return nil, err
	}
	path, bin := BuildTrajectory(choices, s.Geometry)
	base := s.palette[s.rng.Intn(len(s.palette))]
	b := &model.Ball{
		Choices:  choices,
		FinalBin: bin,
		Path:     path,
		Speed:    s.cfg.SpeedMin + s.rng.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin),
		X:        path[0].X,
		Y:        path[0].Y,
		Color:    base.Jitter(s.jitterDelta(), s.jitterDelta(), s.jitterDelta()),
	}
	s.Balls = append(s.Balls, b)
	s.Spawned++
	log.Debugf("spawned ball %d mode=%q bin=%d speed=%.3f", s.Spawned, s.Mode.Name(), bin, b.Speed)
	return b, nil
}

func (s *Simulation) jitterDelta() int {
	j := s.cfg.ColorJitter
	return s.rng.Intn(2*j+1) - j
}

// Tick runs one frame: maybe spawn, advance everything in flight, then
// record the balls that landed. Passing both flags false freezes the run
// (pause) without touching any state.
func (s *Simulation) Tick(spawnAllowed, advanceAllowed bool) []Landing {
	if spawnAllowed {
		s.spawnTimer++
		if s.spawnTimer >= s.cfg.SpawnInterval && s.Spawned < s.cfg.MaxBalls {
			s.spawnTimer = 0
			if _, err := s.Spawn(); err != nil {
				// mode and config were validated in New
				log.Errorf("spawn failed: %v", err)
			}
		}
	}
	if !advanceAllowed {
		return nil
	}
	for _, b := range s.Balls {
		b.Advance()
	}
	var landings []Landing
	inFlight := s.Balls[:0]
	for _, b := range s.Balls {
		if !b.Landed {
			inFlight = append(inFlight, b)
			continue
		}
		s.BinCounts[b.FinalBin]++
		rank := s.BinCounts[b.FinalBin] - 1
		landings = append(landings, Landing{
			Bin:   b.FinalBin,
			Rank:  rank,
			Color: b.Color,
			X:     s.Geometry.BinCenterX(b.FinalBin),
			Y:     s.Geometry.BinBottom - float64(rank)*s.Geometry.LandedStep - s.Geometry.LandedRadius,
		})
		log.Debugf("ball landed bin=%d rank=%d", b.FinalBin, rank)
	}
	s.Balls = inFlight
	return landings
}

// Done reports whether the run has spawned its full quota and every ball
// has landed.
func (s *Simulation) Done() bool {
	return s.Spawned >= s.cfg.MaxBalls && len(s.Balls) == 0
}

// Reset discards the in-flight set and zeroes the census in one step; a run
// restarted after Reset behaves like a brand new one.
func (s *Simulation) Reset() {
	s.Balls = s.Balls[:0]
	for i := range s.BinCounts {
		s.BinCounts[i] = 0
	}
	s.Spawned = 0
	s.spawnTimer = 0
	log.Infof("simulation reset mode=%q", s.Mode.Name())
}
