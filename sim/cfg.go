package sim

import (
	"errors"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/i-yam/boards-of-destiny/model"
)

// ErrBadConfig is returned for config values the board cannot work with.
var ErrBadConfig = errors.New("bad board config")

// Config gathers every tunable the board needs: window, board geometry,
// spawn cadence and ball sampling. Loaded once, passed by value, never
// mutated by the core.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Rows        int     `yaml:"rows"`
	PegSpacingX float64 `yaml:"peg_spacing_x"`
	PegSpacingY float64 `yaml:"peg_spacing_y"`
	BoardTop    float64 `yaml:"board_top"`

	PegRadius    float64 `yaml:"peg_radius"`
	BallRadius   float64 `yaml:"ball_radius"`
	LandedRadius float64 `yaml:"landed_radius"`
	LandedStep   float64 `yaml:"landed_step"`

	SpawnInterval int     `yaml:"spawn_interval"` // ticks between spawns
	MaxBalls      int     `yaml:"max_balls"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	ColorJitter   int     `yaml:"color_jitter"` // per-channel color delta bound
}

// DefaultConfig mirrors the classic 600x680 board layout.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        680,
		Rows:          10,
		PegSpacingX:   32,
		PegSpacingY:   28,
		BoardTop:      80,
		PegRadius:     3,
		BallRadius:    3,
		LandedRadius:  2,
		LandedStep:    5,
		SpawnInterval: 4,
		MaxBalls:      200,
		SpeedMin:      0.028,
		SpeedMax:      0.042,
		ColorJitter:   15,
	}
}

// Load reads a yaml config file; anything left out keeps its default.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()
	return read(file)
}

func read(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Rows < 1 || c.Width < 1 || c.Height < 1 {
		return ErrBadConfig
	}
	if c.SpawnInterval < 1 || c.MaxBalls < 1 {
		return ErrBadConfig
	}
	if c.SpeedMin <= 0 || c.SpeedMax < c.SpeedMin {
		return ErrBadConfig
	}
	if c.ColorJitter < 0 {
		return ErrBadConfig
	}
	return nil
}

// Geometry derives the immutable board layout from the config numbers.
func (c Config) Geometry() model.Geometry {
	return model.Geometry{
		Rows:         c.Rows,
		PegSpacingX:  c.PegSpacingX,
		PegSpacingY:  c.PegSpacingY,
		BoardTop:     c.BoardTop,
		CenterX:      float64(c.Width) / 2,
		PegRadius:    c.PegRadius,
		BallRadius:   c.BallRadius,
		LandedRadius: c.LandedRadius,
		LandedStep:   c.LandedStep,
		BinTop:       c.BoardTop + float64(c.Rows)*c.PegSpacingY + 16,
		BinBottom:    float64(c.Height) - 25,
		EntryLift:    14,
		NudgePad:     2,
		BinDrop:      10,
	}
}
