package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"

	"github.com/i-yam/boards-of-destiny/model"
	"github.com/i-yam/boards-of-destiny/sim"
)

type GameState int

const (
	MODE_SELECT GameState = iota + 1
	RUNNING
	PAUSED
)

func (s GameState) Name() string {
	switch s {
	case MODE_SELECT:
		return "MODE_SELECT"
	case RUNNING:
		return "RUNNING"
	case PAUSED:
		return "PAUSED"
	default:
		return fmt.Sprintf("N/A(%d)", int(s))
	}
}

// errQuit makes ebiten.Run return cleanly on user exit.
var errQuit = errors.New("quit")

const coinRadius = 28

type Game struct {
	State GameState
	Cfg   sim.Config
	Sim   *sim.Simulation
	Rng   sim.RandomSource

	Tweens     map[*gween.Tween]Action
	pulseTween *gween.Tween

	geometry model.Geometry
	pegs     []model.Point
	landed   []sim.Landing

	titleAlpha float64
	pauseAlpha float64

	ballDisc   *ebiten.Image
	pegDisc    *ebiten.Image
	pegGlint   *ebiten.Image
	landedDisc *ebiten.Image
	coinGold   *ebiten.Image
	coinSilver *ebiten.Image
}

func NewGame(cfg sim.Config, rng sim.RandomSource) *Game {
	geo := cfg.Geometry()
	pegs := make([]model.Point, 0, geo.Rows*(geo.Rows+1)/2)
	for row := 0; row < geo.Rows; row++ {
		for col := 0; col <= row; col++ {
			pegs = append(pegs, geo.PegPos(row, col))
		}
	}
	glintRadius := int(geo.PegRadius) / 2
	if glintRadius < 1 {
		glintRadius = 1
	}
	g := &Game{
		State:      MODE_SELECT,
		Cfg:        cfg,
		Rng:        rng,
		Tweens:     make(map[*gween.Tween]Action),
		geometry:   geo,
		pegs:       pegs,
		titleAlpha: 1,
		ballDisc:   discImage(int(geo.BallRadius)),
		pegDisc:    discImage(int(geo.PegRadius)),
		pegGlint:   discImage(glintRadius),
		landedDisc: discImage(int(geo.LandedRadius)),
		coinGold:   coinImage(coinRadius, model.Hex(0xdcbe3c), model.Hex(0xaa8c1e)),
		coinSilver: coinImage(coinRadius, model.Hex(0xa0aab9), model.Hex(0x646e7d)),
	}
	g.pulse(&g.titleAlpha, 1, 0.35, 0.8)
	return g
}

func (g *Game) startRun(mode model.Mode) error {
	s, err := sim.New(g.Cfg, mode, g.Rng)
	if err != nil {
		return err
	}
	g.Sim = s
	g.landed = g.landed[:0]
	g.stopPulse()
	g.State = RUNNING
	g.fade(&g.titleAlpha, 1, 0.2, func() {
		log.Infof("mode selected: %s", mode.Name())
	})
	return nil
}

func (g *Game) backToSelect() {
	if g.Sim != nil {
		g.Sim.Reset()
	}
	g.landed = g.landed[:0]
	g.pauseAlpha = 0
	g.State = MODE_SELECT
	g.pulse(&g.titleAlpha, 1, 0.35, 0.8)
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(0.02)

	switch g.State {
	case MODE_SELECT:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			if err := g.startRun(model.Classical); err != nil {
				return err
			}
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			if err := g.startRun(model.Pareto); err != nil {
				return err
			}
		case inpututil.IsKeyJustPressed(ebiten.Key3):
			if err := g.startRun(model.Competition); err != nil {
				return err
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			return errQuit
		}
	case RUNNING:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
			inpututil.IsKeyJustPressed(ebiten.KeyQ):
			return errQuit
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.backToSelect()
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.State = PAUSED
			g.fade(&g.pauseAlpha, 1, 0.3)
		}
	case PAUSED:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
			inpututil.IsKeyJustPressed(ebiten.KeyQ):
			return errQuit
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.backToSelect()
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.State = RUNNING
			g.fade(&g.pauseAlpha, 0, 0.25)
		}
	}

	if g.State == RUNNING || g.State == PAUSED {
		paused := g.State == PAUSED
		g.landed = append(g.landed, g.Sim.Tick(!paused, !paused)...)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if g.State == MODE_SELECT {
		g.drawModeSelect(screen)
	} else {
		g.drawBoard(screen)
	}
	return nil
}
