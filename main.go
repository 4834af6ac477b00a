package main

import (
	"bytes"
	"flag"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/i-yam/boards-of-destiny/sim"
)

var titleFace, labelFace, smallFace font.Face

func loadFaces(path string) error {
	dat, err := ebitenutil.OpenFile(path)
	if err != nil {
		return err
	}
	defer dat.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(dat); err != nil {
		return err
	}
	tt, err := truetype.Parse(buf.Bytes())
	if err != nil {
		return err
	}
	const dpi = 72
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	titleFace = face(24)
	labelFace = face(14)
	smallFace = face(11)
	return nil
}

var theGame *Game

func main() {
	cfgPath := flag.String("cfg", "", "optional yaml board config")
	fontPath := flag.String("font", "font.ttf", "truetype font for labels")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := sim.DefaultConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = sim.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config %s: %v", *cfgPath, err)
		}
	}

	if err := loadFaces(*fontPath); err != nil {
		log.Fatalf("load font %s: %v", *fontPath, err)
	}

	rng := sim.NewTimeSource()
	if *seed != 0 {
		rng = sim.NewSeededSource(*seed)
	}

	theGame = NewGame(cfg, rng)
	if err := ebiten.Run(theGame.update, cfg.Width, cfg.Height, 1, "Boards of Destiny"); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
