package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"

	"github.com/i-yam/boards-of-destiny/model"
)

// discImage renders a filled white disc; tint and alpha happen at draw time
// through ColorM.
func discImage(radius int) *ebiten.Image {
	d := radius*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	rr := float64(radius)*float64(radius) + 0.25
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			if dx*dx+dy*dy <= rr {
				img.Set(x, y, color.White)
			}
		}
	}
	e, _ := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	return e
}

// drawDot stamps a tinted disc centered at (x, y).
func drawDot(screen, disc *ebiten.Image, x, y float64, c model.Color, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	w, h := disc.Size()
	op.GeoM.Translate(x-float64(w)/2, y-float64(h)/2)
	op.ColorM.Scale(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
	screen.DrawImage(disc, op)
}

// coinImage prerenders a pixel-art coin: border rim, inner fill, a thin
// detail ring and rim dots every 30 degrees.
func coinImage(radius int, fill, border model.Color) *ebiten.Image {
	d := radius*2 + 1
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	fc := color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 0xff}
	bc := color.NRGBA{R: border.R, G: border.G, B: border.B, A: 0xff}
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			dist := math.Sqrt(dx*dx + dy*dy)
			switch {
			case dist > float64(radius):
			case dist > float64(radius-2):
				img.Set(x, y, bc)
			case math.Abs(dist-float64(radius-4)) < 0.6:
				img.Set(x, y, bc)
			default:
				img.Set(x, y, fc)
			}
		}
	}
	for deg := 0; deg < 360; deg += 30 {
		rad := float64(deg) * math.Pi / 180
		x := radius + int(math.Cos(rad)*float64(radius-3))
		y := radius + int(math.Sin(rad)*float64(radius-3))
		img.Set(x, y, bc)
	}
	e, _ := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
	return e
}

// drawImageAt draws an image centered at (x, y), untinted.
func drawImageAt(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	w, h := img.Size()
	op.GeoM.Translate(x-float64(w)/2, y-float64(h)/2)
	screen.DrawImage(img, op)
}
