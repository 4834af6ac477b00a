package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/i-yam/boards-of-destiny/model"
)

var (
	colBG        = model.Hex(0x191923)
	colPeg       = model.Hex(0x8c91a5)
	colPegGlint  = model.Hex(0xb4b9c8)
	colBinBorder = model.Hex(0x3c4150)
	colText      = model.Hex(0xc8c8dc)
	colDimText   = model.Hex(0x646978)
	colPausedTxt = model.Hex(0xffff64)
	colGoldText  = model.Hex(0x644b0a)
	colSlvrText  = model.Hex(0x323741)
)

func withAlpha(c model.Color, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

// drawTextCentered draws s with its horizontal center at cx; y is the
// baseline.
func drawTextCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, clr)
}

func (g *Game) drawModeSelect(screen *ebiten.Image) {
	screen.Fill(colBG)
	cx := g.Cfg.Width / 2
	cy := g.Cfg.Height / 2

	drawTextCentered(screen, titleFace, "Boards of Destiny", cx, cy-176,
		withAlpha(colText, g.titleAlpha))
	drawTextCentered(screen, labelFace, "Choose a mode:", cx, cy-136, colDimText)

	drawTextCentered(screen, titleFace, "[1]  Classical Galton Board", cx, cy-91,
		model.AccentFor(model.Classical))
	drawTextCentered(screen, labelFace,
		"Random events with equal chances of positive", cx, cy-71, colDimText)
	drawTextCentered(screen, labelFace,
		"or negative outcomes", cx, cy-53, colDimText)

	drawTextCentered(screen, titleFace, "[2]  Pareto Board", cx, cy-6,
		model.AccentFor(model.Pareto))
	drawTextCentered(screen, labelFace,
		"Random events where the chance of \"success\"", cx, cy+14, colDimText)
	drawTextCentered(screen, labelFace,
		"diminishes with the number of \"failures\"", cx, cy+32, colDimText)

	drawTextCentered(screen, titleFace, "[3]  Competition Board", cx, cy+79,
		model.AccentFor(model.Competition))
	drawTextCentered(screen, labelFace,
		"Random events where chance of \"success\" depends on", cx, cy+99, colDimText)
	drawTextCentered(screen, labelFace,
		"whether you are currently ahead or behind other competitors", cx, cy+117, colDimText)

	coinY := float64(cy + 160)
	drawImageAt(screen, g.coinGold, float64(cx-55), coinY)
	drawTextCentered(screen, smallFace, "SUCCESS", cx-55, int(coinY)+4, colGoldText)
	drawImageAt(screen, g.coinSilver, float64(cx+55), coinY)
	drawTextCentered(screen, smallFace, "FAILURE", cx+55, int(coinY)+4, colSlvrText)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	screen.Fill(colBG)
	geo := g.geometry
	cx := g.Cfg.Width / 2

	drawTextCentered(screen, titleFace, "Boards of Destiny", cx, 30, colText)
	drawTextCentered(screen, labelFace, "Mode: "+g.Sim.Mode.Name(), cx, 50,
		model.AccentFor(g.Sim.Mode))
	info := fmt.Sprintf("Balls: %d/%d   |   SPACE: Pause   R: Reset   ESC: Quit",
		g.Sim.Spawned, g.Cfg.MaxBalls)
	drawTextCentered(screen, labelFace, info, cx, 70, colDimText)

	// funnel over the top peg
	top := geo.PegPos(0, 0)
	funnelTopY := geo.BoardTop - 18
	ebitenutil.DrawLine(screen, top.X-35, funnelTopY, top.X-8, top.Y-10, colBinBorder)
	ebitenutil.DrawLine(screen, top.X+35, funnelTopY, top.X+8, top.Y-10, colBinBorder)

	for _, p := range g.pegs {
		drawDot(screen, g.pegDisc, p.X, p.Y, colPeg, 1)
		drawDot(screen, g.pegGlint, p.X-1, p.Y-1, colPegGlint, 1)
	}

	// bin dividers and floor
	binW := geo.BinWidth()
	leftX := geo.BinCenterX(0) - binW/2
	for i := 0; i <= geo.Bins(); i++ {
		x := leftX + float64(i)*binW
		ebitenutil.DrawRect(screen, x, geo.BinTop, 2, geo.BinBottom-geo.BinTop, colBinBorder)
	}
	rightX := geo.BinCenterX(geo.Rows) + binW/2
	ebitenutil.DrawRect(screen, leftX, geo.BinBottom, rightX-leftX, 2, colBinBorder)

	for i, n := range g.Sim.BinCounts {
		if n > 0 {
			drawTextCentered(screen, smallFace, strconv.Itoa(n),
				int(geo.BinCenterX(i)), int(geo.BinBottom)+16, colDimText)
		}
	}

	for _, l := range g.landed {
		drawDot(screen, g.landedDisc, l.X, l.Y, l.Color, 1)
	}
	for _, b := range g.Sim.Balls {
		drawDot(screen, g.ballDisc, b.X, b.Y, b.Color, 1)
	}

	if g.pauseAlpha > 0.01 {
		drawTextCentered(screen, titleFace, "PAUSED", cx, g.Cfg.Height/2-20,
			withAlpha(colPausedTxt, g.pauseAlpha))
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, g.State.Name(), 4, g.Cfg.Height-16)
	}
}
