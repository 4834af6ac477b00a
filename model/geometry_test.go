package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGeometry() Geometry {
	return Geometry{
		Rows:        10,
		PegSpacingX: 32,
		PegSpacingY: 28,
		BoardTop:    80,
		CenterX:     300,
	}
}

func TestPegPosIsAffineInRowAndCol(t *testing.T) {
	g := testGeometry()

	// the single top peg sits on the center line
	assert.Equal(t, Point{X: 300, Y: 80}, g.PegPos(0, 0))

	// each row is centered: outermost pegs are symmetric around CenterX
	for row := 0; row < g.Rows; row++ {
		left := g.PegPos(row, 0)
		right := g.PegPos(row, row)
		assert.InDelta(t, g.CenterX, (left.X+right.X)/2, 1e-9, "row %d", row)
		assert.Equal(t, g.BoardTop+float64(row)*g.PegSpacingY, left.Y)
	}

	// one column to the right moves one spacing; one row down likewise
	assert.Equal(t, g.PegPos(4, 1).X-g.PegPos(4, 0).X, g.PegSpacingX)
	assert.Equal(t, g.PegPos(5, 0).Y-g.PegPos(4, 0).Y, g.PegSpacingY)
}

func TestBinCentersAreSymmetric(t *testing.T) {
	g := testGeometry()
	assert.Equal(t, g.CenterX, g.BinCenterX(g.Rows/2))
	for i := 0; i <= g.Rows; i++ {
		mirror := g.BinCenterX(g.Rows - i)
		assert.InDelta(t, g.CenterX, (g.BinCenterX(i)+mirror)/2, 1e-9)
	}
	assert.Equal(t, g.BinWidth(), g.BinCenterX(1)-g.BinCenterX(0))
}
