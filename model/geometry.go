package model

// Geometry holds the fixed board layout. Peg positions and bin centers are
// affine in their indices; at row r the valid peg columns are [0, r].
type Geometry struct {
	Rows         int
	PegSpacingX  float64
	PegSpacingY  float64
	BoardTop     float64
	CenterX      float64
	PegRadius    float64
	BallRadius   float64
	LandedRadius float64
	LandedStep   float64 // vertical stacking spacing inside a bin
	BinTop       float64
	BinBottom    float64
	EntryLift    float64 // entry waypoint height above the top peg
	NudgePad     float64 // horizontal clearance past the touching radii
	BinDrop      float64 // rest waypoint depth below the bin top
}

func (g Geometry) Bins() int { return g.Rows + 1 }

func (g Geometry) BinWidth() float64 { return g.PegSpacingX }

func (g Geometry) PegPos(row, col int) Point {
	return Point{
		X: g.CenterX + (float64(col)-float64(row)/2)*g.PegSpacingX,
		Y: g.BoardTop + float64(row)*g.PegSpacingY,
	}
}

func (g Geometry) BinCenterX(index int) float64 {
	return g.CenterX + (float64(index)-float64(g.Rows)/2)*g.BinWidth()
}
