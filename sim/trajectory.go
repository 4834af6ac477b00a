package sim

import "github.com/i-yam/boards-of-destiny/model"

// BuildTrajectory turns a decision sequence into the waypoints the ball
// animates through: an entry point above the top peg, one contact point per
// row nudged to the chosen side of the peg, and the rest point of the
// terminal bin. len(path) is always len(choices)+2. Deterministic; the
// terminal bin comes out as the count of rights.
func BuildTrajectory(choices []int, g model.Geometry) ([]model.Point, int) {
	path := make([]model.Point, 0, len(choices)+2)
	path = append(path, model.Point{X: g.CenterX, Y: g.BoardTop - g.EntryLift})
	col := 0
	for row, d := range choices {
		peg := g.PegPos(row, col)
		nudge := g.PegRadius + g.BallRadius + g.NudgePad
		if d == 0 {
			nudge = -nudge
		}
		path = append(path, model.Point{
			X: peg.X + nudge,
			Y: peg.Y + g.PegRadius + g.BallRadius,
		})
		col += d
	}
	path = append(path, model.Point{X: g.BinCenterX(col), Y: g.BinTop + g.BinDrop})
	return path, col
}
