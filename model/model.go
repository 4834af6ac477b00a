package model

import "fmt"

// Mode selects which stochastic rule drives a ball's left/right decisions.
// It is fixed for the lifetime of one run.
type Mode int

const (
	Classical Mode = iota + 1
	Pareto
	Competition
)

func (m Mode) Valid() bool {
	return m >= Classical && m <= Competition
}

func (m Mode) Name() string {
	switch m {
	case Classical:
		return "Classical Galton Board"
	case Pareto:
		return "Pareto Board"
	case Competition:
		return "Competition Board"
	default:
		return fmt.Sprintf("N/A(%d)", int(m))
	}
}

// Point is a 2-D board coordinate in pixels.
type Point struct {
	X, Y float64
}

// Ball is one falling ball: the path decided at spawn time plus its
// animation state. Choices and Path never change after spawn; Advance
// mutates only Segment, T, X, Y and Landed.
type Ball struct {
	Choices  []int   // one 0(left)/1(right) per board row
	FinalBin int     // count of rights, in [0, rows]
	Path     []Point // entry point, one peg contact per row, bin rest point
	Segment  int
	T        float64 // progress within the current segment, [0, 1)
	Speed    float64 // per-tick progress, sampled once at spawn
	X, Y     float64
	Color    Color
	Landed   bool
}
