package sim

import (
	"errors"

	"github.com/i-yam/boards-of-destiny/model"
)

// ErrInvalidMode is returned when a caller passes an unknown Mode. The three
// rules differ enough that silently picking one would corrupt the resulting
// distribution, so the boundary rejects instead.
var ErrInvalidMode = errors.New("invalid board mode")

// GenerateDecisions produces one left(0)/right(1) choice per row for a
// single ball. binCounts is the landed-ball census at spawn time; only
// Competition reads it and no rule mutates it.
func GenerateDecisions(mode model.Mode, rows int, binCounts []int, rng RandomSource) ([]int, error) {
	choices := make([]int, 0, rows)
	switch mode {
	case model.Classical:
		// independent fair coin per row
		for row := 0; row < rows; row++ {
			if rng.Float64() < 0.5 {
				choices = append(choices, 1)
			} else {
				choices = append(choices, 0)
			}
		}
	case model.Pareto:
		// p(right) = 0.5/n where n counts this ball's own lefts so far;
		// the fresh start is treated as n=1, so row 0 is always fair.
		numLefts := 0
		for row := 0; row < rows; row++ {
			n := numLefts
			if n < 1 {
				n = 1
			}
			if rng.Float64() < 0.5/float64(n) {
				choices = append(choices, 1)
			} else {
				choices = append(choices, 0)
				numLefts++
			}
		}
	case model.Competition:
		// p(right) = min(0.5/k, 0.5) where k counts landed balls strictly
		// to the right of this ball's current standing. k=0 means no
		// competitors ahead, a fair coin.
		numRights := 0
		for row := 0; row < rows; row++ {
			k := 0
			for bin := numRights + 1; bin < len(binCounts); bin++ {
				k += binCounts[bin]
			}
			p := 0.5
			if k > 0 {
				p = 0.5 / float64(k)
				if p > 0.5 {
					p = 0.5
				}
			}
			if rng.Float64() < p {
				choices = append(choices, 1)
				numRights++
			} else {
				choices = append(choices, 0)
			}
		}
	default:
		return nil, ErrInvalidMode
	}
	return choices, nil
}
