package goldensection

import (
	"math"

	"github.com/copyleftdev/AURUM/internal/optimization"
)

// shrinkDirection selects which bracket bound the next commit moves.
type shrinkDirection int

const (
	shrinkLeft shrinkDirection = iota
	shrinkRight
)

// state owns the two current interior points plus the best real point
// and its snapshot. Invariant: at least one of left/right always has a
// finite transformed score, because each shrink discards only the point
// with the worse score.
type state[I, O any] struct {
	bracket      bracket
	left         Point
	right        Point
	bestPoint    Point
	bestSnapshot optimization.Snapshot[I, O]
}

// nextAction decides which side to shrink and where the next candidate
// lands, without evaluating or mutating anything. A tie keeps the left
// point.
func (s *state[I, O]) nextAction(t transform) (shrinkDirection, float64) {
	if t(s.left.Objective) <= t(s.right.Objective) {
		// Left is better, shrink the right side.
		return shrinkRight, s.bracket.newInnerLeft()
	}
	return shrinkLeft, s.bracket.newInnerRight()
}

// apply commits the bracket shrink and rotates the interior points: the
// surviving point slides into the discarded point's slot and the new
// point takes its place. The surviving point is never re-evaluated.
func (s *state[I, O]) apply(dir shrinkDirection, p Point) {
	switch dir {
	case shrinkRight:
		s.bracket.shrinkRight()
		s.right = s.left
		s.left = p
	case shrinkLeft:
		s.bracket.shrinkLeft()
		s.left = s.right
		s.right = p
	}
}

// maybeUpdateBest replaces the best point on strict improvement. Only
// call it with real evaluation outcomes: sentinel points carry no
// snapshot and by construction cannot score better than any real point.
func (s *state[I, O]) maybeUpdateBest(p Point, t transform, snap optimization.Snapshot[I, O]) {
	if t(p.Objective) < t(s.bestPoint.Objective) {
		s.bestPoint = p
		s.bestSnapshot = snap
	}
}

// isConverged tests the interior-point gap against the combined
// absolute/relative tolerance.
func (s *state[I, O]) isConverged(cfg Config) bool {
	gap := math.Abs(s.right.X - s.left.X)
	ref := math.Max(math.Abs(s.left.X), math.Abs(s.right.X))
	return gap <= cfg.xAbsTol+cfg.xRelTol*ref
}

// intoSolution packages the best point and snapshot into a Solution.
func (s *state[I, O]) intoSolution(status Status, iters int) Solution[I, O] {
	snap := s.bestSnapshot
	return Solution[I, O]{
		Status:    status,
		X:         s.bestPoint.X,
		Objective: s.bestPoint.Objective,
		Snapshot:  &snap,
		Iters:     iters,
	}
}
