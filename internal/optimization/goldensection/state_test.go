package goldensection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/AURUM/internal/optimization"
)

func newTestState(leftObj, rightObj float64) *state[float64, float64] {
	br := newBracket(0, 10)
	left := Point{X: br.innerLeft, Objective: leftObj}
	right := Point{X: br.innerRight, Objective: rightObj}
	best := left
	if rightObj < leftObj {
		best = right
	}
	return &state[float64, float64]{
		bracket:   br,
		left:      left,
		right:     right,
		bestPoint: best,
	}
}

func TestNextActionShrinksAwayFromWorsePoint(t *testing.T) {
	st := newTestState(1.0, 2.0)

	dir, x := st.nextAction(identity)
	assert.Equal(t, shrinkRight, dir)
	assert.InDelta(t, st.bracket.newInnerLeft(), x, 1e-12)

	st = newTestState(2.0, 1.0)
	dir, x = st.nextAction(identity)
	assert.Equal(t, shrinkLeft, dir)
	assert.InDelta(t, st.bracket.newInnerRight(), x, 1e-12)
}

func TestNextActionTieKeepsLeft(t *testing.T) {
	st := newTestState(1.0, 1.0)

	dir, _ := st.nextAction(identity)
	assert.Equal(t, shrinkRight, dir)
}

func TestNextActionHonorsTransform(t *testing.T) {
	// Under negation the higher raw objective scores better, so the
	// decision flips relative to the identity transform.
	st := newTestState(1.0, 2.0)

	dir, _ := st.nextAction(negate)
	assert.Equal(t, shrinkLeft, dir)
}

func TestApplyRotatesSurvivingPoint(t *testing.T) {
	st := newTestState(1.0, 2.0)
	oldLeft := st.left

	dir, x := st.nextAction(identity)
	require.Equal(t, shrinkRight, dir)

	committed := Point{X: x, Objective: 0.5}
	st.apply(dir, committed)

	// The surviving left point slides into the right slot without being
	// re-evaluated; the new point takes the left slot.
	assert.Equal(t, oldLeft, st.right)
	assert.Equal(t, committed, st.left)
	assert.InDelta(t, st.left.X, st.bracket.innerLeft, 1e-12)
	assert.InDelta(t, st.right.X, st.bracket.innerRight, 1e-12)
}

func TestApplyShrinkLeftRotation(t *testing.T) {
	st := newTestState(3.0, 1.0)
	oldRight := st.right

	dir, x := st.nextAction(identity)
	require.Equal(t, shrinkLeft, dir)

	committed := Point{X: x, Objective: 0.5}
	st.apply(dir, committed)

	assert.Equal(t, oldRight, st.left)
	assert.Equal(t, committed, st.right)
}

func TestMaybeUpdateBestRequiresStrictImprovement(t *testing.T) {
	st := newTestState(1.0, 2.0)
	st.bestSnapshot = optimization.Snapshot[float64, float64]{Input: st.bestPoint.X}

	// Equal score must not replace the best.
	tied := Point{X: 4.0, Objective: 1.0}
	st.maybeUpdateBest(tied, identity, optimization.Snapshot[float64, float64]{Input: 4.0})
	assert.Equal(t, st.left, st.bestPoint)

	better := Point{X: 5.0, Objective: 0.25}
	snap := optimization.Snapshot[float64, float64]{Input: 5.0, Output: 0.25}
	st.maybeUpdateBest(better, identity, snap)
	assert.Equal(t, better, st.bestPoint)
	assert.Equal(t, snap, st.bestSnapshot)
}

func TestIsConverged(t *testing.T) {
	cfg, err := NewConfig(100, 1e-3, 1e-3)
	require.NoError(t, err)

	st := newTestState(1.0, 2.0)
	st.left.X = 1.0
	st.right.X = 1.0005
	// gap 5e-4 <= 1e-3 + 1e-3 * 1.0005
	assert.True(t, st.isConverged(cfg))

	st.right.X = 1.01
	assert.False(t, st.isConverged(cfg))

	// Relative term scales with the larger magnitude.
	relOnly, err := NewConfig(100, 0, 1e-3)
	require.NoError(t, err)
	st.left.X = 1000.0
	st.right.X = 1000.9
	assert.True(t, st.isConverged(relOnly))
}

func TestIntoSolutionPackagesBest(t *testing.T) {
	st := newTestState(1.0, 2.0)
	st.bestSnapshot = optimization.Snapshot[float64, float64]{Input: st.bestPoint.X, Output: 1.0}

	sol := st.intoSolution(StatusConverged, 42)
	assert.Equal(t, StatusConverged, sol.Status)
	assert.Equal(t, st.bestPoint.X, sol.X)
	assert.Equal(t, st.bestPoint.Objective, sol.Objective)
	assert.Equal(t, 42, sol.Iters)
	require.NotNil(t, sol.Snapshot)
	assert.Equal(t, st.bestSnapshot, *sol.Snapshot)
}

func TestSentinelWorstScoresWorstInBothDirections(t *testing.T) {
	for _, tr := range []transform{identity, negate} {
		p := sentinelWorst(1.5, tr)
		assert.True(t, math.IsInf(tr(p.Objective), 1))
	}
}
