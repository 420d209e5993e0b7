package goldensection

import (
	"math"

	"github.com/copyleftdev/AURUM/internal/optimization"
)

// Minimize finds the minimum of the objective on the given bracket.
// The observer receives an Event for each evaluation after the first.
//
// It returns an error if the bracket bounds are not finite with
// left < right, or if an evaluation fails and the observer does not
// return ActionAssumeWorse to recover.
func Minimize[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	bounds [2]float64,
	cfg Config,
	observer Observer[I, O],
) (Solution[I, O], error) {
	return search(model, problem, bounds, cfg, observer, identity)
}

// MinimizeUnobserved is Minimize with a no-op observer.
func MinimizeUnobserved[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	bounds [2]float64,
	cfg Config,
) (Solution[I, O], error) {
	return Minimize(model, problem, bounds, cfg, noopObserver[I, O]{})
}

// Maximize finds the maximum of the objective on the given bracket.
// Internally the objective is negated before comparison, so the same
// algorithm serves both directions.
func Maximize[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	bounds [2]float64,
	cfg Config,
	observer Observer[I, O],
) (Solution[I, O], error) {
	return search(model, problem, bounds, cfg, observer, negate)
}

// MaximizeUnobserved is Maximize with a no-op observer.
func MaximizeUnobserved[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	bounds [2]float64,
	cfg Config,
) (Solution[I, O], error) {
	return Maximize(model, problem, bounds, cfg, noopObserver[I, O]{})
}

// search runs the full golden-section loop with the given score
// transform: identity for minimization, negation for maximization.
func search[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	bounds [2]float64,
	cfg Config,
	observer Observer[I, O],
	t transform,
) (Solution[I, O], error) {
	var zero Solution[I, O]

	left, right := bounds[0], bounds[1]
	if math.IsNaN(left) || math.IsInf(left, 0) || math.IsNaN(right) || math.IsInf(right, 0) || left >= right {
		return zero, &BracketError{Left: left, Right: right}
	}
	if observer == nil {
		observer = noopObserver[I, O]{}
	}

	br := newBracket(left, right)

	st, early, err := initState(model, problem, br, observer, t)
	if err != nil {
		return zero, err
	}
	if early != nil {
		return *early, nil
	}

	for iter := 1; iter <= cfg.maxIters; iter++ {
		// Checking convergence first means the check never costs an
		// evaluation and does not count as a consumed iteration.
		if st.isConverged(cfg) {
			return st.intoSolution(StatusConverged, iter-1), nil
		}

		dir, x := st.nextAction(t)
		other := st.left
		if dir == shrinkLeft {
			other = st.right
		}

		outcome, err := evalAndObserve(model, problem, x, other, st.bestPoint, observer)
		if err != nil {
			return zero, err
		}

		switch outcome.kind {
		case outcomeStop:
			return st.intoSolution(StatusStoppedByObserver, iter), nil
		case outcomeAssumeWorse:
			st.apply(dir, sentinelWorst(x, t))
		default:
			st.apply(dir, outcome.point)
			st.maybeUpdateBest(outcome.point, t, outcome.snapshot)
		}
	}

	return st.intoSolution(StatusMaxIters, cfg.maxIters), nil
}

// sentinelWorst builds the synthetic point used for ActionAssumeWorse.
// The raw objective is transform(+Inf); because the transform is an
// involution the transformed score is +Inf under both directions, so the
// point always reads as strictly worse than any real evaluation.
func sentinelWorst(x float64, t transform) Point {
	return Point{X: x, Objective: t(math.Inf(1))}
}

// initState evaluates both initial interior positions and builds the
// search state. It returns a non-nil Solution when the observer stops
// the search before the first iteration.
func initState[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	br bracket,
	observer Observer[I, O],
	t transform,
) (*state[I, O], *Solution[I, O], error) {
	leftEval, leftErr := optimization.Evaluate(model, problem, br.innerLeft)
	rightEval, rightErr := optimization.Evaluate(model, problem, br.innerRight)

	// Both failed: there is no reliable context point to report, so the
	// observer is not consulted and the right failure is surfaced.
	if leftErr != nil && rightErr != nil {
		return nil, nil, rightErr
	}

	var st *state[I, O]

	switch {
	case leftErr == nil && rightErr == nil:
		leftPt := Point{X: leftEval.X, Objective: leftEval.Objective}
		rightPt := Point{X: rightEval.X, Objective: rightEval.Objective}

		// Only the second point evaluated carries an event: the first has
		// no "other" yet, and is trivially the best known so far.
		event := Evaluated[I, O]{
			Point:  rightPt,
			Input:  rightEval.Snapshot.Input,
			Output: rightEval.Snapshot.Output,
			Other:  leftPt,
			Best:   leftPt,
		}

		switch resolve(observer, event) {
		case outcomeStop:
			sol := solutionFromEval(StatusStoppedByObserver, leftEval)
			return nil, &sol, nil
		case outcomeAssumeWorse:
			st = &state[I, O]{
				bracket:      br,
				left:         leftPt,
				right:        sentinelWorst(rightPt.X, t),
				bestPoint:    leftPt,
				bestSnapshot: leftEval.Snapshot,
			}
		default:
			bestPt, bestSnap := leftPt, leftEval.Snapshot
			if t(rightPt.Objective) < t(leftPt.Objective) {
				bestPt, bestSnap = rightPt, rightEval.Snapshot
			}
			st = &state[I, O]{
				bracket:      br,
				left:         leftPt,
				right:        rightPt,
				bestPoint:    bestPt,
				bestSnapshot: bestSnap,
			}
		}

	default:
		okEval, failedX, evalErr := leftEval, br.innerRight, rightErr
		if leftErr != nil {
			okEval, failedX, evalErr = rightEval, br.innerLeft, leftErr
		}
		okPt := Point{X: okEval.X, Objective: okEval.Objective}

		classified, ok := optimization.AsEvalError[I, O](evalErr)
		if !ok {
			return nil, nil, evalErr
		}

		switch resolve(observer, failureEvent(classified, okPt, okPt)) {
		case outcomeStop:
			sol := solutionFromEval(StatusStoppedByObserver, okEval)
			return nil, &sol, nil
		case outcomeAssumeWorse:
			worse := sentinelWorst(failedX, t)
			leftPt, rightPt := okPt, worse
			if worse.X < okPt.X {
				leftPt, rightPt = worse, okPt
			}
			st = &state[I, O]{
				bracket:      br,
				left:         leftPt,
				right:        rightPt,
				bestPoint:    okPt,
				bestSnapshot: okEval.Snapshot,
			}
		default:
			return nil, nil, evalErr
		}
	}

	// Unreachable given the outcome handling above, but a search with no
	// finite score would loop uselessly, so fail loudly.
	if math.IsInf(t(st.left.Objective), 1) && math.IsInf(t(st.right.Objective), 1) {
		return nil, nil, ErrNoFinitePoint
	}

	return st, nil, nil
}

// solutionFromEval builds a zero-iteration solution around a single
// successful evaluation.
func solutionFromEval[I, O any](status Status, eval optimization.Evaluation[I, O]) Solution[I, O] {
	snap := eval.Snapshot
	return Solution[I, O]{
		Status:    status,
		X:         eval.X,
		Objective: eval.Objective,
		Snapshot:  &snap,
		Iters:     0,
	}
}

// outcomeKind is the three-way resolution shared by initialization and
// the main loop: continue with the real outcome, substitute the sentinel
// worst point, or stop early.
type outcomeKind int

const (
	outcomeContinue outcomeKind = iota
	outcomeAssumeWorse
	outcomeStop
)

type evalOutcome[I, O any] struct {
	kind     outcomeKind
	point    Point
	snapshot optimization.Snapshot[I, O]
}

// resolve passes one event to the observer and maps the optional action
// onto the shared outcome. For failure events, outcomeContinue means the
// caller must propagate the original error.
func resolve[I, O any](observer Observer[I, O], event Event[I, O]) outcomeKind {
	switch observer.Observe(event) {
	case ActionStopEarly:
		return outcomeStop
	case ActionAssumeWorse:
		return outcomeAssumeWorse
	default:
		return outcomeContinue
	}
}

// evalAndObserve evaluates at x, emits the matching event, and resolves
// the observer's action. Every fallible evaluation site in the main loop
// routes through here, so no error is ever silently discarded.
func evalAndObserve[I, O any](
	model optimization.Model[I, O],
	problem optimization.Problem[I, O],
	x float64,
	other Point,
	best Point,
	observer Observer[I, O],
) (evalOutcome[I, O], error) {
	var zero evalOutcome[I, O]

	eval, err := optimization.Evaluate(model, problem, x)
	if err != nil {
		classified, ok := optimization.AsEvalError[I, O](err)
		if !ok {
			return zero, err
		}
		switch resolve(observer, failureEvent(classified, other, best)) {
		case outcomeStop:
			return evalOutcome[I, O]{kind: outcomeStop}, nil
		case outcomeAssumeWorse:
			return evalOutcome[I, O]{kind: outcomeAssumeWorse}, nil
		default:
			return zero, err
		}
	}

	point := Point{X: eval.X, Objective: eval.Objective}
	event := Evaluated[I, O]{
		Point:  point,
		Input:  eval.Snapshot.Input,
		Output: eval.Snapshot.Output,
		Other:  other,
		Best:   best,
	}

	switch resolve(observer, event) {
	case outcomeStop:
		return evalOutcome[I, O]{kind: outcomeStop}, nil
	case outcomeAssumeWorse:
		return evalOutcome[I, O]{kind: outcomeAssumeWorse}, nil
	default:
		return evalOutcome[I, O]{kind: outcomeContinue, point: point, snapshot: eval.Snapshot}, nil
	}
}
