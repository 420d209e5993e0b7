package goldensection

import "github.com/copyleftdev/AURUM/internal/optimization"

// Event describes one evaluation attempt. Exactly one event is built per
// attempt and handed to the observer before any state is committed.
//
// Other is the interior point not being replaced this step; in golden
// section search it is always a real, previously committed point. Best
// is the best point known before this step's resolution.
type Event[I, O any] interface {
	isEvent()
}

// Evaluated reports a successful evaluation.
type Evaluated[I, O any] struct {
	Point  Point
	Input  I
	Output O
	Other  Point
	Best   Point
}

// ModelFailed reports a failure inside the model call. Input is the
// problem input the model was called with.
type ModelFailed[I, O any] struct {
	X     float64
	Input I
	Other Point
	Best  Point
	Err   error
}

// ProblemFailed reports a failure while building the model input or
// computing the objective. Input and Output are zero values when the
// failure occurred before they were produced.
type ProblemFailed[I, O any] struct {
	X      float64
	Input  I
	Output O
	Other  Point
	Best   Point
	Err    error
}

func (Evaluated[I, O]) isEvent()     {}
func (ModelFailed[I, O]) isEvent()   {}
func (ProblemFailed[I, O]) isEvent() {}

// failureEvent maps a classified evaluation error onto the matching
// failure event.
func failureEvent[I, O any](e *optimization.EvalError[I, O], other, best Point) Event[I, O] {
	if e.Stage == optimization.StageModel {
		return ModelFailed[I, O]{
			X:     e.X,
			Input: e.Input,
			Other: other,
			Best:  best,
			Err:   e.Err,
		}
	}
	return ProblemFailed[I, O]{
		X:      e.X,
		Input:  e.Input,
		Output: e.Output,
		Other:  other,
		Best:   best,
		Err:    e.Err,
	}
}
