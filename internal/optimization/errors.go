package optimization

import (
	"errors"
	"fmt"
)

// Stage identifies which part of an evaluation produced a failure.
type Stage int

const (
	// StageModel marks a failure inside Model.Call.
	StageModel Stage = iota

	// StageProblem marks a failure in Problem.Input or Problem.Objective.
	StageProblem
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageModel:
		return "model"
	case StageProblem:
		return "problem"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// EvalError reports a failed evaluation, classified by the stage that
// produced it. Input and Output carry whatever the evaluation had built
// before failing: a model failure has a valid Input, an objective failure
// has both, and an input-construction failure has neither.
type EvalError[I, O any] struct {
	Stage  Stage
	X      float64
	Input  I
	Output O
	Err    error
}

// Error returns the string representation of the error.
func (e *EvalError[I, O]) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s evaluation failed at x=%g: %v", e.Stage, e.X, e.Err)
}

// Unwrap returns the underlying error.
func (e *EvalError[I, O]) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsEvalError extracts an *EvalError from err's chain, if present.
func AsEvalError[I, O any](err error) (*EvalError[I, O], bool) {
	var e *EvalError[I, O]
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
