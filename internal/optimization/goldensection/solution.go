package goldensection

import (
	"fmt"

	"github.com/copyleftdev/AURUM/internal/optimization"
)

// Status reports how a search terminated.
type Status int

const (
	// StatusConverged means the interior-point gap met the tolerance test.
	StatusConverged Status = iota

	// StatusMaxIters means the iteration cap was reached first.
	StatusMaxIters

	// StatusStoppedByObserver means the observer returned ActionStopEarly.
	StatusStoppedByObserver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIters:
		return "max_iters"
	case StatusStoppedByObserver:
		return "stopped_by_observer"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Solution is the terminal result of a search. X and Objective describe
// the best real evaluation seen; Snapshot holds its model input/output
// pair when one was recorded.
type Solution[I, O any] struct {
	Status    Status
	X         float64
	Objective float64
	Snapshot  *optimization.Snapshot[I, O]
	Iters     int
}
