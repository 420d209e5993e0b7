package goldensection

import "fmt"

// Action is an observer's steering command. The zero value, ActionNone,
// accepts the real outcome and continues.
type Action int

const (
	// ActionNone accepts the evaluation outcome: a successful point is
	// committed, a failure is propagated as the solve's terminal error.
	ActionNone Action = iota

	// ActionStopEarly halts the solver immediately and returns the best
	// solution found so far.
	ActionStopEarly

	// ActionAssumeWorse treats this point as worse than any real outcome,
	// causing the solver to shrink away from it. The point is excluded
	// from best-solution tracking. Use it to recover from evaluation
	// failures or to steer the search out of a region.
	ActionAssumeWorse
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStopEarly:
		return "stop_early"
	case ActionAssumeWorse:
		return "assume_worse"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Observer inspects solver events and may steer the search. Observe is
// called once per completed evaluation attempt; it must not block
// indefinitely since the solver runs synchronously on the calling
// goroutine.
type Observer[I, O any] interface {
	Observe(event Event[I, O]) Action
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[I, O any] func(event Event[I, O]) Action

// Observe calls the wrapped function.
func (f ObserverFunc[I, O]) Observe(event Event[I, O]) Action {
	return f(event)
}

// noopObserver declines every event.
type noopObserver[I, O any] struct{}

func (noopObserver[I, O]) Observe(Event[I, O]) Action { return ActionNone }
