package goldensection

import (
	"errors"
	"fmt"
)

// ErrNoFinitePoint is a defensive logic error: after initialization both
// interior points carried the sentinel worst score, leaving the search
// with no information to act on. The initialization outcome handling
// makes this unreachable.
var ErrNoFinitePoint = errors.New("goldensection: both interior points carry the sentinel worst score")

// BracketError reports outer bounds that cannot start a search. It is
// returned before any evaluation occurs.
type BracketError struct {
	Left  float64
	Right float64
}

// Error returns the string representation of the error.
func (e *BracketError) Error() string {
	return fmt.Sprintf("invalid bracket [%g, %g]: bounds must be finite with left < right", e.Left, e.Right)
}
