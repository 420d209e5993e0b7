package goldensection

// Point is a position with its evaluated raw objective value. The
// objective is never compared directly, only through the direction-aware
// score transform.
type Point struct {
	X         float64
	Objective float64
}

// transform normalizes raw objectives for comparison so that a lower
// score is always better. It is the identity for minimization and
// negation for maximization; both are involutions, which the sentinel
// worst-value recovery relies on.
type transform func(v float64) float64

func identity(v float64) float64 { return v }

func negate(v float64) float64 { return -v }
