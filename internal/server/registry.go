package server

import (
	"errors"
	"math"
)

// objectiveEntry is a named objective function servable over the API.
type objectiveEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	f func(x float64) (float64, error)
}

// defaultRegistry returns the built-in benchmark objectives.
func defaultRegistry() map[string]objectiveEntry {
	entries := []objectiveEntry{
		{
			Name:        "cubic",
			Description: "x³ − 4x; local minimum near x ≈ 1.1547, local maximum near x ≈ −1.1547",
			f: func(x float64) (float64, error) {
				return x*x*x - 4*x, nil
			},
		},
		{
			Name:        "quadratic",
			Description: "(x − 2)² + 1; minimum at x = 2",
			f: func(x float64) (float64, error) {
				return (x-2)*(x-2) + 1, nil
			},
		},
		{
			Name:        "vshape",
			Description: "|x − 1|; non-smooth minimum at x = 1",
			f: func(x float64) (float64, error) {
				return math.Abs(x - 1), nil
			},
		},
		{
			Name:        "saturating",
			Description: "x² with evaluation failures for |x| > 5; pair with recover_failures",
			f: func(x float64) (float64, error) {
				if math.Abs(x) > 5 {
					return 0, errors.New("instrument saturated")
				}
				return x * x, nil
			},
		},
	}

	registry := make(map[string]objectiveEntry, len(entries))
	for _, e := range entries {
		registry[e.Name] = e
	}
	return registry
}
