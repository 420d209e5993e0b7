package goldensection

import (
	"errors"
	"math"
)

// Config validation errors, each naming the violated constraint.
var (
	ErrMaxIters    = errors.New("max iterations must be at least 1")
	ErrXAbsTol     = errors.New("absolute x tolerance must be finite and non-negative")
	ErrXRelTol     = errors.New("relative x tolerance must be finite and non-negative")
	ErrNoTolerance = errors.New("at least one x tolerance must be positive")
)

// Config holds validated convergence and iteration parameters. Entry
// points accept only validated configs, so nothing is re-checked inside
// the search loop.
type Config struct {
	maxIters int
	xAbsTol  float64
	xRelTol  float64
}

// NewConfig validates and returns a solver configuration.
//
// maxIters must be at least 1, both tolerances must be finite and
// non-negative, and at least one tolerance must be strictly positive
// (otherwise convergence could never trigger).
func NewConfig(maxIters int, xAbsTol, xRelTol float64) (Config, error) {
	if maxIters < 1 {
		return Config{}, ErrMaxIters
	}
	if math.IsNaN(xAbsTol) || math.IsInf(xAbsTol, 0) || xAbsTol < 0 {
		return Config{}, ErrXAbsTol
	}
	if math.IsNaN(xRelTol) || math.IsInf(xRelTol, 0) || xRelTol < 0 {
		return Config{}, ErrXRelTol
	}
	if xAbsTol == 0 && xRelTol == 0 {
		return Config{}, ErrNoTolerance
	}
	return Config{maxIters: maxIters, xAbsTol: xAbsTol, xRelTol: xRelTol}, nil
}

// DefaultConfig returns a known-good configuration: 100 iterations with
// tight absolute and relative tolerances.
func DefaultConfig() Config {
	return Config{maxIters: 100, xAbsTol: 1e-12, xRelTol: 1e-12}
}

// MaxIters returns the maximum number of shrink iterations.
func (c Config) MaxIters() int { return c.maxIters }

// XAbsTol returns the absolute tolerance for x convergence.
func (c Config) XAbsTol() float64 { return c.xAbsTol }

// XRelTol returns the relative tolerance for x convergence.
func (c Config) XRelTol() float64 { return c.xRelTol }
