// Package optimization defines the model/problem boundary shared by the
// AURUM solvers: a Model turns an input into an output, and a Problem maps
// a scalar position onto a model input and scores the result.
package optimization

// Model is a deterministic input → output computation.
type Model[I, O any] interface {
	// Call runs the model on the given input.
	Call(input I) (O, error)
}

// Problem adapts a single-variable search position to a model run and
// extracts the objective value from the result.
type Problem[I, O any] interface {
	// Input builds the model input for the candidate position x.
	Input(x float64) (I, error)

	// Objective computes the objective value from a completed model run.
	Objective(input I, output O) (float64, error)
}

// Snapshot records the model input/output pair of one evaluation. The
// solver retains the snapshot associated with the best point found.
type Snapshot[I, O any] struct {
	Input  I
	Output O
}

// Evaluation is the result of a successful evaluation at a position.
type Evaluation[I, O any] struct {
	X         float64
	Objective float64
	Snapshot  Snapshot[I, O]
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc[I, O any] func(input I) (O, error)

// Call runs the wrapped function.
func (f ModelFunc[I, O]) Call(input I) (O, error) {
	return f(input)
}

// FuncModel is the identity model over float64: its output is its input.
// Combined with FuncProblem it turns a plain objective function into a
// model/problem pair.
type FuncModel struct{}

// Call returns the input unchanged.
func (FuncModel) Call(input float64) (float64, error) {
	return input, nil
}

// FuncProblem wraps a scalar objective function as a Problem over the
// identity model.
type FuncProblem struct {
	// F is the objective function to optimize.
	F func(x float64) (float64, error)
}

// Input passes the candidate position through as the model input.
func (FuncProblem) Input(x float64) (float64, error) {
	return x, nil
}

// Objective applies the wrapped function to the model output.
func (p FuncProblem) Objective(_ float64, output float64) (float64, error) {
	return p.F(output)
}
