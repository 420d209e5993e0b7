package optimization

// Evaluate runs the model in the context of an optimization problem:
// it maps x to a model input, calls the model, then computes the
// objective from the input and output.
//
// On failure the returned error is an *EvalError carrying the failing
// stage and whatever input/output had been produced before the failure.
func Evaluate[I, O any](model Model[I, O], problem Problem[I, O], x float64) (Evaluation[I, O], error) {
	var zero Evaluation[I, O]

	input, err := problem.Input(x)
	if err != nil {
		return zero, &EvalError[I, O]{Stage: StageProblem, X: x, Err: err}
	}

	output, err := model.Call(input)
	if err != nil {
		return zero, &EvalError[I, O]{Stage: StageModel, X: x, Input: input, Err: err}
	}

	objective, err := problem.Objective(input, output)
	if err != nil {
		return zero, &EvalError[I, O]{Stage: StageProblem, X: x, Input: input, Output: output, Err: err}
	}

	return Evaluation[I, O]{
		X:         x,
		Objective: objective,
		Snapshot:  Snapshot[I, O]{Input: input, Output: output},
	}, nil
}
