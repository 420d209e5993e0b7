// Package goldensection implements golden-section search for
// single-variable optimization over a bounded bracket.
//
// The solver maintains two interior points positioned by the golden
// ratio, compares their objectives, and shrinks the bracket toward the
// better point, reusing the surviving interior point so that each
// iteration costs exactly one new evaluation. It assumes the objective
// is unimodal on the bracket.
//
// One Event is emitted per evaluation attempt after the first. An
// Observer may return ActionStopEarly to halt with the best solution
// found so far, or ActionAssumeWorse to treat the point as worse than
// any real outcome, which recovers failed evaluations and steers the
// search away from a region.
package goldensection
