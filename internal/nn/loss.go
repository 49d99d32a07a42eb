package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// SumSquaredError computes Σ (predictionᵢ - targetᵢ)².
//
// Panics if predictions and targets differ in length.
func SumSquaredError(predictions, targets []*scalar.Node) *scalar.Node {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("SumSquaredError: %d predictions for %d targets", len(predictions), len(targets)))
	}

	terms := make([]*scalar.Node, len(predictions))
	for i := range predictions {
		terms[i] = autodiff.Pow(autodiff.Sub(predictions[i], targets[i]), 2)
	}
	return autodiff.Sum(terms...)
}

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions, targets []*scalar.Node) *scalar.Node {
	sse := SumSquaredError(predictions, targets)
	if len(predictions) == 0 {
		return sse
	}
	return autodiff.Div(sse, float64(len(predictions)))
}
