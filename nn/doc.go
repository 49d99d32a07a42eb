// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff nodes.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b), or linear
//   - Layer: independent neurons over the same inputs
//   - MLP: layers applied in sequence
//   - Loss functions: SumSquaredError, MSELoss
//   - Initialization: Uniform, Xavier, Zeros
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSeed(42))
//
//	    pred := model.ForwardValues(2.0, 3.0, -1.0)
//	    loss := nn.MSELoss(pred, autodiff.Leaves(1.0))
//
//	    model.ZeroGrad()
//	    autodiff.Backward(loss)
//	}
//
// # State
//
// StateDict and LoadStateDict move parameter values in and out of a flat
// map keyed layers.<i>.neurons.<j>.w.<k> and layers.<i>.neurons.<j>.b.
package nn
