// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers read each parameter's gradient and overwrite its value. They
// never touch the graph.
//
// # Training Loop Pattern
//
//	model := nn.NewMLP(3, []int{4, 4, 1})
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss := nn.MSELoss(predict(model, xs), autodiff.Leaves(ys...))
//
//	    // 3. Backward pass
//	    autodiff.Backward(loss)
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
