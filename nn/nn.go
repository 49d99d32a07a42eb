// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron computes tanh(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn weights.
func NewNeuron(nIn int, opts ...Option) *Neuron {
	return nn.NewNeuron(nIn, opts...)
}

// Layer is a row of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(nIn, nOut int, opts ...Option) *Layer {
	return nn.NewLayer(nIn, nOut, opts...)
}

// MLP is a multilayer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nIn inputs and one layer per entry of sizes.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.WithSeed(1))
func NewMLP(nIn int, sizes []int, opts ...Option) *MLP {
	return nn.NewMLP(nIn, sizes, opts...)
}

// Option configures module construction.
type Option = nn.Option

// Initializer draws the initial value of one parameter.
type Initializer = nn.Initializer

// WithRand sets the random source used for initialization.
func WithRand(rng *rand.Rand) Option { return nn.WithRand(rng) }

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option { return nn.WithSeed(seed) }

// WithInitializer sets the weight initializer.
func WithInitializer(init Initializer) Option { return nn.WithInitializer(init) }

// WithBiasInitializer sets the bias initializer.
func WithBiasInitializer(init Initializer) Option { return nn.WithBiasInitializer(init) }

// WithLinearOutput disables tanh on the output neurons.
func WithLinearOutput() Option { return nn.WithLinearOutput() }

// Initializers.
var (
	Uniform Initializer = nn.Uniform
	Xavier  Initializer = nn.Xavier
	Zeros   Initializer = nn.Zeros
)

// SumSquaredError computes Σ (predictionᵢ - targetᵢ)².
func SumSquaredError(predictions, targets []*scalar.Node) *scalar.Node {
	return nn.SumSquaredError(predictions, targets)
}

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions, targets []*scalar.Node) *scalar.Node {
	return nn.MSELoss(predictions, targets)
}
