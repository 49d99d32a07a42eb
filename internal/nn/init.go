package nn

import (
	"math"
	"math/rand"
)

// Initializer draws the initial value of one parameter.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws weights from U(-1, 1).
func Uniform(rng *rand.Rand, _, _ int) float64 {
	return rng.Float64()*2.0 - 1.0
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2.0 - 1.0) * bound
}

// Zeros always returns 0.
func Zeros(*rand.Rand, int, int) float64 {
	return 0
}

// InitializerByName resolves "uniform", "xavier" or "zeros".
func InitializerByName(name string) (Initializer, bool) {
	switch name {
	case "uniform", "":
		return Uniform, true
	case "xavier":
		return Xavier, true
	case "zeros":
		return Zeros, true
	default:
		return nil, false
	}
}

// options holds construction settings shared by Neuron, Layer and MLP.
type options struct {
	rng          *rand.Rand
	weightInit   Initializer
	biasInit     Initializer
	linearOutput bool
}

// Option configures module construction.
type Option func(*options)

// WithRand sets the random source used for initialization.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a private random source for reproducible initialization.
func WithSeed(seed int64) Option {
	return func(o *options) {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInitializer sets the weight initializer (default Uniform).
func WithInitializer(init Initializer) Option {
	return func(o *options) { o.weightInit = init }
}

// WithBiasInitializer sets the bias initializer (default Uniform).
func WithBiasInitializer(init Initializer) Option {
	return func(o *options) { o.biasInit = init }
}

// WithLinearOutput disables tanh on the output neurons (the last layer of an MLP).
func WithLinearOutput() Option {
	return func(o *options) { o.linearOutput = true }
}

func newOptions(opts []Option) options {
	o := options{weightInit: Uniform, biasInit: Uniform}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return o
}
