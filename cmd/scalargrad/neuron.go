package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Inputs of the two-input tanh neuron walkthrough. The bias puts the
// pre-activation at 0.8814 so the output is sqrt(2)/2.
var neuronInputs = []struct {
	label string
	value float64
}{
	{"x1", 2.0},
	{"x2", 0.0},
	{"w1", -3.0},
	{"w2", 1.0},
	{"b", 6.8813735870195432},
}

type neuronGraph struct {
	leaves []*scalar.Node
	nodes  []*scalar.Node // every node in construction order
	out    *scalar.Node
}

func buildNeuron(values []float64) neuronGraph {
	leaves := make([]*scalar.Node, len(neuronInputs))
	for i, in := range neuronInputs {
		leaves[i] = autodiff.Leaf(values[i], in.label)
	}
	x1, x2, w1, w2, b := leaves[0], leaves[1], leaves[2], leaves[3], leaves[4]

	x1w1 := autodiff.Mul(x1, w1)
	x1w1.SetLabel("x1*w1")
	x2w2 := autodiff.Mul(x2, w2)
	x2w2.SetLabel("x2*w2")
	sum := autodiff.Add(x1w1, x2w2)
	sum.SetLabel("x1*w1 + x2*w2")
	n := autodiff.Add(sum, b)
	n.SetLabel("n")
	o := autodiff.Tanh(n)
	o.SetLabel("o")

	return neuronGraph{
		leaves: leaves,
		nodes:  append(append([]*scalar.Node{}, leaves...), x1w1, x2w2, sum, n, o),
		out:    o,
	}
}

func newNeuronCmd() *cobra.Command {
	var h float64
	cmd := &cobra.Command{
		Use:   "neuron",
		Short: "Backpropagate through a single tanh neuron and check gradients numerically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if h <= 0 {
				return fmt.Errorf("--h must be positive, got %g", h)
			}
			return runNeuron(cmd.OutOrStdout(), h)
		},
	}
	cmd.Flags().Float64Var(&h, "h", 1e-3, "central difference step")
	return cmd
}

func runNeuron(w io.Writer, h float64) error {
	values := make([]float64, len(neuronInputs))
	for i, in := range neuronInputs {
		values[i] = in.value
	}

	g := buildNeuron(values)
	autodiff.Backward(g.out)

	fmt.Fprintln(w, "graph:")
	for _, node := range g.nodes {
		fmt.Fprintf(w, "  %-16s op=%-5s %s\n", node.Label(), node.Op(), node)
	}

	fmt.Fprintln(w, "\ngradient check:")
	var worst float64
	for i, leaf := range g.leaves {
		plus := append([]float64(nil), values...)
		minus := append([]float64(nil), values...)
		plus[i] += h
		minus[i] -= h
		numeric := (buildNeuron(plus).out.Value() - buildNeuron(minus).out.Value()) / (2 * h)
		diff := math.Abs(numeric - leaf.Grad())
		worst = math.Max(worst, diff)
		fmt.Fprintf(w, "  %-3s analytic=% .6f numeric=% .6f |diff|=%.2e\n", leaf.Label(), leaf.Grad(), numeric, diff)
	}
	fmt.Fprintf(w, "max |diff| = %.2e\n", worst)
	return nil
}
