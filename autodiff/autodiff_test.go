// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalargrad/autodiff"
)

func TestPublicAPI(t *testing.T) {
	a := autodiff.Leaf(2.0, "a")
	b := autodiff.Leaf(-3.0, "b")
	c := autodiff.Sub(autodiff.Mul(a, b), 1.0)

	autodiff.Backward(c)

	assert.InDelta(t, -7.0, c.Value(), 1e-12)
	assert.InDelta(t, -3.0, a.Grad(), 1e-12)
	assert.InDelta(t, 2.0, b.Grad(), 1e-12)
	assert.Equal(t, autodiff.OpAdd, c.Op())
	assert.Equal(t, "a", a.Label())

	order := autodiff.TopologicalSort(c)
	assert.Same(t, c, order[len(order)-1])
}

func ExampleBackward() {
	x := autodiff.Leaf(2.0, "x")
	y := autodiff.Add(autodiff.Mul(x, x), 1.0) // x² + 1

	autodiff.Backward(y)

	fmt.Println(y.Value(), x.Grad())
	// Output: 5 4
}
