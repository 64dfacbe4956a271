// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense 2-D matrices the
// training engine computes with.
//
// A Tensor wraps a gonum mat.Dense and adds the shape checking the layered
// forward/backward pipeline relies on. Rows hold examples (or output
// units), columns hold features (or classes).
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	y := tensor.Zeros(2, 3)
//	z := x.Add(y)
package tensor
