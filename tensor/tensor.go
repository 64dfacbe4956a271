// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Tensor is a dense 2-D float64 matrix.
type Tensor = tensor.Tensor

// Zeros creates an r×c tensor filled with zeros.
func Zeros(r, c int) *Tensor {
	return tensor.Zeros(r, c)
}

// FromSlice creates an r×c tensor from row-major data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
func FromSlice(data []float64, r, c int) (*Tensor, error) {
	return tensor.FromSlice(data, r, c)
}

// FromDense wraps an existing mat.Dense without copying.
//
// This is a low-level constructor for callers that already hold gonum
// matrices; most users should use FromSlice or Zeros.
func FromDense(d *mat.Dense) *Tensor {
	return tensor.FromDense(d)
}
