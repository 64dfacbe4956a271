package nn

import (
	"math"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Softmax normalizes each row of scores into a probability distribution.
//
// Forward subtracts the row maximum before exponentiating. The subtraction
// is not optional: exp overflows for scores above ~709, and a single Inf
// corrupts every gradient downstream.
//
// Backward is fused with CrossEntropyLoss: see Backward.
type Softmax struct{}

// NewSoftmax creates a Softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward computes row-wise softmax:
//
//	P[i,:] = exp(x[i,:] - max(x[i,:])) / sum(exp(x[i,:] - max(x[i,:])))
//
// Every output entry is in (0, 1] and each row sums to 1.
func (s *Softmax) Forward(x *tensor.Tensor) *tensor.Tensor {
	r, c := x.Dims()
	out := tensor.Zeros(r, c)
	for i := 0; i < r; i++ {
		row := x.RowView(i)
		dst := out.RowView(i)

		maxV := row[0]
		for _, v := range row[1:] {
			if v > maxV {
				maxV = v
			}
		}

		var sum float64
		for j, v := range row {
			e := math.Exp(v - maxV)
			dst[j] = e
			sum += e
		}
		for j := range dst {
			dst[j] /= sum
		}
	}
	return out
}

// Backward propagates the upstream gradient to the pre-softmax scores.
//
// This layer is fused with CrossEntropyLoss at the gradient boundary: the
// combined Jacobian of softmax∘cross-entropy collapses to (P - Y)/N, which
// is exactly what CrossEntropyLoss.Backward produces. Under that convention
// dP is already the gradient with respect to the scores, so Backward passes
// it through unchanged. Feeding this layer a generic ∂L/∂P would require the
// full softmax Jacobian and is not supported.
func (s *Softmax) Backward(dP, x *tensor.Tensor) *tensor.Tensor {
	if !dP.SameShape(x) {
		panic("Softmax.Backward: gradient and input shapes differ")
	}
	return dP
}

// Parameters returns nil: softmax has nothing to train.
func (s *Softmax) Parameters() []*Parameter {
	return nil
}
