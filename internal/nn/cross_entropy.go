package nn

import (
	"fmt"
	"math"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// CrossEntropyLoss computes cross-entropy between predicted probabilities
// and one-hot targets.
//
// Mathematical formulation:
//
//	Loss = -mean_i( sum_k( Y[i,k] · log(P[i,k]) ) )
//
// Gradient convention: Backward returns (P - Y)/N, the gradient of the loss
// with respect to the *pre-softmax scores*. This is the fused
// softmax∘cross-entropy Jacobian; Softmax.Backward is a pass-through under
// the same convention, so chaining the two never double-applies the softmax
// derivative.
//
// P must come from a prior Softmax.Forward so that every entry is strictly
// positive; a zero probability at a one-hot position has infinite loss and
// indicates an upstream numeric failure.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward returns the mean negative log-likelihood of the one-hot targets
// under the predicted distribution.
//
//   - probs: [batch_size, num_classes], rows summing to 1
//   - targets: [batch_size, num_classes], one-hot
func (c *CrossEntropyLoss) Forward(probs, targets *tensor.Tensor) float64 {
	if !probs.SameShape(targets) {
		panic(fmt.Sprintf("CrossEntropyLoss.Forward: probs shape (%d, %d) vs targets shape (%d, %d)",
			probs.Rows(), probs.Cols(), targets.Rows(), targets.Cols()))
	}

	n, k := probs.Dims()
	var total float64
	for i := 0; i < n; i++ {
		pr := probs.RowView(i)
		yr := targets.RowView(i)
		for j := 0; j < k; j++ {
			if yr[j] == 0 {
				continue
			}
			if pr[j] <= 0 {
				panic(fmt.Sprintf("CrossEntropyLoss.Forward: non-positive probability %v at (%d, %d); probabilities must come from softmax", pr[j], i, j))
			}
			total -= yr[j] * math.Log(pr[j])
		}
	}
	return total / float64(n)
}

// Backward returns (probs - targets)/N: the gradient of the mean loss with
// respect to the pre-softmax scores under the fused convention documented
// on the type.
func (c *CrossEntropyLoss) Backward(probs, targets *tensor.Tensor) *tensor.Tensor {
	if !probs.SameShape(targets) {
		panic(fmt.Sprintf("CrossEntropyLoss.Backward: probs shape (%d, %d) vs targets shape (%d, %d)",
			probs.Rows(), probs.Cols(), targets.Rows(), targets.Cols()))
	}
	n := probs.Rows()
	return probs.Sub(targets).Scale(1.0 / float64(n))
}
