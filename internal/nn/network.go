package nn

import (
	"fmt"
	"math/rand"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Layer is one stage of the fixed classification pipeline.
//
// Layers are pure with respect to activations: Backward receives the same
// input tensor that was passed to Forward, so no layer caches state between
// the two calls. Affine layers own parameters; activations own none.
type Layer interface {
	// Forward maps the layer input to its output.
	Forward(x *tensor.Tensor) *tensor.Tensor

	// Backward maps the upstream gradient dY and the Forward input x to
	// the gradient with respect to x, storing any parameter gradients on
	// the layer as a side effect.
	Backward(dY, x *tensor.Tensor) *tensor.Tensor

	// Parameters returns the layer's trainable parameters, if any.
	Parameters() []*Parameter
}

// Compile-time checks that all pipeline stages implement Layer.
var (
	_ Layer = (*Affine)(nil)
	_ Layer = (*LeakyReLU)(nil)
	_ Layer = (*Softmax)(nil)
)

// Network is a feed-forward classifier with a fixed topology:
//
//	Affine → LeakyReLU → Affine → LeakyReLU → Affine → Softmax
//
// The pipeline is an ordered layer list traversed front to back on the
// forward pass and back to front on the backward pass. The topology is
// deliberately not configurable: this engine trains exactly two hidden
// layers and is not a general graph runtime.
type Network struct {
	layers []Layer
	loss   *CrossEntropyLoss
}

// NewNetwork creates a classifier mapping in features through two hidden
// layers of h1 and h2 units to classes output units.
//
// Weights are Xavier-initialized from rng; biases start at zero.
func NewNetwork(in, h1, h2, classes int, rng *rand.Rand) *Network {
	if in <= 0 || h1 <= 0 || h2 <= 0 || classes <= 0 {
		panic(fmt.Sprintf("NewNetwork: invalid layer sizes (%d, %d, %d, %d)", in, h1, h2, classes))
	}
	return &Network{
		layers: []Layer{
			NewAffine("affine1", in, h1, rng),
			NewLeakyReLU(),
			NewAffine("affine2", h1, h2, rng),
			NewLeakyReLU(),
			NewAffine("affine3", h2, classes, rng),
			NewSoftmax(),
		},
		loss: NewCrossEntropyLoss(),
	}
}

// Forward runs the full pipeline and returns class probabilities with shape
// [batch_size, classes]. This is the prediction entry point.
func (n *Network) Forward(x *tensor.Tensor) *tensor.Tensor {
	cur := x
	for _, l := range n.layers {
		cur = l.Forward(cur)
	}
	return cur
}

// TrainStep runs one combined forward, loss and backward pass over a batch.
//
// The forward traversal records each layer's input; the backward traversal
// replays the list in reverse, seeding the chain with the fused
// cross-entropy gradient (P - Y)/N and leaving every parameter's gradient
// populated for the optimizer. Returns the batch loss and the predicted
// probabilities.
func (n *Network) TrainStep(x, y *tensor.Tensor) (loss float64, probs *tensor.Tensor) {
	inputs := make([]*tensor.Tensor, len(n.layers))

	cur := x
	for i, l := range n.layers {
		inputs[i] = cur
		cur = l.Forward(cur)
	}
	probs = cur

	loss = n.loss.Forward(probs, y)

	grad := n.loss.Backward(probs, y)
	for i := len(n.layers) - 1; i >= 0; i-- {
		grad = n.layers[i].Backward(grad, inputs[i])
	}

	return loss, probs
}

// Parameters returns all trainable parameters ordered by layer position.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range n.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
