// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/tensor"
)

// DefaultLeakySlope is the negative-side slope used by NewLeakyReLU.
const DefaultLeakySlope = nn.DefaultLeakySlope

// Parameter is a trainable tensor with its gradient.
type Parameter = nn.Parameter

// NewParameter creates a trainable parameter around an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layer is one stage of the fixed classification pipeline.
type Layer = nn.Layer

// Layers

// Affine is a fully connected layer computing y = x·W + b.
type Affine = nn.Affine

// NewAffine creates an Affine layer with Xavier-initialized weights.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewAffine("affine1", 784, 128, rng)
func NewAffine(name string, inFeatures, outFeatures int, rng *rand.Rand) *Affine {
	return nn.NewAffine(name, inFeatures, outFeatures, rng)
}

// LeakyReLU is a leaky rectified linear activation.
type LeakyReLU = nn.LeakyReLU

// NewLeakyReLU creates a LeakyReLU with DefaultLeakySlope.
func NewLeakyReLU() *LeakyReLU {
	return nn.NewLeakyReLU()
}

// NewLeakyReLUWithSlope creates a LeakyReLU with the given negative slope.
func NewLeakyReLUWithSlope(slope float64) *LeakyReLU {
	return nn.NewLeakyReLUWithSlope(slope)
}

// Softmax normalizes each row of scores into a probability distribution.
type Softmax = nn.Softmax

// NewSoftmax creates a Softmax layer.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// Loss

// CrossEntropyLoss computes cross-entropy against one-hot targets. Its
// Backward returns (P - Y)/N, the gradient with respect to the pre-softmax
// scores (fused convention).
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Composition

// Network is the fixed two-hidden-layer feed-forward classifier.
type Network = nn.Network

// NewNetwork creates a classifier mapping in features through hidden layers
// of h1 and h2 units to classes output units.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	net := nn.NewNetwork(784, 128, 64, 10, rng)
func NewNetwork(in, h1, h2, classes int, rng *rand.Rand) *Network {
	return nn.NewNetwork(in, h1, h2, classes, rng)
}

// Initialization

// Xavier returns a fanIn×fanOut tensor with Xavier/Glorot uniform values.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, rng)
}

// Evaluation

// Evaluate computes loss and accuracy for probabilities against one-hot
// targets.
func Evaluate(probs, targets *tensor.Tensor) (loss, accuracy float64) {
	return nn.Evaluate(probs, targets)
}

// Accuracy returns the fraction of rows whose argmax matches the target
// argmax. Ties resolve to the lowest class index.
func Accuracy(probs, targets *tensor.Tensor) float64 {
	return nn.Accuracy(probs, targets)
}

// NumParameters returns the total element count across params.
func NumParameters(params []*Parameter) int {
	return nn.NumParameters(params)
}
