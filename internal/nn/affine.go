package nn

import (
	"fmt"
	"math/rand"

	"github.com/fathom-ml/fathom/internal/tensor"
)

// Affine implements a fully connected layer.
//
// Performs the transformation: y = x·W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast across rows
//   - y is the output with shape [batch_size, out_features]
//
// Weights are initialized with Xavier/Glorot uniform, biases to zero.
// The layer holds no activation state: Backward receives the same input
// tensor that was passed to Forward.
type Affine struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
}

// NewAffine creates an Affine layer mapping inFeatures to outFeatures.
func NewAffine(name string, inFeatures, outFeatures int, rng *rand.Rand) *Affine {
	return &Affine{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter(name+".weight", Xavier(inFeatures, outFeatures, rng)),
		bias:        NewParameter(name+".bias", Zeros(1, outFeatures)),
	}
}

// Forward computes y = x·W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (a *Affine) Forward(x *tensor.Tensor) *tensor.Tensor {
	if x.Cols() != a.inFeatures {
		panic(fmt.Sprintf("Affine.Forward: expected input with %d features, got %d", a.inFeatures, x.Cols()))
	}
	return x.MatMul(a.weight.Tensor()).AddRow(a.bias.Tensor())
}

// Backward computes the layer gradients given the upstream gradient dY and
// the input x that was passed to Forward:
//
//	dX = dY·Wᵗ
//	dW = xᵗ·dY
//	dB = column-sum(dY)
//
// dW and dB are stored on the layer's parameters; dX is returned for the
// layer below.
func (a *Affine) Backward(dY, x *tensor.Tensor) *tensor.Tensor {
	if dY.Rows() != x.Rows() || dY.Cols() != a.outFeatures {
		panic(fmt.Sprintf("Affine.Backward: gradient shape (%d, %d) does not match output shape (%d, %d)",
			dY.Rows(), dY.Cols(), x.Rows(), a.outFeatures))
	}

	a.weight.SetGrad(x.T().MatMul(dY))
	a.bias.SetGrad(dY.SumRows())

	return dY.MatMul(a.weight.Tensor().T())
}

// Parameters returns [weight, bias].
func (a *Affine) Parameters() []*Parameter {
	return []*Parameter{a.weight, a.bias}
}

// Weight returns the weight parameter.
func (a *Affine) Weight() *Parameter {
	return a.weight
}

// Bias returns the bias parameter.
func (a *Affine) Bias() *Parameter {
	return a.bias
}

// InFeatures returns the input feature count.
func (a *Affine) InFeatures() int {
	return a.inFeatures
}

// OutFeatures returns the output feature count.
func (a *Affine) OutFeatures() int {
	return a.outFeatures
}
