package nn

import (
	"github.com/fathom-ml/fathom/internal/tensor"
)

// Parameter is a trainable tensor with its gradient.
//
// Each affine layer owns one weight and one bias parameter. The gradient is
// filled by the network's backward pass and consumed by the optimizer, which
// updates the value in place.
//
// Example:
//
//	weight := nn.NewParameter("affine1.weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad() // nil until a backward pass has run
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter creates a trainable parameter around an initialized tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   nil, // set by the first backward pass
	}
}

// Name returns the parameter name (e.g. "affine2.bias").
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter value.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient, or nil if no backward pass has run since the
// last ZeroGrad.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad stores the gradient. Called by layer backward passes.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
//
// Call between iterations so stale gradients from a previous batch are never
// applied.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// NumParameters returns the total element count across params.
func NumParameters(params []*Parameter) int {
	total := 0
	for _, p := range params {
		r, c := p.Tensor().Dims()
		total += r * c
	}
	return total
}
