package optim

import (
	"fmt"

	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/tensor"
)

// NesterovSGD implements stochastic gradient descent with Nesterov momentum.
//
// Update rule for parameter p with gradient g, velocity v, learning rate lr
// and momentum coefficient mu:
//
//	v ← mu·v - lr·g
//	p ← p + mu·v - lr·g        (lookahead form)
//
// With mu = 0 this reduces exactly to plain SGD: p ← p - lr·g.
//
// One velocity tensor is kept per parameter, zero-initialized and paired
// positionally with the parameter slice, so every parameter always has a
// velocity of identical shape.
//
// Example:
//
//	optimizer := optim.NewNesterovSGD(net.Parameters(), optim.NesterovConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for each batch {
//	    loss, _ := net.TrainStep(xb, yb)
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
type NesterovSGD struct {
	params     []*nn.Parameter
	velocities []*tensor.Tensor // one per parameter, same shape
	lr         float64
	momentum   float64
}

// NesterovConfig holds configuration for NesterovSGD.
type NesterovConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum coefficient, range [0, 1)
}

// Compile-time check that NesterovSGD implements Optimizer.
var _ Optimizer = (*NesterovSGD)(nil)

// NewNesterovSGD creates the optimizer with zeroed velocities for params.
func NewNesterovSGD(params []*nn.Parameter, config NesterovConfig) *NesterovSGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	velocities := make([]*tensor.Tensor, len(params))
	for i, p := range params {
		r, c := p.Tensor().Dims()
		velocities[i] = tensor.Zeros(r, c)
	}

	return &NesterovSGD{
		params:     params,
		velocities: velocities,
		lr:         config.LR,
		momentum:   config.Momentum,
	}
}

// nesterovUpdate applies the Nesterov lookahead rule to a single parameter.
//
// Pure with respect to its arguments: returns fresh tensors and mutates
// nothing. Step copies the results back into the live parameter and
// velocity storage.
func nesterovUpdate(p, v, g *tensor.Tensor, lr, mu float64) (pNew, vNew *tensor.Tensor) {
	vNew = v.Scale(mu).Sub(g.Scale(lr))
	pNew = p.Add(vNew.Scale(mu)).Sub(g.Scale(lr))
	return pNew, vNew
}

// Step applies one Nesterov update to every parameter with a gradient.
func (s *NesterovSGD) Step() {
	for i, p := range s.params {
		g := p.Grad()
		if g == nil {
			// Parameter did not take part in the backward pass.
			continue
		}
		if !g.SameShape(p.Tensor()) {
			panic(fmt.Sprintf("NesterovSGD.Step: gradient shape (%d, %d) does not match parameter %q shape (%d, %d)",
				g.Rows(), g.Cols(), p.Name(), p.Tensor().Rows(), p.Tensor().Cols()))
		}

		pNew, vNew := nesterovUpdate(p.Tensor(), s.velocities[i], g, s.lr, s.momentum)
		p.Tensor().CopyFrom(pNew)
		s.velocities[i].CopyFrom(vNew)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *NesterovSGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *NesterovSGD) LR() float64 {
	return s.lr
}

// SetLR replaces the learning rate.
func (s *NesterovSGD) SetLR(lr float64) {
	s.lr = lr
}

// Momentum returns the current momentum coefficient.
func (s *NesterovSGD) Momentum() float64 {
	return s.momentum
}

// SetMomentum replaces the momentum coefficient. Used by the trainer's
// per-epoch annealing schedule.
func (s *NesterovSGD) SetMomentum(mu float64) {
	s.momentum = mu
}

// Velocity returns the velocity tensor paired with parameter index i.
// Exposed for tests and diagnostics.
func (s *NesterovSGD) Velocity(i int) *tensor.Tensor {
	return s.velocities[i]
}
