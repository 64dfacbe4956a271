// Package optim implements parameter-update rules for training.
//
// The package provides:
//   - Optimizer: the interface the trainer drives
//   - NesterovSGD: mini-batch gradient descent with Nesterov momentum
//
// Optimizers read gradients from nn.Parameter and update the parameter
// values in place; the trainer owns learning-rate and momentum scheduling
// and pushes new values through the Set accessors at epoch boundaries.
package optim

// Optimizer is the interface all update rules implement.
type Optimizer interface {
	// Step applies one gradient update to every parameter that has a
	// gradient. Parameters with a nil gradient are skipped.
	Step()

	// ZeroGrad clears all parameter gradients. Call after Step so the
	// next backward pass starts clean.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR replaces the learning rate. Used for per-epoch decay.
	SetLR(lr float64)
}

// Config is the base configuration shared by optimizers.
type Config struct {
	LR float64 // learning rate (default 0.01)
}
