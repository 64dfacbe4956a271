// Package train owns the mini-batch training loop: batch slicing, the
// epoch/iteration state machine, the hyperparameter schedule and the
// per-iteration reporting sink.
package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/optim"
	"github.com/fathom-ml/fathom/internal/tensor"
)

// ErrNumericInstability reports a NaN or Inf loss. Gradient-descent state
// corrupted by a numeric failure cannot be meaningfully resumed, so the run
// aborts at the iteration that produced it.
var ErrNumericInstability = errors.New("train: numeric instability (NaN or Inf loss)")

// Config holds the trainer's hyperparameters.
//
// LearningRate and Momentum are the starting values of the schedule; the
// trainer mutates its working copies only at epoch boundaries. All fields
// are immutable during an iteration.
type Config struct {
	Epochs             int     // number of epochs to run
	IterationsPerEpoch int     // mini-batch iterations per epoch
	BatchSize          int     // rows per mini-batch
	LearningRate       float64 // initial learning rate
	LRDecay            float64 // multiplicative per-epoch decay (default 1.0)
	Momentum           float64 // initial momentum coefficient
	MomentumTarget     float64 // annealing asymptote (default: Momentum)
}

// withDefaults returns the config with zero-value fields filled in.
func (c Config) withDefaults() Config {
	if c.LRDecay == 0 {
		c.LRDecay = 1.0
	}
	if c.MomentumTarget == 0 {
		c.MomentumTarget = c.Momentum
	}
	return c
}

// Validate checks the config once, before the loop starts. A bad config is
// fatal: the loop never begins.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("train: epochs must be positive, got %d", c.Epochs)
	}
	if c.IterationsPerEpoch <= 0 {
		return fmt.Errorf("train: iterations per epoch must be positive, got %d", c.IterationsPerEpoch)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("train: batch size must be positive, got %d", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("train: learning rate must be positive, got %v", c.LearningRate)
	}
	if c.LRDecay < 0 {
		return fmt.Errorf("train: learning rate decay must be non-negative, got %v", c.LRDecay)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("train: momentum must be in [0, 1), got %v", c.Momentum)
	}
	if c.MomentumTarget < 0 || c.MomentumTarget >= 1 {
		return fmt.Errorf("train: momentum target must be in [0, 1), got %v", c.MomentumTarget)
	}
	return nil
}

// Dataset holds the training and validation tensors.
//
// Features and one-hot labels are row-aligned and already numerically
// encoded; the trainer does no parsing or re-encoding.
type Dataset struct {
	X    *tensor.Tensor // [n_train, features]
	Y    *tensor.Tensor // [n_train, classes], one-hot
	XVal *tensor.Tensor // [n_val, features]
	YVal *tensor.Tensor // [n_val, classes], one-hot
}

func (d Dataset) validate() error {
	if d.X == nil || d.Y == nil {
		return errors.New("train: training tensors must not be nil")
	}
	if d.XVal == nil || d.YVal == nil {
		return errors.New("train: validation tensors must not be nil")
	}
	if d.X.Rows() != d.Y.Rows() {
		return fmt.Errorf("train: training feature rows (%d) != label rows (%d)", d.X.Rows(), d.Y.Rows())
	}
	if d.XVal.Rows() != d.YVal.Rows() {
		return fmt.Errorf("train: validation feature rows (%d) != label rows (%d)", d.XVal.Rows(), d.YVal.Rows())
	}
	return nil
}

// Trainer drives the network and optimizer through the configured epochs.
//
// Trainer is the single owner of the parameter and velocity tensors while
// training runs: each iteration is one strict sequential
// forward → loss → backward → update cycle with no concurrency, and nothing
// else reads or writes the parameters between cycles.
type Trainer struct {
	cfg      Config
	net      *nn.Network
	data     Dataset
	opt      *optim.NesterovSGD
	reporter Reporter
}

// New validates cfg and data and builds a trainer. reporter may be nil to
// discard per-iteration records.
func New(cfg Config, net *nn.Network, data Dataset, reporter Reporter) (*Trainer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := data.validate(); err != nil {
		return nil, err
	}

	opt := optim.NewNesterovSGD(net.Parameters(), optim.NesterovConfig{
		LR:       cfg.LearningRate,
		Momentum: cfg.Momentum,
	})

	return &Trainer{
		cfg:      cfg,
		net:      net,
		data:     data,
		opt:      opt,
		reporter: reporter,
	}, nil
}

// batchWindow returns the half-open row range [start, end) for 1-indexed
// iteration i within an epoch:
//
//	start = ((i-1)·batchSize) mod n
//	end   = min(n, start+batchSize)
//
// The window origin wraps modulo the dataset size across iterations. Rows
// are never reshuffled, and when n is not an exact multiple of
// batchSize·iterationsPerEpoch an epoch does not necessarily touch every
// example. Both behaviors are kept deliberately; callers wanting coverage
// guarantees need a different sampler, not a "fixed" formula.
func batchWindow(i, batchSize, n int) (start, end int) {
	start = ((i - 1) * batchSize) % n
	end = start + batchSize
	if end > n {
		end = n
	}
	return start, end
}

// Train runs the configured epochs to completion and returns the trained
// parameters. There is no early stopping and no cancellation: the only ways
// out are epoch exhaustion and a fatal error.
func (t *Trainer) Train() ([]*nn.Parameter, error) {
	n := t.data.X.Rows()

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		for it := 1; it <= t.cfg.IterationsPerEpoch; it++ {
			start, end := batchWindow(it, t.cfg.BatchSize, n)
			xb := t.data.X.SliceRows(start, end)
			yb := t.data.Y.SliceRows(start, end)

			trainLoss, probs := t.net.TrainStep(xb, yb)
			if !isFinite(trainLoss) || probs.HasNonFinite() {
				return nil, fmt.Errorf("%w at epoch %d iteration %d", ErrNumericInstability, epoch, it)
			}

			t.opt.Step()
			t.opt.ZeroGrad()

			trainAcc := nn.Accuracy(probs, yb)

			valProbs := t.net.Forward(t.data.XVal)
			valLoss, valAcc := nn.Evaluate(valProbs, t.data.YVal)
			if !isFinite(valLoss) {
				return nil, fmt.Errorf("%w at epoch %d iteration %d (validation)", ErrNumericInstability, epoch, it)
			}

			if t.reporter != nil {
				t.reporter.Report(Report{
					Epoch:         epoch,
					Iteration:     it,
					TrainLoss:     trainLoss,
					TrainAccuracy: trainAcc,
					ValLoss:       valLoss,
					ValAccuracy:   valAcc,
				})
			}
		}

		t.epochBoundary(t.cfg.Epochs - epoch)
	}

	return t.net.Parameters(), nil
}

// epochBoundary applies the hyperparameter schedule once per epoch:
// momentum anneals toward its target, then the learning rate decays.
func (t *Trainer) epochBoundary(epochsRemaining int) {
	t.opt.SetMomentum(annealMomentum(t.opt.Momentum(), t.cfg.MomentumTarget, epochsRemaining))
	t.opt.SetLR(t.opt.LR() * t.cfg.LRDecay)
}

// annealMomentum moves mu toward target by 1/(1+epochsRemaining) of the
// gap. With zero epochs remaining it lands exactly on target.
func annealMomentum(mu, target float64, epochsRemaining int) float64 {
	return mu + (target-mu)/float64(1+epochsRemaining)
}

// LearningRate returns the optimizer's current learning rate.
func (t *Trainer) LearningRate() float64 {
	return t.opt.LR()
}

// Momentum returns the optimizer's current momentum coefficient.
func (t *Trainer) Momentum() float64 {
	return t.opt.Momentum()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
