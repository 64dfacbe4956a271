// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/optim"
)

// Optimizer is the interface all update rules implement.
type Optimizer = optim.Optimizer

// Config is the base configuration shared by optimizers.
type Config = optim.Config

// NesterovSGD is stochastic gradient descent with Nesterov momentum.
type NesterovSGD = optim.NesterovSGD

// NesterovConfig holds configuration for NesterovSGD.
type NesterovConfig = optim.NesterovConfig

// NewNesterovSGD creates the optimizer with zeroed velocities for params.
//
// Example:
//
//	optimizer := optim.NewNesterovSGD(net.Parameters(), optim.NesterovConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewNesterovSGD(params []*nn.Parameter, config NesterovConfig) *NesterovSGD {
	return optim.NewNesterovSGD(params, config)
}
