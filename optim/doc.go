// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter-update rules used in training.
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
package optim
