// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the mini-batch training loop.
//
// The Trainer owns the epoch/iteration state machine, contiguous wrapping
// batch slicing, the per-epoch hyperparameter schedule (learning-rate decay
// and momentum annealing) and the per-iteration reporting sink.
//
// Example:
//
//	trainer, err := train.New(train.Config{
//	    Epochs:             10,
//	    IterationsPerEpoch: 100,
//	    BatchSize:          32,
//	    LearningRate:       0.05,
//	    LRDecay:            0.95,
//	    Momentum:           0.5,
//	    MomentumTarget:     0.99,
//	}, net, data, &train.LogReporter{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params, err := trainer.Train()
package train
