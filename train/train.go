// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/fathom-ml/fathom/internal/nn"
	"github.com/fathom-ml/fathom/internal/train"
)

// ErrNumericInstability reports a NaN or Inf loss; the run aborts at the
// iteration that produced it.
var ErrNumericInstability = train.ErrNumericInstability

// Config holds the trainer's hyperparameters.
type Config = train.Config

// Dataset holds the training and validation tensors.
type Dataset = train.Dataset

// Trainer drives the network and optimizer through the configured epochs.
type Trainer = train.Trainer

// Report is the structured record emitted once per iteration.
type Report = train.Report

// Reporter consumes per-iteration training records.
type Reporter = train.Reporter

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc = train.ReporterFunc

// LogReporter prints one line per iteration through the standard log
// package.
type LogReporter = train.LogReporter

// New validates cfg and data and builds a trainer. reporter may be nil to
// discard per-iteration records.
func New(cfg Config, net *nn.Network, data Dataset, reporter Reporter) (*Trainer, error) {
	return train.New(cfg, net, data, reporter)
}
