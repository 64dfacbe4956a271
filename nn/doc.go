// Copyright 2025 Fathom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers, loss and network composition of the
// feed-forward classifier.
//
// # Overview
//
// This package contains:
//   - Layers: Affine, LeakyReLU, Softmax
//   - Loss: CrossEntropyLoss (fused softmax gradient)
//   - Composition: Network — the fixed Affine→LeakyReLU→Affine→LeakyReLU→
//     Affine→Softmax pipeline
//   - Utilities: Parameter, Xavier initialization, Evaluate/Accuracy
//
// # Basic usage
//
//	rng := rand.New(rand.NewSource(1))
//	net := nn.NewNetwork(784, 128, 64, 10, rng)
//
//	probs := net.Forward(x)                  // prediction
//	loss, probs := net.TrainStep(xb, yb)     // training cycle
//	loss, acc := nn.Evaluate(probs, targets) // evaluation
//
// Layers are pure over tensors: Backward takes the upstream gradient and
// the original Forward input, so nothing caches activations between calls.
package nn
