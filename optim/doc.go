// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rules for wiggle networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent, param -= LR * grad
//   - Optimizer interface for custom update rules
//
// # Basic Usage
//
//	net := nn.New(2, 2, 1)
//	ds := dataset.OR.Dataset()
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	for range 10_000 {
//	    opt.Step(net, nn.Backprop{}.Estimate(net, ds))
//	}
package optim
