// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs gradient descent over a dataset and checks the result.
//
// # Basic Usage
//
//	net := nn.New(2, 2, 1)
//	net.Randomize(rand.New(rand.NewPCG(1, 1)), matrix.UnitRange)
//	ds := dataset.OR.Dataset()
//
//	res, err := train.Run(ctx, net, ds, nn.Backprop{},
//	    optim.NewSGD(optim.SGDConfig{LR: 0.1}),
//	    train.Config{Epochs: 10_000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep := train.Evaluate(net, ds, 0.5)
//	fmt.Println(res.FinalCost, rep.OK())
package train

import (
	"context"

	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/nn"
	"github.com/born-ml/wiggle/internal/optim"
	"github.com/born-ml/wiggle/internal/train"
)

// Config captures the knobs of one training run.
type Config = train.Config

// Point is one recorded cost.
type Point = train.Point

// Result summarizes a finished run.
type Result = train.Result

// Report is the outcome of Evaluate.
type Report = train.Report

// Mismatch describes one example the network gets wrong.
type Mismatch = train.Mismatch

// DefaultLogEvery is used when Config.LogEvery is zero.
const DefaultLogEvery = train.DefaultLogEvery

// Run trains net on ds for cfg.Epochs epochs.
func Run(ctx context.Context, net *nn.Network, ds *dataset.Dataset, est nn.Estimator, opt optim.Optimizer, cfg Config) (Result, error) {
	return train.Run(ctx, net, ds, est, opt, cfg)
}

// Evaluate thresholds every output of net over ds and reports wrong rows.
func Evaluate(net *nn.Network, ds *dataset.Dataset, threshold float64) Report {
	return train.Evaluate(net, ds, threshold)
}
