// Package train runs gradient-descent epochs over a wiggle network.
package train

import (
	"context"
	"errors"
	"log"

	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/nn"
	"github.com/born-ml/wiggle/internal/optim"
)

// DefaultLogEvery is used when Config.LogEvery is zero.
const DefaultLogEvery = 1000

// Config captures the knobs of one training run.
type Config struct {
	Epochs   int
	LogEvery int         // Cost is recorded and logged every LogEvery epochs.
	Logger   *log.Logger // Defaults to log.Default(); set Quiet to silence.
	Quiet    bool
}

// Point is one recorded cost.
type Point struct {
	Epoch int
	Cost  float64
}

// Result summarizes a finished run.
type Result struct {
	Epochs    int
	FinalCost float64
	History   []Point
}

// Run trains net on ds for cfg.Epochs epochs. Each epoch estimates one
// gradient with est and applies it with opt.
//
// Cost is measured before the first epoch, every LogEvery epochs and after the
// last one. ctx is checked between epochs; on cancellation Run returns the
// partial result together with ctx.Err().
func Run(ctx context.Context, net *nn.Network, ds *dataset.Dataset, est nn.Estimator, opt optim.Optimizer, cfg Config) (Result, error) {
	if cfg.Epochs <= 0 {
		return Result{}, errors.New("train: epochs must be > 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = DefaultLogEvery
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	tr := net.NewTrace()
	res := Result{}
	record := func(epoch int) {
		c := net.Cost(ds, tr)
		res.History = append(res.History, Point{Epoch: epoch, Cost: c})
		res.FinalCost = c
		if !cfg.Quiet {
			logger.Printf("epoch=%d cost=%.6f estimator=%s lr=%g", epoch, c, est.Name(), opt.GetLR())
		}
	}

	record(0)
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			if res.History[len(res.History)-1].Epoch != res.Epochs {
				record(res.Epochs)
			}
			return res, err
		}

		opt.Step(net, est.Estimate(net, ds))
		res.Epochs = epoch

		if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs {
			record(epoch)
		}
	}

	return res, nil
}
