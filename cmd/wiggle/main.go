// Package main provides the wiggle CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/born-ml/wiggle/internal/config"
	"github.com/born-ml/wiggle/internal/train"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("wiggle %s\n", version)
	case "train":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runTrain(ctx, os.Args[2:], os.Stdout); err != nil {
			stop()
			log.Fatalf("train: %v", err)
		}
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "wiggle - a tiny neural network trainer")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train a network on a logic gate or adder (see train -h)")
}

func runTrain(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	task := fs.String("task", "", "Task: or, and, nand, xor or adder")
	bits := fs.Int("bits", 0, "Adder width in bits (default 2)")
	estimator := fs.String("estimator", "", "Gradient estimator: backprop or finite-diff")
	epochs := fs.Int("epochs", 0, "Override number of epochs")
	rate := fs.Float64("rate", 0, "Override learning rate")
	seed := fs.Uint64("seed", 0, "Override random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(config.Overrides{
		Task:      *task,
		Bits:      *bits,
		Estimator: *estimator,
		Epochs:    *epochs,
		Rate:      *rate,
		Seed:      *seed,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	ds, err := cfg.Dataset()
	if err != nil {
		return err
	}
	est, err := cfg.NewEstimator()
	if err != nil {
		return err
	}
	net := cfg.Network()

	logger := log.New(out, "", log.LstdFlags)
	logger.Printf("task=%s arch=%v params=%d estimator=%s epochs=%d rate=%g seed=%d",
		cfg.Task, cfg.Arch, net.NumParams(), est.Name(), cfg.Epochs, cfg.Rate, cfg.Seed)

	res, err := train.Run(ctx, net, ds, est, cfg.NewOptimizer(), train.Config{
		Epochs:   cfg.Epochs,
		LogEvery: cfg.LogEvery,
		Logger:   logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	rep := train.Evaluate(net, ds, 0.5)
	logger.Printf("done epochs=%d cost=%.6f failures=%d/%d", res.Epochs, res.FinalCost, rep.Failures, rep.Rows)
	for _, m := range rep.Mismatches {
		logger.Printf("mismatch row=%d input=%v want=%v got=%.3f", m.Row, m.Input, m.Want, m.Got)
	}

	return err
}
