// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix used by wiggle networks.
//
// # Overview
//
// A Matrix is a row-major rows×cols grid with a fixed shape. Operations that
// combine matrices panic on shape mismatch; every other failure mode is a
// programming error as well.
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/wiggle/matrix"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(1, 1))
//
//	    a := matrix.Random(2, 3, rng, matrix.UnitRange)
//	    b := matrix.Full(3, 1, 0.5)
//
//	    c := a.Dot(b)        // 2×1
//	    c.Apply(math.Tanh)   // in place
//	    fmt.Println(c.Named("c", 4))
//	}
//
// # Loading Tables
//
// LoadStrided fills a matrix from a flat table whose rows carry both features
// and labels, skipping the label column when cols > 1 and taking only the
// label column when cols == 1:
//
//	table := []float64{0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 1}
//	x := matrix.New(4, 2)
//	x.LoadStrided(table, 3)
//	y := matrix.New(4, 1)
//	y.LoadStrided(table[2:], 3)
//
// # Interop
//
// Dense and FromDense convert to and from gonum's mat.Dense.
package matrix
