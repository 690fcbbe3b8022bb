package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/wiggle/internal/matrix"
)

// ErrUnknownGate is returned by GateByName for names that have no table.
var ErrUnknownGate = errors.New("unknown gate")

// Gate is a two-input boolean truth table stored flat with stride 3
// (x1, x2, label).
type Gate struct {
	Name   string
	Symbol string
	Table  []float64
}

// Dataset returns the gate's table as a Dataset.
func (g Gate) Dataset() *Dataset {
	return FromSamples(g.Table, 3)
}

// Built-in gates.
var (
	OR = Gate{Name: "or", Symbol: "|", Table: []float64{
		0, 0, 0,
		0, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}}

	AND = Gate{Name: "and", Symbol: "&", Table: []float64{
		0, 0, 0,
		0, 1, 0,
		1, 0, 0,
		1, 1, 1,
	}}

	NAND = Gate{Name: "nand", Symbol: "~&", Table: []float64{
		0, 0, 1,
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	}}

	XOR = Gate{Name: "xor", Symbol: "^", Table: []float64{
		0, 0, 0,
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	}}
)

// Gates returns every built-in gate.
func Gates() []Gate {
	return []Gate{OR, AND, NAND, XOR}
}

// GateByName looks a gate up by name or symbol, case-insensitively.
func GateByName(name string) (Gate, error) {
	for _, g := range Gates() {
		if strings.EqualFold(g.Name, name) || g.Symbol == name {
			return g, nil
		}
	}
	return Gate{}, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

// Adder builds the full truth table of a bits-wide binary adder.
//
// Row x*2^bits + y encodes x in columns [0, bits) and y in [bits, 2*bits),
// least significant bit first. Targets hold the low bits of x+y in columns
// [0, bits) and the carry (x+y >= 2^bits) in column bits.
func Adder(bits int) *Dataset {
	if bits <= 0 {
		panic(fmt.Sprintf("dataset.Adder: invalid width %d", bits))
	}

	n := 1 << bits
	rows := n * n
	inputs := matrix.New(rows, 2*bits)
	targets := matrix.New(rows, bits+1)

	for i := 0; i < rows; i++ {
		x := i / n
		y := i % n
		z := x + y
		for j := 0; j < bits; j++ {
			inputs.Set(i, j, bit(x, j))
			inputs.Set(i, j+bits, bit(y, j))
			targets.Set(i, j, bit(z, j))
		}
		if z >= n {
			targets.Set(i, bits, 1)
		}
	}

	return New(inputs, targets)
}

func bit(v, j int) float64 {
	return float64((v >> j) & 1)
}
