// Package config loads and validates wiggle training runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/matrix"
	"github.com/born-ml/wiggle/internal/nn"
	"github.com/born-ml/wiggle/internal/optim"
	"gopkg.in/yaml.v3"
)

// TaskAdder names the binary adder task; every other task is a gate name.
const TaskAdder = "adder"

// Config captures the knobs of a training run.
type Config struct {
	Task      string  `yaml:"task"`
	Bits      int     `yaml:"bits"`
	Arch      []int   `yaml:"arch"`
	Estimator string  `yaml:"estimator"`
	Epochs    int     `yaml:"epochs"`
	Rate      float64 `yaml:"rate"`
	Eps       float64 `yaml:"eps"`
	Seed      uint64  `yaml:"seed"`
	InitMin   float64 `yaml:"init_min"`
	InitMax   float64 `yaml:"init_max"`
	LogEvery  int     `yaml:"log_every"`
}

// Overrides captures CLI supplied values. Zero values are ignored.
type Overrides struct {
	Task      string
	Bits      int
	Estimator string
	Epochs    int
	Rate      float64
	Seed      uint64
}

// Default returns a runnable config: [2,2,1] on OR with backprop. Bits is
// only read by the adder task.
func Default() *Config {
	return &Config{
		Task:      "or",
		Bits:      2,
		Estimator: nn.BackpropName,
		Epochs:    10_000,
		Rate:      optim.DefaultLR,
		Eps:       0.1,
		Seed:      1,
		InitMax:   1,
		LogEvery:  1000,
	}
}

// Load reads a YAML file over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over Default and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override. A changed task, or
// a changed adder width, drops an architecture that no longer fits.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Task != "" && !strings.EqualFold(o.Task, c.Task) {
		c.Task = o.Task
		c.Arch = nil
	}
	if o.Bits > 0 && o.Bits != c.Bits {
		c.Bits = o.Bits
		if strings.EqualFold(c.Task, TaskAdder) {
			c.Arch = nil
		}
	}
	if o.Estimator != "" {
		c.Estimator = o.Estimator
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Rate > 0 {
		c.Rate = o.Rate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}

// Validate verifies the config is runnable and fills derived defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	c.Task = strings.ToLower(strings.TrimSpace(c.Task))
	in, out, err := c.widths()
	if err != nil {
		return err
	}

	if len(c.Arch) == 0 {
		c.Arch = []int{in, 2 * in, out}
		if c.Task != TaskAdder {
			c.Arch = []int{in, 2, out}
		}
	}
	if len(c.Arch) < 2 {
		return fmt.Errorf("arch needs at least 2 widths (got %v)", c.Arch)
	}
	for _, w := range c.Arch {
		if w <= 0 {
			return fmt.Errorf("arch widths must be > 0 (got %v)", c.Arch)
		}
	}
	if c.Arch[0] != in || c.Arch[len(c.Arch)-1] != out {
		return fmt.Errorf("arch %v does not fit task %s (%d inputs, %d outputs)", c.Arch, c.Task, in, out)
	}

	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be > 0 (got %g)", c.Rate)
	}
	if c.Eps == 0 {
		c.Eps = 0.1
	}
	if _, err := nn.NewEstimator(c.Estimator, c.Eps); err != nil {
		return err
	}
	if c.InitMin == 0 && c.InitMax == 0 {
		c.InitMax = 1
	}
	if c.InitMax < c.InitMin {
		return fmt.Errorf("init_max %g is below init_min %g", c.InitMax, c.InitMin)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 1000
	}
	return nil
}

// widths returns the input and output width of the configured task.
func (c *Config) widths() (in, out int, err error) {
	if c.Task == TaskAdder {
		if c.Bits <= 0 {
			return 0, 0, fmt.Errorf("bits must be > 0 for the adder (got %d)", c.Bits)
		}
		return 2 * c.Bits, c.Bits + 1, nil
	}
	if _, err := dataset.GateByName(c.Task); err != nil {
		return 0, 0, fmt.Errorf("task: %w", err)
	}
	return 2, 1, nil
}

// Dataset builds the training set for the configured task.
func (c *Config) Dataset() (*dataset.Dataset, error) {
	if c.Task == TaskAdder {
		if c.Bits <= 0 {
			return nil, fmt.Errorf("bits must be > 0 for the adder (got %d)", c.Bits)
		}
		return dataset.Adder(c.Bits), nil
	}
	g, err := dataset.GateByName(c.Task)
	if err != nil {
		return nil, fmt.Errorf("task: %w", err)
	}
	return g.Dataset(), nil
}

// InitRange returns the parameter initialization range.
func (c *Config) InitRange() matrix.Range {
	return matrix.Range{Min: c.InitMin, Max: c.InitMax}
}

// Network returns a network of c.Arch randomized from c.Seed.
func (c *Config) Network() *nn.Network {
	net := nn.New(c.Arch...)
	net.Randomize(rand.New(rand.NewPCG(c.Seed, c.Seed)), c.InitRange())
	return net
}

// NewEstimator returns the configured gradient estimator.
func (c *Config) NewEstimator() (nn.Estimator, error) {
	return nn.NewEstimator(c.Estimator, c.Eps)
}

// NewOptimizer returns plain SGD at the configured rate.
func (c *Config) NewOptimizer() *optim.SGD {
	return optim.NewSGD(optim.SGDConfig{LR: c.Rate})
}
