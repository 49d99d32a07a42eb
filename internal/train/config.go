package train

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/scalargrad/internal/parallel"
)

// Env var overrides applied by LoadConfig.
const (
	EnvOptimizer  = "SCALARGRAD_OPTIMIZER"
	EnvLR         = "SCALARGRAD_LR"
	EnvMomentum   = "SCALARGRAD_MOMENTUM"
	EnvEpochs     = "SCALARGRAD_EPOCHS"
	EnvSeed       = "SCALARGRAD_SEED"
	EnvTargetLoss = "SCALARGRAD_TARGET_LOSS"
	EnvLogEvery   = "SCALARGRAD_LOG_EVERY"
)

var configValidate = validator.New()

// Config configures a training run.
type Config struct {
	// Model
	InputSize    int    `yaml:"input_size" validate:"gt=0"`
	Sizes        []int  `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	LinearOutput bool   `yaml:"linear_output"`
	Init         string `yaml:"init" validate:"omitempty,oneof=uniform xavier zeros"`

	// Optimization
	Optimizer  string  `yaml:"optimizer" validate:"oneof=sgd adam"`
	LR         float64 `yaml:"lr" validate:"gt=0"`
	Momentum   float64 `yaml:"momentum" validate:"gte=0,lt=1"`
	Epochs     int     `yaml:"epochs" validate:"gt=0"`
	Seed       int64   `yaml:"seed"`
	TargetLoss float64 `yaml:"target_loss" validate:"gte=0"`
	LogEvery   int     `yaml:"log_every" validate:"gte=0"`

	// Evaluate prediction rows on several goroutines. Training is always sequential.
	ParallelPredict bool `yaml:"parallel_predict"`

	Dataset Dataset `yaml:"dataset"`
}

// Dataset is a list of input rows with one scalar target each.
type Dataset struct {
	Inputs  [][]float64 `yaml:"inputs" validate:"required,min=1"`
	Targets []float64   `yaml:"targets" validate:"required,min=1"`
}

// DefaultDataset returns the four-sample binary classification set.
func DefaultDataset() Dataset {
	return Dataset{
		Inputs: [][]float64{
			{2.0, 3.0, -1.0},
			{3.0, -1.0, 0.5},
			{0.5, 1.0, 1.0},
			{1.0, 1.0, -1.0},
		},
		Targets: []float64{1.0, -1.0, -1.0, 1.0},
	}
}

// DefaultConfig returns a 3-4-4-1 tanh MLP trained with plain SGD on the
// default dataset.
func DefaultConfig() Config {
	return Config{
		InputSize:  3,
		Sizes:      []int{4, 4, 1},
		Init:       "uniform",
		Optimizer:  "sgd",
		LR:         0.05,
		Epochs:     100,
		Seed:       42,
		TargetLoss: 0,
		LogEvery:   10,
		Dataset:    DefaultDataset(),
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// environment variables, in that order, then validates the result.
//
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	//nolint:gosec // G304: config path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func loadConfigFromEnv(cfg *Config) error {
	if v := os.Getenv(EnvOptimizer); v != "" {
		cfg.Optimizer = v
	}
	if v := os.Getenv(EnvLR); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLR, err)
		}
		cfg.LR = f
	}
	if v := os.Getenv(EnvMomentum); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMomentum, err)
		}
		cfg.Momentum = f
	}
	if v := os.Getenv(EnvEpochs); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEpochs, err)
		}
		cfg.Epochs = i
	}
	if v := os.Getenv(EnvSeed); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = i
	}
	if v := os.Getenv(EnvTargetLoss); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTargetLoss, err)
		}
		cfg.TargetLoss = f
	}
	if v := os.Getenv(EnvLogEvery); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogEvery, err)
		}
		cfg.LogEvery = i
	}
	return nil
}

// PredictParallelism returns the fan-out used for batch prediction.
func (c Config) PredictParallelism() parallel.Config {
	if c.ParallelPredict {
		return parallel.DefaultConfig()
	}
	return parallel.Sequential()
}

// Validate checks field constraints and that the dataset fits the model.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return err
	}
	if out := c.Sizes[len(c.Sizes)-1]; out != 1 {
		return fmt.Errorf("output layer must have 1 neuron for scalar targets, got %d", out)
	}
	if len(c.Dataset.Inputs) != len(c.Dataset.Targets) {
		return fmt.Errorf("dataset has %d inputs but %d targets", len(c.Dataset.Inputs), len(c.Dataset.Targets))
	}
	for i, row := range c.Dataset.Inputs {
		if len(row) != c.InputSize {
			return fmt.Errorf("dataset input %d has %d features, want %d", i, len(row), c.InputSize)
		}
	}
	return nil
}
