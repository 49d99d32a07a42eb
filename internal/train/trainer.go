package train

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/parallel"
	"github.com/born-ml/scalargrad/internal/scalar"
)

// Outcomes recorded on the runs counter.
const (
	OutcomeCompleted = "completed"
	OutcomeConverged = "converged"
	OutcomeCanceled  = "canceled"
)

// Trainer fits an MLP to a dataset with full-batch gradient descent.
type Trainer struct {
	cfg    Config
	model  *nn.MLP
	opt    optim.Optimizer
	logger *slog.Logger
	tracer trace.Tracer
}

// Result summarizes a training run.
type Result struct {
	RunID     string
	Epochs    int       // epochs actually run
	Losses    []float64 // loss after each epoch
	FinalLoss float64
	Outcome   string
	Duration  time.Duration
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) { t.logger = logger }
}

// WithTracer sets the tracer (default otel.Tracer("scalargrad/train")).
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Trainer) { t.tracer = tracer }
}

// WithModel trains an existing model instead of building one from the config.
// The model's input size must match cfg.InputSize.
func WithModel(model *nn.MLP) Option {
	return func(t *Trainer) { t.model = model }
}

// New validates cfg and builds the model and optimizer it describes.
func New(cfg Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	t := &Trainer{cfg: cfg}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.tracer == nil {
		t.tracer = otel.Tracer("scalargrad/train")
	}

	if t.model == nil {
		weightInit, ok := nn.InitializerByName(cfg.Init)
		if !ok {
			return nil, fmt.Errorf("unknown initializer %q", cfg.Init)
		}
		modelOpts := []nn.Option{nn.WithSeed(cfg.Seed), nn.WithInitializer(weightInit)}
		if cfg.LinearOutput {
			modelOpts = append(modelOpts, nn.WithLinearOutput())
		}
		t.model = nn.NewMLP(cfg.InputSize, cfg.Sizes, modelOpts...)
	} else if t.model.InputSize() != cfg.InputSize {
		return nil, fmt.Errorf("model expects %d inputs, config has %d", t.model.InputSize(), cfg.InputSize)
	}

	opt, err := optim.New(cfg.Optimizer, t.model.Parameters(), cfg.LR, cfg.Momentum)
	if err != nil {
		return nil, err
	}
	t.opt = opt
	return t, nil
}

// Model returns the model being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Config returns the trainer's configuration.
func (t *Trainer) Config() Config {
	return t.cfg
}

// Fit runs up to cfg.Epochs epochs. Each epoch zeroes gradients, forwards
// every sample, takes the mean squared error, backpropagates and steps the
// optimizer.
//
// Training stops early when the loss drops below cfg.TargetLoss or when ctx
// is done. Cancellation is checked between epochs; the partial result is
// returned together with ctx.Err().
func (t *Trainer) Fit(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:   uuid.NewString(),
		Losses:  make([]float64, 0, t.cfg.Epochs),
		Outcome: OutcomeCompleted,
	}

	ctx, span := t.tracer.Start(ctx, "train.Fit",
		trace.WithAttributes(
			attribute.String("train.run_id", res.RunID),
			attribute.String("train.optimizer", t.cfg.Optimizer),
			attribute.Int("train.epochs", t.cfg.Epochs),
			attribute.Int("train.parameters", len(t.model.Parameters())),
		),
	)
	defer span.End()

	logger := t.logger.With(slog.String("run_id", res.RunID))
	logger.Info("training started",
		slog.Any("sizes", t.cfg.Sizes),
		slog.String("optimizer", t.cfg.Optimizer),
		slog.Float64("lr", t.cfg.LR),
		slog.Int("epochs", t.cfg.Epochs),
		slog.Int("samples", len(t.cfg.Dataset.Inputs)),
	)

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			res.Outcome = OutcomeCanceled
			t.finish(res, start)
			span.RecordError(err)
			span.SetStatus(codes.Error, "context canceled")
			logger.Warn("training canceled", slog.Int("epoch", res.Epochs), slog.Any("error", err))
			return res, err
		}

		loss := t.epoch(ctx, epoch)
		res.Epochs = epoch
		res.Losses = append(res.Losses, loss)
		res.FinalLoss = loss
		epochsTotal.Inc()
		lossGauge.Set(loss)

		if t.cfg.LogEvery > 0 && epoch%t.cfg.LogEvery == 0 {
			logger.Info("epoch complete", slog.Int("epoch", epoch), slog.Float64("loss", loss))
		}

		if t.cfg.TargetLoss > 0 && loss < t.cfg.TargetLoss {
			res.Outcome = OutcomeConverged
			break
		}
	}

	t.finish(res, start)
	span.SetAttributes(attribute.Float64("train.final_loss", res.FinalLoss))
	span.SetStatus(codes.Ok, "")
	logger.Info("training finished",
		slog.String("outcome", res.Outcome),
		slog.Int("epochs", res.Epochs),
		slog.Float64("final_loss", res.FinalLoss),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (t *Trainer) finish(res *Result, start time.Time) {
	res.Duration = time.Since(start)
	runsTotal.WithLabelValues(res.Outcome).Inc()
}

// epoch runs one full-batch step and returns the loss before the update.
func (t *Trainer) epoch(ctx context.Context, epoch int) float64 {
	_, span := t.tracer.Start(ctx, "train.epoch",
		trace.WithAttributes(attribute.Int("train.epoch", epoch)),
	)
	defer span.End()

	t.opt.ZeroGrad()

	preds := make([]*scalar.Node, len(t.cfg.Dataset.Inputs))
	for i, row := range t.cfg.Dataset.Inputs {
		preds[i] = t.model.ForwardValues(row...)[0]
	}
	loss := nn.MSELoss(preds, autodiff.Leaves(t.cfg.Dataset.Targets...))

	autodiff.Backward(loss)
	t.opt.Step()

	span.SetAttributes(attribute.Float64("train.loss", loss.Value()))
	return loss.Value()
}

// Predict returns the model output for each input row. Rows are evaluated
// concurrently only when cfg.ParallelPredict is set.
func (t *Trainer) Predict(inputs [][]float64) ([]float64, error) {
	return PredictWith(t.model, inputs, t.cfg.PredictParallelism())
}

// Predict runs model on each row, one after another, and returns the first
// output of each.
func Predict(model *nn.MLP, inputs [][]float64) ([]float64, error) {
	return PredictWith(model, inputs, parallel.Sequential())
}

// PredictWith is Predict with explicit parallelism. Each row builds its own
// forward graph and only reads the shared parameters; no backward pass or
// parameter update runs here.
func PredictWith(model *nn.MLP, inputs [][]float64, pcfg parallel.Config) ([]float64, error) {
	for i, row := range inputs {
		if len(row) != model.InputSize() {
			return nil, fmt.Errorf("input %d has %d features, model expects %d", i, len(row), model.InputSize())
		}
	}
	return parallel.Map(len(inputs), func(i int) float64 {
		return model.ForwardValues(inputs[i]...)[0].Value()
	}, pcfg), nil
}
