package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/born-ml/scalargrad/internal/serialization"
	"github.com/born-ml/scalargrad/internal/train"
)

func newEvalCmd(c *cli) *cobra.Command {
	var configPath, checkpointPath string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Load a checkpoint and evaluate it on the configured dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := train.LoadConfig(configPath)
			if err != nil {
				return err
			}

			f, err := serialization.ReadFile(checkpointPath)
			if err != nil {
				return fmt.Errorf("load checkpoint: %w", err)
			}
			model, err := train.LoadModel(f)
			if err != nil {
				return err
			}
			c.logger.Debug("checkpoint loaded", "path", checkpointPath, "run_id", f.RunID, "parameters", len(f.Parameters))

			preds, err := train.PredictWith(model, cfg.Dataset.Inputs, cfg.PredictParallelism())
			if err != nil {
				return err
			}
			printPredictions(cmd.OutOrStdout(), preds, cfg.Dataset.Targets)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file providing the dataset (YAML)")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "checkpoint to evaluate")
	_ = cmd.MarkFlagRequired("checkpoint")
	return cmd
}

func printPredictions(w io.Writer, preds, targets []float64) {
	var mse float64
	for i, p := range preds {
		d := p - targets[i]
		mse += d * d
		fmt.Fprintf(w, "  sample %d: prediction % .4f target % .4f\n", i, p, targets[i])
	}
	if len(preds) > 0 {
		mse /= float64(len(preds))
	}
	fmt.Fprintf(w, "mse %.6f\n", mse)
}
