package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/born-ml/scalargrad/internal/serialization"
	"github.com/born-ml/scalargrad/internal/train"
)

func newTrainCmd(c *cli) *cobra.Command {
	var (
		configPath     string
		checkpointPath string
		metricsPath    string
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an MLP on the configured dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := train.LoadConfig(configPath)
			if err != nil {
				return err
			}

			tr, err := train.New(cfg, train.WithLogger(c.logger))
			if err != nil {
				return err
			}

			res, err := tr.Fit(cmd.Context())
			if err != nil {
				return fmt.Errorf("training stopped after %d epochs: %w", res.Epochs, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %s after %d epochs, loss %.6f\n", res.RunID, res.Outcome, res.Epochs, res.FinalLoss)

			preds, err := tr.Predict(cfg.Dataset.Inputs)
			if err != nil {
				return err
			}
			printPredictions(out, preds, cfg.Dataset.Targets)

			if checkpointPath != "" {
				if err := serialization.WriteFile(checkpointPath, tr.Checkpoint(res)); err != nil {
					return fmt.Errorf("save checkpoint: %w", err)
				}
				c.logger.Info("checkpoint saved", "path", checkpointPath, "run_id", res.RunID)
			}

			if metricsPath != "" {
				if err := prometheus.WriteToTextfile(metricsPath, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "training config file (YAML)")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "write the trained model to this file")
	cmd.Flags().StringVar(&metricsPath, "metrics-out", "", "write Prometheus metrics to this file")
	return cmd
}
