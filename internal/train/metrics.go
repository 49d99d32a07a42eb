package train

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	epochsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scalargrad",
		Subsystem: "train",
		Name:      "epochs_total",
		Help:      "Total training epochs completed across all runs",
	})

	lossGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "scalargrad",
		Subsystem: "train",
		Name:      "loss",
		Help:      "Loss after the most recent epoch",
	})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scalargrad",
		Subsystem: "train",
		Name:      "runs_total",
		Help:      "Training runs by outcome",
	}, []string{"outcome"})
)
