package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cutoff_calculations_total",
		Help: "Number of filter calculations performed, by solved quantity.",
	}, []string{"solved"})

	curveExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cutoff_curve_exports_total",
		Help: "Number of response curve exports generated.",
	})
)
