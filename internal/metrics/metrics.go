// Package metrics provides Prometheus instrumentation for the
// fluctuation calculator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for CalculationsTotal.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

var (
	// CalculationsTotal counts fluctuation calculations by outcome.
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fluctuation_calculations_total",
		Help: "Number of fluctuation range calculations, labeled by outcome.",
	}, []string{"outcome"})

	// CalculationDuration observes the time spent on one calculation.
	CalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fluctuation_calculation_duration_seconds",
		Help:    "Time spent computing a fluctuation range.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler exposes the default Prometheus registry over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
