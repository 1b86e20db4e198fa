// Package metrics exposes Prometheus collectors for simulation runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "scheduler"

const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	simulationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "simulations_total",
			Help:      "Count of scheduling simulations by algorithm and outcome.",
		},
		[]string{"algorithm", "outcome"},
	)
	averageWaitTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "average_wait_time_units",
			Help:      "Average process wait time of completed simulations, in simulated time units.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		},
		[]string{"algorithm"},
	)
	simulatedTime = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "simulated_time_units_total",
			Help:      "Total simulated timeline length across completed simulations.",
		},
		[]string{"algorithm"},
	)
)

// Registry holds every collector of this package.
var Registry = prometheus.NewRegistry()

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		Registry.MustRegister(simulationCounter)
		Registry.MustRegister(averageWaitTime)
		Registry.MustRegister(simulatedTime)
	})
}

// RecordSimulation records a completed simulation.
func RecordSimulation(algorithm string, avgWaitTime float64, totalTime int) {
	simulationCounter.WithLabelValues(algorithm, OutcomeSuccess).Inc()
	averageWaitTime.WithLabelValues(algorithm).Observe(avgWaitTime)
	simulatedTime.WithLabelValues(algorithm).Add(float64(totalTime))
}

// RecordFailure records a simulation that did not produce a report.
func RecordFailure(algorithm, outcome string) {
	simulationCounter.WithLabelValues(algorithm, outcome).Inc()
}
