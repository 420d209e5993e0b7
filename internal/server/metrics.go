package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aurum_solves_total",
		Help: "Completed solve requests by function, direction, and outcome.",
	}, []string{"function", "direction", "status"})

	solveIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aurum_solve_iterations",
		Help:    "Iterations consumed per completed solve.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aurum_solve_duration_seconds",
		Help:    "Wall-clock duration of solve requests.",
		Buckets: prometheus.DefBuckets,
	})
)
