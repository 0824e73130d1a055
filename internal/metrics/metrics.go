package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptsmith_auth_attempts_total",
		Help: "Password gate checks by outcome.",
	}, []string{"outcome"})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptsmith_generations_total",
		Help: "Prompt generations by provider and outcome.",
	}, []string{"provider", "outcome"})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promptsmith_generation_duration_seconds",
		Help:    "Time spent waiting on the generative model.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider"})

	PersonasLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "promptsmith_personas_loaded",
		Help: "Number of personas in the active catalog.",
	})
)
