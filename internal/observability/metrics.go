// internal/observability/metrics.go
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InferencesCreated counts inferences successfully registered and
	// published to a model channel.
	InferencesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inference_back_inferences_created_total",
		Help: "Inferences registered and dispatched to a model channel.",
	})

	// ResultsProcessed counts result messages the listener turned into a
	// stored Result and a completed inference.
	ResultsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inference_back_results_processed_total",
		Help: "Result messages successfully ingested by the listener.",
	})

	// ListenerFailures counts dropped result messages by failure reason.
	ListenerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inference_back_listener_failures_total",
		Help: "Result messages dropped by the listener.",
	}, []string{"reason"})
)
