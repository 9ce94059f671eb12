package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "futsalbook",
			Name:      "registrations_total",
			Help:      "Successful user registrations.",
		},
	)

	transactionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "futsalbook",
			Name:      "transactions_created_total",
			Help:      "Transactions created at checkout, by payment method.",
		},
		[]string{"payment_method"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "futsalbook",
			Name:      "status_transitions_total",
			Help:      "Applied transaction status transitions.",
		},
		[]string{"from", "to"},
	)

	proofUploads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "futsalbook",
			Name:      "proof_uploads_total",
			Help:      "Payment proof images attached to transactions.",
		},
	)

	stalePending = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "futsalbook",
			Name:      "stale_pending_transactions",
			Help:      "Pending transactions older than the reminder cutoff.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			registrations,
			transactionsCreated,
			statusTransitions,
			proofUploads,
			stalePending,
		)
	})
}

func IncRegistrations() {
	registrations.Inc()
}

func IncTransactionsCreated(paymentMethod string) {
	transactionsCreated.WithLabelValues(paymentMethod).Inc()
}

func IncStatusTransitions(from, to string) {
	statusTransitions.WithLabelValues(from, to).Inc()
}

func IncProofUploads() {
	proofUploads.Inc()
}

func SetStalePending(n int) {
	stalePending.Set(float64(n))
}
