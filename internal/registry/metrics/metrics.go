package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeAborted   = "aborted"
)

// Metrics provides observability for the registry module.
// Tracks composite transaction outcomes, their durations and record creation.
type Metrics struct {
	Transactions        *prometheus.CounterVec
	TransactionDuration *prometheus.HistogramVec
	RecordsCreated      *prometheus.CounterVec
	PublishFailures     prometheus.Counter
}

// New registers the registry metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the registry metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corpreg_transactions_total",
			Help: "Composite registry transactions by operation and outcome",
		}, []string{"operation", "outcome"}),
		TransactionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "corpreg_transaction_duration_seconds",
			Help:    "Duration of composite registry transactions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "corpreg_records_created_total",
			Help: "Records created by kind (person, company, shareholding)",
		}, []string{"kind"}),
		PublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "corpreg_event_publish_failures_total",
			Help: "Domain events that could not be delivered to the broker",
		}),
	}
}

// ObserveTransaction records the outcome and duration of a composite
// transaction. Call with time.Now() taken at the start of the operation.
func (m *Metrics) ObserveTransaction(operation, outcome string, start time.Time) {
	m.Transactions.WithLabelValues(operation, outcome).Inc()
	m.TransactionDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncrementCreated records n created records of kind.
func (m *Metrics) IncrementCreated(kind string, n int) {
	m.RecordsCreated.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) IncrementPublishFailures() {
	m.PublishFailures.Inc()
}
