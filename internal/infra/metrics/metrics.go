package metrics

import (
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crfms"

// Metrics holds the rental counters. It implements commands.Recorder.
type Metrics struct {
	Transitions   *prometheus.CounterVec
	Failures      *prometheus.CounterVec
	Payments      *prometheus.CounterVec
	BookedRevenue prometheus.Counter
	RentalDays    prometheus.Histogram
}

var _ commands.Recorder = (*Metrics)(nil)

// NewMetrics registers every collector on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Successful reservation and vehicle operations by name.",
		}, []string{"operation"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Rejected operations by name.",
		}, []string{"operation"}),

		Payments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Invoice payment signals by result.",
		}, []string{"result"}),

		BookedRevenue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booked_revenue_total",
			Help:      "Sum of reservation totals at booking time.",
		}),

		RentalDays: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rental_days",
			Help:      "Billed days per reservation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 14, 30},
		}),
	}
}

func (m *Metrics) Transition(name string) {
	m.Transitions.WithLabelValues(name).Inc()
}

func (m *Metrics) Failure(operation string) {
	m.Failures.WithLabelValues(operation).Inc()
}

func (m *Metrics) Payment(result string) {
	m.Payments.WithLabelValues(result).Inc()
}

func (m *Metrics) Booked(total money.Money, days int) {
	m.BookedRevenue.Add(total.Dollars())
	m.RentalDays.Observe(float64(days))
}
