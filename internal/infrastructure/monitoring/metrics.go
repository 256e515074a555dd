package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersCreatedTotal  prometheus.Counter
	PaymentsRecordedTotal  prometheus.Counter
	PaymentAmountCollected prometheus.Counter
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "collection_portal_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "collection_portal_customers_created_total",
				Help: "Total number of customer accounts created.",
			},
		),
		PaymentsRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "collection_portal_payments_recorded_total",
				Help: "Total number of daily payment upserts.",
			},
		),
		PaymentAmountCollected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "collection_portal_payment_amount_collected_total",
				Help: "Running total of collected payment amounts.",
			},
		),
	}
)
