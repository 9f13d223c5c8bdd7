package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the tracker.
type Metrics struct {
	MutationsTotal  *prometheus.CounterVec
	QueriesTotal    *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	Tasks           prometheus.Gauge
	ProgressRecords prometheus.Gauge
}

// NewMetrics creates and registers the tracker metrics once per process.
//
// Metrics:
//   - timetable_mutations_total{op,result}
//   - timetable_queries_total{query}
//   - timetable_query_duration_seconds{query}
//   - timetable_tasks
//   - timetable_progress_records
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			MutationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "timetable_mutations_total",
					Help: "Total number of task and progress mutations",
				},
				[]string{"op", "result"}, // result: "ok" or "error"
			),

			QueriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "timetable_queries_total",
					Help: "Total number of statistics queries",
				},
				[]string{"query"},
			),

			QueryDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "timetable_query_duration_seconds",
					Help:    "Duration of statistics queries in seconds",
					Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
				},
				[]string{"query"},
			),

			Tasks: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "timetable_tasks",
				Help: "Current number of tasks",
			}),

			ProgressRecords: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "timetable_progress_records",
				Help: "Current number of daily progress records",
			}),
		}
	})
	return globalMetrics
}

// RecordMutation counts a mutation outcome.
func (m *Metrics) RecordMutation(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.MutationsTotal.WithLabelValues(op, result).Inc()
}

// ObserveQuery counts a query and its duration.
func (m *Metrics) ObserveQuery(query string, seconds float64) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(query).Inc()
	m.QueryDuration.WithLabelValues(query).Observe(seconds)
}

// SetSize publishes the current store sizes.
func (m *Metrics) SetSize(tasks, progress int) {
	if m == nil {
		return
	}
	m.Tasks.Set(float64(tasks))
	m.ProgressRecords.Set(float64(progress))
}
