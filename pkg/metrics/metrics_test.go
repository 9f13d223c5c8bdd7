package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"timetable-tracker/pkg/metrics"
)

func TestNewMetricsIsSingleton(t *testing.T) {
	assert.Same(t, metrics.NewMetrics(), metrics.NewMetrics())
}

func TestRecordMutation(t *testing.T) {
	m := metrics.NewMetrics()

	okBefore := testutil.ToFloat64(m.MutationsTotal.WithLabelValues("metrics_test", "ok"))
	errBefore := testutil.ToFloat64(m.MutationsTotal.WithLabelValues("metrics_test", "error"))

	m.RecordMutation("metrics_test", nil)
	m.RecordMutation("metrics_test", errors.New("boom"))
	m.RecordMutation("metrics_test", nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("metrics_test", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("metrics_test", "error")))
}

func TestSetSize(t *testing.T) {
	m := metrics.NewMetrics()
	m.SetSize(3, 12)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Tasks))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.ProgressRecords))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *metrics.Metrics
	m.RecordMutation("noop", nil)
	m.ObserveQuery("noop", 0.1)
	m.SetSize(1, 1)
}
