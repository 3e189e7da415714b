package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/drone/drone-junit/junit"
)

const MetricsNamespace = "junit"

// Recorder converts an ingested report into Prometheus data points. Each
// recorder owns a private registry, so repeated plugin runs never share
// collector state.
type Recorder struct {
	registry *prometheus.Registry

	testsTotal    *prometheus.CounterVec
	suitesTotal   prometheus.Counter
	suiteDuration *prometheus.GaugeVec
	suiteCumDur   *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		testsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "tests_total",
			Help:      "Count of ingested test cases by result",
		}, []string{"result"}),
		suitesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "suites_total",
			Help:      "Count of ingested suites, nested suites included",
		}),
		suiteDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "suite_duration_seconds",
			Help:      "Reported suite duration",
		}, []string{"suite"}),
		suiteCumDur: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "suite_cumulative_duration_seconds",
			Help:      "Suite duration computed from its children",
		}, []string{"suite"}),
	}
	r.registry.MustRegister(r.testsTotal, r.suitesTotal, r.suiteDuration, r.suiteCumDur)
	return r
}

// Record walks the report and records one data point per aggregate. Nested
// suites are labeled with their slash-joined path.
func (r *Recorder) Record(report junit.Report) {
	r.testsTotal.WithLabelValues(string(junit.StatusPassed)).Add(float64(report.Totals.Passed))
	r.testsTotal.WithLabelValues(string(junit.StatusSkipped)).Add(float64(report.Totals.Skipped))
	r.testsTotal.WithLabelValues(string(junit.StatusFailed)).Add(float64(report.Totals.Failed))
	r.testsTotal.WithLabelValues(string(junit.StatusError)).Add(float64(report.Totals.Errors))
	for _, suite := range report.Suites {
		r.recordSuite(suite, suite.Name)
	}
}

func (r *Recorder) recordSuite(suite junit.Suite, path string) {
	r.suitesTotal.Inc()
	r.suiteDuration.WithLabelValues(path).Set(suite.Totals.Time)
	r.suiteCumDur.WithLabelValues(path).Set(suite.Totals.CumulativeTime)
	for _, sub := range suite.Suites {
		r.recordSuite(sub, path+"/"+sub.Name)
	}
}

// Push delivers the recorded data points to a Prometheus Pushgateway.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(r.registry).PushContext(ctx)
}
