package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drone/drone-junit/junit"
)

func sampleReport() junit.Report {
	inner := junit.Suite{
		Name:   "db",
		Totals: junit.Totals{Tests: 2, Passed: 1, Skipped: 1, Time: 2.5, CumulativeTime: 2.5},
	}
	outer := junit.Suite{
		Name:   "integration",
		Suites: []junit.Suite{inner},
		Totals: junit.Totals{Tests: 3, Passed: 2, Skipped: 1, Time: 10.0, CumulativeTime: 3.5},
	}
	return junit.Report{
		Suites: []junit.Suite{outer},
		Totals: junit.Totals{Tests: 3, Passed: 2, Skipped: 1, Time: 10.0, CumulativeTime: 3.5},
	}
}

func TestRecorderRecord(t *testing.T) {
	r := NewRecorder()
	r.Record(sampleReport())

	assert.Equal(t, 2.0, testutil.ToFloat64(r.testsTotal.WithLabelValues("passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.testsTotal.WithLabelValues("skipped")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.testsTotal.WithLabelValues("failed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.suitesTotal))

	// Nested suites are labeled with their slash-joined path, and the two
	// time semantics stay distinct in the exported points.
	assert.Equal(t, 10.0, testutil.ToFloat64(r.suiteDuration.WithLabelValues("integration")))
	assert.Equal(t, 3.5, testutil.ToFloat64(r.suiteCumDur.WithLabelValues("integration")))
	assert.Equal(t, 2.5, testutil.ToFloat64(r.suiteDuration.WithLabelValues("integration/db")))
}

func TestRecorderIsIndependentPerRun(t *testing.T) {
	first := NewRecorder()
	first.Record(sampleReport())

	second := NewRecorder()
	assert.Equal(t, 0.0, testutil.ToFloat64(second.testsTotal.WithLabelValues("passed")))
}

func TestRecorderPush(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRecorder()
	r.Record(sampleReport())
	require.NoError(t, r.Push(context.Background(), srv.URL, "drone-junit"))
	assert.Equal(t, "/metrics/job/drone-junit", gotPath)
}
