package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResolution(t *testing.T) {
	m := New()

	m.RecordResolution("direct")
	m.RecordResolution("direct")
	m.RecordResolution("none")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateResolutionsTotal.WithLabelValues("direct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateResolutionsTotal.WithLabelValues("none")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RateResolutionsTotal.WithLabelValues("hub_forward")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordResolution("identity")
		m.RecordRateUpdate("USD", "VES")
		m.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordRateUpdate("USD", "VES")
	m.RecordHTTPRequest("GET", "/currency", 200, 3*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `currency_rate_updates_total{from="USD",to="VES"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.RecordResolution("direct")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.RateResolutionsTotal.WithLabelValues("direct")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RateResolutionsTotal.WithLabelValues("direct")))
}
