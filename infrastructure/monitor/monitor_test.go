package monitor

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	m := New(DefaultConfig())

	m.RecordRequest("/trades", "GET", 200, 0.002)
	m.RecordRequest("/trades", "GET", 200, 0.001)
	m.RecordRequest("/trades/:trade_id", "GET", 404, 0.001)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/trades", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/trades/:trade_id", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpLatency))
}

func TestRecordQueryOutcomes(t *testing.T) {
	m := New(DefaultConfig())

	m.RecordTradesReturned("", 5)
	m.RecordTradesReturned("search", 3)
	m.RecordNotFound("range")
	m.RecordConfigReload(true)
	m.RecordConfigReload(false)
	m.RecordConfigReload(false)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.tradesReturned.WithLabelValues("none")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.tradesReturned.WithLabelValues("search")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.filterMisses.WithLabelValues("range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.configReloads.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.configReloads.WithLabelValues("error")))
}

func TestHandlerExposesNamespace(t *testing.T) {
	m := New(Config{Namespace: "tq", Subsystem: "test"})
	m.RecordNotFound("search")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tq_test_filter_not_found_total{filter="search"} 1`)
}
