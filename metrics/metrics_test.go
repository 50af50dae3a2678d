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

func TestMetrics_RecordOperation(t *testing.T) {
	m := New()

	m.RecordOperation("encrypt", "polyalphabetic", 13)
	m.RecordOperation("encrypt", "polyalphabetic", 7)
	m.RecordOperation("decrypt", "monoalphabetic", 5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("encrypt", "polyalphabetic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("decrypt", "monoalphabetic")))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.processedCharsTotal.WithLabelValues("encrypt")))
}

func TestMetrics_RecordInvalidKeyAndHTTP(t *testing.T) {
	m := New()

	m.RecordInvalidKey()
	m.RecordInvalidKey()
	m.RecordHTTPRequest(http.MethodPost, "/api/v1/cipher/encrypt", http.StatusBadRequest, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.invalidKeysTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/cipher/encrypt", "400")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordOperation("encrypt", "polyalphabetic", 1)
		m.RecordInvalidKey()
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordOperation("decrypt", "polyalphabetic", 3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cipher_operations_total{mode="polyalphabetic",operation="decrypt"} 1`)
}
