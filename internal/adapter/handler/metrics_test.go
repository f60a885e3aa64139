package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsRequestsByRouteAndStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	mux := newTestMux(newMemRepo())
	wrapped := metrics.Wrap(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/get-all-inventory", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(metrics.requests.WithLabelValues(
		http.MethodGet, "GET /api/get-all-inventory", "200"))
	if count != 2 {
		t.Errorf("expected 2 requests counted, got %v", count)
	}
}

func TestMetrics_RecordsFailureStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	mux := newTestMux(newMemRepo())
	wrapped := metrics.Wrap(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/get-inventory/missing", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(metrics.requests.WithLabelValues(
		http.MethodGet, "GET /api/get-inventory/{id}", "404"))
	if count != 1 {
		t.Errorf("expected 1 request counted, got %v", count)
	}
}
