package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestPrometheusCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(reg))(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/docs/install", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	expected := `
		# HELP treeline_requests_total Total number of HTTP requests by path and status
		# TYPE treeline_requests_total counter
		treeline_requests_total{path="/docs/install",status="200"} 3
	`
	if err := testutil.CollectAndCompare(reg, strings.NewReader(expected), "treeline_requests_total"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPrometheusRecordsStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(reg))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	expected := `
		# HELP treeline_requests_total Total number of HTTP requests by path and status
		# TYPE treeline_requests_total counter
		treeline_requests_total{path="/missing",status="404"} 1
	`
	if err := testutil.CollectAndCompare(reg, strings.NewReader(expected), "treeline_requests_total"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPrometheusNamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Prometheus(WithRegistry(reg), WithNamespace("docs"), WithSubsystem("web"))(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	count, err := testutil.GatherAndCount(reg, "docs_web_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 1 {
		t.Errorf("series count = %d, want 1", count)
	}
}

func TestOTelPassesThrough(t *testing.T) {
	called := false
	handler := OTel()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	if !called {
		t.Error("next handler not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestOTelFilterSkips(t *testing.T) {
	handler := OTel(WithFilter(func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/healthz")
	}))(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
