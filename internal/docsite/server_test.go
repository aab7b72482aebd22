package docsite

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func testServer(t *testing.T, opts ServerOptions) *httptest.Server {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = testLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = prometheus.NewRegistry()
	}
	srv := httptest.NewServer(NewServer(testSite(t), opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServerServesPages(t *testing.T) {
	srv := testServer(t, ServerOptions{})

	status, body := get(t, srv, "/docs/install")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "<title>Install - Treeline</title>") {
		t.Errorf("missing page title")
	}
	if !strings.Contains(body, `aria-label="Documentation"`) {
		t.Errorf("missing sidebar nav")
	}
}

func TestServerNotFound(t *testing.T) {
	srv := testServer(t, ServerOptions{})

	status, body := get(t, srv, "/no/such/page")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	// The 404 page keeps the layout.
	if !strings.Contains(body, "Page not found") {
		t.Errorf("missing not-found message")
	}
	if !strings.Contains(body, `href="/docs"`) {
		t.Errorf("404 page lost the navigation")
	}
}

func TestServerHealthz(t *testing.T) {
	srv := testServer(t, ServerOptions{})

	status, body := get(t, srv, "/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("healthz = %d %q", status, body)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := testServer(t, ServerOptions{})

	// Generate one page hit, then scrape.
	get(t, srv, "/docs")
	status, body := get(t, srv, "/metrics")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "treeline_docs_requests_total") {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}

func TestServerLiveReloadEndpoint(t *testing.T) {
	srv := testServer(t, ServerOptions{LiveReload: true})

	// Pages carry the reload script.
	_, body := get(t, srv, "/")
	if !strings.Contains(body, "__reload") {
		t.Errorf("page missing reload script")
	}

	// A plain GET on the WS endpoint is a bad handshake, not a 404.
	status, _ := get(t, srv, "/__reload")
	if status == http.StatusNotFound {
		t.Errorf("reload endpoint not routed")
	}
}
