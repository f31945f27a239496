package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDAndSecurityHeaders(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	app.server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}
	if got := rec.Header().Get(requestIDHeader); got != "req-42" {
		t.Fatalf("request id not echoed, got %q", got)
	}
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Fatalf("%s = %q, want %q", header, got, want)
		}
	}

	rec = httptest.NewRecorder()
	app.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestHealthzReportsDatabaseFailure(t *testing.T) {
	app := newTestApp(t, false)
	app.server.Ping = func(context.Context) error { return errors.New("db down") }

	rec := httptest.NewRecorder()
	app.server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestMetricsUseRoutePatterns(t *testing.T) {
	app := newTestApp(t, false)
	c := app.client(t)
	c.signupAndLogin("alice@example.com", "pw")
	c.postForm("/tasks/12345/done", nil)

	body := c.get("/metrics").Body.String()
	if !strings.Contains(body, `route="/tasks/:id/done"`) {
		t.Fatalf("expected templated route label in metrics output")
	}
	if strings.Contains(body, "/tasks/12345/done") {
		t.Fatal("raw task ids must not appear as metric labels")
	}
}
