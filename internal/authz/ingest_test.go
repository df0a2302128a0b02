package authz

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"telemetry/internal/observability/metrics"
)

var registerMetricsOnce sync.Once

func registerTestMetrics() {
	registerMetricsOnce.Do(func() { metrics.MustRegister("test") })
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIngestGate(t *testing.T) {
	registerTestMetrics()
	gate := NewIngestGate("the-shared-secret")
	srv := gate.Middleware(okHandler())

	cases := []struct {
		name   string
		secret string
		set    bool
		want   int
	}{
		{"correct secret", "the-shared-secret", true, http.StatusOK},
		{"wrong secret", "guess", true, http.StatusForbidden},
		{"empty secret", "", true, http.StatusForbidden},
		{"missing header", "", false, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/ingest/events", nil)
		if tc.set {
			req.Header.Set(IngestSecretHeader, tc.secret)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}
