// Package authz holds the two request gates: the shared-secret gate for
// device-originated ingestion and the session-token gate for user routes.
package authz

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"telemetry/internal/observability/metrics"
	obsmw "telemetry/internal/observability/middleware"
)

// IngestSecretHeader carries the process-wide shared secret on
// device-originated writes.
const IngestSecretHeader = "X-Ingest-Secret"

type IngestGate struct {
	secretSum [sha256.Size]byte
}

func NewIngestGate(secret string) *IngestGate {
	return &IngestGate{secretSum: sha256.Sum256([]byte(secret))}
}

// Middleware fails closed: any absent or mismatching secret is a 403 before
// the handler runs. Comparing SHA-256 sums keeps the comparison constant
// time without leaking the secret's length.
func (g *IngestGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := "success"
		defer func() { metrics.GateChecksTotal.WithLabelValues("ingest", result).Inc() }()

		presented := sha256.Sum256([]byte(r.Header.Get(IngestSecretHeader)))
		if subtle.ConstantTimeCompare(presented[:], g.secretSum[:]) != 1 {
			result = "failure"
			slog.Warn("ingest gate rejected request",
				"request_id", obsmw.RequestIDFromContext(r.Context()),
				"path", r.URL.Path,
			)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
