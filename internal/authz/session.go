package authz

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"telemetry/internal/observability/metrics"
	obsmw "telemetry/internal/observability/middleware"
	"telemetry/internal/service"
)

// TokenVerifier is the slice of service.TokenService the gate needs.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

type SessionGate struct {
	tokens TokenVerifier
}

func NewSessionGate(tokens TokenVerifier) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// Middleware requires a valid bearer session token and puts the asserted
// identity on the request context. Missing, malformed and expired tokens all
// produce the same 401.
func (g *SessionGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := "success"
		defer func() { metrics.GateChecksTotal.WithLabelValues("session", result).Inc() }()
		reqID := obsmw.RequestIDFromContext(r.Context())

		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			result = "failure"
			slog.Warn("session gate missing bearer", "request_id", reqID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		claims, err := g.tokens.Verify(strings.TrimSpace(raw[len("Bearer "):]))
		if err != nil {
			result = "failure"
			slog.Warn("session gate invalid token", "error", err, "request_id", reqID)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := contextWithIdentity(r.Context(), *claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Local context key so handler packages depend on authz, not the reverse.
type identityKey struct{}

func contextWithIdentity(ctx context.Context, c service.Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, c)
}

// IdentityFrom returns the identity the session gate attached, if any.
func IdentityFrom(ctx context.Context) (service.Claims, bool) {
	v, ok := ctx.Value(identityKey{}).(service.Claims)
	return v, ok
}
