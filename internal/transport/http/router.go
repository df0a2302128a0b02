package http

import (
	"net/http"

	"telemetry/internal/authz"
	obsmw "telemetry/internal/observability/middleware"
	"telemetry/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	CORSOrigins []string
}

// NewRouter composes the two gates per route group: /v1/ingest sits behind
// the shared-secret gate, the device/event routes behind the session gate,
// and the auth endpoints are public.
func NewRouter(
	cfg RouterConfig,
	auth service.AuthService,
	devices service.DeviceService,
	telemetry service.TelemetryService,
	sessionGate *authz.SessionGate,
	ingestGate *authz.IngestGate,
) *chi.Mux {
	h := &handler{auth: auth, devices: devices, telemetry: telemetry}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.WithMetrics)
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(sessionGate.Middleware)
			r.Get("/devices", h.listDevices)
			r.Post("/devices", h.claimDevice)
			r.Post("/devices/{serialNumber}/release", h.releaseDevice)
			r.Delete("/devices/{serialNumber}", h.deleteDevice)
			r.Get("/devices/{serialNumber}/events", h.listEvents)
		})

		r.Group(func(r chi.Router) {
			r.Use(ingestGate.Middleware)
			r.Post("/ingest/events", h.ingestEvent)
		})
	})

	return r
}

// corsOptions allows credentials only for an explicit origin list. Browsers
// reject credentialed responses carrying a wildcard origin, so the wildcard
// default stays credential-less; set CORS_ORIGINS for browser clients that
// send cookies or Authorization headers cross-origin.
func corsOptions(origins []string) cors.Options {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	opts := cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", authz.IngestSecretHeader, "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(allowed) == 0 {
		opts.AllowedOrigins = []string{"*"}
		opts.AllowCredentials = false
	}
	return opts
}
