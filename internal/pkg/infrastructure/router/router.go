package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/trace"
)

// AllowedOrigins restricts cross origin requests. All origins are allowed by default.
func AllowedOrigins(origins ...string) func(*cors.Options) {
	return func(o *cors.Options) {
		if len(origins) > 0 {
			o.AllowedOrigins = origins
		}
	}
}

func New(ctx context.Context, serviceName string, options ...func(*cors.Options)) *chi.Mux {
	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location", "X-Total-Count"},
		AllowCredentials: true,
	}

	for _, option := range options {
		option(&corsOptions)
	}

	r.Use(cors.New(corsOptions).Handler)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(Logger(logging.GetFromContext(ctx)))

	return r
}

// Logger stores a logger decorated with the current trace id in the request context
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
