package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/insight-client/internal/pkg/application/cmdb"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/auth"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/problems"
	"github.com/go-chi/chi/v5"
)

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app cmdb.AssetManager) error {

	authorizer, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authorizer: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(RequiredContentTypes([]string{"application/json"}))

		r.Get("/schemas", NewRetrieveSchemasHandler(app, authorizer))
		r.Post("/schemas/refresh", NewRefreshSchemasHandler(app, authorizer))

		r.Route("/objecttypes", func(r chi.Router) {
			r.Get("/", NewRetrieveObjectTypesHandler(app, authorizer))

			r.Route("/{objectType}", func(r chi.Router) {
				r.Get("/", NewRetrieveObjectTypeHandler(app, authorizer))
				r.Get("/objects", NewQueryObjectsHandler(app, authorizer))
				r.Post("/objects", NewCreateObjectHandler(app, authorizer))
			})
		})

		r.Route("/objects", func(r chi.Router) {
			r.Get("/", NewRetrieveObjectByKeyHandler(app, authorizer))

			r.Route("/{objectId}", func(r chi.Router) {
				r.Get("/", NewRetrieveObjectHandler(app, authorizer))
				r.Patch("/", NewUpdateObjectAttributesHandler(app, authorizer))
				r.Delete("/", NewDeleteObjectHandler(app, authorizer))
			})
		})
	})

	return nil
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")

			if contentType != "" && !hasAnyPrefix(contentType, validTypes) {
				problems.NewUnsupportedMediaType(
					fmt.Sprintf("content type %q is not supported", contentType),
				).WriteResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
