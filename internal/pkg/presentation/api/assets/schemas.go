package assets

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/diwise/insight-client/internal/pkg/application/cmdb"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/auth"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/problems"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func NewRetrieveSchemasHandler(app cmdb.SchemaBrowser, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-schemas")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		summaries, err := app.Schemas(ctx)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, summaries)
	}
}

func NewRefreshSchemasHandler(app cmdb.SchemaBrowser, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "refresh-schemas")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		if err = app.RefreshSchemas(ctx); err != nil {
			logging.GetFromContext(ctx).Error("schema refresh failed", "err", err.Error())
			problems.ReportError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func NewRetrieveObjectTypesHandler(app cmdb.SchemaBrowser, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-object-types")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		objectTypes, err := app.ObjectTypes(ctx)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, objectTypes)
	}
}

func NewRetrieveObjectTypeHandler(app cmdb.SchemaBrowser, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		objectType := chi.URLParam(r, "objectType")

		ctx, span := tracer.Start(r.Context(), "retrieve-object-type")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{objectType}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		ot, err := app.ObjectType(ctx, objectType)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, ot)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response body", "err", err.Error())
		problems.ReportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
