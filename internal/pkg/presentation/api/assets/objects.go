package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/diwise/insight-client/internal/pkg/application/cmdb"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/auth"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/problems"
	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/attributes"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("insight-api/assets")

const TotalCountHeader string = "X-Total-Count"

// attributesRequest is the body of create and update requests. Each attribute is
// in the tagged form with a type discriminant.
type attributesRequest struct {
	Attributes []json.RawMessage `json:"attributes"`
}

func NewQueryObjectsHandler(app cmdb.AssetManager, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		objectType := chi.URLParam(r, "objectType")

		ctx, span := tracer.Start(r.Context(), "query-objects",
			trace.WithAttributes(attribute.String("object-type", objectType)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{objectType}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		query := r.URL.Query()

		params := cmdb.QueryParams{
			Filter:       query.Get("q"),
			WithChildren: query.Get("children") == "true",
		}

		params.PageIndex, err = intParam(query.Get("page"), 0)
		if err == nil {
			params.PageSize, err = intParam(query.Get("limit"), 0)
		}
		if err != nil {
			problems.NewBadRequest(err.Error()).WriteResponse(w)
			return
		}

		page, err := app.QueryObjects(ctx, objectType, params)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		if page.TotalCount >= 0 {
			w.Header().Set(TotalCountHeader, strconv.FormatInt(page.TotalCount, 10))
		}

		writeJSON(ctx, w, http.StatusOK, page.Items)
	}
}

func NewCreateObjectHandler(app cmdb.ObjectWriter, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		objectType := chi.URLParam(r, "objectType")

		ctx, span := tracer.Start(r.Context(), "create-object",
			trace.WithAttributes(attribute.String("object-type", objectType)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		if err = authorizer.CheckAccess(ctx, r, []string{objectType}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		attrs, err := decodeAttributes(r.Body)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		object, err := app.CreateObject(ctx, objectType, attrs)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		w.Header().Set("Location", "/api/v0/objects/"+object.ID.String())
		writeJSON(ctx, w, http.StatusCreated, object)
	}
}

func NewRetrieveObjectHandler(app cmdb.ObjectQuerier, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-object")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := objectID(r)
		if err != nil {
			problems.NewBadRequest(err.Error()).WriteResponse(w)
			return
		}

		object, err := app.RetrieveObject(ctx, id)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		if err = authorizer.CheckAccess(ctx, r, []string{object.ObjectTypeName}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		writeJSON(ctx, w, http.StatusOK, object)
	}
}

func NewRetrieveObjectByKeyHandler(app cmdb.ObjectQuerier, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-object-by-key")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		key := r.URL.Query().Get("key")
		if key == "" {
			err = fmt.Errorf("the key query parameter is required")
			problems.NewBadRequest(err.Error()).WriteResponse(w)
			return
		}

		object, err := app.RetrieveObjectByKey(ctx, key)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		if err = authorizer.CheckAccess(ctx, r, []string{object.ObjectTypeName}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		writeJSON(ctx, w, http.StatusOK, object)
	}
}

func NewUpdateObjectAttributesHandler(app cmdb.AssetManager, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-object-attributes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := objectID(r)
		if err != nil {
			problems.NewBadRequest(err.Error()).WriteResponse(w)
			return
		}

		object, err := app.RetrieveObject(ctx, id)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		if err = authorizer.CheckAccess(ctx, r, []string{object.ObjectTypeName}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		attrs, err := decodeAttributes(r.Body)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		_, err = app.UpdateObjectAttributes(ctx, id, attrs)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteObjectHandler treats a missing object as already deleted
func NewDeleteObjectHandler(app cmdb.AssetManager, authorizer auth.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "delete-object")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := objectID(r)
		if err != nil {
			problems.NewBadRequest(err.Error()).WriteResponse(w)
			return
		}

		object, err := app.RetrieveObject(ctx, id)
		if err != nil {
			if errors.Is(err, insighterrors.ErrNotFound) {
				err = nil
				w.WriteHeader(http.StatusNoContent)
				return
			}
			problems.ReportError(w, err)
			return
		}

		if err = authorizer.CheckAccess(ctx, r, []string{object.ObjectTypeName}); err != nil {
			problems.NewUnauthorized(err.Error()).WriteResponse(w)
			return
		}

		err = app.DeleteObject(ctx, id)
		if err != nil {
			problems.ReportError(w, err)
			return
		}

		logging.GetFromContext(ctx).Info("object deleted", "objectId", int64(id))

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeAttributes(body io.Reader) ([]attributes.Attribute, error) {
	req := attributesRequest{}

	err := json.NewDecoder(body).Decode(&req)
	if err != nil {
		return nil, insighterrors.NewInvalidArgumentError(fmt.Sprintf("unable to decode request payload: %s", err.Error()))
	}

	attrs := make([]attributes.Attribute, 0, len(req.Attributes))
	for _, raw := range req.Attributes {
		a, err := attributes.Unmarshal(raw)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	return attrs, nil
}

func objectID(r *http.Request) (types.ObjectID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "objectId"), 10, 64)
	if err != nil || id <= 0 {
		return types.NotPersistedObjectID, fmt.Errorf("%q is not a valid object id", chi.URLParam(r, "objectId"))
	}
	return types.ObjectID(id), nil
}

func intParam(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%q is not a valid non negative integer", value)
	}

	return i, nil
}
