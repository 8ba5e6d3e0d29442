package problems

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/matryer/is"
)

func TestFromError(t *testing.T) {
	is := is.New(t)

	is.Equal(FromError(insighterrors.NewObjectNotFoundError(7)).Status, http.StatusNotFound)
	is.Equal(FromError(insighterrors.NewInvalidArgumentError("bad")).Status, http.StatusBadRequest)
	is.Equal(FromError(insighterrors.NewDecodeError(1, "Integer", fmt.Errorf("nope"))).Status, http.StatusBadRequest)
	is.Equal(FromError(insighterrors.NewUnsupportedTypeError("f", 1, "map")).Status, http.StatusUnprocessableEntity)
	is.Equal(FromError(insighterrors.NewTransportError(503, "down")).Status, http.StatusBadGateway)
	is.Equal(FromError(fmt.Errorf("wrapped: %w", insighterrors.NewObjectTypeNotFoundError(3))).Status, http.StatusNotFound)
	is.Equal(FromError(fmt.Errorf("something else")).Status, http.StatusInternalServerError)
}

func TestWriteResponse(t *testing.T) {
	is := is.New(t)

	w := httptest.NewRecorder()
	ReportError(w, insighterrors.NewObjectNotFoundError(7))

	is.Equal(w.Code, http.StatusNotFound)
	is.Equal(w.Header().Get("Content-Type"), ProblemReportContentType)

	p := ProblemDetails{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &p))
	is.Equal(p.Type, "https://diwise.io/insight/errors/NotFound")
	is.Equal(p.Status, http.StatusNotFound)
}
