package problems

import (
	"encoding/json"
	"errors"
	"net/http"

	insighterrors "github.com/diwise/insight-client/pkg/insight/errors"
)

// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
const ProblemReportContentType string = "application/problem+json"

const typePrefix string = "https://diwise.io/insight/errors/"

// ProblemDetails describes a problem according to RFC7807
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Status int    `json:"status"`
}

func New(code int, typ, title, detail string) ProblemDetails {
	return ProblemDetails{
		Type:   typePrefix + typ,
		Title:  title,
		Detail: detail,
		Status: code,
	}
}

func NewBadRequest(detail string) ProblemDetails {
	return New(http.StatusBadRequest, "BadRequest", "Bad Request", detail)
}

func NewUnsupportedMediaType(detail string) ProblemDetails {
	return New(http.StatusUnsupportedMediaType, "UnsupportedMediaType", "Unsupported Media Type", detail)
}

func NewUnauthorized(detail string) ProblemDetails {
	return New(http.StatusUnauthorized, "UnauthorizedRequest", "Unauthorized Request", detail)
}

// FromError classifies err by its insight error kind
func FromError(err error) ProblemDetails {
	detail := err.Error()

	switch {
	case errors.Is(err, insighterrors.ErrNotFound):
		return New(http.StatusNotFound, "NotFound", "Not Found", detail)
	case errors.Is(err, insighterrors.ErrInvalidArgument):
		return New(http.StatusBadRequest, "InvalidArgument", "Invalid Argument", detail)
	case errors.Is(err, insighterrors.ErrDecode):
		return New(http.StatusBadRequest, "DecodeFailed", "Decode Failed", detail)
	case errors.Is(err, insighterrors.ErrUnsupportedType):
		return New(http.StatusUnprocessableEntity, "UnsupportedType", "Unsupported Type", detail)
	case errors.Is(err, insighterrors.ErrTransport):
		return New(http.StatusBadGateway, "Transport", "Upstream Failure", detail)
	}

	return New(http.StatusInternalServerError, "InternalError", "Internal Error", detail)
}

// WriteResponse writes the problem as the response to a request
func (p ProblemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", ProblemReportContentType)
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.Status)

	body, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(body)
	}
}

func ReportError(w http.ResponseWriter, err error) {
	FromError(err).WriteResponse(w)
}
