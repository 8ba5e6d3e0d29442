package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/diwise/insight-client/pkg/insight/types"
)

var ErrTransport = fmt.Errorf("transport error")
var ErrNotFound = fmt.Errorf("not found")
var ErrDecode = fmt.Errorf("decode error")
var ErrUnsupportedType = fmt.Errorf("unsupported type")
var ErrInvalidArgument = fmt.Errorf("invalid argument")
var ErrInternal = fmt.Errorf("internal error")

type insightError struct {
	msg        string
	target     error
	statusCode int
	cause      error
}

func (e insightError) Error() string        { return e.msg }
func (e insightError) Is(target error) bool { return target == e.target }
func (e insightError) Unwrap() error        { return e.cause }
func (e insightError) StatusCode() int      { return e.statusCode }

// StatusCode returns the upstream status code carried by err, if any
func StatusCode(err error) (int, bool) {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) && sc.StatusCode() != 0 {
		return sc.StatusCode(), true
	}
	return 0, false
}

func NewTransportError(statusCode int, msg string) error {
	return &insightError{
		msg:        fmt.Sprintf("%s StatusCode:%d", msg, statusCode),
		target:     ErrTransport,
		statusCode: statusCode,
	}
}

func NewNotFoundError(msg string) error {
	return &insightError{
		msg:        msg,
		target:     ErrNotFound,
		statusCode: http.StatusNotFound,
	}
}

func NewObjectNotFoundError(id types.ObjectID) error {
	return NewNotFoundError(fmt.Sprintf("object %d could not be found", id))
}

func NewObjectTypeNotFoundError(id types.ObjectTypeID) error {
	return NewNotFoundError(fmt.Sprintf("object type %d could not be found", id))
}

// DecodeError is returned when a wire payload does not match the shape its discriminant or schema announces
type DecodeError struct {
	AttributeID types.AttributeID
	Kind        types.Kind
	Err         error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to decode attribute %d of kind %s", e.AttributeID, e.Kind)
	}
	return fmt.Sprintf("failed to decode attribute %d of kind %s: %s", e.AttributeID, e.Kind, e.Err.Error())
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
func (e *DecodeError) Unwrap() error        { return e.Err }

func NewDecodeError(attributeID types.AttributeID, kind types.Kind, cause error) error {
	return &DecodeError{AttributeID: attributeID, Kind: kind, Err: cause}
}

// UnsupportedTypeError names the domain field and attribute that lack a coercion rule
type UnsupportedTypeError struct {
	Field       string
	AttributeID types.AttributeID
	Detail      string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %q (attribute %d): %s", e.Field, e.AttributeID, e.Detail)
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

func NewUnsupportedTypeError(field string, attributeID types.AttributeID, detail string) error {
	return &UnsupportedTypeError{Field: field, AttributeID: attributeID, Detail: detail}
}

func NewInvalidArgumentError(msg string) error {
	return &insightError{
		msg:    msg,
		target: ErrInvalidArgument,
	}
}

func NewInternalError(msg string, cause error) error {
	return &insightError{
		msg:    msg,
		target: ErrInternal,
		cause:  cause,
	}
}

// NewErrorFromResponse converts an unsuccessful Insight response into one of the error kinds above
func NewErrorFromResponse(code int, contentType string, body []byte) error {
	report := &struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
		Message       string            `json:"message"`
	}{}

	detail := ""
	if len(body) > 0 && strings.Contains(contentType, "json") {
		if err := json.Unmarshal(body, report); err == nil {
			detail = reportDetail(report.ErrorMessages, report.Errors, report.Message)
		}
	}

	if detail == "" {
		detail = http.StatusText(code)
	}

	if code == http.StatusNotFound {
		return NewNotFoundError(detail)
	}

	if code == http.StatusBadRequest {
		return &insightError{
			msg:        detail,
			target:     ErrInvalidArgument,
			statusCode: code,
		}
	}

	return NewTransportError(code, detail)
}

func reportDetail(messages []string, fieldErrors map[string]string, message string) string {
	parts := append([]string{}, messages...)

	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fieldErrors[k]))
	}

	if message != "" {
		parts = append(parts, message)
	}

	return strings.Join(parts, "; ")
}
