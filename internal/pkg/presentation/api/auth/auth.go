package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("insight-api/authz")

var ErrAccessDenied = errors.New("access denied")

type Authorizer interface {
	CheckAccess(ctx context.Context, r *http.Request, objectTypes []string) error
}

type authorizer struct {
	preparedQuery rego.PreparedEvalQuery
}

// NewAuthorizer compiles the rego module read from policies. The module must define
// data.example.authz.allow, either as false or as a result object.
func NewAuthorizer(ctx context.Context, policies io.Reader) (Authorizer, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query("x = data.example.authz.allow"),
		rego.Module("insight.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare authz policies: %w", err)
	}

	return &authorizer{preparedQuery: query}, nil
}

func (a *authorizer) CheckAccess(ctx context.Context, r *http.Request, objectTypes []string) error {
	var err error

	ctx, span := tracer.Start(ctx, "check-access",
		trace.WithAttributes(attribute.StringSlice("object-types", objectTypes)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	input := map[string]any{
		"method": r.Method,
		"path":   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
		"token":  token,
		"types":  objectTypes,
	}

	results, err := a.preparedQuery.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		err = fmt.Errorf("opa eval failed: %w", err)
		return err
	}

	if len(results) == 0 {
		err = fmt.Errorf("opa query could not be satisfied: %w", ErrAccessDenied)
		return err
	}

	binding := results[0].Bindings["x"]

	if allowed, ok := binding.(bool); ok && !allowed {
		err = ErrAccessDenied
		return err
	}

	if _, ok := binding.(map[string]any); !ok {
		err = fmt.Errorf("opa error: unexpected result type %T", binding)
		return err
	}

	return nil
}
