package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/insight-client/pkg/insight"
	"github.com/diwise/insight-client/pkg/insight/config"
	"github.com/diwise/insight-client/pkg/insight/errors"
	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/insight-client/pkg/insight/types/objects"
	"github.com/diwise/insight-client/pkg/insight/types/schema"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightClient talks to the Insight REST API of a Jira server
type InsightClient interface {
	FetchPage(ctx context.Context, query string, offset, limit int) (insight.Page[objects.RawObject], error)
	FetchObjectByID(ctx context.Context, id types.ObjectID) (*objects.RawObject, error)
	WriteObject(ctx context.Context, object objects.RawObject) (types.ObjectID, error)
	DeleteObject(ctx context.Context, id types.ObjectID) error
	FetchObjectTypeSchema(ctx context.Context, id types.ObjectTypeID) (schema.ObjectType, error)
	FetchObjectTypes(ctx context.Context, schemaID types.SchemaID) ([]schema.ObjectType, error)
	FetchSchemas(ctx context.Context) ([]schema.Summary, error)
}

const apiPath string = "/rest/insight/1.0"

func Debug(enabled string) func(*insightClient) {
	return func(c *insightClient) {
		c.debug = (enabled == "true")
	}
}

// Header adds a header, e.g. Authorization, to every request
func Header(name, value string) func(*insightClient) {
	return func(c *insightClient) {
		c.headers[name] = append(c.headers[name], value)
	}
}

func NewInsightClient(baseURL string, options ...func(*insightClient)) InsightClient {
	c := &insightClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: map[string][]string{},
		debug:   false,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func NewFromConfig(cfg *config.Config) InsightClient {
	options := []func(*insightClient){
		Debug(strconv.FormatBool(cfg.Debug)),
	}

	for name, value := range cfg.Headers {
		options = append(options, Header(name, value))
	}

	return NewInsightClient(cfg.Endpoint, options...)
}

const (
	TraceAttributeObjectID     string = "object-id"
	TraceAttributeObjectTypeID string = "object-type-id"
	TraceAttributeSchemaID     string = "schema-id"
)

var tracer = otel.Tracer("insight-client")

type insightClient struct {
	baseURL    string
	headers    map[string][]string
	debug      bool
	httpClient http.Client
}

type searchResult struct {
	ObjectEntries    []objects.RawObject `json:"objectEntries"`
	TotalFilterCount int64               `json:"totalFilterCount"`
}

func (c insightClient) FetchPage(ctx context.Context, query string, offset, limit int) (insight.Page[objects.RawObject], error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-page",
		trace.WithAttributes(attribute.String("iql", query)),
		trace.WithAttributes(attribute.Int("offset", offset), attribute.Int("limit", limit)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if limit <= 0 || offset < 0 {
		err = errors.NewInvalidArgumentError(fmt.Sprintf("invalid offset %d or limit %d", offset, limit))
		return insight.Page[objects.RawObject]{}, err
	}

	params := url.Values{}
	params.Set("iql", query)
	params.Set("includeTypeAttributes", "true")
	params.Set("includeExtendedInfo", "true")
	params.Set("page", strconv.Itoa(offset/limit+1))
	params.Set("resultPerPage", strconv.Itoa(limit))

	result := searchResult{TotalFilterCount: -1}
	err = c.getJSON(ctx, c.baseURL+apiPath+"/iql/objects?"+params.Encode(), &result)
	if err != nil {
		return insight.Page[objects.RawObject]{}, err
	}

	for idx := range result.ObjectEntries {
		c.addSelfLink(&result.ObjectEntries[idx])
	}

	return insight.NewPage(result.ObjectEntries, result.TotalFilterCount), nil
}

func (c insightClient) FetchObjectByID(ctx context.Context, id types.ObjectID) (*objects.RawObject, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectID, int64(id))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	raw := &objects.RawObject{}
	err = c.getJSON(ctx, c.baseURL+apiPath+"/object/"+id.String(), raw)
	if err != nil {
		if isNotFound(err) {
			err = nil
			return nil, nil
		}
		return nil, err
	}

	c.addSelfLink(raw)

	return raw, nil
}

type writeValue struct {
	Value string `json:"value"`
}

type writeAttribute struct {
	ObjectTypeAttributeID types.AttributeID `json:"objectTypeAttributeId"`
	ObjectAttributeValues []writeValue      `json:"objectAttributeValues"`
}

type writeRequest struct {
	ObjectTypeID types.ObjectTypeID `json:"objectTypeId"`
	Attributes   []writeAttribute   `json:"attributes"`
}

type writeResponse struct {
	ID        types.ObjectID `json:"id"`
	ObjectKey string         `json:"objectKey"`
}

func (c insightClient) WriteObject(ctx context.Context, object objects.RawObject) (types.ObjectID, error) {
	var err error

	ctx, span := tracer.Start(ctx, "write-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectID, int64(object.ID))),
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectTypeID, int64(object.ObjectType.ID))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	request := writeRequest{
		ObjectTypeID: object.ObjectType.ID,
		Attributes:   make([]writeAttribute, 0, len(object.Attributes)),
	}

	for _, a := range object.Attributes {
		wa := writeAttribute{
			ObjectTypeAttributeID: a.ObjectTypeAttributeID,
			ObjectAttributeValues: []writeValue{},
		}
		for _, v := range a.ObjectAttributeValues {
			if v.Value != nil {
				wa.ObjectAttributeValues = append(wa.ObjectAttributeValues, writeValue{Value: *v.Value})
			}
		}
		request.Attributes = append(request.Attributes, wa)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return types.NotPersistedObjectID, err
	}

	method := http.MethodPost
	endpoint := c.baseURL + apiPath + "/object/create"

	if object.ID.IsPersisted() {
		method = http.MethodPut
		endpoint = c.baseURL + apiPath + "/object/" + object.ID.String()
	}

	resp, respBody, err := c.callInsight(ctx, method, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return types.NotPersistedObjectID, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err = responseError(resp, respBody)
		return types.NotPersistedObjectID, err
	}

	result := writeResponse{}
	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal write response: %s (%w)", err.Error(), errors.ErrDecode)
		return types.NotPersistedObjectID, err
	}

	if !result.ID.IsPersisted() {
		if !object.ID.IsPersisted() {
			err = fmt.Errorf("write response did not contain an object id (%w)", errors.ErrInternal)
			return types.NotPersistedObjectID, err
		}
		return object.ID, nil
	}

	return result.ID, nil
}

func (c insightClient) DeleteObject(ctx context.Context, id types.ObjectID) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-object",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectID, int64(id))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	resp, respBody, err := c.callInsight(ctx, http.MethodDelete, c.baseURL+apiPath+"/object/"+id.String(), nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		err = responseError(resp, respBody)
		return err
	}

	return nil
}

func (c insightClient) FetchObjectTypeSchema(ctx context.Context, id types.ObjectTypeID) (schema.ObjectType, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-object-type",
		trace.WithAttributes(attribute.Int64(TraceAttributeObjectTypeID, int64(id))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	raw := schema.RawObjectType{}
	err = c.getJSON(ctx, c.baseURL+apiPath+"/objecttype/"+id.String(), &raw)
	if err != nil {
		return schema.ObjectType{}, err
	}

	var ot schema.ObjectType
	ot, err = c.withAttributes(ctx, raw)

	return ot, err
}

func (c insightClient) FetchObjectTypes(ctx context.Context, schemaID types.SchemaID) ([]schema.ObjectType, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-object-types",
		trace.WithAttributes(attribute.Int64(TraceAttributeSchemaID, int64(schemaID))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	raws := []schema.RawObjectType{}
	err = c.getJSON(ctx, c.baseURL+apiPath+"/objectschema/"+schemaID.String()+"/objecttypes/flat", &raws)
	if err != nil {
		return nil, err
	}

	result := make([]schema.ObjectType, 0, len(raws))
	for _, raw := range raws {
		var ot schema.ObjectType
		ot, err = c.withAttributes(ctx, raw)
		if err != nil {
			return nil, err
		}
		result = append(result, ot)
	}

	return result, nil
}

func (c insightClient) FetchSchemas(ctx context.Context) ([]schema.Summary, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-schemas")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := struct {
		ObjectSchemas []schema.Summary `json:"objectschemas"`
	}{}

	err = c.getJSON(ctx, c.baseURL+apiPath+"/objectschema/list", &result)
	if err != nil {
		return nil, err
	}

	if result.ObjectSchemas == nil {
		return []schema.Summary{}, nil
	}

	return result.ObjectSchemas, nil
}

func (c insightClient) withAttributes(ctx context.Context, raw schema.RawObjectType) (schema.ObjectType, error) {
	attrs := []schema.RawAttribute{}
	err := c.getJSON(ctx, c.baseURL+apiPath+"/objecttype/"+raw.ID.String()+"/attributes", &attrs)
	if err != nil {
		return schema.ObjectType{}, err
	}

	return raw.ToObjectType(attrs), nil
}

func (c insightClient) addSelfLink(raw *objects.RawObject) {
	if raw.Links == nil && raw.ObjectKey != "" {
		raw.Links = &objects.RawLinks{Self: c.baseURL + "/secure/insight/assets/" + raw.ObjectKey}
	}
}

func (c insightClient) getJSON(ctx context.Context, endpoint string, v any) error {
	resp, respBody, err := c.callInsight(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return responseError(resp, respBody)
	}

	err = json.Unmarshal(respBody, v)
	if err != nil {
		if c.debug && len(respBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed with err %s", string(respBody), err.Error())
		}
		return fmt.Errorf("failed to unmarshal response: %s (%w)", err.Error(), errors.ErrDecode)
	}

	return nil
}

func (c insightClient) callInsight(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	for header, headerValue := range c.headers {
		for _, val := range headerValue {
			req.Header.Add(header, val)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrTransport)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.NewTransportError(resp.StatusCode, "failed to read response body: "+err.Error())
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusNotFound {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			log := logging.GetFromContext(ctx)
			log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}
	}

	return resp, respBody, nil
}

func responseError(resp *http.Response, body []byte) error {
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.NewErrorFromResponse(resp.StatusCode, resp.Header.Get("Content-Type"), body)
	}
	return fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
}

func isNotFound(err error) bool {
	code, ok := errors.StatusCode(err)
	return ok && code == http.StatusNotFound
}
