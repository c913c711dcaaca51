// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/utils/errors"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////
// REST layer
////////////////////////////////////////////////////////////////////////////////////////////////////////

// BuildHeaders returns the headers sent with every REST call, plus the optional Accept and SVM scoping headers.
func (c *Client) BuildHeaders(accept, svmName, svmUUID string) http.Header {
	headers := http.Header{}
	headers.Set(config.ClientAppHeader, config.ClientAppHeaderValue(c.config.ClientName))
	if accept != "" {
		headers.Set("Accept", accept)
	}
	if svmName != "" {
		headers.Set(config.SVMNameHeader, svmName)
	}
	if svmUUID != "" {
		headers.Set(config.SVMUUIDHeader, svmUUID)
	}
	return headers
}

// RESTURL returns the absolute URL of a resource below /api/.
func (c *Client) RESTURL(resourcePath string, params url.Values) string {
	resourcePath = strings.TrimPrefix(resourcePath, "/")
	resourcePath = strings.TrimPrefix(resourcePath, strings.TrimPrefix(config.RESTAPIRoot, "/"))

	u := "https://" + c.config.restHost() + config.RESTAPIRoot + resourcePath
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Invoke issues exactly one REST call.  The error is an EndpointError when ONTAP reported one in the JSON body,
// whatever the HTTP status, and a TransportError for everything else.
func (c *Client) Invoke(
	ctx context.Context, method, resourcePath string, params url.Values, body interface{},
) (*CallResult, error) {
	return c.InvokeWithHeaders(ctx, method, resourcePath, params, body, c.BuildHeaders("", "", ""))
}

// InvokeWithHeaders is Invoke with caller supplied headers, usually from BuildHeaders.
func (c *Client) InvokeWithHeaders(
	ctx context.Context, method, resourcePath string, params url.Values, body interface{}, headers http.Header,
) (*CallResult, error) {
	ctx = WithWorkflow(ctx, WorkflowRESTInvoke, LogLayerOntapREST)
	requestURL := c.RESTURL(resourcePath, params)

	fields := LogFields{"method": method, "url": requestURL}
	Logc(ctx).WithFields(fields).Trace(">>>> Invoke")
	defer Logc(ctx).WithFields(fields).Trace("<<<< Invoke")

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, c.recordError(ctx, 0,
				errors.WrapWithTransportError(err, errors.TransportOther, 0, "could not encode request body"))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, c.recordError(ctx, 0,
			errors.WrapWithTransportError(err, errors.TransportOther, 0, "could not build request"))
	}
	for name, values := range headers {
		req.Header[name] = values
	}
	if req.Header.Get(config.ClientAppHeader) == "" {
		req.Header.Set(config.ClientAppHeader, config.ClientAppHeaderValue(c.config.ClientName))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	TraceAPI(c.traceLogger, "rest request", fields, payload)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.recordError(ctx, 0, errors.ClassifyRequestError(err))
	}
	defer response.Body.Close()

	result := &CallResult{StatusCode: response.StatusCode, Header: response.Header}
	if result.Raw, err = io.ReadAll(response.Body); err != nil {
		return result, c.recordError(ctx, response.StatusCode,
			errors.WrapWithTransportError(err, errors.TransportOther, response.StatusCode, "Other error"))
	}

	TraceAPI(c.traceLogger, "rest response", LogFields{"method": method, "url": requestURL,
		"status": response.StatusCode}, result.Raw)
	c.logDebug(ctx, response.StatusCode, string(result.Raw))

	return result, c.classifyResponse(ctx, result)
}

func (c *Client) classifyResponse(ctx context.Context, result *CallResult) error {
	body, decodeErr := decodeJSONObject(result.Raw)
	result.Body = body

	if endpointErr := endpointErrorFromBody(body, result.StatusCode); endpointErr != nil {
		return c.recordError(ctx, result.StatusCode, endpointErr)
	}

	if result.StatusCode >= http.StatusBadRequest {
		return c.recordError(ctx, result.StatusCode, errors.TransportError(errors.TransportHTTP, result.StatusCode,
			"HTTP error: %d %s", result.StatusCode, http.StatusText(result.StatusCode)))
	}

	if decodeErr != nil && c.flags.Bool(FeatureStrictJSONCheck) {
		return c.recordError(ctx, result.StatusCode, errors.WrapWithTransportError(decodeErr,
			errors.TransportMalformed, result.StatusCode, "Expecting JSON, got: %s", string(result.Raw)))
	}

	return nil
}

// decodeJSONObject returns the body as a JSON object.  An empty body or a JSON value that is not an object
// yields a nil map without error.
func decodeJSONObject(raw []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	body, _ := decoded.(map[string]interface{})
	return body, nil
}

// endpointErrorFromBody builds an EndpointError from the "error" key, which ONTAP sends as an object with
// message and code but which may also be a plain string.
func endpointErrorFromBody(body map[string]interface{}, statusCode int) error {
	value, ok := body["error"]
	if !ok || value == nil {
		return nil
	}

	switch e := value.(type) {
	case string:
		return errors.EndpointError(errors.EndpointOther, "", statusCode, "%s", e)
	case map[string]interface{}:
		message, _ := e["message"].(string)
		var code string
		switch v := e["code"].(type) {
		case string:
			code = v
		case float64:
			code = fmt.Sprintf("%.0f", v)
		}
		if message == "" {
			encoded, _ := json.Marshal(e)
			message = string(encoded)
		}
		return errors.EndpointError(classifyRESTError(code, message), code, statusCode, "%s", message)
	default:
		return errors.EndpointError(errors.EndpointOther, "", statusCode, "%v", e)
	}
}

// Get issues a GET.
func (c *Client) Get(ctx context.Context, resourcePath string, params url.Values) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodGet, resourcePath, params, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(
	ctx context.Context, resourcePath string, body interface{}, params url.Values,
) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodPost, resourcePath, params, body)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(
	ctx context.Context, resourcePath string, body interface{}, params url.Values,
) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodPatch, resourcePath, params, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, resourcePath string, params url.Values) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodDelete, resourcePath, params, nil)
}

// Options issues an OPTIONS request, which ONTAP answers with the methods allowed on a resource.
func (c *Client) Options(ctx context.Context, resourcePath string, params url.Values) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodOptions, resourcePath, params, nil)
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, resourcePath string, params url.Values) (*CallResult, error) {
	return c.Invoke(ctx, http.MethodHead, resourcePath, params, nil)
}
