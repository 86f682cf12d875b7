package paypal

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/rm-hull/paypal-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Endpoint describes a single remote operation and the type its successful
// response decodes into. Query and Body return nil when there is none.
type Endpoint[R any] interface {
	RelativePath() string
	Method() string
	Query() any
	Body() any
	NewResponse() *R
}

// Returns can be embedded in a descriptor to supply NewResponse.
type Returns[R any] struct{}

func (Returns[R]) NewResponse() *R {
	return new(R)
}

type NoQuery struct{}

func (NoQuery) Query() any {
	return nil
}

type NoBody struct{}

func (NoBody) Body() any {
	return nil
}

// Empty is the response type of operations that answer 204 No Content.
type Empty struct{}

func Execute[R any](ctx context.Context, c *Client, e Endpoint[R]) (*R, error) {
	return ExecuteWithHeaders(ctx, c, e, HeaderParams{})
}

// ExecuteWithHeaders makes sure a valid token is cached, sends the request
// described by e and decodes the result. Non-2xx responses are returned as
// *APIError, undecodable bodies as *DecodeError and network failures as
// *TransportError.
func ExecuteWithHeaders[R any](ctx context.Context, c *Client, e Endpoint[R], headers HeaderParams) (*R, error) {
	if err := c.AcquireToken(ctx); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, e.Method(), e.RelativePath(), e.Query(), e.Body(), headers)
	if err != nil {
		return nil, err
	}

	c.logger.Printf("%s %s", req.Method, req.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Printf("failed to close body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	result := e.NewResponse()
	if result == nil {
		result = new(R)
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: body, Err: err}
	}
	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, q, body any, headers HeaderParams) (*http.Request, error) {
	url := c.env.MakeURL(path)

	qs, err := encodeQuery(q)
	if err != nil {
		return nil, err
	}
	if qs != "" {
		url += "?" + qs
	}

	var reader io.Reader
	hasBody := body != nil
	if hasBody {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if err := c.setupHeaders(req, hasBody, headers); err != nil {
		return nil, err
	}
	return req, nil
}

func decodeAPIError(statusCode int, body []byte) error {
	var paypalErr models.PaypalError
	if err := json.Unmarshal(body, &paypalErr); err != nil {
		return &DecodeError{StatusCode: statusCode, Body: body, Err: err}
	}
	return &APIError{StatusCode: statusCode, Err: paypalErr}
}
