/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/unikorn-cloud/checkout/pkg/config"
	"github.com/unikorn-cloud/checkout/pkg/constants"
	"github.com/unikorn-cloud/checkout/pkg/headers"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// DefaultTimeout bounds a single round trip.
	DefaultTimeout = 30 * time.Second
)

// Credentials identify the caller to the checkout API.
type Credentials struct {
	// Token is sent as a bearer token.
	Token string

	// UserID is sent in the User-ID header.
	UserID string
}

// Client issues requests against the checkout API.  Status codes are never
// treated as errors, only transport failures are, it's up to the caller to
// verify the response.
type Client struct {
	spec         RequestSpec
	endpoints    config.Endpoints
	doer         Doer
	credentials  Credentials
	logRequests  bool
	logResponses bool
}

// Option modifies a client at construction time.
type Option func(*Client)

// WithDoer replaces the HTTP transport.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithTimeout uses a standard HTTP client with the given timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.doer = &http.Client{
			Timeout: timeout,
		}
	}
}

// WithAuth sets the credentials sent with authenticated requests.
func WithAuth(credentials Credentials) Option {
	return func(c *Client) {
		c.credentials = credentials
	}
}

// WithRequestLogging logs request summaries and optionally response bodies.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *Client) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// New creates a client that applies spec to every request.
func New(spec RequestSpec, endpoints config.Endpoints, options ...Option) *Client {
	c := &Client{
		spec:      spec.Clone(),
		endpoints: endpoints,
		doer: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// NewFromConfig creates a client using the default request spec for the
// configured service.
func NewFromConfig(config *config.Config, options ...Option) *Client {
	return New(DefaultRequestSpec(config.BaseURL), config.Endpoints, options...)
}

// WithCredentials returns a copy of the client acting with other credentials.
func (c *Client) WithCredentials(credentials Credentials) *Client {
	clone := *c
	clone.spec = c.spec.Clone()
	clone.credentials = credentials

	return &clone
}

// Endpoints returns the endpoint paths the client was configured with.
func (c *Client) Endpoints() config.Endpoints {
	return c.endpoints
}

// Request is a single call under construction.
type Request struct {
	client *Client
	method string
	path   string
	header http.Header
	query  url.Values
	body   []byte
	auth   bool
	err    error
}

// NewRequest starts an authenticated request to path.
func (c *Client) NewRequest(method, path string) *Request {
	return &Request{
		client: c,
		method: method,
		path:   path,
		header: http.Header{},
		query:  url.Values{},
		auth:   true,
	}
}

// Header sets a header, overriding the request spec.
func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)

	return r
}

// Query adds query parameters.
func (r *Request) Query(values url.Values) *Request {
	for key, vs := range values {
		for _, v := range vs {
			r.query.Add(key, v)
		}
	}

	return r
}

// Body sets the request body.  Strings and byte slices are sent verbatim,
// anything else is marshaled as JSON.
func (r *Request) Body(body any) *Request {
	switch t := body.(type) {
	case nil:
		r.body = nil
	case string:
		r.body = []byte(t)
	case []byte:
		r.body = t
	default:
		data, err := json.Marshal(body)
		if err != nil {
			r.err = fmt.Errorf("marshaling %s %s request body: %w", r.method, r.path, err)
			break
		}

		r.body = data
	}

	return r
}

// WithoutAuth omits the credentials.
func (r *Request) WithoutAuth() *Request {
	r.auth = false

	return r
}

// Do sends the request and reads the whole response.
func (r *Request) Do(ctx context.Context) (*Response, error) {
	if r.err != nil {
		return nil, r.err
	}

	c := r.client

	log := log.FromContext(ctx).WithValues("method", r.method, "path", r.path)

	target := c.spec.BaseURI + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader

	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range c.spec.Headers {
		req.Header[key] = append([]string(nil), values...)
	}

	if r.auth {
		if c.credentials.Token != "" {
			req.Header.Set(headers.Authorization, headers.Bearer(c.credentials.Token))
		}

		if c.credentials.UserID != "" {
			req.Header.Set(headers.UserID, c.credentials.UserID)
		}
	}

	for key, values := range r.header {
		req.Header[key] = values
	}

	traceParent := newTraceParent()
	req.Header.Set(headers.TraceParent, traceParent)
	req.Header.Set(headers.TraceState, constants.TraceState)

	start := time.Now()
	resp, err := c.doer.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "duration", duration, "traceID", TraceID(traceParent))

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "status", resp.StatusCode, "traceID", TraceID(traceParent))

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.logRequests {
		log.Info("request complete", "status", resp.StatusCode, "duration", duration, "traceparent", traceParent)
	}

	if c.logResponses && len(respBody) > 0 {
		log.Info("response body", "body", string(respBody))
	}

	response := &Response{
		Method:      r.method,
		Path:        r.path,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Duration:    duration,
		TraceParent: traceParent,
	}

	return response, nil
}
