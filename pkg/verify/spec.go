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

package verify

import (
	"errors"
	"net/http"
	"time"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/headers"
)

const (
	// DefaultMaxResponseTime applies to the success and error specs.
	DefaultMaxResponseTime = 3 * time.Second
)

// ResponseSpec is a reusable set of expectations about a response.
// Zero valued expectations are not checked.  MaxResponseTime is an
// exclusive bound.
type ResponseSpec struct {
	StatusCode      int
	ContentType     string
	MaxResponseTime time.Duration
}

func (s ResponseSpec) checks(resp *client.Response) []error {
	var errs []error

	if s.StatusCode != 0 {
		errs = append(errs, StatusCode(resp, s.StatusCode))
	}

	if s.ContentType != "" {
		errs = append(errs, ContentType(resp, s.ContentType))
	}

	if s.MaxResponseTime != 0 {
		errs = append(errs, responseTimeBelow(resp, s.MaxResponseTime))
	}

	return errs
}

// Check returns every unmet expectation joined together.
func (s ResponseSpec) Check(resp *client.Response) error {
	return errors.Join(s.checks(resp)...)
}

// ResponseSpecBuilder composes a ResponseSpec.
type ResponseSpecBuilder struct {
	spec ResponseSpec
}

// NewResponseSpecBuilder returns a builder without expectations.
func NewResponseSpecBuilder() *ResponseSpecBuilder {
	return &ResponseSpecBuilder{}
}

// ExpectStatusCode sets the expected HTTP status.
func (b *ResponseSpecBuilder) ExpectStatusCode(code int) *ResponseSpecBuilder {
	b.spec.StatusCode = code

	return b
}

// ExpectContentType sets the expected content type.
func (b *ResponseSpecBuilder) ExpectContentType(contentType string) *ResponseSpecBuilder {
	b.spec.ContentType = contentType

	return b
}

// ExpectResponseTime sets the latency ceiling.
func (b *ResponseSpecBuilder) ExpectResponseTime(limit time.Duration) *ResponseSpecBuilder {
	b.spec.MaxResponseTime = limit

	return b
}

// Build returns the composed spec.
func (b *ResponseSpecBuilder) Build() ResponseSpec {
	return b.spec
}

// SuccessResponseSpec expects a prompt 200 with a JSON body.
func SuccessResponseSpec() ResponseSpec {
	return NewResponseSpecBuilder().
		ExpectStatusCode(http.StatusOK).
		ExpectContentType(headers.MediaTypeJSON).
		ExpectResponseTime(DefaultMaxResponseTime).
		Build()
}

// ErrorResponseSpec expects a prompt 400 with a JSON body.
func ErrorResponseSpec() ResponseSpec {
	return NewResponseSpecBuilder().
		ExpectStatusCode(http.StatusBadRequest).
		ExpectContentType(headers.MediaTypeJSON).
		ExpectResponseTime(DefaultMaxResponseTime).
		Build()
}
