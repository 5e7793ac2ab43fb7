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
	"net/http"
	"strings"

	"github.com/unikorn-cloud/checkout/pkg/headers"
)

// RequestSpec is a reusable base for requests of a kind: where they are sent
// and the headers every one of them carries.
type RequestSpec struct {
	// BaseURI is prefixed to every request path.
	BaseURI string

	// Headers are applied before any per-request headers.
	Headers http.Header
}

// Clone returns a deep copy of the spec.
func (s RequestSpec) Clone() RequestSpec {
	return RequestSpec{
		BaseURI: s.BaseURI,
		Headers: s.Headers.Clone(),
	}
}

// RequestSpecBuilder composes a RequestSpec.
type RequestSpecBuilder struct {
	spec RequestSpec
}

// NewRequestSpecBuilder returns an empty builder.
func NewRequestSpecBuilder() *RequestSpecBuilder {
	return &RequestSpecBuilder{
		spec: RequestSpec{
			Headers: http.Header{},
		},
	}
}

// SetBaseURI sets the base URI, a trailing slash is dropped.
func (b *RequestSpecBuilder) SetBaseURI(uri string) *RequestSpecBuilder {
	b.spec.BaseURI = strings.TrimSuffix(uri, "/")

	return b
}

// AddHeaders merges headers into the spec, replacing existing values.
func (b *RequestSpecBuilder) AddHeaders(h http.Header) *RequestSpecBuilder {
	for key, values := range h {
		b.spec.Headers[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}

	return b
}

// AddHeader sets a single header, replacing any existing value.
func (b *RequestSpecBuilder) AddHeader(key, value string) *RequestSpecBuilder {
	b.spec.Headers.Set(key, value)

	return b
}

// Build returns a copy of the spec, further builder calls don't affect it.
func (b *RequestSpecBuilder) Build() RequestSpec {
	return b.spec.Clone()
}

// DefaultRequestSpec targets baseURI with JSON headers including a charset.
func DefaultRequestSpec(baseURI string) RequestSpec {
	return NewRequestSpecBuilder().SetBaseURI(baseURI).AddHeaders(headers.Default()).Build()
}

// NoCharsetRequestSpec targets baseURI with JSON headers without a charset.
func NoCharsetRequestSpec(baseURI string) RequestSpec {
	return NewRequestSpecBuilder().SetBaseURI(baseURI).AddHeaders(headers.DefaultNoCharset()).Build()
}
