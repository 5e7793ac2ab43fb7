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

// Package headers provides the canonical header sets sent to the checkout API.
package headers

import (
	"net/http"
)

const (
	// ContentType is the content type header name.
	ContentType = "Content-Type"

	// Accept is the accept header name.
	Accept = "Accept"

	// Authorization is the authorization header name.
	Authorization = "Authorization"

	// UserID identifies the account a request acts on behalf of.
	UserID = "User-ID"

	// TraceParent is the W3C trace context parent header.
	TraceParent = "Traceparent"

	// TraceState is the W3C trace context state header.
	TraceState = "Tracestate"

	// MediaTypeJSON is the JSON media type.
	MediaTypeJSON = "application/json"

	// MediaTypeJSONUTF8 is the JSON media type with an explicit charset.
	MediaTypeJSONUTF8 = "application/json; charset=utf-8"
)

// Default returns JSON content negotiation headers with an explicit charset.
func Default() http.Header {
	h := http.Header{}
	h.Set(ContentType, MediaTypeJSONUTF8)
	h.Set(Accept, MediaTypeJSON)

	return h
}

// DefaultNoCharset is as Default, but without a charset parameter.
func DefaultNoCharset() http.Header {
	h := http.Header{}
	h.Set(ContentType, MediaTypeJSON)
	h.Set(Accept, MediaTypeJSON)

	return h
}

// WithBearerToken returns a JSON content type and an authorization header
// carrying the token.
func WithBearerToken(token string) http.Header {
	h := http.Header{}
	h.Set(ContentType, MediaTypeJSON)
	h.Set(Authorization, Bearer(token))

	return h
}

// Bearer formats a bearer authorization value.
func Bearer(token string) string {
	return "Bearer " + token
}
