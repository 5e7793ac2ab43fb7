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
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/unikorn-cloud/checkout/pkg/dto"
	"github.com/unikorn-cloud/checkout/pkg/headers"
)

// Response is a fully read HTTP response.
type Response struct {
	// Method and Path identify the request that produced the response.
	Method string
	Path   string

	StatusCode int
	Header     http.Header
	Body       []byte

	// Duration is the time from sending the request to receiving headers.
	Duration time.Duration

	// TraceParent was sent with the request.
	TraceParent string
}

// ContentType returns the raw content type header.
func (r *Response) ContentType() string {
	return r.Header.Get(headers.ContentType)
}

// MediaType returns the content type without parameters.
func (r *Response) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(r.ContentType())
	if err != nil {
		return r.ContentType()
	}

	return mediaType
}

// Field looks up a dotted path in a JSON body, e.g. "data.transactions.0.type".
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", r.Method, r.Path, err)
	}

	return nil
}

// TraceID is the trace to search service logs for.
func (r *Response) TraceID() string {
	return TraceID(r.TraceParent)
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s status=%d duration=%s trace=%s body=%s", r.Method, r.Path, r.StatusCode, r.Duration, r.TraceID(), string(r.Body))
}

// DecodeEnvelope unmarshals a response envelope with typed data.
func DecodeEnvelope[T any](r *Response) (*dto.Envelope[T], error) {
	envelope := &dto.Envelope[T]{}

	if err := r.Decode(envelope); err != nil {
		return nil, err
	}

	return envelope, nil
}
