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

// Package openapi carries the checkout API description and validates
// responses against it.
package openapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"mime"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	// ErrUnknownOperation is returned when no operation matches a method and path.
	ErrUnknownOperation = errors.New("operation not described")

	// ErrUndocumentedStatus is returned when an operation doesn't describe a status.
	ErrUndocumentedStatus = errors.New("status code not described")

	// ErrUndocumentedContentType is returned for an undescribed media type.
	ErrUndocumentedContentType = errors.New("content type not described")

	// ErrSchema is returned when a body doesn't conform to its schema.
	ErrSchema = errors.New("body does not match schema")
)

//go:embed checkout.yaml
var description []byte

// Validator checks responses against the checkout API description.
type Validator struct {
	doc *openapi3.T
}

// Load parses and validates the embedded description.
func Load() (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(description)
	if err != nil {
		return nil, fmt.Errorf("loading API description: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating API description: %w", err)
	}

	return &Validator{
		doc: doc,
	}, nil
}

// Document exposes the parsed description.
func (v *Validator) Document() *openapi3.T {
	return v.doc
}

func (v *Validator) operation(method, path string) (*openapi3.Operation, error) {
	pathItem := v.doc.Paths.Find(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, method, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, method, path)
	}

	return operation, nil
}

// ValidateResponse checks the status, media type and body of a response to
// method and path are described.
func (v *Validator) ValidateResponse(method, path string, status int, contentType string, body []byte) error {
	operation, err := v.operation(method, path)
	if err != nil {
		return err
	}

	response := operation.Responses.Status(status)
	if response == nil {
		response = operation.Responses.Default()
	}

	if response == nil || response.Value == nil {
		return fmt.Errorf("%w: %s %s %d", ErrUndocumentedStatus, method, path, status)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUndocumentedContentType, contentType, err)
	}

	content := response.Value.Content.Get(mediaType)
	if content == nil {
		return fmt.Errorf("%w: %s %s %d %s", ErrUndocumentedContentType, method, path, status, mediaType)
	}

	if content.Schema == nil || content.Schema.Value == nil {
		return nil
	}

	var value any

	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	if err := content.Schema.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %s %s %d: %w", ErrSchema, method, path, status, err)
	}

	return nil
}
