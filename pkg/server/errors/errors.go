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

package errors

import (
	goerrors "errors"
	"net/http"

	"github.com/unikorn-cloud/checkout/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Error is an error that maps to an HTTP response.
type Error struct {
	// status is the HTTP status code.
	status int

	// message is returned to the client.
	message string

	// err is the underlying cause, it is logged but never returned.
	err error

	// values are additional log context.
	values []any
}

func newError(status int, message string) *Error {
	return &Error{
		status:  status,
		message: message,
	}
}

// WithError attaches an underlying cause.
func (e *Error) WithError(err error) *Error {
	e.err = err

	return e
}

// WithValues attaches structured log context.
func (e *Error) WithValues(values ...any) *Error {
	e.values = append(e.values, values...)

	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}

	return e.message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

// Status returns the HTTP status code.
func (e *Error) Status() int {
	return e.status
}

// Message returns the client facing message.
func (e *Error) Message() string {
	return e.message
}

func HTTPBadRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

func HTTPUnauthorized(message string) *Error {
	return newError(http.StatusUnauthorized, message)
}

func HTTPForbidden(message string) *Error {
	return newError(http.StatusForbidden, message)
}

func HTTPNotFound(message string) *Error {
	return newError(http.StatusNotFound, message)
}

func HTTPInternalServerError() *Error {
	return newError(http.StatusInternalServerError, "Internal server error")
}

// HandleError writes an error envelope.  Errors that aren't already HTTP
// errors are logged and reported as internal server errors.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := log.FromContext(r.Context())

	var httpError *Error

	if !goerrors.As(err, &httpError) {
		log.Error(err, "unhandled error")

		httpError = HTTPInternalServerError().WithError(err)
	}

	if httpError.status >= http.StatusInternalServerError {
		log.Error(httpError.err, "request failed", httpError.values...)
	} else {
		log.V(1).Info("request rejected", append([]any{"status", httpError.status, "message", httpError.message}, httpError.values...)...)
	}

	util.WriteErrorResponse(w, r, httpError.status, httpError.message)
}
