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

package util

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/unikorn-cloud/checkout/pkg/headers"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// envelope wraps every response body.
type envelope struct {
	Success   bool    `json:"success"`
	Data      any     `json:"data"`
	Message   *string `json:"message"`
	Timestamp string  `json:"timestamp"`
}

// Timestamp formats a time as an ISO 8601 UTC string with milliseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func write(w http.ResponseWriter, r *http.Request, status int, body *envelope) {
	w.Header().Set(headers.ContentType, headers.MediaTypeJSONUTF8)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

// WriteJSONResponse writes a successful envelope around data.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	write(w, r, status, &envelope{
		Success:   true,
		Data:      data,
		Timestamp: Timestamp(time.Now()),
	})
}

// WriteErrorResponse writes a failed envelope with an explanatory message.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	write(w, r, status, &envelope{
		Success:   false,
		Message:   &message,
		Timestamp: Timestamp(time.Now()),
	})
}
