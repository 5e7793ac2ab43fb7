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

package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/unikorn-cloud/checkout/pkg/headers"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type contextKey int

const (
	userIDKey contextKey = iota
)

func userIDFromContext(ctx context.Context) string {
	//nolint:forcetypeassert
	return ctx.Value(userIDKey).(string)
}

// requestUserID returns the caller from the User-ID header, falling back to
// a userId field in a JSON body.  The body is restored for later reads.
func requestUserID(r *http.Request) (string, error) {
	if userID := r.Header.Get(headers.UserID); userID != "" {
		return userID, nil
	}

	if r.Body == nil {
		return "", nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return gjson.GetBytes(body, "userId").String(), nil
}

// authenticate requires a user ID and the configured bearer token.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := requestUserID(r)
		if err != nil {
			serverrors.HandleError(w, r, serverrors.HTTPBadRequest("Invalid request body").WithError(err))
			return
		}

		authorization := r.Header.Get(headers.Authorization)

		if userID == "" || authorization == "" {
			serverrors.HandleError(w, r, serverrors.HTTPUnauthorized("Missing user ID or authorization token"))
			return
		}

		if authorization != headers.Bearer(h.options.AuthToken) {
			serverrors.HandleError(w, r, serverrors.HTTPUnauthorized("Invalid authentication token"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = log.IntoContext(ctx, log.FromContext(ctx).WithValues("userID", userID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) isGuest(userID string) bool {
	return h.options.GuestPrefix != "" && strings.HasPrefix(userID, h.options.GuestPrefix)
}
