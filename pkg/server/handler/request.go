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
	"encoding/json"
	"io"
	"net/http"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/spjmurray/go-util/pkg/set"

	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
)

// truthy reports whether a decoded JSON value counts as supplied.  Null,
// false, zero and the empty string do not.
func truthy(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	}

	return true
}

// decode reads a JSON request body into v, rejecting it if any required
// field is absent or not truthy.
func decode(r *http.Request, v any, required ...string) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return serverrors.HTTPBadRequest("Invalid request body").WithError(err)
	}

	fields := map[string]any{}

	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return serverrors.HTTPBadRequest("Invalid request body").WithError(err)
		}
	}

	supplied := make([]string, 0, len(fields))

	for name, value := range fields {
		if truthy(value) {
			supplied = append(supplied, name)
		}
	}

	var missing []string

	for name := range set.New[string](required...).Difference(set.New[string](supplied...)).All() {
		missing = append(missing, name)
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return serverrors.HTTPBadRequest("Missing required fields").WithValues("fields", missing)
	}

	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return serverrors.HTTPBadRequest("Invalid request body").WithError(err)
	}

	return nil
}

// money converts a wire amount into an exact decimal, rounded to minor units.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// amount converts an exact decimal onto the wire.
func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func stringOrDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
