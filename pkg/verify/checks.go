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

// Package verify asserts on checkout API responses.  Every expectation is
// available as a plain check returning an error, and as a Gomega assertion
// that raises one failure per unmet expectation.
package verify

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/unikorn-cloud/checkout/pkg/client"
)

// StatusCode checks the HTTP status.
func StatusCode(resp *client.Response, expected int) error {
	if resp.StatusCode != expected {
		return &Violation{Check: CheckStatusCode, Expected: expected, Actual: resp.StatusCode}
	}

	return nil
}

// ContentType checks the content type header.  When the expectation carries
// no parameters only the media type is compared, so "application/json"
// matches "application/json; charset=utf-8".
func ContentType(resp *client.Response, expected string) error {
	actual := resp.ContentType()

	if strings.Contains(expected, ";") {
		if !strings.EqualFold(actual, expected) {
			return &Violation{Check: CheckContentType, Expected: expected, Actual: actual}
		}

		return nil
	}

	if !strings.EqualFold(resp.MediaType(), expected) {
		return &Violation{Check: CheckContentType, Expected: expected, Actual: actual}
	}

	return nil
}

// present is true when a path resolves to a non-null value.
func present(result gjson.Result) bool {
	return result.Exists() && result.Type != gjson.Null
}

// FieldPresent checks a dotted JSON path resolves to a non-null value.
func FieldPresent(resp *client.Response, field string) error {
	if !present(resp.Field(field)) {
		return &Violation{Check: CheckFieldPresent, Field: field}
	}

	return nil
}

// FieldValue compares the string rendering of a field, booleans render as
// "true" and "false", numbers as they appear on the wire.
func FieldValue(resp *client.Response, field, expected string) error {
	result := resp.Field(field)

	actual := "null"
	if present(result) {
		actual = result.String()
	}

	if actual != expected {
		return &Violation{Check: CheckFieldValue, Field: field, Expected: expected, Actual: actual}
	}

	return nil
}

const epsilon = 1e-9

// NumericFieldValue compares a numeric field, 10 and 10.00 are equal.
func NumericFieldValue(resp *client.Response, field string, expected float64) error {
	result := resp.Field(field)

	if result.Type != gjson.Number {
		return &Violation{Check: CheckFieldValue, Field: field, Expected: expected, Actual: result.Raw}
	}

	if math.Abs(result.Float()-expected) > epsilon {
		return &Violation{Check: CheckFieldValue, Field: field, Expected: expected, Actual: result.Float()}
	}

	return nil
}

// ResponseTime checks the round trip took no longer than limit.
func ResponseTime(resp *client.Response, limit time.Duration) error {
	if resp.Duration > limit {
		return &Violation{Check: CheckResponseTime, Expected: limit, Actual: resp.Duration}
	}

	return nil
}

// responseTimeBelow checks the round trip finished strictly within limit.
func responseTimeBelow(resp *client.Response, limit time.Duration) error {
	if resp.Duration >= limit {
		return &Violation{Check: CheckResponseTimeBelow, Expected: limit, Actual: resp.Duration}
	}

	return nil
}

func successChecks(resp *client.Response) []error {
	return []error{
		StatusCode(resp, http.StatusOK),
		FieldPresent(resp, "success"),
		FieldValue(resp, "success", "true"),
	}
}

func errorChecks(resp *client.Response, code int) []error {
	return []error{
		StatusCode(resp, code),
		FieldPresent(resp, "success"),
		FieldValue(resp, "success", "false"),
		FieldPresent(resp, "message"),
	}
}

func fieldChecks(resp *client.Response, fields ...string) []error {
	errs := make([]error, len(fields))

	for i, field := range fields {
		errs[i] = FieldPresent(resp, field)
	}

	return errs
}

func loyaltyBalanceChecks(resp *client.Response) []error {
	return append(successChecks(resp), fieldChecks(resp, "data.userId", "data.availablePoints", "data.currency", "data.region")...)
}

func walletChecks(resp *client.Response) []error {
	return append(successChecks(resp), fieldChecks(resp, "data.userId", "data.availableBalance", "data.currency", "data.region")...)
}

// SuccessResponse checks for a 200 with a true success flag.
func SuccessResponse(resp *client.Response) error {
	return errors.Join(successChecks(resp)...)
}

// ErrorResponse checks for the given status with a false success flag and
// an explanatory message.
func ErrorResponse(resp *client.Response, code int) error {
	return errors.Join(errorChecks(resp, code)...)
}

// LoyaltyBalanceResponse checks a successful loyalty balance response.
func LoyaltyBalanceResponse(resp *client.Response) error {
	return errors.Join(loyaltyBalanceChecks(resp)...)
}

// WalletResponse checks a successful wallet balance response.
func WalletResponse(resp *client.Response) error {
	return errors.Join(walletChecks(resp)...)
}
