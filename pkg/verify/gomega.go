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
	"time"

	"github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
)

// expectAll raises a failure for each non-nil error.
func expectAll(g gomega.Gomega, errs ...error) {
	for _, err := range errs {
		g.ExpectWithOffset(2, err).To(gomega.Succeed())
	}
}

// VerifyStatusCode asserts the HTTP status.
func VerifyStatusCode(g gomega.Gomega, resp *client.Response, expected int) {
	expectAll(g, StatusCode(resp, expected))
}

// VerifyContentType asserts the content type.
func VerifyContentType(g gomega.Gomega, resp *client.Response, expected string) {
	expectAll(g, ContentType(resp, expected))
}

// VerifyFieldPresence asserts a field is present and non-null.
func VerifyFieldPresence(g gomega.Gomega, resp *client.Response, field string) {
	expectAll(g, FieldPresent(resp, field))
}

// VerifyFieldsPresence asserts each field is present and non-null.
func VerifyFieldsPresence(g gomega.Gomega, resp *client.Response, fields ...string) {
	expectAll(g, fieldChecks(resp, fields...)...)
}

// VerifyFieldValue asserts the string rendering of a field.
func VerifyFieldValue(g gomega.Gomega, resp *client.Response, field, expected string) {
	expectAll(g, FieldValue(resp, field, expected))
}

// VerifyNumericFieldValue asserts a numeric field.
func VerifyNumericFieldValue(g gomega.Gomega, resp *client.Response, field string, expected float64) {
	expectAll(g, NumericFieldValue(resp, field, expected))
}

// VerifyResponseTime asserts the round trip latency.
func VerifyResponseTime(g gomega.Gomega, resp *client.Response, limit time.Duration) {
	expectAll(g, ResponseTime(resp, limit))
}

// VerifySuccessResponse asserts a 200 with a true success flag.
func VerifySuccessResponse(g gomega.Gomega, resp *client.Response) {
	expectAll(g, successChecks(resp)...)
}

// VerifyErrorResponse asserts an error envelope with the given status.
func VerifyErrorResponse(g gomega.Gomega, resp *client.Response, code int) {
	expectAll(g, errorChecks(resp, code)...)
}

// VerifyLoyaltyBalanceResponse asserts a successful loyalty balance.
func VerifyLoyaltyBalanceResponse(g gomega.Gomega, resp *client.Response) {
	expectAll(g, loyaltyBalanceChecks(resp)...)
}

// VerifyWalletResponse asserts a successful wallet balance.
func VerifyWalletResponse(g gomega.Gomega, resp *client.Response) {
	expectAll(g, walletChecks(resp)...)
}

// VerifyResponseSpec asserts every expectation of a response spec.
func VerifyResponseSpec(g gomega.Gomega, resp *client.Response, spec ResponseSpec) {
	expectAll(g, spec.checks(resp)...)
}

// VerifyContract asserts the response conforms to the API description.
func VerifyContract(g gomega.Gomega, validator ContractValidator, resp *client.Response) {
	expectAll(g, Contract(validator, resp))
}
