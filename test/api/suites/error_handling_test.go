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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/headers"
	"github.com/unikorn-cloud/checkout/pkg/verify"
	"github.com/unikorn-cloud/checkout/test/api"
)

var _ = Describe("Error Handling", func() {
	Context("When calling an unknown endpoint", func() {
		It("should return a not found envelope", func() {
			resp, err := apiClient.NewRequest(http.MethodGet, "/invalid-endpoint").Do(ctx)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifyErrorResponse(Default, resp, http.StatusNotFound)
			verify.VerifyContentType(Default, resp, headers.MediaTypeJSON)
			verify.VerifyFieldValue(Default, resp, "message", "Endpoint not found")
		})
	})

	Context("When sending malformed requests", func() {
		BeforeEach(func() {
			api.CreateDefaultOrder(ctx, apiClient)
		})

		It("should reject invalid JSON", func() {
			resp, err := apiClient.ApplyPoints(ctx, `{"orderId": "order_12345", "pointsToUse":`)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
		})

		DescribeTable("should reject an empty body",
			func(call func() (*client.Response, error)) {
				resp, err := call()
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Missing required fields")
			},
			Entry("when applying points", func() (*client.Response, error) {
				return apiClient.ApplyPoints(ctx, map[string]interface{}{})
			}),
			Entry("when paying with the wallet", func() (*client.Response, error) {
				return apiClient.UseWallet(ctx, map[string]interface{}{})
			}),
			Entry("when triggering a refund", func() (*client.Response, error) {
				return apiClient.TriggerRefund(ctx, map[string]interface{}{})
			}),
			Entry("when creating an order", func() (*client.Response, error) {
				return apiClient.CreateOrder(ctx, map[string]interface{}{})
			}),
		)
	})

	Context("When omitting the user", func() {
		It("should reject the request", func() {
			resp, err := apiClient.WithCredentials(client.Credentials{Token: config.AuthToken}).GetWalletBalance(ctx)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifyErrorResponse(Default, resp, http.StatusUnauthorized)
			verify.VerifyFieldValue(Default, resp, "message", "Missing user ID or authorization token")
		})

		It("should accept the user from the request body", func() {
			api.CreateDefaultOrder(ctx, apiClient)

			resp, err := apiClient.WithCredentials(client.Credentials{Token: config.AuthToken}).ApplyPoints(ctx, api.NewApplyPointsPayload().WithUserID(config.UserID).Build())
			Expect(err).NotTo(HaveOccurred())

			verify.VerifySuccessResponse(Default, resp)
		})
	})

	Context("When negotiating content types", func() {
		It("should accept requests without a charset", func() {
			plain := client.New(client.NoCharsetRequestSpec(baseURL), config.Endpoints, client.WithAuth(config.Credentials()))

			resp, err := plain.GetLoyaltyBalance(ctx)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifySuccessResponse(Default, resp)
			verify.VerifyContentType(Default, resp, headers.MediaTypeJSONUTF8)
		})
	})
})
