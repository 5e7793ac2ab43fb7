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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/server/store"
	"github.com/unikorn-cloud/checkout/pkg/verify"
	"github.com/unikorn-cloud/checkout/test/api"
)

var _ = Describe("Loyalty Points", func() {
	Context("When reading the loyalty balance", func() {
		Describe("Given a registered user", func() {
			It("should return the complete balance", func() {
				resp, err := apiClient.GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyResponseSpec(Default, resp, verify.SuccessResponseSpec())
				verify.VerifyLoyaltyBalanceResponse(Default, resp)
				verify.VerifyFieldsPresence(Default, resp,
					"data.userId",
					"data.totalEarned",
					"data.totalRedeemed",
					"data.lastUpdated",
					"data.currency",
					"data.region",
				)
				verify.VerifyResponseTime(Default, resp, 2*time.Second)
				verifyContract(resp)
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an invalid token", func() {
				resp, err := apiClient.WithCredentials(client.Credentials{Token: "invalid_token", UserID: config.UserID}).GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusUnauthorized)
				verifyContract(resp)
			})

			It("should reject a missing token", func() {
				resp, err := apiClient.WithCredentials(client.Credentials{UserID: config.UserID}).GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusUnauthorized)
			})
		})

		Describe("Given a guest user", func() {
			It("should forbid access", func() {
				resp, err := apiClient.WithCredentials(config.GuestCredentials()).GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusForbidden)
				verifyContract(resp)
			})
		})
	})

	Context("When applying points at checkout", func() {
		BeforeEach(func() {
			api.CreateDefaultOrder(ctx, apiClient)
		})

		Describe("Given a valid redemption", func() {
			It("should apply the points to the order", func() {
				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldValue(Default, resp, "data.orderId", "order_12345")
				verify.VerifyFieldsPresence(Default, resp, "data.pointsApplied", "data.discountAmount", "data.remainingBalance", "data.updatedOrderTotal")
				verify.VerifyResponseTime(Default, resp, 3*time.Second)
				verifyContract(resp)
			})

			It("should discount one unit of currency per ten points", func() {
				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyNumericFieldValue(Default, resp, "data.pointsApplied", 100)
				verify.VerifyNumericFieldValue(Default, resp, "data.discountAmount", 10.00)
				verify.VerifyNumericFieldValue(Default, resp, "data.updatedOrderTotal", 289.00)
			})

			It("should debit the loyalty balance", func() {
				before, err := apiClient.GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				verify.VerifySuccessResponse(Default, resp)

				after, err := apiClient.GetLoyaltyBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(after.Field("data.availablePoints").Int()).To(Equal(before.Field("data.availablePoints").Int() - 100))
				Expect(resp.Field("data.remainingBalance").Int()).To(Equal(after.Field("data.availablePoints").Int()))
			})
		})

		Describe("Given an invalid redemption", func() {
			It("should reject insufficient points", func() {
				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().WithPointsToUse(10000).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Insufficient loyalty points")
				verifyContract(resp)
			})

			It("should reject points above the maximum percentage of the order", func() {
				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().WithPointsToUse(1500).WithOrderTotal(100.00).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Points exceed maximum allowed percentage")
			})

			It("should reject an unknown order", func() {
				resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().WithOrderID("invalid_order_123").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusNotFound)
				verify.VerifyFieldValue(Default, resp, "message", "Order not found")
				verifyContract(resp)
			})

			DescribeTable("should reject missing required fields",
				func(field string) {
					resp, err := apiClient.ApplyPoints(ctx, api.NewApplyPointsPayload().Without(field).Build())
					Expect(err).NotTo(HaveOccurred())

					verify.VerifyResponseSpec(Default, resp, verify.ErrorResponseSpec())
					verify.VerifyFieldValue(Default, resp, "message", "Missing required fields")
				},
				Entry("without an order", "orderId"),
				Entry("without points", "pointsToUse"),
				Entry("without an order total", "orderTotal"),
			)

			It("should reject an empty body", func() {
				resp, err := apiClient.ApplyPoints(ctx, map[string]interface{}{})
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
			})
		})
	})

	Context("When the account holds expired points", func() {
		var expiredClient *client.Client

		BeforeEach(func() {
			if mockStore == nil {
				Skip("expired points can only be seeded into the mock service")
			}

			expiredClient = api.NewAPIClientWithConfig(config, startMockService(ctx, store.New(store.WithExpiredPoints(300))))
			api.CreateDefaultOrder(ctx, expiredClient)
		})

		It("should report the expired points", func() {
			resp, err := expiredClient.GetLoyaltyBalance(ctx)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifySuccessResponse(Default, resp)
			verify.VerifyNumericFieldValue(Default, resp, "data.expiredPoints", 300)
		})

		It("should reject redeeming expired points", func() {
			resp, err := expiredClient.ApplyPoints(ctx, api.NewApplyPointsPayload().WithUseExpiredPoints(true).Build())
			Expect(err).NotTo(HaveOccurred())

			verify.VerifyResponseSpec(Default, resp, verify.ErrorResponseSpec())
			verify.VerifyFieldValue(Default, resp, "message", "Cannot use expired loyalty points")
			verifyContract(resp)

			balance, err := expiredClient.GetLoyaltyBalance(ctx)
			Expect(err).NotTo(HaveOccurred())
			verify.VerifyNumericFieldValue(Default, balance, "data.availablePoints", 1500)
		})

		It("should redeem current points", func() {
			resp, err := expiredClient.ApplyPoints(ctx, api.NewApplyPointsPayload().WithUseExpiredPoints(false).Build())
			Expect(err).NotTo(HaveOccurred())

			verify.VerifySuccessResponse(Default, resp)
			verify.VerifyNumericFieldValue(Default, resp, "data.remainingBalance", 1400)
		})
	})
})
