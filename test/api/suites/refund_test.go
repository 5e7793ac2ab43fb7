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
	"github.com/shopspring/decimal"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/verify"
	"github.com/unikorn-cloud/checkout/test/api"
)

var _ = Describe("Refunds", func() {
	BeforeEach(func() {
		api.CreateDefaultOrder(ctx, apiClient)
	})

	Context("When triggering a refund", func() {
		Describe("Given a valid refund to the wallet", func() {
			It("should process the refund", func() {
				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldsPresence(Default, resp, "data.refundId", "data.status", "data.processedAt")
				verify.VerifyFieldValue(Default, resp, "data.orderId", "order_12345")
				verify.VerifyFieldValue(Default, resp, "data.status", "processed")
				verify.VerifyNumericFieldValue(Default, resp, "data.refundAmount", 75.50)
				verify.VerifyResponseTime(Default, resp, 5*time.Second)
				verifyContract(resp)
			})

			It("should record the refund against the order", func() {
				if mockStore == nil {
					Skip("refund records are only visible in the mock service")
				}

				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				verify.VerifySuccessResponse(Default, resp)

				refunds := mockStore.Refunds("order_12345")
				Expect(refunds).To(HaveLen(1))
				Expect(refunds[0].ID).To(Equal(resp.Field("data.refundId").String()))
				Expect(refunds[0].Amount.Equal(decimal.RequireFromString("75.50"))).To(BeTrue(), refunds[0].Amount.String())
				Expect(refunds[0].Type).To(Equal("wallet"))
			})

			It("should credit the wallet and record a transaction", func() {
				before, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				verify.VerifySuccessResponse(Default, resp)

				after, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(after.Field("data.availableBalance").Float()).To(BeNumerically("~", before.Field("data.availableBalance").Float()+75.50, 1e-9))

				transactions, err := apiClient.GetWalletTransactionsWithFilters(ctx, client.TransactionFilter{Type: "refund"})
				Expect(err).NotTo(HaveOccurred())

				Expect(transactions.Field("data.transactions.0.description").String()).To(Equal("Customer requested return"))
			})
		})

		Describe("Given a refund to the original payment method", func() {
			It("should process the refund without touching the wallet", func() {
				before, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().WithRefundType("original").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldValue(Default, resp, "data.refundType", "original")

				after, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(after.Field("data.availableBalance").Float()).To(BeNumerically("~", before.Field("data.availableBalance").Float(), 1e-9))
			})
		})

		Describe("Given an invalid refund", func() {
			It("should reject an unknown order", func() {
				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().WithOrderID("invalid_order_123").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusNotFound)
				verify.VerifyFieldValue(Default, resp, "message", "Order not found")
				verifyContract(resp)
			})

			It("should reject more than the order total", func() {
				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().WithRefundAmount(1000.00).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Refund amount cannot exceed order total")
				verifyContract(resp)
			})

			It("should reject a missing reason", func() {
				resp, err := apiClient.TriggerRefund(ctx, api.NewRefundPayload().Without("refundReason").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyResponseSpec(Default, resp, verify.ErrorResponseSpec())
			})
		})
	})
})
