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
	"github.com/unikorn-cloud/checkout/pkg/verify"
	"github.com/unikorn-cloud/checkout/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Wallet", func() {
	Context("When reading the wallet balance", func() {
		Describe("Given a registered user", func() {
			It("should return the complete balance", func() {
				resp, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyResponseSpec(Default, resp, verify.SuccessResponseSpec())
				verify.VerifyWalletResponse(Default, resp)
				verify.VerifyFieldsPresence(Default, resp, "data.userId", "data.totalDeposited", "data.totalSpent", "data.minimumThreshold")
				verify.VerifyResponseTime(Default, resp, 2*time.Second)
				verifyContract(resp)
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an invalid token", func() {
				resp, err := apiClient.WithCredentials(client.Credentials{Token: "invalid_token", UserID: config.UserID}).GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusUnauthorized)
				verify.VerifyFieldValue(Default, resp, "message", "Invalid authentication token")
			})

			It("should forbid guest users", func() {
				resp, err := apiClient.WithCredentials(config.GuestCredentials()).GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusForbidden)
			})
		})
	})

	Context("When paying with the wallet", func() {
		BeforeEach(func() {
			api.CreateDefaultOrder(ctx, apiClient)
		})

		Describe("Given a valid payment", func() {
			It("should deduct the amount from the order", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldValue(Default, resp, "data.orderId", "order_12345")
				verify.VerifyNumericFieldValue(Default, resp, "data.walletAmountUsed", 50.00)
				verify.VerifyNumericFieldValue(Default, resp, "data.updatedOrderTotal", 249.00)
				verify.VerifyFieldsPresence(Default, resp, "data.remainingBalance", "data.transactionId")
				verifyContract(resp)
			})

			It("should debit the wallet balance", func() {
				before, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				verify.VerifySuccessResponse(Default, resp)

				after, err := apiClient.GetWalletBalance(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(after.Field("data.availableBalance").Float()).To(BeNumerically("~", before.Field("data.availableBalance").Float()-50.00, 1e-9))
			})
		})

		Describe("Given an invalid payment", func() {
			It("should reject more than the available balance", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().WithWalletAmount(1000.00).WithOrderTotal(1500.00).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Insufficient wallet balance")
				verifyContract(resp)
			})

			It("should reject less than the minimum threshold", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().WithWalletAmount(5.00).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Wallet amount below minimum threshold")
			})

			It("should reject more than the order total", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().WithWalletAmount(100.00).WithOrderTotal(50.00).Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verify.VerifyFieldValue(Default, resp, "message", "Wallet amount cannot exceed order total")
			})

			It("should reject an unknown order", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().WithOrderID("invalid_order_123").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusNotFound)
			})

			It("should reject a missing amount", func() {
				resp, err := apiClient.UseWallet(ctx, api.NewUseWalletPayload().Without("walletAmount").Build())
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyResponseSpec(Default, resp, verify.ErrorResponseSpec())
				verify.VerifyFieldValue(Default, resp, "message", "Missing required fields")
			})
		})
	})

	Context("When listing wallet transactions", func() {
		Describe("Given no filters", func() {
			It("should return the first page of history", func() {
				resp, err := apiClient.GetWalletTransactions(ctx)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldsPresence(Default, resp, "data.transactions", "data.pagination")
				verify.VerifyResponseTime(Default, resp, 2*time.Second)
				verifyContract(resp)

				Expect(resp.Field("data.pagination.limit").Int()).To(BeEquivalentTo(10))
				Expect(resp.Field("data.pagination.offset").Int()).To(BeEquivalentTo(0))
				Expect(resp.Field("data.transactions.#").Int()).To(BeNumerically("<=", 10))
			})
		})

		Describe("Given filters", func() {
			It("should only return matching transactions", func() {
				filter := client.TransactionFilter{
					Type:   "refund",
					Limit:  ptr.To(5),
					Offset: ptr.To(0),
				}

				resp, err := apiClient.GetWalletTransactionsWithFilters(ctx, filter)
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyFieldPresence(Default, resp, "data.transactions")
				verifyContract(resp)

				Expect(resp.Field("data.pagination.limit").Int()).To(BeEquivalentTo(5))

				for _, t := range resp.Field("data.transactions.#.type").Array() {
					Expect(t.String()).To(Equal("refund"))
				}
			})

			It("should only return transactions in the date range", func() {
				start := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)
				end := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

				resp, err := apiClient.GetWalletTransactionsWithFilters(ctx, client.TransactionFilter{StartDate: &start, EndDate: &end})
				Expect(err).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, resp)
				verify.VerifyNumericFieldValue(Default, resp, "data.pagination.total", 1)

				dates := resp.Field("data.transactions.#.date").Array()
				Expect(dates).To(HaveLen(1))
				verify.VerifyFieldValue(Default, resp, "data.transactions.0.transactionId", "txn_002")

				for _, date := range dates {
					t, err := time.Parse(time.RFC3339, date.String())
					Expect(err).NotTo(HaveOccurred())
					Expect(t).To(BeTemporally(">=", start))
					Expect(t).To(BeTemporally("<=", end))
				}
			})

			It("should reject an unknown transaction type", func() {
				resp, err := apiClient.GetWalletTransactionsWithFilters(ctx, client.TransactionFilter{Type: "chargeback"})
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyErrorResponse(Default, resp, http.StatusBadRequest)
				verifyContract(resp)
			})
		})
	})
})
