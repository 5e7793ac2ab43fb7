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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/dto"
	"github.com/unikorn-cloud/checkout/pkg/openapi"
	"github.com/unikorn-cloud/checkout/pkg/verify"
)

var _ = Describe("Data Validation", func() {
	Context("When reading the loyalty balance", func() {
		It("should return consistent point totals", func() {
			resp, err := apiClient.GetLoyaltyBalance(ctx)
			Expect(err).NotTo(HaveOccurred())

			envelope, err := client.DecodeEnvelope[dto.LoyaltyBalance](resp)
			Expect(err).NotTo(HaveOccurred())

			Expect(envelope.Success).To(BeTrue())
			Expect(envelope.Message).To(BeNil())
			Expect(envelope.Data).NotTo(BeNil())

			balance := envelope.Data

			Expect(balance.AvailablePoints).To(BeNumerically(">=", 0))
			Expect(balance.TotalEarned).To(BeNumerically(">=", balance.TotalRedeemed))
			Expect(balance.Currency).NotTo(BeEmpty())

			_, err = time.Parse(time.RFC3339, balance.LastUpdated)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("When reading the wallet balance", func() {
		It("should return non-negative amounts", func() {
			resp, err := apiClient.GetWalletBalance(ctx)
			Expect(err).NotTo(HaveOccurred())

			envelope, err := client.DecodeEnvelope[dto.WalletBalance](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(envelope.Data).NotTo(BeNil())

			Expect(envelope.Data.AvailableBalance).To(BeNumerically(">=", 0))
			Expect(envelope.Data.MinimumThreshold).To(BeNumerically(">=", 0))
		})
	})

	Context("When listing wallet transactions", func() {
		It("should only return known transaction types", func() {
			resp, err := apiClient.GetWalletTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())

			envelope, err := client.DecodeEnvelope[dto.WalletTransactions](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(envelope.Data).NotTo(BeNil())

			for _, transaction := range envelope.Data.Transactions {
				var t openapi.TransactionType
				Expect(t.UnmarshalText([]byte(transaction.Type))).To(Succeed())

				Expect(transaction.TransactionID).NotTo(BeEmpty())
			}

			Expect(len(envelope.Data.Transactions)).To(BeNumerically("<=", envelope.Data.Pagination.Limit))
		})
	})

	Context("When validating every response against the API contract", func() {
		It("should conform for each read operation", func() {
			calls := []func() (*client.Response, error){
				func() (*client.Response, error) { return apiClient.HealthCheck(ctx) },
				func() (*client.Response, error) { return apiClient.GetLoyaltyBalance(ctx) },
				func() (*client.Response, error) { return apiClient.GetWalletBalance(ctx) },
				func() (*client.Response, error) { return apiClient.GetWalletTransactions(ctx) },
			}

			for _, call := range calls {
				resp, err := call()
				Expect(err).NotTo(HaveOccurred())

				Expect(verify.Contract(validator, resp)).To(Succeed(), resp.String())
			}
		})
	})
})
