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
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/verify"
)

var _ = Describe("Performance", func() {
	Context("When reading balances", func() {
		DescribeTable("should respond within the latency budget",
			func(call func() (*client.Response, error), limit time.Duration) {
				spec := verify.NewResponseSpecBuilder().
					ExpectStatusCode(http.StatusOK).
					ExpectResponseTime(limit).
					Build()

				resp, err := call()
				Expect(err).NotTo(HaveOccurred())

				verify.VerifyResponseSpec(Default, resp, spec)
			},
			Entry("for the loyalty balance", func() (*client.Response, error) { return apiClient.GetLoyaltyBalance(ctx) }, 2*time.Second),
			Entry("for the wallet balance", func() (*client.Response, error) { return apiClient.GetWalletBalance(ctx) }, 2*time.Second),
			Entry("for wallet transactions", func() (*client.Response, error) { return apiClient.GetWalletTransactions(ctx) }, 2*time.Second),
			Entry("for the health check", func() (*client.Response, error) { return apiClient.HealthCheck(ctx) }, time.Second),
		)
	})

	Context("When under concurrent load", func() {
		It("should serve every request", func() {
			const requests = 20

			responses := make([]*client.Response, requests)
			errs := make([]error, requests)

			var wg sync.WaitGroup

			for i := range requests {
				wg.Add(1)

				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					responses[i], errs[i] = apiClient.GetLoyaltyBalance(ctx)
				}()
			}

			wg.Wait()

			for i := range requests {
				Expect(errs[i]).NotTo(HaveOccurred())

				verify.VerifySuccessResponse(Default, responses[i])
				verify.VerifyResponseTime(Default, responses[i], 3*time.Second)
			}
		})
	})
})
