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

	"github.com/unikorn-cloud/checkout/pkg/verify"
)

var _ = Describe("Health", func() {
	Context("When probing the service", func() {
		It("should report healthy without credentials", func() {
			resp, err := apiClient.HealthCheck(ctx)
			Expect(err).NotTo(HaveOccurred())

			verify.VerifySuccessResponse(Default, resp)
			verify.VerifyFieldValue(Default, resp, "data.status", "healthy")
			verify.VerifyResponseTime(Default, resp, time.Second)
			verifyContract(resp)
		})
	})
})
