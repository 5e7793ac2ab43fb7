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

package api

import (
	"github.com/unikorn-cloud/checkout/pkg/client"
)

// NewAPIClientWithConfig returns a client for baseURL acting as the
// configured registered user.  The base URL is passed separately as it
// differs from the configured one when running against an in-process
// mock service.
func NewAPIClientWithConfig(config *TestConfig, baseURL string) *client.Client {
	return client.New(client.DefaultRequestSpec(baseURL), config.Endpoints,
		client.WithTimeout(config.RequestTimeout),
		client.WithAuth(config.Credentials()),
		client.WithRequestLogging(config.LogRequests, config.LogResponses),
	)
}
