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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"embed"
	"encoding/json"
	"net/http"
	"path"

	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/checkout/pkg/client"
)

//go:embed testdata/*.json
var testdata embed.FS

// LoadPayload reads a request body from the testdata directory.
func LoadPayload(name string) map[string]interface{} {
	data, err := testdata.ReadFile(path.Join("testdata", name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	payload := map[string]interface{}{}
	ExpectWithOffset(1, json.Unmarshal(data, &payload)).To(Succeed())

	return payload
}

// CreateOrder registers an order, it is a precondition of every checkout
// operation so anything but a 201 fails the spec.
func CreateOrder(ctx context.Context, c *client.Client, payload map[string]interface{}) *client.Response {
	resp, err := c.CreateOrder(ctx, payload)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, resp.StatusCode).To(Equal(http.StatusCreated), resp.String())

	return resp
}

// CreateDefaultOrder registers the order used by the default payloads.
func CreateDefaultOrder(ctx context.Context, c *client.Client) *client.Response {
	return CreateOrder(ctx, c, NewOrderPayload().Build())
}
