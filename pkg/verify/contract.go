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
	"github.com/unikorn-cloud/checkout/pkg/client"
)

// ContractValidator checks a response against an API description.
type ContractValidator interface {
	ValidateResponse(method, path string, status int, contentType string, body []byte) error
}

// Contract checks the response against the API description.
func Contract(validator ContractValidator, resp *client.Response) error {
	if err := validator.ValidateResponse(resp.Method, resp.Path, resp.StatusCode, resp.ContentType(), resp.Body); err != nil {
		return &Violation{Check: CheckContract, Actual: err}
	}

	return nil
}
