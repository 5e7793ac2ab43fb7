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

package constants

import (
	"fmt"
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

// VersionString returns a canonical version string.
func VersionString() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}

const (
	// DefaultUserID is the account the suite acts as unless overridden.
	DefaultUserID = "user_12345"

	// DefaultGuestUserID is a guest account without loyalty or wallet access.
	DefaultGuestUserID = "guest_67890"

	// DefaultAuthToken is the bearer token accepted by the mock service.
	DefaultAuthToken = "valid_auth_token_12345"

	// DefaultCurrency is the currency every monetary value is quoted in.
	DefaultCurrency = "SAR"

	// DefaultRegion is the storefront region.
	DefaultRegion = "KSA"

	// TraceState is sent with every request for log correlation.
	TraceState = "test-automation=ginkgo"
)
