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
	"context"
	"os"
	"strconv"
	"time"

	"github.com/unikorn-cloud/checkout/pkg/client"
	"github.com/unikorn-cloud/checkout/pkg/config"
	"github.com/unikorn-cloud/checkout/pkg/constants"
)

// envPaths are searched for a .env file, relative to the suites directory.
//
//nolint:gochecknoglobals
var envPaths = []string{
	"../../.env",
	"../../../test/.env",
}

const (
	// defaultPropertiesFile is relative to the suites directory.
	defaultPropertiesFile = "../../config.properties"
)

type TestConfig struct {
	// Config holds the service location and endpoint paths.
	*config.Config

	AuthToken        string
	UserID           string
	GuestUserID      string
	RequestTimeout   time.Duration
	UseMockServer    bool
	ValidateContract bool
	LogRequests      bool
	LogResponses     bool
	ReportDir        string
}

// LoadTestConfig loads configuration from the properties file, environment
// variables and .env files.
func LoadTestConfig(ctx context.Context) (*TestConfig, error) {
	cfg, err := config.Load(ctx,
		config.WithEnvFiles(envPaths...),
		config.WithPropertiesFile(getStringWithDefault("PROPERTIES_FILE", defaultPropertiesFile)),
	)
	if err != nil {
		return nil, err
	}

	testConfig := &TestConfig{
		Config:           cfg,
		AuthToken:        getStringWithDefault("API_AUTH_TOKEN", constants.DefaultAuthToken),
		UserID:           getStringWithDefault("TEST_USER_ID", constants.DefaultUserID),
		GuestUserID:      getStringWithDefault("TEST_GUEST_USER_ID", constants.DefaultGuestUserID),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", client.DefaultTimeout),
		UseMockServer:    getBoolWithDefault("USE_MOCK_SERVER", true),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
		ReportDir:        os.Getenv("REPORT_DIR"),
	}

	return testConfig, nil
}

// Credentials are the configured registered user's.
func (c *TestConfig) Credentials() client.Credentials {
	return client.Credentials{
		Token:  c.AuthToken,
		UserID: c.UserID,
	}
}

// GuestCredentials are a valid token for a guest account.
func (c *TestConfig) GuestCredentials() client.Credentials {
	return client.Credentials{
		Token:  c.AuthToken,
		UserID: c.GuestUserID,
	}
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
