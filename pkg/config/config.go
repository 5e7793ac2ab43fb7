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

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrInvalidConfig is raised when loaded values cannot be used to
	// address the target service.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Property keys as they appear in the properties file.
const (
	KeyBaseURL            = "baseUrl"
	KeyLoyaltyBalance     = "loyaltyBalanceEndPoint"
	KeyApplyPoints        = "applyPointsEndPoint"
	KeyUseWallet          = "useWalletEndPoint"
	KeyWalletBalance      = "walletBalanceEndPoint"
	KeyWalletTransactions = "walletTransactionsEndPoint"
	KeyRefundTrigger      = "refundTriggerEndPoint"
	KeyOrders             = "ordersEndPoint"
	KeyHealth             = "healthEndPoint"
)

const (
	// DefaultPropertiesFile is looked up relative to the working directory.
	DefaultPropertiesFile = "config.properties"

	// DefaultBaseURL is where the mock service listens by default.
	DefaultBaseURL = "http://localhost:3000"
)

// binding ties a property to its environment override and default.
type binding struct {
	key      string
	env      string
	fallback string
}

//nolint:gochecknoglobals
var bindings = []binding{
	{KeyBaseURL, "API_BASE_URL", DefaultBaseURL},
	{KeyLoyaltyBalance, "LOYALTY_BALANCE_ENDPOINT", "/user/loyalty-balance"},
	{KeyApplyPoints, "APPLY_POINTS_ENDPOINT", "/checkout/apply-points"},
	{KeyUseWallet, "USE_WALLET_ENDPOINT", "/checkout/use-wallet"},
	{KeyWalletBalance, "WALLET_BALANCE_ENDPOINT", "/wallet/balance"},
	{KeyWalletTransactions, "WALLET_TRANSACTIONS_ENDPOINT", "/wallet/transactions"},
	{KeyRefundTrigger, "REFUND_TRIGGER_ENDPOINT", "/refund/trigger"},
	{KeyOrders, "ORDERS_ENDPOINT", "/orders"},
	{KeyHealth, "HEALTH_ENDPOINT", "/health"},
}

// Endpoints holds the path of every operation exposed by the target service.
type Endpoints struct {
	LoyaltyBalance     string
	ApplyPoints        string
	UseWallet          string
	WalletBalance      string
	WalletTransactions string
	RefundTrigger      string
	Orders             string
	Health             string
}

// Config is the resolved target service configuration.
type Config struct {
	// BaseURL is the scheme and authority of the target service.
	BaseURL string

	// Endpoints are paths relative to BaseURL.
	Endpoints Endpoints
}

type options struct {
	propertiesFile string
	envFiles       []string
}

// Option modifies how configuration is loaded.
type Option func(*options)

// WithPropertiesFile overrides the properties file location.
func WithPropertiesFile(path string) Option {
	return func(o *options) {
		o.propertiesFile = path
	}
}

// WithEnvFiles adds .env files to load before resolving values.
// Files that don't exist are ignored.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// Load resolves configuration from defaults, the properties file and the
// environment, in increasing order of precedence.
func Load(ctx context.Context, opts ...Option) (*Config, error) {
	o := &options{
		propertiesFile: DefaultPropertiesFile,
	}

	for _, opt := range opts {
		opt(o)
	}

	loadEnvFiles(ctx, o.envFiles)

	v := viper.NewWithOptions(viper.WithDecoderRegistry(decoders{}))
	v.SetConfigType(propertiesFormat)

	for _, b := range bindings {
		v.SetDefault(b.key, b.fallback)

		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, err
		}
	}

	if err := readProperties(ctx, v, o.propertiesFile); err != nil {
		return nil, err
	}

	config := &Config{
		BaseURL: strings.TrimSuffix(v.GetString(KeyBaseURL), "/"),
		Endpoints: Endpoints{
			LoyaltyBalance:     v.GetString(KeyLoyaltyBalance),
			ApplyPoints:        v.GetString(KeyApplyPoints),
			UseWallet:          v.GetString(KeyUseWallet),
			WalletBalance:      v.GetString(KeyWalletBalance),
			WalletTransactions: v.GetString(KeyWalletTransactions),
			RefundTrigger:      v.GetString(KeyRefundTrigger),
			Orders:             v.GetString(KeyOrders),
			Health:             v.GetString(KeyHealth),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// readProperties merges the properties file into v.  A missing file is not
// an error, the defaults and environment are enough to run against a local
// mock service.
func readProperties(ctx context.Context, v *viper.Viper, path string) error {
	log := log.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("properties file not found, using defaults", "path", path)

			return nil
		}

		return fmt.Errorf("opening properties file %s: %w", path, err)
	}

	defer f.Close()

	if err := v.ReadConfig(f); err != nil {
		return fmt.Errorf("parsing properties file %s: %w", path, err)
	}

	log.V(1).Info("loaded properties file", "path", path)

	return nil
}

func loadEnvFiles(ctx context.Context, paths []string) {
	log := log.FromContext(ctx)

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		// Existing environment variables take precedence over the file.
		if err := godotenv.Load(path); err != nil {
			log.Error(err, "failed to load .env file", "path", path)
		}
	}
}

// Validate checks the configuration can address the target service.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base URL %q: %w", ErrInvalidConfig, c.BaseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q must be absolute", ErrInvalidConfig, c.BaseURL)
	}

	paths := map[string]string{
		KeyLoyaltyBalance:     c.Endpoints.LoyaltyBalance,
		KeyApplyPoints:        c.Endpoints.ApplyPoints,
		KeyUseWallet:          c.Endpoints.UseWallet,
		KeyWalletBalance:      c.Endpoints.WalletBalance,
		KeyWalletTransactions: c.Endpoints.WalletTransactions,
		KeyRefundTrigger:      c.Endpoints.RefundTrigger,
		KeyOrders:             c.Endpoints.Orders,
		KeyHealth:             c.Endpoints.Health,
	}

	var invalid []string

	for key, path := range paths {
		if !strings.HasPrefix(path, "/") {
			invalid = append(invalid, key)
		}
	}

	if len(invalid) > 0 {
		slices.Sort(invalid)

		return fmt.Errorf("%w: endpoint paths must begin with '/': %s", ErrInvalidConfig, strings.Join(invalid, ", "))
	}

	return nil
}
