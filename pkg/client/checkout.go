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

package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/oapi-codegen/runtime"
)

// TransactionFilter narrows a wallet transaction listing.
type TransactionFilter struct {
	// Type selects a single transaction type, e.g. "refund".
	Type string

	Limit  *int
	Offset *int

	// StartDate and EndDate bound the transaction date inclusively.
	StartDate *time.Time
	EndDate   *time.Time
}

// Values encodes the filter as form style query parameters.
func (f TransactionFilter) Values() (url.Values, error) {
	values := url.Values{}

	params := []struct {
		name  string
		set   bool
		value any
	}{
		{"type", f.Type != "", f.Type},
		{"limit", f.Limit != nil, f.Limit},
		{"offset", f.Offset != nil, f.Offset},
		{"startDate", f.StartDate != nil, f.StartDate},
		{"endDate", f.EndDate != nil, f.EndDate},
	}

	for _, param := range params {
		if !param.set {
			continue
		}

		fragment, err := runtime.StyleParamWithLocation("form", true, param.name, runtime.ParamLocationQuery, param.value)
		if err != nil {
			return nil, err
		}

		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, err
		}

		for key, vs := range parsed {
			for _, v := range vs {
				values.Add(key, v)
			}
		}
	}

	return values, nil
}

// GetLoyaltyBalance reads the caller's loyalty point balance.
func (c *Client) GetLoyaltyBalance(ctx context.Context) (*Response, error) {
	return c.NewRequest(http.MethodGet, c.endpoints.LoyaltyBalance).Do(ctx)
}

// ApplyPoints redeems loyalty points against an order.
func (c *Client) ApplyPoints(ctx context.Context, body any) (*Response, error) {
	return c.NewRequest(http.MethodPost, c.endpoints.ApplyPoints).Body(body).Do(ctx)
}

// GetWalletBalance reads the caller's wallet.
func (c *Client) GetWalletBalance(ctx context.Context) (*Response, error) {
	return c.NewRequest(http.MethodGet, c.endpoints.WalletBalance).Do(ctx)
}

// UseWallet pays towards an order from the wallet.
func (c *Client) UseWallet(ctx context.Context, body any) (*Response, error) {
	return c.NewRequest(http.MethodPost, c.endpoints.UseWallet).Body(body).Do(ctx)
}

// GetWalletTransactions lists the caller's transactions with server defaults.
func (c *Client) GetWalletTransactions(ctx context.Context) (*Response, error) {
	return c.NewRequest(http.MethodGet, c.endpoints.WalletTransactions).Do(ctx)
}

// GetWalletTransactionsWithFilters lists the caller's transactions narrowed
// by the filter.
func (c *Client) GetWalletTransactionsWithFilters(ctx context.Context, filter TransactionFilter) (*Response, error) {
	query, err := filter.Values()
	if err != nil {
		return nil, err
	}

	return c.NewRequest(http.MethodGet, c.endpoints.WalletTransactions).Query(query).Do(ctx)
}

// TriggerRefund refunds part or all of an order.
func (c *Client) TriggerRefund(ctx context.Context, body any) (*Response, error) {
	return c.NewRequest(http.MethodPost, c.endpoints.RefundTrigger).Body(body).Do(ctx)
}

// CreateOrder registers an order, no credentials are sent.
func (c *Client) CreateOrder(ctx context.Context, body any) (*Response, error) {
	return c.NewRequest(http.MethodPost, c.endpoints.Orders).Body(body).WithoutAuth().Do(ctx)
}

// HealthCheck probes service liveness, no credentials are sent.
func (c *Client) HealthCheck(ctx context.Context) (*Response, error) {
	return c.NewRequest(http.MethodGet, c.endpoints.Health).WithoutAuth().Do(ctx)
}
