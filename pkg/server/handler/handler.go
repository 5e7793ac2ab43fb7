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

//nolint:revive
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/checkout/pkg/config"
	"github.com/unikorn-cloud/checkout/pkg/constants"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
	"github.com/unikorn-cloud/checkout/pkg/server/store"
)

var (
	ErrMissingAuthToken = errors.New("an auth token is required")
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// AuthToken is the only bearer token accepted.
	AuthToken string

	// GuestPrefix marks user IDs of guest accounts, which have no access to
	// loyalty points or the wallet.
	GuestPrefix string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.AuthToken, "auth-token", constants.DefaultAuthToken, "Bearer token accepted from clients.")
	f.StringVar(&o.GuestPrefix, "guest-prefix", "guest_", "User ID prefix that identifies guest accounts.")
}

type Handler struct {
	// store holds accounts, orders and refunds.
	store *store.Memory

	// options allows behaviour to be defined on the CLI.
	options *Options

	// endpoints are the paths operations are served on.
	endpoints config.Endpoints
}

func New(store *store.Memory, options *Options, endpoints config.Endpoints) (*Handler, error) {
	if options.AuthToken == "" {
		return nil, ErrMissingAuthToken
	}

	h := &Handler{
		store:     store,
		options:   options,
		endpoints: endpoints,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// Routes mounts the API endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get(h.endpoints.Health, h.GetHealth)
	r.Post(h.endpoints.Orders, h.PostOrders)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get(h.endpoints.LoyaltyBalance, h.GetUserLoyaltyBalance)
		r.Post(h.endpoints.ApplyPoints, h.PostCheckoutApplyPoints)
		r.Post(h.endpoints.UseWallet, h.PostCheckoutUseWallet)
		r.Get(h.endpoints.WalletBalance, h.GetWalletBalance)
		r.Get(h.endpoints.WalletTransactions, h.GetWalletTransactions)
		r.Post(h.endpoints.RefundTrigger, h.PostRefundTrigger)
	})
}

// NotFound handles requests that match no route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	serverrors.HandleError(w, r, serverrors.HTTPNotFound("Endpoint not found"))
}

// storeError maps store rejections onto HTTP errors.
func storeError(err error) error {
	if errors.Is(err, store.ErrOrderNotFound) {
		return serverrors.HTTPNotFound(err.Error())
	}

	return serverrors.HTTPBadRequest(err.Error()).WithError(err)
}
