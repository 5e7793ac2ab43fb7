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

package handler

import (
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/unikorn-cloud/checkout/pkg/constants"
	"github.com/unikorn-cloud/checkout/pkg/dto"
	"github.com/unikorn-cloud/checkout/pkg/openapi"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
	"github.com/unikorn-cloud/checkout/pkg/server/store"
	"github.com/unikorn-cloud/checkout/pkg/server/util"
)

const (
	defaultTransactionLimit = 10

	defaultPaymentType = "wallet"
)

func convertWallet(in *store.Wallet) *dto.WalletBalance {
	return &dto.WalletBalance{
		UserID:              in.UserID,
		AvailableBalance:    amount(in.AvailableBalance),
		TotalDeposited:      amount(in.TotalDeposited),
		TotalSpent:          amount(in.TotalSpent),
		LastTransactionDate: util.Timestamp(in.LastTransactionDate),
		Currency:            in.Currency,
		Region:              in.Region,
		MinimumThreshold:    amount(in.MinimumThreshold),
	}
}

func convertTransaction(in *store.Transaction) dto.Transaction {
	return dto.Transaction{
		TransactionID: in.ID,
		UserID:        in.UserID,
		Type:          dto.TransactionType(in.Type),
		Amount:        amount(in.Amount),
		Points:        int(in.Points),
		Description:   in.Description,
		Date:          util.Timestamp(in.Date),
		Currency:      in.Currency,
	}
}

func (h *Handler) GetWalletBalance(w http.ResponseWriter, r *http.Request) {
	if h.isGuest(userIDFromContext(r.Context())) {
		serverrors.HandleError(w, r, serverrors.HTTPForbidden("Guest users do not have access to wallet balance"))
		return
	}

	wallet := h.store.WalletBalance()

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertWallet(&wallet))
}

func (h *Handler) PostCheckoutUseWallet(w http.ResponseWriter, r *http.Request) {
	request := &dto.UseWalletRequest{}

	if err := decode(r, request, "orderId", "walletAmount", "orderTotal"); err != nil {
		serverrors.HandleError(w, r, err)
		return
	}

	result, err := h.store.UseWallet(store.UseWalletRequest{
		OrderID:    request.OrderID,
		Amount:     money(request.WalletAmount),
		OrderTotal: money(request.OrderTotal),
	})
	if err != nil {
		serverrors.HandleError(w, r, storeError(err))
		return
	}

	response := &dto.UseWalletResult{
		OrderID:           request.OrderID,
		WalletAmountUsed:  amount(result.Amount),
		RemainingBalance:  amount(result.RemainingBalance),
		UpdatedOrderTotal: amount(result.UpdatedOrderTotal),
		Currency:          stringOrDefault(request.Currency, constants.DefaultCurrency),
		TransactionID:     result.TransactionID,
		PaymentType:       stringOrDefault(request.PaymentType, defaultPaymentType),
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, response)
}

// transactionParams are the optional wallet transaction query parameters.
type transactionParams struct {
	Type      *string
	Limit     *int
	Offset    *int
	StartDate *time.Time
	EndDate   *time.Time
}

func bindTransactionParams(r *http.Request) (*transactionParams, error) {
	params := &transactionParams{}

	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"type", &params.Type},
		{"limit", &params.Limit},
		{"offset", &params.Offset},
		{"startDate", &params.StartDate},
		{"endDate", &params.EndDate},
	}

	for _, binding := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, binding.name, query, binding.dest); err != nil {
			return nil, serverrors.HTTPBadRequest("Invalid query parameter " + binding.name).WithError(err)
		}
	}

	if params.Type != nil {
		var t openapi.TransactionType

		if err := t.UnmarshalText([]byte(*params.Type)); err != nil {
			return nil, serverrors.HTTPBadRequest("Invalid transaction type").WithError(err)
		}
	}

	if (params.Limit != nil && *params.Limit < 0) || (params.Offset != nil && *params.Offset < 0) {
		return nil, serverrors.HTTPBadRequest("Pagination parameters must not be negative")
	}

	return params, nil
}

func (h *Handler) GetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	params, err := bindTransactionParams(r)
	if err != nil {
		serverrors.HandleError(w, r, err)
		return
	}

	filter := store.TransactionFilter{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}

	if params.Type != nil {
		filter.Type = *params.Type
	}

	limit := defaultTransactionLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	offset := 0
	if params.Offset != nil {
		offset = *params.Offset
	}

	matched := h.store.Transactions(filter)

	start := min(offset, len(matched))
	end := start + min(limit, len(matched)-start)

	transactions := make([]dto.Transaction, 0, end-start)

	for i := start; i < end; i++ {
		transactions = append(transactions, convertTransaction(&matched[i]))
	}

	response := &dto.WalletTransactions{
		UserID:       userIDFromContext(r.Context()),
		Transactions: transactions,
		Pagination: dto.Pagination{
			Limit:  limit,
			Offset: offset,
			Total:  len(matched),
		},
		Currency: constants.DefaultCurrency,
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, response)
}
