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

	"github.com/unikorn-cloud/checkout/pkg/constants"
	"github.com/unikorn-cloud/checkout/pkg/dto"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
	"github.com/unikorn-cloud/checkout/pkg/server/store"
	"github.com/unikorn-cloud/checkout/pkg/server/util"
)

func (h *Handler) PostRefundTrigger(w http.ResponseWriter, r *http.Request) {
	request := &dto.RefundTriggerRequest{}

	if err := decode(r, request, "orderId", "refundAmount", "refundReason"); err != nil {
		serverrors.HandleError(w, r, err)
		return
	}

	refundType := stringOrDefault(string(request.RefundType), string(dto.RefundTypeWallet))

	if refundType != string(dto.RefundTypeWallet) && refundType != string(dto.RefundTypeOriginal) {
		serverrors.HandleError(w, r, serverrors.HTTPBadRequest("Invalid refund type"))
		return
	}

	refund, err := h.store.Refund(store.RefundRequest{
		UserID:   userIDFromContext(r.Context()),
		OrderID:  request.OrderID,
		Amount:   money(request.RefundAmount),
		Reason:   request.RefundReason,
		Type:     refundType,
		Currency: stringOrDefault(request.Currency, constants.DefaultCurrency),
		Region:   stringOrDefault(request.Region, constants.DefaultRegion),
	})
	if err != nil {
		serverrors.HandleError(w, r, storeError(err))
		return
	}

	response := &dto.RefundTriggerResult{
		RefundID:     refund.ID,
		OrderID:      refund.OrderID,
		RefundAmount: amount(refund.Amount),
		RefundType:   dto.RefundType(refund.Type),
		Status:       refund.Status,
		Currency:     refund.Currency,
		ProcessedAt:  util.Timestamp(refund.ProcessedAt),
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, response)
}

func (h *Handler) PostOrders(w http.ResponseWriter, r *http.Request) {
	request := &dto.CreateOrderRequest{}

	if err := decode(r, request, "orderId", "total"); err != nil {
		serverrors.HandleError(w, r, err)
		return
	}

	order := h.store.CreateOrder(request.OrderID, money(request.Total), stringOrDefault(request.Currency, constants.DefaultCurrency))

	response := &dto.Order{
		OrderID:  order.ID,
		Total:    amount(order.Total),
		Currency: order.Currency,
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, response)
}
