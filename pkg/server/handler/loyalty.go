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

	"github.com/unikorn-cloud/checkout/pkg/constants"
	"github.com/unikorn-cloud/checkout/pkg/dto"
	serverrors "github.com/unikorn-cloud/checkout/pkg/server/errors"
	"github.com/unikorn-cloud/checkout/pkg/server/store"
	"github.com/unikorn-cloud/checkout/pkg/server/util"
)

func convertLoyaltyBalance(in *store.LoyaltyAccount) *dto.LoyaltyBalance {
	return &dto.LoyaltyBalance{
		UserID:             in.UserID,
		AvailablePoints:    int(in.AvailablePoints),
		TotalEarned:        int(in.TotalEarned),
		TotalRedeemed:      int(in.TotalRedeemed),
		ExpiredPoints:      int(in.ExpiredPoints),
		LastUpdated:        util.Timestamp(in.LastUpdated),
		PointsExpiringSoon: int(in.PointsExpiringSoon),
		Currency:           in.Currency,
		Region:             in.Region,
	}
}

func (h *Handler) GetUserLoyaltyBalance(w http.ResponseWriter, r *http.Request) {
	if h.isGuest(userIDFromContext(r.Context())) {
		serverrors.HandleError(w, r, serverrors.HTTPForbidden("Guest users do not have access to loyalty points"))
		return
	}

	balance := h.store.LoyaltyBalance()

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, convertLoyaltyBalance(&balance))
}

func (h *Handler) PostCheckoutApplyPoints(w http.ResponseWriter, r *http.Request) {
	request := &dto.ApplyPointsRequest{}

	if err := decode(r, request, "orderId", "pointsToUse", "orderTotal"); err != nil {
		serverrors.HandleError(w, r, err)
		return
	}

	orderTotal := money(request.OrderTotal)

	result, err := h.store.ApplyPoints(store.ApplyPointsRequest{
		OrderID:          request.OrderID,
		Points:           int64(request.PointsToUse),
		OrderTotal:       orderTotal,
		UseExpiredPoints: request.UseExpiredPoints != nil && *request.UseExpiredPoints,
	})
	if err != nil {
		serverrors.HandleError(w, r, storeError(err))
		return
	}

	response := &dto.ApplyPointsResult{
		OrderID:           request.OrderID,
		PointsApplied:     int(result.Points),
		DiscountAmount:    amount(result.Discount),
		RemainingBalance:  int(result.RemainingBalance),
		UpdatedOrderTotal: amount(result.UpdatedOrderTotal),
		Currency:          stringOrDefault(request.Currency, constants.DefaultCurrency),
		Region:            stringOrDefault(request.Region, constants.DefaultRegion),
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, response)
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	response := &dto.Health{
		Status:    "healthy",
		Timestamp: util.Timestamp(time.Now()),
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, response)
}
