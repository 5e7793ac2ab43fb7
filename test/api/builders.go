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

// ApplyPointsPayloadBuilder builds loyalty point redemption payloads.
type ApplyPointsPayloadBuilder struct {
	payload map[string]interface{}
}

// NewApplyPointsPayload starts from the default redemption of 100 points
// against order_12345.
func NewApplyPointsPayload() *ApplyPointsPayloadBuilder {
	return &ApplyPointsPayloadBuilder{
		payload: LoadPayload("ApplyPointsRequest.json"),
	}
}

func (b *ApplyPointsPayloadBuilder) WithUserID(userID string) *ApplyPointsPayloadBuilder {
	b.payload["userId"] = userID
	return b
}

func (b *ApplyPointsPayloadBuilder) WithOrderID(orderID string) *ApplyPointsPayloadBuilder {
	b.payload["orderId"] = orderID
	return b
}

func (b *ApplyPointsPayloadBuilder) WithPointsToUse(points int) *ApplyPointsPayloadBuilder {
	b.payload["pointsToUse"] = points
	return b
}

func (b *ApplyPointsPayloadBuilder) WithOrderTotal(total float64) *ApplyPointsPayloadBuilder {
	b.payload["orderTotal"] = total
	return b
}

func (b *ApplyPointsPayloadBuilder) WithUseExpiredPoints(use bool) *ApplyPointsPayloadBuilder {
	b.payload["useExpiredPoints"] = use
	return b
}

// Without removes a field, e.g. to provoke a validation error.
func (b *ApplyPointsPayloadBuilder) Without(field string) *ApplyPointsPayloadBuilder {
	delete(b.payload, field)
	return b
}

func (b *ApplyPointsPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// UseWalletPayloadBuilder builds wallet payment payloads.
type UseWalletPayloadBuilder struct {
	payload map[string]interface{}
}

// NewUseWalletPayload starts from the default payment of 50.00 towards
// order_12345.
func NewUseWalletPayload() *UseWalletPayloadBuilder {
	return &UseWalletPayloadBuilder{
		payload: LoadPayload("UseWalletRequest.json"),
	}
}

func (b *UseWalletPayloadBuilder) WithOrderID(orderID string) *UseWalletPayloadBuilder {
	b.payload["orderId"] = orderID
	return b
}

func (b *UseWalletPayloadBuilder) WithWalletAmount(amount float64) *UseWalletPayloadBuilder {
	b.payload["walletAmount"] = amount
	return b
}

func (b *UseWalletPayloadBuilder) WithOrderTotal(total float64) *UseWalletPayloadBuilder {
	b.payload["orderTotal"] = total
	return b
}

// Without removes a field, e.g. to provoke a validation error.
func (b *UseWalletPayloadBuilder) Without(field string) *UseWalletPayloadBuilder {
	delete(b.payload, field)
	return b
}

func (b *UseWalletPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// RefundPayloadBuilder builds refund payloads.
type RefundPayloadBuilder struct {
	payload map[string]interface{}
}

// NewRefundPayload starts from the default wallet refund of 75.50 against
// order_12345.
func NewRefundPayload() *RefundPayloadBuilder {
	return &RefundPayloadBuilder{
		payload: LoadPayload("RefundTriggerRequest.json"),
	}
}

func (b *RefundPayloadBuilder) WithOrderID(orderID string) *RefundPayloadBuilder {
	b.payload["orderId"] = orderID
	return b
}

func (b *RefundPayloadBuilder) WithRefundAmount(amount float64) *RefundPayloadBuilder {
	b.payload["refundAmount"] = amount
	return b
}

func (b *RefundPayloadBuilder) WithRefundType(refundType string) *RefundPayloadBuilder {
	b.payload["refundType"] = refundType
	return b
}

// Without removes a field, e.g. to provoke a validation error.
func (b *RefundPayloadBuilder) Without(field string) *RefundPayloadBuilder {
	delete(b.payload, field)
	return b
}

func (b *RefundPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// OrderPayloadBuilder builds order registration payloads.
type OrderPayloadBuilder struct {
	payload map[string]interface{}
}

// NewOrderPayload starts from order_12345 totalling 299.00.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		payload: LoadPayload("CreateOrderRequest.json"),
	}
}

func (b *OrderPayloadBuilder) WithOrderID(orderID string) *OrderPayloadBuilder {
	b.payload["orderId"] = orderID
	return b
}

func (b *OrderPayloadBuilder) WithTotal(total float64) *OrderPayloadBuilder {
	b.payload["total"] = total
	return b
}

func (b *OrderPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}
