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

// Package dto defines the request and response records exchanged with the
// checkout API.  Records are flat and populated from JSON, optional fields
// are pointers.
package dto

// Envelope wraps every response body.
type Envelope[T any] struct {
	Success   bool    `json:"success"`
	Data      *T      `json:"data"`
	Message   *string `json:"message"`
	Timestamp string  `json:"timestamp"`
}

// LoyaltyBalance is a user's loyalty point account.
type LoyaltyBalance struct {
	UserID             string `json:"userId"`
	AvailablePoints    int    `json:"availablePoints"`
	TotalEarned        int    `json:"totalEarned"`
	TotalRedeemed      int    `json:"totalRedeemed"`
	ExpiredPoints      int    `json:"expiredPoints"`
	LastUpdated        string `json:"lastUpdated"`
	PointsExpiringSoon int    `json:"pointsExpiringSoon"`
	Currency           string `json:"currency"`
	Region             string `json:"region"`
}

// ApplyPointsRequest redeems loyalty points against an order.
type ApplyPointsRequest struct {
	UserID           string  `json:"userId,omitempty"`
	OrderID          string  `json:"orderId,omitempty"`
	PointsToUse      int     `json:"pointsToUse,omitempty"`
	OrderTotal       float64 `json:"orderTotal,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	Region           string  `json:"region,omitempty"`
	UseExpiredPoints *bool   `json:"useExpiredPoints,omitempty"`
}

// ApplyPointsResult is the outcome of a point redemption.
type ApplyPointsResult struct {
	OrderID           string  `json:"orderId"`
	PointsApplied     int     `json:"pointsApplied"`
	DiscountAmount    float64 `json:"discountAmount"`
	RemainingBalance  int     `json:"remainingBalance"`
	UpdatedOrderTotal float64 `json:"updatedOrderTotal"`
	Currency          string  `json:"currency"`
	Region            string  `json:"region"`
}

// WalletBalance is a user's stored credit.
type WalletBalance struct {
	UserID              string  `json:"userId"`
	AvailableBalance    float64 `json:"availableBalance"`
	TotalDeposited      float64 `json:"totalDeposited"`
	TotalSpent          float64 `json:"totalSpent"`
	LastTransactionDate string  `json:"lastTransactionDate"`
	Currency            string  `json:"currency"`
	Region              string  `json:"region"`
	MinimumThreshold    float64 `json:"minimumThreshold"`
}

// UseWalletRequest pays part of an order from the wallet.
type UseWalletRequest struct {
	UserID       string  `json:"userId,omitempty"`
	OrderID      string  `json:"orderId,omitempty"`
	WalletAmount float64 `json:"walletAmount,omitempty"`
	OrderTotal   float64 `json:"orderTotal,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Region       string  `json:"region,omitempty"`
	PaymentType  string  `json:"paymentType,omitempty"`
}

// UseWalletResult is the outcome of a wallet payment.
type UseWalletResult struct {
	OrderID           string  `json:"orderId"`
	WalletAmountUsed  float64 `json:"walletAmountUsed"`
	RemainingBalance  float64 `json:"remainingBalance"`
	UpdatedOrderTotal float64 `json:"updatedOrderTotal"`
	Currency          string  `json:"currency"`
	TransactionID     string  `json:"transactionId"`
	PaymentType       string  `json:"paymentType"`
}

// TransactionType classifies wallet and loyalty movements.
type TransactionType string

const (
	TransactionEarned   TransactionType = "earned"
	TransactionRedeemed TransactionType = "redeemed"
	TransactionRefund   TransactionType = "refund"
)

// Transaction is a single wallet or loyalty movement.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	UserID        string          `json:"userId"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Points        int             `json:"points"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	Currency      string          `json:"currency"`
}

// Pagination describes a page of a filtered collection.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// WalletTransactions is a page of a user's transaction history.
type WalletTransactions struct {
	UserID       string        `json:"userId"`
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
	Currency     string        `json:"currency"`
}

// RefundType selects where refunded money is credited.
type RefundType string

const (
	RefundTypeWallet   RefundType = "wallet"
	RefundTypeOriginal RefundType = "original"
)

// RefundTriggerRequest requests a refund against an order.
type RefundTriggerRequest struct {
	UserID       string     `json:"userId,omitempty"`
	OrderID      string     `json:"orderId,omitempty"`
	RefundAmount float64    `json:"refundAmount,omitempty"`
	RefundReason string     `json:"refundReason,omitempty"`
	RefundType   RefundType `json:"refundType,omitempty"`
	Currency     string     `json:"currency,omitempty"`
	Region       string     `json:"region,omitempty"`
}

// RefundTriggerResult is a processed refund.
type RefundTriggerResult struct {
	RefundID     string     `json:"refundId"`
	OrderID      string     `json:"orderId"`
	RefundAmount float64    `json:"refundAmount"`
	RefundType   RefundType `json:"refundType"`
	Status       string     `json:"status"`
	Currency     string     `json:"currency"`
	ProcessedAt  string     `json:"processedAt"`
}

// CreateOrderRequest registers an order that checkout operations refer to.
type CreateOrderRequest struct {
	OrderID  string  `json:"orderId"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency,omitempty"`
}

// Order is a registered order.
type Order struct {
	OrderID  string  `json:"orderId"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Health is the service liveness report.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
