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

// Package store holds the mock checkout service state in memory.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unikorn-cloud/checkout/pkg/constants"

	"k8s.io/apimachinery/pkg/util/rand"
)

//nolint:revive,stylecheck // messages are returned to clients verbatim
var (
	ErrOrderNotFound           = errors.New("Order not found")
	ErrInsufficientPoints      = errors.New("Insufficient loyalty points")
	ErrPointsExceedMaximum     = errors.New("Points exceed maximum allowed percentage")
	ErrExpiredPoints           = errors.New("Cannot use expired loyalty points")
	ErrInsufficientBalance     = errors.New("Insufficient wallet balance")
	ErrBelowMinimumThreshold   = errors.New("Wallet amount below minimum threshold")
	ErrWalletExceedsOrderTotal = errors.New("Wallet amount cannot exceed order total")
	ErrRefundExceedsOrderTotal = errors.New("Refund amount cannot exceed order total")
)

//nolint:gochecknoglobals
var (
	// pointValue is the currency value of a single loyalty point.
	pointValue = decimal.New(1, -1)

	// pointsPerUnit is how many points are worth one unit of currency.
	pointsPerUnit = decimal.NewFromInt(10)
)

const (
	TransactionEarned   = "earned"
	TransactionRedeemed = "redeemed"
	TransactionRefund   = "refund"

	RefundTypeWallet = "wallet"

	RefundStatusProcessed = "processed"

	OrderStatusPending = "pending"
)

// LoyaltyAccount is a user's loyalty points.
type LoyaltyAccount struct {
	UserID             string
	AvailablePoints    int64
	TotalEarned        int64
	TotalRedeemed      int64
	ExpiredPoints      int64
	PointsExpiringSoon int64
	LastUpdated        time.Time
	Currency           string
	Region             string
}

// Wallet is a user's stored credit.
type Wallet struct {
	UserID              string
	AvailableBalance    decimal.Decimal
	TotalDeposited      decimal.Decimal
	TotalSpent          decimal.Decimal
	MinimumThreshold    decimal.Decimal
	LastTransactionDate time.Time
	Currency            string
	Region              string
}

// Transaction is a wallet or loyalty movement.
type Transaction struct {
	ID          string
	UserID      string
	Type        string
	Amount      decimal.Decimal
	Points      int64
	Description string
	Date        time.Time
	Currency    string
}

// Order is a registered order.
type Order struct {
	ID       string
	Total    decimal.Decimal
	Currency string
	Status   string
}

// Refund is a processed refund.
type Refund struct {
	ID          string
	OrderID     string
	Amount      decimal.Decimal
	Reason      string
	Type        string
	Status      string
	ProcessedAt time.Time
	Currency    string
	Region      string
}

// Memory is a mutex guarded in-memory store.  There is a single loyalty
// account and wallet, shared by every authenticated caller.
type Memory struct {
	mu sync.Mutex

	now func() time.Time

	loyalty      LoyaltyAccount
	wallet       Wallet
	transactions []Transaction
	orders       map[string]Order
	refunds      map[string]Refund

	// expiredPoints is seeded into the loyalty account on every reset.
	expiredPoints int64
}

// Option modifies a store at construction time.
type Option func(*Memory)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

// WithExpiredPoints seeds the loyalty account with expired points.
func WithExpiredPoints(points int64) Option {
	return func(m *Memory) {
		m.expiredPoints = points
	}
}

// New returns a seeded store.
func New(options ...Option) *Memory {
	m := &Memory{
		now: time.Now,
	}

	for _, o := range options {
		o(m)
	}

	m.seed()

	return m
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}

	return t
}

func (m *Memory) seed() {
	m.loyalty = LoyaltyAccount{
		UserID:             constants.DefaultUserID,
		AvailablePoints:    1500,
		TotalEarned:        2500,
		TotalRedeemed:      1000,
		ExpiredPoints:      m.expiredPoints,
		PointsExpiringSoon: 200,
		LastUpdated:        mustTime("2024-12-15T10:30:00Z"),
		Currency:           constants.DefaultCurrency,
		Region:             constants.DefaultRegion,
	}

	m.wallet = Wallet{
		UserID:              constants.DefaultUserID,
		AvailableBalance:    decimal.RequireFromString("250.50"),
		TotalDeposited:      decimal.RequireFromString("500.00"),
		TotalSpent:          decimal.RequireFromString("249.50"),
		MinimumThreshold:    decimal.RequireFromString("10.00"),
		LastTransactionDate: mustTime("2024-12-15T09:15:00Z"),
		Currency:            constants.DefaultCurrency,
		Region:              constants.DefaultRegion,
	}

	m.transactions = []Transaction{
		{
			ID:          "txn_001",
			UserID:      constants.DefaultUserID,
			Type:        TransactionEarned,
			Amount:      decimal.RequireFromString("50.00"),
			Points:      100,
			Description: "Points earned from purchase",
			Date:        mustTime("2024-12-15T09:15:00Z"),
			Currency:    constants.DefaultCurrency,
		},
		{
			ID:          "txn_002",
			UserID:      constants.DefaultUserID,
			Type:        TransactionRedeemed,
			Amount:      decimal.RequireFromString("-25.00"),
			Points:      -50,
			Description: "Points redeemed for discount",
			Date:        mustTime("2024-12-14T14:30:00Z"),
			Currency:    constants.DefaultCurrency,
		},
		{
			ID:          "txn_003",
			UserID:      constants.DefaultUserID,
			Type:        TransactionRefund,
			Amount:      decimal.RequireFromString("75.00"),
			Points:      0,
			Description: "Refund to wallet",
			Date:        mustTime("2024-12-13T16:45:00Z"),
			Currency:    constants.DefaultCurrency,
		},
	}

	m.orders = map[string]Order{}
	m.refunds = map[string]Refund{}
}

// Reset restores the seeded state.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seed()
}

func newTransactionID() string {
	return "txn_" + rand.String(12)
}

func newRefundID() string {
	return "refund_" + uuid.NewString()
}

// LoyaltyBalance returns the loyalty account, marking it as read now.
func (m *Memory) LoyaltyBalance() LoyaltyAccount {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loyalty.LastUpdated = m.now()

	return m.loyalty
}

// WalletBalance returns the wallet, marking it as read now.
func (m *Memory) WalletBalance() Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.wallet.LastTransactionDate = m.now()

	return m.wallet
}

// CreateOrder registers or replaces an order.
func (m *Memory) CreateOrder(id string, total decimal.Decimal, currency string) Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := Order{
		ID:       id,
		Total:    total,
		Currency: currency,
		Status:   OrderStatusPending,
	}

	m.orders[id] = order

	return order
}

// Order looks up a registered order.
func (m *Memory) Order(id string) (Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]

	return order, ok
}

// ApplyPointsRequest redeems points against an order.
type ApplyPointsRequest struct {
	OrderID          string
	Points           int64
	OrderTotal       decimal.Decimal
	UseExpiredPoints bool
}

// ApplyPointsResult is the outcome of a redemption.
type ApplyPointsResult struct {
	Points            int64
	Discount          decimal.Decimal
	RemainingBalance  int64
	UpdatedOrderTotal decimal.Decimal
}

// MaxPoints is the most points redeemable against an order total.
func MaxPoints(orderTotal decimal.Decimal) int64 {
	return orderTotal.Mul(pointsPerUnit).Floor().IntPart()
}

// ApplyPoints debits loyalty points, each worth 0.1 units of currency.
func (m *Memory) ApplyPoints(request ApplyPointsRequest) (*ApplyPointsResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[request.OrderID]; !ok {
		return nil, ErrOrderNotFound
	}

	if request.Points > m.loyalty.AvailablePoints {
		return nil, ErrInsufficientPoints
	}

	if request.Points > MaxPoints(request.OrderTotal) {
		return nil, ErrPointsExceedMaximum
	}

	if request.UseExpiredPoints && m.loyalty.ExpiredPoints > 0 {
		return nil, ErrExpiredPoints
	}

	discount := decimal.NewFromInt(request.Points).Mul(pointValue)

	m.loyalty.AvailablePoints -= request.Points
	m.loyalty.TotalRedeemed += request.Points
	m.loyalty.LastUpdated = m.now()

	result := &ApplyPointsResult{
		Points:            request.Points,
		Discount:          discount,
		RemainingBalance:  m.loyalty.AvailablePoints,
		UpdatedOrderTotal: request.OrderTotal.Sub(discount),
	}

	return result, nil
}

// UseWalletRequest pays towards an order from the wallet.
type UseWalletRequest struct {
	OrderID    string
	Amount     decimal.Decimal
	OrderTotal decimal.Decimal
}

// UseWalletResult is the outcome of a wallet payment.
type UseWalletResult struct {
	Amount            decimal.Decimal
	RemainingBalance  decimal.Decimal
	UpdatedOrderTotal decimal.Decimal
	TransactionID     string
}

// UseWallet debits the wallet.
func (m *Memory) UseWallet(request UseWalletRequest) (*UseWalletResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[request.OrderID]; !ok {
		return nil, ErrOrderNotFound
	}

	if request.Amount.GreaterThan(m.wallet.AvailableBalance) {
		return nil, ErrInsufficientBalance
	}

	if request.Amount.LessThan(m.wallet.MinimumThreshold) {
		return nil, ErrBelowMinimumThreshold
	}

	if request.Amount.GreaterThan(request.OrderTotal) {
		return nil, ErrWalletExceedsOrderTotal
	}

	m.wallet.AvailableBalance = m.wallet.AvailableBalance.Sub(request.Amount)
	m.wallet.TotalSpent = m.wallet.TotalSpent.Add(request.Amount)
	m.wallet.LastTransactionDate = m.now()

	result := &UseWalletResult{
		Amount:            request.Amount,
		RemainingBalance:  m.wallet.AvailableBalance,
		UpdatedOrderTotal: request.OrderTotal.Sub(request.Amount),
		TransactionID:     newTransactionID(),
	}

	return result, nil
}

// TransactionFilter narrows a transaction listing, zero values match all.
type TransactionFilter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

func (f TransactionFilter) matches(t *Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}

	if f.StartDate != nil && t.Date.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && t.Date.After(*f.EndDate) {
		return false
	}

	return true
}

// Transactions returns matching transactions, newest first.
func (m *Memory) Transactions(filter TransactionFilter) []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Transaction, 0, len(m.transactions))

	for i := range m.transactions {
		if filter.matches(&m.transactions[i]) {
			out = append(out, m.transactions[i])
		}
	}

	return out
}

// RefundRequest refunds part or all of an order.
type RefundRequest struct {
	UserID   string
	OrderID  string
	Amount   decimal.Decimal
	Reason   string
	Type     string
	Currency string
	Region   string
}

// Refund processes a refund immediately.  Wallet refunds credit the wallet
// and are recorded as a transaction.
func (m *Memory) Refund(request RefundRequest) (*Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[request.OrderID]
	if !ok {
		return nil, ErrOrderNotFound
	}

	if request.Amount.GreaterThan(order.Total) {
		return nil, ErrRefundExceedsOrderTotal
	}

	now := m.now()

	if request.Type == RefundTypeWallet {
		m.wallet.AvailableBalance = m.wallet.AvailableBalance.Add(request.Amount)
		m.wallet.TotalDeposited = m.wallet.TotalDeposited.Add(request.Amount)
		m.wallet.LastTransactionDate = now

		transaction := Transaction{
			ID:          newTransactionID(),
			UserID:      request.UserID,
			Type:        TransactionRefund,
			Amount:      request.Amount,
			Description: request.Reason,
			Date:        now,
			Currency:    request.Currency,
		}

		m.transactions = slices.Insert(m.transactions, 0, transaction)
	}

	refund := Refund{
		ID:          newRefundID(),
		OrderID:     request.OrderID,
		Amount:      request.Amount,
		Reason:      request.Reason,
		Type:        request.Type,
		Status:      RefundStatusProcessed,
		ProcessedAt: now,
		Currency:    request.Currency,
		Region:      request.Region,
	}

	m.refunds[refund.ID] = refund

	return &refund, nil
}

// Refunds returns every processed refund for an order.
func (m *Memory) Refunds(orderID string) []Refund {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Refund

	for _, refund := range m.refunds {
		if refund.OrderID == orderID {
			out = append(out, refund)
		}
	}

	slices.SortFunc(out, func(a, b Refund) int {
		return a.ProcessedAt.Compare(b.ProcessedAt)
	})

	return out
}
