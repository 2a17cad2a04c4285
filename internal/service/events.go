package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemEvent struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderCreatedEvent struct {
	OrderID    uuid.UUID        `json:"order_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Items      []OrderItemEvent `json:"items"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	CreatedAt  time.Time        `json:"created_at"`
}

type OrderPaidEvent struct {
	OrderID         uuid.UUID       `json:"order_id"`
	PaymentID       uuid.UUID       `json:"payment_id"`
	CryptoAmount    decimal.Decimal `json:"crypto_amount"`
	CryptoCurrency  string          `json:"crypto_currency"`
	TransactionHash string          `json:"transaction_hash"`
	PaidAt          time.Time       `json:"paid_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderPaid(ctx context.Context, e OrderPaidEvent) error
}
