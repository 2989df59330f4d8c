package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	OrderID     uint64          `json:"orderId"`
	CustomerID  uint64          `json:"customerId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	ItemCount   int             `json:"itemCount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderCancelledEvent struct {
	OrderID        uint64    `json:"orderId"`
	CustomerID     uint64    `json:"customerId"`
	Reason         string    `json:"reason"`
	CancelledItems int       `json:"cancelledItems"`
	CancelledAt    time.Time `json:"cancelledAt"`
}
