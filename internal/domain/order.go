package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItemStatus string

const (
	StatusPending   OrderItemStatus = "Pending"
	StatusHolding   OrderItemStatus = "Holding"
	StatusShipped   OrderItemStatus = "Shipped"
	StatusCancelled OrderItemStatus = "Cancelled"
)

// Order is created once at checkout and never mutated afterwards apart from
// its line item statuses. The shipping address and all item prices are
// snapshots taken at order time.
type Order struct {
	ID              uint64          `json:"orderID" gorm:"primaryKey;autoIncrement"`
	CustomerID      uint64          `json:"customerID" gorm:"index;not null"`
	ShippingAddress string          `json:"shippingAddress" gorm:"type:text;not null"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OrderDate       time.Time       `json:"orderDate" gorm:"autoCreateTime;index"`
}

// OrderItem freezes the product name and paid (post-discount) price at the
// moment of checkout. ProductID goes null if the product is later deleted;
// the snapshot fields survive.
type OrderItem struct {
	ID          uint64          `json:"orderItemID" gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `json:"orderID" gorm:"index;not null"`
	ProductID   *uint64         `json:"productID" gorm:"index"`
	Product     *Product        `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	ProductName string          `json:"productName" gorm:"size:200;not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	PaidPrice   decimal.Decimal `json:"paidPrice" gorm:"type:decimal(10,2);not null"`
	Status      *OrderStatus    `json:"status,omitempty" gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// Subtotal is paid price times quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PaidPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderStatus struct {
	ID          uint64          `json:"orderStatusID" gorm:"primaryKey;autoIncrement"`
	OrderItemID uint64          `json:"orderItemID" gorm:"uniqueIndex;not null"`
	Status      OrderItemStatus `json:"status" gorm:"type:enum('Pending','Holding','Shipped','Cancelled');default:'Pending'"`
	UpdatedAt   time.Time       `json:"updatedDate" gorm:"autoUpdateTime"`
}

// CancelledItem records the free-text reason given when a line item was
// cancelled. At most one per order status row.
type CancelledItem struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderStatusID uint64    `json:"orderStatusID" gorm:"uniqueIndex;not null"`
	Reason        string    `json:"reason" gorm:"type:text;not null"`
	CancelledAt   time.Time `json:"cancelledDate" gorm:"autoCreateTime"`
}
