package domain

import "time"

// CartItem is a mutable (customer, product) pair. It exists only until
// checkout or explicit removal.
type CartItem struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64    `json:"customerID" gorm:"uniqueIndex:idx_cart_customer_product;not null"`
	ProductID  uint64    `json:"productID" gorm:"uniqueIndex:idx_cart_customer_product;not null"`
	Product    *Product  `json:"product,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	AddedAt    time.Time `json:"addedTime" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedTime" gorm:"autoUpdateTime"`
}
