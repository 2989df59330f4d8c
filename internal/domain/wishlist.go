package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WishlistItem snapshots a product's pricing at the moment it was added.
// The stored prices are never recomputed; re-adding the same product
// overwrites the snapshot.
type WishlistItem struct {
	ID                   uint64          `json:"wishlistItemID" gorm:"primaryKey;autoIncrement"`
	CustomerID           uint64          `json:"customerID" gorm:"uniqueIndex:idx_wishlist_customer_product;not null"`
	ProductID            uint64          `json:"productID" gorm:"uniqueIndex:idx_wishlist_customer_product;not null"`
	Product              *Product        `json:"product,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	OriginalPriceAtAdded decimal.Decimal `json:"originalPriceAtAdded" gorm:"type:decimal(10,2);not null"`
	DiscountRateAtAdded  decimal.Decimal `json:"discountRateAtAdded" gorm:"type:decimal(5,2);not null"`
	PriceAtAdded         decimal.Decimal `json:"priceAtAdded" gorm:"type:decimal(10,2);not null"`
	IsNotified           bool            `json:"isNotified" gorm:"default:false"`
	AddedAt              time.Time       `json:"addedDate" gorm:"autoCreateTime"`
}
