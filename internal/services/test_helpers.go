package services

import (
	"time"

	"marketplace-backend/internal/domain"

	"github.com/shopspring/decimal"
)

func newTestProduct(id uint64, name string, price string, qty int) *domain.Product {
	return &domain.Product{
		ID:           id,
		StoreID:      1,
		ProductName:  name,
		Price:        decimal.RequireFromString(price),
		Quantity:     qty,
		Availability: true,
		CreatedAt:    time.Now(),
	}
}

func newTestPromotion(productID uint64, rate string, status domain.PromotionStatus, start, end time.Time) domain.Promotion {
	return domain.Promotion{
		ID:           1,
		ProductID:    productID,
		DiscountRate: decimal.RequireFromString(rate),
		StartDate:    start,
		EndDate:      end,
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

// activePromotion is live right now.
func activePromotion(productID uint64, rate string) domain.Promotion {
	now := time.Now()
	return newTestPromotion(productID, rate, domain.PromotionActive, now.Add(-time.Hour), now.Add(time.Hour))
}

const (
	testCustomerID = uint64(7)
	testVendorID   = uint64(3)
	testProductID  = uint64(1)
	testOrderID    = uint64(11)
)
