package repository

import (
	"context"

	"marketplace-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates a store's sales across all orders containing at
// least one of its products.
type SalesSummary struct {
	TotalOrders int64
	TotalSales  decimal.Decimal
}

type OrderRepository interface {
	// Create persists the order aggregate: the order row, its items, and
	// their status rows.
	Create(ctx context.Context, order *domain.Order) error
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error)
	FindForCustomer(ctx context.Context, orderID, customerID uint64) (*domain.Order, error)
	FindItemForCustomer(ctx context.Context, orderItemID, customerID uint64) (*domain.OrderItem, error)
	UpdateItemStatus(ctx context.Context, orderStatusID uint64, status domain.OrderItemStatus) error
	CreateCancelledItem(ctx context.Context, item *domain.CancelledItem) error
	SalesSummary(ctx context.Context, storeID uint64) (*SalesSummary, error)
}

type ReviewRepository interface {
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Review, error)
	FindByOrderItem(ctx context.Context, orderItemID uint64) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
}
