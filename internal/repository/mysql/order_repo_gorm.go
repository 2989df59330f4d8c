package mysql

import (
	"context"
	"errors"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create persists the whole aggregate in one shot; gorm walks the Items and
// their Status rows through association creation.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	result := dbFrom(ctx, r.db).Create(order)
	if result.Error != nil {
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	var orders []domain.Order
	err := dbFrom(ctx, r.db).
		Where("customer_id = ?", customerID).
		Preload("Items").Preload("Items.Status").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindForCustomer(ctx context.Context, orderID, customerID uint64) (*domain.Order, error) {
	var o domain.Order
	err := dbFrom(ctx, r.db).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		Preload("Items").Preload("Items.Status").
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindItemForCustomer(ctx context.Context, orderItemID, customerID uint64) (*domain.OrderItem, error) {
	var item domain.OrderItem
	err := dbFrom(ctx, r.db).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ? AND orders.customer_id = ?", orderItemID, customerID).
		Preload("Status").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *orderRepo) UpdateItemStatus(ctx context.Context, orderStatusID uint64, status domain.OrderItemStatus) error {
	return dbFrom(ctx, r.db).
		Model(&domain.OrderStatus{}).
		Where("id = ?", orderStatusID).
		Update("status", status).Error
}

func (r *orderRepo) CreateCancelledItem(ctx context.Context, item *domain.CancelledItem) error {
	return dbFrom(ctx, r.db).Create(item).Error
}

// SalesSummary counts distinct orders containing the store's products and
// sums those orders' totals.
func (r *orderRepo) SalesSummary(ctx context.Context, storeID uint64) (*repository.SalesSummary, error) {
	db := dbFrom(ctx, r.db)

	sub := db.
		Table("order_items").
		Select("DISTINCT order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.store_id = ?", storeID)

	var row struct {
		TotalOrders int64
		TotalSales  decimal.NullDecimal
	}
	err := db.
		Table("orders").
		Select("COUNT(*) AS total_orders, SUM(total_amount) AS total_sales").
		Where("id IN (?)", sub).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	summary := &repository.SalesSummary{
		TotalOrders: row.TotalOrders,
		TotalSales:  decimal.Zero,
	}
	if row.TotalSales.Valid {
		summary.TotalSales = row.TotalSales.Decimal
	}
	return summary, nil
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := dbFrom(ctx, r.db).
		Joins("JOIN order_items ON order_items.id = reviews.order_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer_id = ?", customerID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepo) FindByOrderItem(ctx context.Context, orderItemID uint64) (*domain.Review, error) {
	var review domain.Review
	err := dbFrom(ctx, r.db).Where("order_item_id = ?", orderItemID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return dbFrom(ctx, r.db).Create(review).Error
}
