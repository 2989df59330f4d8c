package mysql

import (
	"context"
	"errors"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := dbFrom(ctx, r.db).
		Where("customer_id = ?", customerID).
		Preload("Product").
		Order("added_at ASC").
		Find(&items).Error
	return items, err
}

func (r *cartRepo) Upsert(ctx context.Context, item *domain.CartItem) (bool, error) {
	db := dbFrom(ctx, r.db)

	var existing domain.CartItem
	err := db.Where("customer_id = ? AND product_id = ?", item.CustomerID, item.ProductID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, db.Create(item).Error
		}
		return false, err
	}

	existing.Quantity = item.Quantity
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*item = existing
	return false, nil
}

func (r *cartRepo) Remove(ctx context.Context, customerID, productID uint64) error {
	return dbFrom(ctx, r.db).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&domain.CartItem{}).Error
}

func (r *cartRepo) Clear(ctx context.Context, customerID uint64) error {
	return dbFrom(ctx, r.db).
		Where("customer_id = ?", customerID).
		Delete(&domain.CartItem{}).Error
}

type wishlistRepo struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	err := dbFrom(ctx, r.db).
		Where("customer_id = ?", customerID).
		Preload("Product").
		Order("added_at DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepo) Upsert(ctx context.Context, item *domain.WishlistItem) (bool, error) {
	db := dbFrom(ctx, r.db)

	var existing domain.WishlistItem
	err := db.Where("customer_id = ? AND product_id = ?", item.CustomerID, item.ProductID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, db.Create(item).Error
		}
		return false, err
	}

	existing.OriginalPriceAtAdded = item.OriginalPriceAtAdded
	existing.DiscountRateAtAdded = item.DiscountRateAtAdded
	existing.PriceAtAdded = item.PriceAtAdded
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*item = existing
	return false, nil
}

func (r *wishlistRepo) Remove(ctx context.Context, customerID, productID uint64) error {
	return dbFrom(ctx, r.db).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&domain.WishlistItem{}).Error
}
