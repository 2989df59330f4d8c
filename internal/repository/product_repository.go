package repository

import (
	"context"
	"time"

	"marketplace-backend/internal/domain"
)

// ProductFilter narrows a visible-product listing. Zero values mean "no
// constraint". Page numbering starts at 1.
type ProductFilter struct {
	BrandID    uint64
	CategoryID uint64
	StoreID    uint64
	Search     string
	OrderBy    string // "price", "-price", default newest first
	Page       int
	PageSize   int
}

type ProductRepository interface {
	// ListVisible returns non-hidden, available products plus the total count
	// before pagination.
	ListVisible(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error)
	// ListOnSale returns visible products carrying at least one promotion
	// flagged Active whose window contains now, plus the total count before
	// pagination. Which promotion applies is still the evaluator's call.
	ListOnSale(ctx context.Context, filter ProductFilter, now time.Time) ([]domain.Product, int64, error)
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	FindByIDInStore(ctx context.Context, id, storeID uint64) (*domain.Product, error)
	ListByStore(ctx context.Context, storeID uint64, search string) ([]domain.Product, error)
	CountByStore(ctx context.Context, storeID uint64) (int64, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
	// DecrementStock subtracts quantity from stock only if enough remains;
	// returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uint64, quantity int) error
}

type PromotionRepository interface {
	// FindByProduct returns the product's promotions newest-created first.
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Promotion, error)
	Create(ctx context.Context, promotion *domain.Promotion) error
}

type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	FindByID(ctx context.Context, id uint64) (*domain.Brand, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id uint64) (*domain.Category, error)
}

type StoreRepository interface {
	List(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id uint64) (*domain.Store, error)
	FindByVendor(ctx context.Context, vendorID uint64) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) error
}
