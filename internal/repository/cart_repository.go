package repository

import (
	"context"

	"marketplace-backend/internal/domain"
)

type CartRepository interface {
	// ListByCustomer returns cart items with their products preloaded.
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.CartItem, error)
	// Upsert sets the quantity for the (customer, product) pair, creating the
	// row if absent. Returns true when a new row was created.
	Upsert(ctx context.Context, item *domain.CartItem) (bool, error)
	Remove(ctx context.Context, customerID, productID uint64) error
	Clear(ctx context.Context, customerID uint64) error
}

type WishlistRepository interface {
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.WishlistItem, error)
	// Upsert overwrites the price snapshot for an existing (customer, product)
	// pair. Returns true when a new row was created.
	Upsert(ctx context.Context, item *domain.WishlistItem) (bool, error)
	Remove(ctx context.Context, customerID, productID uint64) error
}
