package services

import (
	"context"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/pricing"
	"marketplace-backend/internal/repository"
)

type WishlistService struct {
	wishlists repository.WishlistRepository
	products  repository.ProductRepository
	pricer    *pricing.Evaluator
}

func NewWishlistService(wishlists repository.WishlistRepository, products repository.ProductRepository, pricer *pricing.Evaluator) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		products:  products,
		pricer:    pricer,
	}
}

func (s *WishlistService) GetWishlist(ctx context.Context, customerID uint64) ([]domain.WishlistItem, error) {
	return s.wishlists.ListByCustomer(ctx, customerID)
}

// AddItem snapshots the product's pricing as of now. Re-adding the same
// product overwrites the previous snapshot instead of duplicating the row.
func (s *WishlistService) AddItem(ctx context.Context, customerID, productID uint64) (*domain.WishlistItem, bool, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	quote, err := s.pricer.Quote(ctx, product, time.Now())
	if err != nil {
		return nil, false, err
	}

	item := &domain.WishlistItem{
		CustomerID:           customerID,
		ProductID:            productID,
		OriginalPriceAtAdded: quote.OriginalPrice,
		DiscountRateAtAdded:  quote.DiscountRate,
		PriceAtAdded:         quote.EffectivePrice,
	}
	created, err := s.wishlists.Upsert(ctx, item)
	if err != nil {
		return nil, false, err
	}
	item.Product = product
	return item, created, nil
}

func (s *WishlistService) RemoveItem(ctx context.Context, customerID, productID uint64) error {
	return s.wishlists.Remove(ctx, customerID, productID)
}
