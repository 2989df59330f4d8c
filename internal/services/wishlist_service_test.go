package services

import (
	"context"
	"testing"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/mocks"
	"marketplace-backend/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWishlistService() (*WishlistService, *mocks.MockWishlistRepository, *mocks.MockProductRepository, *mocks.MockPromotionRepository) {
	wishlists := new(mocks.MockWishlistRepository)
	products := new(mocks.MockProductRepository)
	promotions := new(mocks.MockPromotionRepository)
	svc := NewWishlistService(wishlists, products, pricing.NewEvaluator(promotions))
	return svc, wishlists, products, promotions
}

func TestWishlistService_AddItem(t *testing.T) {
	t.Run("snapshots the price at add time", func(t *testing.T) {
		svc, wishlists, products, promotions := newWishlistService()

		products.On("FindByID", mock.Anything, testProductID).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)
		promotions.On("FindByProduct", mock.Anything, testProductID).
			Return([]domain.Promotion{activePromotion(testProductID, "25")}, nil)
		wishlists.On("Upsert", mock.Anything, mock.MatchedBy(func(item *domain.WishlistItem) bool {
			return item.OriginalPriceAtAdded.Equal(decimal.RequireFromString("100.00")) &&
				item.DiscountRateAtAdded.Equal(decimal.RequireFromString("25")) &&
				item.PriceAtAdded.Equal(decimal.RequireFromString("75"))
		})).Return(true, nil)

		item, created, err := svc.AddItem(context.Background(), testCustomerID, testProductID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotNil(t, item.Product)

		wishlists.AssertExpectations(t)
	})

	t.Run("undiscounted product snapshots a zero rate", func(t *testing.T) {
		svc, wishlists, products, promotions := newWishlistService()

		products.On("FindByID", mock.Anything, testProductID).
			Return(newTestProduct(testProductID, "Silk Scarf", "19.99", 5), nil)
		promotions.On("FindByProduct", mock.Anything, testProductID).Return([]domain.Promotion{}, nil)
		wishlists.On("Upsert", mock.Anything, mock.MatchedBy(func(item *domain.WishlistItem) bool {
			return item.DiscountRateAtAdded.IsZero() &&
				item.PriceAtAdded.Equal(decimal.RequireFromString("19.99"))
		})).Return(true, nil)

		_, _, err := svc.AddItem(context.Background(), testCustomerID, testProductID)
		require.NoError(t, err)
		wishlists.AssertExpectations(t)
	})

	t.Run("re-adding overwrites the earlier snapshot", func(t *testing.T) {
		svc, wishlists, products, promotions := newWishlistService()

		products.On("FindByID", mock.Anything, testProductID).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)
		promotions.On("FindByProduct", mock.Anything, testProductID).Return([]domain.Promotion{}, nil)
		wishlists.On("Upsert", mock.Anything, mock.Anything).Return(false, nil)

		_, created, err := svc.AddItem(context.Background(), testCustomerID, testProductID)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, wishlists, products, _ := newWishlistService()

		products.On("FindByID", mock.Anything, testProductID).Return(nil, nil)

		_, _, err := svc.AddItem(context.Background(), testCustomerID, testProductID)
		assert.ErrorIs(t, err, ErrProductNotFound)
		wishlists.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestWishlistService_GetWishlist(t *testing.T) {
	svc, wishlists, _, _ := newWishlistService()

	saved := []domain.WishlistItem{
		{CustomerID: testCustomerID, ProductID: 1, PriceAtAdded: decimal.RequireFromString("75")},
	}
	wishlists.On("ListByCustomer", mock.Anything, testCustomerID).Return(saved, nil)

	items, err := svc.GetWishlist(context.Background(), testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, saved, items)
}
