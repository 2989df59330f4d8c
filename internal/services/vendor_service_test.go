package services

import (
	"context"
	"testing"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/mocks"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceMocks struct {
	stores     *mocks.MockStoreRepository
	products   *mocks.MockProductRepository
	orders     *mocks.MockOrderRepository
	promotions *mocks.MockPromotionRepository
}

func newVendorService() (*VendorService, *mocks.MockStoreRepository, *mocks.MockProductRepository, *mocks.MockOrderRepository) {
	svc, m := newVendorServiceFull()
	return svc, m.stores, m.products, m.orders
}

func newVendorServiceFull() (*VendorService, *vendorServiceMocks) {
	m := &vendorServiceMocks{
		stores:     new(mocks.MockStoreRepository),
		products:   new(mocks.MockProductRepository),
		orders:     new(mocks.MockOrderRepository),
		promotions: new(mocks.MockPromotionRepository),
	}
	return NewVendorService(m.stores, m.products, m.orders, m.promotions), m
}

func vendorStore() *domain.Store {
	return &domain.Store{ID: 9, VendorID: testVendorID, StoreName: "Bob's Boutique"}
}

func TestVendorService_CreateProduct(t *testing.T) {
	t.Run("creates inside the vendor's store", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.StoreID == 9 && p.ProductName == "Wool Coat" && p.Quantity == 10
		})).Return(nil)

		product, err := svc.CreateProduct(context.Background(), testVendorID, CreateProductInput{
			ProductName:  "Wool Coat",
			Price:        decimal.RequireFromString("100.00"),
			Quantity:     10,
			Availability: true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(9), product.StoreID)

		products.AssertExpectations(t)
	})

	t.Run("negative price", func(t *testing.T) {
		svc, stores, _, _ := newVendorService()

		_, err := svc.CreateProduct(context.Background(), testVendorID, CreateProductInput{
			ProductName: "Wool Coat",
			Price:       decimal.RequireFromString("-1"),
		})
		assert.ErrorIs(t, err, ErrNegativePrice)
		stores.AssertNotCalled(t, "FindByVendor", mock.Anything, mock.Anything)
	})

	t.Run("negative quantity", func(t *testing.T) {
		svc, stores, _, _ := newVendorService()

		_, err := svc.CreateProduct(context.Background(), testVendorID, CreateProductInput{
			ProductName: "Wool Coat",
			Price:       decimal.RequireFromString("10"),
			Quantity:    -1,
		})
		assert.ErrorIs(t, err, ErrNegativeQuantity)
		stores.AssertNotCalled(t, "FindByVendor", mock.Anything, mock.Anything)
	})

	t.Run("vendor without a store", func(t *testing.T) {
		svc, stores, _, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(nil, nil)

		_, err := svc.CreateProduct(context.Background(), testVendorID, CreateProductInput{
			ProductName: "Wool Coat",
			Price:       decimal.RequireFromString("10"),
		})
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestVendorService_UpdateProduct(t *testing.T) {
	t.Run("partial update leaves unset fields alone", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)
		products.On("Update", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

		newPrice := decimal.RequireFromString("120.00")
		hidden := true
		product, err := svc.UpdateProduct(context.Background(), testVendorID, testProductID, UpdateProductInput{
			Price:    &newPrice,
			IsHidden: &hidden,
		})
		require.NoError(t, err)

		assert.True(t, product.Price.Equal(newPrice))
		assert.True(t, product.IsHidden)
		assert.Equal(t, "Wool Coat", product.ProductName, "name untouched")
		assert.Equal(t, 10, product.Quantity, "quantity untouched")
	})

	t.Run("cannot touch another store's product", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).Return(nil, nil)

		name := "Hijacked"
		_, err := svc.UpdateProduct(context.Background(), testVendorID, testProductID, UpdateProductInput{
			ProductName: &name,
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("negative price update", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)

		bad := decimal.RequireFromString("-0.01")
		_, err := svc.UpdateProduct(context.Background(), testVendorID, testProductID, UpdateProductInput{
			Price: &bad,
		})
		assert.ErrorIs(t, err, ErrNegativePrice)
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("negative quantity update", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)

		bad := -3
		_, err := svc.UpdateProduct(context.Background(), testVendorID, testProductID, UpdateProductInput{
			Quantity: &bad,
		})
		assert.ErrorIs(t, err, ErrNegativeQuantity)
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestVendorService_DeleteProduct(t *testing.T) {
	t.Run("deletes an owned product", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)
		products.On("Delete", mock.Anything, testProductID).Return(nil)

		product, err := svc.DeleteProduct(context.Background(), testVendorID, testProductID)
		require.NoError(t, err)
		assert.Equal(t, "Wool Coat", product.ProductName)

		products.AssertExpectations(t)
	})

	t.Run("foreign product is not found", func(t *testing.T) {
		svc, stores, products, _ := newVendorService()

		stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).Return(nil, nil)

		_, err := svc.DeleteProduct(context.Background(), testVendorID, testProductID)
		assert.ErrorIs(t, err, ErrProductNotFound)
		products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestVendorService_CreatePromotion(t *testing.T) {
	window := func() (time.Time, time.Time) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		return start, start.Add(7 * 24 * time.Hour)
	}

	t.Run("creates an active promotion on an owned product", func(t *testing.T) {
		svc, m := newVendorServiceFull()

		start, end := window()
		m.stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		m.products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).
			Return(newTestProduct(testProductID, "Wool Coat", "100.00", 10), nil)
		m.promotions.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Promotion) bool {
			return p.ProductID == testProductID &&
				p.Status == domain.PromotionActive &&
				p.DiscountRate.Equal(decimal.RequireFromString("25"))
		})).Return(nil)

		promotion, err := svc.CreatePromotion(context.Background(), testVendorID, CreatePromotionInput{
			ProductID:    testProductID,
			DiscountRate: decimal.RequireFromString("25"),
			StartDate:    start,
			EndDate:      end,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PromotionActive, promotion.Status, "status defaults to Active")

		m.promotions.AssertExpectations(t)
	})

	t.Run("rate outside 0-100", func(t *testing.T) {
		svc, m := newVendorServiceFull()

		start, end := window()
		for _, rate := range []string{"-1", "100.01"} {
			_, err := svc.CreatePromotion(context.Background(), testVendorID, CreatePromotionInput{
				ProductID:    testProductID,
				DiscountRate: decimal.RequireFromString(rate),
				StartDate:    start,
				EndDate:      end,
			})
			assert.ErrorIs(t, err, ErrInvalidDiscountRate, "rate %s", rate)
		}
		m.promotions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("inverted window", func(t *testing.T) {
		svc, _ := newVendorServiceFull()

		start, end := window()
		_, err := svc.CreatePromotion(context.Background(), testVendorID, CreatePromotionInput{
			ProductID:    testProductID,
			DiscountRate: decimal.RequireFromString("10"),
			StartDate:    end,
			EndDate:      start,
		})
		assert.ErrorIs(t, err, ErrInvalidPromoWindow)
	})

	t.Run("cannot discount another store's product", func(t *testing.T) {
		svc, m := newVendorServiceFull()

		start, end := window()
		m.stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
		m.products.On("FindByIDInStore", mock.Anything, testProductID, uint64(9)).Return(nil, nil)

		_, err := svc.CreatePromotion(context.Background(), testVendorID, CreatePromotionInput{
			ProductID:    testProductID,
			DiscountRate: decimal.RequireFromString("10"),
			StartDate:    start,
			EndDate:      end,
		})
		assert.ErrorIs(t, err, ErrProductNotFound)
		m.promotions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVendorService_SalesSummary(t *testing.T) {
	svc, stores, products, orders := newVendorService()

	stores.On("FindByVendor", mock.Anything, testVendorID).Return(vendorStore(), nil)
	orders.On("SalesSummary", mock.Anything, uint64(9)).Return(&repository.SalesSummary{
		TotalOrders: 4,
		TotalSales:  decimal.RequireFromString("512.40"),
	}, nil)
	products.On("CountByStore", mock.Anything, uint64(9)).Return(int64(17), nil)

	sales, err := svc.SalesSummary(context.Background(), testVendorID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sales.TotalOrders)
	assert.True(t, sales.TotalSales.Equal(decimal.RequireFromString("512.40")))
	assert.Equal(t, int64(17), sales.TotalProducts)
}
