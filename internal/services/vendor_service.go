package services

import (
	"context"
	"errors"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrNegativeQuantity    = errors.New("quantity must not be negative")
	ErrInvalidDiscountRate = errors.New("discount rate must be between 0 and 100")
	ErrInvalidPromoWindow  = errors.New("promotion end date must be after its start date")
)

type CreateProductInput struct {
	ProductName  string
	Description  string
	Price        decimal.Decimal
	Quantity     int
	Availability bool
	IsHidden     bool
	BrandID      *uint64
	CategoryID   *uint64
}

// UpdateProductInput carries only the fields present in the request; nil
// means "leave unchanged".
type UpdateProductInput struct {
	ProductName  *string
	Description  *string
	Price        *decimal.Decimal
	Quantity     *int
	Availability *bool
	IsHidden     *bool
	BrandID      *uint64
	CategoryID   *uint64
}

type StoreSales struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProducts int64           `json:"total_products"`
}

// CreatePromotionInput describes a discount window on one of the vendor's
// own products.
type CreatePromotionInput struct {
	ProductID    uint64
	DiscountRate decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
	Status       domain.PromotionStatus
}

type VendorService struct {
	stores     repository.StoreRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	promotions repository.PromotionRepository
}

func NewVendorService(stores repository.StoreRepository, products repository.ProductRepository, orders repository.OrderRepository, promotions repository.PromotionRepository) *VendorService {
	return &VendorService{
		stores:     stores,
		products:   products,
		orders:     orders,
		promotions: promotions,
	}
}

// MyStore returns the vendor's one store.
func (s *VendorService) MyStore(ctx context.Context, vendorID uint64) (*domain.Store, error) {
	store, err := s.stores.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// MyProducts lists everything in the vendor's store, hidden products
// included, optionally narrowed by a free-text search.
func (s *VendorService) MyProducts(ctx context.Context, vendorID uint64, search string) ([]domain.Product, error) {
	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return s.products.ListByStore(ctx, store.ID, search)
}

func (s *VendorService) CreateProduct(ctx context.Context, vendorID uint64, in CreateProductInput) (*domain.Product, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		StoreID:      store.ID,
		ProductName:  in.ProductName,
		Description:  in.Description,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Availability: in.Availability,
		IsHidden:     in.IsHidden,
		BrandID:      in.BrandID,
		CategoryID:   in.CategoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update to a product the vendor owns.
func (s *VendorService) UpdateProduct(ctx context.Context, vendorID, productID uint64, in UpdateProductInput) (*domain.Product, error) {
	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByIDInStore(ctx, productID, store.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		product.Quantity = *in.Quantity
	}
	if in.Availability != nil {
		product.Availability = *in.Availability
	}
	if in.IsHidden != nil {
		product.IsHidden = *in.IsHidden
	}
	if in.BrandID != nil {
		product.BrandID = in.BrandID
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product the vendor owns. Order item snapshots
// survive: their product reference goes null but name and paid price stay.
func (s *VendorService) DeleteProduct(ctx context.Context, vendorID, productID uint64) (*domain.Product, error) {
	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByIDInStore(ctx, productID, store.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.products.Delete(ctx, product.ID); err != nil {
		return nil, err
	}
	return product, nil
}

// CreatePromotion attaches a discount window to a product the vendor owns.
// Whether the promotion actually applies at any instant is the evaluator's
// call; this only records it.
func (s *VendorService) CreatePromotion(ctx context.Context, vendorID uint64, in CreatePromotionInput) (*domain.Promotion, error) {
	hundred := decimal.NewFromInt(100)
	if in.DiscountRate.IsNegative() || in.DiscountRate.GreaterThan(hundred) {
		return nil, ErrInvalidDiscountRate
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, ErrInvalidPromoWindow
	}

	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByIDInStore(ctx, in.ProductID, store.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	status := in.Status
	if status == "" {
		status = domain.PromotionActive
	}
	promotion := &domain.Promotion{
		ProductID:    in.ProductID,
		DiscountRate: in.DiscountRate,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       status,
	}
	if err := s.promotions.Create(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *VendorService) SalesSummary(ctx context.Context, vendorID uint64) (*StoreSales, error) {
	store, err := s.MyStore(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	summary, err := s.orders.SalesSummary(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.CountByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	return &StoreSales{
		TotalOrders:   summary.TotalOrders,
		TotalSales:    summary.TotalSales,
		TotalProducts: productCount,
	}, nil
}
