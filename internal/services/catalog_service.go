package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/pricing"
	"marketplace-backend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrStoreNotFound    = errors.New("store not found")
)

const productCacheTTL = time.Minute

// ProductView is a product decorated with its current effective price.
type ProductView struct {
	domain.Product
	EffectivePrice decimal.Decimal `json:"effectivePrice"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	OnSale         bool            `json:"onSale"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items    []ProductView `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type CatalogService struct {
	products    repository.ProductRepository
	brands      repository.BrandRepository
	categories  repository.CategoryRepository
	stores      repository.StoreRepository
	pricer      *pricing.Evaluator
	redisClient *redis.Client
}

func NewCatalogService(products repository.ProductRepository, brands repository.BrandRepository, categories repository.CategoryRepository, stores repository.StoreRepository, pricer *pricing.Evaluator) *CatalogService {
	return &CatalogService{
		products:   products,
		brands:     brands,
		categories: categories,
		stores:     stores,
		pricer:     pricer,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*ProductPage, error) {
	products, total, err := s.products.ListVisible(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.buildPage(ctx, products, total, filter)
}

// ListOnSale lists products with a promotion live right now. The repository
// query matches the status flag and the window, so pages and Total cover the
// whole on-sale set; the evaluator then prices each hit.
func (s *CatalogService) ListOnSale(ctx context.Context, filter repository.ProductFilter) (*ProductPage, error) {
	now := time.Now()
	products, total, err := s.products.ListOnSale(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		quote, err := s.pricer.Quote(ctx, &products[i], now)
		if err != nil {
			return nil, err
		}
		views = append(views, ProductView{
			Product:        products[i],
			EffectivePrice: quote.EffectivePrice,
			DiscountRate:   quote.DiscountRate,
			OnSale:         quote.OnSale,
		})
	}
	return &ProductPage{
		Items:    views,
		Total:    total,
		Page:     pageOrDefault(filter.Page),
		PageSize: filter.PageSize,
	}, nil
}

// GetProduct reads through the redis cache. Cached entries carry the price
// quoted at cache time; the short TTL bounds the staleness.
func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*ProductView, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var view ProductView
			if json.Unmarshal([]byte(cached), &view) == nil {
				return &view, nil
			}
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsHidden || !product.Availability {
		return nil, ErrProductNotFound
	}

	quote, err := s.pricer.Quote(ctx, product, time.Now())
	if err != nil {
		return nil, err
	}
	view := &ProductView{
		Product:        *product,
		EffectivePrice: quote.EffectivePrice,
		DiscountRate:   quote.DiscountRate,
		OnSale:         quote.OnSale,
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(view); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return view, nil
}

// InvalidateProduct drops the cached detail view after a vendor edit.
func (s *CatalogService) InvalidateProduct(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, fmt.Sprintf("product:%d", id)).Err(); err != nil {
		log.Warn().Err(err).Uint64("product_id", id).Msg("failed to invalidate product cache")
	}
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.stores.List(ctx)
}

func (s *CatalogService) GetStore(ctx context.Context, id uint64) (*domain.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

func (s *CatalogService) buildPage(ctx context.Context, products []domain.Product, total int64, filter repository.ProductFilter) (*ProductPage, error) {
	now := time.Now()
	views := make([]ProductView, 0, len(products))
	for i := range products {
		quote, err := s.pricer.Quote(ctx, &products[i], now)
		if err != nil {
			return nil, err
		}
		views = append(views, ProductView{
			Product:        products[i],
			EffectivePrice: quote.EffectivePrice,
			DiscountRate:   quote.DiscountRate,
			OnSale:         quote.OnSale,
		})
	}
	return &ProductPage{
		Items:    views,
		Total:    total,
		Page:     pageOrDefault(filter.Page),
		PageSize: filter.PageSize,
	}, nil
}

func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
