package mysql

import (
	"context"
	"errors"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type promotionRepo struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepo{db: db}
}

func (r *promotionRepo) FindByProduct(ctx context.Context, productID uint64) ([]domain.Promotion, error) {
	var promos []domain.Promotion
	err := dbFrom(ctx, r.db).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&promos).Error
	return promos, err
}

func (r *promotionRepo) Create(ctx context.Context, promotion *domain.Promotion) error {
	return dbFrom(ctx, r.db).Create(promotion).Error
}

type brandRepo struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	err := dbFrom(ctx, r.db).Order("brand_name ASC").Find(&brands).Error
	return brands, err
}

func (r *brandRepo) FindByID(ctx context.Context, id uint64) (*domain.Brand, error) {
	var b domain.Brand
	if err := dbFrom(ctx, r.db).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := dbFrom(ctx, r.db).Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := dbFrom(ctx, r.db).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) List(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	err := dbFrom(ctx, r.db).Preload("Photos").Order("store_name ASC").Find(&stores).Error
	return stores, err
}

func (r *storeRepo) FindByID(ctx context.Context, id uint64) (*domain.Store, error) {
	var s domain.Store
	if err := dbFrom(ctx, r.db).Preload("Photos").First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) FindByVendor(ctx context.Context, vendorID uint64) (*domain.Store, error) {
	var s domain.Store
	if err := dbFrom(ctx, r.db).Preload("Photos").Where("vendor_id = ?", vendorID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) Create(ctx context.Context, store *domain.Store) error {
	return dbFrom(ctx, r.db).Create(store).Error
}
