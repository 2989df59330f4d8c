package mysql

import (
	"context"
	"errors"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) visible(ctx context.Context) *gorm.DB {
	return dbFrom(ctx, r.db).
		Model(&domain.Product{}).
		Where("is_hidden = ? AND availability = ?", false, true)
}

func applyFilter(q *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.BrandID != 0 {
		q = q.Where("products.brand_id = ?", filter.BrandID)
	}
	if filter.CategoryID != 0 {
		q = q.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.StoreID != 0 {
		q = q.Where("products.store_id = ?", filter.StoreID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN brands ON brands.id = products.brand_id").
			Where("products.product_name LIKE ? OR products.description LIKE ? OR brands.brand_name LIKE ?",
				like, like, like)
	}
	switch filter.OrderBy {
	case "price":
		q = q.Order("products.price ASC")
	case "-price":
		q = q.Order("products.price DESC")
	default:
		q = q.Order("products.created_at DESC")
	}
	return q
}

func paginate(q *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.PageSize <= 0 {
		return q
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	return q.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
}

func (r *productRepo) ListVisible(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int64, error) {
	q := applyFilter(r.visible(ctx), filter)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := paginate(q, filter).
		Preload("Brand").Preload("Category").Preload("Media").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) ListOnSale(ctx context.Context, filter repository.ProductFilter, now time.Time) ([]domain.Product, int64, error) {
	q := applyFilter(r.visible(ctx), filter).
		Joins("JOIN promotions ON promotions.product_id = products.id").
		Where("promotions.status = ? AND promotions.start_date <= ? AND promotions.end_date >= ?",
			domain.PromotionActive, now, now).
		Distinct("products.*")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := paginate(q, filter).
		Preload("Brand").Preload("Category").Preload("Media").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	err := dbFrom(ctx, r.db).
		Preload("Brand").Preload("Category").Preload("Media").Preload("Store").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDInStore(ctx context.Context, id, storeID uint64) (*domain.Product, error) {
	var p domain.Product
	err := dbFrom(ctx, r.db).
		Where("id = ? AND store_id = ?", id, storeID).
		Preload("Brand").Preload("Category").Preload("Media").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListByStore(ctx context.Context, storeID uint64, search string) ([]domain.Product, error) {
	q := dbFrom(ctx, r.db).
		Model(&domain.Product{}).
		Where("products.store_id = ?", storeID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Joins("LEFT JOIN brands ON brands.id = products.brand_id").
			Joins("LEFT JOIN categories ON categories.id = products.category_id").
			Where("products.product_name LIKE ? OR products.description LIKE ? OR brands.brand_name LIKE ? OR categories.category_name LIKE ?",
				like, like, like, like)
	}

	var products []domain.Product
	err := q.Order("products.created_at DESC").
		Preload("Brand").Preload("Category").Preload("Media").
		Find(&products).Error
	return products, err
}

func (r *productRepo) CountByStore(ctx context.Context, storeID uint64) (int64, error) {
	var total int64
	err := dbFrom(ctx, r.db).
		Model(&domain.Product{}).
		Where("store_id = ?", storeID).
		Count(&total).Error
	return total, err
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	return dbFrom(ctx, r.db).Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint64) error {
	return dbFrom(ctx, r.db).Delete(&domain.Product{}, id).Error
}

// DecrementStock is a single conditional update so concurrent checkouts can
// never drive stock negative. Zero rows affected means not enough stock (or
// no such product), and the caller's transaction rolls back.
func (r *productRepo) DecrementStock(ctx context.Context, id uint64, quantity int) error {
	res := dbFrom(ctx, r.db).
		Model(&domain.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}
	return nil
}
