package mysql

import (
	"context"
	"errors"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *domain.User) error {
	return dbFrom(ctx, r.db).Create(user).Error
}

func (r *userRepo) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := dbFrom(ctx, r.db).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return dbFrom(ctx, r.db).Create(customer).Error
}

func (r *userRepo) CreateVendor(ctx context.Context, vendor *domain.Vendor) error {
	return dbFrom(ctx, r.db).Create(vendor).Error
}

func (r *userRepo) FindCustomerByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := dbFrom(ctx, r.db).Preload("User").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *userRepo) FindVendorByID(ctx context.Context, id uint64) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := dbFrom(ctx, r.db).Preload("User").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *userRepo) FindCustomerByUserID(ctx context.Context, userID uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *userRepo) FindVendorByUserID(ctx context.Context, userID uint64) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, token *domain.AuthToken) error {
	return dbFrom(ctx, r.db).Create(token).Error
}

func (r *tokenRepo) FindByKey(ctx context.Context, key string) (*domain.AuthToken, error) {
	var t domain.AuthToken
	if err := dbFrom(ctx, r.db).Where("`key` = ?", key).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) FindByUser(ctx context.Context, userID uint64) (*domain.AuthToken, error) {
	var t domain.AuthToken
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) DeleteByKey(ctx context.Context, key string) error {
	return dbFrom(ctx, r.db).Where("`key` = ?", key).Delete(&domain.AuthToken{}).Error
}
