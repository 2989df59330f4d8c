package repository

import (
	"context"

	"marketplace-backend/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	CreateVendor(ctx context.Context, vendor *domain.Vendor) error
	FindCustomerByID(ctx context.Context, id uint64) (*domain.Customer, error)
	FindVendorByID(ctx context.Context, id uint64) (*domain.Vendor, error)
	FindCustomerByUserID(ctx context.Context, userID uint64) (*domain.Customer, error)
	FindVendorByUserID(ctx context.Context, userID uint64) (*domain.Vendor, error)
}

type TokenRepository interface {
	Create(ctx context.Context, token *domain.AuthToken) error
	FindByKey(ctx context.Context, key string) (*domain.AuthToken, error)
	FindByUser(ctx context.Context, userID uint64) (*domain.AuthToken, error)
	DeleteByKey(ctx context.Context, key string) error
}
