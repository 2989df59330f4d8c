package mysql

import (
	"marketplace-backend/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func New(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every persisted entity.
// Referenced tables come first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Vendor{},
		&domain.AuthToken{},
		&domain.Store{},
		&domain.StorePhoto{},
		&domain.Brand{},
		&domain.Category{},
		&domain.Product{},
		&domain.ProductMedia{},
		&domain.Promotion{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderStatus{},
		&domain.CancelledItem{},
		&domain.WishlistItem{},
		&domain.Review{},
	)
}
