package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Store struct {
	ID          uint64       `json:"storeID" gorm:"primaryKey;autoIncrement"`
	VendorID    uint64       `json:"vendorID" gorm:"uniqueIndex:idx_vendor_store_name;not null"`
	StoreName   string       `json:"storeName" gorm:"size:100;uniqueIndex:idx_vendor_store_name;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Photos      []StorePhoto `json:"photos" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `json:"createdTime" gorm:"autoCreateTime"`
}

type StorePhoto struct {
	ID          uint64    `json:"storePhotoID" gorm:"primaryKey;autoIncrement"`
	StoreID     uint64    `json:"storeID" gorm:"index;not null"`
	PhotoURL    string    `json:"photoURL" gorm:"size:500;not null"`
	SortedOrder int       `json:"sortedOrder" gorm:"default:0"`
	IsPrimary   bool      `json:"isPrimary" gorm:"default:false"`
	UploadedAt  time.Time `json:"uploadedTime" gorm:"autoCreateTime"`
}

type Category struct {
	ID           uint64 `json:"categoryID" gorm:"primaryKey;autoIncrement"`
	CategoryName string `json:"categoryName" gorm:"size:100;uniqueIndex;not null"`
	Description  string `json:"description" gorm:"type:text"`
}

type Brand struct {
	ID          uint64 `json:"brandID" gorm:"primaryKey;autoIncrement"`
	BrandName   string `json:"brandName" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	LogoURL     string `json:"logoURL,omitempty" gorm:"size:500"`
}

type Product struct {
	ID           uint64          `json:"productID" gorm:"primaryKey;autoIncrement"`
	StoreID      uint64          `json:"storeID" gorm:"index;not null"`
	Store        *Store          `json:"store,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	ProductName  string          `json:"productName" gorm:"size:200;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity     int             `json:"quantity" gorm:"not null;default:0"`
	Availability bool            `json:"availability" gorm:"default:true"`
	IsHidden     bool            `json:"isHidden" gorm:"default:false"`
	BrandID      *uint64         `json:"brandID" gorm:"index"`
	Brand        *Brand          `json:"brand,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CategoryID   *uint64         `json:"categoryID" gorm:"index"`
	Category     *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	Media        []ProductMedia  `json:"media" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `json:"createdTime" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time       `json:"updatedTime" gorm:"autoUpdateTime"`
}

func (p *Product) InStock() bool {
	return p.Availability && p.Quantity > 0
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type ProductMedia struct {
	ID           uint64    `json:"productMediaID" gorm:"primaryKey;autoIncrement"`
	ProductID    uint64    `json:"productID" gorm:"index;not null"`
	MediaURL     string    `json:"mediaURL" gorm:"size:500;not null"`
	MediaType    MediaType `json:"mediaType" gorm:"type:enum('image','video');default:'image'"`
	MediaContent string    `json:"mediaContent" gorm:"type:text"`
	IsPrimary    bool      `json:"isPrimary" gorm:"default:false"`
	SortedOrder  int       `json:"sortedOrder" gorm:"default:0"`
}
