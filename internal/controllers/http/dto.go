package http

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterCustomerRequest struct {
	Username         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	PhoneNo          string `json:"phoneNo" binding:"required"`
	ShippingAddress1 string `json:"shippingAddress1" binding:"required"`
	ShippingAddress2 string `json:"shippingAddress2"`
	ShippingAddress3 string `json:"shippingAddress3"`
}

type RegisterVendorRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	PhoneNo   string `json:"phoneNo" binding:"required"`
	StoreName string `json:"storeName" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID uint64 `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type AddToWishlistRequest struct {
	ProductID uint64 `json:"productID" binding:"required"`
}

type CreateReviewRequest struct {
	OrderItemID uint64 `json:"orderItemID" binding:"required"`
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
}

type CreateProductRequest struct {
	ProductName  string          `json:"productName" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Quantity     int             `json:"quantity"`
	Availability *bool           `json:"availability"`
	IsHidden     bool            `json:"isHidden"`
	BrandID      *uint64         `json:"brandID"`
	CategoryID   *uint64         `json:"categoryID"`
}

type CreatePromotionRequest struct {
	ProductID    uint64          `json:"productID" binding:"required"`
	DiscountRate decimal.Decimal `json:"discountRate" binding:"required"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	EndDate      time.Time       `json:"endDate" binding:"required"`
	Status       string          `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type UpdateProductRequest struct {
	ProductID    uint64           `json:"productID" binding:"required"`
	ProductName  *string          `json:"productName"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Quantity     *int             `json:"quantity"`
	Availability *bool            `json:"availability"`
	IsHidden     *bool            `json:"isHidden"`
	BrandID      *uint64          `json:"brandID"`
	CategoryID   *uint64          `json:"categoryID"`
}
