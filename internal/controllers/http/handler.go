package http

import (
	"errors"
	"net/http"

	"marketplace-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth     *services.AuthService
	catalog  *services.CatalogService
	cart     *services.CartService
	orders   *services.OrderService
	wishlist *services.WishlistService
	reviews  *services.ReviewService
	vendor   *services.VendorService
}

func NewHandler(auth *services.AuthService, catalog *services.CatalogService, cart *services.CartService, orders *services.OrderService, wishlist *services.WishlistService, reviews *services.ReviewService, vendor *services.VendorService) *Handler {
	return &Handler{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		wishlist: wishlist,
		reviews:  reviews,
		vendor:   vendor,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/register/customer", h.RegisterCustomer)
	r.POST("/auth/register/vendor", h.RegisterVendor)
	r.POST("/auth/login", h.Login)

	authed := r.Group("/", h.AuthRequired())
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)

	r.GET("/products", h.ListProducts)
	r.GET("/products/by_brand", h.ProductsByBrand)
	r.GET("/products/by_category", h.ProductsByCategory)
	r.GET("/products/by_store", h.ProductsByStore)
	r.GET("/products/on_sale", h.ProductsOnSale)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/brands", h.ListBrands)
	r.GET("/categories", h.ListCategories)
	r.GET("/stores", h.ListStores)
	r.GET("/stores/:id", h.GetStore)

	customer := r.Group("/", h.AuthRequired(), h.RoleRequired("customer"))
	customer.GET("/cart", h.GetCart)
	customer.POST("/cart", h.AddToCart)
	customer.DELETE("/cart/remove_item", h.RemoveCartItem)
	customer.DELETE("/cart/clear_cart", h.ClearCart)
	customer.GET("/orders", h.ListOrders)
	customer.POST("/orders", h.PlaceOrder)
	customer.GET("/orders/:id", h.GetOrder)
	customer.POST("/orders/:id/cancel_order", h.CancelOrder)
	customer.GET("/wishlist", h.GetWishlist)
	customer.POST("/wishlist", h.AddToWishlist)
	customer.DELETE("/wishlist/remove_item", h.RemoveWishlistItem)
	customer.GET("/reviews", h.ListReviews)
	customer.POST("/reviews", h.CreateReview)

	vendor := r.Group("/vendor", h.AuthRequired(), h.RoleRequired("vendor"))
	vendor.GET("/my_store", h.MyStore)
	vendor.GET("/my_products", h.MyProducts)
	vendor.POST("/create_product", h.CreateProduct)
	vendor.POST("/create_promotion", h.CreatePromotion)
	vendor.PUT("/update_product", h.UpdateProduct)
	vendor.DELETE("/delete_product", h.DeleteProduct)
	vendor.GET("/sales_summary", h.SalesSummary)
}

// respondError maps service sentinel errors onto HTTP status codes. Unknown
// errors become 500s without leaking internals.
func respondError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		code = http.StatusUnauthorized
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrBrandNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOrderItemNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrShippingAddrMissing),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrNoProfile),
		errors.Is(err, services.ErrReviewExists),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrNegativeQuantity),
		errors.Is(err, services.ErrInvalidDiscountRate),
		errors.Is(err, services.ErrInvalidPromoWindow):
		code = http.StatusBadRequest
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
