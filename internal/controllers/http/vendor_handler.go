package http

import (
	"fmt"
	"net/http"
	"strconv"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) MyStore(c *gin.Context) {
	session := sessionFrom(c)
	store, err := h.vendor.MyStore(c.Request.Context(), session.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *Handler) MyProducts(c *gin.Context) {
	session := sessionFrom(c)
	products, err := h.vendor.MyProducts(c.Request.Context(), session.ProfileID, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	session := sessionFrom(c)
	product, err := h.vendor.CreateProduct(c.Request.Context(), session.ProfileID, services.CreateProductInput{
		ProductName:  req.ProductName,
		Description:  req.Description,
		Price:        req.Price,
		Quantity:     req.Quantity,
		Availability: availability,
		IsHidden:     req.IsHidden,
		BrandID:      req.BrandID,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	product, err := h.vendor.UpdateProduct(c.Request.Context(), session.ProfileID, req.ProductID, services.UpdateProductInput{
		ProductName:  req.ProductName,
		Description:  req.Description,
		Price:        req.Price,
		Quantity:     req.Quantity,
		Availability: req.Availability,
		IsHidden:     req.IsHidden,
		BrandID:      req.BrandID,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.catalog.InvalidateProduct(c.Request.Context(), product.ID)
	c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Query("productID"), 10, 64)
	if err != nil || productID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productID is required"})
		return
	}

	session := sessionFrom(c)
	product, err := h.vendor.DeleteProduct(c.Request.Context(), session.ProfileID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.catalog.InvalidateProduct(c.Request.Context(), product.ID)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Product %q deleted successfully", product.ProductName)})
}

func (h *Handler) CreatePromotion(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	promotion, err := h.vendor.CreatePromotion(c.Request.Context(), session.ProfileID, services.CreatePromotionInput{
		ProductID:    req.ProductID,
		DiscountRate: req.DiscountRate,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       domain.PromotionStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.catalog.InvalidateProduct(c.Request.Context(), req.ProductID)
	c.JSON(http.StatusCreated, promotion)
}

func (h *Handler) SalesSummary(c *gin.Context) {
	session := sessionFrom(c)
	summary, err := h.vendor.SalesSummary(c.Request.Context(), session.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
