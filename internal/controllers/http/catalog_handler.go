package http

import (
	"net/http"
	"strconv"

	"marketplace-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

func filterFromQuery(c *gin.Context) repository.ProductFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	return repository.ProductFilter{
		Search:   c.Query("search"),
		OrderBy:  c.Query("ordering"),
		Page:     page,
		PageSize: pageSize,
	}
}

func (h *Handler) ListProducts(c *gin.Context) {
	page, err := h.catalog.ListProducts(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	view, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) ProductsByBrand(c *gin.Context) {
	brandID, err := strconv.ParseUint(c.Query("brand_id"), 10, 64)
	if err != nil || brandID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id required"})
		return
	}

	filter := filterFromQuery(c)
	filter.BrandID = brandID
	page, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) ProductsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id required"})
		return
	}

	filter := filterFromQuery(c)
	filter.CategoryID = categoryID
	page, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) ProductsByStore(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Query("store_id"), 10, 64)
	if err != nil || storeID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id required"})
		return
	}

	filter := filterFromQuery(c)
	filter.StoreID = storeID
	page, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) ProductsOnSale(c *gin.Context) {
	page, err := h.catalog.ListOnSale(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.catalog.ListBrands(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.catalog.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *Handler) GetStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store id"})
		return
	}

	store, err := h.catalog.GetStore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}
