package http

import (
	"net/http"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, token, err := h.auth.RegisterCustomer(c.Request.Context(), services.RegisterCustomerInput{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		PhoneNo:          req.PhoneNo,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		ShippingAddress3: req.ShippingAddress3,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Customer registered successfully",
		"token":     token.Key,
		"user":      customer,
		"user_type": domain.RoleCustomer,
	})
}

func (h *Handler) RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, store, token, err := h.auth.RegisterVendor(c.Request.Context(), services.RegisterVendorInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		PhoneNo:   req.PhoneNo,
		StoreName: req.StoreName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Vendor registered successfully",
		"token":     token.Key,
		"user":      vendor,
		"store":     store,
		"user_type": domain.RoleVendor,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"token":     token.Key,
		"user_type": session.Role,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	key := c.GetString(tokenKeyKey)
	if err := h.auth.Logout(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) Me(c *gin.Context) {
	session := sessionFrom(c)

	switch session.Role {
	case domain.RoleCustomer:
		customer, err := h.auth.CustomerProfile(c.Request.Context(), session)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": customer, "user_type": domain.RoleCustomer})
	case domain.RoleVendor:
		vendor, err := h.auth.VendorProfile(c.Request.Context(), session)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": vendor, "user_type": domain.RoleVendor})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown user type"})
	}
}
