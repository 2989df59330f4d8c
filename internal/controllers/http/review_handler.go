package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListReviews(c *gin.Context) {
	session := sessionFrom(c)
	reviews, err := h.reviews.ListReviews(c.Request.Context(), session.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating == 0 {
		req.Rating = 5
	}

	session := sessionFrom(c)
	review, err := h.reviews.CreateReview(c.Request.Context(), session.ProfileID, req.OrderItemID, req.Comment, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
