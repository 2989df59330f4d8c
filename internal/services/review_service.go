package services

import (
	"context"
	"errors"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/repository"
)

var (
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrReviewExists      = errors.New("review already exists for this item")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		orders:  orders,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context, customerID uint64) ([]domain.Review, error) {
	return s.reviews.ListByCustomer(ctx, customerID)
}

// CreateReview accepts one review per purchased line item. The line item
// must belong to one of the customer's own orders.
func (s *ReviewService) CreateReview(ctx context.Context, customerID, orderItemID uint64, comment string, rating int) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	item, err := s.orders.FindItemForCustomer(ctx, orderItemID, customerID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrOrderItemNotFound
	}

	existing, err := s.reviews.FindByOrderItem(ctx, orderItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := &domain.Review{
		OrderItemID: orderItemID,
		Comment:     comment,
		Rating:      rating,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
