package pricing

import (
	"context"
	"time"

	"marketplace-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// PromotionSource yields a product's promotions newest-first.
type PromotionSource interface {
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Promotion, error)
}

// Quote is the result of evaluating a product's price at an instant.
// DiscountRate is zero when no promotion applies.
type Quote struct {
	OriginalPrice  decimal.Decimal
	DiscountRate   decimal.Decimal
	EffectivePrice decimal.Decimal
	OnSale         bool
}

// Evaluator is the single place that decides whether a promotion applies and
// what the effective price is. Every price shown or snapshotted anywhere in
// the system goes through Quote.
type Evaluator struct {
	promotions PromotionSource
}

func NewEvaluator(promotions PromotionSource) *Evaluator {
	return &Evaluator{promotions: promotions}
}

// Quote picks the first promotion flagged Active (newest first) and applies
// it only if now falls inside its window. Effective prices round half-up to
// two decimal places.
func (e *Evaluator) Quote(ctx context.Context, product *domain.Product, now time.Time) (Quote, error) {
	promos, err := e.promotions.FindByProduct(ctx, product.ID)
	if err != nil {
		return Quote{}, err
	}

	if promo := firstActive(promos); promo != nil && promo.ActiveAt(now) {
		return Quote{
			OriginalPrice:  product.Price,
			DiscountRate:   promo.DiscountRate,
			EffectivePrice: Apply(product.Price, promo.DiscountRate),
			OnSale:         true,
		}, nil
	}

	return Quote{
		OriginalPrice:  product.Price,
		DiscountRate:   decimal.Zero,
		EffectivePrice: product.Price.Round(2),
	}, nil
}

// Apply computes price * (1 - rate/100) rounded to two decimal places.
func Apply(price, rate decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(rate.Div(decimal.NewFromInt(100)))
	return price.Mul(factor).Round(2)
}

func firstActive(promos []domain.Promotion) *domain.Promotion {
	for i := range promos {
		if promos[i].Status == domain.PromotionActive {
			return &promos[i]
		}
	}
	return nil
}
