package services

import (
	"context"
	"errors"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/pricing"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartLine pairs a cart item with its current effective-price subtotal.
// Cart prices float with promotions until checkout freezes them.
type CartLine struct {
	domain.CartItem
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartSummary struct {
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	pricer   *pricing.Evaluator
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, pricer *pricing.Evaluator) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		pricer:   pricer,
	}
}

func (s *CartService) GetCart(ctx context.Context, customerID uint64) (*CartSummary, error) {
	items, err := s.carts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &CartSummary{
		Items:     make([]CartLine, 0, len(items)),
		Total:     decimal.Zero,
		ItemCount: len(items),
	}
	for i := range items {
		line := CartLine{CartItem: items[i]}
		if items[i].Product != nil {
			quote, err := s.pricer.Quote(ctx, items[i].Product, now)
			if err != nil {
				return nil, err
			}
			line.UnitPrice = quote.EffectivePrice
			line.Subtotal = quote.EffectivePrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		}
		summary.Total = summary.Total.Add(line.Subtotal)
		summary.Items = append(summary.Items, line)
	}
	return summary, nil
}

// AddItem upserts the (customer, product) pair: adding an already-carted
// product replaces its quantity. Returns true when a row was created.
func (s *CartService) AddItem(ctx context.Context, customerID, productID uint64, quantity int) (*domain.CartItem, bool, error) {
	if quantity < 1 {
		return nil, false, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	item := &domain.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	created, err := s.carts.Upsert(ctx, item)
	if err != nil {
		return nil, false, err
	}
	item.Product = product
	return item, created, nil
}

func (s *CartService) RemoveItem(ctx context.Context, customerID, productID uint64) error {
	return s.carts.Remove(ctx, customerID, productID)
}

func (s *CartService) ClearCart(ctx context.Context, customerID uint64) error {
	return s.carts.Clear(ctx, customerID)
}
