package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/infra/rabbitmq"
	"marketplace-backend/internal/pricing"
	"marketplace-backend/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrShippingAddrMissing = errors.New("shipping address required")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

type OrderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	products  repository.ProductRepository
	customers repository.UserRepository
	pricer    *pricing.Evaluator
	publisher rabbitmq.PublisherInterface
	tx        repository.TxManager
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, products repository.ProductRepository, customers repository.UserRepository, pricer *pricing.Evaluator, publisher rabbitmq.PublisherInterface, tx repository.TxManager) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		customers: customers,
		pricer:    pricer,
		publisher: publisher,
		tx:        tx,
	}
}

// PlaceOrder converts the customer's cart into an immutable order. The whole
// checkout runs in one transaction: every line item's paid price is quoted
// and frozen, stock is decremented with a sufficiency guard, and the cart is
// cleared. If any item's stock guard fails the entire checkout rolls back.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID uint64, shippingAddressOverride string) (*domain.Order, error) {
	var order *domain.Order

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		cartItems, err := s.carts.ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrCartEmpty
		}

		shippingAddress := shippingAddressOverride
		if shippingAddress == "" {
			customer, err := s.customers.FindCustomerByID(ctx, customerID)
			if err != nil {
				return err
			}
			if customer != nil {
				shippingAddress = customer.ShippingAddress()
			}
		}
		if shippingAddress == "" {
			return ErrShippingAddrMissing
		}

		now := time.Now()
		total := decimal.Zero
		items := make([]domain.OrderItem, 0, len(cartItems))
		for i := range cartItems {
			ci := &cartItems[i]
			if ci.Product == nil {
				return fmt.Errorf("cart item %d references missing product", ci.ID)
			}

			quote, err := s.pricer.Quote(ctx, ci.Product, now)
			if err != nil {
				return err
			}

			if err := s.products.DecrementStock(ctx, ci.ProductID, ci.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return fmt.Errorf("%w: product %q", ErrInsufficientStock, ci.Product.ProductName)
				}
				return err
			}

			productID := ci.ProductID
			items = append(items, domain.OrderItem{
				ProductID:   &productID,
				ProductName: ci.Product.ProductName,
				Quantity:    ci.Quantity,
				PaidPrice:   quote.EffectivePrice,
				Status:      &domain.OrderStatus{Status: domain.StatusPending},
			})
			total = total.Add(quote.EffectivePrice.Mul(decimal.NewFromInt(int64(ci.Quantity))))
		}

		order = &domain.Order{
			CustomerID:      customerID,
			ShippingAddress: shippingAddress,
			TotalAmount:     total,
			Items:           items,
		}
		if err := s.orders.Create(ctx, order); err != nil {
			return err
		}

		return s.carts.Clear(ctx, customerID)
	})
	if err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, customerID uint64) (*domain.Order, error) {
	order, err := s.orders.FindForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelOrder moves every line item that is not already Cancelled to
// Cancelled and records the reason. Already-cancelled items are skipped, so
// repeating the call is a no-op. Stock is not restored.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, customerID uint64, reason string) error {
	if reason == "" {
		reason = "No reason provided"
	}

	var (
		order     *domain.Order
		cancelled int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.FindForCustomer(ctx, orderID, customerID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		for i := range order.Items {
			status := order.Items[i].Status
			if status == nil || status.Status == domain.StatusCancelled {
				continue
			}
			if err := s.orders.UpdateItemStatus(ctx, status.ID, domain.StatusCancelled); err != nil {
				return err
			}
			if err := s.orders.CreateCancelledItem(ctx, &domain.CancelledItem{
				OrderStatusID: status.ID,
				Reason:        reason,
			}); err != nil {
				return err
			}
			cancelled++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled > 0 {
		go s.publishOrderCancelled(context.Background(), order, reason, cancelled)
	}
	return nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		CreatedAt:   order.OrderDate,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Error().Err(err).Uint64("order_id", order.ID).Msg("failed to publish order.created")
	}
}

func (s *OrderService) publishOrderCancelled(ctx context.Context, order *domain.Order, reason string, cancelled int) {
	evt := domain.OrderCancelledEvent{
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		Reason:         reason,
		CancelledItems: cancelled,
		CancelledAt:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.cancelled", evt); err != nil {
		log.Error().Err(err).Uint64("order_id", order.ID).Msg("failed to publish order.cancelled")
	}
}
