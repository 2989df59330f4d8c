package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-backend/internal/domain"
	"marketplace-backend/internal/mocks"
	"marketplace-backend/internal/pricing"
	"marketplace-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orders     *mocks.MockOrderRepository
	carts      *mocks.MockCartRepository
	products   *mocks.MockProductRepository
	users      *mocks.MockUserRepository
	promotions *mocks.MockPromotionRepository
	publisher  *mocks.MockPublisher
}

func newOrderService() (*OrderService, *orderServiceMocks) {
	m := &orderServiceMocks{
		orders:     new(mocks.MockOrderRepository),
		carts:      new(mocks.MockCartRepository),
		products:   new(mocks.MockProductRepository),
		users:      new(mocks.MockUserRepository),
		promotions: new(mocks.MockPromotionRepository),
		publisher:  new(mocks.MockPublisher),
	}
	pricer := pricing.NewEvaluator(m.promotions)
	svc := NewOrderService(m.orders, m.carts, m.products, m.users, pricer, m.publisher, mocks.PassthroughTx())
	return svc, m
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("successful checkout snapshots prices and clears the cart", func(t *testing.T) {
		svc, m := newOrderService()

		discounted := newTestProduct(1, "Wool Coat", "100.00", 10)
		plain := newTestProduct(2, "Silk Scarf", "19.99", 5)

		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{
			{CustomerID: testCustomerID, ProductID: 1, Product: discounted, Quantity: 2},
			{CustomerID: testCustomerID, ProductID: 2, Product: plain, Quantity: 1},
		}, nil)
		m.promotions.On("FindByProduct", mock.Anything, uint64(1)).
			Return([]domain.Promotion{activePromotion(1, "25")}, nil)
		m.promotions.On("FindByProduct", mock.Anything, uint64(2)).
			Return([]domain.Promotion{}, nil)
		m.products.On("DecrementStock", mock.Anything, uint64(1), 2).Return(nil)
		m.products.On("DecrementStock", mock.Anything, uint64(2), 1).Return(nil)
		m.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Order).ID = testOrderID
			})
		m.carts.On("Clear", mock.Anything, testCustomerID).Return(nil)
		m.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "12 Savile Row, London")
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.Equal(t, testOrderID, order.ID)
		assert.Equal(t, "12 Savile Row, London", order.ShippingAddress)
		require.Len(t, order.Items, 2)

		// 100.00 with 25% off -> 75.00 each, times 2; 19.99 undiscounted.
		assert.True(t, order.Items[0].PaidPrice.Equal(decimal.RequireFromString("75")),
			"paid price = %s", order.Items[0].PaidPrice)
		assert.True(t, order.Items[1].PaidPrice.Equal(decimal.RequireFromString("19.99")))
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("169.99")),
			"total = %s", order.TotalAmount)

		for _, item := range order.Items {
			require.NotNil(t, item.Status)
			assert.Equal(t, domain.StatusPending, item.Status.Status)
		}
		assert.Equal(t, "Wool Coat", order.Items[0].ProductName)

		time.Sleep(100 * time.Millisecond)
		m.carts.AssertExpectations(t)
		m.products.AssertExpectations(t)
		m.orders.AssertExpectations(t)
	})

	t.Run("falls back to customer default shipping address", func(t *testing.T) {
		svc, m := newOrderService()

		product := newTestProduct(1, "Wool Coat", "50.00", 3)
		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{
			{CustomerID: testCustomerID, ProductID: 1, Product: product, Quantity: 1},
		}, nil)
		m.users.On("FindCustomerByID", mock.Anything, testCustomerID).Return(&domain.Customer{
			ID:               testCustomerID,
			ShippingAddress1: "1 Home Street",
		}, nil)
		m.promotions.On("FindByProduct", mock.Anything, uint64(1)).Return([]domain.Promotion{}, nil)
		m.products.On("DecrementStock", mock.Anything, uint64(1), 1).Return(nil)
		m.orders.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
		m.carts.On("Clear", mock.Anything, testCustomerID).Return(nil)
		m.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "")
		require.NoError(t, err)
		assert.Equal(t, "1 Home Street", order.ShippingAddress)

		time.Sleep(100 * time.Millisecond)
	})

	t.Run("empty cart is rejected without creating an order", func(t *testing.T) {
		svc, m := newOrderService()

		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{}, nil)

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "somewhere")
		assert.ErrorIs(t, err, ErrCartEmpty)
		assert.Nil(t, order)
		m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing shipping address is rejected", func(t *testing.T) {
		svc, m := newOrderService()

		product := newTestProduct(1, "Wool Coat", "50.00", 3)
		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{
			{CustomerID: testCustomerID, ProductID: 1, Product: product, Quantity: 1},
		}, nil)
		m.users.On("FindCustomerByID", mock.Anything, testCustomerID).Return(&domain.Customer{ID: testCustomerID}, nil)

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "")
		assert.ErrorIs(t, err, ErrShippingAddrMissing)
		assert.Nil(t, order)
	})

	t.Run("insufficient stock rolls back the whole checkout", func(t *testing.T) {
		svc, m := newOrderService()

		product := newTestProduct(1, "Wool Coat", "50.00", 1)
		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{
			{CustomerID: testCustomerID, ProductID: 1, Product: product, Quantity: 2},
		}, nil)
		m.promotions.On("FindByProduct", mock.Anything, uint64(1)).Return([]domain.Promotion{}, nil)
		m.products.On("DecrementStock", mock.Anything, uint64(1), 2).
			Return(repository.ErrInsufficientStock)

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "somewhere")
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Contains(t, err.Error(), "Wool Coat")
		assert.Nil(t, order)

		m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
		m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository failure surfaces to the caller", func(t *testing.T) {
		svc, m := newOrderService()

		product := newTestProduct(1, "Wool Coat", "50.00", 3)
		m.carts.On("ListByCustomer", mock.Anything, testCustomerID).Return([]domain.CartItem{
			{CustomerID: testCustomerID, ProductID: 1, Product: product, Quantity: 1},
		}, nil)
		m.promotions.On("FindByProduct", mock.Anything, uint64(1)).Return([]domain.Promotion{}, nil)
		m.products.On("DecrementStock", mock.Anything, uint64(1), 1).Return(nil)
		m.orders.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))

		order, err := svc.PlaceOrder(context.Background(), testCustomerID, "somewhere")
		assert.EqualError(t, err, "database error")
		assert.Nil(t, order)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	pendingStatus := func(id uint64) *domain.OrderStatus {
		return &domain.OrderStatus{ID: id, Status: domain.StatusPending}
	}
	cancelledStatus := func(id uint64) *domain.OrderStatus {
		return &domain.OrderStatus{ID: id, Status: domain.StatusCancelled}
	}

	t.Run("cancels every non-cancelled item once", func(t *testing.T) {
		svc, m := newOrderService()

		order := &domain.Order{
			ID:         testOrderID,
			CustomerID: testCustomerID,
			Items: []domain.OrderItem{
				{ID: 1, ProductName: "Wool Coat", Status: pendingStatus(101)},
				{ID: 2, ProductName: "Silk Scarf", Status: cancelledStatus(102)},
				{ID: 3, ProductName: "Leather Belt", Status: pendingStatus(103)},
			},
		}
		m.orders.On("FindForCustomer", mock.Anything, testOrderID, testCustomerID).Return(order, nil)
		m.orders.On("UpdateItemStatus", mock.Anything, uint64(101), domain.StatusCancelled).Return(nil)
		m.orders.On("UpdateItemStatus", mock.Anything, uint64(103), domain.StatusCancelled).Return(nil)
		m.orders.On("CreateCancelledItem", mock.Anything, mock.MatchedBy(func(item *domain.CancelledItem) bool {
			return item.Reason == "changed my mind"
		})).Return(nil).Twice()
		m.publisher.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

		err := svc.CancelOrder(context.Background(), testOrderID, testCustomerID, "changed my mind")
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)
		m.orders.AssertExpectations(t)
		m.orders.AssertNotCalled(t, "UpdateItemStatus", mock.Anything, uint64(102), mock.Anything)
	})

	t.Run("fully cancelled order is a no-op", func(t *testing.T) {
		svc, m := newOrderService()

		order := &domain.Order{
			ID:         testOrderID,
			CustomerID: testCustomerID,
			Items: []domain.OrderItem{
				{ID: 1, Status: cancelledStatus(101)},
			},
		}
		m.orders.On("FindForCustomer", mock.Anything, testOrderID, testCustomerID).Return(order, nil)

		err := svc.CancelOrder(context.Background(), testOrderID, testCustomerID, "again")
		require.NoError(t, err)

		m.orders.AssertNotCalled(t, "UpdateItemStatus", mock.Anything, mock.Anything, mock.Anything)
		m.orders.AssertNotCalled(t, "CreateCancelledItem", mock.Anything, mock.Anything)
		m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("defaults the reason when none is given", func(t *testing.T) {
		svc, m := newOrderService()

		order := &domain.Order{
			ID:         testOrderID,
			CustomerID: testCustomerID,
			Items:      []domain.OrderItem{{ID: 1, Status: pendingStatus(101)}},
		}
		m.orders.On("FindForCustomer", mock.Anything, testOrderID, testCustomerID).Return(order, nil)
		m.orders.On("UpdateItemStatus", mock.Anything, uint64(101), domain.StatusCancelled).Return(nil)
		m.orders.On("CreateCancelledItem", mock.Anything, mock.MatchedBy(func(item *domain.CancelledItem) bool {
			return item.Reason == "No reason provided"
		})).Return(nil)
		m.publisher.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

		err := svc.CancelOrder(context.Background(), testOrderID, testCustomerID, "")
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)
		m.orders.AssertExpectations(t)
	})

	t.Run("foreign order is not found", func(t *testing.T) {
		svc, m := newOrderService()

		m.orders.On("FindForCustomer", mock.Anything, testOrderID, testCustomerID).Return(nil, nil)

		err := svc.CancelOrder(context.Background(), testOrderID, testCustomerID, "whatever")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	svc, m := newOrderService()

	m.orders.On("FindForCustomer", mock.Anything, testOrderID, testCustomerID).Return(nil, nil)

	order, err := svc.GetOrder(context.Background(), testOrderID, testCustomerID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, order)
}
