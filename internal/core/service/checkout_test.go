package service_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shippingInfo() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "555-0100",
		Address:   "123 Main Street",
		City:      "New York",
		State:     "NY",
		ZipCode:   "10001",
	}
}

func paymentInfo() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/26",
		CVV:        "123",
		CardName:   "John Doe",
	}
}

var orderNumberRe = regexp.MustCompile(`^SS-[0-9A-Z]{9}$`)

func TestCheckout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("PlacesOrder", func(t *testing.T) {
		producer := new(MockOrdersProducer)
		f := newFixture(t,
			service.ClockOpt(func() time.Time { return now }),
			service.OrdersOpt(producer, nil),
		).withFeeds()
		ctx := t.Context()

		_, err := f.service.AddToCart(ctx, clientID, 2)
		require.NoError(t, err)
		_, err = f.service.UpdateCartQuantity(ctx, clientID, 2, 3)
		require.NoError(t, err)
		_, err = f.service.AddToCart(ctx, clientID, 5)
		require.NoError(t, err)

		producer.On("ProduceOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
			return o.Email == "john@example.com" && len(o.Items) == 2
		})).Return(nil).Once()

		order, err := f.service.Checkout(ctx, clientID, shippingInfo(), paymentInfo())
		require.NoError(t, err)

		assert.Regexp(t, orderNumberRe, order.Number)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "91.90", order.Subtotal.StringFixed(2))
		assert.Equal(t, "7.35", order.Tax.StringFixed(2))
		assert.True(t, order.Shipping.IsZero())
		assert.Equal(t, "99.25", order.Total.StringFixed(2))
		assert.Equal(t, "**** **** **** 4242", order.PaymentMethod)
		assert.Equal(t, now, order.PlacedAt)
		assert.Equal(t, now.Add(5*24*time.Hour), order.EstimatedDelivery)

		cart, err := f.service.Cart(ctx, clientID)
		require.NoError(t, err)
		assert.True(t, cart.Empty())

		producer.AssertExpectations(t)
	})

	t.Run("SessionEmailWins", func(t *testing.T) {
		producer := new(MockOrdersProducer)
		f := newFixture(t, service.OrdersOpt(producer, nil)).withFeeds()
		ctx := t.Context()

		_, err := f.service.Login(ctx, clientID, "jane@example.com", "secret")
		require.NoError(t, err)
		_, err = f.service.AddToCart(ctx, clientID, 1)
		require.NoError(t, err)

		producer.On("ProduceOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
			return o.Email == "jane@example.com"
		})).Return(nil).Once()

		_, err = f.service.Checkout(ctx, clientID, shippingInfo(), paymentInfo())
		require.NoError(t, err)
		producer.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Checkout(t.Context(), clientID, shippingInfo(), paymentInfo())
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("InvalidShipping", func(t *testing.T) {
		f := newFixture(t)
		s := shippingInfo()
		s.ZipCode = ""

		_, err := f.service.Checkout(t.Context(), clientID, s, paymentInfo())
		assert.ErrorIs(t, err, domain.ErrInvalidShipping)
	})

	t.Run("InvalidPayment", func(t *testing.T) {
		f := newFixture(t)
		p := paymentInfo()
		p.ExpiryDate = "1226"

		_, err := f.service.Checkout(t.Context(), clientID, shippingInfo(), p)
		assert.ErrorIs(t, err, domain.ErrInvalidPayment)
	})

	t.Run("PublishFailureKeepsCart", func(t *testing.T) {
		producer := new(MockOrdersProducer)
		f := newFixture(t, service.OrdersOpt(producer, nil)).withFeeds()
		ctx := t.Context()

		_, err := f.service.AddToCart(ctx, clientID, 1)
		require.NoError(t, err)

		errBroker := errors.New("broker unavailable")
		producer.On("ProduceOrder", mock.Anything, mock.Anything).Return(errBroker)

		_, err = f.service.Checkout(ctx, clientID, shippingInfo(), paymentInfo())
		assert.ErrorIs(t, err, errBroker)

		cart, err := f.service.Cart(ctx, clientID)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("CustomTaxRate", func(t *testing.T) {
		f := newFixture(t, service.TaxRateOpt(0.1), service.DeliveryDaysOpt(2)).withFeeds()
		ctx := t.Context()

		_, err := f.service.AddToCart(ctx, clientID, 5)
		require.NoError(t, err)

		order, err := f.service.Checkout(ctx, clientID, shippingInfo(), paymentInfo())
		require.NoError(t, err)
		assert.Equal(t, "2.50", order.Tax.StringFixed(2))
		assert.Equal(t, "27.50", order.Total.StringFixed(2))
		assert.Equal(t, 2*24*time.Hour, order.EstimatedDelivery.Sub(order.PlacedAt))
	})
}

func TestOrderHistory(t *testing.T) {
	t.Run("Unavailable", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.OrderHistory(t.Context(), clientID)
		assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
	})

	t.Run("NotAuthenticated", func(t *testing.T) {
		history := new(MockOrderHistory)
		f := newFixture(t, service.OrdersOpt(nil, history))

		_, err := f.service.OrderHistory(t.Context(), clientID)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("ByEmail", func(t *testing.T) {
		history := new(MockOrderHistory)
		f := newFixture(t, service.OrdersOpt(nil, history))
		ctx := t.Context()

		_, err := f.service.Login(ctx, clientID, "jane@example.com", "secret")
		require.NoError(t, err)

		want := []domain.OrderSummary{{Number: "SS-ABCDEFGHI", Items: 2, Total: 10.8}}
		history.On("ReadOrderHistory", mock.Anything, "jane@example.com").Return(want, nil)

		got, err := f.service.OrderHistory(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		history.AssertExpectations(t)
	})
}
