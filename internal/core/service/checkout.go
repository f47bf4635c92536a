package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	orderNumberPrefix = "SS-"
	orderNumberLen    = 9
	orderNumberChars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Checkout places an order for the client's cart. The cart is cleared
// only after the order has been published.
func (s Service) Checkout(
	ctx context.Context,
	clientID string,
	shipping domain.ShippingInfo,
	payment domain.PaymentInfo,
) (domain.Order, error) {
	const op = "Service.Checkout"
	log := slog.With("op", op)

	if !shipping.Valid() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidShipping)
	}
	if !payment.Valid() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidPayment)
	}

	cart, err := s.carts.ReadCart(ctx, clientID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	email := shipping.Email
	if sess, err := s.sessions.ReadSession(ctx, clientID); err == nil && sess.User != nil {
		email = sess.User.Email
	}

	order := s.makeOrder(cart, email, shipping, payment)

	if s.orders != nil {
		if err := s.orders.ProduceOrder(ctx, order); err != nil {
			return domain.Order{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.carts.ClearCart(ctx, clientID); err != nil {
		log.Error("failed to clear cart after checkout", "err", err)
	}

	log.Info(
		"order placed",
		"number", order.Number,
		"items", len(order.Items),
		"total", order.Total.StringFixed(2),
	)
	return order, nil
}

func (s Service) makeOrder(
	cart domain.Cart,
	email string,
	shipping domain.ShippingInfo,
	payment domain.PaymentInfo,
) domain.Order {
	now := s.now()
	subtotal := cart.Subtotal()
	tax := subtotal.Mul(s.taxRate).Round(2)

	items := make([]domain.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		}
	}

	return domain.Order{
		ID:                uuid.NewString(),
		Number:            newOrderNumber(),
		Email:             email,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(time.Duration(s.deliveryDays) * 24 * time.Hour),
		Items:             items,
		Subtotal:          subtotal,
		Tax:               tax,
		Shipping:          decimal.Zero,
		Total:             subtotal.Add(tax),
		PaymentMethod:     payment.Masked(),
		ShippingAddress:   shipping,
	}
}

func newOrderNumber() string {
	b := make([]byte, orderNumberLen)
	for i := range b {
		b[i] = orderNumberChars[rand.IntN(len(orderNumberChars))]
	}
	return orderNumberPrefix + string(b)
}

// OrderHistory returns the orders placed by the signed-in user.
func (s Service) OrderHistory(
	ctx context.Context, clientID string,
) ([]domain.OrderSummary, error) {
	const op = "Service.OrderHistory"

	if s.history == nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrHistoryUnavailable)
	}

	sess, err := s.sessions.ReadSession(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sess.User == nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	orders, err := s.history.ReadOrderHistory(ctx, sess.User.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
