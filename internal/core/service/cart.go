package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) Cart(ctx context.Context, clientID string) (domain.Cart, error) {
	const op = "Service.Cart"

	cart, err := s.carts.ReadCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// AddToCart puts the product into the cart with quantity 1, or bumps
// the quantity when it is already there.
func (s Service) AddToCart(
	ctx context.Context, clientID string, productID int,
) (domain.Cart, error) {
	const op = "Service.AddToCart"

	p, err := s.Product(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.IncrementCartItem(ctx, clientID, p); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Cart(ctx, clientID)
}

// UpdateCartQuantity sets the quantity of a cart item. A quantity below
// one removes the item.
func (s Service) UpdateCartQuantity(
	ctx context.Context, clientID string, productID, quantity int,
) (domain.Cart, error) {
	const op = "Service.UpdateCartQuantity"

	if quantity <= 0 {
		return s.RemoveFromCart(ctx, clientID, productID)
	}

	cart, err := s.carts.ReadCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	i := cartItemIndex(cart, productID)
	if i < 0 {
		return domain.Cart{}, fmt.Errorf(
			"%s: product id %d: %w", op, productID, domain.ErrCartItemNotFound,
		)
	}

	item := cart.Items[i]
	item.Quantity = quantity
	if err := s.carts.UpsertCartItem(ctx, clientID, item); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Cart(ctx, clientID)
}

func (s Service) RemoveFromCart(
	ctx context.Context, clientID string, productID int,
) (domain.Cart, error) {
	const op = "Service.RemoveFromCart"

	if err := s.carts.DeleteCartItem(ctx, clientID, productID); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.Cart(ctx, clientID)
}

func (s Service) ClearCart(ctx context.Context, clientID string) error {
	const op = "Service.ClearCart"

	if err := s.carts.ClearCart(ctx, clientID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func cartItemIndex(c domain.Cart, productID int) int {
	return slices.IndexFunc(c.Items, func(item domain.CartItem) bool {
		return item.Product.ID == productID
	})
}
