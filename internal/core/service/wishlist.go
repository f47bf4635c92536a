package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
)

func (s Service) Wishlist(
	ctx context.Context, clientID string,
) (domain.Wishlist, error) {
	const op = "Service.Wishlist"

	w, err := s.wishlists.ReadWishlist(ctx, clientID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

// AddToWishlist is a no-op when the product is already in the wishlist.
func (s Service) AddToWishlist(
	ctx context.Context, clientID string, productID int,
) (domain.Wishlist, error) {
	const op = "Service.AddToWishlist"
	log := slog.With("op", op)

	w, err := s.Wishlist(ctx, clientID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	if w.Contains(productID) {
		return w, nil
	}

	p, err := s.Product(ctx, productID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	added, err := s.wishlists.InsertWishlistEntry(
		ctx, clientID, domain.WishlistEntry{Product: p},
	)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	if !added {
		log.Debug("entry already present", "productID", productID)
	}

	return s.Wishlist(ctx, clientID)
}

// RemoveFromWishlist is a no-op when the product is not in the wishlist.
func (s Service) RemoveFromWishlist(
	ctx context.Context, clientID string, productID int,
) (domain.Wishlist, error) {
	const op = "Service.RemoveFromWishlist"

	err := s.wishlists.DeleteWishlistEntry(ctx, clientID, productID)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.Wishlist(ctx, clientID)
}

func (s Service) InWishlist(
	ctx context.Context, clientID string, productID int,
) (bool, error) {
	const op = "Service.InWishlist"

	w, err := s.Wishlist(ctx, clientID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return w.Contains(productID), nil
}

func (s Service) ClearWishlist(ctx context.Context, clientID string) error {
	const op = "Service.ClearWishlist"

	if err := s.wishlists.ClearWishlist(ctx, clientID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
