// Package memory keeps the client scoped stores in process memory.
//
// It backs the service when no SQL database is configured. All stores
// are safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	_ port.CartStorage     = (*Storage)(nil)
	_ port.WishlistStorage = (*Storage)(nil)
	_ port.SessionStorage  = (*Storage)(nil)
)

type Storage struct {
	mu        sync.RWMutex
	carts     map[string][]domain.CartItem
	wishlists map[string][]domain.WishlistEntry
	sessions  map[string]domain.Session
}

func New() *Storage {
	return &Storage{
		carts:     make(map[string][]domain.CartItem),
		wishlists: make(map[string][]domain.WishlistEntry),
		sessions:  make(map[string]domain.Session),
	}
}

func (s *Storage) ReadCart(ctx context.Context, clientID string) (domain.Cart, error) {
	const op = "memory.Storage.ReadCart"
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Cart{Items: slices.Clone(s.carts[clientID])}, nil
}

func (s *Storage) UpsertCartItem(
	ctx context.Context, clientID string, item domain.CartItem,
) error {
	const op = "memory.Storage.UpsertCartItem"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[clientID]
	i := slices.IndexFunc(items, func(v domain.CartItem) bool {
		return v.Product.ID == item.Product.ID
	})
	if i < 0 {
		s.carts[clientID] = append(items, item)
		return nil
	}
	items[i] = item
	return nil
}

func (s *Storage) IncrementCartItem(
	ctx context.Context, clientID string, p domain.Product,
) error {
	const op = "memory.Storage.IncrementCartItem"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[clientID]
	i := slices.IndexFunc(items, func(v domain.CartItem) bool {
		return v.Product.ID == p.ID
	})
	if i < 0 {
		s.carts[clientID] = append(items, domain.CartItem{Product: p, Quantity: 1})
		return nil
	}
	items[i] = domain.CartItem{Product: p, Quantity: items[i].Quantity + 1}
	return nil
}

func (s *Storage) DeleteCartItem(
	ctx context.Context, clientID string, productID int,
) error {
	const op = "memory.Storage.DeleteCartItem"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[clientID] = slices.DeleteFunc(s.carts[clientID], func(v domain.CartItem) bool {
		return v.Product.ID == productID
	})
	return nil
}

func (s *Storage) ClearCart(ctx context.Context, clientID string) error {
	const op = "memory.Storage.ClearCart"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, clientID)
	return nil
}

func (s *Storage) ReadWishlist(
	ctx context.Context, clientID string,
) (domain.Wishlist, error) {
	const op = "memory.Storage.ReadWishlist"
	if err := ctx.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Wishlist{Entries: slices.Clone(s.wishlists[clientID])}, nil
}

func (s *Storage) InsertWishlistEntry(
	ctx context.Context, clientID string, e domain.WishlistEntry,
) (bool, error) {
	const op = "memory.Storage.InsertWishlistEntry"
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.wishlists[clientID]
	if (domain.Wishlist{Entries: entries}).Contains(e.Product.ID) {
		return false, nil
	}
	s.wishlists[clientID] = append(entries, e)
	return true, nil
}

func (s *Storage) DeleteWishlistEntry(
	ctx context.Context, clientID string, productID int,
) error {
	const op = "memory.Storage.DeleteWishlistEntry"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlists[clientID] = slices.DeleteFunc(
		s.wishlists[clientID], func(e domain.WishlistEntry) bool {
			return e.Product.ID == productID
		},
	)
	return nil
}

func (s *Storage) ClearWishlist(ctx context.Context, clientID string) error {
	const op = "memory.Storage.ClearWishlist"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, clientID)
	return nil
}

func (s *Storage) ReadSession(
	ctx context.Context, clientID string,
) (domain.Session, error) {
	const op = "memory.Storage.ReadSession"
	if err := ctx.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sessions[clientID]
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess, nil
}

func (s *Storage) StoreSession(
	ctx context.Context, clientID string, sess domain.Session,
) error {
	const op = "memory.Storage.StoreSession"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[clientID] = sess
	return nil
}

func (s *Storage) DeleteSession(ctx context.Context, clientID string) error {
	const op = "memory.Storage.DeleteSession"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, clientID)
	return nil
}
