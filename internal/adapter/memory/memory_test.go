package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/memory"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	item := domain.CartItem{Product: domain.Product{ID: 1, Price: 5}, Quantity: 1}
	require.NoError(t, s.UpsertCartItem(ctx, "c1", item))

	item.Quantity = 3
	require.NoError(t, s.UpsertCartItem(ctx, "c1", item))
	require.NoError(t, s.UpsertCartItem(ctx, "c1",
		domain.CartItem{Product: domain.Product{ID: 2, Price: 1}, Quantity: 1}))

	cart, err := s.ReadCart(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 4, cart.TotalItems())

	other, err := s.ReadCart(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, other.Empty())

	require.NoError(t, s.DeleteCartItem(ctx, "c1", 1))
	require.NoError(t, s.DeleteCartItem(ctx, "c1", 42))
	cart, err = s.ReadCart(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Product.ID)

	require.NoError(t, s.ClearCart(ctx, "c1"))
	cart, err = s.ReadCart(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestWishlist(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	e := domain.WishlistEntry{Product: domain.Product{ID: 7}}
	added, err := s.InsertWishlistEntry(ctx, "c1", e)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.InsertWishlistEntry(ctx, "c1", e)
	require.NoError(t, err)
	assert.False(t, added)

	w, err := s.ReadWishlist(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Count())

	require.NoError(t, s.DeleteWishlistEntry(ctx, "c1", 8))
	require.NoError(t, s.DeleteWishlistEntry(ctx, "c1", 7))
	w, err = s.ReadWishlist(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, w.Count())

	_, err = s.InsertWishlistEntry(ctx, "c1", e)
	require.NoError(t, err)
	require.NoError(t, s.ClearWishlist(ctx, "c1"))
	w, err = s.ReadWishlist(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, w.Count())
}

func TestSession(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	sess, err := s.ReadSession(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, sess.User)
	assert.False(t, sess.IsAuthenticated)

	u := &domain.User{ID: "1", Email: "a@b.c"}
	require.NoError(t, s.StoreSession(ctx, "c1", domain.Session{User: u, IsAuthenticated: true}))
	u.Name = "changed after store"

	sess, err = s.ReadSession(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Empty(t, sess.User.Name)
	assert.True(t, sess.IsAuthenticated)

	require.NoError(t, s.DeleteSession(ctx, "c1"))
	sess, err = s.ReadSession(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, sess.User)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	s := memory.New()
	_, err := s.ReadCart(ctx, "c1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.ClearWishlist(ctx, "c1"), context.Canceled)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := domain.CartItem{Product: domain.Product{ID: i}, Quantity: 1}
			assert.NoError(t, s.UpsertCartItem(ctx, "c1", item))
		}()
	}
	wg.Wait()

	cart, err := s.ReadCart(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 50)
}

func TestIncrementCartItem(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	p := domain.Product{ID: 7, Title: "Lamp", Price: 10}
	require.NoError(t, s.IncrementCartItem(ctx, "c1", p))

	p.Price = 12
	var wg sync.WaitGroup
	for range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.IncrementCartItem(ctx, "c1", p))
		}()
	}
	wg.Wait()

	cart, err := s.ReadCart(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 31, cart.Items[0].Quantity)
	assert.Equal(t, 12.0, cart.Items[0].Product.Price)
}
