package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist(t *testing.T) {
	f := newFixture(t).withFeeds()
	ctx := t.Context()

	w, err := f.service.AddToWishlist(ctx, clientID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Count())

	t.Run("AddPresentIsNoop", func(t *testing.T) {
		w, err := f.service.AddToWishlist(ctx, clientID, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, w.Count())
	})

	t.Run("RemoveAbsentIsNoop", func(t *testing.T) {
		w, err := f.service.RemoveFromWishlist(ctx, clientID, 4)
		require.NoError(t, err)
		assert.Equal(t, 1, w.Count())
	})

	t.Run("Contains", func(t *testing.T) {
		ok, err := f.service.InWishlist(ctx, clientID, 3)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.service.InWishlist(ctx, clientID, 4)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		_, err := f.service.AddToWishlist(ctx, clientID, 77)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("RemoveAndClear", func(t *testing.T) {
		_, err := f.service.AddToWishlist(ctx, clientID, 4)
		require.NoError(t, err)

		w, err := f.service.RemoveFromWishlist(ctx, clientID, 3)
		require.NoError(t, err)
		require.Equal(t, 1, w.Count())
		assert.Equal(t, 4, w.Entries[0].Product.ID)

		require.NoError(t, f.service.ClearWishlist(ctx, clientID))
		w, err = f.service.Wishlist(ctx, clientID)
		require.NoError(t, err)
		assert.Zero(t, w.Count())
	})
}
