package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	t.Run("EmptyCredentials", func(t *testing.T) {
		_, err := f.service.Login(ctx, clientID, "", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		_, err = f.service.Login(ctx, clientID, "jane@example.com", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Success", func(t *testing.T) {
		sess, err := f.service.Login(ctx, clientID, "jane@example.com", "secret")
		require.NoError(t, err)
		require.NotNil(t, sess.User)
		assert.True(t, sess.IsAuthenticated)
		assert.Equal(t, domain.MockUserID, sess.User.ID)
		assert.Equal(t, "jane", sess.User.Name)
		assert.Equal(t, domain.AvatarURL("jane@example.com"), sess.User.Avatar)

		stored, err := f.service.Session(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, sess, stored)
	})
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	_, err := f.service.Register(ctx, clientID, "", "jane@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	sess, err := f.service.Register(ctx, clientID, "Jane Doe", "jane@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Jane Doe", sess.User.Name)
	assert.True(t, sess.IsAuthenticated)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	t.Run("WithoutSession", func(t *testing.T) {
		require.NoError(t, f.service.Logout(ctx, clientID))
	})

	t.Run("ClearsSession", func(t *testing.T) {
		_, err := f.service.Login(ctx, clientID, "jane@example.com", "secret")
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(ctx, clientID))

		sess, err := f.service.Session(ctx, clientID)
		require.NoError(t, err)
		assert.Nil(t, sess.User)
		assert.False(t, sess.IsAuthenticated)
	})
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	_, err := f.service.UpdateProfile(ctx, clientID, domain.ProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = f.service.Login(ctx, clientID, "jane@example.com", "secret")
	require.NoError(t, err)

	sess, err := f.service.UpdateProfile(ctx, clientID, domain.ProfileUpdate{Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", sess.User.Name)
	assert.Equal(t, "jane@example.com", sess.User.Email)

	stored, err := f.service.Session(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.User.Name)
}
