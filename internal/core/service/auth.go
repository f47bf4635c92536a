package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Authentication is mocked: any non-empty credentials are accepted.

func (s Service) Session(
	ctx context.Context, clientID string,
) (domain.Session, error) {
	const op = "Service.Session"

	sess, err := s.sessions.ReadSession(ctx, clientID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s Service) Login(
	ctx context.Context, clientID, email, password string,
) (domain.Session, error) {
	const op = "Service.Login"

	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	name, _, _ := strings.Cut(email, "@")
	sess, err := s.signIn(ctx, clientID, name, email)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s Service) Register(
	ctx context.Context, clientID, name, email, password string,
) (domain.Session, error) {
	const op = "Service.Register"

	if name == "" || email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	sess, err := s.signIn(ctx, clientID, name, email)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s Service) signIn(
	ctx context.Context, clientID, name, email string,
) (domain.Session, error) {
	sess := domain.Session{
		User: &domain.User{
			ID:     domain.MockUserID,
			Email:  email,
			Name:   name,
			Avatar: domain.AvatarURL(email),
		},
		IsAuthenticated: true,
	}

	if err := s.sessions.StoreSession(ctx, clientID, sess); err != nil {
		return domain.Session{}, err
	}

	slog.Info("signed in", "op", "Service.signIn", "clientID", clientID)
	return sess, nil
}

// Logout drops the session whether or not one exists.
func (s Service) Logout(ctx context.Context, clientID string) error {
	const op = "Service.Logout"

	if err := s.sessions.DeleteSession(ctx, clientID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) UpdateProfile(
	ctx context.Context, clientID string, upd domain.ProfileUpdate,
) (domain.Session, error) {
	const op = "Service.UpdateProfile"

	sess, err := s.sessions.ReadSession(ctx, clientID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if sess.User == nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	}

	u := sess.User.Apply(upd)
	sess.User = &u
	if err := s.sessions.StoreSession(ctx, clientID, sess); err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}
