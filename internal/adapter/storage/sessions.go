package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SessionStorage = (*SessionsRepository)(nil)

const sessionsTable = "sessions"

type SessionsRepository struct {
	sqldb sqldb
}

func NewSessionsRepository(sqldb sqldb) SessionsRepository {
	return SessionsRepository{sqldb}
}

// ReadSession returns an anonymous session when the client has none.
func (r SessionsRepository) ReadSession(
	ctx context.Context, clientID string,
) (domain.Session, error) {
	const op = "SessionsRepository.ReadSession"

	var (
		userID, email, name, avatar sql.NullString
		sess                        domain.Session
	)
	err := psql.
		Select("user_id", "email", "name", "avatar", "is_authenticated").
		From(sessionsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		RunWith(r.sqldb).
		QueryRowContext(ctx).
		Scan(&userID, &email, &name, &avatar, &sess.IsAuthenticated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if userID.Valid {
		sess.User = &domain.User{
			ID:     userID.String,
			Email:  email.String,
			Name:   name.String,
			Avatar: avatar.String,
		}
	}
	return sess, nil
}

func (r SessionsRepository) StoreSession(
	ctx context.Context, clientID string, s domain.Session,
) error {
	const op = "SessionsRepository.StoreSession"

	values := map[string]any{
		"client_id":        clientID,
		"user_id":          nil,
		"email":            nil,
		"name":             nil,
		"avatar":           nil,
		"is_authenticated": s.IsAuthenticated,
	}
	if u := s.User; u != nil {
		values["user_id"] = u.ID
		values["email"] = u.Email
		values["name"] = u.Name
		values["avatar"] = u.Avatar
	}

	_, err := psql.
		Insert(sessionsTable).
		SetMap(values).
		Suffix(`ON CONFLICT (client_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			is_authenticated = EXCLUDED.is_authenticated,
			updated_at = now()`).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r SessionsRepository) DeleteSession(ctx context.Context, clientID string) error {
	const op = "SessionsRepository.DeleteSession"

	_, err := psql.
		Delete(sessionsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
