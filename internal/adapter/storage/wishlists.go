package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.WishlistStorage = (*WishlistsRepository)(nil)

const wishlistTable = "wishlist_entries"

type WishlistsRepository struct {
	sqldb sqldb
}

func NewWishlistsRepository(sqldb sqldb) WishlistsRepository {
	return WishlistsRepository{sqldb}
}

func (r WishlistsRepository) ReadWishlist(
	ctx context.Context, clientID string,
) (domain.Wishlist, error) {
	const op = "WishlistsRepository.ReadWishlist"
	log := slog.With("op", op)

	rows, err := psql.
		Select("product").
		From(wishlistTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("added_at", "product_id").
		RunWith(r.sqldb).
		QueryContext(ctx)
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var w domain.Wishlist
	for rows.Next() {
		var (
			e       domain.WishlistEntry
			product []byte
		)
		if err := rows.Scan(&product); err != nil {
			return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(product, &e.Product); err != nil {
			return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
		}
		w.Entries = append(w.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Wishlist{}, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (r WishlistsRepository) InsertWishlistEntry(
	ctx context.Context, clientID string, e domain.WishlistEntry,
) (bool, error) {
	const op = "WishlistsRepository.InsertWishlistEntry"

	product, err := json.Marshal(e.Product)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	res, err := psql.
		Insert(wishlistTable).
		SetMap(map[string]any{
			"client_id":  clientID,
			"product_id": e.Product.ID,
			"product":    string(product),
		}).
		Suffix("ON CONFLICT (client_id, product_id) DO NOTHING").
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: getting affected rows: %w", op, err)
	}
	return n == 1, nil
}

func (r WishlistsRepository) DeleteWishlistEntry(
	ctx context.Context, clientID string, productID int,
) error {
	const op = "WishlistsRepository.DeleteWishlistEntry"

	_, err := psql.
		Delete(wishlistTable).
		Where(squirrel.Eq{"client_id": clientID, "product_id": productID}).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r WishlistsRepository) ClearWishlist(ctx context.Context, clientID string) error {
	const op = "WishlistsRepository.ClearWishlist"

	_, err := psql.
		Delete(wishlistTable).
		Where(squirrel.Eq{"client_id": clientID}).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
