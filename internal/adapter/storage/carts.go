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

var _ port.CartStorage = (*CartsRepository)(nil)

const cartItemsTable = "cart_items"

type CartsRepository struct {
	sqldb sqldb
}

func NewCartsRepository(sqldb sqldb) CartsRepository {
	return CartsRepository{sqldb}
}

func (r CartsRepository) ReadCart(
	ctx context.Context, clientID string,
) (domain.Cart, error) {
	const op = "CartsRepository.ReadCart"
	log := slog.With("op", op)

	rows, err := psql.
		Select("quantity", "product").
		From(cartItemsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("added_at", "product_id").
		RunWith(r.sqldb).
		QueryContext(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var cart domain.Cart
	for rows.Next() {
		var (
			item    domain.CartItem
			product []byte
		)
		if err := rows.Scan(&item.Quantity, &product); err != nil {
			return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(product, &item.Product); err != nil {
			return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (r CartsRepository) UpsertCartItem(
	ctx context.Context, clientID string, item domain.CartItem,
) error {
	const op = "CartsRepository.UpsertCartItem"

	product, err := json.Marshal(item.Product)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = psql.
		Insert(cartItemsTable).
		SetMap(map[string]any{
			"client_id":  clientID,
			"product_id": item.Product.ID,
			"quantity":   item.Quantity,
			"product":    string(product),
		}).
		Suffix(`ON CONFLICT (client_id, product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			product = EXCLUDED.product`).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IncrementCartItem increments under the row lock taken by ON CONFLICT.
func (r CartsRepository) IncrementCartItem(
	ctx context.Context, clientID string, p domain.Product,
) error {
	const op = "CartsRepository.IncrementCartItem"

	product, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = psql.
		Insert(cartItemsTable).
		SetMap(map[string]any{
			"client_id":  clientID,
			"product_id": p.ID,
			"quantity":   1,
			"product":    string(product),
		}).
		Suffix(`ON CONFLICT (client_id, product_id) DO UPDATE SET
			quantity = cart_items.quantity + 1,
			product = EXCLUDED.product`).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartsRepository) DeleteCartItem(
	ctx context.Context, clientID string, productID int,
) error {
	const op = "CartsRepository.DeleteCartItem"

	_, err := psql.
		Delete(cartItemsTable).
		Where(squirrel.Eq{"client_id": clientID, "product_id": productID}).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartsRepository) ClearCart(ctx context.Context, clientID string) error {
	const op = "CartsRepository.ClearCart"

	_, err := psql.
		Delete(cartItemsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		RunWith(r.sqldb).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
