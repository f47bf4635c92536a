package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.OrderHistoryReader = (*OrderHistoryView)(nil)

// An OrderHistoryView serves reads from the order history group table.
type OrderHistoryView struct {
	gv *goka.View
}

func NewOrderHistoryView(
	seedBrokers []string, groupTable string, opts ...goka.ViewOption,
) (*OrderHistoryView, error) {
	const op = "NewOrderHistoryView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		newOrderHistoryCodec(),
		opts...,
	)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &OrderHistoryView{gv}, nil
}

func (v *OrderHistoryView) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "OrderHistoryView.Run"
	log := slog.With("op", op)

	defer wg.Done()

	go func() {
		defer stopFn()
		if err := v.gv.Run(ctx); err != nil {
			log.Error("stopped", "err", err)
			return
		}
		log.Info("stopped")
	}()

	log.Info("running")
}

// ReadOrderHistory returns the user's orders, newest first. The view
// must be recovered before it can answer.
func (v *OrderHistoryView) ReadOrderHistory(
	ctx context.Context, email string,
) ([]domain.OrderSummary, error) {
	const op = "OrderHistoryView.ReadOrderHistory"

	if err := ctx.Err(); err != nil {
		return nil, opErr(err, op)
	}
	if !v.gv.Recovered() {
		return nil, opErr(domain.ErrHistoryUnavailable, op)
	}

	value, err := v.gv.Get(email)
	if err != nil {
		return nil, opErr(err, op)
	}
	if value == nil {
		return []domain.OrderSummary{}, nil
	}

	h, ok := value.(schema.OrderHistoryV1)
	if !ok {
		return nil, opErr(fmt.Errorf("%w: %T", ErrInvalidValueType, value), op)
	}
	return historyToDomain(h), nil
}
