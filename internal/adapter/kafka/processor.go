package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.OrderHistoryProcessor = (*OrderHistoryProcessor)(nil)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("fall down while preparing", "err", err)
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An orderEventCodec used for serde [schema.OrderV1]
type orderEventCodec struct {
	serde Serde
}

func (c orderEventCodec) Encode(v any) ([]byte, error) {
	const op = "orderEventCodec.Encode"
	if _, ok := v.(schema.OrderV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c orderEventCodec) Decode(data []byte) (any, error) {
	const op = "orderEventCodec.Decode"
	var s schema.OrderV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// An orderHistoryCodec used for serde [schema.OrderHistoryV1] group
// table values. Table values stay private to the group, they skip the
// schema registry.
type orderHistoryCodec struct {
	encodeFn schema.EncodeFn
	decodeFn schema.DecodeFn
}

func newOrderHistoryCodec() orderHistoryCodec {
	s := schema.OrderHistoryV1Avro()
	return orderHistoryCodec{
		encodeFn: schema.AvroEncodeFn(s),
		decodeFn: schema.AvroDecodeFn(s),
	}
}

func (c orderHistoryCodec) Encode(v any) ([]byte, error) {
	const op = "orderHistoryCodec.Encode"
	if _, ok := v.(schema.OrderHistoryV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.encodeFn(v)
}

func (c orderHistoryCodec) Decode(data []byte) (any, error) {
	const op = "orderHistoryCodec.Decode"
	var s schema.OrderHistoryV1
	if err := c.decodeFn(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// An OrderHistoryProcessor folds order events from the orders stream
// into the per email history group table.
type OrderHistoryProcessor struct {
	opPrefix string
	proc     processor
}

func NewOrderHistoryProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	orderSerde Serde,
	opts ...goka.ProcessorOption,
) (*OrderHistoryProcessor, error) {
	const op = "NewOrderHistoryProc"

	p := OrderHistoryProcessor{opPrefix: "OrderHistoryProcessor"}

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			orderEventCodec{orderSerde},
			p.processFn,
		),
		goka.Persist(newOrderHistoryCodec()),
	)

	opts = append([]goka.ProcessorOption{withNonlogProcOpt()}, opts...)
	gp, err := goka.NewProcessor(seedBrokers, gg, opts...)
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{opPrefix: p.opPrefix, gp: gp}
	return &p, nil
}

func (p *OrderHistoryProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *OrderHistoryProcessor) Close() {
	p.proc.close()
}

func (p *OrderHistoryProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"

	order, ok := msg.(schema.OrderV1)
	if !ok {
		return
	}
	log := slog.With("op", makeOp(p.opPrefix, op), "number", order.Number)

	h, _ := ctx.Value().(schema.OrderHistoryV1)
	ctx.SetValue(appendHistory(h, orderToSummaryV1(order)))
	log.Debug("order added to history")
}

// appendHistory puts s first and keeps at most [HistoryLimit] orders.
// A redelivered order replaces its earlier entry.
func appendHistory(h schema.OrderHistoryV1, s schema.OrderSummaryV1) schema.OrderHistoryV1 {
	orders := make([]schema.OrderSummaryV1, 0, min(len(h.Orders)+1, HistoryLimit))
	orders = append(orders, s)
	for _, o := range h.Orders {
		if len(orders) == HistoryLimit {
			break
		}
		if o.Number != s.Number {
			orders = append(orders, o)
		}
	}
	return schema.OrderHistoryV1{Orders: orders}
}
