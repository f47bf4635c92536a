// Package kafka publishes order events and keeps the per user order
// history in a goka group table.
package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/shopspring/decimal"
	"github.com/twmb/franz-go/pkg/kgo"
)

// HistoryLimit is the number of orders kept per user.
const HistoryLimit = 20

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt connects to the brokers. A nil tlsConfig means a
// plaintext connection.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, tlsConfig *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kopts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
		}
		if tlsConfig != nil {
			kopts = append(kopts, kgo.DialTLSConfig(tlsConfig))
		}

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerTestClientOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("producer client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

// UseTLS makes goka processors and views connect over TLS.
func UseTLS(tlsConfig *tls.Config) {
	if tlsConfig == nil {
		return
	}
	cfg := goka.DefaultConfig()
	cfg.Net.TLS.Enable = true
	cfg.Net.TLS.Config = tlsConfig
	goka.ReplaceGlobalConfig(cfg)
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(v domain.Order) (s schema.OrderV1) {
	s.OrderID = v.ID
	s.Number = v.Number
	s.Email = v.Email
	s.PlacedAt = v.PlacedAt.UTC()
	s.EstimatedDelivery = v.EstimatedDelivery.UTC()
	s.Subtotal = v.Subtotal.StringFixed(2)
	s.Tax = v.Tax.StringFixed(2)
	s.Shipping = v.Shipping.StringFixed(2)
	s.Total = v.Total.StringFixed(2)
	s.PaymentMethod = v.PaymentMethod

	s.Items = make([]schema.OrderItemV1, len(v.Items))
	for i, item := range v.Items {
		s.Items[i] = schema.OrderItemV1{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	a := v.ShippingAddress
	s.ShippingAddress = schema.ShippingAddressV1{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Address:   a.Address,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
	}
	return
}

func orderToSummaryV1(s schema.OrderV1) schema.OrderSummaryV1 {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	total, _ := decimal.NewFromString(s.Total)
	return schema.OrderSummaryV1{
		Number:   s.Number,
		PlacedAt: s.PlacedAt,
		Items:    n,
		Total:    total.InexactFloat64(),
	}
}

func historyToDomain(h schema.OrderHistoryV1) []domain.OrderSummary {
	vs := make([]domain.OrderSummary, len(h.Orders))
	for i, o := range h.Orders {
		vs[i] = domain.OrderSummary{
			Number:   o.Number,
			PlacedAt: o.PlacedAt,
			Items:    o.Items,
			Total:    o.Total,
		}
	}
	return vs
}
