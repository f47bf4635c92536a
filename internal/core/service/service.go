package service

import (
	"time"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var (
	_ port.CatalogReader     = (*Service)(nil)
	_ port.CartManager       = (*Service)(nil)
	_ port.WishlistManager   = (*Service)(nil)
	_ port.Authenticator     = (*Service)(nil)
	_ port.CheckoutProcessor = (*Service)(nil)
)

const (
	defaultTaxRate      = "0.08"
	defaultDeliveryDays = 5
)

type Service struct {
	fakestore port.FakeStoreCatalog
	reactbd   port.ReactBDCatalog
	carts     port.CartStorage
	wishlists port.WishlistStorage
	sessions  port.SessionStorage
	orders    port.OrdersProducer
	history   port.OrderHistoryReader

	taxRate      decimal.Decimal
	deliveryDays int
	now          func() time.Time
	snapshot     *snapshot
}

type Opt func(*Service)

// OrdersOpt enables publishing of placed orders and reading of the
// order history. Either may be nil.
func OrdersOpt(p port.OrdersProducer, r port.OrderHistoryReader) Opt {
	return func(s *Service) {
		s.orders = p
		s.history = r
	}
}

// CacheTTLOpt keeps the merged catalog for ttl. Zero or negative ttl
// rebuilds the catalog on every read.
func CacheTTLOpt(ttl time.Duration) Opt {
	return func(s *Service) {
		s.snapshot.ttl = ttl
	}
}

func TaxRateOpt(rate float64) Opt {
	return func(s *Service) {
		s.taxRate = decimal.NewFromFloat(rate)
	}
}

func DeliveryDaysOpt(days int) Opt {
	return func(s *Service) {
		s.deliveryDays = days
	}
}

func ClockOpt(now func() time.Time) Opt {
	return func(s *Service) {
		s.now = now
		s.snapshot.now = now
	}
}

func New(
	fakestore port.FakeStoreCatalog,
	reactbd port.ReactBDCatalog,
	carts port.CartStorage,
	wishlists port.WishlistStorage,
	sessions port.SessionStorage,
	opts ...Opt,
) Service {
	s := Service{
		fakestore:    fakestore,
		reactbd:      reactbd,
		carts:        carts,
		wishlists:    wishlists,
		sessions:     sessions,
		taxRate:      decimal.RequireFromString(defaultTaxRate),
		deliveryDays: defaultDeliveryDays,
		now:          time.Now,
		snapshot:     &snapshot{now: time.Now},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
