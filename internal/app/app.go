package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/memory"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/niksmo/storefront/pkg/schema"
)

type feeds struct {
	fakestore upstream.FakeStore
	reactbd   upstream.ReactBD
}

type stores struct {
	sqldb     *storage.SQLDB
	carts     port.CartStorage
	wishlists port.WishlistStorage
	sessions  port.SessionStorage
}

type orders struct {
	producer    kafka.OrdersProducer
	historyProc *kafka.OrderHistoryProcessor
	historyView *kafka.OrderHistoryView
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	feeds      feeds
	stores     stores
	orders     *orders
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initFeeds()
	app.initStores()
	app.initOrders()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initFeeds() {
	const op = "App.initFeeds"
	c := app.cfg.Catalog

	opts := []upstream.Opt{
		upstream.TimeoutOpt(c.Timeout),
		upstream.AttemptsOpt(c.Attempts),
		upstream.BackoffOpt(retry.ExponentialBackoff(c.Backoff)),
	}

	fakestore, err := upstream.NewFakeStore(c.FakeStoreURL, opts...)
	if err != nil {
		app.fallDown(op, err)
	}

	reactbd, err := upstream.NewReactBD(c.ReactBDURL, opts...)
	if err != nil {
		app.fallDown(op, err)
	}

	app.feeds = feeds{fakestore: fakestore, reactbd: reactbd}
}

// initStores uses PostgreSQL when a DSN is configured and process memory
// otherwise.
func (app *App) initStores() {
	const op = "App.initStores"

	if app.cfg.SQLDB == "" {
		slog.Warn("sql database is not configured, client state is kept in memory", "op", op)
		m := memory.New()
		app.stores = stores{carts: m, wishlists: m, sessions: m}
		return
	}

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.stores = stores{
		sqldb:     &sqldb,
		carts:     storage.NewCartsRepository(sqldb),
		wishlists: storage.NewWishlistsRepository(sqldb),
		sessions:  storage.NewSessionsRepository(sqldb),
	}
}

func (app *App) initOrders() {
	const op = "App.initOrders"
	b := app.cfg.Broker

	if !b.Enabled() {
		slog.Warn("broker is not configured, order events are disabled", "op", op)
		return
	}

	var tlsConfig *tls.Config
	if b.TLS.Enabled() {
		tlsConfig = adapter.MakeTLSConfig(b.TLS.CA, b.TLS.Cert, b.TLS.Key)
		kafka.UseTLS(tlsConfig)
	}

	identifier, err := schema.NewRegistryIdentifier(b.SchemaRegistryURLs...)
	if err != nil {
		app.fallDown(op, err)
	}

	orderSerde, err := schema.NewSerdeOrderV1(
		app.ctx,
		schema.SubjectOpt(b.Topics.Orders+"-value"),
		schema.SchemaIdentifierOpt(identifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(app.ctx, b.SeedBrokers, b.Topics.Orders, tlsConfig),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	historyProc, err := kafka.NewOrderHistoryProc(
		b.SeedBrokers,
		b.Topics.Orders,
		b.Consumers.OrderHistoryGroup,
		orderSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	historyView, err := kafka.NewOrderHistoryView(
		b.SeedBrokers, b.Consumers.OrderHistoryGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.orders = &orders{
		producer:    producer,
		historyProc: historyProc,
		historyView: historyView,
	}
}

func (app *App) initCoreService() {
	opts := []service.Opt{
		service.CacheTTLOpt(app.cfg.Catalog.CacheTTL),
		service.TaxRateOpt(app.cfg.Checkout.TaxRate),
		service.DeliveryDaysOpt(app.cfg.Checkout.DeliveryDays),
	}
	if app.orders != nil {
		opts = append(opts, service.OrdersOpt(app.orders.producer, app.orders.historyView))
	}

	app.service = service.New(
		app.feeds.fakestore,
		app.feeds.reactbd,
		app.stores.carts,
		app.stores.wishlists,
		app.stores.sessions,
		opts...,
	)
}

func (app *App) initInboundAdapters() {
	r := httphandler.NewRouter()
	httphandler.RegisterCatalog(r, app.service)
	httphandler.RegisterCart(r, app.service)
	httphandler.RegisterWishlist(r, app.service)
	httphandler.RegisterAuth(r, app.service)
	httphandler.RegisterCheckout(r, app.service)

	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, r, app.cfg.HTTPHandlerTimeout,
	)
}

// Run starts the order history processor and view, waits until they are
// prepared, then starts serving HTTP. stopFn is called when any of them
// stops.
func (app *App) Run(stopFn context.CancelFunc) {
	if app.orders != nil {
		var wg sync.WaitGroup
		wg.Add(2)
		go app.orders.historyProc.Run(app.ctx, stopFn, &wg)
		go app.orders.historyView.Run(app.ctx, stopFn, &wg)
		wg.Wait()
	}

	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.orders != nil {
		app.orders.historyProc.Close()
		app.orders.producer.Close()
	}

	if app.stores.sqldb != nil {
		app.stores.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
