package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/stitchkart/storefront/config"
	"github.com/stitchkart/storefront/internal/adapter/backend"
	"github.com/stitchkart/storefront/internal/adapter/httpapi"
	"github.com/stitchkart/storefront/internal/adapter/kafka"
	"github.com/stitchkart/storefront/internal/adapter/localstore"
	"github.com/stitchkart/storefront/internal/adapter/payment"
	"github.com/stitchkart/storefront/internal/core/port"
	"github.com/stitchkart/storefront/internal/core/service"
	"github.com/stitchkart/storefront/pkg/schema"
	"github.com/stitchkart/storefront/pkg/toast"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"
)

type eventsProducer interface {
	port.EventEmitter
	Close()
}

type stores struct {
	cart     *localstore.CartStore
	wishlist *localstore.WishlistStore
	session  *localstore.SessionStore
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	db         localstore.DB
	feed       *toast.Feed
	stores     stores
	events     eventsProducer
	httpServer httpapi.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initLocalStores()
	app.initEvents()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initLocalStores() {
	const op = "App.initLocalStores"

	db, err := localstore.Open(app.ctx, app.cfg.StoragePath)
	if err != nil {
		app.fallDown(op, err)
	}

	app.db = db
	app.feed = toast.NewFeed()
	app.stores.cart = localstore.NewCartStore(db)
	app.stores.wishlist = localstore.NewWishlistStore(db)
	app.stores.session = localstore.NewSessionStore(db)
}

// initEvents wires the client-events producer, or a noop one
// when no broker is configured.
func (app *App) initEvents() {
	const op = "App.initEvents"

	if !app.cfg.EventsEnabled() {
		slog.Info("no broker configured, client events are disabled")
		app.events = kafka.NoopProducer{}
		return
	}

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.ClientEventsTopic + "-value"
	serde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var kgoOpts []kgo.Opt
	if app.cfg.BrokerTLSEnabled() {
		tlsCfg, err := kafka.MakeTLSConfig(
			app.cfg.Broker.TLS.CA,
			app.cfg.Broker.TLS.Cert,
			app.cfg.Broker.TLS.Key,
		)
		if err != nil {
			app.fallDown(op, err)
		}
		kgoOpts = append(kgoOpts, kgo.DialTLSConfig(tlsCfg))
	}

	producer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.ClientEventsTopic,
			kgoOpts...,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.events = producer
}

func (app *App) initHTTPServer() {
	client := backend.New(app.cfg.Backend.BaseURL)
	payGateway := payment.New(
		app.cfg.Payment.BaseURL,
		app.cfg.Payment.KeyID,
		app.cfg.Payment.KeySecret,
	)

	deps := httpapi.Deps{
		Catalog: service.NewCatalogService(
			client, app.stores.session, app.events,
		),
		Cart: service.NewCartService(
			app.stores.cart, app.stores.session, client, app.feed, app.events,
		),
		Wishlist: service.NewWishlistService(app.stores.wishlist, app.feed),
		Auth:     service.NewAuthService(app.stores.session, client, app.feed),
		Orders:   service.NewOrdersService(client, app.stores.session),
		Checkout: service.NewCheckoutService(
			app.stores.cart, app.stores.session, client,
			payGateway, app.feed, app.events,
		),
		Feed: app.feed,
	}

	handler := httpapi.NewRouter(deps)
	app.httpServer = httpapi.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("storefront is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("storefront is closing...")

	app.httpServer.Close(ctx)
	app.events.Close()
	app.db.Close()

	slog.Info("storefront is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
