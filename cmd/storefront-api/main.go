package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/middleware"
	"github.com/brewclub/storefront/internal/catalog"
	"github.com/brewclub/storefront/internal/memory"
	storemongo "github.com/brewclub/storefront/internal/mongo"
	"github.com/brewclub/storefront/internal/ordering"
	"github.com/brewclub/storefront/internal/tenant"
	"github.com/brewclub/storefront/pkg"
	"github.com/go-chi/chi/v5"
)

const (
	appNamespace = "STOREFRONT_API"
	appName      = "storefront-api"
	appVersion   = "0.1.0"
)

// apiModule mounts both storefront handlers behind the simulated-latency
// middleware, so the reference backend behaves like a real remote.
type apiModule struct {
	latency time.Duration
	catalog *catalog.Handler
	orders  *ordering.Handler
}

func (m *apiModule) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(tenant.SimulatedLatency(m.latency))
		m.catalog.RegisterRoutes(r)
		m.orders.RegisterRoutes(r)
	})
}

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// Catalog is the seeded in-memory reference database.
	catalogRepo := memory.NewCatalogRepo()

	// Orders stay in memory unless MongoDB is configured.
	var orderRepo ordering.OrderRepo
	var lifecycles []interface{}
	if mongoURL, _ := config.GetString("db.mongo.url"); mongoURL != "" {
		mongoRepo := storemongo.NewOrderRepo(config, logger)
		orderRepo = mongoRepo
		lifecycles = append(lifecycles, mongoRepo)
	} else {
		orderRepo = memory.NewOrderRepo()
	}

	// Order events are published when NATS is configured.
	var publisher events.Publisher
	if natsURL, _ := config.GetString("nats.url"); natsURL != "" {
		natsPublisher, err := pkg.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("Cannot connect to NATS %s(%s): %v", appName, appVersion, err)
		}
		publisher = natsPublisher
		lifecycles = append(lifecycles, apt.LifecycleHooks{
			OnStop: func(context.Context) error { return natsPublisher.Close() },
		})
	}

	latencyMs, err := strconv.Atoi(config.GetStringOrDef("mock.latency_ms", "600"))
	if err != nil || latencyMs < 0 {
		latencyMs = 600
	}

	module := &apiModule{
		latency: time.Duration(latencyMs) * time.Millisecond,
		catalog: catalog.NewHandler(catalogRepo, config, logger),
		orders: ordering.NewHandler(ordering.HandlerDeps{
			Catalog:   catalogRepo,
			OrderRepo: orderRepo,
			Publisher: publisher,
		}, config, logger),
	}

	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger:      logger,
		DisableCORS: false, // The storefront client is a browser-shaped caller
	})

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", module),
		apt.WithHealthChecks(appName),
	}
	if len(lifecycles) > 0 {
		options = append(options, apt.WithLifecycle(lifecycles...))
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
