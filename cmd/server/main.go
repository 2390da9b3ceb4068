package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dquispe/burbuja/internal"
	"github.com/dquispe/burbuja/internal/cart"
	"github.com/dquispe/burbuja/internal/delivery"
	"github.com/dquispe/burbuja/internal/directory"
	"github.com/dquispe/burbuja/internal/events"
	"github.com/dquispe/burbuja/internal/format"
	"github.com/dquispe/burbuja/internal/handler"
	"github.com/dquispe/burbuja/internal/notify"
	"github.com/dquispe/burbuja/internal/order"
	"github.com/dquispe/burbuja/internal/pricing"
	"github.com/dquispe/burbuja/internal/share"
	"github.com/dquispe/burbuja/internal/telemetry"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Formatting layer shared by QR payloads and messages
	formatter := format.Formatter{
		DateTimeLayout: cfg.Business.DateTimeLayout,
		CurrencyPrefix: cfg.Business.CurrencyPrefix,
	}

	// Client directory (in-memory for the single-store install)
	logger.Info().Msg("initializing client directory")
	clientes := directory.NewInMemory()

	// Pricing advisor and catalog lookup
	advisor := pricing.NewCatalogAdvisor()
	lookup := &pricing.MockLookup{Entries: []pricing.CatalogEntry{
		{Nombre: "Camisa", Precio: decimal.NewFromInt(5)},
		{Nombre: "Pantalón", Precio: decimal.NewFromInt(6)},
		{Nombre: "Edredón matrimonial", Precio: decimal.NewFromInt(18)},
		{Nombre: "Terno", Precio: decimal.NewFromInt(25)},
	}}

	// Delivery window calculator
	windows := delivery.NewCalculator()

	// Order finalizer and stores
	logger.Info().Msg("initializing order finalizer")
	finalizer := order.NewFinalizer(order.NewSequence(), windows, formatter)
	drafts := cart.NewStore()
	orders := order.NewStore()

	// Notification composer
	composer := notify.NewComposer(cfg.Business.Name, formatter)

	// Order handoff publisher
	var publisher events.Publisher = events.Noop{}
	if cfg.NATS.Enabled {
		logger.Info().Str("url", cfg.NATS.URL).Msg("connecting to order broker")
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("order broker connection failed: %w", err)
		}
		defer natsPub.Close()
		publisher = natsPub
	}

	// Business metrics
	metrics := telemetry.NewBusinessMetrics(prometheus.DefaultRegisterer)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	h := handler.New(handler.Deps{
		Directory: clientes,
		Advisor:   advisor,
		Lookup:    lookup,
		Drafts:    drafts,
		Orders:    orders,
		Finalizer: finalizer,
		Windows:   windows,
		Composer:  composer,
		QRSink:    share.Noop{},
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    logger,
	})
	h.Register(e)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
