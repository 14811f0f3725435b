package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/api"
	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/checkout"
	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/events"
	"github.com/nexusshop/storefront/internal/logger"
	"github.com/nexusshop/storefront/internal/metrics"
	"github.com/nexusshop/storefront/internal/repository"
	"github.com/nexusshop/storefront/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open storage backend
	backend, err := repository.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage backend", zap.Error(err))
	}
	defer backend.Close()

	publisher := events.NewPublisher(cfg.Kafka, log)
	defer publisher.Close()

	m := metrics.New()
	sessions := service.NewSessionManager(backend, service.SessionConfig{
		Pricing: cart.Pricing{
			FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
			FlatShippingFee:       cfg.Checkout.FlatShippingFee,
		},
		DefaultLanguage: domain.Language(cfg.Language),
		FlowOptions:     []checkout.Option{checkout.WithProcessingDelay(cfg.Checkout.ProcessingDelay)},
		IdleTTL:         cfg.Session.IdleTTL,
	}, publisher, m, log)
	go sessions.RunEviction(ctx, cfg.Session.SweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(cfg, sessions, m, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting storefront server",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.Storage.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
