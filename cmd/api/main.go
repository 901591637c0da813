package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GateFare/GateFare/internal/config"
	"github.com/GateFare/GateFare/internal/enquiry"
	"github.com/GateFare/GateFare/internal/flights"
	httphandler "github.com/GateFare/GateFare/internal/http"
	"github.com/GateFare/GateFare/internal/idempotency"
	"github.com/GateFare/GateFare/internal/observability"
	"github.com/GateFare/GateFare/internal/rateLimit"
	"github.com/GateFare/GateFare/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOtel, err := observability.SetupOTel(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdownOtel()

	logger := observability.NewLogger()

	sessions := session.NewStore(cfg.SessionTTL, logger)
	catalog := flights.NewCatalog()
	enquiryClient := enquiry.NewClient(cfg.EnquiryURL, logger)
	idemp := idempotency.NewStore(time.Hour)
	rl := rateLimit.NewRateLimiter()

	handlers := httphandler.NewHandlers(cfg, sessions, catalog, enquiryClient, idemp, logger)
	router := httphandler.SetupRouter(handlers, cfg, logger, rl)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sessions.Sweep(ctx, cfg.SweepInterval)
		return nil
	})

	g.Go(func() error {
		logger.WithField("addr", cfg.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("server exited with error")
	}
	logger.Info("server exiting")
}
