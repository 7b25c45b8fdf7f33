package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/sweet-layers/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"
	"github.com/dwikikusuma/sweet-layers/pkg/config"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/dwikikusuma/sweet-layers/pkg/rpc"
	"github.com/dwikikusuma/sweet-layers/pkg/shutdown"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	conn, err := rpc.Dial(cfg.StorefrontAddr)
	if err != nil {
		log.Error("storefront dial failed", slog.Any("err", err), slog.String("addr", cfg.StorefrontAddr))
		os.Exit(1)
	}
	defer conn.Close()

	e := newRouter(log, clients{
		catalog:  catalogv1.NewCatalogServiceClient(conn),
		cart:     cartv1.NewCartServiceClient(conn),
		checkout: checkoutv1.NewCheckoutServiceClient(conn),
		orders:   orderv1.NewOrderServiceClient(conn),
		health:   healthpb.NewHealthClient(conn),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("storefront", cfg.StorefrontAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", slog.Any("err", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("gateway stopped with error", slog.Any("err", err))
	}
	log.Info("bye")
}
