package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/sweet-layers/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"

	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/sweet-layers/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/sweet-layers/internal/cart/infra/adapter"
	cartmemory "github.com/dwikikusuma/sweet-layers/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/sweet-layers/internal/cart/infra/postgres"

	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/sweet-layers/internal/catalog/grpc"
	cmemory "github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	cpostgres "github.com/dwikikusuma/sweet-layers/internal/catalog/infra/postgres"

	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/sweet-layers/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/sweet-layers/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/sweet-layers/internal/order/app"
	ordergrpc "github.com/dwikikusuma/sweet-layers/internal/order/grpc"
	ordermemory "github.com/dwikikusuma/sweet-layers/internal/order/infra/memory"
	orderpg "github.com/dwikikusuma/sweet-layers/internal/order/infra/postgres"

	"github.com/dwikikusuma/sweet-layers/pkg/config"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/dwikikusuma/sweet-layers/pkg/postgres"
	"github.com/dwikikusuma/sweet-layers/pkg/rpc"
	"github.com/dwikikusuma/sweet-layers/pkg/shutdown"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	sim := latency.New(cfg.MockLatencyScale, cfg.MockFailureRate)

	var pool *pgxpool.Pool
	if cfg.UsesPostgres() {
		var err error
		pool, err = postgres.Open(ctx, postgres.Config{
			Host: cfg.Postgres.Host,
			Port: cfg.Postgres.Port,
			User: cfg.Postgres.User,
			Pass: cfg.Postgres.Pass,
			DB:   cfg.Postgres.DB,
		})
		if err != nil {
			fatal(log, "db open failed", err)
		}
		defer pool.Close()
	}

	// Catalog
	productRepo, categoryRepo := mustCatalogRepos(ctx, cfg, pool, sim, log)
	catalogSvc := catalogapp.NewService(productRepo, categoryRepo, log.With(slog.String("component", "catalog")))

	// Cart
	cartSvc := cartapp.NewService(
		mustSessionRepo(ctx, cfg, pool, log),
		cartadapter.NewCatalogPricer(catalogSvc),
		log.With(slog.String("component", "cart")),
	)

	// Orders
	orderSvc := orderapp.NewService(mustOrderRepo(ctx, cfg, pool, sim, log), log.With(slog.String("component", "order")))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		10,
		log.With(slog.String("component", "checkout")),
	)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(log, "listen failed", err, slog.String("addr", addr))
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		rpc.UnaryRecover(log),
		rpc.UnaryLogging(log),
	))
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(checkoutSvc))
	orderv1.RegisterOrderServiceServer(grpcServer, ordergrpc.NewServer(orderSvc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	for _, name := range []string{
		"",
		catalogv1.CatalogService_ServiceDesc.ServiceName,
		cartv1.CartService_ServiceDesc.ServiceName,
		checkoutv1.CheckoutService_ServiceDesc.ServiceName,
		orderv1.OrderService_ServiceDesc.ServiceName,
	} {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("grpc starting",
			slog.String("addr", addr),
			slog.String("catalog_store", cfg.CatalogStore),
			slog.String("cart_store", cfg.CartStore),
			slog.String("order_store", cfg.OrderStore),
		)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepSessions(gctx, cartSvc, cfg.CartSweepInterval, cfg.CartSessionTTL, log)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		healthSrv.Shutdown()
		if !shutdown.Graceful(cfg.ShutdownTimeout, grpcServer.GracefulStop, grpcServer.Stop) {
			log.Warn("graceful stop timeout, forcing stop")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("storefront stopped with error", slog.Any("err", err))
	}
	log.Info("bye")
}

func mustCatalogRepos(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, sim *latency.Simulator, log *slog.Logger) (catalogapp.ProductRepo, catalogapp.CategoryRepo) {
	products, err := cmemory.SeedProducts()
	if err != nil {
		fatal(log, "load product seed", err)
	}
	categories, err := cmemory.SeedCategories()
	if err != nil {
		fatal(log, "load category seed", err)
	}

	switch cfg.CatalogStore {
	case config.StoreMemory:
		return cmemory.NewProductRepo(products, sim), cmemory.NewCategoryRepo(categories, sim)
	case config.StorePostgres:
		if err := cpostgres.EnsureSchema(ctx, pool, products, categories); err != nil {
			fatal(log, "catalog schema failed", err)
		}
		return cpostgres.NewProductRepo(pool), cpostgres.NewCategoryRepo(pool)
	}
	fatal(log, "unsupported catalog store", fmt.Errorf("CATALOG_STORE=%q", cfg.CatalogStore))
	return nil, nil
}

func mustSessionRepo(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, log *slog.Logger) cartapp.SessionRepo {
	switch cfg.CartStore {
	case config.StoreMemory:
		return cartmemory.NewSessionRepo()
	case config.StorePostgres:
		repo := cartpg.NewSessionRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			fatal(log, "cart schema failed", err)
		}
		return repo
	}
	fatal(log, "unsupported cart store", fmt.Errorf("CART_STORE=%q", cfg.CartStore))
	return nil
}

func mustOrderRepo(ctx context.Context, cfg config.Config, pool *pgxpool.Pool, sim *latency.Simulator, log *slog.Logger) orderapp.OrderRepo {
	switch cfg.OrderStore {
	case config.StoreMemory:
		return ordermemory.NewOrderRepo(nil, sim)
	case config.StorePostgres:
		repo := orderpg.NewOrderRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			fatal(log, "order schema failed", err)
		}
		return repo
	}
	fatal(log, "unsupported order store", fmt.Errorf("ORDER_STORE=%q", cfg.OrderStore))
	return nil
}

func sweepSessions(ctx context.Context, svc *cartapp.Service, every, idleFor time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Sweep(ctx, idleFor); err != nil {
				log.Warn("cart sweep failed", slog.Any("err", err))
			}
		}
	}
}

func fatal(log *slog.Logger, msg string, err error, attrs ...any) {
	log.Error(msg, append([]any{slog.Any("err", err)}, attrs...)...)
	os.Exit(1)
}
