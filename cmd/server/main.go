package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"corpreg/internal/events"
	"corpreg/internal/idempotency"
	"corpreg/internal/platform/config"
	"corpreg/internal/platform/httpserver"
	"corpreg/internal/platform/logger"
	"corpreg/internal/platform/metrics"
	"corpreg/internal/platform/postgres"
	"corpreg/internal/platform/redis"
	"corpreg/internal/registry/handler"
	registrymetrics "corpreg/internal/registry/metrics"
	"corpreg/internal/registry/seed"
	"corpreg/internal/registry/service"
	"corpreg/internal/registry/store"
	httptransport "corpreg/internal/transport/http"
	"corpreg/pkg/platform/circuit"
)

const (
	serviceName    = "corpreg"
	serviceVersion = "1.0.0"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	task := flag.String("task", "", "admin task to run instead of serving: seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, log, *task)
	stop()
	if err != nil {
		log.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, task string) error {
	db, err := postgres.Open(ctx, postgres.Config{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db, log); err != nil {
		return err
	}

	st := store.NewPostgres(db)
	tx := newRegistryPostgresTx(db, cfg.Database.TxTimeout)

	switch task {
	case "":
	case "seed":
		_, err := seed.New(tx, seed.WithLogger(log)).Run(ctx)
		return err
	default:
		return fmt.Errorf("unknown admin task %q", task)
	}

	return serve(ctx, cfg, log, db, st, tx)
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, db *sql.DB, st store.Store, tx store.TxRunner) error {
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher, err := newPublisher(ctx, cfg.Events, log)
	if err != nil {
		return err
	}
	defer publisher.Close()

	svc, err := service.New(st, tx,
		service.WithLogger(log),
		service.WithMetrics(registrymetrics.New()),
		service.WithPublisher(publisher),
	)
	if err != nil {
		return err
	}

	checks := []httptransport.HealthCheck{{Name: "database", Check: db.PingContext}}
	var handlerOpts []handler.Option
	if redisClient != nil {
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
		idem := idempotency.NewMiddleware(idempotency.NewRedisStore(redisClient, cfg.Redis.IdempotencyTTL), log)
		handlerOpts = append(handlerOpts, handler.WithCompositeMiddleware(idem.Handler))
	}

	router := httptransport.NewRouter(httptransport.Config{
		Logger:      log,
		Metrics:     metrics.New(),
		APIPrefix:   cfg.Server.APIPrefix,
		CORSOrigins: cfg.Server.CORSOrigins,
		Service:     httptransport.ServiceInfo{Name: serviceName, Version: serviceVersion},
		Checks:      checks,
	}, handler.New(svc, log, handlerOpts...))

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.ReadHeaderTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server",
			"addr", cfg.Server.Addr,
			"api_prefix", cfg.Server.APIPrefix,
			"events_backend", cfg.Events.Backend,
			"idempotency", redisClient != nil,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newPublisher connects the configured broker behind a circuit breaker.
func newPublisher(ctx context.Context, cfg config.Events, log *slog.Logger) (events.Publisher, error) {
	var (
		broker events.Publisher
		err    error
	)
	switch cfg.Backend {
	case config.EventsKafka:
		broker, err = events.NewKafka(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
	case config.EventsRabbitMQ:
		broker, err = events.NewRabbitMQ(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	default:
		return events.Noop{}, nil
	}
	if err != nil {
		return nil, err
	}
	return events.NewGuarded(broker, circuit.New(cfg.Backend), log), nil
}
