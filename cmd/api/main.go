// @title                      Orders API
// @version                    1.0
// @description                Client and order management behind JWT authentication.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/orderdesk/orders-api/docs"
	"github.com/orderdesk/orders-api/internal/api"
	"github.com/orderdesk/orders-api/internal/api/handler"
	"github.com/orderdesk/orders-api/internal/core/security"
	"github.com/orderdesk/orders-api/internal/core/service"
	"github.com/orderdesk/orders-api/internal/infrastructure/db/mongo"
	"github.com/orderdesk/orders-api/internal/infrastructure/db/redis"
	"github.com/orderdesk/orders-api/internal/pkg/config"
	"github.com/orderdesk/orders-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "orders-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	tokens, err := security.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		return err
	}

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Dependencies ---
	clientRepo := mongo.NewClientRepository(db)
	orderRepo := mongo.NewOrderRepository(db)

	authService := service.NewAuthService(
		mongo.NewAuthRepository(db),
		security.NewPasswordHasher(),
		tokens,
		logger.Component("auth"),
	)
	clientService := service.NewClientService(clientRepo, logger.Component("clients"))
	orderService := service.NewOrderService(
		orderRepo,
		clientRepo,
		redis.NewIdempotencyStore(rdb, cfg.Idempotency.TTL),
		logger.Component("orders"),
	)

	e := api.NewRouter(api.Dependencies{
		AuthService:   authService,
		ClientService: clientService,
		OrderService:  orderService,
		Tokens:        tokens,
		HealthChecks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Logger:  logger.Component("http"),
		Swagger: !cfg.IsProduction(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
