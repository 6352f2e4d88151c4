package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pocketledger/internal/config"
	"pocketledger/internal/db"
	"pocketledger/internal/events/kafka"
	httpserver "pocketledger/internal/http"
	"pocketledger/internal/http/handlers"
	"pocketledger/internal/http/middleware"
	redisstore "pocketledger/internal/redis"
	"pocketledger/internal/repository"
	"pocketledger/internal/service"
	"pocketledger/internal/session"
)

// App wires ledger service dependencies.
type App struct {
	server    *httpserver.Server
	db        *sql.DB
	redis     *redis.Client
	publisher *kafka.Publisher
	logger    *zap.Logger
}

// New constructs application graph. Redis and Kafka are wired only when
// configured; the core deployment needs nothing but Postgres.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgresDB(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	app := &App{
		db:     sqlDB,
		logger: logger,
	}

	var registry service.SessionRegistry
	if cfg.Redis.Addr != "" {
		client, err := redisstore.NewClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redis = client
		registry = redisstore.NewSessionRegistry(client, cfg.SessionTTL())
	}

	var publisher service.EventPublisher
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		app.publisher = kafka.NewPublisher(brokers, cfg.Kafka.Topic)
		publisher = app.publisher
	}

	txRepo := repository.NewTransactionRepository(sqlDB)
	ledgerService := service.NewLedgerService(txRepo, registry, publisher, logger)

	cookie := session.CookieConfig{
		Name: cfg.Session.CookieName,
		TTL:  cfg.SessionTTL(),
	}

	routes := httpserver.Routes{
		CreateTransaction: handlers.NewCreateTransactionHandler(ledgerService, cookie, logger),
		ListTransactions:  handlers.NewListTransactionsHandler(ledgerService, logger),
		GetTransaction:    handlers.NewGetTransactionHandler(ledgerService, logger),
		Summary:           handlers.NewSummaryHandler(ledgerService, logger),
		Health:            handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes, middleware.SessionGuard(cookie.Name))
	app.server = httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return app, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources in reverse construction order.
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close kafka publisher", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
