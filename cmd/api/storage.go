package main

import (
	"context"
	"fmt"

	"github.com/IgorGrieder/shortlink/internal/config"
	"github.com/IgorGrieder/shortlink/internal/infrastructure/db"
	"github.com/IgorGrieder/shortlink/internal/infrastructure/logger"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"github.com/IgorGrieder/shortlink/internal/storage/memory"
	mongoStorage "github.com/IgorGrieder/shortlink/internal/storage/mongo"
	postgresStorage "github.com/IgorGrieder/shortlink/internal/storage/postgres"
	httpTransport "github.com/IgorGrieder/shortlink/internal/transport/http"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// initStorage opens the configured record store. The returned close func
// releases the connection and must be called once at shutdown.
func initStorage(ctx context.Context, cfg *config.Config) (
	links.LinkRepository,
	httpTransport.Pinger,
	func(),
	error,
) {
	switch cfg.Storage.Backend {
	case config.BackendMongo:
		mongoConn, err := db.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() { _ = mongoConn.Disconnect() }

		linkRepo, err := mongoStorage.NewLinksRepository(mongoConn, mongoStorage.LinksRepositoryOptions{
			Collection: cfg.MongoDB.Collection,
			TTLIndex:   cfg.MongoDB.TTLIndex,
		})
		if err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("init mongo links repository: %w", err)
		}

		logger.Info("Storage backend selected",
			zap.String("backend", config.BackendMongo),
			zap.String("collection", cfg.MongoDB.Collection),
			zap.Bool("ttl_index", cfg.MongoDB.TTLIndex),
		)
		ping := func(ctx context.Context) error { return mongoConn.Client.Ping(ctx, readpref.Primary()) }
		return linkRepo, ping, closeFn, nil

	case config.BackendPostgres:
		pgConn, err := db.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		linkRepo, err := postgresStorage.NewLinksRepository(pgConn)
		if err != nil {
			pgConn.Close()
			return nil, nil, nil, fmt.Errorf("init postgres links repository: %w", err)
		}

		logger.Info("Storage backend selected", zap.String("backend", config.BackendPostgres))
		return linkRepo, pgConn.Pool.Ping, pgConn.Close, nil

	case config.BackendMemory:
		logger.Warn("Storage backend selected, links are lost on restart", zap.String("backend", config.BackendMemory))
		return memory.NewLinksRepository(), nil, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
