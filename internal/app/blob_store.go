package app

import (
	"context"
	"fmt"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/config"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/blob"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/filesystem"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/gcs"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/memory"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/postgres"
	redisrepo "github.com/eugene-petrov-me/nhl-commentary-core/internal/infrastructure/repository/redis"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

// newBlobRepository opens the configured backend. The returned close func
// is nil for backends without a connection.
func newBlobRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (blob.Repository, func() error, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendMemory:
		return memory.NewBlobRepository(), nil, nil
	case config.BlobBackendFilesystem:
		repo, err := filesystem.NewBlobRepository(cfg.BlobDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	case config.BlobBackendGCS:
		client, err := gcs.NewClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		return gcs.NewBlobRepository(client, cfg.GCSBucketName), client.Close, nil
	case config.BlobBackendPostgres:
		return openPostgresBlobs(ctx, cfg, logger)
	case config.BlobBackendRedis:
		return openRedisBlobs(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("unsupported blob backend %q", cfg.BlobBackend)
	}
}

func openPostgresBlobs(ctx context.Context, cfg config.Config, logger *logging.Logger) (blob.Repository, func() error, error) {
	dbURL := PostgresURL(cfg)
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres blob store connected", "db", dbNameFromURL(dbURL))
	return postgres.NewBlobRepository(db), db.Close, nil
}

func openRedisBlobs(ctx context.Context, cfg config.Config, logger *logging.Logger) (blob.Repository, func() error, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("redis blob store connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return redisrepo.NewBlobRepository(client, "", 0), client.Close, nil
}
