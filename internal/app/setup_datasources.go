package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/datasources/memory"
	"github.com/jbeshir/webtoon-feed/internal/datasources/redis"
	"github.com/jbeshir/webtoon-feed/internal/datasources/sqldb"
	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/migrations"
)

// SetupDatasetRepository connects the store named by STORAGE_DRIVER.
func SetupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORAGE_DRIVER"); driver {
	case "memory":
		return memory.NewSeeded(), nil
	case "mysql":
		db, err := sqldb.ConnectMySQL(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if MustGetEnvAsBoolean(ctx, "MYSQL_AUTO_MIGRATE") {
			if err := migrations.Run(db, migrations.DialectMySQL); err != nil {
				return nil, fmt.Errorf("migrating MySQL: %w", err)
			}
		}
		return seedCatalog(ctx, sqldb.NewMySQLRepository(db))
	case "sqlite":
		db, err := sqldb.ConnectSQLite(ctx, MustGetEnvAsString(ctx, "SQLITE_PATH"))
		if err != nil {
			return nil, fmt.Errorf("connecting to SQLite: %w", err)
		}
		return seedCatalog(ctx, sqldb.NewSQLiteRepository(db))
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

func seedCatalog(ctx context.Context, repo *sqldb.Repository) (datasources.DatasetRepository, error) {
	if !MustGetEnvAsBoolean(ctx, "SEED_CATALOG") {
		return repo, nil
	}

	seeded, err := repo.SeedCatalog(ctx, domain.SampleCatalog())
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	if seeded {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "seeded empty catalog with sample items")
	}
	return repo, nil
}

// SetupRecommendationCache connects the cache named by RECOMMENDATION_CACHE_DRIVER.
func SetupRecommendationCache(ctx context.Context) (datasources.RecommendationCache, error) {
	switch driver := MustGetEnvAsString(ctx, "RECOMMENDATION_CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullRecommendationCache{}, nil
	case "redis":
		client, err := redis.Connect(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			GetEnvAsString("REDIS_PASSWORD", ""),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return redis.NewRecommendationCache(client, MustGetEnvAsDuration(ctx, "RECOMMENDATION_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown recommendation cache driver [%s]", driver)
	}
}
