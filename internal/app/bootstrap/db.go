// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	"github.com/dalemusser/clubhub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the configured storage backend and builds the stores.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{background: &background{}}

	switch appCfg.StorageBackend {
	case clubstore.BackendMemory:
		logger.Warn("using in-memory storage; records are lost on restart")
		deps.Stores = clubstore.NewMemory()

	case clubstore.BackendSQLite:
		stores, err := clubstore.OpenSQLite(ctx, appCfg.SQLitePath)
		if err != nil {
			return DBDeps{}, err
		}
		logger.Info("connected to SQLite", zap.String("path", appCfg.SQLitePath))
		deps.Stores = stores

	case clubstore.BackendMongo:
		db, err := connectMongo(ctx, appCfg)
		if err != nil {
			return DBDeps{}, err
		}
		logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
		deps.MongoDatabase = db
		deps.Stores = clubstore.NewMongo(db)

	default:
		return DBDeps{}, fmt.Errorf("unknown storage backend %q", appCfg.StorageBackend)
	}

	return deps, nil
}

func connectMongo(ctx context.Context, appCfg AppConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(appCfg.MongoDatabase), nil
}

// EnsureSchema creates MongoDB indexes. The sqlite stores create their tables
// when opened and memory needs nothing.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
