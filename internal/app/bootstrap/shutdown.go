// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background work and closes the storage backend.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	deps.background.stopAll()

	if deps.Stores != nil {
		logger.Info("closing storage", zap.String("backend", deps.Stores.Backend()))
		if err := deps.Stores.Close(ctx); err != nil {
			logger.Error("storage close failed", zap.Error(err))
			return err
		}
	}
	return nil
}
