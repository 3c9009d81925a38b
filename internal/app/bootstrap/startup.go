// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})

	return ensureAdmin(ctx, deps, appCfg.AdminUsername, appCfg.AdminPassword, logger)
}

// ensureAdmin creates or promotes the bootstrap admin account. A blank
// password skips it.
func ensureAdmin(ctx context.Context, deps DBDeps, username, password string, logger *zap.Logger) error {
	if password == "" {
		logger.Info("admin_password not set; skipping admin bootstrap")
		return nil
	}
	changed, err := userstore.New(deps.Stores.Users).EnsureAdmin(ctx, username, password)
	if err != nil {
		logger.Error("admin bootstrap failed", zap.String("username", username), zap.Error(err))
		return err
	}
	if changed {
		logger.Info("admin account ready", zap.String("username", username))
	}
	return nil
}
