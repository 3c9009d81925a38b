package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func testConfig() AppConfig {
	return AppConfig{
		StorageBackend:    clubstore.BackendMemory,
		SQLitePath:        "club.db",
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "clubhub_test",
		SessionKey:        devSessionKey,
		SessionName:       "clubhub-session",
		SessionMaxAge:     time.Hour,
		AdminUsername:     "admin",
		AdminPassword:     "matchday-2026",
		AuditLogAuth:      "db",
		AuditLogAdmin:     "db",
		ContactRateLimit:  3,
		ContactRateWindow: time.Minute,
	}
}

func TestValidateConfig(t *testing.T) {
	dev := &config.CoreConfig{Env: "dev"}
	prod := &config.CoreConfig{Env: "prod"}

	tests := []struct {
		name    string
		core    *config.CoreConfig
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"defaults ok", dev, func(*AppConfig) {}, ""},
		{"unknown backend", dev, func(c *AppConfig) { c.StorageBackend = "postgres" }, "storage_backend"},
		{"sqlite without path", dev, func(c *AppConfig) { c.StorageBackend = "sqlite"; c.SQLitePath = "" }, "sqlite_path"},
		{"short session key", dev, func(c *AppConfig) { c.SessionKey = "short" }, "session_key"},
		{"dev key in prod", prod, func(*AppConfig) {}, "development default"},
		{"weak admin password", dev, func(c *AppConfig) { c.AdminPassword = "abc" }, "admin_password"},
		{"blank admin password ok", dev, func(c *AppConfig) { c.AdminPassword = "" }, ""},
		{"bad audit setting", dev, func(c *AppConfig) { c.AuditLogAdmin = "verbose" }, "audit_log_admin"},
		{"zero contact limit", dev, func(c *AppConfig) { c.ContactRateLimit = 0 }, "contact_rate_limit"},
		{"zero session age", dev, func(c *AppConfig) { c.SessionMaxAge = 0 }, "session_max_age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(tt.core, cfg, testLogger())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConnectDB_SQLite(t *testing.T) {
	cfg := testConfig()
	cfg.StorageBackend = clubstore.BackendSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "data", "club.db")
	ctx := context.Background()

	deps, err := ConnectDB(ctx, nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Stores.Backend() != clubstore.BackendSQLite {
		t.Errorf("backend = %q", deps.Stores.Backend())
	}
	if err := EnsureSchema(ctx, nil, cfg, deps, testLogger()); err != nil {
		t.Errorf("EnsureSchema: %v", err)
	}
	if err := Shutdown(ctx, nil, cfg, deps, testLogger()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestEnsureAdmin_CreatesAndPromotes(t *testing.T) {
	ctx := context.Background()
	deps, err := ConnectDB(ctx, nil, testConfig(), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	users := userstore.New(deps.Stores.Users)

	if _, err := users.Create(ctx, "Admin", "old-password", false); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := ensureAdmin(ctx, deps, "admin", "matchday-2026", testLogger()); err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}

	u, err := users.Authenticate(ctx, "admin", "matchday-2026")
	if err != nil {
		t.Fatalf("admin cannot sign in: %v", err)
	}
	if !u.IsAdmin {
		t.Error("existing account was not promoted")
	}
	all, _ := deps.Stores.Users.List(ctx)
	if len(all) != 1 {
		t.Errorf("expected the existing account to be reused, have %d users", len(all))
	}
}

func TestEnsureAdmin_SkippedWithoutPassword(t *testing.T) {
	ctx := context.Background()
	deps, _ := ConnectDB(ctx, nil, testConfig(), testLogger())

	if err := ensureAdmin(ctx, deps, "admin", "", testLogger()); err != nil {
		t.Fatalf("ensureAdmin: %v", err)
	}
	if all, _ := deps.Stores.Users.List(ctx); len(all) != 0 {
		t.Errorf("no user expected, got %d", len(all))
	}
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	cfg := testConfig()
	cfg.AdminPassword = ""
	cfg.TimeoutShort = 750 * time.Millisecond

	deps, _ := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err := Startup(context.Background(), nil, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if timeouts.Short() != 750*time.Millisecond {
		t.Errorf("Short() = %v", timeouts.Short())
	}
	if timeouts.Medium() != timeouts.DefaultMedium {
		t.Errorf("unset Medium changed to %v", timeouts.Medium())
	}
}
