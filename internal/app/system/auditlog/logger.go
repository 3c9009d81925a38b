// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Destination settings for a category.
const (
	All = "all" // store + zap
	DB  = "db"  // store only
	Log = "log" // zap only
	Off = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls sign-in and sign-out events.
	Auth string
	// Admin controls create/update/delete of club content.
	Admin string
}

// Valid reports whether s is a recognised destination.
func Valid(s string) bool {
	switch s {
	case All, DB, Log, Off:
		return true
	}
	return false
}

// Logger writes audit events to the audit store and/or zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a Logger. store may be nil when no category uses "db" or "all".
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{store: store, zapLog: zapLog, config: config}
}

func (l *Logger) logToZap(e audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", e.Category),
		zap.String("event_type", e.EventType),
		zap.Bool("success", e.Success),
		zap.String("ip", e.IP),
	}
	if e.ActorID != 0 {
		fields = append(fields, zap.Int64("actor_id", e.ActorID))
	}
	if e.Entity != "" {
		fields = append(fields, zap.String("entity", e.Entity), zap.Int64("entity_id", e.EntityID))
	}
	if e.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", e.FailureReason))
	}
	for k, v := range e.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if e.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Record writes e according to its category's setting. A nil Logger is a
// no-op so tests can leave it unset.
func (l *Logger) Record(ctx context.Context, e audit.Event) {
	if l == nil {
		return
	}

	setting := All
	switch e.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	}

	if setting == Off || setting == "" {
		return
	}
	if setting == All || setting == Log {
		l.logToZap(e)
	}
	if (setting == All || setting == DB) && l.store != nil {
		if err := l.store.Log(ctx, e); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", e.EventType),
			)
		}
	}
}

func base(r *http.Request, category, eventType string) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	}
}

// --- Authentication Events ---

// LoginSuccess logs a successful sign-in.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, userID int64, username string) {
	e := base(r, audit.CategoryAuth, audit.EventLoginSuccess)
	e.ActorID = userID
	e.Details = map[string]string{"username": username}
	l.Record(ctx, e)
}

// LoginFailed logs a rejected sign-in. eventType is one of the
// audit.EventLoginFailed* constants.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, eventType, username, reason string) {
	e := base(r, audit.CategoryAuth, eventType)
	e.Success = false
	e.FailureReason = reason
	e.Details = map[string]string{"attempted_username": username}
	l.Record(ctx, e)
}

// Logout logs a sign-out. userID is 0 when the caller was anonymous.
func (l *Logger) Logout(ctx context.Context, r *http.Request, userID int64) {
	e := base(r, audit.CategoryAuth, audit.EventLogout)
	e.ActorID = userID
	l.Record(ctx, e)
}

// --- Admin Events ---

// RecordCreated logs a new record in entity.
func (l *Logger) RecordCreated(ctx context.Context, r *http.Request, actorID int64, entity string, id int64) {
	l.admin(ctx, r, audit.EventRecordCreated, actorID, entity, id, nil)
}

// RecordUpdated logs a partial update; fields lists the keys changed.
func (l *Logger) RecordUpdated(ctx context.Context, r *http.Request, actorID int64, entity string, id int64, fields string) {
	l.admin(ctx, r, audit.EventRecordUpdated, actorID, entity, id, map[string]string{"fields_changed": fields})
}

// RecordDeleted logs a deletion.
func (l *Logger) RecordDeleted(ctx context.Context, r *http.Request, actorID int64, entity string, id int64) {
	l.admin(ctx, r, audit.EventRecordDeleted, actorID, entity, id, nil)
}

// MessageRead logs a contact message being marked read.
func (l *Logger) MessageRead(ctx context.Context, r *http.Request, actorID, id int64) {
	l.admin(ctx, r, audit.EventMessageRead, actorID, "contact_messages", id, nil)
}

func (l *Logger) admin(ctx context.Context, r *http.Request, eventType string, actorID int64, entity string, id int64, details map[string]string) {
	e := base(r, audit.CategoryAdmin, eventType)
	e.ActorID = actorID
	e.Entity = entity
	e.EntityID = id
	e.Details = details
	l.Record(ctx, e)
}
