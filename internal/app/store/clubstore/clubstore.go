// Package clubstore bundles the per-entity repositories (club content, users and the audit trail) into one object with
// an explicit lifecycle: opened at startup, pinged by health checks, closed at
// shutdown. Each repository owns its own state; nothing is shared between them.
package clubstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dalemusser/clubhub/internal/app/store/memory"
	mongostore "github.com/dalemusser/clubhub/internal/app/store/mongo"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/store/sqlite"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Backend names accepted by the storage_backend setting.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// ValidBackend reports whether name is a supported backend.
func ValidBackend(name string) bool {
	switch name {
	case BackendMemory, BackendMongo, BackendSQLite:
		return true
	}
	return false
}

type Stores struct {
	Players         repo.Repository[models.Player]
	Coaches         repo.Repository[models.Coach]
	Matches         repo.Repository[models.Match]
	News            repo.Repository[models.News]
	BlogPosts       repo.Repository[models.BlogPost]
	Media           repo.Repository[models.Media]
	Standings       repo.Repository[models.Standing]
	ContactMessages repo.Repository[models.ContactMessage]
	ClubHistory     repo.Repository[models.ClubHistory]
	Users           repo.Repository[models.User]
	AuditEvents     repo.Repository[models.AuditEvent]

	backend string
	ping    func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Backend returns the name of the backend holding the records.
func (s *Stores) Backend() string { return s.backend }

// Ping checks that the backend is reachable.
func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases backend resources. Safe to call on a nil *Stores.
func (s *Stores) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewMemory returns fresh, empty in-memory stores.
func NewMemory() *Stores {
	return &Stores{
		Players:         memory.New(Players),
		Coaches:         memory.New(Coaches),
		Matches:         memory.New(Matches),
		News:            memory.New(News),
		BlogPosts:       memory.New(BlogPosts),
		Media:           memory.New(Media),
		Standings:       memory.New(Standings),
		ContactMessages: memory.New(ContactMessages),
		ClubHistory:     memory.New(ClubHistory),
		Users:           memory.New(Users),
		AuditEvents:     memory.New(AuditEvents),
		backend:         BackendMemory,
	}
}

// NewMongo binds stores to collections in db. The caller owns the client;
// Close disconnects it.
func NewMongo(db *mongo.Database) *Stores {
	client := db.Client()
	return &Stores{
		Players:         mongostore.New(db, Players),
		Coaches:         mongostore.New(db, Coaches),
		Matches:         mongostore.New(db, Matches),
		News:            mongostore.New(db, News),
		BlogPosts:       mongostore.New(db, BlogPosts),
		Media:           mongostore.New(db, Media),
		Standings:       mongostore.New(db, Standings),
		ContactMessages: mongostore.New(db, ContactMessages),
		ClubHistory:     mongostore.New(db, ClubHistory),
		Users:           mongostore.New(db, Users),
		AuditEvents:     mongostore.New(db, AuditEvents),
		backend:         BackendMongo,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}
}

// NewSQLite creates the entity tables in db if needed. Close closes db.
func NewSQLite(ctx context.Context, db *sql.DB) (*Stores, error) {
	s := &Stores{
		backend: BackendSQLite,
		ping:    db.PingContext,
		close:   func(context.Context) error { return db.Close() },
	}

	var err error
	if s.Players, err = sqlite.New(ctx, db, Players); err != nil {
		return nil, err
	}
	if s.Coaches, err = sqlite.New(ctx, db, Coaches); err != nil {
		return nil, err
	}
	if s.Matches, err = sqlite.New(ctx, db, Matches); err != nil {
		return nil, err
	}
	if s.News, err = sqlite.New(ctx, db, News); err != nil {
		return nil, err
	}
	if s.BlogPosts, err = sqlite.New(ctx, db, BlogPosts); err != nil {
		return nil, err
	}
	if s.Media, err = sqlite.New(ctx, db, Media); err != nil {
		return nil, err
	}
	if s.Standings, err = sqlite.New(ctx, db, Standings); err != nil {
		return nil, err
	}
	if s.ContactMessages, err = sqlite.New(ctx, db, ContactMessages); err != nil {
		return nil, err
	}
	if s.ClubHistory, err = sqlite.New(ctx, db, ClubHistory); err != nil {
		return nil, err
	}
	if s.Users, err = sqlite.New(ctx, db, Users); err != nil {
		return nil, err
	}
	if s.AuditEvents, err = sqlite.New(ctx, db, AuditEvents); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenSQLite opens the database file at path and builds stores on it.
func OpenSQLite(ctx context.Context, path string) (*Stores, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s, err := NewSQLite(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
