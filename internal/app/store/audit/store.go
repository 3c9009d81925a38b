// internal/app/store/audit/store.go
package audit

import (
	"context"
	"fmt"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// Event categories
const (
	CategoryAuth  = "auth"
	CategoryAdmin = "admin"
)

// Auth event types
const (
	EventLoginSuccess             = "login_success"
	EventLoginFailedUserNotFound  = "login_failed_user_not_found"
	EventLoginFailedWrongPassword = "login_failed_wrong_password"
	EventLoginFailedRateLimit     = "login_failed_rate_limit"
	EventLogout                   = "logout"
)

// Admin event types
const (
	EventRecordCreated = "record_created"
	EventRecordUpdated = "record_updated"
	EventRecordDeleted = "record_deleted"
	EventMessageRead   = "contact_message_read"
)

// Event is the stored audit record.
type Event = models.AuditEvent

// Store persists audit events in the configured backend.
type Store struct {
	r repo.Repository[Event]
}

func New(r repo.Repository[Event]) *Store {
	return &Store{r: r}
}

// Log stores an event. Timestamp defaults to now.
func (s *Store) Log(ctx context.Context, e Event) error {
	if _, err := s.r.Create(ctx, e); err != nil {
		return fmt.Errorf("store audit event: %w", err)
	}
	return nil
}

// Filter narrows List. Zero values match everything.
type Filter struct {
	Category  string
	EventType string
	ActorID   int64
	Limit     int
}

// List returns events newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Event, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(all))
	for _, e := range all {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.EventType != "" && e.EventType != f.EventType {
			continue
		}
		if f.ActorID != 0 && e.ActorID != f.ActorID {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
