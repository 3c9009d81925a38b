package contact_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/features/contact"
	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

var valid = map[string]any{
	"name":    "Maria Lopez",
	"email":   "  Maria@Example.COM ",
	"subject": "Season tickets",
	"message": "When do renewals open?",
}

func setup(t *testing.T, limit int) (http.Handler, *clubstore.Stores) {
	t.Helper()
	stores := testutil.NewStores(t)
	limiter := ratelimit.New(limit, time.Minute)
	t.Cleanup(limiter.Stop)
	al := auditlog.New(audit.New(stores.AuditEvents), zap.NewNop(), auditlog.Config{Admin: auditlog.DB})
	h := contact.NewHandler(stores.ContactMessages, limiter, testutil.ErrLog(), al, zap.NewNop())
	return contact.Routes(h, testutil.SessionManager(t)), stores
}

func TestSubmit_PublicAndUnread(t *testing.T) {
	r, stores := setup(t, 5)

	rec := testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid))
	testutil.AssertStatus(t, rec, http.StatusCreated)

	got := testutil.DecodeJSON[models.ContactMessage](t, rec)
	if got.Read {
		t.Error("new message should be unread")
	}
	if got.Email != "maria@example.com" {
		t.Errorf("email not normalized: %q", got.Email)
	}
	if got.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}

	stored, err := stores.ContactMessages.Get(t.Context(), got.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Read {
		t.Error("stored message should be unread")
	}
}

func TestSubmit_IgnoresServerFields(t *testing.T) {
	r, _ := setup(t, 5)
	body := map[string]any{
		"name": "Maria Lopez", "email": "maria@example.com", "subject": "Hi", "message": "Hello",
		"read": true, "createdAt": "2001-01-01T00:00:00Z",
	}

	rec := testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", body))
	testutil.AssertStatus(t, rec, http.StatusCreated)
	got := testutil.DecodeJSON[models.ContactMessage](t, rec)
	if got.Read || got.CreatedAt.Year() == 2001 {
		t.Errorf("client controlled server fields: %+v", got)
	}
}

func TestSubmit_NotInAdminAuditTrail(t *testing.T) {
	r, stores := setup(t, 5)

	testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid)), http.StatusCreated)

	events, err := audit.New(stores.AuditEvents).List(t.Context(), audit.Filter{})
	if err != nil {
		t.Fatalf("List audit: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("visitor submission was audited: %+v", events)
	}
}

func TestSubmit_InvalidEmail(t *testing.T) {
	r, stores := setup(t, 5)
	body := map[string]any{"name": "Maria", "email": "not-an-email", "subject": "Hi", "message": "Hello"}

	testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", body)), http.StatusBadRequest)
	if items, _ := stores.ContactMessages.List(t.Context()); len(items) != 0 {
		t.Errorf("invalid message stored")
	}
}

func TestSubmit_RateLimited(t *testing.T) {
	r, _ := setup(t, 2)

	for i := 0; i < 2; i++ {
		testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid)), http.StatusCreated)
	}
	testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid)), http.StatusTooManyRequests)
}

func TestInbox_AdminOnly(t *testing.T) {
	r, _ := setup(t, 5)
	testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid)), http.StatusCreated)

	for _, target := range []string{"/", "/1"} {
		rec := testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "GET", target, nil), testutil.EditorUser()))
		testutil.AssertStatus(t, rec, http.StatusForbidden)
		rec = testutil.Serve(r, testutil.JSONRequest(t, "GET", target, nil))
		testutil.AssertStatus(t, rec, http.StatusForbidden)
	}
	rec := testutil.Serve(r, testutil.JSONRequest(t, "PUT", "/1/read", nil))
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestMarkRead(t *testing.T) {
	r, stores := setup(t, 5)
	admin := testutil.AdminUser()
	for i := 0; i < 2; i++ {
		testutil.AssertStatus(t, testutil.Serve(r, testutil.JSONRequest(t, "POST", "/", valid)), http.StatusCreated)
	}

	rec := testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "PUT", "/2/read", nil), admin))
	testutil.AssertStatus(t, rec, http.StatusOK)
	if got := testutil.DecodeJSON[models.ContactMessage](t, rec); !got.Read || got.Subject != "Season tickets" {
		t.Errorf("unexpected message after mark read: %+v", got)
	}

	rec = testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "GET", "/?unread=true", nil), admin))
	testutil.AssertStatus(t, rec, http.StatusOK)
	unread := testutil.DecodeJSON[[]models.ContactMessage](t, rec)
	if len(unread) != 1 || unread[0].ID != 1 {
		t.Errorf("unread filter: got %+v", unread)
	}

	rec = testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "PUT", "/9/read", nil), admin))
	testutil.AssertStatus(t, rec, http.StatusNotFound)

	rec = testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "GET", "/?unread=maybe", nil), admin))
	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	events, err := audit.New(stores.AuditEvents).List(t.Context(), audit.Filter{EventType: audit.EventMessageRead})
	if err != nil {
		t.Fatalf("List audit: %v", err)
	}
	if len(events) != 1 || events[0].EntityID != 2 || events[0].ActorID != admin.ID {
		t.Errorf("audit events: %+v", events)
	}
}
