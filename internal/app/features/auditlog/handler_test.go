package auditlog_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/features/auditlog"
	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (http.Handler, *audit.Store) {
	t.Helper()
	stores := testutil.NewStores(t)
	store := audit.New(stores.AuditEvents)
	h := auditlog.NewHandler(store, testutil.ErrLog(), zap.NewNop())
	return auditlog.Routes(h, testutil.SessionManager(t)), store
}

func seed(t *testing.T, store *audit.Store) {
	t.Helper()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []audit.Event{
		{Timestamp: base, Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, ActorID: 1, Success: true},
		{Timestamp: base.Add(time.Minute), Category: audit.CategoryAdmin, EventType: audit.EventRecordCreated, ActorID: 1, Entity: "players", EntityID: 1, Success: true},
		{Timestamp: base.Add(2 * time.Minute), Category: audit.CategoryAuth, EventType: audit.EventLoginFailedWrongPassword, Success: false},
		{Timestamp: base.Add(3 * time.Minute), Category: audit.CategoryAdmin, EventType: audit.EventRecordDeleted, ActorID: 3, Entity: "players", EntityID: 1, Success: true},
	}
	for _, e := range events {
		if err := store.Log(t.Context(), e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}
}

func TestServeList_AdminOnly(t *testing.T) {
	r, _ := newRouter(t)

	rec := testutil.Serve(r, testutil.JSONRequest(t, "GET", "/", nil))
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	rec = testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "GET", "/", nil), testutil.EditorUser()))
	testutil.AssertStatus(t, rec, http.StatusForbidden)

	rec = testutil.Serve(r, testutil.WithUser(testutil.JSONRequest(t, "GET", "/", nil), testutil.AdminUser()))
	testutil.AssertStatus(t, rec, http.StatusOK)
	if got := testutil.DecodeJSON[[]audit.Event](t, rec); len(got) != 0 {
		t.Errorf("expected empty log, got %d events", len(got))
	}
}

func TestServeList_Filters(t *testing.T) {
	r, store := newRouter(t)
	seed(t, store)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{audit.EventRecordDeleted, audit.EventLoginFailedWrongPassword, audit.EventRecordCreated, audit.EventLoginSuccess}},
		{"?category=auth", []string{audit.EventLoginFailedWrongPassword, audit.EventLoginSuccess}},
		{"?eventType=record_created", []string{audit.EventRecordCreated}},
		{"?actorId=1&limit=1", []string{audit.EventRecordCreated}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := testutil.WithUser(testutil.JSONRequest(t, "GET", "/"+tt.query, nil), testutil.AdminUser())
			rec := testutil.Serve(r, req)
			testutil.AssertStatus(t, rec, http.StatusOK)

			got := testutil.DecodeJSON[[]audit.Event](t, rec)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, et := range tt.want {
				if got[i].EventType != et {
					t.Errorf("event %d: %q, want %q", i, got[i].EventType, et)
				}
			}
		})
	}
}

func TestServeList_BadQuery(t *testing.T) {
	r, _ := newRouter(t)
	for _, q := range []string{"?limit=0", "?actorId=x"} {
		req := testutil.WithUser(testutil.JSONRequest(t, "GET", "/"+q, nil), testutil.AdminUser())
		testutil.AssertStatus(t, testutil.Serve(r, req), http.StatusBadRequest)
	}
}
