// Package repotest holds a backend-independent test suite for
// repo.Repository implementations.
package repotest

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
)

// Widget is the record type the suite stores.
type Widget struct {
	ID   int64     `bson:"_id" json:"id"`
	Name string    `bson:"name" json:"name"`
	Rank int       `bson:"rank" json:"rank"`
	Note *string   `bson:"note,omitempty" json:"note,omitempty"`
	Flag bool      `bson:"flag" json:"flag"`
	Seen time.Time `bson:"seen" json:"seen"` // defaults to a time finer than a millisecond
}

var defaultSeen = time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.UTC)

// WidgetEntity sorts by Rank, defaults an empty Name to "unnamed" and fills
// in Seen.
var WidgetEntity = repo.Entity[Widget]{
	Name:  "widgets",
	ID:    func(w Widget) int64 { return w.ID },
	SetID: func(w *Widget, id int64) { w.ID = id },
	Less:  func(a, b Widget) bool { return a.Rank < b.Rank },
	Defaults: func(w *Widget) {
		if w.Name == "" {
			w.Name = "unnamed"
		}
		if w.Seen.IsZero() {
			w.Seen = defaultSeen
		}
	},
}

// Factory returns a fresh, empty repository for one subtest.
type Factory func(t *testing.T) repo.Repository[Widget]

func testContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func strPtr(s string) *string { return &s }

// Run executes the suite against repositories produced by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("IDsStrictlyIncreasing", func(t *testing.T) { testIDsStrictlyIncreasing(t, newRepo(t)) })
	t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, newRepo(t)) })
	t.Run("Defaults", func(t *testing.T) { testDefaults(t, newRepo(t)) })
	t.Run("UpdateMerge", func(t *testing.T) { testUpdateMerge(t, newRepo(t)) })
	t.Run("UpdateIdempotent", func(t *testing.T) { testUpdateIdempotent(t, newRepo(t)) })
	t.Run("UpdateNotFound", func(t *testing.T) { testUpdateNotFound(t, newRepo(t)) })
	t.Run("DeleteFinality", func(t *testing.T) { testDeleteFinality(t, newRepo(t)) })
	t.Run("IDsNotReused", func(t *testing.T) { testIDsNotReused(t, newRepo(t)) })
	t.Run("ListOrder", func(t *testing.T) { testListOrder(t, newRepo(t)) })
	t.Run("ConcurrentCreate", func(t *testing.T) { testConcurrentCreate(t, newRepo(t)) })
}

func testIDsStrictlyIncreasing(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	var last int64
	for i := 0; i < 5; i++ {
		w, err := r.Create(ctx, Widget{Name: "w", Rank: i})
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		if w.ID <= last {
			t.Fatalf("id %d not greater than previous %d", w.ID, last)
		}
		last = w.ID
	}
}

func testRoundTrip(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	created, err := r.Create(ctx, Widget{Name: "alpha", Rank: 3, Note: strPtr("hello"), Flag: true})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := r.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("Get = %+v, want %+v", got, created)
	}
}

func testDefaults(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	created, err := r.Create(ctx, Widget{Rank: 1})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "unnamed" {
		t.Errorf("Name: got %q, want %q", created.Name, "unnamed")
	}
}

func testUpdateMerge(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	created, err := r.Create(ctx, Widget{Name: "beta", Rank: 2, Note: strPtr("keep me")})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := r.Update(ctx, created.ID, repo.Patch{
		"rank": json.RawMessage(`7`),
		"id":   json.RawMessage(`999`),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed: got %d, want %d", updated.ID, created.ID)
	}
	if updated.Rank != 7 {
		t.Errorf("Rank: got %d, want 7", updated.Rank)
	}
	if updated.Name != "beta" {
		t.Errorf("Name: got %q, want %q", updated.Name, "beta")
	}
	if updated.Note == nil || *updated.Note != "keep me" {
		t.Errorf("Note: got %v, want %q", updated.Note, "keep me")
	}

	cleared, err := r.Update(ctx, created.ID, repo.Patch{"note": json.RawMessage(`null`)})
	if err != nil {
		t.Fatalf("Update (clear) failed: %v", err)
	}
	if cleared.Note != nil {
		t.Errorf("Note: got %q, want nil", *cleared.Note)
	}

	got, err := r.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !reflect.DeepEqual(got, cleared) {
		t.Errorf("Get after Update = %+v, want %+v", got, cleared)
	}
}

func testUpdateIdempotent(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	created, err := r.Create(ctx, Widget{Name: "gamma", Rank: 4})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	same, err := r.Update(ctx, created.ID, repo.Patch{})
	if err != nil {
		t.Fatalf("empty Update failed: %v", err)
	}
	if !reflect.DeepEqual(same, created) {
		t.Errorf("empty Update changed record: got %+v, want %+v", same, created)
	}

	patch := repo.Patch{"name": json.RawMessage(`"delta"`), "flag": json.RawMessage(`true`)}
	once, err := r.Update(ctx, created.ID, patch)
	if err != nil {
		t.Fatalf("first Update failed: %v", err)
	}
	twice, err := r.Update(ctx, created.ID, patch)
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("repeated Update differs: %+v vs %+v", once, twice)
	}
}

func testUpdateNotFound(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	_, err := r.Update(ctx, 424242, repo.Patch{"rank": json.RawMessage(`1`)})
	if !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Update missing: got %v, want ErrNotFound", err)
	}
	if _, err := r.Get(ctx, 424242); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Get missing: got %v, want ErrNotFound", err)
	}
}

func testDeleteFinality(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	created, err := r.Create(ctx, Widget{Name: "epsilon"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ok, err := r.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: got (%v, %v), want (true, nil)", ok, err)
	}
	if _, err := r.Get(ctx, created.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Get after Delete: got %v, want ErrNotFound", err)
	}
	ok, err = r.Delete(ctx, created.ID)
	if err != nil || ok {
		t.Errorf("second Delete: got (%v, %v), want (false, nil)", ok, err)
	}
}

func testIDsNotReused(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	first, err := r.Create(ctx, Widget{Name: "one"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := r.Create(ctx, Widget{Name: "two"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := r.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	third, err := r.Create(ctx, Widget{Name: "three"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if third.ID <= second.ID || third.ID == first.ID {
		t.Errorf("id reused or not increasing: first=%d second=%d third=%d", first.ID, second.ID, third.ID)
	}
}

func testListOrder(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	for _, rank := range []int{3, 1, 2, 1} {
		if _, err := r.Create(ctx, Widget{Name: "w", Rank: rank}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	items, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("List returned %d items, want 4", len(items))
	}
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Rank > cur.Rank || (prev.Rank == cur.Rank && prev.ID > cur.ID) {
			t.Errorf("List out of order at %d: %+v before %+v", i, prev, cur)
		}
	}
}

func testConcurrentCreate(t *testing.T, r repo.Repository[Widget]) {
	ctx, cancel := testContext()
	defer cancel()

	const n = 20
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := r.Create(ctx, Widget{Name: "c", Rank: i})
			if err != nil {
				t.Errorf("Create failed: %v", err)
				return
			}
			ids <- w.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
}
