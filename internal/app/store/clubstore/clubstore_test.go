package clubstore

import (
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/store/memory"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestValidBackend(t *testing.T) {
	for _, b := range []string{BackendMemory, BackendMongo, BackendSQLite} {
		if !ValidBackend(b) {
			t.Errorf("expected %q to be valid", b)
		}
	}
	if ValidBackend("postgres") {
		t.Error("expected postgres to be rejected")
	}
}

func TestNewMemory(t *testing.T) {
	s := NewMemory()
	if s.Backend() != BackendMemory {
		t.Errorf("Backend: got %q", s.Backend())
	}
	if err := s.Ping(t.Context()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := s.Close(t.Context()); err != nil {
		t.Errorf("Close: %v", err)
	}

	var nilStores *Stores
	if err := nilStores.Close(t.Context()); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestEntityNames(t *testing.T) {
	names := []string{
		Players.Name, Coaches.Name, Matches.Name, News.Name, BlogPosts.Name, Media.Name,
		Standings.Name, ContactMessages.Name, ClubHistory.Name, Users.Name, AuditEvents.Name,
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate entity name %q", n)
		}
		seen[n] = true
	}
	if !Players.ValidName() || !ContactMessages.ValidName() || !AuditEvents.ValidName() {
		t.Error("entity names must be usable as table names")
	}
}

func TestMatches_SortedByDateAndDefaultStatus(t *testing.T) {
	r := memory.New(Matches)
	ctx := t.Context()
	d := func(day int) time.Time { return time.Date(2024, 9, day, 15, 0, 0, 0, time.UTC) }

	for _, day := range []int{20, 5, 12} {
		in := models.MatchInput{HomeTeam: "Home", AwayTeam: "Away", Date: d(day), Venue: "Ground"}
		if _, err := r.Create(ctx, models.Match{MatchInput: in}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, want := range []int{5, 12, 20} {
		if list[i].Date.Day() != want {
			t.Errorf("list[%d] day = %d, want %d", i, list[i].Date.Day(), want)
		}
		if list[i].Status != models.MatchUpcoming {
			t.Errorf("list[%d] status = %q, want upcoming", i, list[i].Status)
		}
	}
}

func TestNews_DefaultDateAndNewestFirst(t *testing.T) {
	at := time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC)
	fixedNow(t, at)
	r := memory.New(News)
	ctx := t.Context()

	old, err := r.Create(ctx, models.News{NewsInput: models.NewsInput{Title: "old", Content: "c", Date: at.AddDate(0, -1, 0)}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	fresh, err := r.Create(ctx, models.News{NewsInput: models.NewsInput{Title: "fresh", Content: "c"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !fresh.Date.Equal(at) {
		t.Errorf("default date = %v, want %v", fresh.Date, at)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list[0].ID != fresh.ID || list[1].ID != old.ID {
		t.Errorf("expected newest first, got ids %d, %d", list[0].ID, list[1].ID)
	}
}

func TestStandings_SortedByPosition(t *testing.T) {
	r := memory.New(Standings)
	ctx := t.Context()
	for _, pos := range []int{3, 1, 2} {
		if _, err := r.Create(ctx, models.Standing{StandingInput: models.StandingInput{Position: pos, Team: "T"}}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	list, _ := r.List(ctx)
	for i, s := range list {
		if s.Position != i+1 {
			t.Errorf("list[%d].Position = %d", i, s.Position)
		}
	}
}

func TestClubHistory_SortedByYear(t *testing.T) {
	r := memory.New(ClubHistory)
	ctx := t.Context()
	for _, y := range []int{1999, 1905, 1950} {
		if _, err := r.Create(ctx, models.ClubHistory{ClubHistoryInput: models.ClubHistoryInput{Year: y, Title: "t", Description: "d"}}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	list, _ := r.List(ctx)
	if list[0].Year != 1905 || list[2].Year != 1999 {
		t.Errorf("unexpected order %d, %d, %d", list[0].Year, list[1].Year, list[2].Year)
	}
}

func TestContactMessages_ForcedUnread(t *testing.T) {
	at := time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC)
	fixedNow(t, at)
	r := memory.New(ContactMessages)

	m, err := r.Create(t.Context(), models.ContactMessage{
		ContactMessageInput: models.ContactMessageInput{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"},
		Read:                true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Read {
		t.Error("new contact messages must be unread")
	}
	if !m.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", m.CreatedAt, at)
	}
}

func TestOpenSQLite(t *testing.T) {
	s, err := OpenSQLite(t.Context(), t.TempDir()+"/club.db")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close(t.Context())

	if s.Backend() != BackendSQLite {
		t.Errorf("Backend: got %q", s.Backend())
	}
	if err := s.Ping(t.Context()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	p, err := s.Players.Create(t.Context(), models.Player{PlayerInput: models.PlayerInput{Name: "Keeper", Position: "GK", Number: 1, Age: 30}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("first id = %d, want 1", p.ID)
	}
}

func TestDefaultedTimes_MillisecondPrecision(t *testing.T) {
	s := NewMemory()
	n, err := s.News.Create(t.Context(), models.News{NewsInput: models.NewsInput{Title: "t", Content: "c"}})
	if err != nil {
		t.Fatalf("Create news: %v", err)
	}
	m, err := s.ContactMessages.Create(t.Context(), models.ContactMessage{})
	if err != nil {
		t.Fatalf("Create message: %v", err)
	}
	for name, ts := range map[string]time.Time{"news date": n.Date, "createdAt": m.CreatedAt} {
		if ts.IsZero() || ts.Nanosecond()%int(time.Millisecond) != 0 {
			t.Errorf("%s = %v, want whole milliseconds", name, ts)
		}
	}
}
