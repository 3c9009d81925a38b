// internal/app/store/clubstore/entities.go
package clubstore

import (
	"time"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// now is swapped in tests that need deterministic timestamps. Millisecond
// precision keeps defaulted times identical on every backend.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

var Players = repo.Entity[models.Player]{
	Name:  "players",
	ID:    func(p models.Player) int64 { return p.ID },
	SetID: func(p *models.Player, id int64) { p.ID = id },
}

var Coaches = repo.Entity[models.Coach]{
	Name:  "coaches",
	ID:    func(c models.Coach) int64 { return c.ID },
	SetID: func(c *models.Coach, id int64) { c.ID = id },
}

// Matches list in kick-off order. The upcoming/completed views re-sort.
var Matches = repo.Entity[models.Match]{
	Name:  "matches",
	ID:    func(m models.Match) int64 { return m.ID },
	SetID: func(m *models.Match, id int64) { m.ID = id },
	Less:  func(a, b models.Match) bool { return a.Date.Before(b.Date) },
	Defaults: func(m *models.Match) {
		if m.Status == "" {
			m.Status = models.MatchUpcoming
		}
	},
}

var News = repo.Entity[models.News]{
	Name:  "news",
	ID:    func(n models.News) int64 { return n.ID },
	SetID: func(n *models.News, id int64) { n.ID = id },
	Less:  func(a, b models.News) bool { return a.Date.After(b.Date) },
	Defaults: func(n *models.News) {
		if n.Date.IsZero() {
			n.Date = now()
		}
	},
}

var BlogPosts = repo.Entity[models.BlogPost]{
	Name:  "blog_posts",
	ID:    func(p models.BlogPost) int64 { return p.ID },
	SetID: func(p *models.BlogPost, id int64) { p.ID = id },
	Less:  func(a, b models.BlogPost) bool { return a.Date.After(b.Date) },
	Defaults: func(p *models.BlogPost) {
		if p.Date.IsZero() {
			p.Date = now()
		}
	},
}

var Media = repo.Entity[models.Media]{
	Name:  "media",
	ID:    func(m models.Media) int64 { return m.ID },
	SetID: func(m *models.Media, id int64) { m.ID = id },
	Less:  func(a, b models.Media) bool { return a.Date.After(b.Date) },
	Defaults: func(m *models.Media) {
		if m.Date.IsZero() {
			m.Date = now()
		}
	},
}

var Standings = repo.Entity[models.Standing]{
	Name:  "standings",
	ID:    func(s models.Standing) int64 { return s.ID },
	SetID: func(s *models.Standing, id int64) { s.ID = id },
	Less:  func(a, b models.Standing) bool { return a.Position < b.Position },
}

// ContactMessages always start unread; CreatedAt is the submission time.
var ContactMessages = repo.Entity[models.ContactMessage]{
	Name:  "contact_messages",
	ID:    func(m models.ContactMessage) int64 { return m.ID },
	SetID: func(m *models.ContactMessage, id int64) { m.ID = id },
	Defaults: func(m *models.ContactMessage) {
		m.Read = false
		m.CreatedAt = now()
	},
}

var ClubHistory = repo.Entity[models.ClubHistory]{
	Name:  "club_history",
	ID:    func(h models.ClubHistory) int64 { return h.ID },
	SetID: func(h *models.ClubHistory, id int64) { h.ID = id },
	Less:  func(a, b models.ClubHistory) bool { return a.Year < b.Year },
}

var Users = repo.Entity[models.User]{
	Name:  "users",
	ID:    func(u models.User) int64 { return u.ID },
	SetID: func(u *models.User, id int64) { u.ID = id },
}

// AuditEvents list newest first.
var AuditEvents = repo.Entity[models.AuditEvent]{
	Name:  "audit_events",
	ID:    func(e models.AuditEvent) int64 { return e.ID },
	SetID: func(e *models.AuditEvent, id int64) { e.ID = id },
	Less:  func(a, b models.AuditEvent) bool { return a.Timestamp.After(b.Timestamp) },
	Defaults: func(e *models.AuditEvent) {
		if e.Timestamp.IsZero() {
			e.Timestamp = now()
		}
	},
}
