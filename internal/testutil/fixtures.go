package testutil

import (
	"testing"
	"time"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// NewStores returns empty in-memory stores.
func NewStores(t *testing.T) *clubstore.Stores {
	t.Helper()
	s := clubstore.NewMemory()
	t.Cleanup(func() { _ = s.Close(t.Context()) })
	return s
}

// ErrLog returns an error logger that discards output.
func ErrLog() *uierrors.ErrorLogger {
	return uierrors.NewErrorLogger(zap.NewNop())
}

// Seed creates each record in r and returns them with their ids.
func Seed[T any](t *testing.T, r repo.Repository[T], recs ...T) []T {
	t.Helper()
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		created, err := r.Create(t.Context(), rec)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		out = append(out, created)
	}
	return out
}

// Player returns a valid player record.
func Player(name, position string, number int) models.Player {
	return models.Player{PlayerInput: models.PlayerInput{
		Name:     name,
		Position: position,
		Number:   number,
		Age:      25,
		Active:   true,
	}}
}

// Match returns a fixture record on the given day.
func Match(home, away string, date time.Time, status string) models.Match {
	return models.Match{MatchInput: models.MatchInput{
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Venue:    "Riverside Ground",
		Status:   status,
	}}
}
