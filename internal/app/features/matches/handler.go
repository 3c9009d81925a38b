// internal/app/features/matches/handler.go
package matches

import (
	"net/http"
	"sort"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	*crud.Handler[models.Match, models.MatchInput]
}

func NewHandler(r repo.Repository[models.Match], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.Match, models.MatchInput]{
		Entity:    "matches",
		Noun:      "Match",
		Plural:    "matches",
		Repo:      r,
		Normalize: normalizeInput,
		ListQuery: byStatus,
		Log:       logger,
		ErrLog:    errLog,
		Audit:     audit,
	}}
}

func normalizeInput(in *models.MatchInput) {
	in.HomeTeam = normalize.Name(in.HomeTeam)
	in.AwayTeam = normalize.Name(in.AwayTeam)
	in.Venue = normalize.Name(in.Venue)
	in.Status = normalize.Status(in.Status)
	in.Competition = normalize.Optional(in.Competition)
	in.TicketsURL = normalize.Optional(in.TicketsURL)
	if !in.Date.IsZero() {
		in.Date = in.Date.UTC()
	}
}

func validStatus(s string) bool {
	switch s {
	case models.MatchUpcoming, models.MatchLive, models.MatchCompleted:
		return true
	}
	return false
}

// byStatus applies ?status= to the main fixture list.
func byStatus(r *http.Request, items []models.Match) ([]models.Match, error) {
	status := normalize.Status(r.URL.Query().Get("status"))
	if status == "" {
		return items, nil
	}
	if !validStatus(status) {
		return nil, &crud.QueryError{Param: "status", Msg: "status must be one of: upcoming, live, completed."}
	}
	return crud.Where(items, func(m models.Match) bool { return m.Status == status }), nil
}

// upcoming lists fixtures still to be played, soonest first.
func upcoming(r *http.Request, items []models.Match) ([]models.Match, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	out := crud.Where(items, func(m models.Match) bool { return m.Status == models.MatchUpcoming })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return crud.Take(out, n), nil
}

// completed lists results, most recent first.
func completed(r *http.Request, items []models.Match) ([]models.Match, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	out := crud.Where(items, func(m models.Match) bool { return m.Status == models.MatchCompleted })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return crud.Take(out, n), nil
}
