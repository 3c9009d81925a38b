// internal/app/features/players/handler.go
package players

import (
	"net/http"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	*crud.Handler[models.Player, models.PlayerInput]
}

func NewHandler(r repo.Repository[models.Player], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.Player, models.PlayerInput]{
		Entity:    "players",
		Noun:      "Player",
		Plural:    "players",
		Repo:      r,
		Normalize: normalizeInput,
		ListQuery: byPosition,
		Log:       logger,
		ErrLog:    errLog,
		Audit:     audit,
	}}
}

func normalizeInput(in *models.PlayerInput) {
	in.Name = normalize.Name(in.Name)
	in.Position = normalize.Name(in.Position)
	in.Nationality = normalize.Optional(in.Nationality)
	in.PhotoURL = normalize.Optional(in.PhotoURL)
	in.Bio = normalize.Optional(in.Bio)
}

// byPosition applies ?position=, matched case-insensitively.
func byPosition(r *http.Request, items []models.Player) ([]models.Player, error) {
	pos := normalize.QueryParam(r.URL.Query().Get("position"))
	if pos == "" {
		return items, nil
	}
	return crud.Where(items, func(p models.Player) bool {
		return normalize.Same(p.Position, pos)
	}), nil
}
