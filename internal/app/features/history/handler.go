// internal/app/features/history/handler.go
package history

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the club timeline, listed oldest year first.
type Handler struct {
	*crud.Handler[models.ClubHistory, models.ClubHistoryInput]
}

func NewHandler(r repo.Repository[models.ClubHistory], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.ClubHistory, models.ClubHistoryInput]{
		Entity: "club_history",
		Noun:   "History entry",
		Plural: "history entries",
		Repo:   r,
		Normalize: func(in *models.ClubHistoryInput) {
			in.Title = normalize.Name(in.Title)
			in.Description = htmlsanitize.Sanitize(normalize.Name(in.Description))
			in.ImageURL = normalize.Optional(in.ImageURL)
		},
		Log:    logger,
		ErrLog: errLog,
		Audit:  audit,
	}}
}
