// internal/app/features/coaches/handler.go
package coaches

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	*crud.Handler[models.Coach, models.CoachInput]
}

func NewHandler(r repo.Repository[models.Coach], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.Coach, models.CoachInput]{
		Entity: "coaches",
		Noun:   "Coach",
		Plural: "coaches",
		Repo:   r,
		Normalize: func(in *models.CoachInput) {
			in.Name = normalize.Name(in.Name)
			in.Position = normalize.Name(in.Position)
			in.Experience = normalize.Optional(in.Experience)
			in.Nationality = normalize.Optional(in.Nationality)
			in.PhotoURL = normalize.Optional(in.PhotoURL)
			in.Bio = normalize.Optional(in.Bio)
		},
		Log:    logger,
		ErrLog: errLog,
		Audit:  audit,
	}}
}
