// internal/app/features/standings/handler.go
package standings

import (
	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the league table. Rows list by position; delete removes the
// row outright.
type Handler struct {
	*crud.Handler[models.Standing, models.StandingInput]
}

func NewHandler(r repo.Repository[models.Standing], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.Standing, models.StandingInput]{
		Entity: "standings",
		Noun:   "Standing",
		Plural: "standings",
		Repo:   r,
		Normalize: func(in *models.StandingInput) {
			in.Team = normalize.Name(in.Team)
			in.LogoURL = normalize.Optional(in.LogoURL)
		},
		Log:    logger,
		ErrLog: errLog,
		Audit:  audit,
	}}
}
