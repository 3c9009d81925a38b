// internal/app/features/media/handler.go
package media

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

// Handler serves the photo and video gallery.
type Handler struct {
	*crud.Handler[models.Media, models.MediaInput]
}

func NewHandler(r repo.Repository[models.Media], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.Media, models.MediaInput]{
		Entity: "media",
		Noun:   "Media item",
		Plural: "media",
		Repo:   r,
		Normalize: func(in *models.MediaInput) {
			in.Title = normalize.Name(in.Title)
			in.Type = normalize.Status(in.Type)
			in.URL = normalize.Name(in.URL)
			in.ThumbnailURL = normalize.Optional(in.ThumbnailURL)
			in.Description = normalize.Optional(in.Description)
		},
		ListQuery: filter,
		Log:       logger,
		ErrLog:    errLog,
		Audit:     audit,
	}}
}

// filter applies ?type= (photo or video) and ?limit=.
func filter(r *http.Request, items []models.Media) ([]models.Media, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	switch typ := normalize.Status(r.URL.Query().Get("type")); typ {
	case "":
	case models.MediaPhoto, models.MediaVideo:
		items = crud.Where(items, func(m models.Media) bool { return m.Type == typ })
	default:
		return nil, &crud.QueryError{Param: "type", Msg: "type must be photo or video."}
	}
	return crud.Take(items, n), nil
}
