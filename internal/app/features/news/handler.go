// internal/app/features/news/handler.go
package news

import (
	"net/http"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	*crud.Handler[models.News, models.NewsInput]
}

func NewHandler(r repo.Repository[models.News], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.News, models.NewsInput]{
		Entity:    "news",
		Noun:      "Article",
		Plural:    "news",
		Repo:      r,
		Normalize: normalizeInput,
		ListQuery: filter,
		Log:       logger,
		ErrLog:    errLog,
		Audit:     audit,
	}}
}

func normalizeInput(in *models.NewsInput) {
	in.Title = normalize.Name(in.Title)
	in.Content = htmlsanitize.Sanitize(in.Content)
	in.Excerpt = normalize.Optional(in.Excerpt)
	in.ImageURL = normalize.Optional(in.ImageURL)
	in.Category = normalize.Optional(in.Category)
	in.Author = normalize.Optional(in.Author)
}

// filter applies ?category= and ?limit= to the newest-first list.
func filter(r *http.Request, items []models.News) ([]models.News, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	if cat := normalize.QueryParam(r.URL.Query().Get("category")); cat != "" {
		items = crud.Where(items, func(a models.News) bool {
			return a.Category != nil && normalize.Same(*a.Category, cat)
		})
	}
	return crud.Take(items, n), nil
}
