// internal/app/features/blog/handler.go
package blog

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
	*crud.Handler[models.BlogPost, models.BlogPostInput]
}

func NewHandler(r repo.Repository[models.BlogPost], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{Handler: &crud.Handler[models.BlogPost, models.BlogPostInput]{
		Entity:    "blog_posts",
		Noun:      "Blog post",
		Plural:    "blog posts",
		Repo:      r,
		Normalize: normalizeInput,
		ListQuery: filter,
		Log:       logger,
		ErrLog:    errLog,
		Audit:     audit,
	}}
}

func normalizeInput(in *models.BlogPostInput) {
	in.Title = normalize.Name(in.Title)
	in.Content = htmlsanitize.Sanitize(in.Content)
	in.Excerpt = normalize.Optional(in.Excerpt)
	in.ImageURL = normalize.Optional(in.ImageURL)
	in.Tags = normalize.Tags(in.Tags)
}

// filter applies ?authorId=, ?tag= and ?limit=. The author id is not checked
// against the users store.
func filter(r *http.Request, items []models.BlogPost) ([]models.BlogPost, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	author, err := crud.PositiveInt(r, "authorId")
	if err != nil {
		return nil, err
	}
	if author > 0 {
		items = crud.Where(items, func(p models.BlogPost) bool { return p.AuthorID == int64(author) })
	}
	if tag := normalize.QueryParam(r.URL.Query().Get("tag")); tag != "" {
		items = crud.Where(items, func(p models.BlogPost) bool {
			for _, t := range p.Tags {
				if normalize.Same(t, tag) {
					return true
				}
			}
			return false
		})
	}
	return crud.Take(items, n), nil
}
