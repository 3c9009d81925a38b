// internal/app/store/users/fetcher.go
package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
)

// Fetcher reloads session users from the users repository.
type Fetcher struct {
	s *Store
}

// NewFetcher returns an auth.UserFetcher backed by s.
func NewFetcher(s *Store) *Fetcher {
	return &Fetcher{s: s}
}

// FetchUser implements auth.UserFetcher.
func (f *Fetcher) FetchUser(ctx context.Context, id int64) (*auth.SessionUser, error) {
	u, err := f.s.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &auth.SessionUser{ID: u.ID, Name: u.Username, IsAdmin: u.IsAdmin}, nil
}
