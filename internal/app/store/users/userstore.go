// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12

var (
	// ErrDuplicateUsername is returned when creating a user whose username is taken.
	ErrDuplicateUsername = errors.New("a user with this username already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	errEmptyUsername      = errors.New("username is required")
	errShortPassword      = errors.New("password must be at least 8 characters")
)

type Store struct {
	r repo.Repository[models.User]

	// mu serialises the check-then-insert in Create so two concurrent
	// creates cannot both claim a username.
	mu sync.Mutex
}

func New(r repo.Repository[models.User]) *Store {
	return &Store{r: r}
}

// GetByID loads a user by id. Returns repo.ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.r.Get(ctx, id)
}

// GetByUsername looks up a user by case-insensitive username.
// Returns repo.ErrNotFound if absent.
func (s *Store) GetByUsername(ctx context.Context, username string) (models.User, error) {
	key := text.Fold(strings.TrimSpace(username))
	users, err := s.r.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.UsernameCI == key {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

// Create hashes password and inserts a new user.
func (s *Store) Create(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, errEmptyUsername
	}
	if len(password) < 8 {
		return models.User{}, errShortPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.GetByUsername(ctx, username); err == nil {
		return models.User{}, ErrDuplicateUsername
	} else if !errors.Is(err, repo.ErrNotFound) {
		return models.User{}, err
	}

	u, err := s.r.Create(ctx, models.User{
		Username:     username,
		UsernameCI:   text.Fold(username),
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil && wafflemongo.IsDup(err) {
		// another instance won the race; the unique index caught it
		return models.User{}, ErrDuplicateUsername
	}
	return u, err
}

// Authenticate returns the user when username and password match.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin makes sure an admin account named username exists. An existing
// account is promoted to admin and its password reset; otherwise one is
// created. Reports whether anything changed.
func (s *Store) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	u, err := s.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		if _, err := s.Create(ctx, username, password, true); err != nil {
			return false, fmt.Errorf("create admin: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if u.IsAdmin && bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
		return false, nil
	}
	if len(password) < 8 {
		return false, errShortPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	patch, err := adminPatch(hash)
	if err != nil {
		return false, err
	}
	if _, err := s.r.Update(ctx, u.ID, patch); err != nil {
		return false, fmt.Errorf("promote admin: %w", err)
	}
	return true, nil
}

// hashPassword hashes a password using bcrypt with BcryptCost.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// adminPatch promotes a user to admin with a new password hash.
func adminPatch(hash string) (repo.Patch, error) {
	h, err := json.Marshal(hash)
	if err != nil {
		return nil, err
	}
	return repo.Patch{
		"passwordHash": h,
		"isAdmin":      json.RawMessage(`true`),
	}, nil
}
