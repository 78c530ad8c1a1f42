// Package userstore manages console operators on top of a repository
// backend.
package userstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/repository"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

var (
	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Authenticate for an unknown email
	// or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store wraps the users repository.
type Store struct {
	mu   sync.Mutex // serializes Register so ids stay count+1
	repo repository.Repository[string, models.User]
	cost int
}

// New returns a store that hashes new passwords with the given bcrypt cost.
func New(repo repository.Repository[string, models.User], cost int) *Store {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Store{repo: repo, cost: cost}
}

func normEmail(email string) string {
	return strings.TrimSpace(email)
}

// ByEmail returns the user with email.
func (s *Store) ByEmail(ctx context.Context, email string) (models.User, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}
	email = normEmail(email)
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

// Authenticate checks email and password.
func (s *Store) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.ByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a viewer account. The id is the current user count plus
// one and the last login is set to now.
func (s *Store) Register(ctx context.Context, name, email, password string, now time.Time) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("count users: %w", err)
	}

	u := models.User{
		ID:           strconv.FormatInt(n+1, 10),
		Email:        normEmail(email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         models.RoleViewer,
		LastLogin:    &now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return models.User{}, fmt.Errorf("register %s: %w", u.Email, err)
		}
		return models.User{}, err
	}
	return u, nil
}

// Touch records a sign-in time.
func (s *Store) Touch(ctx context.Context, id string, at time.Time) (models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	u.LastLogin = &at
	if _, err := s.repo.Update(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("update last login: %w", err)
	}
	return u, nil
}

// Count returns the number of operators.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
