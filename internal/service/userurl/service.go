// Package userurl is the authorization and validation gate above the
// repository: every public operation validates the caller, validates the
// input, then checks ownership or role before touching storage. Expected
// conditions come back as coded failures in a result envelope; only
// unexpected lower-layer faults are wrapped as uncoded ones.
package userurl

import (
	"context"
	"log/slog"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/result"
)

// Provider defines the repository operations the gate needs.
type Provider interface {
	Save(ctx context.Context, record *shorturl.ShortURL) error
	GetByID(ctx context.Context, id int64) (*shorturl.ShortURL, error)
	GetByOwner(ctx context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error)
	GetAll(ctx context.Context, skip, take int) ([]*shorturl.ShortURL, error)
	Delete(ctx context.Context, record *shorturl.ShortURL) error
	DeleteAllByOwner(ctx context.Context, ownerID string) error
	DeleteAll(ctx context.Context) error
	ExistsOriginalURL(ctx context.Context, originalURL string) (bool, error)
}

// Shortener derives keys and builds new records.
type Shortener interface {
	CreateShortURL(ctx context.Context, originalURL string, ownerID *string) (*shorturl.ShortURL, error)
}

// UserProvider is the identity oracle: it answers existence and role
// questions and nothing else, so any auth backend fits behind it.
type UserProvider interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	log       *slog.Logger
	provider  Provider
	shortener Shortener
	users     UserProvider
}

// New creates a new user-scoped URL service.
func New(log *slog.Logger, provider Provider, shortener Shortener, users UserProvider) *Service {
	return &Service{
		log:       log,
		provider:  provider,
		shortener: shortener,
		users:     users,
	}
}

func (s *Service) validateCaller(ctx context.Context, userID string) result.Result[result.Void] {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return result.FailErr[result.Void](err)
	}

	if !exists {
		return result.Fail[result.Void](result.CodeUnknownUser, "user does not exist")
	}

	return result.Done()
}
