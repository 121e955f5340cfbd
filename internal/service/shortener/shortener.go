package shortener

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/hashkey"
	"shorturl-service/internal/lib/metrics"
	"shorturl-service/internal/lib/result"
)

// Provider defines the repository operations key derivation and
// resolution need.
type Provider interface {
	GetByKey(ctx context.Context, key string) (*shorturl.ShortURL, error)
	ExistsKey(ctx context.Context, key string) (bool, error)
}

type Service struct {
	log      *slog.Logger
	provider Provider
}

// New creates a new URL shortening service.
func New(log *slog.Logger, provider Provider) *Service {
	return &Service{
		log:      log,
		provider: provider,
	}
}

// GenerateKey derives a unique short key for the given URL: the first
// six hex characters of the SHA-256 digest of the URL, salted with a
// decimal counter on collisions. The repository existence check is the
// uniqueness oracle, so the same URL yields the same key sequence on
// every run.
//
// The key space is 16^6 (about 16.7 million) values and the retry loop
// is unbounded; with the space fully exhausted it would never return.
// Options if that ever matters: longer keys, or encoding an
// auto-incrementing id (base62) instead of hashing.
func (s *Service) GenerateKey(ctx context.Context, rawURL string) (string, error) {
	const op = "service.shortener.GenerateKey"

	for salt := 0; ; salt++ {
		key := hashkey.Candidate(rawURL, salt)

		exists, err := s.provider.ExistsKey(ctx, key)
		if err != nil {
			return "", fmt.Errorf("%s: failed to check key: %w", op, err)
		}

		if !exists {
			return key, nil
		}

		metrics.KeyCollisionsTotal.Inc()
		s.log.Debug("key collision, retrying with salt",
			slog.String("key", key),
			slog.Int("salt", salt+1),
		)
	}
}

// CreateShortURL derives a key and builds a new, not yet persisted
// record. URL validity and owner existence are the caller's concern,
// which keeps key derivation usable outside the authorization path.
func (s *Service) CreateShortURL(ctx context.Context, originalURL string, ownerID *string) (*shorturl.ShortURL, error) {
	const op = "service.shortener.CreateShortURL"

	key, err := s.GenerateKey(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &shorturl.ShortURL{
		Key:         key,
		OriginalURL: originalURL,
		CreatedAt:   time.Now().UTC(),
		OwnerID:     ownerID,
	}, nil
}

// ResolveByKey looks up the original URL behind a short key.
func (s *Service) ResolveByKey(ctx context.Context, key string) result.Result[string] {
	record, err := s.provider.GetByKey(ctx, key)
	if err != nil {
		return result.FailErr[string](err)
	}

	if record == nil {
		return result.Fail[string](result.CodeNotFound, "url was not found by short key")
	}

	return result.Ok(record.OriginalURL)
}
