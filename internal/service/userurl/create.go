package userurl

import (
	"context"
	"errors"
	"log/slog"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/result"
	"shorturl-service/internal/storage"
)

// CreateShortURL validates the caller and the URL, enforces URL
// uniqueness, then derives a key and persists the record. The
// existence check here is best effort; losing the race to a concurrent
// create surfaces through the storage uniqueness constraint and is
// reported as NotUnique all the same.
func (s *Service) CreateShortURL(ctx context.Context, rawURL, userID string) result.Result[*shorturl.ShortURL] {
	const op = "service.userurl.CreateShortURL"

	if r := s.validateCaller(ctx, userID); !r.OK {
		return result.Forward[*shorturl.ShortURL](r)
	}

	if err := shorturl.ValidateURL(rawURL); err != nil {
		return result.Fail[*shorturl.ShortURL](result.CodeInvalidURL, "invalid url")
	}

	exists, err := s.provider.ExistsOriginalURL(ctx, rawURL)
	if err != nil {
		return result.FailErr[*shorturl.ShortURL](err)
	}

	if exists {
		return result.Fail[*shorturl.ShortURL](result.CodeNotUnique, "url already exists")
	}

	record, err := s.shortener.CreateShortURL(ctx, rawURL, &userID)
	if err != nil {
		s.log.Error("failed to build short url record",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)

		return result.FailErr[*shorturl.ShortURL](err)
	}

	if err := s.provider.Save(ctx, record); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return result.Fail[*shorturl.ShortURL](result.CodeNotUnique, "url already exists")
		}

		s.log.Error("failed to persist short url",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)

		return result.FailErr[*shorturl.ShortURL](err)
	}

	return result.Ok(record)
}
