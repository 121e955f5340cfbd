package userurl

import (
	"context"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/result"
)

// GetShortURLInfo returns the record with the given id. Any existing
// user may view any record's details; reads are not ownership-gated.
func (s *Service) GetShortURLInfo(ctx context.Context, id int64, userID string) result.Result[*shorturl.ShortURL] {
	if r := s.validateCaller(ctx, userID); !r.OK {
		return result.Forward[*shorturl.ShortURL](r)
	}

	if id < 0 {
		return result.Fail[*shorturl.ShortURL](result.CodeInvalidID, "id cannot be negative")
	}

	record, err := s.provider.GetByID(ctx, id)
	if err != nil {
		return result.FailErr[*shorturl.ShortURL](err)
	}

	if record == nil {
		return result.Fail[*shorturl.ShortURL](result.CodeNotFound, "no short url with such id")
	}

	return result.Ok(record)
}
