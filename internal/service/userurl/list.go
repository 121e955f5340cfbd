package userurl

import (
	"context"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/lib/result"
)

// ListAll returns a page of all records. The guard rejects the request
// only when page AND pageSize are both non-positive; a single
// non-positive parameter passes through. That matches the observed
// behavior this service preserves (likely a latent defect upstream) —
// tightening it to either-invalid would change accepted inputs, so it
// stays as is. The parameters are handed to the repository untouched;
// skip/take semantics are its to define.
func (s *Service) ListAll(ctx context.Context, page, pageSize int) result.Result[[]*shorturl.ShortURL] {
	if page <= 0 && pageSize <= 0 {
		return result.Fail[[]*shorturl.ShortURL](result.CodeInvalidPage,
			"page and page size must be greater than zero")
	}

	records, err := s.provider.GetAll(ctx, page, pageSize)
	if err != nil {
		return result.FailErr[[]*shorturl.ShortURL](err)
	}

	return result.Ok(records)
}

// ListUserURLs returns a page of the caller's own records, same
// pagination contract as ListAll.
func (s *Service) ListUserURLs(ctx context.Context, userID string, page, pageSize int) result.Result[[]*shorturl.ShortURL] {
	if r := s.validateCaller(ctx, userID); !r.OK {
		return result.Forward[[]*shorturl.ShortURL](r)
	}

	if page <= 0 && pageSize <= 0 {
		return result.Fail[[]*shorturl.ShortURL](result.CodeInvalidPage,
			"page and page size must be greater than zero")
	}

	records, err := s.provider.GetByOwner(ctx, userID, page, pageSize)
	if err != nil {
		return result.FailErr[[]*shorturl.ShortURL](err)
	}

	return result.Ok(records)
}
