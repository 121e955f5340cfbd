package userurl

import (
	"context"
	"log/slog"

	"shorturl-service/internal/lib/result"
)

// DeleteShortURL deletes a single record. The caller must own it or
// hold the admin role; ownership is never reassigned, only checked.
func (s *Service) DeleteShortURL(ctx context.Context, id int64, userID string) result.Result[result.Void] {
	const op = "service.userurl.DeleteShortURL"

	if r := s.validateCaller(ctx, userID); !r.OK {
		return r
	}

	if id < 0 {
		return result.Fail[result.Void](result.CodeInvalidID, "id cannot be negative")
	}

	record, err := s.provider.GetByID(ctx, id)
	if err != nil {
		return result.FailErr[result.Void](err)
	}

	if record == nil {
		return result.Fail[result.Void](result.CodeNotFound, "no short url with such id")
	}

	owned := record.OwnedBy(userID)

	admin, err := s.users.IsAdmin(ctx, userID)
	if err != nil {
		return result.FailErr[result.Void](err)
	}

	if !owned && !admin {
		return result.Fail[result.Void](result.CodeForbidden, "no rights for deletion")
	}

	if !owned {
		s.log.Info("admin deleting url",
			slog.String("op", op),
			slog.Int64("id", id),
			slog.String("admin", userID),
		)
	}

	if err := s.provider.Delete(ctx, record); err != nil {
		return result.FailErr[result.Void](err)
	}

	return result.Done()
}

// DeleteAllUserURLs deletes every record the caller owns. Owning
// nothing is a no-op, not an error.
func (s *Service) DeleteAllUserURLs(ctx context.Context, userID string) result.Result[result.Void] {
	if r := s.validateCaller(ctx, userID); !r.OK {
		return r
	}

	if err := s.provider.DeleteAllByOwner(ctx, userID); err != nil {
		return result.FailErr[result.Void](err)
	}

	return result.Done()
}

// DeleteAllAsAdmin deletes every record in the store regardless of
// owner. Admin role required.
func (s *Service) DeleteAllAsAdmin(ctx context.Context, userID string) result.Result[result.Void] {
	const op = "service.userurl.DeleteAllAsAdmin"

	if r := s.validateCaller(ctx, userID); !r.OK {
		return r
	}

	admin, err := s.users.IsAdmin(ctx, userID)
	if err != nil {
		return result.FailErr[result.Void](err)
	}

	if !admin {
		return result.Fail[result.Void](result.CodeForbidden, "no rights for deletion")
	}

	s.log.Info("admin purging all urls", slog.String("op", op), slog.String("admin", userID))

	if err := s.provider.DeleteAll(ctx); err != nil {
		return result.FailErr[result.Void](err)
	}

	return result.Done()
}
