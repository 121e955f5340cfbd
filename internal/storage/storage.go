package storage

import (
	"context"
	"errors"

	"shorturl-service/internal/domain/shorturl"
)

var (
	// ErrRecordMismatch is returned by deletions when the record does not
	// match any stored row, typically because another request changed or
	// removed it first.
	ErrRecordMismatch = errors.New("record does not match a stored row")
	// ErrNilBatch is returned by batch deletions when the batch itself is nil.
	ErrNilBatch = errors.New("batch is nil")
	// ErrDuplicate is returned by Save when a uniqueness constraint on the
	// key or the original URL is violated.
	ErrDuplicate = errors.New("record already exists")
)

// Repository is the persistence contract for short URL records.
//
// Lookups report absence with a nil record (or an empty slice) and a nil
// error; only deletions of records storage does not recognize are
// exceptional. Pagination is plain skip/take: skip below zero reads from
// the start, take of zero or less yields nothing.
type Repository interface {
	// Save persists a new record and assigns its ID.
	Save(ctx context.Context, record *shorturl.ShortURL) error

	GetByKey(ctx context.Context, key string) (*shorturl.ShortURL, error)
	GetByID(ctx context.Context, id int64) (*shorturl.ShortURL, error)
	GetByOwner(ctx context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error)
	GetAll(ctx context.Context, skip, take int) ([]*shorturl.ShortURL, error)

	// Delete removes one record; ErrRecordMismatch if no stored row matches.
	Delete(ctx context.Context, record *shorturl.ShortURL) error
	// DeleteBatch removes every record in the batch, ErrNilBatch for a nil
	// batch and ErrRecordMismatch if any member has no matching row.
	DeleteBatch(ctx context.Context, records []*shorturl.ShortURL) error
	// DeleteAllByOwner removes every record owned by the user; removing
	// nothing is not an error.
	DeleteAllByOwner(ctx context.Context, ownerID string) error
	// DeleteAll removes every record unconditionally.
	DeleteAll(ctx context.Context) error

	ExistsOriginalURL(ctx context.Context, originalURL string) (bool, error)
	ExistsKey(ctx context.Context, key string) (bool, error)
}
