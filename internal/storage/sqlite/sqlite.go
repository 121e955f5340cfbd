package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

// New initializes a new SQLite storage with the given file path.
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Save(ctx context.Context, record *shorturl.ShortURL) error {
	const op = "storage.sqlite.Save"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO short_urls (key, original_url, created_at, owner_id) VALUES (?, ?, ?, ?)`,
		record.Key, record.OriginalURL, record.CreatedAt, ownerValue(record.OwnerID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrDuplicate)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	record.ID = id

	return nil
}

func (s *Storage) GetByKey(ctx context.Context, key string) (*shorturl.ShortURL, error) {
	const op = "storage.sqlite.GetByKey"

	row := s.db.QueryRowContext(ctx,
		`SELECT id, key, original_url, created_at, owner_id FROM short_urls WHERE key = ?`, key)

	record, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return record, nil
}

func (s *Storage) GetByID(ctx context.Context, id int64) (*shorturl.ShortURL, error) {
	const op = "storage.sqlite.GetByID"

	row := s.db.QueryRowContext(ctx,
		`SELECT id, key, original_url, created_at, owner_id FROM short_urls WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return record, nil
}

func (s *Storage) GetByOwner(ctx context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error) {
	const op = "storage.sqlite.GetByOwner"

	records, err := s.queryRecords(ctx,
		`SELECT id, key, original_url, created_at, owner_id FROM short_urls
		 WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		ownerID, limitValue(take), offsetValue(skip))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) GetAll(ctx context.Context, skip, take int) ([]*shorturl.ShortURL, error) {
	const op = "storage.sqlite.GetAll"

	records, err := s.queryRecords(ctx,
		`SELECT id, key, original_url, created_at, owner_id FROM short_urls
		 ORDER BY id LIMIT ? OFFSET ?`,
		limitValue(take), offsetValue(skip))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) Delete(ctx context.Context, record *shorturl.ShortURL) error {
	const op = "storage.sqlite.Delete"

	if err := deleteRecord(ctx, s.db, record); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteBatch(ctx context.Context, records []*shorturl.ShortURL) error {
	const op = "storage.sqlite.DeleteBatch"

	if records == nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNilBatch)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, record := range records {
		if err := deleteRecord(ctx, tx, record); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	const op = "storage.sqlite.DeleteAllByOwner"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM short_urls WHERE owner_id = ?`, ownerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteAll(ctx context.Context) error {
	const op = "storage.sqlite.DeleteAll"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM short_urls`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) ExistsOriginalURL(ctx context.Context, originalURL string) (bool, error) {
	const op = "storage.sqlite.ExistsOriginalURL"

	exists, err := s.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM short_urls WHERE original_url = ?)`, originalURL)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) ExistsKey(ctx context.Context, key string) (bool, error) {
	const op = "storage.sqlite.ExistsKey"

	exists, err := s.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM short_urls WHERE key = ?)`, key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// UserExists reports whether a user row with the given id exists.
func (s *Storage) UserExists(ctx context.Context, userID string) (bool, error) {
	const op = "storage.sqlite.UserExists"

	exists, err := s.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// IsAdmin reports whether the user holds the admin role. Unknown users
// are not admins.
func (s *Storage) IsAdmin(ctx context.Context, userID string) (bool, error) {
	const op = "storage.sqlite.IsAdmin"

	exists, err := s.exists(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ? AND role = 'admin')`, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (s *Storage) queryRecords(ctx context.Context, query string, args ...any) ([]*shorturl.ShortURL, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*shorturl.ShortURL

	for rows.Next() {
		record, err := scanRecordRow(rows.Scan)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// deleteRecord matches the full record identity, not just the id, so a
// concurrently modified row is reported as a mismatch instead of being
// silently removed.
func deleteRecord(ctx context.Context, db execer, record *shorturl.ShortURL) error {
	if record == nil {
		return storage.ErrRecordMismatch
	}

	res, err := db.ExecContext(ctx,
		`DELETE FROM short_urls WHERE id = ? AND key = ? AND original_url = ? AND owner_id IS ?`,
		record.ID, record.Key, record.OriginalURL, ownerValue(record.OwnerID),
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return storage.ErrRecordMismatch
	}

	return nil
}

func scanRecord(row *sql.Row) (*shorturl.ShortURL, error) {
	record, err := scanRecordRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return record, err
}

func scanRecordRow(scan func(dest ...any) error) (*shorturl.ShortURL, error) {
	var (
		record shorturl.ShortURL
		owner  sql.NullString
	)

	if err := scan(&record.ID, &record.Key, &record.OriginalURL, &record.CreatedAt, &owner); err != nil {
		return nil, err
	}

	if owner.Valid {
		record.OwnerID = &owner.String
	}

	return &record, nil
}

func ownerValue(ownerID *string) any {
	if ownerID == nil {
		return nil
	}

	return *ownerID
}

func limitValue(take int) int {
	if take < 0 {
		return 0
	}

	return take
}

func offsetValue(skip int) int {
	if skip < 0 {
		return 0
	}

	return skip
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error

	return errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
