// Package memory provides an in-memory reference implementation of the
// repository contract, used by tests and as the behavioral baseline for
// the SQLite implementation.
package memory

import (
	"context"
	"sync"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/storage"
)

// Storage keeps records in insertion order, which doubles as ID order
// since IDs are assigned sequentially.
type Storage struct {
	mu      sync.RWMutex
	records []shorturl.ShortURL
	nextID  int64
}

func New() *Storage {
	return &Storage{nextID: 1}
}

func (s *Storage) Save(_ context.Context, record *shorturl.ShortURL) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Key == record.Key || s.records[i].OriginalURL == record.OriginalURL {
			return storage.ErrDuplicate
		}
	}

	record.ID = s.nextID
	s.nextID++

	s.records = append(s.records, *record)

	return nil
}

func (s *Storage) GetByKey(_ context.Context, key string) (*shorturl.ShortURL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].Key == key {
			found := s.records[i]
			return &found, nil
		}
	}

	return nil, nil
}

func (s *Storage) GetByID(_ context.Context, id int64) (*shorturl.ShortURL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			found := s.records[i]
			return &found, nil
		}
	}

	return nil, nil
}

func (s *Storage) GetByOwner(_ context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []*shorturl.ShortURL

	for i := range s.records {
		if s.records[i].OwnedBy(ownerID) {
			found := s.records[i]
			owned = append(owned, &found)
		}
	}

	return window(owned, skip, take), nil
}

func (s *Storage) GetAll(_ context.Context, skip, take int) ([]*shorturl.ShortURL, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*shorturl.ShortURL, 0, len(s.records))

	for i := range s.records {
		found := s.records[i]
		all = append(all, &found)
	}

	return window(all, skip, take), nil
}

func (s *Storage) Delete(_ context.Context, record *shorturl.ShortURL) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteLocked(record)
}

func (s *Storage) DeleteBatch(_ context.Context, records []*shorturl.ShortURL) error {
	if records == nil {
		return storage.ErrNilBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching anything so a mismatch
	// in one member leaves storage unchanged.
	for _, record := range records {
		if s.indexOfLocked(record) < 0 {
			return storage.ErrRecordMismatch
		}
	}

	for _, record := range records {
		_ = s.deleteLocked(record)
	}

	return nil
}

func (s *Storage) DeleteAllByOwner(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]

	for i := range s.records {
		if !s.records[i].OwnedBy(ownerID) {
			kept = append(kept, s.records[i])
		}
	}

	s.records = kept

	return nil
}

func (s *Storage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	return nil
}

func (s *Storage) ExistsOriginalURL(_ context.Context, originalURL string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].OriginalURL == originalURL {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) ExistsKey(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].Key == key {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) deleteLocked(record *shorturl.ShortURL) error {
	i := s.indexOfLocked(record)
	if i < 0 {
		return storage.ErrRecordMismatch
	}

	s.records = append(s.records[:i], s.records[i+1:]...)

	return nil
}

func (s *Storage) indexOfLocked(record *shorturl.ShortURL) int {
	if record == nil {
		return -1
	}

	for i := range s.records {
		if s.records[i].Equal(record) {
			return i
		}
	}

	return -1
}

func window(records []*shorturl.ShortURL, skip, take int) []*shorturl.ShortURL {
	if skip < 0 {
		skip = 0
	}

	if skip >= len(records) || take <= 0 {
		return nil
	}

	end := skip + take
	if end > len(records) {
		end = len(records)
	}

	return records[skip:end]
}
