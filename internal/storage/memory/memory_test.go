package memory_test

import (
	"context"
	"fmt"
	"testing"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/storage"
	"shorturl-service/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(key, originalURL string, ownerID *string) *shorturl.ShortURL {
	return &shorturl.ShortURL{Key: key, OriginalURL: originalURL, OwnerID: ownerID}
}

func seed(t *testing.T, s *memory.Storage, count int, ownerID *string) []*shorturl.ShortURL {
	t.Helper()

	records := make([]*shorturl.ShortURL, 0, count)

	for i := 0; i < count; i++ {
		record := newRecord(
			fmt.Sprintf("key%03d", i),
			fmt.Sprintf("https://example.com/%d", i),
			ownerID,
		)
		require.NoError(t, s.Save(context.Background(), record))
		records = append(records, record)
	}

	return records
}

func TestStorage_Save(t *testing.T) {
	t.Run("assigns sequential ids", func(t *testing.T) {
		s := memory.New()

		first := newRecord("100680", "https://example.com", nil)
		second := newRecord("e8638b", "https://other.com", nil)

		require.NoError(t, s.Save(context.Background(), first))
		require.NoError(t, s.Save(context.Background(), second))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		s := memory.New()

		require.NoError(t, s.Save(context.Background(), newRecord("100680", "https://example.com", nil)))

		err := s.Save(context.Background(), newRecord("100680", "https://other.com", nil))
		assert.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("rejects duplicate original url", func(t *testing.T) {
		s := memory.New()

		require.NoError(t, s.Save(context.Background(), newRecord("100680", "https://example.com", nil)))

		err := s.Save(context.Background(), newRecord("e8638b", "https://example.com", nil))
		assert.ErrorIs(t, err, storage.ErrDuplicate)
	})
}

func TestStorage_Lookups(t *testing.T) {
	owner := "user-1"
	s := memory.New()
	record := newRecord("100680", "https://example.com", &owner)
	require.NoError(t, s.Save(context.Background(), record))

	t.Run("get by key", func(t *testing.T) {
		found, err := s.GetByKey(context.Background(), "100680")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, record.Equal(found))
	})

	t.Run("get by key absent", func(t *testing.T) {
		found, err := s.GetByKey(context.Background(), "ffffff")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("get by id", func(t *testing.T) {
		found, err := s.GetByID(context.Background(), record.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, record.Equal(found))
	})

	t.Run("get by id absent", func(t *testing.T) {
		found, err := s.GetByID(context.Background(), 9999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("exists by original url", func(t *testing.T) {
		exists, err := s.ExistsOriginalURL(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.ExistsOriginalURL(context.Background(), "https://absent.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("exists by key", func(t *testing.T) {
		exists, err := s.ExistsKey(context.Background(), "100680")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.ExistsKey(context.Background(), "ffffff")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStorage_GetAll_Pagination(t *testing.T) {
	s := memory.New()
	seeded := seed(t, s, 10, nil)

	t.Run("window is a contiguous slice of the full listing", func(t *testing.T) {
		page, err := s.GetAll(context.Background(), 3, 4)
		require.NoError(t, err)
		require.Len(t, page, 4)

		for i, record := range page {
			assert.True(t, seeded[3+i].Equal(record))
		}
	})

	t.Run("window past the end is clipped", func(t *testing.T) {
		page, err := s.GetAll(context.Background(), 8, 5)
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("skip beyond the end yields nothing", func(t *testing.T) {
		page, err := s.GetAll(context.Background(), 50, 5)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("non-positive take yields nothing", func(t *testing.T) {
		page, err := s.GetAll(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("negative skip reads from the start", func(t *testing.T) {
		page, err := s.GetAll(context.Background(), -3, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.True(t, seeded[0].Equal(page[0]))
	})
}

func TestStorage_GetByOwner(t *testing.T) {
	owner := "user-1"
	other := "user-2"

	s := memory.New()
	mine := seed(t, s, 3, &owner)

	theirs := newRecord("zzz001", "https://theirs.example.com", &other)
	require.NoError(t, s.Save(context.Background(), theirs))

	anonymous := newRecord("zzz002", "https://anon.example.com", nil)
	require.NoError(t, s.Save(context.Background(), anonymous))

	page, err := s.GetByOwner(context.Background(), owner, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)

	for i, record := range page {
		assert.True(t, mine[i].Equal(record))
	}
}

func TestStorage_Delete(t *testing.T) {
	t.Run("removes a matching record", func(t *testing.T) {
		s := memory.New()
		record := newRecord("100680", "https://example.com", nil)
		require.NoError(t, s.Save(context.Background(), record))

		require.NoError(t, s.Delete(context.Background(), record))

		found, err := s.GetByID(context.Background(), record.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("rejects a record that was never stored", func(t *testing.T) {
		s := memory.New()

		err := s.Delete(context.Background(), &shorturl.ShortURL{ID: 42, Key: "ffffff"})
		assert.ErrorIs(t, err, storage.ErrRecordMismatch)
	})

	t.Run("rejects a stale record", func(t *testing.T) {
		s := memory.New()
		record := newRecord("100680", "https://example.com", nil)
		require.NoError(t, s.Save(context.Background(), record))

		stale := *record
		stale.OriginalURL = "https://tampered.com"

		err := s.Delete(context.Background(), &stale)
		assert.ErrorIs(t, err, storage.ErrRecordMismatch)
	})
}

func TestStorage_DeleteBatch(t *testing.T) {
	t.Run("removes every member", func(t *testing.T) {
		s := memory.New()
		records := seed(t, s, 4, nil)

		require.NoError(t, s.DeleteBatch(context.Background(), records[:2]))

		remaining, err := s.GetAll(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})

	t.Run("nil batch is a distinct failure", func(t *testing.T) {
		s := memory.New()

		err := s.DeleteBatch(context.Background(), nil)
		assert.ErrorIs(t, err, storage.ErrNilBatch)
	})

	t.Run("one mismatched member fails the batch untouched", func(t *testing.T) {
		s := memory.New()
		records := seed(t, s, 2, nil)

		batch := []*shorturl.ShortURL{records[0], {ID: 42, Key: "ffffff"}}

		err := s.DeleteBatch(context.Background(), batch)
		assert.ErrorIs(t, err, storage.ErrRecordMismatch)

		remaining, getErr := s.GetAll(context.Background(), 0, 10)
		require.NoError(t, getErr)
		assert.Len(t, remaining, 2)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		s := memory.New()
		seed(t, s, 2, nil)

		require.NoError(t, s.DeleteBatch(context.Background(), []*shorturl.ShortURL{}))

		remaining, err := s.GetAll(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)
	})
}

func TestStorage_DeleteAllByOwner(t *testing.T) {
	owner := "user-1"
	other := "user-2"

	t.Run("removes only the owner's records", func(t *testing.T) {
		s := memory.New()
		seed(t, s, 3, &owner)

		theirs := newRecord("zzz001", "https://theirs.example.com", &other)
		require.NoError(t, s.Save(context.Background(), theirs))

		require.NoError(t, s.DeleteAllByOwner(context.Background(), owner))

		remaining, err := s.GetAll(context.Background(), 0, 10)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.True(t, theirs.Equal(remaining[0]))
	})

	t.Run("no records is a no-op, not an error", func(t *testing.T) {
		s := memory.New()

		require.NoError(t, s.DeleteAllByOwner(context.Background(), "nobody"))
	})
}

func TestStorage_DeleteAll(t *testing.T) {
	owner := "user-1"
	s := memory.New()
	seed(t, s, 3, &owner)
	anonymous := newRecord("zzz001", "https://anon.example.com", nil)
	require.NoError(t, s.Save(context.Background(), anonymous))

	require.NoError(t, s.DeleteAll(context.Background()))

	remaining, err := s.GetAll(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
