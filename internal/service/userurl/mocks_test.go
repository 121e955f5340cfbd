package userurl_test

import (
	"context"
	"io"
	"log/slog"

	"shorturl-service/internal/domain/shorturl"

	"github.com/stretchr/testify/mock"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Save(ctx context.Context, record *shorturl.ShortURL) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockProvider) GetByID(ctx context.Context, id int64) (*shorturl.ShortURL, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*shorturl.ShortURL)
	return record, args.Error(1)
}

func (m *mockProvider) GetByOwner(ctx context.Context, ownerID string, skip, take int) ([]*shorturl.ShortURL, error) {
	args := m.Called(ctx, ownerID, skip, take)
	records, _ := args.Get(0).([]*shorturl.ShortURL)
	return records, args.Error(1)
}

func (m *mockProvider) GetAll(ctx context.Context, skip, take int) ([]*shorturl.ShortURL, error) {
	args := m.Called(ctx, skip, take)
	records, _ := args.Get(0).([]*shorturl.ShortURL)
	return records, args.Error(1)
}

func (m *mockProvider) Delete(ctx context.Context, record *shorturl.ShortURL) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockProvider) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *mockProvider) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockProvider) ExistsOriginalURL(ctx context.Context, originalURL string) (bool, error) {
	args := m.Called(ctx, originalURL)
	return args.Bool(0), args.Error(1)
}

type mockShortener struct {
	mock.Mock
}

func (m *mockShortener) CreateShortURL(ctx context.Context, originalURL string, ownerID *string) (*shorturl.ShortURL, error) {
	args := m.Called(ctx, originalURL, ownerID)
	record, _ := args.Get(0).(*shorturl.ShortURL)
	return record, args.Error(1)
}

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserProvider) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
