package save_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/http-server/handlers/url/save"
	"shorturl-service/internal/http-server/middleware/auth"
	"shorturl-service/internal/lib/result"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockURLCreator struct {
	mock.Mock
}

func (m *mockURLCreator) CreateShortURL(ctx context.Context, rawURL, userID string) result.Result[*shorturl.ShortURL] {
	args := m.Called(ctx, rawURL, userID)

	res, _ := args.Get(0).(result.Result[*shorturl.ShortURL])

	return res
}

func TestSaveHandler(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		serviceRes  *result.Result[*shorturl.ShortURL]
		respError   string
		statusCode  int
		withoutUser bool
	}{
		{
			name: "Success",
			url:  "https://google.com",
			serviceRes: ptr(result.Ok(&shorturl.ShortURL{
				ID: 1, Key: "100680", OriginalURL: "https://google.com",
			})),
			statusCode: http.StatusOK,
		},
		{
			name:       "Empty URL",
			url:        "",
			respError:  "field URL is a required field",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Invalid URL",
			url:        "some invalid URL",
			respError:  "field URL is not a valid URL",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Duplicate URL",
			url:        "https://google.com",
			serviceRes: ptr(result.Fail[*shorturl.ShortURL](result.CodeNotUnique, "url already exists")),
			respError:  "url already exists",
			statusCode: http.StatusConflict,
		},
		{
			name:       "Unknown user",
			url:        "https://google.com",
			serviceRes: ptr(result.Fail[*shorturl.ShortURL](result.CodeUnknownUser, "user does not exist")),
			respError:  "user does not exist",
			statusCode: http.StatusForbidden,
		},
		{
			name:       "Service Error",
			url:        "https://google.com",
			serviceRes: ptr(result.FailErr[*shorturl.ShortURL](errors.New("unexpected error"))),
			respError:  "internal error",
			statusCode: http.StatusInternalServerError,
		},
		{
			name:        "Missing user in context",
			url:         "https://google.com",
			withoutUser: true,
			respError:   "failed to get user id",
			statusCode:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := &mockURLCreator{}

			if tc.serviceRes != nil {
				creator.On("CreateShortURL", mock.Anything, tc.url, "user-1").
					Return(*tc.serviceRes).
					Once()
			}

			handler := save.New(slog.New(slog.NewTextHandler(io.Discard, nil)), creator)

			input := fmt.Sprintf(`{"url": "%s"}`, tc.url)

			req, err := http.NewRequest(http.MethodPost, "/url", bytes.NewReader([]byte(input)))
			require.NoError(t, err)

			if !tc.withoutUser {
				req = req.WithContext(auth.ContextWithUserID(req.Context(), "user-1"))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.statusCode, rr.Code)

			var resp save.Response

			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Equal(t, tc.respError, resp.Error)

			if tc.serviceRes != nil && tc.serviceRes.OK {
				require.Equal(t, "100680", resp.Key)
				require.Equal(t, int64(1), resp.ID)
			}

			creator.AssertExpectations(t)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
