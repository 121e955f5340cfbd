package shorturl

import (
	"errors"
	"net/url"
	"time"
)

var (
	// ErrInvalidURL indicates that the URL format is invalid
	ErrInvalidURL = errors.New("invalid URL format")
	// ErrInvalidScheme indicates that the URL scheme is not allowed
	ErrInvalidScheme = errors.New("only http and https schemes are allowed")
)

// KeyLength is the number of characters in a short key.
const KeyLength = 6

// ShortURL is a persisted short link record. ID is assigned by storage
// on save and is zero until then. OwnerID is nil for records created
// anonymously or by the system.
type ShortURL struct {
	ID          int64
	Key         string
	OriginalURL string
	CreatedAt   time.Time
	OwnerID     *string
}

// Equal reports whether two records describe the same row.
// CreatedAt is deliberately excluded from the comparison.
func (u *ShortURL) Equal(other *ShortURL) bool {
	if other == nil {
		return false
	}

	if u.ID != other.ID || u.Key != other.Key || u.OriginalURL != other.OriginalURL {
		return false
	}

	if (u.OwnerID == nil) != (other.OwnerID == nil) {
		return false
	}

	return u.OwnerID == nil || *u.OwnerID == *other.OwnerID
}

// OwnedBy reports whether the record belongs to the given user.
// Anonymous records belong to nobody.
func (u *ShortURL) OwnedBy(userID string) bool {
	return u.OwnerID != nil && *u.OwnerID == userID
}

// ValidateURL validates that the URL is absolute and uses an http or https
// scheme to prevent open redirect vulnerabilities and malicious redirects
func ValidateURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	if parsedURL.Scheme == "" {
		return ErrInvalidURL
	}

	// Only allow http and https schemes
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidScheme
	}

	if parsedURL.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
