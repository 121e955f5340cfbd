// Package hashkey derives deterministic short key candidates from URLs.
package hashkey

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"shorturl-service/internal/domain/shorturl"
)

// Candidate returns the key candidate for the given input and salt: the
// first characters of the lowercase hex SHA-256 digest. Salt zero hashes
// the raw input; positive salts append their decimal representation
// before hashing, so the candidate sequence for a fixed input is stable.
//
// An empty input is valid here and hashes to the digest of the empty
// string; URL validity is the caller's concern.
func Candidate(input string, salt int) string {
	if salt > 0 {
		input += strconv.Itoa(salt)
	}

	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])[:shorturl.KeyLength]
}
