package jwt

import "github.com/golang-jwt/jwt/v5"

// UserClaims carries the caller's identity. UserID is the identity
// provider's opaque user id; existence and role are re-checked against
// the user oracle on every service call, the token only names the caller.
type UserClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
