package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the accessors the auth flow needs. The embedded
// [jwt.Token] covers signing and parsing; [jwt.RegisteredClaims] exposes the
// standard claim set.
//
// None of the fields serialize to JSON: the only form that leaves the
// process is the compact signed string carried in the Authorization header.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds the standard RFC 7519 claim set
	// (sub, exp, iat, nbf, iss, aud, jti).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID caches the "sub" claim parsed to int64 so the middleware does
	// not re-parse it on every request.
	UserID int64 `json:"-"`
}

// GetUserID reads the "sub" claim and parses it as a base-10 int64.
// It fails when the claim is missing, empty, or not numeric.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer] and returns the compact signed form.
func (t *Token) String() string {
	return t.SignedString
}
