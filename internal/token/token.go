// Package token decodes bearer tokens issued by the LiftLog API server.
//
// The client only reads claims; cryptographic verification is the server's
// job, so tokens are parsed without checking the signature.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode indicates a token that is not a well-formed JWT.
var ErrDecode = errors.New("malformed token")

// Claims are the fields the client reads out of a token.
type Claims struct {
	// Subject is the user ID the token was issued for.
	Subject string
	// ExpiresAt is the expiry as unix seconds.
	ExpiresAt int64
}

// jwtClaims maps the server's token payload. The server puts the user ID
// in a custom "id" claim rather than the registered "sub".
type jwtClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Decode parses a bearer token without verifying its signature and returns
// the embedded claims. Returns an error wrapping ErrDecode when the token
// is not a well-formed JWT.
func Decode(tokenStr string) (Claims, error) {
	parser := jwt.NewParser()

	var claims jwtClaims
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	c := Claims{Subject: claims.ID}
	if claims.ID == "" {
		c.Subject = claims.RegisteredClaims.Subject
	}
	if claims.ExpiresAt != nil {
		c.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return c, nil
}

// Expired reports whether the claims' expiry is in the past.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt < now.Unix()
}
