// Copyright (c) 2026 Nahuel Villanueva.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nvillanueva/electoral/election"
)

var ErrInvalidToken = errors.New("invalid bearer token")

// Claims binds a bearer token to one account identity.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// NewIdentity mints a fresh opaque account identity.
func NewIdentity() election.Identity {
	return election.Identity(uuid.NewString())
}

// IssueToken signs a bearer token for the given identity. Tokens carry no
// role information; roles live in the engine and can change after issuance.
func IssueToken(secret string, id election.Identity) (string, error) {
	claims := Claims{
		AccountID: string(id),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Subject:  string(id),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a bearer token and returns the identity it carries.
func ParseToken(secret, tokenString string) (election.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return "", ErrInvalidToken
	}
	return election.Identity(claims.AccountID), nil
}
