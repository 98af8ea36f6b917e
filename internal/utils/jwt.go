package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateRequestToken creates a short-lived HMAC-SHA256 JWT used to
// authenticate requests against the remote record store.
//
// Claims:
//   - Issuer    (iss): the API key identifier
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus ttl
//
// The key identifier is also placed in the "kid" header so the server can
// pick the verification secret without parsing claims first.
func GenerateRequestToken(keyID, secret string, ttl time.Duration) (string, error) {
	if keyID == "" || secret == "" || ttl <= 0 {
		return "", errors.New("invalid params for generating request token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    keyID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = keyID

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error signing request token: %w", err)
	}

	return signed, nil
}

// ValidateRequestToken verifies a request token's signature, issuer and
// expiration. Used by the fake remote server in tests and available to any
// server-side deployment of the token store.
func ValidateRequestToken(tokenString, keyID, secret string) error {
	_, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithIssuer(keyID), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("error validating request token: %w", err)
	}

	return nil
}
