package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateSessionToken when a required
// argument is empty or the expiry is not set.
var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT that points at a
// server-side session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the session id
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): expiresAt
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("report-catalog", sessionID, time.Now().Add(24*time.Hour), "secret")
func GenerateSessionToken(issuer, sessionID string, expiresAt time.Time, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || expiresAt.IsZero() || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken validates tokenString and returns the session id it
// carries.
//
// Validation includes:
//   - HS256 signature verification using signKey
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim check
//   - non-empty Subject (sub)
func ParseSessionToken(tokenString, signKey, issuer string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("empty subject error")
	}

	return claims.Subject, nil
}
