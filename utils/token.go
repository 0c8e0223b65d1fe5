package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// The client never verifies token signatures; the backend is the authority on
// token validity. The only claim inspected locally is the expiry, so a stale
// session can be discarded without a round trip.

// DecodeTokenExpiry extracts the "exp" claim from a bearer token without
// verifying its signature.
func DecodeTokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("token does not contain a valid 'exp' claim")
	}
	return time.Unix(int64(exp), 0), nil
}

// TokenExpired reports whether the token's expiry claim is in the past. A
// token whose expiry cannot be decoded is treated as expired.
func TokenExpired(tokenString string) bool {
	exp, err := DecodeTokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(time.Now())
}

// ExtractIDFromToken extracts the subject claim from a bearer token without
// verifying its signature. Used only for display purposes.
func ExtractIDFromToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
