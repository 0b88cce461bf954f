package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	jwt.RegisteredClaims
}

// Parse decodes the upstream-issued access token without verifying its
// signature. The booking API owns the signing secret and authorizes every
// proxied call itself; the portal only reads claims for logging, cache
// keying, and early expiry rejection.
func Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpiredToken
	}

	return claims, nil
}

// AgentKey returns a stable per-agent cache key component. Falls back to a
// hash of the raw token when the claims carry no agent identifier.
func AgentKey(tokenString string) string {
	if claims, err := Parse(tokenString); err == nil {
		if claims.AgentID != "" {
			return claims.AgentID
		}
		if claims.Subject != "" {
			return claims.Subject
		}
	}
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:8])
}
