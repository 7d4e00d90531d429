package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

// tokenBytes is the number of random bytes per token; hex-encoded
// this yields a 40-character opaque value.
const tokenBytes = 20

// Issuer mints opaque bearer tokens and extracts them from requests.
type Issuer struct{}

// New creates a new Issuer instance
func New() *Issuer {
	return &Issuer{}
}

// Generate returns a new collision-resistant opaque token value
func (i *Issuer) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (i *Issuer) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
