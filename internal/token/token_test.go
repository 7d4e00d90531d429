package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssuer_Generate(t *testing.T) {
	issuer := New()

	tok, err := issuer.Generate(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tok, 40)
	assert.Regexp(t, "^[0-9a-f]{40}$", tok)
}

func TestIssuer_Generate_Unique(t *testing.T) {
	issuer := New()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := issuer.Generate(context.Background())
		assert.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}

func TestIssuer_GetTokenFromRequest(t *testing.T) {
	issuer := New()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   string
	}{
		{
			name:      "valid bearer header",
			header:    "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:      "scheme is case-insensitive",
			header:    "bearer abc123",
			wantToken: "abc123",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: "authorization header missing",
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc123",
			wantErr: "invalid authorization header format",
		},
		{
			name:    "no token value",
			header:  "Bearer",
			wantErr: "invalid authorization header format",
		},
		{
			name:    "too many parts",
			header:  "Bearer abc 123",
			wantErr: "invalid authorization header format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			tok, err := issuer.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, tok)
			}
		})
	}
}
