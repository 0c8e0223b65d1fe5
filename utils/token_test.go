package utils

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// makeToken builds an unsigned JWT-shaped token; the client never checks
// signatures, only the expiry claim.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatal(err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func TestDecodeTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := makeToken(t, map[string]any{"sub": "42", "exp": exp})

	got, err := DecodeTokenExpiry(token)
	if err != nil {
		t.Fatalf("DecodeTokenExpiry returned error: %v", err)
	}
	if got.Unix() != exp {
		t.Errorf("expiry = %d, want %d", got.Unix(), exp)
	}
}

func TestDecodeTokenExpiryMissingClaim(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "42"})
	if _, err := DecodeTokenExpiry(token); err == nil {
		t.Error("DecodeTokenExpiry succeeded without an exp claim, want error")
	}
}

func TestTokenExpired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid for an hour", makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()}), false},
		{"expired an hour ago", makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()}), true},
		{"no exp claim", makeToken(t, map[string]any{"sub": "42"}), true},
		{"garbage token", "not-a-token", true},
		{"empty token", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenExpired(tt.token); got != tt.want {
				t.Errorf("TokenExpired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractIDFromToken(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "user-17", "exp": time.Now().Add(time.Hour).Unix()})
	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken returned error: %v", err)
	}
	if id != "user-17" {
		t.Errorf("subject = %q, want %q", id, "user-17")
	}

	if _, err := ExtractIDFromToken(makeToken(t, map[string]any{"exp": 1})); err == nil {
		t.Error("ExtractIDFromToken succeeded without a sub claim, want error")
	}
}
