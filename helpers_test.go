package jwtcompression

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("unit-test-signing-key-0123456789abcdef")

// mintToken signs an HS256 token with the given payload claims.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSigningKey)
	require.NoError(t, err)
	return signed
}

// sessionClaims builds a realistic payload covering every bucket field.
func sessionClaims(t *testing.T) jwt.MapClaims {
	t.Helper()

	now := time.Now().Unix()
	return jwt.MapClaims{
		"iss":        "https://auth.example.com",
		"aud":        "urn:example:api",
		"name":       "Jane Doe",
		"sub":        "user-42",
		"session_id": uuid.NewString(),
		"market_id":  "us-east",
		"currency":   "USD",
		"cart_id":    "cart-9",
		"exp":        now + 3600,
		"iat":        now,
		"jti":        uuid.NewString(),
	}
}

// decodeSegment decodes a base64url JSON segment for assertions.
func decodeSegment(t *testing.T, segment string) map[string]any {
	t.Helper()

	raw, err := Base64URLDecode(segment)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(raw, &obj))
	return obj
}

// splitToken decodes the header and payload of a three-segment token.
func splitToken(t *testing.T, token string) (header, payload map[string]any, signature string) {
	t.Helper()

	parts := tokenParts(t, token)
	return decodeSegment(t, parts[0]), decodeSegment(t, parts[1]), parts[2]
}

func tokenParts(t *testing.T, token string) []string {
	t.Helper()

	parts := make([]string, 0, 3)
	start := 0
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			parts = append(parts, token[start:i])
			start = i + 1
		}
	}
	parts = append(parts, token[start:])
	require.Len(t, parts, 3)
	return parts
}

func newTestCompressor(t *testing.T, opts ...Option) *Compressor {
	t.Helper()

	cp, err := New(opts...)
	require.NoError(t, err)
	return cp
}
