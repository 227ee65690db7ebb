package jwtcompression

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Base64URLEncode encodes b with the base64url alphabet, padding stripped.
// This is the segment encoding JWTs use for header and payload.
func Base64URLEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64URLDecode decodes a base64url segment, accepting unpadded or
// partially padded input. Required padding is re-derived from the input
// length before decoding. A length of 1 mod 4 can never be produced by a
// valid encoder and is rejected outright.
func Base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 1:
		return nil, &decodeError{details: fmt.Errorf("invalid segment length %d", len(s))}
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, &decodeError{details: err}
	}
	return b, nil
}

// encodeJSONSegment marshals obj as compact JSON and base64url-encodes it.
// Key order is whatever encoding/json produces; receivers access fields by
// name, not position, so no canonical ordering is required.
func encodeJSONSegment(obj map[string]any) (string, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("marshal segment: %w", err)
	}
	return Base64URLEncode(b), nil
}

// decodeJSONSegment reverses encodeJSONSegment. Any base64 or JSON failure
// is reported as a malformed token.
func decodeJSONSegment(segment string) (map[string]any, error) {
	raw, err := Base64URLDecode(segment)
	if err != nil {
		return nil, &malformedTokenError{details: err}
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &malformedTokenError{details: err}
	}
	return obj, nil
}
