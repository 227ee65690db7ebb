package jwtcompression

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedToken is returned when a token does not have exactly
	// three dot-separated segments, or when a header, payload, or fragment
	// segment fails to base64url-decode or JSON-parse.
	ErrMalformedToken = errors.New("malformed jwt")

	// ErrDecode is returned when a base64url segment cannot be decoded.
	ErrDecode = errors.New("base64url decode failed")
)

// Error codes used as metric tags. They give operators a machine-readable
// failure reason without parsing log lines.
const (
	errorCodeMalformed = "token_malformed"
	errorCodeDecode    = "decode_failed"
)

// malformedTokenError wraps the underlying decode or parse failure with the
// concrete error ErrMalformedToken. We do not expose this publicly because
// the interface methods of Is and Unwrap should give the user all they need.
type malformedTokenError struct {
	details error
}

// Is allows the error to support equality to ErrMalformedToken.
func (e *malformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

func (e *malformedTokenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedToken, e.details)
}

// Unwrap allows the error to support equality to the underlying error and
// not just ErrMalformedToken.
func (e *malformedTokenError) Unwrap() error {
	return e.details
}

// decodeError wraps a base64 failure with the concrete error ErrDecode.
type decodeError struct {
	details error
}

func (e *decodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDecode, e.details)
}

func (e *decodeError) Unwrap() error {
	return e.details
}

// errorCode maps an error to its metric tag value.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrDecode):
		return errorCodeDecode
	case errors.Is(err, ErrMalformedToken):
		return errorCodeMalformed
	default:
		return "internal"
	}
}
