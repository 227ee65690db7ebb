package grpc

import (
	"errors"
	"strings"

	jwtcompression "github.com/tokensplit/go-jwt-compression"
)

// Option configures the Interceptor.
// Returns error for validation failures.
type Option func(*Interceptor) error

// Sentinel errors for configuration validation.
var (
	ErrCompressorNil = errors.New("compressor cannot be nil (use WithCompressor)")
	ErrLoggerNil     = errors.New("logger cannot be nil")
)

// WithCompressor sets the Compressor used to attach and reassemble tokens
// (REQUIRED).
func WithCompressor(cp *jwtcompression.Compressor) Option {
	return func(i *Interceptor) error {
		if cp == nil {
			return ErrCompressorNil
		}
		i.compressor = cp
		return nil
	}
}

// WithSkipMethods excludes fully qualified methods
// (e.g. "/hipstershop.CartService/GetCart") from token handling.
func WithSkipMethods(methods ...string) Option {
	return func(i *Interceptor) error {
		for _, method := range methods {
			i.skipMethods[method] = true
		}
		return nil
	}
}

// WithSkipServices excludes every method whose full name contains one of
// the given service names. Useful for public services that take no user
// context, where skipping the token entirely saves the metadata bytes.
func WithSkipServices(services ...string) Option {
	return func(i *Interceptor) error {
		i.skipServices = append(i.skipServices, services...)
		return nil
	}
}

// WithLogger sets the logger for interceptor diagnostics.
//
// Default: the Compressor's DefaultLogger equivalent.
func WithLogger(logger jwtcompression.Logger) Option {
	return func(i *Interceptor) error {
		if logger == nil {
			return ErrLoggerNil
		}
		i.logger = logger
		return nil
	}
}

func (i *Interceptor) skip(method string) bool {
	if i.skipMethods[method] {
		return true
	}
	for _, service := range i.skipServices {
		if strings.Contains(method, service) {
			return true
		}
	}
	return false
}
