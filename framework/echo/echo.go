// Package jwtechoforward provides Echo middleware for the HTTP edge of a
// system using compressed JWT forwarding: it extracts the token from the
// incoming request and seeds the request context so the gRPC client
// interceptor can attach it, compressed, to downstream calls.
package jwtechoforward

import (
	"net/http"

	"github.com/labstack/echo/v4"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
	grpcjwt "github.com/tokensplit/go-jwt-compression/integrations/grpc"
)

// DefaultTokenKey is the Echo context key the extracted token is stored
// under, in addition to the request context.
const DefaultTokenKey = "jwt"

type middlewareConfig struct {
	tokenExtractor jwtcompression.TokenExtractor
	errorHandler   func(echo.Context, error) error
	tokenKey       string
}

// Option configures the middleware.
type Option func(*middlewareConfig)

// WithTokenExtractor sets the function used to extract the token from the
// request.
//
// Default: AuthHeaderTokenExtractor.
func WithTokenExtractor(extractor jwtcompression.TokenExtractor) Option {
	return func(c *middlewareConfig) {
		c.tokenExtractor = extractor
	}
}

// WithErrorHandler sets the handler called for malformed credentials.
//
// Default: 400 with a JSON message.
func WithErrorHandler(handler func(echo.Context, error) error) Option {
	return func(c *middlewareConfig) {
		c.errorHandler = handler
	}
}

// WithTokenKey sets the Echo context key for the extracted token.
func WithTokenKey(key string) Option {
	return func(c *middlewareConfig) {
		c.tokenKey = key
	}
}

// NewEchoMiddleware returns an echo.MiddlewareFunc that captures the
// request's JWT. A request without a token passes through untouched; only
// a present but malformed credential invokes the error handler.
func NewEchoMiddleware(opts ...Option) echo.MiddlewareFunc {
	config := &middlewareConfig{
		tokenExtractor: jwtcompression.AuthHeaderTokenExtractor,
		errorHandler:   defaultEchoErrorHandler,
		tokenKey:       DefaultTokenKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := config.tokenExtractor(c.Request())
			if err != nil {
				return config.errorHandler(c, err)
			}

			if token != "" {
				ctx := grpcjwt.SetToken(c.Request().Context(), token)
				c.SetRequest(c.Request().WithContext(ctx))
				c.Set(config.tokenKey, token)
			}

			return next(c)
		}
	}
}

func defaultEchoErrorHandler(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"message": err.Error(),
	})
}
