// Package jwtirisforward provides Iris middleware for the HTTP edge of a
// system using compressed JWT forwarding: it extracts the token from the
// incoming request and seeds the request context so the gRPC client
// interceptor can attach it, compressed, to downstream calls.
package jwtirisforward

import (
	"net/http"

	"github.com/kataras/iris/v12"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
	grpcjwt "github.com/tokensplit/go-jwt-compression/integrations/grpc"
)

// DefaultTokenKey is the Iris values key the extracted token is stored
// under, in addition to the request context.
const DefaultTokenKey = "jwt"

type middlewareConfig struct {
	tokenExtractor jwtcompression.TokenExtractor
	errorHandler   func(iris.Context, error)
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
func WithErrorHandler(handler func(iris.Context, error)) Option {
	return func(c *middlewareConfig) {
		c.errorHandler = handler
	}
}

// WithTokenKey sets the Iris values key for the extracted token.
func WithTokenKey(key string) Option {
	return func(c *middlewareConfig) {
		c.tokenKey = key
	}
}

// NewIrisMiddleware returns an iris.Handler that captures the request's
// JWT. A request without a token passes through untouched; only a present
// but malformed credential invokes the error handler.
func NewIrisMiddleware(opts ...Option) iris.Handler {
	config := &middlewareConfig{
		tokenExtractor: jwtcompression.AuthHeaderTokenExtractor,
		errorHandler:   defaultIrisErrorHandler,
		tokenKey:       DefaultTokenKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c iris.Context) {
		token, err := config.tokenExtractor(c.Request())
		if err != nil {
			config.errorHandler(c, err)
			return
		}

		if token != "" {
			ctx := grpcjwt.SetToken(c.Request().Context(), token)
			c.ResetRequest(c.Request().WithContext(ctx))
			c.Values().Set(config.tokenKey, token)
		}

		c.Next()
	}
}

func defaultIrisErrorHandler(c iris.Context, err error) {
	c.StopWithJSON(http.StatusBadRequest, iris.Map{
		"message": err.Error(),
	})
}
