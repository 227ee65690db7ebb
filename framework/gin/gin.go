// Package jwtginforward provides Gin middleware for the HTTP edge of a
// system using compressed JWT forwarding: it extracts the token from the
// incoming request and seeds the request context so the gRPC client
// interceptor can attach it, compressed, to downstream calls.
package jwtginforward

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
	grpcjwt "github.com/tokensplit/go-jwt-compression/integrations/grpc"
)

// DefaultTokenKey is the Gin context key the extracted token is stored
// under, in addition to the request context.
const DefaultTokenKey = "jwt"

type middlewareConfig struct {
	tokenExtractor jwtcompression.TokenExtractor
	errorHandler   func(*gin.Context, error)
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
func WithErrorHandler(handler func(*gin.Context, error)) Option {
	return func(c *middlewareConfig) {
		c.errorHandler = handler
	}
}

// WithTokenKey sets the Gin context key for the extracted token.
func WithTokenKey(key string) Option {
	return func(c *middlewareConfig) {
		c.tokenKey = key
	}
}

// NewGinMiddleware returns a gin.HandlerFunc that captures the request's
// JWT. A request without a token passes through untouched; only a present
// but malformed credential invokes the error handler.
func NewGinMiddleware(opts ...Option) gin.HandlerFunc {
	config := &middlewareConfig{
		tokenExtractor: jwtcompression.AuthHeaderTokenExtractor,
		errorHandler:   defaultGinErrorHandler,
		tokenKey:       DefaultTokenKey,
	}

	for _, opt := range opts {
		opt(config)
	}

	return func(c *gin.Context) {
		token, err := config.tokenExtractor(c.Request)
		if err != nil {
			config.errorHandler(c, err)
			return
		}

		if token != "" {
			ctx := grpcjwt.SetToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
			c.Set(config.tokenKey, token)
		}

		c.Next()
	}
}

func defaultGinErrorHandler(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": err.Error(),
	})
}
