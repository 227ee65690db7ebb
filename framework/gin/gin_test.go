package jwtginforward

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
	grpcjwt "github.com/tokensplit/go-jwt-compression/integrations/grpc"
)

func newTestRouter(opts ...Option) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var captured string
	router := gin.New()
	router.Use(NewGinMiddleware(opts...))
	router.GET("/", func(c *gin.Context) {
		captured, _ = grpcjwt.TokenFromContext(c.Request.Context())
		c.String(http.StatusOK, "ok")
	})
	return router, &captured
}

func TestGinMiddleware_CapturesBearerToken(t *testing.T) {
	router, captured := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer a.b.c")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a.b.c", *captured)
}

func TestGinMiddleware_NoTokenPassesThrough(t *testing.T) {
	router, captured := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *captured)
}

func TestGinMiddleware_MalformedHeaderRejected(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "not-a-bearer-header")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGinMiddleware_CookieExtractor(t *testing.T) {
	router, captured := newTestRouter(
		WithTokenExtractor(jwtcompression.MultiTokenExtractor(
			jwtcompression.AuthHeaderTokenExtractor,
			jwtcompression.CookieTokenExtractor("jwt_token"),
		)),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: "from.cookie.sig"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from.cookie.sig", *captured)
}
