package jwtirisforward

import (
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/httptest"
	"github.com/stretchr/testify/assert"
	jwtcompression "github.com/tokensplit/go-jwt-compression"
	grpcjwt "github.com/tokensplit/go-jwt-compression/integrations/grpc"
)

func newTestApp(opts ...Option) (*iris.Application, *string) {
	var captured string
	app := iris.New()
	app.Use(NewIrisMiddleware(opts...))
	app.Get("/", func(c iris.Context) {
		captured, _ = grpcjwt.TokenFromContext(c.Request().Context())
		c.WriteString("ok")
	})
	return app, &captured
}

func TestIrisMiddleware_CapturesBearerToken(t *testing.T) {
	app, captured := newTestApp()
	e := httptest.New(t, app)

	e.GET("/").
		WithHeader("Authorization", "Bearer a.b.c").
		Expect().
		Status(httptest.StatusOK)

	assert.Equal(t, "a.b.c", *captured)
}

func TestIrisMiddleware_NoTokenPassesThrough(t *testing.T) {
	app, captured := newTestApp()
	e := httptest.New(t, app)

	e.GET("/").
		Expect().
		Status(httptest.StatusOK)

	assert.Empty(t, *captured)
}

func TestIrisMiddleware_MalformedHeaderRejected(t *testing.T) {
	app, _ := newTestApp()
	e := httptest.New(t, app)

	e.GET("/").
		WithHeader("Authorization", "not-a-bearer-header").
		Expect().
		Status(httptest.StatusBadRequest).
		JSON().Object().
		ContainsKey("message")
}

func TestIrisMiddleware_CookieExtractor(t *testing.T) {
	app, captured := newTestApp(
		WithTokenExtractor(jwtcompression.MultiTokenExtractor(
			jwtcompression.AuthHeaderTokenExtractor,
			jwtcompression.CookieTokenExtractor("jwt_token"),
		)),
	)
	e := httptest.New(t, app)

	e.GET("/").
		WithCookie("jwt_token", "from.cookie.sig").
		Expect().
		Status(httptest.StatusOK)

	assert.Equal(t, "from.cookie.sig", *captured)
}

func TestIrisMiddleware_StoresTokenInValues(t *testing.T) {
	var fromValues string
	app := iris.New()
	app.Use(NewIrisMiddleware(WithTokenKey("token")))
	app.Get("/", func(c iris.Context) {
		fromValues = c.Values().GetString("token")
		c.WriteString("ok")
	})
	e := httptest.New(t, app)

	e.GET("/").
		WithHeader("Authorization", "Bearer x.y.z").
		Expect().
		Status(httptest.StatusOK)

	assert.Equal(t, "x.y.z", fromValues)
}
